package session

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/model"
)

const (
	AuthenticationPath = "/authentication"
	ClinicFormPath     = "/clinic-form"
)

// Store looks up the session carried by request headers. A nil session with a
// nil error means the request is anonymous.
type Store interface {
	GetSession(ctx context.Context, h http.Header) (*model.Session, error)
}

type Kind int

const (
	Unauthenticated Kind = iota
	NoClinic
	Authenticated
)

func (k Kind) String() string {
	switch k {
	case Authenticated:
		return "authenticated"
	case NoClinic:
		return "no_clinic"
	default:
		return "unauthenticated"
	}
}

// Access is the gate decision. User is set for NoClinic and Authenticated; ClinicID only for Authenticated.
type Access struct {
	Kind     Kind
	User     model.User
	ClinicID string
}

func (a Access) Redirect() string {
	switch a.Kind {
	case Unauthenticated:
		return AuthenticationPath
	case NoClinic:
		return ClinicFormPath
	default:
		return ""
	}
}

type Gate struct {
	store  Store
	logger *slog.Logger
}

func NewGate(store Store, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{store: store, logger: logger}
}

// Resolve never fails: lookup errors are logged and resolve to Unauthenticated.
func (g *Gate) Resolve(ctx context.Context, h http.Header) Access {
	sess, err := g.store.GetSession(ctx, h)
	if err != nil {
		g.logger.WarnContext(ctx, "session lookup failed", "err", err)
		return Access{Kind: Unauthenticated}
	}
	if sess == nil || sess.User == nil || sess.User.ID == "" {
		return Access{Kind: Unauthenticated}
	}

	user := *sess.User
	if user.Clinic == nil || user.Clinic.ID == "" {
		return Access{Kind: NoClinic, User: user}
	}
	return Access{Kind: Authenticated, User: user, ClinicID: user.Clinic.ID}
}
