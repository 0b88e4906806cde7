package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/clinicboard/clinicboard/libs/db"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/model"
)

// DBStore resolves opaque session tokens against the sessions table.
type DBStore struct {
	db         db.Querier
	cookieName string
	now        func() time.Time
}

func NewDBStore(q db.Querier, cookieName string, now func() time.Time) *DBStore {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	if now == nil {
		now = time.Now
	}
	return &DBStore{db: q, cookieName: cookieName, now: now}
}

func (s *DBStore) Token(h http.Header) string {
	if t := BearerToken(h); t != "" {
		return t
	}
	return unsign(CookieToken(h, s.cookieName))
}

func (s *DBStore) GetSession(ctx context.Context, h http.Header) (*model.Session, error) {
	token := s.Token(h)
	if token == "" {
		return nil, nil
	}

	var (
		sess       model.Session
		user       model.User
		clinicID   string
		clinicName string
	)
	err := s.db.QueryRow(ctx, `
		SELECT s.expires_at, u.id, u.name, u.email, COALESCE(c.id::text, ''), COALESCE(c.name, '')
		FROM sessions s
		INNER JOIN users u ON u.id = s.user_id
		LEFT JOIN LATERAL (
			SELECT cl.id, cl.name
			FROM users_to_clinics uc
			INNER JOIN clinics cl ON cl.id = uc.clinic_id
			WHERE uc.user_id = u.id
			ORDER BY uc.created_at ASC
			LIMIT 1
		) c ON true
		WHERE s.token = $1 AND s.expires_at > $2
	`, token, s.now()).Scan(&sess.ExpiresAt, &user.ID, &user.Name, &user.Email, &clinicID, &clinicName)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	if clinicID != "" {
		user.Clinic = &model.Clinic{ID: clinicID, Name: clinicName}
	}
	sess.User = &user
	return &sess, nil
}
