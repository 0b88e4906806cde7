package handlers

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/clinicboard/clinicboard/libs/httpx"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/dashboard"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/events"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/model"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/session"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("dashboard.html").
	Funcs(template.FuncMap{"money": formatCents}).
	ParseFS(templatesFS, "templates/dashboard.html"))

type AccessResolver interface {
	Resolve(ctx context.Context, h http.Header) session.Access
}

type Reporter interface {
	GetDashboard(ctx context.Context, p dashboard.Params) (*model.Report, error)
	Now() time.Time
	Location() *time.Location
}

type ViewRecorder interface {
	DashboardViewed(ctx context.Context, e events.DashboardViewed)
}

type DashboardHandler struct {
	gate     AccessResolver
	reporter Reporter
	views    ViewRecorder
	logger   *slog.Logger
}

func NewDashboardHandler(gate AccessResolver, reporter Reporter, views ViewRecorder, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{gate: gate, reporter: reporter, views: views, logger: logger}
}

type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

type pageData struct {
	User       model.User
	ClinicName string
	From       string
	To         string
	Report     *model.Report
	loc        *time.Location
}

func (d pageData) Clock(t time.Time) string {
	return t.In(d.loc).Format("15:04")
}

// Page renders the HTML dashboard, redirecting sessions that cannot see one.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	access := h.gate.Resolve(r.Context(), r.Header)
	if access.Kind != session.Authenticated {
		http.Redirect(w, r, access.Redirect(), http.StatusFound)
		return
	}

	report, rng, err := h.load(r, access)
	if err != nil {
		if isInputError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}

	data := pageData{
		User:   access.User,
		From:   rng.From.Format(dashboard.DateLayout),
		To:     rng.To.Format(dashboard.DateLayout),
		Report: report,
		loc:    h.reporter.Location(),
	}
	if access.User.Clinic != nil {
		data.ClinicName = access.User.Clinic.Name
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.logger.ErrorContext(r.Context(), "render dashboard failed", "err", err)
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// API serves the report as JSON. Gate failures carry the redirect target instead of a 302.
func (h *DashboardHandler) API(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	access := h.gate.Resolve(r.Context(), r.Header)
	switch access.Kind {
	case session.Unauthenticated:
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthenticated", Redirect: access.Redirect()})
		return
	case session.NoClinic:
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "clinic required", Redirect: access.Redirect()})
		return
	}

	report, _, err := h.load(r, access)
	if err != nil {
		if isInputError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load dashboard"})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *DashboardHandler) load(r *http.Request, access session.Access) (*model.Report, model.DateRange, error) {
	ctx := r.Context()
	q := r.URL.Query()
	rng, err := dashboard.ParseRange(q.Get("from"), q.Get("to"), h.reporter.Now(), h.reporter.Location())
	if err != nil {
		return nil, model.DateRange{}, err
	}

	report, err := h.reporter.GetDashboard(ctx, dashboard.Params{ClinicID: access.ClinicID, Range: rng})
	if err != nil {
		h.logger.ErrorContext(ctx, "dashboard query failed",
			"err", err,
			"clinic_id", access.ClinicID,
			"request_id", httpx.RequestIDFromContext(ctx),
		)
		return nil, rng, err
	}

	if h.views != nil {
		h.views.DashboardViewed(ctx, events.NewDashboardViewed(access.ClinicID, access.User.ID, rng, h.reporter.Now()))
	}
	return report, rng, nil
}

func isInputError(err error) bool {
	return errors.Is(err, dashboard.ErrInvalidDate) || errors.Is(err, dashboard.ErrInvalidRange)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
