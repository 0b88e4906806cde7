package session

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/model"
)

type stubStore struct {
	sess  *model.Session
	err   error
	calls int
}

func (s *stubStore) GetSession(context.Context, http.Header) (*model.Session, error) {
	s.calls++
	return s.sess, s.err
}

func (s *stubStore) Token(h http.Header) string {
	return BearerToken(h)
}

func TestResolveWithoutSession(t *testing.T) {
	access := NewGate(&stubStore{}, nil).Resolve(context.Background(), http.Header{})
	if access.Kind != Unauthenticated {
		t.Fatalf("expected unauthenticated, got %s", access.Kind)
	}
	if access.Redirect() != "/authentication" {
		t.Fatalf("unexpected redirect %q", access.Redirect())
	}
}

func TestResolveUserWithoutClinic(t *testing.T) {
	store := &stubStore{sess: &model.Session{User: &model.User{ID: "user-1", Name: "Dana"}}}
	access := NewGate(store, nil).Resolve(context.Background(), http.Header{})
	if access.Kind != NoClinic {
		t.Fatalf("expected no_clinic, got %s", access.Kind)
	}
	if access.Redirect() != "/clinic-form" {
		t.Fatalf("unexpected redirect %q", access.Redirect())
	}
	if access.User.ID != "user-1" {
		t.Fatalf("expected user to be kept, got %+v", access.User)
	}
}

func TestResolveAuthenticatedKeepsClinicID(t *testing.T) {
	store := &stubStore{sess: &model.Session{User: &model.User{
		ID:     "user-1",
		Clinic: &model.Clinic{ID: "7b0f4a52-2a4e-4c39-9f8e-3d6f0f1c2b11", Name: "Vida"},
	}}}
	access := NewGate(store, nil).Resolve(context.Background(), http.Header{})
	if access.Kind != Authenticated {
		t.Fatalf("expected authenticated, got %s", access.Kind)
	}
	if access.ClinicID != "7b0f4a52-2a4e-4c39-9f8e-3d6f0f1c2b11" {
		t.Fatalf("clinic id changed: %q", access.ClinicID)
	}
	if access.Redirect() != "" {
		t.Fatalf("expected no redirect, got %q", access.Redirect())
	}
}

func TestResolveFailsClosed(t *testing.T) {
	store := &stubStore{err: errors.New("db unreachable")}
	access := NewGate(store, nil).Resolve(context.Background(), http.Header{})
	if access.Kind != Unauthenticated {
		t.Fatalf("expected unauthenticated on lookup error, got %s", access.Kind)
	}
}
