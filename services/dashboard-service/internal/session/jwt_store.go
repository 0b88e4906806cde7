package session

import (
	"context"
	"net/http"

	"github.com/clinicboard/clinicboard/libs/auth"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/model"
)

// JWTStore builds sessions from signed bearer tokens (or the session cookie) without a database round trip.
type JWTStore struct {
	verifier   *auth.Verifier
	cookieName string
}

func NewJWTStore(verifier *auth.Verifier, cookieName string) *JWTStore {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &JWTStore{verifier: verifier, cookieName: cookieName}
}

func (s *JWTStore) Token(h http.Header) string {
	if t := BearerToken(h); t != "" {
		return t
	}
	return CookieToken(h, s.cookieName)
}

func (s *JWTStore) GetSession(ctx context.Context, h http.Header) (*model.Session, error) {
	token := s.Token(h)
	if token == "" || !auth.LooksLikeJWT(token) {
		return nil, nil
	}

	claims, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	user := &model.User{ID: claims.Subject, Name: claims.Name, Email: claims.Email}
	if claims.ClinicID != "" {
		user.Clinic = &model.Clinic{ID: claims.ClinicID, Name: claims.ClinicName}
	}
	sess := &model.Session{User: user}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}
