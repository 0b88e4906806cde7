package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the session identity issued by the clinic application.
type Claims struct {
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	ClinicID   string `json:"clinic_id,omitempty"`
	ClinicName string `json:"clinic_name,omitempty"`
	jwt.RegisteredClaims
}

// NewClaims fills the registered claims for a token valid for ttl.
func NewClaims(sub string, ttl time.Duration) Claims {
	now := time.Now()
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func SignHS256(claims Claims, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndVerifyHS256 rejects every token when secret is empty.
func ParseAndVerifyHS256(token, secret string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: hs256 secret not configured", ErrInvalidToken)
	}
	return parse(token, jwt.SigningMethodHS256.Alg(), func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
}

func verifyRS256(token string, pubKey *rsa.PublicKey) (*Claims, error) {
	return parse(token, jwt.SigningMethodRS256.Alg(), func(*jwt.Token) (any, error) {
		return pubKey, nil
	})
}

// LooksLikeJWT reports whether raw has the three dot separated segments of a compact JWS.
func LooksLikeJWT(raw string) bool {
	return strings.Count(raw, ".") == 2
}

func parse(token, alg string, keyFunc jwt.Keyfunc) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, keyFunc, jwt.WithValidMethods([]string{alg}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Verifier checks session tokens signed either with a shared HS256 secret or,
// when a JWKS client is configured, with an RS256 key selected by kid.
// HS256 tokens are only accepted when a secret is set.
type Verifier struct {
	secret string
	jwks   *JWKSClient
}

func NewVerifier(secret string, jwks *JWKSClient) *Verifier {
	return &Verifier{secret: secret, jwks: jwks}
}

func (v *Verifier) Verify(ctx context.Context, token string) (*Claims, error) {
	if v.jwks == nil {
		return ParseAndVerifyHS256(token, v.secret)
	}

	unverified, _, err := jwt.NewParser().ParseUnverified(token, &Claims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	kid, _ := unverified.Header["kid"].(string)
	if unverified.Method.Alg() != jwt.SigningMethodRS256.Alg() || kid == "" {
		if v.secret == "" {
			return nil, fmt.Errorf("%w: %s tokens are not accepted", ErrInvalidToken, unverified.Method.Alg())
		}
		return ParseAndVerifyHS256(token, v.secret)
	}
	pub, err := v.jwks.Key(ctx, kid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return verifyRS256(token, pub)
}
