package session

import (
	"net/http"
	"net/url"
	"strings"
)

const DefaultCookieName = "clinicboard.session_token"

// BearerToken returns the token of an "Authorization: Bearer" header.
func BearerToken(h http.Header) string {
	raw := strings.TrimSpace(h.Get("Authorization"))
	if len(raw) < 7 || !strings.EqualFold(raw[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(raw[7:])
}

// CookieToken returns the unescaped value of the named cookie.
func CookieToken(h http.Header, name string) string {
	if name == "" {
		name = DefaultCookieName
	}
	c, err := (&http.Request{Header: h}).Cookie(name)
	if err != nil {
		return ""
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return c.Value
	}
	return strings.TrimSpace(v)
}

// unsign reduces a signed "token.signature" cookie value to the token.
func unsign(v string) string {
	if i := strings.IndexByte(v, '.'); i > 0 {
		return v[:i]
	}
	return v
}
