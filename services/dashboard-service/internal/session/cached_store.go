package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/model"
	"github.com/redis/go-redis/v9"
)

// TokenStore is a Store that can also report which token it would resolve.
type TokenStore interface {
	Store
	Token(h http.Header) string
}

// CachedStore is a Redis read-through cache in front of another store.
// Only sessions whose user already has a clinic are cached, so anonymous and no-clinic
// results are looked up again on the next request. A revoked session stays valid until
// its entry expires, at most ttl later. Redis failures fall through to the wrapped store.
type CachedStore struct {
	next   TokenStore
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

func NewCachedStore(next TokenStore, rdb redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *CachedStore {
	if ttl <= 0 {
		ttl = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedStore{next: next, rdb: rdb, ttl: ttl, logger: logger, now: time.Now}
}

func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:" + hex.EncodeToString(sum[:])
}

func (s *CachedStore) GetSession(ctx context.Context, h http.Header) (*model.Session, error) {
	token := s.next.Token(h)
	if token == "" {
		return nil, nil
	}
	key := cacheKey(token)

	raw, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var sess model.Session
		if jsonErr := json.Unmarshal(raw, &sess); jsonErr == nil && cacheable(&sess) {
			return &sess, nil
		}
		s.logger.WarnContext(ctx, "discarding malformed cached session")
	case !errors.Is(err, redis.Nil):
		s.logger.WarnContext(ctx, "session cache read failed", "err", err)
	}

	sess, err := s.next.GetSession(ctx, h)
	if err != nil || !cacheable(sess) {
		return sess, err
	}

	ttl := s.ttl
	if !sess.ExpiresAt.IsZero() {
		remaining := sess.ExpiresAt.Sub(s.now())
		if remaining <= 0 {
			return sess, nil
		}
		if remaining < ttl {
			ttl = remaining
		}
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return sess, nil
	}
	if err := s.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		s.logger.WarnContext(ctx, "session cache write failed", "err", err)
	}
	return sess, nil
}

func cacheable(sess *model.Session) bool {
	return sess != nil && sess.User != nil && sess.User.Clinic != nil && sess.User.Clinic.ID != ""
}
