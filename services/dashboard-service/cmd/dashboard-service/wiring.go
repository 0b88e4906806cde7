package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clinicboard/clinicboard/libs/auth"
	"github.com/clinicboard/clinicboard/libs/config"
	"github.com/clinicboard/clinicboard/libs/db"
	"github.com/clinicboard/clinicboard/libs/httpx"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/session"
	"github.com/redis/go-redis/v9"
)

// newSessionStore picks the backing store from SESSION_MODE and puts the Redis cache in front when available.
func newSessionStore(pool *db.Pool, rdb *redis.Client, logger *slog.Logger) (session.Store, error) {
	cookie := config.String("SESSION_COOKIE", session.DefaultCookieName)

	var store session.TokenStore
	switch mode := config.String("SESSION_MODE", "db"); mode {
	case "jwt":
		secret := config.String("SESSION_JWT_SECRET", "")
		var jwks *auth.JWKSClient
		if url := config.String("SESSION_JWKS_URL", ""); url != "" {
			jwks = auth.NewJWKSClient(url, config.Seconds("SESSION_JWKS_TTL_SECONDS", 5*time.Minute))
		}
		if secret == "" && jwks == nil {
			return nil, errors.New("SESSION_MODE=jwt requires SESSION_JWT_SECRET or SESSION_JWKS_URL")
		}
		store = session.NewJWTStore(auth.NewVerifier(secret, jwks), cookie)
	case "db":
		store = session.NewDBStore(pool, cookie, time.Now)
	default:
		return nil, fmt.Errorf("unknown SESSION_MODE %q (want db or jwt)", mode)
	}

	if rdb == nil {
		return store, nil
	}
	logger.Info("session cache enabled")
	return session.NewCachedStore(store, rdb, config.Seconds("SESSION_CACHE_TTL_SECONDS", 15*time.Second), logger), nil
}

// rateLimit counts per session (or per client IP when anonymous), shared across replicas when Redis is configured.
func rateLimit(rdb *redis.Client, logger *slog.Logger) httpx.Middleware {
	limit := config.Int("RATE_LIMIT_REQUESTS", 120)
	window := config.Seconds("RATE_LIMIT_WINDOW_SECONDS", time.Minute)
	key := httpx.SessionOrIP(config.String("SESSION_COOKIE", session.DefaultCookieName))
	if rdb == nil {
		return httpx.NewRateLimiter(limit, window).WithKey(key).Middleware()
	}
	return httpx.NewRedisRateLimiter(rdb, limit, window, "ratelimit:dashboard").
		WithKey(key).
		Middleware(logger, config.Bool("RATE_LIMIT_FAIL_OPEN", true))
}
