package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(okHandler(), mark("a"), mark("b"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if strings.Join(order, ",") != "a,b" {
		t.Fatalf("expected a,b got %v", order)
	}
}

func TestRequestIDPropagation(t *testing.T) {
	var seen string
	h := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	if seen != "req-123" || rw.Header().Get(RequestIDHeader) != "req-123" {
		t.Fatalf("request id not propagated: ctx=%q header=%q", seen, rw.Header().Get(RequestIDHeader))
	}

	rw = httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rw.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("expected generated request id, got %q", seen)
	}
}

func TestAcceptRequestID(t *testing.T) {
	if got := AcceptRequestID("abc-123"); got != "abc-123" {
		t.Fatalf("expected printable id to be kept, got %q", got)
	}
	for _, raw := range []string{"", "has space", "tab\tid", strings.Repeat("x", maxRequestIDLen+1)} {
		got := AcceptRequestID(raw)
		if got == raw || got == "" {
			t.Fatalf("expected %q to be replaced, got %q", raw, got)
		}
	}
}

func TestAccessLogSkipsHealthChecksAtInfo(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	h := WithAccessLog(logger)(okHandler())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if buf.Len() != 0 {
		t.Fatalf("expected health check to be logged at debug only, got %s", buf.String())
	}

	mux := http.NewServeMux()
	mux.Handle("GET /dashboard", okHandler())
	WithAccessLog(logger)(mux).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if !strings.Contains(buf.String(), `"status":200`) {
		t.Fatalf("unexpected access log: %s", buf.String())
	}
}

func TestAccessLogCapturesStatus(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}), WithRequestID, WithAccessLog(logger))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	out := buf.String()
	if !strings.Contains(out, `"status":500`) || !strings.Contains(out, `"level":"WARN"`) {
		t.Fatalf("unexpected access log: %s", out)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := WithCORS(CORSPolicy{
		AllowedOrigins: []string{"https://app.example.com"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxAge:         10 * time.Minute,
	})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/dashboard", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)

	if rw.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rw.Code)
	}
	if rw.Header().Get("Access-Control-Allow-Origin") != "https://app.example.com" {
		t.Fatalf("unexpected allow origin %q", rw.Header().Get("Access-Control-Allow-Origin"))
	}
	if rw.Header().Get("Access-Control-Max-Age") != "600" {
		t.Fatalf("unexpected max age %q", rw.Header().Get("Access-Control-Max-Age"))
	}
}

func TestInMemoryRateLimit(t *testing.T) {
	h := NewRateLimiter(2, time.Minute).Middleware()(okHandler())

	var codes []int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rw := httptest.NewRecorder()
		h.ServeHTTP(rw, req)
		codes = append(codes, rw.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes: %v", codes)
	}
}

func TestRedisRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewRedisRateLimiter(rdb, 1, time.Minute, "test").Middleware(logger, false)(okHandler())

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		rw := httptest.NewRecorder()
		h.ServeHTTP(rw, req)
		return rw.Code
	}

	if code := send(); code != http.StatusOK {
		t.Fatalf("expected first request allowed, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("expected second request limited, got %d", code)
	}
	if !mr.Exists("test:203.0.113.7") {
		t.Fatal("expected limiter key keyed by forwarded client ip")
	}

	mr.Close()
	if code := send(); code != http.StatusServiceUnavailable {
		t.Fatalf("expected fail closed when redis is down, got %d", code)
	}
}

func TestSessionOrIPKeys(t *testing.T) {
	key := SessionOrIP("clinicboard.session_token")

	anon := httptest.NewRequest(http.MethodGet, "/", nil)
	anon.RemoteAddr = "10.0.0.9:1234"
	if got := key(anon); got != "ip:10.0.0.9" {
		t.Fatalf("unexpected anonymous key %q", got)
	}

	a := httptest.NewRequest(http.MethodGet, "/", nil)
	a.AddCookie(&http.Cookie{Name: "clinicboard.session_token", Value: "tok-a"})
	b := httptest.NewRequest(http.MethodGet, "/", nil)
	b.Header.Set("Authorization", "Bearer tok-b")
	if key(a) == key(b) || !strings.HasPrefix(key(a), "sess:") {
		t.Fatalf("expected distinct session keys, got %q and %q", key(a), key(b))
	}
	if strings.Contains(key(a), "tok-a") {
		t.Fatal("session key must not contain the raw credential")
	}
}

func TestRateLimitRetryAfterAndSweep(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	if ok, _ := rl.allow("a", now); !ok {
		t.Fatal("expected first request allowed")
	}
	ok, retry := rl.allow("a", now.Add(15*time.Second))
	if ok || retry != 45*time.Second {
		t.Fatalf("expected rejection with 45s retry, got ok=%v retry=%s", ok, retry)
	}

	rl.allow("b", now.Add(2*time.Minute))
	if _, found := rl.visitors["a"]; found {
		t.Fatal("expected expired visitor to be swept")
	}

	rw := httptest.NewRecorder()
	tooManyRequests(rw, 1500*time.Millisecond)
	if rw.Header().Get("Retry-After") != "2" {
		t.Fatalf("unexpected Retry-After %q", rw.Header().Get("Retry-After"))
	}
}

func TestWithRecover(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := WithRecover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map")
	}))

	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rw.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rw.Code)
	}
}
