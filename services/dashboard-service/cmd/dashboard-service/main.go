package main

import (
	"context"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/clinicboard/clinicboard/libs/config"
	"github.com/clinicboard/clinicboard/libs/db"
	"github.com/clinicboard/clinicboard/libs/httpx"
	"github.com/clinicboard/clinicboard/libs/kafkax"
	otelx "github.com/clinicboard/clinicboard/libs/otel"
	"github.com/clinicboard/clinicboard/libs/runtime"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/dashboard"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/events"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/handlers"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/session"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/storage"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	_ = config.LoadDotenv()

	service := config.String("SERVICE_NAME", "dashboard-service")
	port, err := config.Port("PORT", "8080")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	settings, err := dashboard.LoadSettings(config.String("DASHBOARD_CONFIG", ""))
	if err != nil {
		logger.Error("dashboard settings invalid", "err", err)
		panic(err)
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}
	pool, err := db.Open(ctx, dbURL, db.Options{
		MaxConns: int32(config.Int("DB_MAX_CONNS", 10)),
	})
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	readyChecks := []runtime.ReadyCheck{{Name: "db", Check: db.ReadyCheck(pool)}}

	var rdb *redis.Client
	if addr := config.String("REDIS_ADDR", ""); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr, Password: config.String("REDIS_PASSWORD", "")})
		defer rdb.Close()
		readyChecks = append(readyChecks, runtime.ReadyCheck{Name: "redis", Check: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	brokers := config.String("KAFKA_BROKERS", "")
	if brokers != "" {
		readyChecks = append(readyChecks, runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(brokers)})
	}
	views := events.NewPublisher(brokers, logger)
	defer views.Close()

	store, err := newSessionStore(pool, rdb, logger)
	if err != nil {
		logger.Error("session store setup failed", "err", err)
		panic(err)
	}
	gate := session.NewGate(store, logger)
	aggregator := dashboard.NewAggregator(storage.NewRepository(pool), time.Now, settings)
	dashboardHandler := handlers.NewDashboardHandler(gate, aggregator, views, logger)

	mux := runtime.NewBaseMuxWithReady(readyChecks...)
	mux.HandleFunc("/dashboard", dashboardHandler.Page)
	mux.HandleFunc("/api/v1/dashboard", dashboardHandler.API)

	handler := httpx.Chain(mux,
		httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins:   config.List("CORS_ALLOWED_ORIGINS", ""),
			AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", httpx.RequestIDHeader},
			ExposedHeaders:   []string{httpx.RequestIDHeader, "Retry-After"},
			AllowCredentials: true,
			MaxAge:           10 * time.Minute,
		}),
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithRecover(logger),
		httpx.WithBodyLimit(1<<20),
		httpx.WithTimeout(config.Seconds("HTTP_TIMEOUT_SECONDS", 15*time.Second)),
		rateLimit(rdb, logger),
	)
	handler = otelhttp.NewHandler(handler, "dashboard")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := startGrpcServer(ctx, logger, gate, aggregator, views); err != nil {
		logger.Error("grpc server failed to start", "err", err)
	}

	logger.Info("dashboard ready", "timezone", settings.Location.String(), "top_doctors_limit", settings.TopDoctorsLimit)
	runtime.ServeHTTP(ctx, srv, logger, 10*time.Second)
}
