package grpcserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	clinicboardv1 "github.com/clinicboard/clinicboard/protos/gen/clinicboard/v1"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/dashboard"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/events"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/handlers"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/session"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ServiceName is the health-check name of the dashboard service.
const ServiceName = "clinicboard.v1.DashboardService"

type server struct {
	clinicboardv1.UnimplementedDashboardServiceServer
	gate     handlers.AccessResolver
	reporter handlers.Reporter
	views    handlers.ViewRecorder
	logger   *slog.Logger
}

// Register installs the dashboard and health services on grpcServer.
func Register(grpcServer *grpc.Server, gate handlers.AccessResolver, reporter handlers.Reporter, views handlers.ViewRecorder, logger *slog.Logger) *health.Server {
	clinicboardv1.RegisterDashboardServiceServer(grpcServer, &server{gate: gate, reporter: reporter, views: views, logger: logger})

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, hs)
	return hs
}

// headersFromMetadata maps the authorization and cookie metadata onto HTTP headers for the session stores.
func headersFromMetadata(ctx context.Context) http.Header {
	h := http.Header{}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return h
	}
	if vals := md.Get("authorization"); len(vals) > 0 {
		h.Set("Authorization", vals[0])
	}
	for _, c := range md.Get("cookie") {
		h.Add("Cookie", c)
	}
	return h
}

func (s *server) GetDashboard(ctx context.Context, req *clinicboardv1.GetDashboardRequest) (*clinicboardv1.DashboardReport, error) {
	access := s.gate.Resolve(ctx, headersFromMetadata(ctx))
	switch access.Kind {
	case session.Unauthenticated:
		return nil, status.Error(codes.Unauthenticated, "redirect to "+access.Redirect())
	case session.NoClinic:
		return nil, status.Error(codes.FailedPrecondition, "redirect to "+access.Redirect())
	}

	rng, err := dashboard.ParseRange(req.GetFrom(), req.GetTo(), s.reporter.Now(), s.reporter.Location())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	report, err := s.reporter.GetDashboard(ctx, dashboard.Params{ClinicID: access.ClinicID, Range: rng})
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidRange) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.ErrorContext(ctx, "dashboard query failed", "err", err, "clinic_id", access.ClinicID)
		return nil, status.Error(codes.Internal, "failed to load dashboard")
	}

	if s.views != nil {
		s.views.DashboardViewed(ctx, events.NewDashboardViewed(access.ClinicID, access.User.ID, rng, s.reporter.Now()))
	}

	return reportToProto(report), nil
}
