package main

import (
	"context"
	"log/slog"
	"net"

	"github.com/clinicboard/clinicboard/libs/config"
	"github.com/clinicboard/clinicboard/libs/grpcx"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/grpcserver"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/handlers"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

func startGrpcServer(ctx context.Context, logger *slog.Logger, gate handlers.AccessResolver, reporter handlers.Reporter, views handlers.ViewRecorder) error {
	if !config.Bool("GRPC_ENABLED", true) {
		logger.Info("grpc server disabled")
		return nil
	}
	port, err := config.Port("GRPC_PORT", "9090")
	if err != nil {
		return err
	}
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpcx.UnaryServerRequestIDInterceptor(),
			grpcx.UnaryServerLoggingInterceptor(logger),
		),
	)
	health := grpcserver.Register(srv, gate, reporter, views, logger)

	go func() {
		logger.Info("grpc server starting", "addr", lis.Addr().String())
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc server error", "err", err)
		}
	}()

	go func() {
		<-ctx.Done()
		health.Shutdown()
		srv.GracefulStop()
	}()

	return nil
}
