package grpcx

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/clinicboard/clinicboard/libs/httpx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestUnaryServerRequestIDInterceptor(t *testing.T) {
	interceptor := UnaryServerRequestIDInterceptor()
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDMetadataKey, "req-42"))

	var seen string
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/x/y"}, func(ctx context.Context, _ any) (any, error) {
		seen = httpx.RequestIDFromContext(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor failed: %v", err)
	}
	if seen != "req-42" {
		t.Fatalf("expected request id from metadata, got %q", seen)
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDMetadataKey, "bad id\n"))
	_, _ = interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/x/y"}, func(ctx context.Context, _ any) (any, error) {
		seen = httpx.RequestIDFromContext(ctx)
		return nil, nil
	})
	if seen == "" || seen == "bad id\n" {
		t.Fatalf("expected unsafe request id to be replaced, got %q", seen)
	}
}

func TestUnaryClientRequestIDInterceptor(t *testing.T) {
	interceptor := UnaryClientRequestIDInterceptor()
	ctx := httpx.ContextWithRequestID(context.Background(), "req-7")

	var got []string
	err := interceptor(ctx, "/x/y", nil, nil, nil, func(ctx context.Context, _ string, _, _ any, _ *grpc.ClientConn, _ ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		got = md.Get(RequestIDMetadataKey)
		return nil
	})
	if err != nil {
		t.Fatalf("interceptor failed: %v", err)
	}
	if len(got) != 1 || got[0] != "req-7" {
		t.Fatalf("expected outgoing request id, got %v", got)
	}
}

func TestUnaryServerLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	interceptor := UnaryServerLoggingInterceptor(logger)

	ctx := httpx.ContextWithRequestID(context.Background(), "req-9")
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.Internal, "boom")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected handler error to pass through, got %v", err)
	}

	line := buf.String()
	for _, want := range []string{`"level":"ERROR"`, `"method":"/svc/Method"`, `"code":"Internal"`, `"request_id":"req-9"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected log line to contain %s, got %s", want, line)
		}
	}
}

func TestBearerTokenCredentials(t *testing.T) {
	md, err := bearerToken("tok").GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("GetRequestMetadata: %v", err)
	}
	if md["authorization"] != "Bearer tok" {
		t.Fatalf("unexpected metadata: %v", md)
	}
}
