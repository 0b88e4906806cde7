package otelx

import (
	"context"
	"testing"

	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "false")
	t.Setenv("OTEL_SAMPLING_RATIO", "0.25")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")
	t.Setenv("DEPLOY_ENV", "staging")

	cfg := ConfigFromEnv("dashboard-service")
	if cfg.Enabled {
		t.Fatal("expected tracing disabled")
	}
	if cfg.SampleRatio != 0.25 || cfg.OTLPEndpoint != "collector:4317" || cfg.ServiceName != "dashboard-service" || cfg.Environment != "staging" {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	t.Setenv("OTEL_SAMPLING_RATIO", "7")
	if got := ConfigFromEnv("x").SampleRatio; got != 1 {
		t.Fatalf("expected out of range ratio to fall back to 1, got %v", got)
	}
}

func TestResourceAttributes(t *testing.T) {
	attrs := Config{ServiceName: "dashboard-service", Version: "1.2.0", Environment: "prod"}.attributes()
	got := map[string]string{}
	for _, kv := range attrs {
		got[string(kv.Key)] = kv.Value.AsString()
	}
	if got[string(semconv.ServiceNameKey)] != "dashboard-service" ||
		got[string(semconv.ServiceVersionKey)] != "1.2.0" ||
		got[string(semconv.DeploymentEnvironmentKey)] != "prod" {
		t.Fatalf("unexpected attributes: %v", got)
	}

	if n := len(Config{ServiceName: "x"}.attributes()); n != 1 {
		t.Fatalf("expected only the service name, got %d attributes", n)
	}
}

func TestSetupDisabledIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}

func TestSetupRequiresEndpoint(t *testing.T) {
	if _, err := Setup(context.Background(), Config{Enabled: true, ServiceName: "x"}); err == nil {
		t.Fatal("expected error without an endpoint")
	}
}
