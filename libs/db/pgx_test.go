package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

func TestOptionsDefaults(t *testing.T) {
	o := Options{MaxConns: 25}.withDefaults()
	if o.MaxConns != 25 {
		t.Fatalf("expected explicit max conns to be kept, got %d", o.MaxConns)
	}
	if o.MinConns != 1 || o.MaxConnLifetime != 30*time.Minute || o.MaxConnIdleTime != 5*time.Minute {
		t.Fatalf("unexpected defaults: %+v", o)
	}
}

func TestReadyCheckWithoutPool(t *testing.T) {
	if err := ReadyCheck(nil)(context.Background()); err == nil {
		t.Fatal("expected error for nil pool")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("loading session: %w", pgx.ErrNoRows)) {
		t.Fatal("expected wrapped ErrNoRows to be not found")
	}
	if IsNotFound(fmt.Errorf("boom")) {
		t.Fatal("unexpected not found")
	}
}
