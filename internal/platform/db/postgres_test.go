package db

import (
	"context"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openLazy(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 user=parcelhub dbname=parcelhub sslmode=disable",
	}), &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("open gorm failed: %v", err)
	}
	return gdb
}

func TestConnPrefersContextTransaction(t *testing.T) {
	gdb := openLazy(t)
	ctx := context.Background()

	if conn := Conn(ctx, gdb); conn.Statement.Context != ctx {
		t.Fatalf("expected fallback scoped to caller context")
	}

	tx := gdb.Session(&gorm.Session{})
	bound := context.WithValue(ctx, txKey{}, tx)
	if conn := Conn(bound, gdb); conn != tx {
		t.Fatalf("expected transaction from context")
	}
}

func TestNestedTransactionReusesOuter(t *testing.T) {
	tx := openLazy(t).Session(&gorm.Session{})
	bound := context.WithValue(context.Background(), txKey{}, tx)

	var p Postgres
	called := false
	err := p.WithinTransaction(bound, func(ctx context.Context) error {
		called = true
		if Conn(ctx, nil) != tx {
			t.Fatalf("expected nested unit to see outer transaction")
		}
		return nil
	})
	if err != nil || !called {
		t.Fatalf("expected nested call to run inline, got err=%v called=%v", err, called)
	}
}

func TestNilSafeHelpers(t *testing.T) {
	var p *Postgres
	if err := p.Close(); err != nil {
		t.Fatalf("expected nil close on nil handle, got %v", err)
	}
	if err := (&Postgres{}).Migrate(context.Background()); err != nil {
		t.Fatalf("expected no-op migrate without models, got %v", err)
	}
	if _, err := Connect(""); err == nil {
		t.Fatalf("expected empty dsn to fail")
	}
}
