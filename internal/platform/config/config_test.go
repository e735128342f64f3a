package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.StorageDriver != StorageMemory || cfg.PaymentProcessor != ProcessorMemory {
		t.Fatalf("unexpected drivers %q/%q", cfg.StorageDriver, cfg.PaymentProcessor)
	}
	if cfg.HTTPPort != "8080" || cfg.PaymentCurrency != "usd" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if len(cfg.EventBrokers) != 1 || cfg.EventBrokers[0] != "inproc" {
		t.Fatalf("expected inproc broker, got %v", cfg.EventBrokers)
	}
	if cfg.WorkerPollInterval != 2*time.Second || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected intervals %v/%v", cfg.WorkerPollInterval, cfg.ShutdownTimeout)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("AUTH_DEV_TOKENS", "tok-a=a@x.com, tok-b = b@x.com,broken")
	t.Setenv("EVENT_BROKERS", "b1:9092, b2:9092")
	t.Setenv("AUTO_MIGRATE", "yes")
	t.Setenv("WORKER_POLL_INTERVAL", "250ms")
	t.Setenv("AUTH_ADMIN_SUBJECTS", "root@x.com, ops@x.com")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(cfg.AuthDevTokens) != 2 || cfg.AuthDevTokens["tok-b"] != "b@x.com" {
		t.Fatalf("unexpected dev tokens %v", cfg.AuthDevTokens)
	}
	if len(cfg.EventBrokers) != 2 || cfg.EventBrokers[1] != "b2:9092" {
		t.Fatalf("unexpected brokers %v", cfg.EventBrokers)
	}
	if !cfg.AutoMigrate {
		t.Fatalf("expected auto migrate enabled")
	}
	if cfg.WorkerPollInterval != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", cfg.WorkerPollInterval)
	}
	if len(cfg.AuthAdminSubjects) != 2 || cfg.AuthAdminSubjects[1] != "ops@x.com" {
		t.Fatalf("unexpected admin subjects %v", cfg.AuthAdminSubjects)
	}
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	t.Setenv("STORAGE_DRIVER", StoragePostgres)
	if _, err := Load(nil); err == nil {
		t.Fatalf("expected postgres without dsn to fail")
	}
	t.Setenv("POSTGRES_DSN", "postgres://localhost/parcelhub")
	if _, err := Load(nil); err != nil {
		t.Fatalf("expected postgres with dsn to load, got %v", err)
	}

	t.Setenv("STORAGE_DRIVER", "mongo")
	if _, err := Load(nil); err == nil {
		t.Fatalf("expected unknown storage driver to fail")
	}

	t.Setenv("STORAGE_DRIVER", StorageMemory)
	t.Setenv("PAYMENT_PROCESSOR", ProcessorStripe)
	if _, err := Load(nil); err == nil {
		t.Fatalf("expected stripe without secret key to fail")
	}
}

func TestLoadFileAndFlags(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	path := filepath.Join(t.TempDir(), "parcelhub.yaml")
	if err := os.WriteFile(path, []byte("HTTP_PORT: \"9100\"\nLOG_LEVEL: debug\n"), 0o600); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	if err := flags.Parse([]string{"--config", path, "--log-level", "warn"}); err != nil {
		t.Fatalf("parse flags failed: %v", err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.HTTPPort != "9100" {
		t.Fatalf("expected port from file, got %q", cfg.HTTPPort)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected flag to override file, got %q", cfg.LogLevel)
	}
}
