package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	ProcessorMemory = "memory"
	ProcessorStripe = "stripe"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName   string
	HTTPPort      string
	LogLevel      string
	StorageDriver string
	PostgresDSN   string
	AutoMigrate   bool
	EventBrokers  []string

	AuthAudience  string
	AuthPublicKey string
	// AuthDevTokens maps static bearer tokens to subjects, "token=email" pairs.
	AuthDevTokens map[string]string
	// AuthAdminSubjects may change any user's role before a stored admin exists.
	AuthAdminSubjects []string

	PaymentProcessor string
	PaymentCurrency  string
	StripeSecretKey  string
	StripeAPIURL     string

	WorkerPollInterval time.Duration
	ShutdownTimeout    time.Duration
}

// RegisterFlags declares the command-line overrides shared by every process.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "path to a YAML config file")
	flags.String("http-port", "", "HTTP listen port")
	flags.String("storage-driver", "", "storage driver: memory or postgres")
	flags.String("log-level", "", "log level: debug, info, warn, error")
}

// Load resolves configuration from defaults, an optional YAML file, the
// environment and finally any flags that were explicitly set.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	configFile := os.Getenv("CONFIG_FILE")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			configFile = f.Value.String()
		}
	}
	if strings.TrimSpace(configFile) != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	if flags != nil {
		bindFlag(v, flags, "HTTP_PORT", "http-port")
		bindFlag(v, flags, "STORAGE_DRIVER", "storage-driver")
		bindFlag(v, flags, "LOG_LEVEL", "log-level")
	}

	cfg := Config{
		ServiceName:   v.GetString("SERVICE_NAME"),
		HTTPPort:      v.GetString("HTTP_PORT"),
		LogLevel:      strings.ToLower(v.GetString("LOG_LEVEL")),
		StorageDriver: strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		PostgresDSN:   v.GetString("POSTGRES_DSN"),
		AutoMigrate:   parseBool(v.GetString("AUTO_MIGRATE"), false),
		EventBrokers:  splitList(v.GetString("EVENT_BROKERS")),

		AuthAudience:  v.GetString("AUTH_AUDIENCE"),
		AuthPublicKey: v.GetString("AUTH_PUBLIC_KEY"),
		AuthDevTokens: parsePairs(v.GetString("AUTH_DEV_TOKENS")),

		AuthAdminSubjects: splitList(v.GetString("AUTH_ADMIN_SUBJECTS")),

		PaymentProcessor: strings.ToLower(strings.TrimSpace(v.GetString("PAYMENT_PROCESSOR"))),
		PaymentCurrency:  strings.ToLower(v.GetString("PAYMENT_CURRENCY")),
		StripeSecretKey:  v.GetString("STRIPE_SECRET_KEY"),
		StripeAPIURL:     v.GetString("STRIPE_API_URL"),

		WorkerPollInterval: v.GetDuration("WORKER_POLL_INTERVAL"),
		ShutdownTimeout:    v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
	if len(cfg.EventBrokers) == 0 {
		cfg.EventBrokers = []string{"inproc"}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return fmt.Errorf("POSTGRES_DSN is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	switch c.PaymentProcessor {
	case ProcessorMemory:
	case ProcessorStripe:
		if strings.TrimSpace(c.StripeSecretKey) == "" {
			return fmt.Errorf("STRIPE_SECRET_KEY is required when PAYMENT_PROCESSOR=%s", ProcessorStripe)
		}
	default:
		return fmt.Errorf("unsupported PAYMENT_PROCESSOR %q", c.PaymentProcessor)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVICE_NAME", "parcelhub")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("AUTO_MIGRATE", "false")
	v.SetDefault("AUTH_AUDIENCE", "parcelhub")
	v.SetDefault("PAYMENT_PROCESSOR", ProcessorMemory)
	v.SetDefault("PAYMENT_CURRENCY", "usd")
	v.SetDefault("WORKER_POLL_INTERVAL", 2*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
}

func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key string, name string) {
	flag := flags.Lookup(name)
	if flag == nil || !flag.Changed {
		return
	}
	_ = v.BindPFlag(key, flag)
}

func splitList(raw string) []string {
	var out []string
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}

func parsePairs(raw string) map[string]string {
	out := make(map[string]string)
	for _, item := range splitList(raw) {
		key, value, ok := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return out
}

func parseBool(raw string, fallback bool) bool {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
