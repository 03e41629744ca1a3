package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	// Common
	Env             string        `yaml:"env" env:"ENV" env-default:"local"`
	LogLevel        string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	Port            string        `yaml:"port" env:"PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	DatabaseURL     string        `yaml:"database_url" env:"DATABASE_URL"`
	// Provider
	Provider              string        `yaml:"provider" env:"PROVIDER" env-default:"exchangeratesapi"`
	ExchangeAPIBase       string        `yaml:"exchange_api_base" env:"EXCHANGE_API_BASE" env-default:"https://api.apilayer.com"`
	ExchangeAPILatestPath string        `yaml:"exchange_api_latest_path" env:"EXCHANGE_API_LATEST_PATH" env-default:"/exchangerates_data/latest"`
	ExchangeAPIKey        string        `yaml:"exchange_api_key" env:"EXCHANGE_API_KEY"`
	RequestTimeout        time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"10s"`
	// Scheduled refresh
	SchedulingEnabled    bool          `yaml:"scheduling_enabled" env:"SCHEDULING_ENABLED" env-default:"true"`
	RefreshSchedule      string        `yaml:"refresh_schedule" env:"REFRESH_SCHEDULE" env-default:"0 10 0 * * *"`
	RefreshWorkers       int           `yaml:"refresh_workers" env:"REFRESH_WORKERS" env-default:"5"`
	RefreshShutdownGrace time.Duration `yaml:"refresh_shutdown_grace" env:"REFRESH_SHUTDOWN_GRACE" env-default:"60s"`
	// Add guard: memory | redis
	AddGuardBackend string        `yaml:"add_guard_backend" env:"ADD_GUARD_BACKEND" env-default:"memory"`
	AddGuardTTL     time.Duration `yaml:"add_guard_ttl" env:"ADD_GUARD_TTL" env-default:"30s"`
	RedisAddr       string        `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword   string        `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB         int           `yaml:"redis_db" env:"REDIS_DB" env-default:"0"`
}

// Load reads the optional YAML file named by CONFIG_PATH, then environment variables.
// Environment values win over the file.
func Load() (Config, error) {
	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		return cfg, cfg.validate()
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Provider {
	case "exchangeratesapi", "fake":
	default:
		return fmt.Errorf("unknown PROVIDER %q", c.Provider)
	}
	switch c.AddGuardBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown ADD_GUARD_BACKEND %q", c.AddGuardBackend)
	}
	if c.RefreshWorkers <= 0 {
		return fmt.Errorf("REFRESH_WORKERS must be positive, got %d", c.RefreshWorkers)
	}
	return nil
}
