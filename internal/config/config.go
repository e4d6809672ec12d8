package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config aggregates application settings sourced from environment variables.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Worker    WorkerConfig    `mapstructure:"worker"`
	Log       LogConfig       `mapstructure:"log"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port           int    `mapstructure:"port"`
	Mode           string `mapstructure:"mode"`
	Environment    string `mapstructure:"environment"`
	FrontendURL    string `mapstructure:"frontend_url"`
	AllowedOrigins string `mapstructure:"allowed_origins"`
	MaxBodyBytes   int64  `mapstructure:"max_body_bytes"`
}

// DatabaseConfig contains connection options for PostgreSQL.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig 包含 Redis 连接配置，限流与任务队列共用。
type RedisConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// RateLimitConfig 控制公开投递接口的限流，0 表示关闭。
type RateLimitConfig struct {
	ApplicationsPerHour int `mapstructure:"applications_per_hour"`
}

// WorkerConfig 控制 asynq worker。
type WorkerConfig struct {
	Concurrency int `mapstructure:"concurrency"`
	// MetricsAddr 非空时 worker 在该地址暴露 /metrics。
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// LogConfig 控制 slog 输出。
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DSN builds a lib/pq compatible connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
	)
}

// Addr returns host:port for go-redis and asynq.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Origins returns the CORS allow-list: FRONTEND_URL, the local dev ports and any
// extra comma-separated origins, de-duplicated in that order.
func (a APIConfig) Origins() []string {
	candidates := []string{a.FrontendURL, "http://localhost:3000", "http://localhost:3001"}
	candidates = append(candidates, strings.Split(a.AllowedOrigins, ",")...)

	seen := make(map[string]struct{}, len(candidates))
	origins := make([]string, 0, len(candidates))
	for _, o := range candidates {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		origins = append(origins, o)
	}
	return origins
}

// Load reads configuration solely from environment variables (with optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 5000)
	v.SetDefault("api.mode", "release")
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.frontend_url", "http://localhost:3000")
	v.SetDefault("api.allowed_origins", "")
	v.SetDefault("api.max_body_bytes", 10<<20)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "quickhire")
	v.SetDefault("database.user", "quickhire")
	v.SetDefault("database.password", "quickhire")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("ratelimit.applications_per_hour", 20)
	v.SetDefault("worker.concurrency", 5)
	v.SetDefault("worker.metrics_addr", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string][]string{
		"api.port":                        {"API_PORT", "PORT"},
		"api.mode":                        {"GIN_MODE"},
		"api.environment":                 {"APP_ENV", "NODE_ENV"},
		"api.frontend_url":                {"FRONTEND_URL"},
		"api.allowed_origins":             {"CORS_ALLOWED_ORIGINS"},
		"api.max_body_bytes":              {"API_MAX_BODY_BYTES"},
		"database.host":                   {"DATABASE_HOST"},
		"database.port":                   {"DATABASE_PORT"},
		"database.name":                   {"POSTGRES_DB"},
		"database.user":                   {"POSTGRES_USER"},
		"database.password":               {"POSTGRES_PASSWORD"},
		"database.sslmode":                {"DATABASE_SSLMODE"},
		"database.log_level":              {"DATABASE_LOG_LEVEL"},
		"redis.host":                      {"REDIS_HOST"},
		"redis.port":                      {"REDIS_PORT"},
		"ratelimit.applications_per_hour": {"RATE_LIMIT_APPLICATIONS_PER_HOUR"},
		"worker.concurrency":              {"WORKER_CONCURRENCY"},
		"worker.metrics_addr":             {"WORKER_METRICS_ADDR"},
		"log.level":                       {"LOG_LEVEL"},
		"log.format":                      {"LOG_FORMAT"},
	}

	for key, envs := range mappings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, strings.Join(envs, ","), err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 {
		return errors.New("api port must be positive")
	}
	switch cfg.API.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin mode %q", cfg.API.Mode)
	}
	if cfg.API.MaxBodyBytes <= 0 {
		return errors.New("api max body bytes must be positive")
	}
	if cfg.Database.Host == "" {
		return errors.New("database host is required")
	}
	if cfg.Database.Port <= 0 {
		return errors.New("database port must be positive")
	}
	if cfg.Database.Name == "" {
		return errors.New("database name is required")
	}
	if cfg.Database.User == "" {
		return errors.New("database user is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("database password is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("database sslmode is required")
	}
	if cfg.Redis.Host == "" {
		return errors.New("redis host is required")
	}
	if cfg.Redis.Port <= 0 {
		return errors.New("redis port must be positive")
	}
	if cfg.RateLimit.ApplicationsPerHour < 0 {
		return errors.New("rate limit must not be negative")
	}
	if cfg.Worker.Concurrency <= 0 {
		return errors.New("worker concurrency must be positive")
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", cfg.Log.Format)
	}
	return nil
}
