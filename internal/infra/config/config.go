package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Planner  PlannerConfig  `yaml:"planner"`
	Trending TrendingConfig `yaml:"trending"`
	Export   ExportConfig   `yaml:"export"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	PublicBaseURL  string          `yaml:"publicBaseUrl"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// PlannerConfig controls plan generation and the knowledge base source.
type PlannerConfig struct {
	Timezone         string         `yaml:"timezone"`
	CurrencySymbol   string         `yaml:"currencySymbol"`
	SimulatedLatency time.Duration  `yaml:"simulatedLatency"`
	KnowledgePath    string         `yaml:"knowledgePath"`
	Postgres         PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// TrendingConfig controls destination popularity counters.
type TrendingConfig struct {
	Enabled bool        `yaml:"enabled"`
	TopN    int         `yaml:"topN"`
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig contains connection information for counter storage.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// ExportConfig controls PDF exports.
type ExportConfig struct {
	Storage StorageConfig `yaml:"storage"`
}

// StorageConfig configures the S3 compatible bucket exported PDFs are uploaded to.
type StorageConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Endpoint   string        `yaml:"endpoint"`
	AccessKey  string        `yaml:"accessKey"`
	SecretKey  string        `yaml:"secretKey"`
	Bucket     string        `yaml:"bucket"`
	Region     string        `yaml:"region"`
	PresignTTL time.Duration `yaml:"presignTtl"`
}

// Load reads configuration from .env, a YAML file and environment variables.
func Load() (*Config, error) {
	// .env is optional; values already present in the environment win.
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("PORT"); v != "" && os.Getenv("HTTP_ADDRESS") == "" {
		cfg.HTTP.Address = ":" + strings.TrimPrefix(v, ":")
	}
	if v := os.Getenv("HTTP_PUBLIC_BASE_URL"); v != "" {
		cfg.HTTP.PublicBaseURL = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("PLANNER_TIMEZONE"); v != "" {
		cfg.Planner.Timezone = v
	}
	if v := os.Getenv("PLANNER_CURRENCY_SYMBOL"); v != "" {
		cfg.Planner.CurrencySymbol = v
	}
	if v := os.Getenv("PLANNER_SIMULATED_LATENCY"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Planner.SimulatedLatency = parsed
		}
	}
	if v := os.Getenv("PLANNER_KNOWLEDGE_PATH"); v != "" {
		cfg.Planner.KnowledgePath = v
	}
	if v := os.Getenv("PLANNER_POSTGRES_DSN"); v != "" {
		cfg.Planner.Postgres.DSN = v
	}
	if v := os.Getenv("PLANNER_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Planner.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("TRENDING_ENABLED"); v != "" {
		cfg.Trending.Enabled = parseBool(v)
	}
	if v := os.Getenv("TRENDING_TOP_N"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Trending.TopN = parsed
		}
	}
	if v := os.Getenv("TRENDING_REDIS_ENABLED"); v != "" {
		cfg.Trending.Redis.Enabled = parseBool(v)
	}
	if v := os.Getenv("TRENDING_REDIS_ADDR"); v != "" {
		cfg.Trending.Redis.Addr = v
	}
	if v := os.Getenv("EXPORT_STORAGE_ENABLED"); v != "" {
		cfg.Export.Storage.Enabled = parseBool(v)
	}
	if v := os.Getenv("EXPORT_STORAGE_ENDPOINT"); v != "" {
		cfg.Export.Storage.Endpoint = v
	}
	if v := os.Getenv("EXPORT_STORAGE_ACCESS_KEY"); v != "" {
		cfg.Export.Storage.AccessKey = v
	}
	if v := os.Getenv("EXPORT_STORAGE_SECRET_KEY"); v != "" {
		cfg.Export.Storage.SecretKey = v
	}
	if v := os.Getenv("EXPORT_STORAGE_BUCKET"); v != "" {
		cfg.Export.Storage.Bucket = v
	}
	if v := os.Getenv("EXPORT_STORAGE_REGION"); v != "" {
		cfg.Export.Storage.Region = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:       ":8080",
			ReadTimeout:   5 * time.Second,
			WriteTimeout:  10 * time.Second,
			PublicBaseURL: "http://localhost:8080",
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		Planner: PlannerConfig{
			Timezone:       "Asia/Kolkata",
			CurrencySymbol: "₹",
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
		Trending: TrendingConfig{
			Enabled: true,
			TopN:    5,
			Redis: RedisConfig{
				Prefix: "planner",
			},
		},
		Export: ExportConfig{
			Storage: StorageConfig{
				Region:     "auto",
				PresignTTL: 15 * time.Minute,
			},
		},
	}
}

// Location resolves the planner timezone.
func (c *Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Planner.Timezone) == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Planner.Timezone)
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("planner.timezone: %w", err)
	}
	if strings.TrimSpace(c.Planner.CurrencySymbol) == "" {
		return errors.New("planner.currencySymbol cannot be empty")
	}
	if c.Planner.SimulatedLatency < 0 {
		return errors.New("planner.simulatedLatency cannot be negative")
	}
	if c.Trending.TopN < 0 {
		return errors.New("trending.topN cannot be negative")
	}
	if c.Trending.Redis.Enabled && strings.TrimSpace(c.Trending.Redis.Addr) == "" {
		return errors.New("trending.redis.addr cannot be empty when redis is enabled")
	}
	if s := c.Export.Storage; s.Enabled {
		if strings.TrimSpace(s.Endpoint) == "" || strings.TrimSpace(s.Bucket) == "" {
			return errors.New("export.storage endpoint and bucket are required when storage is enabled")
		}
		if s.PresignTTL <= 0 {
			return errors.New("export.storage.presignTtl must be positive")
		}
	}
	return nil
}
