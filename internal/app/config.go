package app

import (
	"time"

	"github.com/yungbote/portfolio-assistant/internal/data/db"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/enrich"
	"github.com/yungbote/portfolio-assistant/internal/pkg/envutil"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
	"github.com/yungbote/portfolio-assistant/internal/platform/ratelimit"
	"github.com/yungbote/portfolio-assistant/internal/platform/redisx"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Port        string
	Environment string
	Version     string

	DB    db.Config
	Redis redisx.Config

	PortfolioCacheBackend string
	PortfolioCacheTTL     time.Duration

	RateLimitBackend string
	RateLimitMax     int
	RateLimitWindow  time.Duration

	GitHubToken        string
	GitHubStatsEnabled bool

	AdminJWTSecret string
	CORSOrigins    []string
	SeedOnStart    bool

	ShutdownTimeout time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:        envutil.String("PORT", "8080"),
		Environment: envutil.String("APP_ENV", "development"),
		Version:     envutil.String("APP_VERSION", "dev"),
		DB: db.Config{
			Driver:           envutil.String("DB_DRIVER", db.DriverPostgres),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost"),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432"),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres"),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", ""),
			PostgresName:     envutil.String("POSTGRES_NAME", "portfolio"),
			PostgresSSLMode:  envutil.String("POSTGRES_SSLMODE", "disable"),
			SQLitePath:       envutil.String("SQLITE_PATH", ""),
			MaxOpenConns:     envutil.Int("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:     envutil.Int("DB_MAX_IDLE_CONNS", 5),
		},
		Redis: redisx.Config{
			Addr:     envutil.String("REDIS_ADDR", ""),
			Password: envutil.String("REDIS_PASSWORD", ""),
			DB:       envutil.Int("REDIS_DB", 0),
		},
		PortfolioCacheBackend: envutil.String("PORTFOLIO_CACHE_BACKEND", BackendMemory),
		PortfolioCacheTTL:     envutil.Duration("PORTFOLIO_CACHE_TTL", enrich.DefaultTTL),
		RateLimitBackend:      envutil.String("RATE_LIMIT_BACKEND", BackendMemory),
		RateLimitMax:          envutil.Int("RATE_LIMIT_MAX", ratelimit.DefaultMax),
		RateLimitWindow:       envutil.Duration("RATE_LIMIT_WINDOW", ratelimit.DefaultWindow),
		GitHubToken:           envutil.String("GITHUB_TOKEN", ""),
		GitHubStatsEnabled:    envutil.Bool("GITHUB_STATS_ENABLED", false),
		AdminJWTSecret:        envutil.String("ADMIN_JWT_SECRET", ""),
		CORSOrigins:           envutil.List("CORS_ALLOWED_ORIGINS", nil),
		SeedOnStart:           envutil.Bool("SEED_ON_START", false),
		ShutdownTimeout:       envutil.Duration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	if log != nil {
		log.Debug("Config loaded",
			"port", cfg.Port,
			"env", cfg.Environment,
			"db_driver", cfg.DB.Driver,
			"redis_addr", cfg.Redis.Addr,
			"portfolio_cache_backend", cfg.PortfolioCacheBackend,
			"portfolio_cache_ttl", cfg.PortfolioCacheTTL.String(),
			"rate_limit_backend", cfg.RateLimitBackend,
			"rate_limit_max", cfg.RateLimitMax,
			"rate_limit_window", cfg.RateLimitWindow.String(),
			"github_stats_enabled", cfg.GitHubStatsEnabled,
			"admin_enabled", cfg.AdminJWTSecret != "",
			"seed_on_start", cfg.SeedOnStart,
		)
	}
	return cfg
}

// NeedsRedis reports whether any configured backend requires a Redis client.
func (c Config) NeedsRedis() bool {
	return c.PortfolioCacheBackend == BackendRedis || c.RateLimitBackend == BackendRedis
}
