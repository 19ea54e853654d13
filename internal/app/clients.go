package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
	"github.com/yungbote/portfolio-assistant/internal/platform/githubstats"
	"github.com/yungbote/portfolio-assistant/internal/platform/redisx"
)

type Clients struct {
	Redis  *goredis.Client
	GitHub *githubstats.Client
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	var out Clients

	// Redis
	if cfg.NeedsRedis() {
		rdb, err := redisx.Open(ctx, cfg.Redis, log)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis: %w", err)
		}
		out.Redis = rdb
	}

	// GitHub
	if cfg.GitHubStatsEnabled {
		out.GitHub = githubstats.New(cfg.GitHubToken, log)
	}
	return out, nil
}

func (c Clients) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
