package app

import (
	"fmt"

	"github.com/yungbote/portfolio-assistant/internal/data/seed"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/enrich"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/fallback"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/followup"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/intent"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/querylog"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/resolve"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/screen"
	"github.com/yungbote/portfolio-assistant/internal/observability"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
	"github.com/yungbote/portfolio-assistant/internal/platform/ratelimit"
	"github.com/yungbote/portfolio-assistant/internal/services"
)

type Services struct {
	Portfolio services.PortfolioService
	Cache     *enrich.Cache
	FollowUps *followup.Generator
	Canonical *fallback.Table
	QueryLog  *querylog.Logger
	Assistant *assistant.Assistant
	Profanity *screen.Filter
	Limiter   ratelimit.Limiter
}

func wireServices(log *logger.Logger, cfg Config, repos Repos, clients Clients, metrics *observability.Metrics, seedFile *seed.File) (Services, error) {
	log.Info("Wiring services...")

	var stats services.RepoStatter
	if clients.GitHub != nil {
		stats = clients.GitHub
	}
	portfolioService := services.NewPortfolioService(
		log,
		repos.Skill,
		repos.Education,
		repos.Experience,
		repos.Project,
		repos.Research,
		stats,
	)

	var cacheStore enrich.Store
	switch cfg.PortfolioCacheBackend {
	case BackendRedis:
		cacheStore = enrich.NewRedisStore(clients.Redis, enrich.DefaultRedisRetention)
	case BackendMemory, "":
		cacheStore = enrich.NewMemoryStore()
	default:
		return Services{}, fmt.Errorf("unsupported PORTFOLIO_CACHE_BACKEND %q", cfg.PortfolioCacheBackend)
	}
	cache := enrich.NewCache(cacheStore, portfolioService, log,
		enrich.WithTTL(cfg.PortfolioCacheTTL),
		enrich.WithObserver(metrics.ObserveCache),
	)

	var limiter ratelimit.Limiter
	switch cfg.RateLimitBackend {
	case BackendRedis:
		limiter = ratelimit.NewRedis(clients.Redis, cfg.RateLimitMax, cfg.RateLimitWindow)
	case BackendMemory, "":
		limiter = ratelimit.NewMemory(cfg.RateLimitMax, cfg.RateLimitWindow, nil)
	default:
		return Services{}, fmt.Errorf("unsupported RATE_LIMIT_BACKEND %q", cfg.RateLimitBackend)
	}

	followUps := followup.New(repos.FollowUp, followup.BankFromSeed(seedFile), log)
	table := fallback.TableFromSeed(seedFile)
	queryLog := querylog.New(repos.UserQuery, log)

	deps := assistant.Deps{
		Log:       log,
		Scorer:    intent.NewScorer(intent.DefaultRegistry(), nil),
		Resolver:  resolve.NewResolver(assistant.NewRepoCorpus(repos.Response)),
		Gate:      resolve.NewGate(),
		Enricher:  enrich.NewEnricher(cache),
		FollowUps: followUps,
		Fallback:  fallback.Default(table, followUps, log),
		Queries:   queryLog,
	}
	if metrics != nil {
		deps.Metrics = metrics
	}

	return Services{
		Portfolio: portfolioService,
		Cache:     cache,
		FollowUps: followUps,
		Canonical: table,
		QueryLog:  queryLog,
		Assistant: assistant.New(deps),
		Profanity: screen.NewFilter(),
		Limiter:   limiter,
	}, nil
}
