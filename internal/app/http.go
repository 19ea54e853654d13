package app

import (
	"github.com/yungbote/portfolio-assistant/internal/http"
	httpH "github.com/yungbote/portfolio-assistant/internal/http/handlers"
	httpMW "github.com/yungbote/portfolio-assistant/internal/http/middleware"
	"github.com/yungbote/portfolio-assistant/internal/observability"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

type Middleware struct {
	Admin *httpMW.AdminAuthMiddleware
}

type Handlers struct {
	Health    *httpH.HealthHandler
	Chat      *httpH.ChatHandler
	Portfolio *httpH.PortfolioHandler
	Admin     *httpH.AdminHandler
}

func wireHandlers(log *logger.Logger, repos Repos, services Services, metrics *observability.Metrics, db httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	var rejections httpH.Rejections
	if metrics != nil {
		rejections = metrics
	}
	return Handlers{
		Health:    httpH.NewHealthHandler(db),
		Chat:      httpH.NewChatHandler(log, services.Assistant, services.Profanity, services.Canonical, rejections),
		Portfolio: httpH.NewPortfolioHandler(services.Cache),
		Admin:     httpH.NewAdminHandler(log, services.Cache, repos.Intent, repos.FollowUp, repos.UserQuery),
	}
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Admin: httpMW.NewAdminAuthMiddleware(log, cfg.AdminJWTSecret),
	}
}

func wireServer(log *logger.Logger, cfg Config, services Services, handlers Handlers, middleware Middleware, metrics *observability.Metrics) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:              log,
		ServiceName:      serviceName,
		CORSOrigins:      cfg.CORSOrigins,
		Metrics:          metrics,
		ChatLimiter:      services.Limiter,
		AdminMiddleware:  middleware.Admin,
		ChatHandler:      handlers.Chat,
		PortfolioHandler: handlers.Portfolio,
		AdminHandler:     handlers.Admin,
		HealthHandler:    handlers.Health,
	})
}
