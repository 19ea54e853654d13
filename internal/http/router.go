package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/portfolio-assistant/internal/http/handlers"
	httpMW "github.com/yungbote/portfolio-assistant/internal/http/middleware"
	"github.com/yungbote/portfolio-assistant/internal/observability"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
	"github.com/yungbote/portfolio-assistant/internal/platform/ratelimit"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string
	Metrics     *observability.Metrics
	ChatLimiter ratelimit.Limiter

	AdminMiddleware *httpMW.AdminAuthMiddleware

	ChatHandler      *httpH.ChatHandler
	PortfolioHandler *httpH.PortfolioHandler
	AdminHandler     *httpH.AdminHandler
	HealthHandler    *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.SecurityHeaders())
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}

	// Metrics
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Chat (public, rate limited)
		if cfg.ChatHandler != nil {
			limited := api.Group("/")
			limited.Use(httpMW.RateLimit(cfg.ChatLimiter, cfg.Metrics, cfg.Log))
			limited.POST("/chat/respond", cfg.ChatHandler.Respond)
			limited.POST("/test-intent", cfg.ChatHandler.TestIntent)
			api.GET("/chat/suggestions", cfg.ChatHandler.Suggestions)
		}

		// Portfolio (public)
		if cfg.PortfolioHandler != nil {
			api.GET("/portfolio/:category", cfg.PortfolioHandler.GetCategory)
		}
	}

	admin := api.Group("/admin")
	{
		if cfg.AdminMiddleware != nil {
			admin.Use(cfg.AdminMiddleware.RequireAdmin())
		}
		if cfg.AdminHandler != nil && cfg.AdminMiddleware != nil {
			admin.POST("/portfolio-cache/clear", cfg.AdminHandler.ClearPortfolioCache)
			admin.GET("/intents", cfg.AdminHandler.ListIntents)
			admin.GET("/follow-ups", cfg.AdminHandler.ListFollowUps)
			admin.POST("/follow-ups", cfg.AdminHandler.CreateFollowUp)
			admin.PATCH("/follow-ups/:id", cfg.AdminHandler.UpdateFollowUp)
			admin.DELETE("/follow-ups/:id", cfg.AdminHandler.DeleteFollowUp)
		}
	}

	return r
}
