package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/portfolio-assistant/internal/http/handlers"
	httpMW "github.com/yungbote/portfolio-assistant/internal/http/middleware"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/answer"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/intent"
	"github.com/yungbote/portfolio-assistant/internal/platform/ratelimit"
)

type echoAssistant struct{}

func (echoAssistant) Respond(_ context.Context, q string) (answer.Reply, error) {
	return answer.Reply{Kind: answer.KindCustom, Response: q}, nil
}

func (echoAssistant) Analyze(q string) intent.Result { return intent.Result{Intent: intent.General, Query: q} }

func TestRouterWiring(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := ratelimit.NewMemory(2, time.Minute, nil)
	r := NewRouter(RouterConfig{
		ChatLimiter:     lim,
		AdminMiddleware: httpMW.NewAdminAuthMiddleware(nil, "secret"),
		ChatHandler:     httpH.NewChatHandler(nil, echoAssistant{}, nil, nil, nil),
		AdminHandler:    httpH.NewAdminHandler(nil, nil, nil, nil, nil),
		HealthHandler:   httpH.NewHealthHandler(nil),
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", "192.0.2.10")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	if rec := do(http.MethodGet, "/healthcheck", ""); rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthcheck: %d %q", rec.Code, rec.Body.String())
	}
	if rec := do(http.MethodGet, "/healthcheck", ""); rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Fatalf("security headers not applied")
	}
	if rec := do(http.MethodPost, "/api/admin/portfolio-cache/clear", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("admin without token: got=%d want=401", rec.Code)
	}
	if rec := do(http.MethodGet, "/metrics", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("metrics should be absent when disabled, got=%d", rec.Code)
	}

	for i := 0; i < 2; i++ {
		if rec := do(http.MethodPost, "/api/chat/respond", `{"query":"hello there"}`); rec.Code != http.StatusOK {
			t.Fatalf("chat %d: %d %s", i, rec.Code, rec.Body.String())
		}
	}
	if rec := do(http.MethodPost, "/api/chat/respond", `{"query":"hello there"}`); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third chat: got=%d want=429", rec.Code)
	}
	if rec := do(http.MethodGet, "/api/chat/suggestions", ""); rec.Code != http.StatusOK {
		t.Fatalf("suggestions are not rate limited, got=%d", rec.Code)
	}
}
