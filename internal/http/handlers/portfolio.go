package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-assistant/internal/domain/portfolio"
	"github.com/yungbote/portfolio-assistant/internal/http/response"
	perrors "github.com/yungbote/portfolio-assistant/internal/pkg/errors"
)

type Collections interface {
	Get(ctx context.Context, category string) (json.RawMessage, bool)
}

type PortfolioHandler struct {
	collections Collections
}

func NewPortfolioHandler(collections Collections) *PortfolioHandler {
	return &PortfolioHandler{collections: collections}
}

// GET /api/portfolio/:category
func (h *PortfolioHandler) GetCategory(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Param("category")))
	if !portfolio.IsCategory(category) {
		response.RespondError(c, http.StatusNotFound, "unknown_category",
			fmt.Errorf("unknown portfolio category %q: %w", category, perrors.ErrNotFound))
		return
	}
	raw, ok := h.collections.Get(c.Request.Context(), category)
	if !ok {
		response.RespondError(c, http.StatusServiceUnavailable, "portfolio_unavailable",
			fmt.Errorf("failed to fetch %s", category))
		return
	}
	response.RespondOK(c, gin.H{category: raw})
}
