package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/portfolio-assistant/internal/data/repos"
	types "github.com/yungbote/portfolio-assistant/internal/domain"
	"github.com/yungbote/portfolio-assistant/internal/http/response"
	"github.com/yungbote/portfolio-assistant/internal/pkg/dbctx"
	perrors "github.com/yungbote/portfolio-assistant/internal/pkg/errors"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

type CacheClearer interface {
	Clear(ctx context.Context) error
}

type AdminHandler struct {
	log       *logger.Logger
	cache     CacheClearer
	intents   repos.IntentRepo
	followUps repos.FollowUpRepo
	queries   repos.UserQueryRepo
}

func NewAdminHandler(log *logger.Logger, cache CacheClearer, intents repos.IntentRepo, followUps repos.FollowUpRepo, queries repos.UserQueryRepo) *AdminHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AdminHandler{
		log:       log.With("handler", "AdminHandler"),
		cache:     cache,
		intents:   intents,
		followUps: followUps,
		queries:   queries,
	}
}

// POST /api/admin/portfolio-cache/clear
func (h *AdminHandler) ClearPortfolioCache(c *gin.Context) {
	if err := h.cache.Clear(c.Request.Context()); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "cache_clear_failed", err)
		return
	}
	h.log.Info("portfolio cache cleared", "by", c.GetString("admin_subject"))
	response.RespondOK(c, gin.H{"cleared": true})
}

type intentStat struct {
	*types.Intent
	Threshold  float64 `json:"effective_threshold"`
	QueryCount int64   `json:"query_count"`
}

// GET /api/admin/intents
func (h *AdminHandler) ListIntents(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	rows, err := h.intents.List(dbc)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_intents_failed", err)
		return
	}
	out := make([]intentStat, 0, len(rows))
	for _, row := range rows {
		n, err := h.queries.CountByIntent(dbc, row.Name)
		if err != nil {
			response.RespondError(c, http.StatusInternalServerError, "list_intents_failed", err)
			return
		}
		out = append(out, intentStat{Intent: row, Threshold: row.Threshold(), QueryCount: n})
	}
	response.RespondOK(c, gin.H{"intents": out})
}

// GET /api/admin/follow-ups?category=skills
func (h *AdminHandler) ListFollowUps(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	var (
		rows []*types.FollowUpQuestion
		err  error
	)
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		rows, err = h.followUps.ListByCategory(dbc, category)
	} else {
		rows, err = h.followUps.ListAll(dbc)
	}
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_follow_ups_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"follow_ups": rows})
}

type createFollowUpReq struct {
	Category     string `json:"category" binding:"required"`
	Question     string `json:"question" binding:"required"`
	Answer       string `json:"answer" binding:"required"`
	ResponseType string `json:"response_type"`
}

// POST /api/admin/follow-ups
func (h *AdminHandler) CreateFollowUp(c *gin.Context) {
	var req createFollowUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	responseType := strings.TrimSpace(req.ResponseType)
	if responseType == "" {
		responseType = types.ResponseTypeText
	}
	rows, err := h.followUps.Create(dbctx.Context{Ctx: c.Request.Context()}, []*types.FollowUpQuestion{{
		Category:     strings.ToLower(strings.TrimSpace(req.Category)),
		Question:     strings.TrimSpace(req.Question),
		Answer:       strings.TrimSpace(req.Answer),
		ResponseType: responseType,
	}})
	if err != nil {
		h.respondRepoError(c, "create_follow_up_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"follow_up": rows[0]})
}

type updateFollowUpReq struct {
	Answer string `json:"answer" binding:"required"`
}

// PATCH /api/admin/follow-ups/:id
func (h *AdminHandler) UpdateFollowUp(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req updateFollowUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := h.followUps.UpdateAnswer(dbctx.Context{Ctx: c.Request.Context()}, id, strings.TrimSpace(req.Answer)); err != nil {
		h.respondRepoError(c, "update_follow_up_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// DELETE /api/admin/follow-ups/:id
func (h *AdminHandler) DeleteFollowUp(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.followUps.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		h.respondRepoError(c, "delete_follow_up_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (h *AdminHandler) respondRepoError(c *gin.Context, code string, err error) {
	switch {
	case errors.Is(err, perrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, perrors.ErrConflict):
		response.RespondError(c, http.StatusConflict, "conflict", err)
	case errors.Is(err, perrors.ErrInvalidArgument):
		response.RespondError(c, http.StatusBadRequest, code, err)
	default:
		response.RespondError(c, http.StatusInternalServerError, code, err)
	}
}
