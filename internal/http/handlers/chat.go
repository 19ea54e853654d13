package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-assistant/internal/http/response"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/answer"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/intent"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/screen"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

const errQueryRequired = "Query is required and must be a string"

type Assistant interface {
	Respond(ctx context.Context, query string) (answer.Reply, error)
	Analyze(query string) intent.Result
}

type Suggester interface {
	Questions() []string
}

// Rejections counts queries refused before they reach the assistant.
type Rejections interface {
	IncRejected(reason string)
}

type ChatHandler struct {
	log         *logger.Logger
	assistant   Assistant
	profanity   *screen.Filter
	suggestions Suggester
	rejections  Rejections
}

func NewChatHandler(log *logger.Logger, assistant Assistant, profanity *screen.Filter, suggestions Suggester, rejections Rejections) *ChatHandler {
	if log == nil {
		log = logger.Nop()
	}
	if profanity == nil {
		profanity = screen.NewFilter()
	}
	return &ChatHandler{
		log:         log.With("handler", "ChatHandler"),
		assistant:   assistant,
		profanity:   profanity,
		suggestions: suggestions,
		rejections:  rejections,
	}
}

type queryReq struct {
	Query any `json:"query"`
}

func bindQuery(c *gin.Context) (string, bool) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", false
	}
	q, ok := req.Query.(string)
	if !ok || q == "" {
		return "", false
	}
	return q, true
}

// POST /api/chat/respond
func (h *ChatHandler) Respond(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		h.reject("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": errQueryRequired})
		return
	}

	v := screen.Validate(query)
	if !v.Valid {
		h.reject("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": v.Errors})
		return
	}

	if p := h.profanity.Check(v.Sanitized); p.Profane {
		h.reject("profanity")
		h.log.Info("profanity screened",
			"query_length", len(v.Sanitized),
			"detected_count", len(p.DetectedWords),
			"severity", p.Severity,
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"type":     answer.KindMoralGuidance,
			"error":    p.Warning,
			"response": p.FullResponse,
			"severity": p.Severity,
		})
		return
	}

	reply, err := h.assistant.Respond(c.Request.Context(), v.Sanitized)
	if err != nil {
		h.log.Error("assistant failed to answer", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, reply)
}

// GET /api/chat/suggestions
func (h *ChatHandler) Suggestions(c *gin.Context) {
	out := []string{}
	if h.suggestions != nil {
		out = append(out, h.suggestions.Questions()...)
	}
	response.RespondOK(c, gin.H{"suggestions": out})
}

// POST /api/test-intent
func (h *ChatHandler) TestIntent(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errQueryRequired})
		return
	}
	res := h.assistant.Analyze(query)
	response.RespondOK(c, gin.H{
		"success":    true,
		"query":      query,
		"intent":     res.Intent,
		"confidence": res.Confidence,
		"keywords":   res.Keywords,
		"entities":   res.Entities,
		"scores":     res.Scores,
	})
}

func (h *ChatHandler) reject(reason string) {
	if h.rejections != nil {
		h.rejections.IncRejected(reason)
	}
}
