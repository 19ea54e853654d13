// Package fallback answers queries the primary pipeline could not resolve
// with enough confidence. Strategies run in order and the first hit wins.
package fallback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/answer"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/followup"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/lexical"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

const (
	NameExactMatch      = "exact_match"
	NameFollowUpAnswer  = "follow_up_answer"
	NameKeywordCategory = "keyword_category"
	NameContactRequest  = "contact_request"
)

// ErrExhausted is returned when no strategy produced a reply.
var ErrExhausted = errors.New("fallback: no strategy answered")

type Strategy interface {
	Name() string
	Attempt(ctx context.Context, query string) (answer.Reply, bool)
}

// Questioner yields follow-up suggestions for a response type.
type Questioner interface {
	Questions(ctx context.Context, category string) []string
}

// Answerer looks a follow-up question up verbatim.
type Answerer interface {
	Answer(ctx context.Context, question string) (followup.Entry, bool)
}

type Chain struct {
	strategies []Strategy
	log        *logger.Logger
}

func NewChain(log *logger.Logger, strategies ...Strategy) *Chain {
	if log == nil {
		log = logger.Nop()
	}
	return &Chain{strategies: strategies, log: log.With("service", "FallbackChain")}
}

// Default builds the chain exact_match -> follow_up_answer ->
// keyword_category -> contact_request.
func Default(table *Table, gen *followup.Generator, log *logger.Logger) *Chain {
	var (
		q Questioner
		a Answerer
	)
	if gen != nil {
		q, a = gen, gen
	}
	return NewChain(log,
		ExactMatch{Table: table, FollowUps: q},
		FollowUpAnswer{Answers: a},
		KeywordCategory{Table: table, FollowUps: q, Categories: DefaultCategories()},
		ContactRequest{},
	)
}

func (c *Chain) Names() []string {
	out := make([]string, 0, len(c.strategies))
	for _, s := range c.strategies {
		out = append(out, s.Name())
	}
	return out
}

// Run tries each strategy in order. A panicking strategy is skipped.
func (c *Chain) Run(ctx context.Context, query string) (answer.Reply, error) {
	for _, s := range c.strategies {
		reply, ok, err := c.attempt(ctx, s, query)
		if err != nil {
			c.log.Error("fallback strategy failed", "strategy", s.Name(), "error", err)
			continue
		}
		if ok {
			reply.Source = s.Name()
			c.log.Debug("fallback strategy answered", "strategy", s.Name())
			return reply, nil
		}
	}
	return answer.Reply{}, ErrExhausted
}

func (c *Chain) attempt(ctx context.Context, s Strategy, query string) (reply answer.Reply, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	reply, ok = s.Attempt(ctx, query)
	return reply, ok, nil
}

// ExactMatch answers a query that equals a predefined question after trimming.
type ExactMatch struct {
	Table     *Table
	FollowUps Questioner
}

func (ExactMatch) Name() string { return NameExactMatch }

func (s ExactMatch) Attempt(ctx context.Context, query string) (answer.Reply, bool) {
	if s.Table == nil {
		return answer.Reply{}, false
	}
	c, ok := s.Table.Lookup(query)
	if !ok {
		return answer.Reply{}, false
	}
	return canonicalReply(ctx, c, s.FollowUps), true
}

// FollowUpAnswer answers a query that is one of the follow-up questions. No
// further suggestions are attached.
type FollowUpAnswer struct {
	Answers Answerer
}

func (FollowUpAnswer) Name() string { return NameFollowUpAnswer }

func (s FollowUpAnswer) Attempt(ctx context.Context, query string) (answer.Reply, bool) {
	if s.Answers == nil {
		return answer.Reply{}, false
	}
	e, ok := s.Answers.Answer(ctx, query)
	if !ok {
		return answer.Reply{}, false
	}
	return answer.Reply{
		Kind:              answer.KindPredefined,
		Response:          e.Answer,
		FollowUpQuestions: []string{},
	}, true
}

// Category maps representative words to the response type they select.
type Category struct {
	Name         string
	ResponseType string
	Words        []string
}

func DefaultCategories() []Category {
	return []Category{
		{Name: "skills", ResponseType: "skills", Words: []string{"skill", "technology", "programming", "technical", "expertise", "languages", "frameworks"}},
		{Name: "education", ResponseType: "education", Words: []string{"education", "degree", "phd", "university", "academic", "study"}},
		{Name: "experience", ResponseType: "experience", Words: []string{"experience", "work", "job", "career", "professional", "company"}},
		{Name: "projects", ResponseType: "projects", Words: []string{"project", "built", "created", "developed", "portfolio"}},
		{Name: "research", ResponseType: "research", Words: []string{"research", "paper", "publication", "published", "academic"}},
		{Name: "background", ResponseType: "overview", Words: []string{"background", "about", "who", "biography", "overview"}},
	}
}

// KeywordCategory picks the first category with a substring hit and answers
// with that type's canonical entry.
type KeywordCategory struct {
	Table      *Table
	FollowUps  Questioner
	Categories []Category
}

func (KeywordCategory) Name() string { return NameKeywordCategory }

func (s KeywordCategory) Attempt(ctx context.Context, query string) (answer.Reply, bool) {
	if s.Table == nil {
		return answer.Reply{}, false
	}
	folded := lexical.Fold(query)
	for _, cat := range s.Categories {
		if !containsAny(folded, cat.Words) {
			continue
		}
		if c, ok := s.Table.ByType(cat.ResponseType); ok {
			return canonicalReply(ctx, c, s.FollowUps), true
		}
	}
	return answer.Reply{}, false
}

const contactMessage = `Thank you for your question! This seems like a specific inquiry that isn't covered in my predefined responses.

I'd love to give you a personalized answer! This website is a portfolio showcase, not an actual AI - but I (Suresh) do read all questions personally.

Would you like to leave your email address so I can get back to you with a detailed response? I typically respond within 24 hours.`

// ContactRequest always answers, asking the visitor to leave an email.
type ContactRequest struct {
	Message string
}

func (ContactRequest) Name() string { return NameContactRequest }

func (s ContactRequest) Attempt(context.Context, string) (answer.Reply, bool) {
	msg := s.Message
	if msg == "" {
		msg = contactMessage
	}
	return answer.Reply{Kind: answer.KindCustom, Response: msg, RequiresEmail: true}, true
}

func canonicalReply(ctx context.Context, c Canonical, q Questioner) answer.Reply {
	var follow []string
	if q != nil {
		follow = q.Questions(ctx, c.Type)
	}
	return answer.Reply{
		Kind:              answer.KindPredefined,
		Response:          c.Answer,
		Data:              c.Payload(),
		FollowUpQuestions: follow,
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(s, w) {
			return true
		}
	}
	return false
}
