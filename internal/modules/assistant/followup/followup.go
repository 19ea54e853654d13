// Package followup serves suggested next questions and their stored answers.
package followup

import (
	"context"
	"errors"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/yungbote/portfolio-assistant/internal/data/seed"
	types "github.com/yungbote/portfolio-assistant/internal/domain"
	"github.com/yungbote/portfolio-assistant/internal/pkg/dbctx"
	perrors "github.com/yungbote/portfolio-assistant/internal/pkg/errors"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

// MaxQuestions bounds every list returned by Questions.
const MaxQuestions = 5

// Store is the part of the follow-up repository the generator reads.
type Store interface {
	ListByCategory(dbc dbctx.Context, category string) ([]*types.FollowUpQuestion, error)
	ListAll(dbc dbctx.Context) ([]*types.FollowUpQuestion, error)
	GetByQuestion(dbc dbctx.Context, question string) (*types.FollowUpQuestion, error)
}

type Entry struct {
	Category     string
	Question     string
	Answer       string
	ResponseType string
}

// Bank is the built-in category -> entries table used when the store has
// nothing to offer.
type Bank map[string][]Entry

func BankFromSeed(f *seed.File) Bank {
	if f == nil {
		return Bank{}
	}
	out := Bank{}
	for cat, list := range f.FollowUpBank() {
		for _, q := range list {
			out[cat] = append(out[cat], Entry{
				Category:     cat,
				Question:     q.Question,
				Answer:       q.Answer,
				ResponseType: q.ResponseType,
			})
		}
	}
	return out
}

type Option func(*Generator)

// WithRand makes shuffling reproducible. The source is not shared safely
// across goroutines, so use it in tests only.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.shuffle = r.Shuffle }
}

func WithLimit(n int) Option {
	return func(g *Generator) {
		if n > 0 && n <= MaxQuestions {
			g.limit = n
		}
	}
}

type Generator struct {
	store   Store
	bank    Bank
	limit   int
	shuffle func(n int, swap func(i, j int))
	log     *logger.Logger
}

func New(store Store, bank Bank, log *logger.Logger, opts ...Option) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	g := &Generator{
		store:   store,
		bank:    bank,
		limit:   MaxQuestions,
		shuffle: rand.Shuffle,
		log:     log.With("service", "FollowUpGenerator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Questions returns up to five questions of category in random order. It
// never fails; an unknown category yields an empty list.
func (g *Generator) Questions(ctx context.Context, category string) []string {
	list := g.questions(ctx, strings.TrimSpace(category))
	g.shuffle(len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })
	if len(list) > g.limit {
		list = list[:g.limit]
	}
	return list
}

func (g *Generator) questions(ctx context.Context, category string) []string {
	if g.store != nil {
		rows, err := g.store.ListByCategory(dbctx.Context{Ctx: ctx}, category)
		if err != nil {
			g.log.Warn("follow-up store unavailable, using built-in bank", "category", category, "error", err)
		} else if len(rows) > 0 {
			out := make([]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, r.Question)
			}
			return out
		}
	}
	entries := g.bank[category]
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Question)
	}
	return out
}

// Answer looks question up verbatim. The built-in bank is consulted only
// when the store is unreachable or holds no follow-ups at all.
func (g *Generator) Answer(ctx context.Context, question string) (Entry, bool) {
	if question == "" {
		return Entry{}, false
	}
	if g.store != nil {
		dbc := dbctx.Context{Ctx: ctx}
		row, err := g.store.GetByQuestion(dbc, question)
		switch {
		case err == nil:
			return Entry{Category: row.Category, Question: row.Question, Answer: row.Answer, ResponseType: row.ResponseType}, true
		case errors.Is(err, perrors.ErrNotFound):
			all, lerr := g.store.ListAll(dbc)
			if lerr == nil && len(all) > 0 {
				return Entry{}, false
			}
		default:
			g.log.Warn("follow-up lookup failed, using built-in bank", "error", err)
		}
	}
	for _, entries := range g.bank {
		for _, e := range entries {
			if e.Question == question {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Categories lists the categories known to the built-in bank.
func (g *Generator) Categories() []string {
	out := make([]string, 0, len(g.bank))
	for cat := range g.bank {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}
