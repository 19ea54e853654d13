package followup

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/yungbote/portfolio-assistant/internal/data/seed"
	types "github.com/yungbote/portfolio-assistant/internal/domain"
	"github.com/yungbote/portfolio-assistant/internal/pkg/dbctx"
	perrors "github.com/yungbote/portfolio-assistant/internal/pkg/errors"
)

type fakeStore struct {
	rows []*types.FollowUpQuestion
	err  error
}

func (s *fakeStore) ListByCategory(_ dbctx.Context, category string) ([]*types.FollowUpQuestion, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*types.FollowUpQuestion
	for _, r := range s.rows {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeStore) ListAll(dbctx.Context) ([]*types.FollowUpQuestion, error) {
	return s.rows, s.err
}

func (s *fakeStore) GetByQuestion(_ dbctx.Context, q string) (*types.FollowUpQuestion, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.rows {
		if r.Question == q {
			return r, nil
		}
	}
	return nil, perrors.ErrNotFound
}

func testBank() Bank {
	return Bank{
		"skills": {
			{Category: "skills", Question: "s1", Answer: "a1"},
			{Category: "skills", Question: "s2", Answer: "a2"},
			{Category: "skills", Question: "s3", Answer: "a3"},
			{Category: "skills", Question: "s4", Answer: "a4"},
			{Category: "skills", Question: "s5", Answer: "a5"},
			{Category: "skills", Question: "s6", Answer: "a6"},
			{Category: "skills", Question: "s7", Answer: "a7"},
		},
		"research": {{Category: "research", Question: "r1", Answer: "ra1"}},
	}
}

func TestQuestionsBoundedAndShuffled(t *testing.T) {
	bank := testBank()
	g := New(nil, bank, nil, WithRand(rand.New(rand.NewPCG(1, 2))))

	got := g.Questions(context.Background(), "skills")
	if len(got) != MaxQuestions {
		t.Fatalf("Questions: got %d want %d", len(got), MaxQuestions)
	}
	seen := map[string]bool{}
	for _, q := range got {
		if seen[q] {
			t.Fatalf("duplicate question %q in %v", q, got)
		}
		seen[q] = true
	}
	if bank["skills"][0].Question != "s1" || bank["skills"][6].Question != "s7" {
		t.Fatalf("stored order was mutated: %+v", bank["skills"])
	}

	if got := g.Questions(context.Background(), "research"); len(got) != 1 || got[0] != "r1" {
		t.Fatalf("small category: %v", got)
	}
	if got := g.Questions(context.Background(), "unknown"); len(got) != 0 {
		t.Fatalf("unknown category: %v", got)
	}
}

func TestQuestionsPrefersStore(t *testing.T) {
	store := &fakeStore{rows: []*types.FollowUpQuestion{{Category: "skills", Question: "from store"}}}
	g := New(store, testBank(), nil)
	if got := g.Questions(context.Background(), "skills"); len(got) != 1 || got[0] != "from store" {
		t.Fatalf("Questions: got=%v", got)
	}
	// Empty store category falls back to the bank.
	if got := g.Questions(context.Background(), "research"); len(got) != 1 || got[0] != "r1" {
		t.Fatalf("Questions research: got=%v", got)
	}

	broken := New(&fakeStore{err: errors.New("db down")}, testBank(), nil)
	if got := broken.Questions(context.Background(), "skills"); len(got) != MaxQuestions {
		t.Fatalf("broken store should use bank, got=%v", got)
	}
}

func TestAnswer(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{rows: []*types.FollowUpQuestion{{Category: "skills", Question: "q", Answer: "stored"}}}

	g := New(store, testBank(), nil)
	if e, ok := g.Answer(ctx, "q"); !ok || e.Answer != "stored" {
		t.Fatalf("Answer store hit: ok=%v e=%+v", ok, e)
	}
	if _, ok := g.Answer(ctx, "s1"); ok {
		t.Fatalf("populated store must not fall through to the bank")
	}

	empty := New(&fakeStore{}, testBank(), nil)
	if e, ok := empty.Answer(ctx, "s1"); !ok || e.Answer != "a1" {
		t.Fatalf("empty store should use bank: ok=%v e=%+v", ok, e)
	}
	broken := New(&fakeStore{err: errors.New("db down")}, testBank(), nil)
	if e, ok := broken.Answer(ctx, "r1"); !ok || e.Answer != "ra1" {
		t.Fatalf("broken store should use bank: ok=%v e=%+v", ok, e)
	}
	if _, ok := broken.Answer(ctx, ""); ok {
		t.Fatalf("empty question must not match")
	}
}

func TestBankFromSeed(t *testing.T) {
	f, err := seed.Load()
	if err != nil {
		t.Fatalf("seed.Load: %v", err)
	}
	bank := BankFromSeed(f)
	for _, cat := range []string{"skills", "education", "experience", "projects", "research", "overview"} {
		if len(bank[cat]) == 0 {
			t.Fatalf("bank missing category %q", cat)
		}
	}
	g := New(nil, bank, nil)
	if got := g.Questions(context.Background(), "skills"); len(got) == 0 || len(got) > MaxQuestions {
		t.Fatalf("seed questions: %v", got)
	}
}
