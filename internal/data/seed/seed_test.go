package seed

import (
	"context"
	"testing"

	"github.com/yungbote/portfolio-assistant/internal/data/repos"
	"github.com/yungbote/portfolio-assistant/internal/data/repos/testutil"
	"github.com/yungbote/portfolio-assistant/internal/domain/portfolio"
	"github.com/yungbote/portfolio-assistant/internal/pkg/dbctx"
)

func TestEmbeddedSeedLoads(t *testing.T) {
	f, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Intents) != 8 {
		t.Fatalf("unexpected intents: got=%d want=8", len(f.Intents))
	}
	if len(f.Responses) != 6 || f.Responses[0].Slug != "skills" {
		t.Fatalf("unexpected responses: %+v", f.Responses)
	}
	if len(f.Predefined) != 6 {
		t.Fatalf("unexpected predefined entries: got=%d", len(f.Predefined))
	}
	skills, ok := f.Predefined[0].Data.([]portfolio.SkillCategory)
	if !ok || len(skills) != 4 {
		t.Fatalf("skills canonical data not filled from portfolio: %#v", f.Predefined[0].Data)
	}
	bank := f.FollowUpBank()
	for _, cat := range []string{"skills", "education", "experience", "projects", "research", "overview"} {
		if len(bank[cat]) != 8 {
			t.Fatalf("category %s: got=%d questions want=8", cat, len(bank[cat]))
		}
	}
}

func TestParseRejectsUnknownIntent(t *testing.T) {
	_, err := Parse([]byte(`
intents:
  - name: A
responses:
  - slug: x
    intent: B
    response_text: hi
`))
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	f, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ctx := context.Background()

	first, err := Apply(ctx, db, log, f)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := Apply(ctx, db, log, f); err != nil {
		t.Fatalf("second Apply: %v", err)
	}

	dbc := dbctx.Context{Ctx: ctx}
	rows, err := repos.NewResponseRepo(db, log).ListWithIntent(dbc)
	if err != nil {
		t.Fatalf("ListWithIntent: %v", err)
	}
	if len(rows) != first.Responses {
		t.Fatalf("responses duplicated: got=%d want=%d", len(rows), first.Responses)
	}
	if rows[0].Slug != "skills" || rows[0].Intent == nil || rows[0].Intent.Threshold() != 0.6 {
		t.Fatalf("unexpected first response: %+v", rows[0])
	}
	all, err := repos.NewFollowUpRepo(db, log).ListAll(dbc)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 48 {
		t.Fatalf("unexpected follow-ups: got=%d want=48", len(all))
	}
}
