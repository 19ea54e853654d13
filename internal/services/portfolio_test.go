package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/portfolio-assistant/internal/data/repos"
	"github.com/yungbote/portfolio-assistant/internal/data/repos/testutil"
	"github.com/yungbote/portfolio-assistant/internal/data/seed"
	perrors "github.com/yungbote/portfolio-assistant/internal/pkg/errors"
	"github.com/yungbote/portfolio-assistant/internal/platform/githubstats"
)

type fakeStats map[string]githubstats.Stats

func (f fakeStats) RepoStats(_ context.Context, u string) (githubstats.Stats, error) {
	st, ok := f[u]
	if !ok {
		return githubstats.Stats{}, errors.New("not found")
	}
	return st, nil
}

func newSeededPortfolio(t *testing.T, stats RepoStatter) PortfolioService {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	f, err := seed.Load()
	if err != nil {
		t.Fatalf("seed.Load: %v", err)
	}
	if _, err := seed.Apply(context.Background(), db, log, f); err != nil {
		t.Fatalf("seed.Apply: %v", err)
	}
	return NewPortfolioService(log,
		repos.NewSkillRepo(db, log),
		repos.NewEducationRepo(db, log),
		repos.NewExperienceRepo(db, log),
		repos.NewProjectRepo(db, log),
		repos.NewResearchRepo(db, log),
		stats,
	)
}

func TestPortfolioFetchAllCategories(t *testing.T) {
	svc := newSeededPortfolio(t, nil)
	ctx := context.Background()

	skills, err := svc.Skills(ctx)
	if err != nil || len(skills) == 0 {
		t.Fatalf("Skills: n=%d err=%v", len(skills), err)
	}
	for _, cat := range []string{"skills", "education", "experience", "projects", "research"} {
		v, err := svc.Fetch(ctx, cat)
		if err != nil || v == nil {
			t.Fatalf("Fetch(%s): v=%v err=%v", cat, v, err)
		}
	}
	if _, err := svc.Fetch(ctx, "hobbies"); !errors.Is(err, perrors.ErrInvalidArgument) {
		t.Fatalf("Fetch unknown: got=%v want ErrInvalidArgument", err)
	}
}

func TestPortfolioProjectsDecoration(t *testing.T) {
	svc := newSeededPortfolio(t, fakeStats{
		"https://github.com/suresh/healthcare-dashboard": {Stars: 12, Forks: 3, Language: "TypeScript"},
	})
	projects, err := svc.Projects(context.Background())
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	decorated := 0
	for _, p := range projects {
		switch p.Github {
		case "https://github.com/suresh/healthcare-dashboard":
			if p.Stars != 12 || p.Forks != 3 || p.Language != "TypeScript" {
				t.Fatalf("decorated project: %+v", p)
			}
			decorated++
		case "https://github.com/suresh/dev-tools":
			if p.Stars != 0 || p.Forks != 0 {
				t.Fatalf("failed lookup should leave zeros: %+v", p)
			}
		}
	}
	if decorated != 1 {
		t.Fatalf("decorated projects: got=%d want=1", decorated)
	}
}
