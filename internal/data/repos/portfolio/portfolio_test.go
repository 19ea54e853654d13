package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/portfolio-assistant/internal/data/repos/testutil"
	types "github.com/yungbote/portfolio-assistant/internal/domain"
	"github.com/yungbote/portfolio-assistant/internal/pkg/dbctx"
)

func TestSkillRepoListActive(t *testing.T) {
	db := testutil.DB(t)
	repo := NewSkillRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}

	rows := []*types.Skill{
		{CategoryName: "Languages", SkillName: "Go", SkillLevel: 90, SortOrder: 2, IsActive: true},
		{CategoryName: "Languages", SkillName: "Python", SkillLevel: 95, SortOrder: 1, IsActive: true},
		{CategoryName: "Cloud", SkillName: "AWS", SkillLevel: 80, SortOrder: 1, IsActive: true},
		{CategoryName: "Cloud", SkillName: "Heroku", SkillLevel: 40, SortOrder: 2, IsActive: false},
	}
	for _, row := range rows {
		if _, err := repo.Upsert(dbc, row); err != nil {
			t.Fatalf("Upsert %s: %v", row.SkillName, err)
		}
	}
	// Upserting an existing skill keeps it inactive.
	if _, err := repo.Upsert(dbc, &types.Skill{CategoryName: "Cloud", SkillName: "Heroku", IsActive: false}); err != nil {
		t.Fatalf("re-Upsert: %v", err)
	}

	got, err := repo.ListActive(dbc)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	want := []string{"AWS", "Python", "Go"}
	if len(got) != len(want) {
		t.Fatalf("unexpected count: got=%d want=%d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].SkillName != name {
			t.Fatalf("position %d: got=%s want=%s", i, got[i].SkillName, name)
		}
	}
}

func TestProjectRepoOrdersFeaturedFirst(t *testing.T) {
	db := testutil.DB(t)
	repo := NewProjectRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}

	older := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, row := range []*types.Project{
		{Title: "side", StartDate: &newer},
		{Title: "flagship", Featured: true, StartDate: &older},
	} {
		if _, err := repo.Upsert(dbc, row); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}
	got, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Title != "flagship" {
		t.Fatalf("unexpected order: %+v", got)
	}
}
