package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/portfolio-assistant/internal/data/repos"
	types "github.com/yungbote/portfolio-assistant/internal/domain"
	"github.com/yungbote/portfolio-assistant/internal/pkg/dbctx"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

type Stats struct {
	Intents   int
	Responses int
	FollowUps int
	Portfolio int
}

// Apply upserts the whole seed in one transaction. Running it twice leaves
// the store unchanged.
func Apply(ctx context.Context, db *gorm.DB, log *logger.Logger, f *File) (Stats, error) {
	log = log.With("service", "Seeder")
	var stats Stats
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		intentRepo := repos.NewIntentRepo(tx, log)
		intentIDs := map[string]*types.Intent{}
		for _, in := range f.Intents {
			row, err := intentRepo.Upsert(dbc, &types.Intent{
				Name:                in.Name,
				Description:         in.Description,
				ConfidenceThreshold: in.ConfidenceThreshold,
			})
			if err != nil {
				return fmt.Errorf("intent %s: %w", in.Name, err)
			}
			intentIDs[in.Name] = row
			stats.Intents++
		}

		responseRepo := repos.NewResponseRepo(tx, log)
		for i, r := range f.Responses {
			intent := intentIDs[r.Intent]
			var data datatypes.JSON
			if r.ResponseData != nil {
				raw, err := json.Marshal(r.ResponseData)
				if err != nil {
					return fmt.Errorf("response %s data: %w", r.Slug, err)
				}
				data = datatypes.JSON(raw)
			}
			if _, err := responseRepo.Upsert(dbc, &types.Response{
				IntentID:          intent.ID,
				Slug:              r.Slug,
				Position:          i,
				TriggerPatterns:   r.TriggerPatterns,
				ResponseText:      r.ResponseText,
				ResponseType:      r.ResponseType,
				ResponseData:      data,
				FollowUpQuestions: r.FollowUpQuestions,
			}); err != nil {
				return fmt.Errorf("response %s: %w", r.Slug, err)
			}
			stats.Responses++
		}

		followUpRepo := repos.NewFollowUpRepo(tx, log)
		bank := f.FollowUpBank()
		cats := make([]string, 0, len(bank))
		for cat := range bank {
			cats = append(cats, cat)
		}
		sort.Strings(cats)
		for _, cat := range cats {
			for i, q := range bank[cat] {
				if _, err := followUpRepo.Upsert(dbc, &types.FollowUpQuestion{
					Category:     cat,
					Question:     q.Question,
					Answer:       q.Answer,
					ResponseType: q.ResponseType,
					Position:     i,
				}); err != nil {
					return fmt.Errorf("follow-up %q: %w", q.Question, err)
				}
				stats.FollowUps++
			}
		}

		n, err := applyPortfolio(dbc, tx, log, f)
		if err != nil {
			return err
		}
		stats.Portfolio = n
		return nil
	})
	if err != nil {
		return Stats{}, fmt.Errorf("seed: %w", err)
	}
	log.Info("Seed applied",
		"intents", stats.Intents,
		"responses", stats.Responses,
		"follow_ups", stats.FollowUps,
		"portfolio_rows", stats.Portfolio,
	)
	return stats, nil
}

func applyPortfolio(dbc dbctx.Context, tx *gorm.DB, log *logger.Logger, f *File) (int, error) {
	rows, err := f.PortfolioRows()
	if err != nil {
		return 0, err
	}
	n := 0
	skills := repos.NewSkillRepo(tx, log)
	for _, s := range rows.Skills {
		if _, err := skills.Upsert(dbc, s); err != nil {
			return n, fmt.Errorf("skill %s: %w", s.SkillName, err)
		}
		n++
	}
	education := repos.NewEducationRepo(tx, log)
	for _, e := range rows.Education {
		if _, err := education.Upsert(dbc, e); err != nil {
			return n, fmt.Errorf("education %s: %w", e.Degree, err)
		}
		n++
	}
	experience := repos.NewExperienceRepo(tx, log)
	for _, e := range rows.Experience {
		if _, err := experience.Upsert(dbc, e); err != nil {
			return n, fmt.Errorf("experience %s: %w", e.Title, err)
		}
		n++
	}
	projects := repos.NewProjectRepo(tx, log)
	for _, p := range rows.Projects {
		if _, err := projects.Upsert(dbc, p); err != nil {
			return n, fmt.Errorf("project %s: %w", p.Title, err)
		}
		n++
	}
	research := repos.NewResearchRepo(tx, log)
	for _, r := range rows.Research {
		if _, err := research.Upsert(dbc, r); err != nil {
			return n, fmt.Errorf("paper %s: %w", r.Title, err)
		}
		n++
	}
	return n, nil
}
