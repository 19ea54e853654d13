package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/portfolio-assistant/internal/data/repos"
	"github.com/yungbote/portfolio-assistant/internal/domain/portfolio"
	"github.com/yungbote/portfolio-assistant/internal/pkg/dbctx"
	perrors "github.com/yungbote/portfolio-assistant/internal/pkg/errors"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
	"github.com/yungbote/portfolio-assistant/internal/platform/githubstats"
)

// RepoStatter decorates projects with repository counters.
type RepoStatter interface {
	RepoStats(ctx context.Context, repoURL string) (githubstats.Stats, error)
}

// PortfolioService reads the live portfolio collections in their display
// shapes. It is the source behind the portfolio cache.
type PortfolioService interface {
	Fetch(ctx context.Context, category string) (any, error)
	Skills(ctx context.Context) ([]portfolio.SkillCategory, error)
	Education(ctx context.Context) ([]portfolio.EducationView, error)
	Experience(ctx context.Context) ([]portfolio.ExperienceView, error)
	Projects(ctx context.Context) ([]portfolio.ProjectView, error)
	Research(ctx context.Context) ([]portfolio.ResearchView, error)
}

type portfolioService struct {
	log        *logger.Logger
	skills     repos.SkillRepo
	education  repos.EducationRepo
	experience repos.ExperienceRepo
	projects   repos.ProjectRepo
	research   repos.ResearchRepo
	stats      RepoStatter
}

// NewPortfolioService leaves projects undecorated when stats is nil.
func NewPortfolioService(
	log *logger.Logger,
	skills repos.SkillRepo,
	education repos.EducationRepo,
	experience repos.ExperienceRepo,
	projects repos.ProjectRepo,
	research repos.ResearchRepo,
	stats RepoStatter,
) PortfolioService {
	return &portfolioService{
		log:        log.With("service", "PortfolioService"),
		skills:     skills,
		education:  education,
		experience: experience,
		projects:   projects,
		research:   research,
		stats:      stats,
	}
}

func (s *portfolioService) Fetch(ctx context.Context, category string) (any, error) {
	switch category {
	case portfolio.CategorySkills:
		return s.Skills(ctx)
	case portfolio.CategoryEducation:
		return s.Education(ctx)
	case portfolio.CategoryExperience:
		return s.Experience(ctx)
	case portfolio.CategoryProjects:
		return s.Projects(ctx)
	case portfolio.CategoryResearch:
		return s.Research(ctx)
	default:
		return nil, fmt.Errorf("unknown portfolio category %q: %w", category, perrors.ErrInvalidArgument)
	}
}

func (s *portfolioService) Skills(ctx context.Context) ([]portfolio.SkillCategory, error) {
	rows, err := s.skills.ListActive(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return portfolio.FormatSkills(rows), nil
}

func (s *portfolioService) Education(ctx context.Context) ([]portfolio.EducationView, error) {
	rows, err := s.education.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, fmt.Errorf("list education: %w", err)
	}
	return portfolio.FormatEducation(rows), nil
}

func (s *portfolioService) Experience(ctx context.Context) ([]portfolio.ExperienceView, error) {
	rows, err := s.experience.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, fmt.Errorf("list experience: %w", err)
	}
	return portfolio.FormatExperience(rows), nil
}

func (s *portfolioService) Research(ctx context.Context) ([]portfolio.ResearchView, error) {
	rows, err := s.research.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, fmt.Errorf("list research: %w", err)
	}
	return portfolio.FormatResearch(rows), nil
}

// Projects decorates entries that link a GitHub repository. A failed lookup
// leaves that project's counters at zero.
func (s *portfolioService) Projects(ctx context.Context) ([]portfolio.ProjectView, error) {
	rows, err := s.projects.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	out := portfolio.FormatProjects(rows)
	if s.stats == nil {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := range out {
		if out[i].Github == "" {
			continue
		}
		g.Go(func() error {
			st, err := s.stats.RepoStats(gctx, out[i].Github)
			if err != nil {
				s.log.Debug("project stats unavailable", "project", out[i].Title, "error", err)
				return nil
			}
			out[i].Stars, out[i].Forks = st.Stars, st.Forks
			if st.Language != "" {
				out[i].Language = st.Language
			}
			return nil
		})
	}
	_ = g.Wait()
	return out, nil
}
