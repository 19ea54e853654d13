package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/portfolio-assistant/internal/data/repos"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

type Repos struct {
	Intent    repos.IntentRepo
	Response  repos.ResponseRepo
	FollowUp  repos.FollowUpRepo
	UserQuery repos.UserQueryRepo

	Skill      repos.SkillRepo
	Education  repos.EducationRepo
	Experience repos.ExperienceRepo
	Project    repos.ProjectRepo
	Research   repos.ResearchRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Intent:    repos.NewIntentRepo(db, log),
		Response:  repos.NewResponseRepo(db, log),
		FollowUp:  repos.NewFollowUpRepo(db, log),
		UserQuery: repos.NewUserQueryRepo(db, log),

		Skill:      repos.NewSkillRepo(db, log),
		Education:  repos.NewEducationRepo(db, log),
		Experience: repos.NewExperienceRepo(db, log),
		Project:    repos.NewProjectRepo(db, log),
		Research:   repos.NewResearchRepo(db, log),
	}
}
