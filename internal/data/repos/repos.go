package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/portfolio-assistant/internal/data/repos/chat"
	"github.com/yungbote/portfolio-assistant/internal/data/repos/portfolio"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

type IntentRepo = chat.IntentRepo
type ResponseRepo = chat.ResponseRepo
type FollowUpRepo = chat.FollowUpRepo
type UserQueryRepo = chat.UserQueryRepo

type SkillRepo = portfolio.SkillRepo
type EducationRepo = portfolio.EducationRepo
type ExperienceRepo = portfolio.ExperienceRepo
type ProjectRepo = portfolio.ProjectRepo
type ResearchRepo = portfolio.ResearchRepo

func NewIntentRepo(db *gorm.DB, baseLog *logger.Logger) IntentRepo {
	return chat.NewIntentRepo(db, baseLog)
}
func NewResponseRepo(db *gorm.DB, baseLog *logger.Logger) ResponseRepo {
	return chat.NewResponseRepo(db, baseLog)
}
func NewFollowUpRepo(db *gorm.DB, baseLog *logger.Logger) FollowUpRepo {
	return chat.NewFollowUpRepo(db, baseLog)
}
func NewUserQueryRepo(db *gorm.DB, baseLog *logger.Logger) UserQueryRepo {
	return chat.NewUserQueryRepo(db, baseLog)
}

func NewSkillRepo(db *gorm.DB, baseLog *logger.Logger) SkillRepo {
	return portfolio.NewSkillRepo(db, baseLog)
}
func NewEducationRepo(db *gorm.DB, baseLog *logger.Logger) EducationRepo {
	return portfolio.NewEducationRepo(db, baseLog)
}
func NewExperienceRepo(db *gorm.DB, baseLog *logger.Logger) ExperienceRepo {
	return portfolio.NewExperienceRepo(db, baseLog)
}
func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return portfolio.NewProjectRepo(db, baseLog)
}
func NewResearchRepo(db *gorm.DB, baseLog *logger.Logger) ResearchRepo {
	return portfolio.NewResearchRepo(db, baseLog)
}
