package domain

import (
	"github.com/yungbote/portfolio-assistant/internal/domain/chat"
	"github.com/yungbote/portfolio-assistant/internal/domain/portfolio"
)

type Intent = chat.Intent
type Response = chat.Response
type UserQuery = chat.UserQuery
type FollowUpQuestion = chat.FollowUpQuestion

type Skill = portfolio.Skill
type Education = portfolio.Education
type Experience = portfolio.Experience
type Project = portfolio.Project
type ResearchPaper = portfolio.ResearchPaper

const DefaultConfidenceThreshold = chat.DefaultConfidenceThreshold

const (
	ResponseTypeText       = chat.ResponseTypeText
	ResponseTypeSkills     = chat.ResponseTypeSkills
	ResponseTypeEducation  = chat.ResponseTypeEducation
	ResponseTypeExperience = chat.ResponseTypeExperience
	ResponseTypeProjects   = chat.ResponseTypeProjects
	ResponseTypeResearch   = chat.ResponseTypeResearch
	ResponseTypeOverview   = chat.ResponseTypeOverview
	ResponseTypeContact    = chat.ResponseTypeContact
)

// AllModels lists every table owned by the service, in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&chat.Intent{},
		&chat.Response{},
		&chat.UserQuery{},
		&chat.FollowUpQuestion{},

		&portfolio.Skill{},
		&portfolio.Education{},
		&portfolio.Experience{},
		&portfolio.Project{},
		&portfolio.ResearchPaper{},
	}
}
