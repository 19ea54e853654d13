package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ResponseTypeText       = "text"
	ResponseTypeSkills     = "skills"
	ResponseTypeEducation  = "education"
	ResponseTypeExperience = "experience"
	ResponseTypeProjects   = "projects"
	ResponseTypeResearch   = "research"
	ResponseTypeOverview   = "overview"
	ResponseTypeContact    = "contact"
)

// Response is a canned answer owned by one intent. Position fixes the
// iteration order the resolver sees.
type Response struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IntentID uuid.UUID `gorm:"type:uuid;not null;index" json:"intent_id"`
	Intent   *Intent   `gorm:"constraint:OnDelete:CASCADE;foreignKey:IntentID;references:ID" json:"intent,omitempty"`

	Slug     string `gorm:"column:slug;size:64;not null;uniqueIndex" json:"slug"`
	Position int    `gorm:"column:position;not null;default:0;index" json:"position"`

	TriggerPatterns   datatypes.JSONSlice[string] `gorm:"column:trigger_patterns" json:"trigger_patterns"`
	ResponseText      string                      `gorm:"column:response_text;type:text;not null" json:"response_text"`
	ResponseType      string                      `gorm:"column:response_type;size:20;not null;default:'text'" json:"response_type"`
	ResponseData      datatypes.JSON              `gorm:"column:response_data" json:"response_data,omitempty"`
	FollowUpQuestions datatypes.JSONSlice[string] `gorm:"column:follow_up_questions" json:"follow_up_questions,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Response) TableName() string { return "responses" }

func (r *Response) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
