package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowUpQuestion is one entry of the per-category follow-up bank. The
// question text is unique so it can be answered verbatim.
type FollowUpQuestion struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Category     string    `gorm:"column:category;size:20;not null;index" json:"category"`
	Question     string    `gorm:"column:question;type:text;not null;uniqueIndex" json:"question"`
	Answer       string    `gorm:"column:answer;type:text;not null" json:"answer"`
	ResponseType string    `gorm:"column:response_type;size:20;not null;default:'text'" json:"response_type"`
	Position     int       `gorm:"column:position;not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (FollowUpQuestion) TableName() string { return "follow_up_questions" }

func (f *FollowUpQuestion) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
