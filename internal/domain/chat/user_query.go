package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserQuery is the audit row written for every query served from the corpus.
type UserQuery struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Query          string     `gorm:"column:query;type:text;not null" json:"query"`
	DetectedIntent string     `gorm:"column:detected_intent;size:50;index" json:"detected_intent"`
	Confidence     float64    `gorm:"column:confidence" json:"confidence"`
	ResponseID     *uuid.UUID `gorm:"type:uuid;column:response_id;index" json:"response_id,omitempty"`
	UserFeedback   *int       `gorm:"column:user_feedback" json:"user_feedback,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

func (UserQuery) TableName() string { return "user_queries" }

func (q *UserQuery) BeforeCreate(*gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
