package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultConfidenceThreshold applies when an intent row has no threshold of its own.
const DefaultConfidenceThreshold = 0.6

type Intent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;size:50;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"column:description;type:text;not null;default:''" json:"description"`

	ConfidenceThreshold *float64 `gorm:"column:confidence_threshold" json:"confidence_threshold,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Intent) TableName() string { return "intents" }

func (i *Intent) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Threshold returns the configured threshold or the default.
func (i *Intent) Threshold() float64 {
	if i == nil || i.ConfidenceThreshold == nil || *i.ConfidenceThreshold <= 0 {
		return DefaultConfidenceThreshold
	}
	return *i.ConfidenceThreshold
}
