// Package answer holds the values passed between the stages of the assistant
// pipeline: immutable response snapshots going in and replies coming out.
package answer

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/yungbote/portfolio-assistant/internal/domain/chat"
	"github.com/yungbote/portfolio-assistant/internal/domain/portfolio"
)

// Reply kinds as seen by the visitor.
const (
	KindPredefined    = "predefined"
	KindCustom        = "custom"
	KindMoralGuidance = "moral_guidance"
)

// Record is a read-only snapshot of one stored response together with the
// name and threshold of its owning intent.
type Record struct {
	ID              uuid.UUID
	Intent          string
	TriggerPatterns []string
	Body            string
	Type            string
	Payload         json.RawMessage
	FollowUps       []string
	Threshold       float64
}

// Payload is the structured part of a reply.
type Payload struct {
	Type         string `json:"type"`
	Data         any    `json:"data"`
	TextResponse string `json:"textResponse"`
}

type Reply struct {
	Kind              string   `json:"type"`
	Response          string   `json:"response"`
	Data              *Payload `json:"data,omitempty"`
	FollowUpQuestions []string `json:"followUpQuestions,omitempty"`
	Confidence        *float64 `json:"confidence,omitempty"`
	DetectedIntent    string   `json:"detectedIntent,omitempty"`
	RequiresEmail     bool     `json:"requiresEmail"`

	// Source names the stage that produced the reply.
	Source     string     `json:"-"`
	ResponseID *uuid.UUID `json:"-"`
}

// IsLive reports whether responses of this type carry a live portfolio
// collection instead of their stored payload.
func IsLive(responseType string) bool {
	return portfolio.IsCategory(responseType)
}

// DefaultThreshold is applied when a record carries no usable threshold.
const DefaultThreshold = chat.DefaultConfidenceThreshold
