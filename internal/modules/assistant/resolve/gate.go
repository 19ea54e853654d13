package resolve

import "github.com/yungbote/portfolio-assistant/internal/modules/assistant/answer"

// PatternBoost is the confidence a positive trigger match lifts a query to.
const PatternBoost = 0.8

type Gate struct {
	Boost            float64
	DefaultThreshold float64
}

func NewGate() Gate {
	return Gate{Boost: PatternBoost, DefaultThreshold: answer.DefaultThreshold}
}

type Decision struct {
	Pass       bool
	Confidence float64
	Threshold  float64
}

// Evaluate combines the intent confidence with the match. A nil match never
// passes.
func (g Gate) Evaluate(intentConfidence float64, m *Match) Decision {
	d := Decision{Confidence: intentConfidence, Threshold: g.DefaultThreshold}
	if m == nil {
		return d
	}
	if m.PatternScore > 0 && g.Boost > d.Confidence {
		d.Confidence = g.Boost
	}
	if t := m.Record.Threshold; t > 0 {
		d.Threshold = t
	}
	d.Pass = d.Confidence >= d.Threshold
	return d
}
