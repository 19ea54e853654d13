package intent

import (
	"strings"

	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/lexical"
)

const (
	keywordWeight   = 0.4
	phraseWeight    = 0.3
	predicateWeight = 0.3

	// MinConfidence is the score below which a query is treated as general.
	MinConfidence = 0.3
	// GeneralConfidence is reported for general queries.
	GeneralConfidence = 0.5
)

type Score struct {
	Intent string  `json:"intent"`
	Score  float64 `json:"score"`
}

type Result struct {
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Entities   lexical.Entities  `json:"entities"`
	Keywords   []string          `json:"keywords"`
	Query      string            `json:"originalQuery"`
	Scores     []Score           `json:"scores"`
	Analysis   *lexical.Analysis `json:"-"`
}

type Scorer struct {
	registry  *Registry
	extractor lexical.Extractor
}

func NewScorer(registry *Registry, extractor lexical.Extractor) *Scorer {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if extractor == nil {
		extractor = lexical.NewExtractor()
	}
	return &Scorer{registry: registry, extractor: extractor}
}

// Score classifies query. It has no side effects.
func (s *Scorer) Score(query string) Result {
	a := s.extractor.Extract(query)
	return s.ScoreAnalysis(&a)
}

func (s *Scorer) ScoreAnalysis(a *lexical.Analysis) Result {
	folded := a.Folded
	if folded == "" && a.Text != "" {
		folded = lexical.Fold(a.Text)
	}

	best, bestScore := General, 0.0
	scores := make([]Score, 0, len(s.registry.patterns))
	for _, p := range s.registry.patterns {
		score := (share(folded, p.Keywords)*keywordWeight +
			share(folded, p.Phrases)*phraseWeight +
			predicateShare(a, p.Predicates)*predicateWeight) * p.Weight
		scores = append(scores, Score{Intent: p.Intent, Score: score})
		if score > bestScore {
			best, bestScore = p.Intent, score
		}
	}
	if bestScore < MinConfidence {
		best, bestScore = General, GeneralConfidence
	}

	return Result{
		Intent:     best,
		Confidence: clamp01(bestScore),
		Entities:   a.Entities,
		Keywords:   a.Keywords,
		Query:      a.Text,
		Scores:     scores,
		Analysis:   a,
	}
}

func share(folded string, needles []string) float64 {
	if len(needles) == 0 {
		return 0
	}
	hits := 0
	for _, n := range needles {
		if strings.Contains(folded, lexical.Fold(n)) {
			hits++
		}
	}
	return float64(hits) / float64(len(needles))
}

func predicateShare(a *lexical.Analysis, preds []Predicate) float64 {
	if len(preds) == 0 {
		return 0
	}
	hits := 0
	for _, p := range preds {
		if safeCheck(p, a) {
			hits++
		}
	}
	return float64(hits) / float64(len(preds))
}

// safeCheck counts a panicking predicate as a miss.
func safeCheck(p Predicate, a *lexical.Analysis) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return p(a)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
