package intent

import (
	"strings"
	"testing"

	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/lexical"
)

type plainExtractor struct{}

func (plainExtractor) Extract(text string) lexical.Analysis {
	a := lexical.Analysis{Text: text, Folded: lexical.Fold(text), Keywords: lexical.Keywords(text)}
	for _, f := range strings.Fields(a.Folded) {
		f = strings.Trim(f, "?!.,")
		a.Tokens = append(a.Tokens, lexical.Token{Text: f, Norm: f})
	}
	return a
}

func TestScoreGeneralFallback(t *testing.T) {
	s := NewScorer(nil, nil)
	for _, q := range []string{"", "zzqq flarn blibbo"} {
		res := s.Score(q)
		if res.Intent != General || res.Confidence != GeneralConfidence {
			t.Fatalf("Score(%q): got=%s@%.3f want=%s@%.1f", q, res.Intent, res.Confidence, General, GeneralConfidence)
		}
		if len(res.Scores) != DefaultRegistry().Len() {
			t.Fatalf("Score(%q): expected one score per pattern, got %d", q, len(res.Scores))
		}
	}
}

func TestScoreDetectsIntent(t *testing.T) {
	s := NewScorer(nil, nil)
	cases := []struct {
		query string
		want  string
	}{
		{query: "How can I contact you or hire you? Send me your email address", want: Contact},
		{query: "What technologies do you use in your tech stack?", want: Skills},
	}
	for _, tc := range cases {
		res := s.Score(tc.query)
		if res.Intent != tc.want {
			t.Fatalf("Score(%q): got=%s want=%s scores=%v", tc.query, res.Intent, tc.want, res.Scores)
		}
		if res.Confidence <= MinConfidence || res.Confidence > 1 {
			t.Fatalf("Score(%q): confidence out of range: %.3f", tc.query, res.Confidence)
		}
		if res.Query != tc.query {
			t.Fatalf("Score(%q): original query not echoed, got %q", tc.query, res.Query)
		}
	}
}

func TestScoreTieKeepsRegistrationOrder(t *testing.T) {
	reg := NewRegistry(
		Pattern{Intent: "FIRST", Keywords: []string{"alpha"}, Weight: 1},
		Pattern{Intent: "SECOND", Keywords: []string{"alpha"}, Weight: 1},
	)
	res := NewScorer(reg, plainExtractor{}).Score("alpha")
	if res.Intent != "FIRST" {
		t.Fatalf("tie: got=%s want=FIRST", res.Intent)
	}
	if res.Confidence != 0.4 {
		t.Fatalf("tie: confidence got=%.3f want=0.4", res.Confidence)
	}
}

func TestScoreClampsConfidence(t *testing.T) {
	reg := NewRegistry(Pattern{
		Intent:     "LOUD",
		Keywords:   []string{"alpha"},
		Phrases:    []string{"alpha beta"},
		Predicates: []Predicate{HasWord("beta")},
		Weight:     5,
	})
	res := NewScorer(reg, plainExtractor{}).Score("alpha beta")
	if res.Intent != "LOUD" || res.Confidence != 1 {
		t.Fatalf("clamp: got=%s@%.3f want=LOUD@1", res.Intent, res.Confidence)
	}
	if res.Scores[0].Score < 4.99 {
		t.Fatalf("raw score should stay unclamped, got %.3f", res.Scores[0].Score)
	}
}

func TestPanickingPredicateCountsAsMiss(t *testing.T) {
	boom := func(*lexical.Analysis) bool { panic("boom") }
	reg := NewRegistry(Pattern{
		Intent:     "X",
		Keywords:   []string{"alpha"},
		Predicates: []Predicate{boom, HasWord("alpha")},
		Weight:     1,
	})
	res := NewScorer(reg, plainExtractor{}).Score("alpha")
	// 1*0.4 + 0 + 0.5*0.3
	if res.Intent != "X" || res.Confidence < 0.549 || res.Confidence > 0.551 {
		t.Fatalf("got=%s@%.3f want=X@0.55", res.Intent, res.Confidence)
	}
}

func TestPredicates(t *testing.T) {
	x := plainExtractor{}
	cases := []struct {
		name  string
		pred  Predicate
		query string
		want  bool
	}{
		{name: "plural", pred: HasWord("skill"), query: "list your skills", want: true},
		{name: "y plural", pred: HasWord("technology"), query: "which technologies", want: true},
		{name: "no partial", pred: HasWord("work"), query: "homework help", want: false},
		{name: "phrase", pred: HasWord("get in touch"), query: "how do I get in touch", want: true},
		{name: "lexicon", pred: Tagged("technology"), query: "do you know kubernetes", want: true},
		{name: "sequence person word", pred: Sequence("what|which", "#Person", "know|use|good"), query: "what you know", want: true},
		{name: "sequence miss", pred: Sequence("what|which", "#Person", "know|use|good"), query: "what do you know", want: false},
		{name: "sequence name", pred: Sequence("about", "you|yourself|suresh"), query: "tell me about suresh", want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := x.Extract(tc.query)
			if got := tc.pred(&a); got != tc.want {
				t.Fatalf("%s on %q: got=%v want=%v", tc.name, tc.query, got, tc.want)
			}
		})
	}
}

func TestSuggestions(t *testing.T) {
	if got := Suggestions(Contact); len(got) != 3 || got[0] != "Tell me about Suresh's background" {
		t.Fatalf("contact suggestions: %v", got)
	}
	unknown := Suggestions("NOPE")
	general := Suggestions(General)
	if len(unknown) != 3 || unknown[0] != general[0] {
		t.Fatalf("unknown intent should use general list, got %v", unknown)
	}
	unknown[0] = "mutated"
	if Suggestions(General)[0] == "mutated" {
		t.Fatalf("Suggestions must return a copy")
	}
}
