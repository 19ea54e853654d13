package intent

import (
	"strings"

	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/lexical"
)

// Predicate is a structural check over an analysed query.
type Predicate func(a *lexical.Analysis) bool

// lexicons back the "#Name" slots usable in Tagged and Sequence.
var lexicons = map[string][]string{
	"technology": {
		"javascript", "typescript", "python", "golang", "java", "rust", "react", "next.js",
		"node", "node.js", "vue", "angular", "django", "fastapi", "express", "docker",
		"kubernetes", "aws", "gcp", "azure", "postgresql", "postgres", "mongodb", "redis",
		"tensorflow", "pytorch", "graphql", "sql", "html", "css", "tailwind", "linux",
	},
	"skill":      {"skill", "expertise", "proficiency", "competence", "stack"},
	"education":  {"education", "degree", "phd", "masters", "master", "bachelor", "diploma", "doctorate"},
	"university": {"university", "college", "school", "institute", "campus"},
	"research":   {"research", "paper", "publication", "thesis", "dissertation", "journal", "study"},
	"academic":   {"academic", "scholar", "conference", "professor", "citation"},
	"work":       {"work", "job", "career", "company", "role", "position", "employer", "employment"},
	"create":     {"build", "built", "create", "created", "develop", "developed", "make", "made", "ship", "shipped"},
}

// personWords fill the #Person slot in addition to proper nouns.
var personWords = map[string]bool{
	"you": true, "he": true, "she": true, "they": true, "yourself": true, "suresh": true,
}

// HasWord matches when any of words occurs as a token, allowing simple
// inflections. Multi-word entries match as contiguous phrases.
func HasWord(words ...string) Predicate {
	return func(a *lexical.Analysis) bool {
		for _, w := range words {
			w = lexical.Fold(w)
			if strings.Contains(w, " ") {
				if matchSequence(a.Tokens, wordSlots(strings.Fields(w))) {
					return true
				}
				continue
			}
			for _, t := range a.Tokens {
				if inflects(t.Norm, w) {
					return true
				}
			}
		}
		return false
	}
}

// Tagged matches when any token belongs to one of the named lexicons.
func Tagged(names ...string) Predicate {
	slots := make([]slot, 0, len(names))
	for _, n := range names {
		slots = append(slots, parseSlot("#"+n))
	}
	return func(a *lexical.Analysis) bool {
		for _, t := range contentTokens(a.Tokens) {
			for _, s := range slots {
				if s(t) {
					return true
				}
			}
		}
		return false
	}
}

// Sequence matches contiguous tokens against a template such as
// Sequence("what|which", "#Person", "know|use|good"). Possessive markers and
// punctuation are skipped.
func Sequence(template ...string) Predicate {
	slots := make([]slot, 0, len(template))
	for _, part := range template {
		slots = append(slots, parseSlot(part))
	}
	return func(a *lexical.Analysis) bool {
		return matchSequence(contentTokens(a.Tokens), slots)
	}
}

type slot func(t lexical.Token) bool

func parseSlot(part string) slot {
	part = strings.TrimSpace(part)
	if strings.HasPrefix(part, "#") {
		name := strings.ToLower(strings.TrimPrefix(part, "#"))
		switch name {
		case "person":
			return func(t lexical.Token) bool {
				return lexical.IsProperNoun(t.Tag) || personWords[t.Norm]
			}
		case "verb":
			return func(t lexical.Token) bool { return strings.HasPrefix(t.Tag, "VB") }
		}
		words := lexicons[name]
		return func(t lexical.Token) bool {
			for _, w := range words {
				if inflects(t.Norm, w) {
					return true
				}
			}
			return false
		}
	}
	alts := strings.Split(lexical.Fold(part), "|")
	return func(t lexical.Token) bool {
		for _, alt := range alts {
			if t.Norm == alt {
				return true
			}
		}
		return false
	}
}

func wordSlots(words []string) []slot {
	out := make([]slot, 0, len(words))
	for _, w := range words {
		w := w
		out = append(out, func(t lexical.Token) bool { return t.Norm == w })
	}
	return out
}

func matchSequence(tokens []lexical.Token, slots []slot) bool {
	if len(slots) == 0 || len(tokens) < len(slots) {
		return false
	}
outer:
	for i := 0; i+len(slots) <= len(tokens); i++ {
		for j, s := range slots {
			if !s(tokens[i+j]) {
				continue outer
			}
		}
		return true
	}
	return false
}

func contentTokens(tokens []lexical.Token) []lexical.Token {
	out := make([]lexical.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Tag == "POS" || t.Norm == "'s" || !hasLetter(t.Norm) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || r > 127 {
			return true
		}
	}
	return false
}

// inflects reports whether token is word or a plain inflection of it
// (skills, technologies, worked, building, created).
func inflects(token, word string) bool {
	if token == word {
		return true
	}
	if !strings.HasPrefix(token, strings.TrimSuffix(word, "e")) && !strings.HasPrefix(token, strings.TrimSuffix(word, "y")) {
		return false
	}
	candidates := []string{word + "s", word + "es", word + "ed", word + "d", word + "ing", word + "er", word + "ers"}
	if strings.HasSuffix(word, "y") {
		stem := strings.TrimSuffix(word, "y")
		candidates = append(candidates, stem+"ies", stem+"ied")
	}
	if strings.HasSuffix(word, "e") {
		candidates = append(candidates, strings.TrimSuffix(word, "e")+"ing")
	}
	for _, c := range candidates {
		if token == c {
			return true
		}
	}
	return false
}
