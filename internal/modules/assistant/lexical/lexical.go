// Package lexical turns a raw visitor query into keywords, entities and a
// part-of-speech tagged token stream.
package lexical

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
	"golang.org/x/text/cases"
)

type Token struct {
	Text string `json:"text"`
	Norm string `json:"norm"`
	Tag  string `json:"tag,omitempty"`
}

type Entities struct {
	People []string `json:"people"`
	Places []string `json:"places"`
	Topics []string `json:"topics"`
}

type Analysis struct {
	Text     string   `json:"text"`
	Folded   string   `json:"-"`
	Tokens   []Token  `json:"tokens"`
	Keywords []string `json:"keywords"`
	Entities Entities `json:"entities"`
}

type Extractor interface {
	Extract(text string) Analysis
}

// ProseExtractor tags with the prose English models. It is safe for
// concurrent use.
type ProseExtractor struct{}

func NewExtractor() *ProseExtractor { return &ProseExtractor{} }

// Extract never fails: empty input gives empty lists and a tagger failure
// falls back to untagged word tokens.
func (e *ProseExtractor) Extract(text string) Analysis {
	out := Analysis{
		Text:     text,
		Folded:   Fold(text),
		Tokens:   []Token{},
		Keywords: Keywords(text),
		Entities: Entities{People: []string{}, Places: []string{}, Topics: []string{}},
	}
	if strings.TrimSpace(text) == "" {
		return out
	}

	tokens, ents, ok := tag(text)
	if !ok {
		out.Tokens = plainTokens(text)
		return out
	}
	out.Tokens = tokens
	out.Entities = entities(tokens, ents)
	return out
}

type entity struct {
	text  string
	label string
}

func tag(text string) (tokens []Token, ents []entity, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			tokens, ents, ok = nil, nil, false
		}
	}()
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, nil, false
	}
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, Token{Text: tok.Text, Norm: Fold(tok.Text), Tag: tok.Tag})
	}
	for _, ent := range doc.Entities() {
		ents = append(ents, entity{text: ent.Text, label: ent.Label})
	}
	return tokens, ents, true
}

func plainTokens(text string) []Token {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	out := make([]Token, 0, len(fields))
	for _, f := range fields {
		out = append(out, Token{Text: f, Norm: Fold(f)})
	}
	return out
}

func entities(tokens []Token, ents []entity) Entities {
	out := Entities{People: []string{}, Places: []string{}, Topics: []string{}}
	seen := map[string]bool{}
	add := func(list *[]string, s string) {
		s = strings.TrimSpace(s)
		key := Fold(s)
		if s == "" || seen[key] {
			return
		}
		seen[key] = true
		*list = append(*list, s)
	}

	for _, e := range ents {
		switch e.label {
		case "PERSON":
			add(&out.People, e.text)
		case "GPE":
			add(&out.Places, e.text)
		}
	}
	// A proper noun directly followed by a possessive marker names a person.
	for i := 0; i+1 < len(tokens); i++ {
		if IsProperNoun(tokens[i].Tag) && tokens[i+1].Tag == "POS" {
			add(&out.People, tokens[i].Text)
		}
	}

	var run []string
	hasNoun := false
	flush := func() {
		if hasNoun && len(run) > 0 {
			add(&out.Topics, strings.Join(run, " "))
		}
		run = run[:0]
		hasNoun = false
	}
	for _, t := range tokens {
		switch {
		case strings.HasPrefix(t.Tag, "NN") && !IsProperNoun(t.Tag):
			run = append(run, t.Norm)
			hasNoun = true
		case strings.HasPrefix(t.Tag, "JJ"):
			if hasNoun {
				flush()
			}
			run = append(run, t.Norm)
		default:
			flush()
		}
	}
	flush()
	return out
}

func IsProperNoun(tag string) bool { return tag == "NNP" || tag == "NNPS" }

// Fold applies Unicode case folding.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Keywords splits on anything that is not a letter, which also drops digits,
// then removes stopwords and one-letter fragments. First-seen order is kept.
func Keywords(text string) []string {
	words := strings.FieldsFunc(Fold(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < 2 || isStopword(w) || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
