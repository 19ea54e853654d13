package lexical

import (
	"reflect"
	"testing"
)

func TestKeywords(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "stopwords only", in: "what is the", want: []string{}},
		{name: "dedupe and order", in: "React, react and Go 2024 REACT", want: []string{"react", "go"}},
		{name: "digits stripped", in: "web3 apps", want: []string{"web", "apps"}},
		{name: "possessive", in: "Suresh's skills", want: []string{"suresh", "skills"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Keywords(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Keywords(%q): got=%#v want=%#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtractNeverFails(t *testing.T) {
	x := NewExtractor()
	for _, in := range []string{"", "   ", "???", "zzqq flarn blibbo", "日本語のテキスト"} {
		a := x.Extract(in)
		if a.Keywords == nil || a.Tokens == nil {
			t.Fatalf("Extract(%q) returned nil lists", in)
		}
		if a.Entities.People == nil || a.Entities.Places == nil || a.Entities.Topics == nil {
			t.Fatalf("Extract(%q) returned nil entity lists", in)
		}
	}
}

func TestExtractTagsTokens(t *testing.T) {
	a := NewExtractor().Extract("What projects has Suresh built?")
	if len(a.Tokens) == 0 {
		t.Fatalf("expected tokens")
	}
	tagged := false
	for _, tok := range a.Tokens {
		if tok.Tag != "" {
			tagged = true
		}
		if tok.Norm != Fold(tok.Text) {
			t.Fatalf("token norm not folded: %+v", tok)
		}
	}
	if !tagged {
		t.Fatalf("expected part-of-speech tags")
	}
}

func TestEntitiesFromPossessive(t *testing.T) {
	tokens := []Token{
		{Text: "Suresh", Norm: "suresh", Tag: "NNP"},
		{Text: "'s", Norm: "'s", Tag: "POS"},
		{Text: "technical", Norm: "technical", Tag: "JJ"},
		{Text: "skills", Norm: "skills", Tag: "NNS"},
		{Text: "in", Norm: "in", Tag: "IN"},
		{Text: "Oslo", Norm: "oslo", Tag: "NNP"},
	}
	got := entities(tokens, []entity{{text: "Oslo", label: "GPE"}})
	if !reflect.DeepEqual(got.People, []string{"Suresh"}) {
		t.Fatalf("people: %#v", got.People)
	}
	if !reflect.DeepEqual(got.Places, []string{"Oslo"}) {
		t.Fatalf("places: %#v", got.Places)
	}
	if !reflect.DeepEqual(got.Topics, []string{"technical skills"}) {
		t.Fatalf("topics: %#v", got.Topics)
	}
}
