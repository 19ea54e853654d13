package screen

import (
	"math/rand/v2"
	"strings"
	"unicode"

	goaway "github.com/TwiN/go-away"
)

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// CustomWords extend the stock dictionary with milder insults.
var CustomWords = []string{"dumb", "stupid", "idiot", "moron", "loser"}

var severeRoots = []string{"fuck", "shit", "bitch"}

var quotes = map[string][]string{
	SeverityLow: {
		"💫 'Kind words can be short and easy to speak, but their echoes are truly endless.' - Mother Teresa",
		"🌟 'Be yourself; everyone else is already taken.' - Oscar Wilde",
		"✨ 'In a world where you can be anything, be kind.' - Jennifer Dukes Lee",
		"🌈 'The best way to find yourself is to lose yourself in the service of others.' - Gandhi",
		"💝 'Choose kindness and laugh often.' - Anonymous",
	},
	SeverityMedium: {
		"🙏 'Darkness cannot drive out darkness; only light can do that. Hate cannot drive out hate; only love can do that.' - Martin Luther King Jr.",
		"🕊️ 'Be the change you wish to see in the world.' - Gandhi",
		"💎 'Your words have power. Use them wisely.' - Anonymous",
		"🌸 'Respect yourself and others will respect you.' - Confucius",
		"⭐ 'The way we talk to our children becomes their inner voice.' - Peggy O'Mara",
	},
	SeverityHigh: {
		"🧘 'Holding on to anger is like grasping a hot coal with the intent of throwing it at someone else; you are the one who gets burned.' - Buddha",
		"🌅 'The greatest remedy for anger is delay.' - Thomas Paine",
		"🦋 'When we are no longer able to change a situation, we are challenged to change ourselves.' - Viktor Frankl",
		"🌺 'Peace cannot be kept by force; it can only be achieved by understanding.' - Albert Einstein",
		"🎯 'The best fighter is never angry.' - Lao Tzu",
	},
}

var warnings = map[string][]string{
	SeverityLow: {
		"⚠️ Please keep our conversation respectful.",
		"🤝 Let's maintain a positive dialogue.",
		"💬 I'd appreciate more constructive language.",
		"✋ Let's redirect this conversation positively.",
	},
	SeverityMedium: {
		"🚫 Profanity detected. Let's respect each other.",
		"⛔ I noticed inappropriate language. Let's keep it professional.",
		"🛑 Please use respectful language in our conversation.",
		"🔄 Let's restart with more appropriate communication.",
	},
	SeverityHigh: {
		"🚨 Strong profanity detected. Let's respect each other and communicate constructively.",
		"🛡️ Inappropriate content blocked. Please maintain respectful dialogue.",
		"⚡ Offensive language detected. Let's have a positive conversation instead.",
		"🔥 Let's cool down and communicate with respect and understanding.",
	},
}

type Profanity struct {
	Profane       bool     `json:"isProfane"`
	DetectedWords []string `json:"detectedWords"`
	Severity      string   `json:"severity"`
	Warning       string   `json:"warningMessage"`
	Quote         string   `json:"moralQuote"`
	FullResponse  string   `json:"fullResponse"`
}

type FilterOption func(*Filter)

// WithPicker replaces the random choice of warning and quote.
func WithPicker(pick func(n int) int) FilterOption {
	return func(f *Filter) {
		if pick != nil {
			f.pick = pick
		}
	}
}

func WithExtraWords(words ...string) FilterOption {
	return func(f *Filter) {
		for _, w := range words {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				f.words[w] = true
			}
		}
	}
}

// Filter matches whole words against a dictionary, allowing plural and
// verb endings. Tokens with digits or symbols go through the go-away
// detector so leetspeak spellings are caught too.
type Filter struct {
	words    map[string]bool
	detector *goaway.ProfanityDetector
	pick     func(n int) int
}

func NewFilter(opts ...FilterOption) *Filter {
	dict := make([]string, 0, len(goaway.DefaultProfanities)+len(CustomWords))
	dict = append(dict, goaway.DefaultProfanities...)
	dict = append(dict, CustomWords...)

	f := &Filter{
		words:    make(map[string]bool, len(dict)),
		detector: goaway.NewProfanityDetector().WithCustomDictionary(dict, goaway.DefaultFalsePositives, goaway.DefaultFalseNegatives),
		pick:     rand.IntN,
	}
	for _, w := range dict {
		f.words[strings.ToLower(w)] = true
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Check never logs or stores text.
func (f *Filter) Check(text string) Profanity {
	detected := []string{}
	for _, raw := range strings.Fields(strings.ToLower(text)) {
		tok := strings.TrimFunc(raw, func(r rune) bool { return unicode.IsPunct(r) && r != '*' && r != '@' && r != '$' })
		if tok == "" {
			continue
		}
		if f.matchWord(tok) || (hasObfuscation(tok) && f.detector.IsProfane(tok)) {
			detected = append(detected, tok)
		}
	}

	res := Profanity{Profane: len(detected) > 0, DetectedWords: detected, Severity: SeverityLow}
	switch {
	case containsSevere(detected):
		res.Severity = SeverityHigh
	case len(detected) > 1:
		res.Severity = SeverityMedium
	}

	level := SeverityLow
	if res.Profane {
		level = res.Severity
	}
	res.Warning = f.choose(warnings[level])
	res.Quote = f.choose(quotes[level])
	if res.Profane {
		res.FullResponse = res.Warning + "\n\n" + res.Quote
	} else {
		res.FullResponse = res.Quote
	}
	return res
}

func (f *Filter) matchWord(tok string) bool {
	if f.words[tok] {
		return true
	}
	for _, suffix := range []string{"s", "es", "ed", "ing", "er", "ers", "y"} {
		if stem, ok := strings.CutSuffix(tok, suffix); ok && len(stem) > 2 && f.words[stem] {
			return true
		}
	}
	return false
}

func (f *Filter) choose(list []string) string {
	if len(list) == 0 {
		return ""
	}
	i := f.pick(len(list))
	if i < 0 || i >= len(list) {
		i = 0
	}
	return list[i]
}

func hasObfuscation(tok string) bool {
	for _, r := range tok {
		if unicode.IsDigit(r) || strings.ContainsRune("@$!*#+<|", r) {
			return true
		}
	}
	return false
}

func containsSevere(words []string) bool {
	for _, w := range words {
		for _, root := range severeRoots {
			if strings.Contains(w, root) {
				return true
			}
		}
	}
	return false
}
