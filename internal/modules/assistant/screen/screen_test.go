package screen

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		wantValid bool
		wantErr   string
		wantText  string
	}{
		{name: "plain", in: "  What are Suresh's technical skills?  ", wantValid: true, wantText: "What are Suresh's technical skills?"},
		{name: "empty", in: "   ", wantErr: ErrEmpty},
		{name: "too long", in: strings.Repeat("a", MaxQueryLength+1), wantErr: ErrTooLong},
		{name: "exactly max", in: strings.Repeat("a", MaxQueryLength), wantValid: true},
		{name: "script", in: "hi <script>alert(1)</script>", wantErr: ErrSuspicious},
		{name: "js url", in: "javascript:alert(1)", wantErr: ErrSuspicious},
		{name: "document", in: "print document.cookie", wantErr: ErrSuspicious},
		{name: "union select", in: "1 UNION SELECT password FROM users", wantErr: ErrSuspicious},
		{name: "tautology", in: "x' OR '1'='1", wantErr: ErrSuspicious},
		{name: "stacked", in: "hello; DROP TABLE responses", wantErr: ErrSuspicious},
		{name: "sql words are fine", in: "Which projects did you create or update recently?", wantValid: true},
		{name: "markup stripped", in: "<b>Tell me</b> about you", wantValid: true, wantText: "Tell me about you"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Validate(tc.in)
			if v.Valid != tc.wantValid {
				t.Fatalf("Validate(%q): valid=%v want=%v errors=%v", tc.in, v.Valid, tc.wantValid, v.Errors)
			}
			if tc.wantErr != "" {
				found := false
				for _, e := range v.Errors {
					if e == tc.wantErr {
						found = true
					}
				}
				if !found {
					t.Fatalf("Validate(%q): errors=%v missing %q", tc.in, v.Errors, tc.wantErr)
				}
			}
			if tc.wantText != "" && v.Sanitized != tc.wantText {
				t.Fatalf("Validate(%q): sanitized=%q want=%q", tc.in, v.Sanitized, tc.wantText)
			}
		})
	}
}

func TestSanitizeRemovesHandlers(t *testing.T) {
	got := Sanitize(`click onclick=steal() javascript:run`)
	if strings.Contains(strings.ToLower(got), "onclick=") || strings.Contains(got, "javascript:") {
		t.Fatalf("Sanitize left handlers: %q", got)
	}
}

func TestProfanity(t *testing.T) {
	f := NewFilter(WithPicker(func(int) int { return 0 }))
	cases := []struct {
		name     string
		in       string
		profane  bool
		severity string
		words    int
	}{
		{name: "clean", in: "What classes did Suresh take in his analysis course?", profane: false, severity: SeverityLow},
		{name: "custom word", in: "this bot is stupid", profane: true, severity: SeverityLow, words: 1},
		{name: "inflection", in: "you idiots!", profane: true, severity: SeverityLow, words: 1},
		{name: "two mild words", in: "dumb and stupid answers", profane: true, severity: SeverityMedium, words: 2},
		{name: "severe", in: "what the fuck", profane: true, severity: SeverityHigh, words: 1},
		{name: "no substring hits", in: "Is Suresh a Scunthorpe stupidity expert", profane: false, severity: SeverityLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := f.Check(tc.in)
			if p.Profane != tc.profane || p.Severity != tc.severity || len(p.DetectedWords) != tc.words {
				t.Fatalf("Check(%q): got profane=%v severity=%s words=%v", tc.in, p.Profane, p.Severity, p.DetectedWords)
			}
			if p.Quote == "" || p.Warning == "" {
				t.Fatalf("Check(%q): missing quote or warning", tc.in)
			}
			if tc.profane && p.FullResponse != p.Warning+"\n\n"+p.Quote {
				t.Fatalf("Check(%q): full response %q", tc.in, p.FullResponse)
			}
			if !tc.profane && p.FullResponse != p.Quote {
				t.Fatalf("Check(%q): clean full response should be the quote", tc.in)
			}
		})
	}
}

func TestProfanityPicksBySeverity(t *testing.T) {
	f := NewFilter(WithPicker(func(n int) int { return n - 1 }))
	p := f.Check("what the fuck")
	if p.Warning != warnings[SeverityHigh][len(warnings[SeverityHigh])-1] {
		t.Fatalf("warning: %q", p.Warning)
	}
	if p.Quote != quotes[SeverityHigh][len(quotes[SeverityHigh])-1] {
		t.Fatalf("quote: %q", p.Quote)
	}
}

func TestProfanityExtraWords(t *testing.T) {
	f := NewFilter(WithExtraWords("Flarn"))
	if !f.Check("you flarn").Profane {
		t.Fatalf("extra word not detected")
	}
}
