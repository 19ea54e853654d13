// Package screen checks visitor input before it reaches the assistant.
package screen

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// MaxQueryLength is measured in characters.
const MaxQueryLength = 1000

const (
	ErrEmpty      = "Input cannot be empty"
	ErrTooLong    = "Input too long (max 1000 characters)"
	ErrSuspicious = "Input contains potentially harmful content"
)

type Validation struct {
	Valid     bool     `json:"isValid"`
	Sanitized string   `json:"sanitized"`
	Errors    []string `json:"errors"`
}

var suspicious = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)onload=`),
	regexp.MustCompile(`(?i)onerror=`),
	regexp.MustCompile(`(?i)eval\(`),
	regexp.MustCompile(`(?i)document\.`),
	regexp.MustCompile(`(?i)window\.`),
	// SQL injection shapes. Plain words like "select" or "update" stay allowed.
	regexp.MustCompile(`(?i)\bunion\s+(all\s+)?select\b`),
	regexp.MustCompile(`(?i);\s*(drop|delete|insert|update|alter|create|truncate|exec|execute)\b`),
	regexp.MustCompile(`(?i)'\s*(or|and)\s+'?\w+'?\s*=\s*'?\w+`),
	regexp.MustCompile(`(?i)\b(xp|sp)_\w+`),
	regexp.MustCompile(`'\s*--`),
}

var (
	strict        = bluemonday.StrictPolicy()
	jsScheme      = regexp.MustCompile(`(?i)javascript:`)
	eventHandlers = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// Validate reports every problem with input and returns the sanitized text
// the pipeline should see.
func Validate(input string) Validation {
	v := Validation{Errors: []string{}}
	if strings.TrimSpace(input) == "" {
		v.Errors = append(v.Errors, ErrEmpty)
	}
	if utf8.RuneCountInString(input) > MaxQueryLength {
		v.Errors = append(v.Errors, ErrTooLong)
	}
	for _, re := range suspicious {
		if re.MatchString(input) {
			v.Errors = append(v.Errors, ErrSuspicious)
			break
		}
	}
	v.Sanitized = Sanitize(input)
	v.Valid = len(v.Errors) == 0
	return v
}

// Sanitize strips markup, script URLs and inline event handlers.
func Sanitize(input string) string {
	out := html.UnescapeString(strict.Sanitize(input))
	out = jsScheme.ReplaceAllString(out, "")
	out = eventHandlers.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}
