package fallback

import (
	"strings"

	"github.com/yungbote/portfolio-assistant/internal/data/seed"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/answer"
)

// Canonical is one predefined question with its static answer.
type Canonical struct {
	Question string
	Type     string
	Answer   string
	Data     any
}

func (c Canonical) Payload() *answer.Payload {
	data := c.Data
	if data == nil {
		data = map[string]any{}
	}
	return &answer.Payload{Type: c.Type, Data: data, TextResponse: c.Answer}
}

// Table indexes the predefined questions by exact text and by type. The
// first entry of a type is its canonical answer.
type Table struct {
	entries    []Canonical
	byQuestion map[string]int
	byType     map[string]int
}

func NewTable(entries ...Canonical) *Table {
	t := &Table{
		entries:    make([]Canonical, 0, len(entries)),
		byQuestion: map[string]int{},
		byType:     map[string]int{},
	}
	for _, e := range entries {
		e.Question = strings.TrimSpace(e.Question)
		i := len(t.entries)
		t.entries = append(t.entries, e)
		if _, dup := t.byQuestion[e.Question]; !dup {
			t.byQuestion[e.Question] = i
		}
		if _, dup := t.byType[e.Type]; !dup {
			t.byType[e.Type] = i
		}
	}
	return t
}

func TableFromSeed(f *seed.File) *Table {
	if f == nil {
		return NewTable()
	}
	entries := make([]Canonical, 0, len(f.Predefined))
	for _, p := range f.Predefined {
		entries = append(entries, Canonical{
			Question: p.Question,
			Type:     p.Type,
			Answer:   strings.TrimSpace(p.Answer),
			Data:     p.Data,
		})
	}
	return NewTable(entries...)
}

func (t *Table) Lookup(question string) (Canonical, bool) {
	i, ok := t.byQuestion[strings.TrimSpace(question)]
	if !ok {
		return Canonical{}, false
	}
	return t.entries[i], true
}

func (t *Table) ByType(responseType string) (Canonical, bool) {
	i, ok := t.byType[responseType]
	if !ok {
		return Canonical{}, false
	}
	return t.entries[i], true
}

// Questions returns the predefined questions in table order.
func (t *Table) Questions() []string {
	out := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e.Question)
	}
	return out
}
