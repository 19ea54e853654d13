package fallback

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/yungbote/portfolio-assistant/internal/data/seed"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/answer"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/followup"
)

type staticQuestions []string

func (q staticQuestions) Questions(context.Context, string) []string {
	return append([]string(nil), q...)
}

type staticAnswers map[string]string

func (a staticAnswers) Answer(_ context.Context, q string) (followup.Entry, bool) {
	ans, ok := a[q]
	return followup.Entry{Question: q, Answer: ans}, ok
}

type panicky struct{}

func (panicky) Name() string { return "panicky" }
func (panicky) Attempt(context.Context, string) (answer.Reply, bool) {
	panic("boom")
}

func testTable() *Table {
	return NewTable(
		Canonical{Question: "What are Suresh's technical skills?", Type: "skills", Answer: "skills answer", Data: []string{"go"}},
		Canonical{Question: "What research has Suresh done?", Type: "research", Answer: "research answer"},
		Canonical{Question: "Tell me about Suresh's background", Type: "overview", Answer: "overview answer", Data: map[string]any{"summary": "s"}},
	)
}

func testChain() *Chain {
	table := testTable()
	q := staticQuestions{"next 1", "next 2"}
	return NewChain(nil,
		ExactMatch{Table: table, FollowUps: q},
		FollowUpAnswer{Answers: staticAnswers{"Do you use Docker?": "Yes, daily."}},
		KeywordCategory{Table: table, FollowUps: q, Categories: DefaultCategories()},
		ContactRequest{},
	)
}

func TestChainOrder(t *testing.T) {
	c := testChain()
	cases := []struct {
		name       string
		query      string
		wantSource string
		wantText   string
		wantType   string
		wantEmail  bool
		wantFollow int
	}{
		{name: "exact", query: "  What are Suresh's technical skills?  ", wantSource: NameExactMatch, wantText: "skills answer", wantType: "skills", wantFollow: 2},
		{name: "follow-up", query: "Do you use Docker?", wantSource: NameFollowUpAnswer, wantText: "Yes, daily."},
		{name: "keyword skills first", query: "which frameworks and research papers", wantSource: NameKeywordCategory, wantText: "skills answer", wantType: "skills", wantFollow: 2},
		{name: "keyword research", query: "any PUBLICATIONS?", wantSource: NameKeywordCategory, wantText: "research answer", wantType: "research", wantFollow: 2},
		{name: "background maps to overview", query: "who is this", wantSource: NameKeywordCategory, wantText: "overview answer", wantType: "overview", wantFollow: 2},
		{name: "terminal", query: "zzqq flarn blibbo", wantSource: NameContactRequest, wantEmail: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := c.Run(context.Background(), tc.query)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if r.Source != tc.wantSource {
				t.Fatalf("source: got=%s want=%s", r.Source, tc.wantSource)
			}
			if tc.wantText != "" && r.Response != tc.wantText {
				t.Fatalf("response: got=%q want=%q", r.Response, tc.wantText)
			}
			if tc.wantType != "" && (r.Data == nil || r.Data.Type != tc.wantType) {
				t.Fatalf("payload type: got=%+v want=%s", r.Data, tc.wantType)
			}
			if r.RequiresEmail != tc.wantEmail {
				t.Fatalf("requiresEmail: got=%v want=%v", r.RequiresEmail, tc.wantEmail)
			}
			if len(r.FollowUpQuestions) != tc.wantFollow {
				t.Fatalf("follow-ups: got=%v want %d", r.FollowUpQuestions, tc.wantFollow)
			}
		})
	}
}

func TestChainTerminalKinds(t *testing.T) {
	r, _ := testChain().Run(context.Background(), "zzqq")
	if r.Kind != answer.KindCustom {
		t.Fatalf("terminal kind: got=%s", r.Kind)
	}
	r, _ = testChain().Run(context.Background(), "Do you use Docker?")
	if r.Kind != answer.KindPredefined || r.Data != nil || r.FollowUpQuestions == nil {
		t.Fatalf("follow-up reply: %+v", r)
	}
}

func TestChainSkipsPanickingStrategy(t *testing.T) {
	c := NewChain(nil, panicky{}, ContactRequest{Message: "leave a note"})
	r, err := c.Run(context.Background(), "anything")
	if err != nil || r.Response != "leave a note" || r.Source != NameContactRequest {
		t.Fatalf("Run: r=%+v err=%v", r, err)
	}
	if got := c.Names(); !reflect.DeepEqual(got, []string{"panicky", NameContactRequest}) {
		t.Fatalf("Names: %v", got)
	}
}

func TestChainExhausted(t *testing.T) {
	c := NewChain(nil, ExactMatch{Table: testTable()})
	if _, err := c.Run(context.Background(), "nope"); !errors.Is(err, ErrExhausted) {
		t.Fatalf("Run: got=%v want ErrExhausted", err)
	}
}

func TestCanonicalPayloadDefaultsData(t *testing.T) {
	c, ok := testTable().ByType("research")
	if !ok {
		t.Fatalf("ByType research missing")
	}
	p := c.Payload()
	if p.TextResponse != "research answer" || p.Type != "research" {
		t.Fatalf("payload: %+v", p)
	}
	if m, ok := p.Data.(map[string]any); !ok || len(m) != 0 {
		t.Fatalf("nil data should become an empty object, got %#v", p.Data)
	}
}

func TestDefaultChainFromSeed(t *testing.T) {
	f, err := seed.Load()
	if err != nil {
		t.Fatalf("seed.Load: %v", err)
	}
	table := TableFromSeed(f)
	gen := followup.New(nil, followup.BankFromSeed(f), nil)
	c := Default(table, gen, nil)

	if got := c.Names(); !reflect.DeepEqual(got, []string{NameExactMatch, NameFollowUpAnswer, NameKeywordCategory, NameContactRequest}) {
		t.Fatalf("default order: %v", got)
	}

	r, err := c.Run(context.Background(), "What are Suresh's technical skills?")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Kind != answer.KindPredefined || r.Data == nil || r.Data.Type != "skills" {
		t.Fatalf("exact seed question: %+v", r)
	}
	if n := len(r.FollowUpQuestions); n == 0 || n > followup.MaxQuestions {
		t.Fatalf("follow-ups out of bounds: %d", n)
	}

	r, _ = c.Run(context.Background(), "zzqq flarn blibbo")
	if !r.RequiresEmail {
		t.Fatalf("nonsense should reach the contact request: %+v", r)
	}

	nilGen := Default(table, nil, nil)
	if r, err := nilGen.Run(context.Background(), "What are Suresh's technical skills?"); err != nil || r.FollowUpQuestions != nil {
		t.Fatalf("nil generator: r=%+v err=%v", r, err)
	}
}
