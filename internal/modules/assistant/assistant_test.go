package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/yungbote/portfolio-assistant/internal/data/repos"
	"github.com/yungbote/portfolio-assistant/internal/data/repos/testutil"
	"github.com/yungbote/portfolio-assistant/internal/data/seed"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/answer"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/enrich"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/fallback"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/followup"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/querylog"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/resolve"
)

type recordingLog struct {
	mu      sync.Mutex
	entries []querylog.Entry
}

func (r *recordingLog) Record(_ context.Context, e querylog.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *recordingLog) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

type recordingMetrics struct {
	mu      sync.Mutex
	sources []string
}

func (m *recordingMetrics) ObserveReply(source, _ string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = append(m.sources, source)
}

type staticCorpus struct {
	records []answer.Record
	err     error
}

func (c staticCorpus) Responses(context.Context) ([]answer.Record, error) { return c.records, c.err }

type panickingCollections struct{}

func (panickingCollections) Get(context.Context, string) (json.RawMessage, bool) {
	panic("cache exploded")
}

type fixture struct {
	asst    *Assistant
	queries *recordingLog
	metrics *recordingMetrics
}

func newSeededAssistant(t *testing.T, corpus resolve.Corpus, collections enrich.Collections) fixture {
	t.Helper()
	f, err := seed.Load()
	if err != nil {
		t.Fatalf("seed.Load: %v", err)
	}
	log := testutil.Logger(t)
	if corpus == nil {
		db := testutil.DB(t)
		if _, err := seed.Apply(context.Background(), db, log, f); err != nil {
			t.Fatalf("seed.Apply: %v", err)
		}
		corpus = NewRepoCorpus(repos.NewResponseRepo(db, log))
	}
	if collections == nil {
		collections = staticCollections{"skills": json.RawMessage(`[{"category":"Frontend","skills":[]}]`)}
	}
	gen := followup.New(nil, followup.BankFromSeed(f), log)
	fx := fixture{queries: &recordingLog{}, metrics: &recordingMetrics{}}
	fx.asst = New(Deps{
		Log:       log,
		Resolver:  resolve.NewResolver(corpus),
		Enricher:  enrich.NewEnricher(collections),
		FollowUps: gen,
		Fallback:  fallback.Default(fallback.TableFromSeed(f), gen, log),
		Queries:   fx.queries,
		Metrics:   fx.metrics,
	})
	return fx
}

type staticCollections map[string]json.RawMessage

func (s staticCollections) Get(_ context.Context, c string) (json.RawMessage, bool) {
	v, ok := s[c]
	return v, ok
}

func TestRespondCanonicalQuestion(t *testing.T) {
	fx := newSeededAssistant(t, nil, nil)
	r, err := fx.asst.Respond(context.Background(), "What are Suresh's technical skills?")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if r.Kind != answer.KindPredefined || r.Source != SourceCorpus {
		t.Fatalf("reply kind/source: %s/%s", r.Kind, r.Source)
	}
	if r.Data == nil || r.Data.Type != "skills" {
		t.Fatalf("payload: %+v", r.Data)
	}
	if raw, ok := r.Data.Data.(json.RawMessage); !ok || string(raw) != `[{"category":"Frontend","skills":[]}]` {
		t.Fatalf("live collection not attached: %#v", r.Data.Data)
	}
	if n := len(r.FollowUpQuestions); n == 0 || n > followup.MaxQuestions {
		t.Fatalf("follow-ups: %v", r.FollowUpQuestions)
	}
	if r.Confidence == nil || *r.Confidence < 0 || *r.Confidence > 1 {
		t.Fatalf("confidence: %v", r.Confidence)
	}
	if r.DetectedIntent == "" || r.ResponseID == nil {
		t.Fatalf("missing intent or response id: %+v", r)
	}
	if fx.queries.count() != 1 {
		t.Fatalf("query log entries: got=%d want=1", fx.queries.count())
	}
}

func TestRespondNonsenseReachesContactRequest(t *testing.T) {
	fx := newSeededAssistant(t, nil, nil)
	r, err := fx.asst.Respond(context.Background(), "zzqq flarn blibbo")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !r.RequiresEmail || r.Source != fallback.NameContactRequest || r.Kind != answer.KindCustom {
		t.Fatalf("reply: %+v", r)
	}
	if fx.queries.count() != 0 {
		t.Fatalf("fallback replies must not be logged")
	}
	if len(fx.metrics.sources) != 1 || fx.metrics.sources[0] != fallback.NameContactRequest {
		t.Fatalf("metrics: %v", fx.metrics.sources)
	}
}

func TestRespondCorpusUnavailableFallsBack(t *testing.T) {
	fx := newSeededAssistant(t, staticCorpus{err: errors.New("connection refused")}, nil)
	r, err := fx.asst.Respond(context.Background(), "tell me about your research papers")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if r.Source != fallback.NameKeywordCategory || r.Data == nil || r.Data.Type != "research" {
		t.Fatalf("reply: source=%s data=%+v", r.Source, r.Data)
	}
}

func TestRespondHighThresholdFailsGate(t *testing.T) {
	corpus := staticCorpus{records: []answer.Record{{
		Intent:          "SKILLS_INQUIRY",
		Type:            "skills",
		Body:            "stored",
		TriggerPatterns: []string{"skill"},
		Threshold:       0.9,
	}}}
	fx := newSeededAssistant(t, corpus, nil)
	r, err := fx.asst.Respond(context.Background(), "list every skill please")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if r.Source == SourceCorpus {
		t.Fatalf("boosted 0.8 must not pass a 0.9 threshold")
	}
	if r.Source != fallback.NameKeywordCategory {
		t.Fatalf("expected keyword fallback, got %s", r.Source)
	}
}

func TestRespondRecoversPipelinePanic(t *testing.T) {
	fx := newSeededAssistant(t, nil, panickingCollections{})
	r, err := fx.asst.Respond(context.Background(), "What are Suresh's technical skills?")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if r.Source != fallback.NameExactMatch {
		t.Fatalf("panic should route to the fallback chain, got %s", r.Source)
	}
}

func TestRespondFallbackExhausted(t *testing.T) {
	a := New(Deps{
		Resolver: resolve.NewResolver(staticCorpus{}),
		Fallback: fallback.NewChain(nil),
	})
	if _, err := a.Respond(context.Background(), "anything"); !errors.Is(err, fallback.ErrExhausted) {
		t.Fatalf("Respond: got=%v want ErrExhausted", err)
	}
}

func TestAnalyzeIsPure(t *testing.T) {
	a := New(Deps{})
	first := a.Analyze("How can I contact you or hire you? Send me your email address")
	second := a.Analyze("How can I contact you or hire you? Send me your email address")
	if first.Intent != second.Intent || first.Confidence != second.Confidence {
		t.Fatalf("Analyze not deterministic: %+v vs %+v", first, second)
	}
	if first.Intent != "CONTACT_INQUIRY" {
		t.Fatalf("Analyze: got=%s", first.Intent)
	}
}
