// Package assistant answers visitor questions about the portfolio: it
// classifies the query, picks a stored response when confident enough and
// otherwise walks the fallback chain.
package assistant

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/answer"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/enrich"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/fallback"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/followup"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/intent"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/querylog"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/resolve"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

// SourceCorpus marks replies served from the stored responses.
const SourceCorpus = "corpus"

// Metrics receives one observation per reply.
type Metrics interface {
	ObserveReply(source, detectedIntent string, elapsed time.Duration)
}

type Recorder interface {
	Record(ctx context.Context, e querylog.Entry)
}

type Questioner interface {
	Questions(ctx context.Context, category string) []string
}

type Deps struct {
	Log       *logger.Logger
	Scorer    *intent.Scorer
	Resolver  *resolve.Resolver
	Gate      resolve.Gate
	Enricher  *enrich.Enricher
	FollowUps Questioner
	Fallback  *fallback.Chain
	Queries   Recorder
	Metrics   Metrics
	Tracer    trace.Tracer
}

type Assistant struct {
	log       *logger.Logger
	scorer    *intent.Scorer
	resolver  *resolve.Resolver
	gate      resolve.Gate
	enricher  *enrich.Enricher
	followUps Questioner
	fallback  *fallback.Chain
	queries   Recorder
	metrics   Metrics
	tracer    trace.Tracer
}

func New(d Deps) *Assistant {
	a := &Assistant{
		log:       d.Log,
		scorer:    d.Scorer,
		resolver:  d.Resolver,
		gate:      d.Gate,
		enricher:  d.Enricher,
		followUps: d.FollowUps,
		fallback:  d.Fallback,
		queries:   d.Queries,
		metrics:   d.Metrics,
		tracer:    d.Tracer,
	}
	if a.log == nil {
		a.log = logger.Nop()
	}
	a.log = a.log.With("service", "Assistant")
	if a.scorer == nil {
		a.scorer = intent.NewScorer(nil, nil)
	}
	if a.gate == (resolve.Gate{}) {
		a.gate = resolve.NewGate()
	}
	if a.enricher == nil {
		a.enricher = enrich.NewEnricher(nil)
	}
	if a.fallback == nil {
		a.fallback = fallback.NewChain(a.log, fallback.ContactRequest{})
	}
	if a.tracer == nil {
		a.tracer = otel.Tracer("portfolio-assistant/assistant")
	}
	return a
}

// Analyze classifies query without touching any store.
func (a *Assistant) Analyze(query string) intent.Result {
	return a.scorer.Score(query)
}

// Respond produces the reply for an already screened query. An error is
// returned only when the fallback chain itself cannot answer.
func (a *Assistant) Respond(ctx context.Context, query string) (reply answer.Reply, err error) {
	start := time.Now()
	ctx, span := a.tracer.Start(ctx, "assistant.respond", trace.WithAttributes(attribute.Int("query.length", len(query))))
	defer func() {
		span.SetAttributes(
			attribute.String("reply.source", reply.Source),
			attribute.String("reply.intent", reply.DetectedIntent),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if a.metrics != nil {
			a.metrics.ObserveReply(reply.Source, reply.DetectedIntent, time.Since(start))
		}
	}()

	reply, ok := a.primary(ctx, query)
	if ok {
		return reply, nil
	}
	return a.runFallback(ctx, query)
}

// primary runs classification and resolution. Any panic is swallowed so the
// caller can fall back.
func (a *Assistant) primary(ctx context.Context, query string) (reply answer.Reply, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("assistant pipeline panicked, falling back", "panic", fmt.Sprint(r))
			reply, ok = answer.Reply{}, false
		}
	}()

	res := a.scorer.Score(query)
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.String("intent.name", res.Intent),
		attribute.Float64("intent.confidence", res.Confidence),
	)

	if a.resolver == nil {
		return answer.Reply{}, false
	}
	m, found, err := a.resolver.Resolve(ctx, query)
	if err != nil {
		a.log.Warn("response corpus unavailable, falling back", "error", err)
		return answer.Reply{}, false
	}
	var match *resolve.Match
	if found {
		match = &m
	}
	d := a.gate.Evaluate(res.Confidence, match)
	span.SetAttributes(
		attribute.Bool("gate.pass", d.Pass),
		attribute.Float64("gate.confidence", d.Confidence),
		attribute.Float64("gate.threshold", d.Threshold),
	)
	if !d.Pass {
		a.log.Debug("confidence gate failed",
			"intent", res.Intent,
			"confidence", d.Confidence,
			"threshold", d.Threshold,
			"pattern_score", m.PatternScore,
		)
		return answer.Reply{}, false
	}

	rec := m.Record
	conf := res.Confidence
	id := rec.ID
	reply = answer.Reply{
		Kind:              answer.KindPredefined,
		Response:          rec.Body,
		Data:              a.enricher.Payload(ctx, rec),
		FollowUpQuestions: a.followUpsFor(ctx, rec, res.Intent),
		Confidence:        &conf,
		DetectedIntent:    res.Intent,
		Source:            SourceCorpus,
		ResponseID:        &id,
	}
	if a.queries != nil {
		a.queries.Record(ctx, querylog.Entry{
			Query:          query,
			DetectedIntent: res.Intent,
			Confidence:     res.Confidence,
			ResponseID:     &id,
		})
	}
	return reply, true
}

func (a *Assistant) followUpsFor(ctx context.Context, rec answer.Record, detected string) []string {
	var out []string
	if a.followUps != nil {
		out = a.followUps.Questions(ctx, rec.Type)
	}
	if len(out) == 0 {
		out = append(out, rec.FollowUps...)
	}
	if len(out) == 0 {
		out = intent.Suggestions(detected)
	}
	if len(out) > followup.MaxQuestions {
		out = out[:followup.MaxQuestions]
	}
	return out
}

func (a *Assistant) runFallback(ctx context.Context, query string) (answer.Reply, error) {
	ctx, span := a.tracer.Start(ctx, "assistant.fallback")
	defer span.End()

	reply, err := a.fallback.Run(ctx, query)
	if err != nil {
		return answer.Reply{}, fmt.Errorf("fallback: %w", err)
	}
	span.SetAttributes(attribute.String("fallback.strategy", reply.Source))
	return reply, nil
}
