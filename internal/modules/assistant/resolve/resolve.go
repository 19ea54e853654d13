// Package resolve picks the stored response that best matches a query and
// decides whether the match is confident enough to answer with.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/answer"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/lexical"
	perrors "github.com/yungbote/portfolio-assistant/internal/pkg/errors"
)

// Corpus supplies the response records in their stored order.
type Corpus interface {
	Responses(ctx context.Context) ([]answer.Record, error)
}

type Match struct {
	Record       answer.Record
	PatternScore int
}

type Resolver struct {
	corpus Corpus
}

func NewResolver(corpus Corpus) *Resolver {
	return &Resolver{corpus: corpus}
}

// Resolve scores every record by the number of its trigger patterns found in
// the query. The first record with the highest positive score wins. When no
// record scores, the first record is returned with a score of zero.
//
// ok is false only when the corpus is empty. A corpus failure is returned as
// an error wrapping ErrCorpusUnavailable.
func (r *Resolver) Resolve(ctx context.Context, query string) (m Match, ok bool, err error) {
	records, err := r.load(ctx)
	if err != nil {
		return Match{}, false, err
	}
	if len(records) == 0 {
		return Match{}, false, nil
	}

	folded := lexical.Fold(query)
	best, bestScore := 0, 0
	for i, rec := range records {
		score := 0
		for _, p := range rec.TriggerPatterns {
			p = lexical.Fold(p)
			if p != "" && strings.Contains(folded, p) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return Match{Record: records[best], PatternScore: bestScore}, true, nil
}

func (r *Resolver) load(ctx context.Context) (records []answer.Record, err error) {
	if r.corpus == nil {
		return nil, fmt.Errorf("resolve: no corpus: %w", perrors.ErrCorpusUnavailable)
	}
	defer func() {
		if rec := recover(); rec != nil {
			records = nil
			err = fmt.Errorf("resolve: corpus panic: %v: %w", rec, perrors.ErrCorpusUnavailable)
		}
	}()
	records, err = r.corpus.Responses(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve: load responses: %w: %w", perrors.ErrCorpusUnavailable, err)
	}
	return records, nil
}
