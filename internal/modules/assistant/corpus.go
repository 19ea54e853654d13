package assistant

import (
	"context"
	"encoding/json"

	"github.com/yungbote/portfolio-assistant/internal/data/repos"
	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/answer"
	"github.com/yungbote/portfolio-assistant/internal/pkg/dbctx"
)

// RepoCorpus serves response snapshots straight from the response table.
type RepoCorpus struct {
	responses repos.ResponseRepo
}

func NewRepoCorpus(responses repos.ResponseRepo) *RepoCorpus {
	return &RepoCorpus{responses: responses}
}

func (c *RepoCorpus) Responses(ctx context.Context) ([]answer.Record, error) {
	rows, err := c.responses.ListWithIntent(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, err
	}
	out := make([]answer.Record, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		rec := answer.Record{
			ID:              r.ID,
			TriggerPatterns: append([]string(nil), r.TriggerPatterns...),
			Body:            r.ResponseText,
			Type:            r.ResponseType,
			FollowUps:       append([]string(nil), r.FollowUpQuestions...),
			Threshold:       r.Intent.Threshold(),
		}
		if r.Intent != nil {
			rec.Intent = r.Intent.Name
		}
		if len(r.ResponseData) > 0 {
			rec.Payload = append(json.RawMessage(nil), r.ResponseData...)
		}
		out = append(out, rec)
	}
	return out, nil
}
