package enrich

import (
	"context"
	"encoding/json"

	"github.com/yungbote/portfolio-assistant/internal/modules/assistant/answer"
)

// Collections is what the Enricher needs from the Cache.
type Collections interface {
	Get(ctx context.Context, category string) (json.RawMessage, bool)
}

type Enricher struct {
	collections Collections
}

func NewEnricher(collections Collections) *Enricher {
	return &Enricher{collections: collections}
}

// Payload builds the structured part of the reply for rec. Live types get
// the cached collection and fall back to the stored data, then to an empty
// list. Other types keep their stored data or an empty object.
func (e *Enricher) Payload(ctx context.Context, rec answer.Record) *answer.Payload {
	out := &answer.Payload{Type: rec.Type, TextResponse: rec.Body}
	stored := storedData(rec.Payload)

	if !answer.IsLive(rec.Type) {
		if stored != nil {
			out.Data = stored
		} else {
			out.Data = map[string]any{}
		}
		return out
	}

	if e.collections != nil {
		if raw, ok := e.collections.Get(ctx, rec.Type); ok && len(raw) > 0 {
			out.Data = raw
			return out
		}
	}
	if stored != nil {
		out.Data = stored
	} else {
		out.Data = []any{}
	}
	return out
}

// storedData extracts the "data" member of a stored payload.
func storedData(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var p struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	if len(p.Data) == 0 || string(p.Data) == "null" {
		return nil
	}
	return p.Data
}
