// Package querylog records answered queries for analytics without holding
// up the reply.
package querylog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	types "github.com/yungbote/portfolio-assistant/internal/domain"
	"github.com/yungbote/portfolio-assistant/internal/pkg/ctxutil"
	"github.com/yungbote/portfolio-assistant/internal/pkg/dbctx"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

const defaultWriteTimeout = 5 * time.Second

// Store is the write side of the user query repository.
type Store interface {
	Create(dbc dbctx.Context, rows []*types.UserQuery) ([]*types.UserQuery, error)
}

type Entry struct {
	Query          string
	DetectedIntent string
	Confidence     float64
	ResponseID     *uuid.UUID
}

type Logger struct {
	store   Store
	timeout time.Duration
	log     *logger.Logger
	wg      sync.WaitGroup
}

func New(store Store, log *logger.Logger) *Logger {
	if log == nil {
		log = logger.Nop()
	}
	return &Logger{store: store, timeout: defaultWriteTimeout, log: log.With("service", "QueryLogger")}
}

// Record writes e in the background. Failures are logged and dropped.
func (l *Logger) Record(ctx context.Context, e Entry) {
	if l == nil || l.store == nil {
		return
	}
	wctx := ctxutil.Detached(ctx)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				l.log.Warn("query log write panicked", "panic", r)
			}
		}()
		cctx, cancel := context.WithTimeout(wctx, l.timeout)
		defer cancel()

		row := &types.UserQuery{
			Query:          e.Query,
			DetectedIntent: e.DetectedIntent,
			Confidence:     e.Confidence,
			ResponseID:     e.ResponseID,
		}
		if _, err := l.store.Create(dbctx.Context{Ctx: cctx}, []*types.UserQuery{row}); err != nil {
			l.log.Warn("query log write failed", "intent", e.DetectedIntent, "error", err)
		}
	}()
}

// Wait blocks until pending writes finish. Used on shutdown and in tests.
func (l *Logger) Wait() {
	if l == nil {
		return
	}
	l.wg.Wait()
}
