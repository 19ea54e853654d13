package chat

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	types "github.com/yungbote/portfolio-assistant/internal/domain"
	"github.com/yungbote/portfolio-assistant/internal/pkg/dbctx"
	perrors "github.com/yungbote/portfolio-assistant/internal/pkg/errors"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

type ResponseRepo interface {
	// ListWithIntent returns every response with its owning intent, in
	// position order.
	ListWithIntent(dbc dbctx.Context) ([]*types.Response, error)
	// Upsert matches on slug and returns the stored row.
	Upsert(dbc dbctx.Context, row *types.Response) (*types.Response, error)
}

type responseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResponseRepo(db *gorm.DB, log *logger.Logger) ResponseRepo {
	return &responseRepo{db: db, log: log.With("repo", "ResponseRepo")}
}

func (r *responseRepo) ListWithIntent(dbc dbctx.Context) ([]*types.Response, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Response
	if err := txx.WithContext(dbc.Ctx).
		Preload("Intent").
		Order("position ASC").
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *responseRepo) Upsert(dbc dbctx.Context, row *types.Response) (*types.Response, error) {
	if row == nil || strings.TrimSpace(row.Slug) == "" {
		return nil, fmt.Errorf("missing response slug: %w", perrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var existing types.Response
	err := txx.WithContext(dbc.Ctx).Where("slug = ?", row.Slug).Take(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := txx.WithContext(dbc.Ctx).Omit("Intent").Create(row).Error; err != nil {
			return nil, err
		}
		return row, nil
	case err != nil:
		return nil, err
	}
	row.ID = existing.ID
	row.CreatedAt = existing.CreatedAt
	if err := txx.WithContext(dbc.Ctx).Omit("Intent").Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
