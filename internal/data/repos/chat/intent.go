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

type IntentRepo interface {
	List(dbc dbctx.Context) ([]*types.Intent, error)
	GetByName(dbc dbctx.Context, name string) (*types.Intent, error)
	// Upsert matches on name and returns the stored row.
	Upsert(dbc dbctx.Context, row *types.Intent) (*types.Intent, error)
}

type intentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIntentRepo(db *gorm.DB, log *logger.Logger) IntentRepo {
	return &intentRepo{db: db, log: log.With("repo", "IntentRepo")}
}

func (r *intentRepo) List(dbc dbctx.Context) ([]*types.Intent, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Intent
	if err := txx.WithContext(dbc.Ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *intentRepo) GetByName(dbc dbctx.Context, name string) (*types.Intent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("missing intent name: %w", perrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var row types.Intent
	err := txx.WithContext(dbc.Ctx).Where("name = ?", name).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, perrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *intentRepo) Upsert(dbc dbctx.Context, row *types.Intent) (*types.Intent, error) {
	if row == nil || strings.TrimSpace(row.Name) == "" {
		return nil, fmt.Errorf("missing intent name: %w", perrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	existing, err := r.GetByName(dbctx.Context{Ctx: dbc.Ctx, Tx: txx}, row.Name)
	switch {
	case errors.Is(err, perrors.ErrNotFound):
		if err := txx.WithContext(dbc.Ctx).Create(row).Error; err != nil {
			return nil, err
		}
		return row, nil
	case err != nil:
		return nil, err
	}
	row.ID = existing.ID
	row.CreatedAt = existing.CreatedAt
	if err := txx.WithContext(dbc.Ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
