package portfolio

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	types "github.com/yungbote/portfolio-assistant/internal/domain"
	"github.com/yungbote/portfolio-assistant/internal/pkg/dbctx"
	perrors "github.com/yungbote/portfolio-assistant/internal/pkg/errors"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

type ExperienceRepo interface {
	List(dbc dbctx.Context) ([]*types.Experience, error)
	Upsert(dbc dbctx.Context, row *types.Experience) (*types.Experience, error)
}

type experienceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExperienceRepo(db *gorm.DB, log *logger.Logger) ExperienceRepo {
	return &experienceRepo{db: db, log: log.With("repo", "ExperienceRepo")}
}

func (r *experienceRepo) List(dbc dbctx.Context) ([]*types.Experience, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Experience
	if err := txx.WithContext(dbc.Ctx).Order("start_date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *experienceRepo) Upsert(dbc dbctx.Context, row *types.Experience) (*types.Experience, error) {
	if row == nil || strings.TrimSpace(row.Title) == "" || strings.TrimSpace(row.Company) == "" {
		return nil, fmt.Errorf("experience needs title and company: %w", perrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var existing types.Experience
	err := txx.WithContext(dbc.Ctx).
		Where("title = ? AND company = ?", row.Title, row.Company).
		Take(&existing).Error
	if err := saveOver(txx.WithContext(dbc.Ctx), err, row, func() {
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	}); err != nil {
		return nil, err
	}
	return row, nil
}
