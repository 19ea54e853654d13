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

type ProjectRepo interface {
	// List returns featured projects first, newest first within each group.
	List(dbc dbctx.Context) ([]*types.Project, error)
	Upsert(dbc dbctx.Context, row *types.Project) (*types.Project, error)
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, log *logger.Logger) ProjectRepo {
	return &projectRepo{db: db, log: log.With("repo", "ProjectRepo")}
}

func (r *projectRepo) List(dbc dbctx.Context) ([]*types.Project, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Project
	if err := txx.WithContext(dbc.Ctx).
		Order("featured DESC").
		Order("start_date DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *projectRepo) Upsert(dbc dbctx.Context, row *types.Project) (*types.Project, error) {
	if row == nil || strings.TrimSpace(row.Title) == "" {
		return nil, fmt.Errorf("missing project title: %w", perrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var existing types.Project
	err := txx.WithContext(dbc.Ctx).Where("title = ?", row.Title).Take(&existing).Error
	if err := saveOver(txx.WithContext(dbc.Ctx), err, row, func() {
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	}); err != nil {
		return nil, err
	}
	return row, nil
}
