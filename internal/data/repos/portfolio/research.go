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

type ResearchRepo interface {
	List(dbc dbctx.Context) ([]*types.ResearchPaper, error)
	Upsert(dbc dbctx.Context, row *types.ResearchPaper) (*types.ResearchPaper, error)
}

type researchRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResearchRepo(db *gorm.DB, log *logger.Logger) ResearchRepo {
	return &researchRepo{db: db, log: log.With("repo", "ResearchRepo")}
}

func (r *researchRepo) List(dbc dbctx.Context) ([]*types.ResearchPaper, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.ResearchPaper
	if err := txx.WithContext(dbc.Ctx).Order("publication_date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *researchRepo) Upsert(dbc dbctx.Context, row *types.ResearchPaper) (*types.ResearchPaper, error) {
	if row == nil || strings.TrimSpace(row.Title) == "" {
		return nil, fmt.Errorf("missing paper title: %w", perrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var existing types.ResearchPaper
	err := txx.WithContext(dbc.Ctx).Where("title = ?", row.Title).Take(&existing).Error
	if err := saveOver(txx.WithContext(dbc.Ctx), err, row, func() {
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	}); err != nil {
		return nil, err
	}
	return row, nil
}
