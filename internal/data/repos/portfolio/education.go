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

type EducationRepo interface {
	List(dbc dbctx.Context) ([]*types.Education, error)
	Upsert(dbc dbctx.Context, row *types.Education) (*types.Education, error)
}

type educationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEducationRepo(db *gorm.DB, log *logger.Logger) EducationRepo {
	return &educationRepo{db: db, log: log.With("repo", "EducationRepo")}
}

func (r *educationRepo) List(dbc dbctx.Context) ([]*types.Education, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Education
	if err := txx.WithContext(dbc.Ctx).Order("end_year DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *educationRepo) Upsert(dbc dbctx.Context, row *types.Education) (*types.Education, error) {
	if row == nil || strings.TrimSpace(row.Degree) == "" || strings.TrimSpace(row.Institution) == "" {
		return nil, fmt.Errorf("education needs degree and institution: %w", perrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var existing types.Education
	err := txx.WithContext(dbc.Ctx).
		Where("degree = ? AND institution = ?", row.Degree, row.Institution).
		Take(&existing).Error
	if err := saveOver(txx.WithContext(dbc.Ctx), err, row, func() {
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	}); err != nil {
		return nil, err
	}
	return row, nil
}
