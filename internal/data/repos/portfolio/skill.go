package portfolio

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

type SkillRepo interface {
	// ListActive returns active skills ordered by category then sort order.
	ListActive(dbc dbctx.Context) ([]*types.Skill, error)
	Upsert(dbc dbctx.Context, row *types.Skill) (*types.Skill, error)
}

type skillRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillRepo(db *gorm.DB, log *logger.Logger) SkillRepo {
	return &skillRepo{db: db, log: log.With("repo", "SkillRepo")}
}

func (r *skillRepo) ListActive(dbc dbctx.Context) ([]*types.Skill, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Skill
	if err := txx.WithContext(dbc.Ctx).
		Where("is_active = ?", true).
		Order("category_name ASC").
		Order("sort_order ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *skillRepo) Upsert(dbc dbctx.Context, row *types.Skill) (*types.Skill, error) {
	if row == nil || strings.TrimSpace(row.SkillName) == "" {
		return nil, fmt.Errorf("missing skill name: %w", perrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var existing types.Skill
	err := txx.WithContext(dbc.Ctx).Where("skill_name = ?", row.SkillName).Take(&existing).Error
	if err := saveOver(txx.WithContext(dbc.Ctx), err, row, func() {
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	}); err != nil {
		return nil, err
	}
	return row, nil
}

// saveOver creates row when lookupErr is a not-found, otherwise copies the
// existing identity via adopt and saves row over it.
func saveOver(tx *gorm.DB, lookupErr error, row interface{}, adopt func()) error {
	switch {
	case errors.Is(lookupErr, gorm.ErrRecordNotFound):
		return tx.Create(row).Error
	case lookupErr != nil:
		return lookupErr
	}
	adopt()
	return tx.Save(row).Error
}
