package chat

import (
	"gorm.io/gorm"

	types "github.com/yungbote/portfolio-assistant/internal/domain"
	"github.com/yungbote/portfolio-assistant/internal/pkg/dbctx"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

type UserQueryRepo interface {
	Create(dbc dbctx.Context, rows []*types.UserQuery) ([]*types.UserQuery, error)
	CountByIntent(dbc dbctx.Context, intent string) (int64, error)
}

type userQueryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserQueryRepo(db *gorm.DB, log *logger.Logger) UserQueryRepo {
	return &userQueryRepo{db: db, log: log.With("repo", "UserQueryRepo")}
}

func (r *userQueryRepo) Create(dbc dbctx.Context, rows []*types.UserQuery) ([]*types.UserQuery, error) {
	if len(rows) == 0 {
		return []*types.UserQuery{}, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	if err := txx.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *userQueryRepo) CountByIntent(dbc dbctx.Context, intent string) (int64, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var n int64
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.UserQuery{}).
		Where("detected_intent = ?", intent).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
