package chat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/portfolio-assistant/internal/domain"
	"github.com/yungbote/portfolio-assistant/internal/pkg/dbctx"
	perrors "github.com/yungbote/portfolio-assistant/internal/pkg/errors"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

type FollowUpRepo interface {
	ListByCategory(dbc dbctx.Context, category string) ([]*types.FollowUpQuestion, error)
	ListAll(dbc dbctx.Context) ([]*types.FollowUpQuestion, error)
	GetByQuestion(dbc dbctx.Context, question string) (*types.FollowUpQuestion, error)
	Create(dbc dbctx.Context, rows []*types.FollowUpQuestion) ([]*types.FollowUpQuestion, error)
	// Upsert matches on question text.
	Upsert(dbc dbctx.Context, row *types.FollowUpQuestion) (*types.FollowUpQuestion, error)
	UpdateAnswer(dbc dbctx.Context, id uuid.UUID, answer string) error
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type followUpRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFollowUpRepo(db *gorm.DB, log *logger.Logger) FollowUpRepo {
	return &followUpRepo{db: db, log: log.With("repo", "FollowUpRepo")}
}

func (r *followUpRepo) ListByCategory(dbc dbctx.Context, category string) ([]*types.FollowUpQuestion, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return []*types.FollowUpQuestion{}, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.FollowUpQuestion
	if err := txx.WithContext(dbc.Ctx).
		Where("category = ?", category).
		Order("position ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *followUpRepo) ListAll(dbc dbctx.Context) ([]*types.FollowUpQuestion, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.FollowUpQuestion
	if err := txx.WithContext(dbc.Ctx).
		Order("category ASC").
		Order("position ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *followUpRepo) GetByQuestion(dbc dbctx.Context, question string) (*types.FollowUpQuestion, error) {
	if strings.TrimSpace(question) == "" {
		return nil, perrors.ErrNotFound
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var row types.FollowUpQuestion
	err := txx.WithContext(dbc.Ctx).Where("question = ?", question).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, perrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *followUpRepo) Create(dbc dbctx.Context, rows []*types.FollowUpQuestion) ([]*types.FollowUpQuestion, error) {
	if len(rows) == 0 {
		return []*types.FollowUpQuestion{}, nil
	}
	for _, row := range rows {
		if row == nil || strings.TrimSpace(row.Category) == "" || strings.TrimSpace(row.Question) == "" {
			return nil, fmt.Errorf("follow-up needs category and question: %w", perrors.ErrInvalidArgument)
		}
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	if err := txx.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, classifyWriteErr("create follow-up", err)
	}
	return rows, nil
}

func (r *followUpRepo) Upsert(dbc dbctx.Context, row *types.FollowUpQuestion) (*types.FollowUpQuestion, error) {
	if row == nil || strings.TrimSpace(row.Question) == "" {
		return nil, fmt.Errorf("missing follow-up question: %w", perrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	existing, err := r.GetByQuestion(dbctx.Context{Ctx: dbc.Ctx, Tx: txx}, row.Question)
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

func (r *followUpRepo) UpdateAnswer(dbc dbctx.Context, id uuid.UUID, answer string) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing follow-up id: %w", perrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	res := txx.WithContext(dbc.Ctx).
		Model(&types.FollowUpQuestion{}).
		Where("id = ?", id).
		Update("answer", answer)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return perrors.ErrNotFound
	}
	return nil
}

func (r *followUpRepo) Delete(dbc dbctx.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing follow-up id: %w", perrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	res := txx.WithContext(dbc.Ctx).Where("id = ?", id).Delete(&types.FollowUpQuestion{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return perrors.ErrNotFound
	}
	return nil
}
