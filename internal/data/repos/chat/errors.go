package chat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	perrors "github.com/yungbote/portfolio-assistant/internal/pkg/errors"
)

// classifyWriteErr maps driver errors onto the package sentinels so callers
// never need to know which database is behind the repo.
func classifyWriteErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w: %v", op, perrors.ErrConflict, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.TrimSpace(pgErr.Code) == "23505" {
		return fmt.Errorf("%s: %w: %v", op, perrors.ErrConflict, err) // unique_violation
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint failed") {
		return fmt.Errorf("%s: %w: %v", op, perrors.ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
