package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type settingsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *sqlx.DB, logger *zap.Logger) *settingsRepository {
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// Value resolves a configuration value by its path. Unset paths resolve to an
// empty string, matching the host platform's behavior for missing config.
func (r *settingsRepository) Value(ctx context.Context, path string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, `SELECT value FROM settings WHERE path = $1`, path)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get setting %s: %w", path, err)
	}
	return value, nil
}
