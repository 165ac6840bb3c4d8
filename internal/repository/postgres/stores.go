package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/domain"
	"github.com/omniful/core/pkg/errors"
)

type storeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *sqlx.DB, logger *zap.Logger) *storeRepository {
	return &storeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *storeRepository) Websites(ctx context.Context) ([]domain.Website, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, code, name FROM websites ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}
	defer rows.Close()

	var websites []domain.Website
	for rows.Next() {
		var w domain.Website
		if err := rows.Scan(&w.ID, &w.Code, &w.Name); err != nil {
			return nil, err
		}
		websites = append(websites, w)
	}
	return websites, rows.Err()
}

func (r *storeRepository) StoreGroups(ctx context.Context) ([]domain.StoreGroup, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, website_id, code, name FROM store_groups ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list store groups: %w", err)
	}
	defer rows.Close()

	var groups []domain.StoreGroup
	for rows.Next() {
		var g domain.StoreGroup
		if err := rows.Scan(&g.ID, &g.WebsiteID, &g.Code, &g.Name); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *storeRepository) StoreViews(ctx context.Context) ([]domain.StoreView, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, group_id, code, name FROM store_views ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list store views: %w", err)
	}
	defer rows.Close()

	var views []domain.StoreView
	for rows.Next() {
		var v domain.StoreView
		if err := rows.Scan(&v.ID, &v.GroupID, &v.Code, &v.Name); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *storeRepository) WebsiteByID(ctx context.Context, id int64) (*domain.Website, error) {
	var w domain.Website
	err := r.db.QueryRowContext(ctx, `SELECT id, code, name FROM websites WHERE id = $1`, id).
		Scan(&w.ID, &w.Code, &w.Name)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFound("website", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("get website: %w", err)
	}
	return &w, nil
}

func (r *storeRepository) StoreGroupByID(ctx context.Context, id int64) (*domain.StoreGroup, error) {
	var g domain.StoreGroup
	err := r.db.QueryRowContext(ctx, `SELECT id, website_id, code, name FROM store_groups WHERE id = $1`, id).
		Scan(&g.ID, &g.WebsiteID, &g.Code, &g.Name)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFound("store group", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("get store group: %w", err)
	}
	return &g, nil
}

func (r *storeRepository) StoreViewByID(ctx context.Context, id int64) (*domain.StoreView, error) {
	var v domain.StoreView
	err := r.db.QueryRowContext(ctx, `SELECT id, group_id, code, name FROM store_views WHERE id = $1`, id).
		Scan(&v.ID, &v.GroupID, &v.Code, &v.Name)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFound("store view", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("get store view: %w", err)
	}
	return &v, nil
}

func (r *storeRepository) OrderStatuses(ctx context.Context) ([]domain.StatusOption, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT code, label FROM order_statuses ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list order statuses: %w", err)
	}
	defer rows.Close()

	var statuses []domain.StatusOption
	for rows.Next() {
		var s domain.StatusOption
		if err := rows.Scan(&s.Code, &s.Label); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

func (r *storeRepository) StockSources(ctx context.Context) ([]domain.StockSource, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT code, name FROM stock_sources ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list stock sources: %w", err)
	}
	defer rows.Close()

	var sources []domain.StockSource
	for rows.Next() {
		var s domain.StockSource
		if err := rows.Scan(&s.Code, &s.Name); err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}
