package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/domain"
	"github.com/omniful/core/internal/repository/filter"
	"github.com/omniful/core/internal/repository/postgres"
)

// ProductRepository reads and updates the catalog mirror
type ProductRepository interface {
	List(ctx context.Context, page, limit int) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	Children(ctx context.Context, parentID int64) ([]domain.Product, error)
	Categories(ctx context.Context, productID int64) ([]domain.Category, error)
	Attributes(ctx context.Context, productID int64) ([]domain.Attribute, error)
	Gallery(ctx context.Context, productID int64) ([]domain.GalleryImage, error)
	Stock(ctx context.Context, sku string) (*domain.StockItem, error)
	SaveStock(ctx context.Context, sku string, qty float64, inStock bool) error
}

// OrderFilter narrows an order list query
type OrderFilter = filter.OrderFilter

// OrderRepository reads and updates the sales mirror
type OrderRepository interface {
	List(ctx context.Context, f filter.OrderFilter) ([]domain.Order, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByIncrementID(ctx context.Context, incrementID string) (*domain.Order, error)
	Tracks(ctx context.Context, orderID int64) ([]domain.ShipmentTrack, error)
	UpdateStatus(ctx context.Context, orderID int64, status, state string, cancelReason *string) error
	SaveRefund(ctx context.Context, order *domain.Order) error
}

// StoreRepository reads the store hierarchy and sales vocabularies
type StoreRepository interface {
	Websites(ctx context.Context) ([]domain.Website, error)
	StoreGroups(ctx context.Context) ([]domain.StoreGroup, error)
	StoreViews(ctx context.Context) ([]domain.StoreView, error)
	WebsiteByID(ctx context.Context, id int64) (*domain.Website, error)
	StoreGroupByID(ctx context.Context, id int64) (*domain.StoreGroup, error)
	StoreViewByID(ctx context.Context, id int64) (*domain.StoreView, error)
	OrderStatuses(ctx context.Context) ([]domain.StatusOption, error)
	StockSources(ctx context.Context) ([]domain.StockSource, error)
}

// SettingsRepository resolves configuration values by their path, e.g.
// "general/store_information/name"
type SettingsRepository interface {
	Value(ctx context.Context, path string) (string, error)
}

// Repositories bundles all repositories for injection
type Repositories struct {
	Product  ProductRepository
	Order    OrderRepository
	Store    StoreRepository
	Settings SettingsRepository
}

// NewRepositories creates the Postgres-backed repository set
func NewRepositories(db *sqlx.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Product:  postgres.NewProductRepository(db, logger),
		Order:    postgres.NewOrderRepository(db, logger),
		Store:    postgres.NewStoreRepository(db, logger),
		Settings: postgres.NewSettingsRepository(db, logger),
	}
}
