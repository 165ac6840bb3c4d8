package service

import (
	"context"

	"github.com/omniful/core/internal/domain"
	"github.com/omniful/core/internal/repository"
	"github.com/omniful/core/internal/repository/filter"
)

type fakeProductRepository struct {
	listFunc       func(ctx context.Context, page, limit int) ([]domain.Product, int, error)
	getByIDFunc    func(ctx context.Context, id int64) (*domain.Product, error)
	getBySKUFunc   func(ctx context.Context, sku string) (*domain.Product, error)
	childrenFunc   func(ctx context.Context, parentID int64) ([]domain.Product, error)
	categoriesFunc func(ctx context.Context, productID int64) ([]domain.Category, error)
	attributesFunc func(ctx context.Context, productID int64) ([]domain.Attribute, error)
	galleryFunc    func(ctx context.Context, productID int64) ([]domain.GalleryImage, error)
	stockFunc      func(ctx context.Context, sku string) (*domain.StockItem, error)
	saveStockFunc  func(ctx context.Context, sku string, qty float64, inStock bool) error
}

func (f *fakeProductRepository) List(ctx context.Context, page, limit int) ([]domain.Product, int, error) {
	return f.listFunc(ctx, page, limit)
}

func (f *fakeProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return f.getByIDFunc(ctx, id)
}

func (f *fakeProductRepository) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return f.getBySKUFunc(ctx, sku)
}

func (f *fakeProductRepository) Children(ctx context.Context, parentID int64) ([]domain.Product, error) {
	if f.childrenFunc == nil {
		return nil, nil
	}
	return f.childrenFunc(ctx, parentID)
}

func (f *fakeProductRepository) Categories(ctx context.Context, productID int64) ([]domain.Category, error) {
	if f.categoriesFunc == nil {
		return nil, nil
	}
	return f.categoriesFunc(ctx, productID)
}

func (f *fakeProductRepository) Attributes(ctx context.Context, productID int64) ([]domain.Attribute, error) {
	if f.attributesFunc == nil {
		return nil, nil
	}
	return f.attributesFunc(ctx, productID)
}

func (f *fakeProductRepository) Gallery(ctx context.Context, productID int64) ([]domain.GalleryImage, error) {
	if f.galleryFunc == nil {
		return nil, nil
	}
	return f.galleryFunc(ctx, productID)
}

func (f *fakeProductRepository) Stock(ctx context.Context, sku string) (*domain.StockItem, error) {
	if f.stockFunc == nil {
		return &domain.StockItem{}, nil
	}
	return f.stockFunc(ctx, sku)
}

func (f *fakeProductRepository) SaveStock(ctx context.Context, sku string, qty float64, inStock bool) error {
	return f.saveStockFunc(ctx, sku, qty, inStock)
}

type fakeOrderRepository struct {
	listFunc             func(ctx context.Context, f filter.OrderFilter) ([]domain.Order, int, error)
	getByIDFunc          func(ctx context.Context, id int64) (*domain.Order, error)
	getByIncrementIDFunc func(ctx context.Context, incrementID string) (*domain.Order, error)
	tracksFunc           func(ctx context.Context, orderID int64) ([]domain.ShipmentTrack, error)
	updateStatusFunc     func(ctx context.Context, orderID int64, status, state string, cancelReason *string) error
	saveRefundFunc       func(ctx context.Context, order *domain.Order) error
}

func (f *fakeOrderRepository) List(ctx context.Context, of filter.OrderFilter) ([]domain.Order, int, error) {
	return f.listFunc(ctx, of)
}

func (f *fakeOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return f.getByIDFunc(ctx, id)
}

func (f *fakeOrderRepository) GetByIncrementID(ctx context.Context, incrementID string) (*domain.Order, error) {
	return f.getByIncrementIDFunc(ctx, incrementID)
}

func (f *fakeOrderRepository) Tracks(ctx context.Context, orderID int64) ([]domain.ShipmentTrack, error) {
	if f.tracksFunc == nil {
		return nil, nil
	}
	return f.tracksFunc(ctx, orderID)
}

func (f *fakeOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status, state string, cancelReason *string) error {
	return f.updateStatusFunc(ctx, orderID, status, state, cancelReason)
}

func (f *fakeOrderRepository) SaveRefund(ctx context.Context, order *domain.Order) error {
	return f.saveRefundFunc(ctx, order)
}

type fakeStoreRepository struct {
	websitesFunc       func(ctx context.Context) ([]domain.Website, error)
	storeGroupsFunc    func(ctx context.Context) ([]domain.StoreGroup, error)
	storeViewsFunc     func(ctx context.Context) ([]domain.StoreView, error)
	websiteByIDFunc    func(ctx context.Context, id int64) (*domain.Website, error)
	storeGroupByIDFunc func(ctx context.Context, id int64) (*domain.StoreGroup, error)
	storeViewByIDFunc  func(ctx context.Context, id int64) (*domain.StoreView, error)
	orderStatusesFunc  func(ctx context.Context) ([]domain.StatusOption, error)
	stockSourcesFunc   func(ctx context.Context) ([]domain.StockSource, error)
}

func (f *fakeStoreRepository) Websites(ctx context.Context) ([]domain.Website, error) {
	return f.websitesFunc(ctx)
}

func (f *fakeStoreRepository) StoreGroups(ctx context.Context) ([]domain.StoreGroup, error) {
	return f.storeGroupsFunc(ctx)
}

func (f *fakeStoreRepository) StoreViews(ctx context.Context) ([]domain.StoreView, error) {
	return f.storeViewsFunc(ctx)
}

func (f *fakeStoreRepository) WebsiteByID(ctx context.Context, id int64) (*domain.Website, error) {
	return f.websiteByIDFunc(ctx, id)
}

func (f *fakeStoreRepository) StoreGroupByID(ctx context.Context, id int64) (*domain.StoreGroup, error) {
	return f.storeGroupByIDFunc(ctx, id)
}

func (f *fakeStoreRepository) StoreViewByID(ctx context.Context, id int64) (*domain.StoreView, error) {
	return f.storeViewByIDFunc(ctx, id)
}

func (f *fakeStoreRepository) OrderStatuses(ctx context.Context) ([]domain.StatusOption, error) {
	return f.orderStatusesFunc(ctx)
}

func (f *fakeStoreRepository) StockSources(ctx context.Context) ([]domain.StockSource, error) {
	return f.stockSourcesFunc(ctx)
}

type fakeSettingsRepository struct {
	values map[string]string
	err    error
}

func (f *fakeSettingsRepository) Value(ctx context.Context, path string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.values[path], nil
}

func testRepositories(
	products *fakeProductRepository,
	orders *fakeOrderRepository,
	stores *fakeStoreRepository,
	settings *fakeSettingsRepository,
) *repository.Repositories {
	repos := &repository.Repositories{}
	if products != nil {
		repos.Product = products
	}
	if orders != nil {
		repos.Order = orders
	}
	if stores != nil {
		repos.Store = stores
	}
	if settings != nil {
		repos.Settings = settings
	}
	return repos
}
