package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/domain"
)

func testStoreRepo() *fakeStoreRepository {
	return &fakeStoreRepository{
		websitesFunc: func(ctx context.Context) ([]domain.Website, error) {
			return []domain.Website{{ID: 1, Code: "base", Name: "Main Website"}}, nil
		},
		storeGroupsFunc: func(ctx context.Context) ([]domain.StoreGroup, error) {
			return []domain.StoreGroup{{ID: 1, WebsiteID: 1, Code: "main_store", Name: "Main Store"}}, nil
		},
		storeViewsFunc: func(ctx context.Context) ([]domain.StoreView, error) {
			return []domain.StoreView{
				{ID: 1, GroupID: 1, Code: "default", Name: "Default Store View"},
				{ID: 2, GroupID: 1, Code: "ar", Name: "Arabic Store View"},
			}, nil
		},
		orderStatusesFunc: func(ctx context.Context) ([]domain.StatusOption, error) {
			return []domain.StatusOption{
				{Code: "pending", Label: "Pending"},
				{Code: "canceled", Label: "Canceled"},
			}, nil
		},
		stockSourcesFunc: func(ctx context.Context) ([]domain.StockSource, error) {
			return []domain.StockSource{{Code: "default", Name: "Default Source"}}, nil
		},
	}
}

func testSettings() *fakeSettingsRepository {
	return &fakeSettingsRepository{values: map[string]string{
		"general/store_information/name": "Acme Store",
		"currency/options/base":          "USD",
		"general/country/allow":          "US, CA, GB",
		"catalog/category/root_id":       "2",
		"web/unsecure/base_url":          "http://acme.test/",
		"web/secure/base_url":            "https://acme.test/",
	}}
}

func TestGetStoreInfo_Snapshot(t *testing.T) {
	svc := NewStoreService(testRepositories(nil, nil, testStoreRepo(), testSettings()), nil, zap.NewNop())

	result := svc.GetStoreInfo(context.Background())
	require.Nil(t, result.Error)
	require.NotNil(t, result.Data)

	assert.Equal(t, "Acme Store", result.Data.StoreInfo.General.StoreName)
	assert.Equal(t, "USD", result.Data.StoreInfo.General.StoreCurrencyCode)
	assert.Equal(t, []string{"US", "CA", "GB"}, result.Data.StoreInfo.Sales.AllowedCountries)
	assert.Equal(t, "2", result.Data.StoreInfo.Catalog.RootCategory)

	require.Len(t, result.Data.AllStores.Websites, 1)
	website := result.Data.AllStores.Websites[0]
	assert.Equal(t, "base", website.WebsiteCode)
	require.Len(t, website.Stores, 1)
	assert.Equal(t, "main_store", website.Stores[0].StoreCode)
	assert.Len(t, website.Stores[0].StoreViews, 2)

	assert.Equal(t, []string{"default"}, result.Data.StockSources)
	require.Len(t, result.Data.OrderStatuses, 2)
	assert.Equal(t, "Pending", result.Data.OrderStatuses[0].Title)
	assert.Equal(t, "pending", result.Data.OrderStatuses[0].Code)
}

func TestGetStoreInfo_StockSourceFailureSwallowed(t *testing.T) {
	stores := testStoreRepo()
	stores.stockSourcesFunc = func(ctx context.Context) ([]domain.StockSource, error) {
		return nil, stderrors.New("inventory subsystem down")
	}
	svc := NewStoreService(testRepositories(nil, nil, stores, testSettings()), nil, zap.NewNop())

	result := svc.GetStoreInfo(context.Background())
	require.Nil(t, result.Error)
	assert.Equal(t, []string{}, result.Data.StockSources)
}

func TestGetStoreInfo_OtherFailurePropagates(t *testing.T) {
	stores := testStoreRepo()
	stores.websitesFunc = func(ctx context.Context) ([]domain.Website, error) {
		return nil, stderrors.New("store hierarchy unavailable")
	}
	svc := NewStoreService(testRepositories(nil, nil, stores, testSettings()), nil, zap.NewNop())

	result := svc.GetStoreInfo(context.Background())
	require.NotNil(t, result.Error)
	assert.Nil(t, result.Data)
	assert.Equal(t, 500, result.Error.Code)
	assert.Equal(t, "store hierarchy unavailable", result.Error.Message)
}

type memoryCache struct {
	entries map[string][]byte
	gets    int
	sets    int
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.gets++
	return c.entries[key], nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte) error {
	c.sets++
	if c.entries == nil {
		c.entries = map[string][]byte{}
	}
	c.entries[key] = value
	return nil
}

func TestGetStoreInfo_CacheHitSkipsRepositories(t *testing.T) {
	stores := testStoreRepo()
	websiteCalls := 0
	inner := stores.websitesFunc
	stores.websitesFunc = func(ctx context.Context) ([]domain.Website, error) {
		websiteCalls++
		return inner(ctx)
	}

	cache := &memoryCache{}
	svc := NewStoreService(testRepositories(nil, nil, stores, testSettings()), cache, zap.NewNop())

	first := svc.GetStoreInfo(context.Background())
	require.Nil(t, first.Error)
	assert.Equal(t, 1, websiteCalls)
	assert.Equal(t, 1, cache.sets)

	second := svc.GetStoreInfo(context.Background())
	require.Nil(t, second.Error)
	assert.Equal(t, 1, websiteCalls)
	assert.Equal(t, first.Data.StoreInfo.General.StoreName, second.Data.StoreInfo.General.StoreName)
}
