package service

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/omniful/core/internal/repository"
)

// storeInfoCacheKey is the fixed cache key for the store-info snapshot
const storeInfoCacheKey = "omniful:store_info"

// SnapshotCache caches serialized store-info snapshots; Get returns
// (nil, nil) on a miss
type SnapshotCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// StoreService aggregates store configuration, hierarchy, and sales
// vocabularies into one snapshot
type StoreService struct {
	repos  *repository.Repositories
	cache  SnapshotCache
	logger *zap.Logger
}

// NewStoreService creates a new store service; cache may be nil
func NewStoreService(repos *repository.Repositories, cache SnapshotCache, logger *zap.Logger) *StoreService {
	return &StoreService{
		repos:  repos,
		cache:  cache,
		logger: logger,
	}
}

// GetStoreInfo builds the store-info snapshot. A stock-source failure is
// swallowed into an empty list; any other failure produces a single top-level
// error with code 500.
func (s *StoreService) GetStoreInfo(ctx context.Context) *StoreInfoResult {
	if cached := s.fromCache(ctx); cached != nil {
		return &StoreInfoResult{Data: cached}
	}

	storeDetails, err := s.getStoreDetails(ctx)
	if err != nil {
		return storeInfoFailure(err)
	}

	allStores, err := s.getAllStoresInfo(ctx)
	if err != nil {
		return storeInfoFailure(err)
	}

	orderStatuses, err := s.getOrderStatuses(ctx)
	if err != nil {
		return storeInfoFailure(err)
	}

	data := &StoreInfoData{
		StoreInfo:     *storeDetails,
		AllStores:     *allStores,
		StockSources:  s.getStockSources(ctx),
		OrderStatuses: orderStatuses,
	}

	s.toCache(ctx, data)
	return &StoreInfoResult{Data: data}
}

func storeInfoFailure(err error) *StoreInfoResult {
	return &StoreInfoResult{
		Error: &StoreInfoError{
			Code:    500,
			Message: err.Error(),
		},
	}
}

func (s *StoreService) fromCache(ctx context.Context) *StoreInfoData {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, storeInfoCacheKey)
	if err != nil {
		s.logger.Warn("Store info cache read failed", zap.Error(err))
		return nil
	}
	if raw == nil {
		return nil
	}
	var data StoreInfoData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Warn("Store info cache entry corrupt", zap.Error(err))
		return nil
	}
	return &data
}

func (s *StoreService) toCache(ctx context.Context, data *StoreInfoData) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, storeInfoCacheKey, raw); err != nil {
		s.logger.Warn("Store info cache write failed", zap.Error(err))
	}
}

func (s *StoreService) getStoreDetails(ctx context.Context) (*StoreDetails, error) {
	paths := map[string]*string{}
	details := &StoreDetails{}

	general := &details.General
	paths["general/store_information/name"] = &general.StoreName
	paths["trans_email/ident_general/email"] = &general.StoreEmail
	paths["general/store_information/phone"] = &general.StorePhone
	paths["currency/options/base"] = &general.StoreCurrencyCode
	paths["general/store_information/country_id"] = &general.StoreCountry
	paths["general/locale/timezone"] = &general.StoreTimezone
	paths["general/locale/code"] = &general.StoreLocale

	sales := &details.Sales
	paths["payment/default"] = &sales.DefaultPaymentMethod
	paths["shipping/origin/shipping_method"] = &sales.DefaultShippingMethod

	catalog := &details.Catalog
	paths["catalog/category/root_id"] = &catalog.RootCategory

	urls := &details.URLs
	paths["web/unsecure/base_url"] = &urls.BaseURL
	paths["web/secure/base_url"] = &urls.SecureURL

	for path, target := range paths {
		value, err := s.repos.Settings.Value(ctx, path)
		if err != nil {
			return nil, err
		}
		*target = value
	}
	details.Catalog.DefaultCategory = details.Catalog.RootCategory

	allowed, err := s.repos.Settings.Value(ctx, "general/country/allow")
	if err != nil {
		return nil, err
	}
	details.Sales.AllowedCountries = splitCountries(allowed)

	return details, nil
}

func splitCountries(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	countries := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			countries = append(countries, trimmed)
		}
	}
	return countries
}

// getAllStoresInfo organizes the website -> store -> store-view hierarchy
func (s *StoreService) getAllStoresInfo(ctx context.Context) (*AllStores, error) {
	websites, err := s.repos.Store.Websites(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.repos.Store.StoreGroups(ctx)
	if err != nil {
		return nil, err
	}
	views, err := s.repos.Store.StoreViews(ctx)
	if err != nil {
		return nil, err
	}

	all := &AllStores{Websites: make([]WebsiteRecord, 0, len(websites))}
	for _, website := range websites {
		websiteRecord := WebsiteRecord{
			WebsiteID:   website.ID,
			WebsiteCode: website.Code,
			WebsiteName: website.Name,
			Stores:      []StoreRecord{},
		}

		for _, group := range groups {
			if group.WebsiteID != website.ID {
				continue
			}
			storeRecord := StoreRecord{
				StoreID:        group.ID,
				StoreName:      group.Name,
				StoreCode:      group.Code,
				StoreGroupID:   group.ID,
				StoreGroupName: group.Name,
				StoreViews:     []StoreViewRecord{},
			}

			for _, view := range views {
				if view.GroupID != group.ID {
					continue
				}
				storeRecord.StoreViews = append(storeRecord.StoreViews, StoreViewRecord{
					StoreViewID:   view.ID,
					StoreViewName: view.Name,
					StoreViewCode: view.Code,
				})
			}

			websiteRecord.Stores = append(websiteRecord.Stores, storeRecord)
		}

		all.Websites = append(all.Websites, websiteRecord)
	}
	return all, nil
}

func (s *StoreService) getOrderStatuses(ctx context.Context) ([]StatusRecord, error) {
	statuses, err := s.repos.Store.OrderStatuses(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]StatusRecord, 0, len(statuses))
	for _, status := range statuses {
		records = append(records, StatusRecord{
			Title: status.Label,
			Code:  status.Code,
		})
	}
	return records, nil
}

// getStockSources swallows failures into an empty list so a broken inventory
// subsystem never fails the whole snapshot
func (s *StoreService) getStockSources(ctx context.Context) []string {
	sources, err := s.repos.Store.StockSources(ctx)
	if err != nil {
		s.logger.Warn("Failed to list stock sources", zap.Error(err))
		return []string{}
	}
	codes := make([]string, 0, len(sources))
	for _, source := range sources {
		codes = append(codes, source.Code)
	}
	return codes
}
