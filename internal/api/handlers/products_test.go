package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/domain"
	"github.com/omniful/core/internal/repository"
	"github.com/omniful/core/internal/response"
	"github.com/omniful/core/internal/service"
	"github.com/omniful/core/pkg/errors"
)

type stubProductRepository struct {
	products map[string]*domain.Product
	saved    []string
}

func (s *stubProductRepository) List(ctx context.Context, page, limit int) ([]domain.Product, int, error) {
	all := make([]domain.Product, 0, len(s.products))
	for _, product := range s.products {
		all = append(all, *product)
	}
	return all, len(all), nil
}

func (s *stubProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	for _, product := range s.products {
		if product.ID == id {
			return product, nil
		}
	}
	return nil, errors.NewNotFound("product", "")
}

func (s *stubProductRepository) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	if product, ok := s.products[sku]; ok {
		return product, nil
	}
	return nil, errors.NewNotFound("product", sku)
}

func (s *stubProductRepository) Children(ctx context.Context, parentID int64) ([]domain.Product, error) {
	return nil, nil
}

func (s *stubProductRepository) Categories(ctx context.Context, productID int64) ([]domain.Category, error) {
	return nil, nil
}

func (s *stubProductRepository) Attributes(ctx context.Context, productID int64) ([]domain.Attribute, error) {
	return nil, nil
}

func (s *stubProductRepository) Gallery(ctx context.Context, productID int64) ([]domain.GalleryImage, error) {
	return nil, nil
}

func (s *stubProductRepository) Stock(ctx context.Context, sku string) (*domain.StockItem, error) {
	return &domain.StockItem{Qty: 7, IsInStock: true}, nil
}

func (s *stubProductRepository) SaveStock(ctx context.Context, sku string, qty float64, inStock bool) error {
	s.saved = append(s.saved, sku)
	return nil
}

func newProductRouter(repo *stubProductRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	products := service.NewProductService(&repository.Repositories{Product: repo}, zap.NewNop())

	router := gin.New()
	router.GET("/v1/products", HandleListProducts(products, zap.NewNop()))
	router.PUT("/v1/products/inventory", HandleUpdateInventory(products, zap.NewNop()))
	router.GET("/v1/products/:identifier", HandleGetProduct(products, zap.NewNop()))
	return router
}

func TestHandleListProducts(t *testing.T) {
	repo := &stubProductRepository{products: map[string]*domain.Product{
		"TSHIRT-RED-M": {ID: 42, SKU: "TSHIRT-RED-M", Name: "Red T-Shirt M", TypeID: domain.ProductTypeSimple},
	}}
	router := newProductRouter(repo)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/products?page=1&limit=50", nil)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	assert.True(t, env.Status)
	require.NotNil(t, env.PageInfo)
	assert.Equal(t, 1, env.PageInfo.CurrentPage)
	assert.Equal(t, 50, env.PageInfo.PerPage)
	assert.Equal(t, 1, env.PageInfo.TotalCount)
}

func TestHandleGetProduct_NotFound(t *testing.T) {
	router := newProductRouter(&stubProductRepository{products: map[string]*domain.Product{}})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/products/MISSING-SKU", nil)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	assert.False(t, env.Status)
	assert.Equal(t, "Product not found", env.Message)
}

func TestHandleUpdateInventory(t *testing.T) {
	repo := &stubProductRepository{products: map[string]*domain.Product{
		"TSHIRT-RED-M": {ID: 42, SKU: "TSHIRT-RED-M", TypeID: domain.ProductTypeSimple},
	}}
	router := newProductRouter(repo)

	body := `{"sku":"TSHIRT-RED-M","qty":7,"status":"in_stock"}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/v1/products/inventory", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []string{"TSHIRT-RED-M"}, repo.saved)
}

func TestHandleUpdateInventory_BadBody(t *testing.T) {
	router := newProductRouter(&stubProductRepository{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/v1/products/inventory", strings.NewReader("{not json"))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
