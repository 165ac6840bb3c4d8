package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/omniful/core/internal/domain"
	"github.com/omniful/core/internal/repository"
	"github.com/omniful/core/internal/response"
	"github.com/omniful/core/pkg/errors"
)

// dateLayout is the timestamp format the external consumer expects
const dateLayout = "2006-01-02 15:04:05"

// ProductService projects catalog products into external product records
type ProductService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(repos *repository.Repositories, logger *zap.Logger) *ProductService {
	return &ProductService{
		repos:  repos,
		logger: logger,
	}
}

// GetProducts returns one page of the product catalog
func (s *ProductService) GetProducts(ctx context.Context, page, limit int) *response.Envelope {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 200
	}

	products, total, err := s.repos.Product.List(ctx, page, limit)
	if err != nil {
		return response.Internal(err)
	}

	records := make([]*ProductRecord, 0, len(products))
	for i := range products {
		record, err := s.GetProductData(ctx, &products[i])
		if err != nil {
			return response.Internal(err)
		}
		records = append(records, record)
	}

	return response.SuccessPaged(records, response.NewPageInfo(page, limit, total))
}

// GetProductByIdentifier resolves a product by internal id when the identifier
// is numeric, otherwise by SKU
func (s *ProductService) GetProductByIdentifier(ctx context.Context, identifier string) *response.Envelope {
	product, err := s.resolveProduct(ctx, identifier)
	if err != nil {
		if errors.IsNotFound(err) {
			return response.NotFound("Product not found")
		}
		return response.Internal(err)
	}

	record, err := s.GetProductData(ctx, product)
	if err != nil {
		return response.Internal(err)
	}
	return response.Success(record)
}

func (s *ProductService) resolveProduct(ctx context.Context, identifier string) (*domain.Product, error) {
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		return s.repos.Product.GetByID(ctx, id)
	}
	return s.repos.Product.GetBySKU(ctx, identifier)
}

// UpdateProductsInventory sets a product's stock quantity and status. The
// product is out of stock only when status is exactly "out_of_stock"; any
// other value, including empty, marks it in stock.
func (s *ProductService) UpdateProductsInventory(ctx context.Context, sku string, qty float64, status string) *response.Envelope {
	product, err := s.repos.Product.GetBySKU(ctx, sku)
	if err != nil {
		if errors.IsNotFound(err) {
			return response.NotFound("Product not found")
		}
		return response.Internal(err)
	}

	inStock := status != domain.StockStatusOutOfStock
	if err := s.repos.Product.SaveStock(ctx, sku, qty, inStock); err != nil {
		if errors.IsNotFound(err) {
			return response.NotFound("Product not found")
		}
		return response.Internal(err)
	}

	record, err := s.GetProductData(ctx, product)
	if err != nil {
		return response.Internal(err)
	}
	return response.Success(record)
}

// UpdateBulkProductsInventory applies inventory updates sequentially; the
// first failing item aborts the whole batch.
func (s *ProductService) UpdateBulkProductsInventory(ctx context.Context, updates []InventoryUpdate) *response.Envelope {
	for _, update := range updates {
		if _, err := s.repos.Product.GetBySKU(ctx, update.SKU); err != nil {
			if errors.IsNotFound(err) {
				return response.NotFound("Product not found")
			}
			return response.Internal(err)
		}

		inStock := update.Status != domain.StockStatusOutOfStock
		if err := s.repos.Product.SaveStock(ctx, update.SKU, update.Qty, inStock); err != nil {
			if errors.IsNotFound(err) {
				return response.NotFound("Product not found")
			}
			return response.Internal(err)
		}
	}
	return response.Success(nil)
}

// GetProductData builds the full external record for one product
func (s *ProductService) GetProductData(ctx context.Context, product *domain.Product) (*ProductRecord, error) {
	categories, err := s.repos.Product.Categories(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	categoryRecords := make([]CategoryRecord, 0, len(categories))
	for _, c := range categories {
		categoryRecords = append(categoryRecords, CategoryRecord{ID: c.ID, Name: c.Name})
	}

	stock, err := s.repos.Product.Stock(ctx, product.SKU)
	if err != nil {
		return nil, err
	}

	attributes, err := s.getProductAttributesWithOptions(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	variations, err := s.getProductVariations(ctx, product)
	if err != nil {
		return nil, err
	}

	gallery, err := s.galleryRecord(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	tags := product.TagIDs
	if tags == nil {
		tags = []string{}
	}

	return &ProductRecord{
		ID:               product.ID,
		SKU:              product.SKU,
		Barcode:          product.Barcode,
		StockQuantity:    stock.Qty,
		Name:             product.Name,
		Description:      product.Description,
		ShortDescription: product.ShortDescription,
		DateCreated:      product.CreatedAt.Format(dateLayout),
		DateModified:     product.UpdatedAt.Format(dateLayout),
		Categories:       categoryRecords,
		Tags:             tags,
		Attributes:       attributes,
		Variations:       variations,
		Prices: PriceRecord{
			RegularPrice: product.RegularPrice,
			SalePrice:    product.SalePrice,
			Price:        effectivePrice(product),
			MsrpPrice:    product.MsrpPrice,
			Qty:          stock.Qty,
		},
		GalleryImages:     gallery,
		TaxClass:          product.TaxClassID,
		ManageStock:       product.ManageStock,
		InStock:           stock.IsInStock,
		BackordersAllowed: stock.BackordersAllowed,
		Weight:            product.Weight,
	}, nil
}

// effectivePrice is the sale price when non-zero, otherwise the regular price
func effectivePrice(product *domain.Product) float64 {
	if product.SalePrice != 0 {
		return product.SalePrice
	}
	return product.RegularPrice
}

// getProductAttributesWithOptions surfaces only attributes with a "select"
// frontend input, each with its resolved option labels
func (s *ProductService) getProductAttributesWithOptions(ctx context.Context, productID int64) ([]AttributeRecord, error) {
	attributes, err := s.repos.Product.Attributes(ctx, productID)
	if err != nil {
		return nil, err
	}

	records := make([]AttributeRecord, 0, len(attributes))
	for _, attribute := range attributes {
		if attribute.FrontendInput != domain.FrontendInputSelect {
			continue
		}
		options := attribute.Options
		if options == nil {
			options = []string{}
		}
		records = append(records, AttributeRecord{
			Name:    attribute.Code,
			Label:   attribute.Label,
			Options: options,
		})
	}
	return records, nil
}

// getProductVariations expands configurable children; every other product
// type yields an empty list
func (s *ProductService) getProductVariations(ctx context.Context, product *domain.Product) ([]VariationRecord, error) {
	if product.TypeID != domain.ProductTypeConfigurable {
		return []VariationRecord{}, nil
	}

	children, err := s.repos.Product.Children(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	variations := make([]VariationRecord, 0, len(children))
	for i := range children {
		child := &children[i]

		stock, err := s.repos.Product.Stock(ctx, child.SKU)
		if err != nil {
			return nil, err
		}
		attributes, err := s.getProductAttributesWithOptions(ctx, child.ID)
		if err != nil {
			return nil, err
		}
		gallery, err := s.repos.Product.Gallery(ctx, child.ID)
		if err != nil {
			return nil, err
		}
		thumbnail := ""
		if len(gallery) > 0 {
			thumbnail = gallery[0].URL
		}

		variations = append(variations, VariationRecord{
			ID:                child.ID,
			SKU:               child.SKU,
			Barcode:           child.Barcode,
			RegularPrice:      child.RegularPrice,
			SalePrice:         child.SalePrice,
			Price:             effectivePrice(child),
			StockQuantity:     stock.Qty,
			InStock:           stock.IsInStock,
			BackordersAllowed: stock.BackordersAllowed,
			Attributes:        attributes,
			Thumbnail:         thumbnail,
		})
	}
	return variations, nil
}

func (s *ProductService) galleryRecord(ctx context.Context, productID int64) (GalleryRecord, error) {
	images, err := s.repos.Product.Gallery(ctx, productID)
	if err != nil {
		return GalleryRecord{}, err
	}

	record := GalleryRecord{Images: make([]ImageRecord, 0, len(images))}
	for _, img := range images {
		record.Images = append(record.Images, ImageRecord{URL: img.URL, Alt: img.Alt})
	}
	if len(images) > 0 {
		record.Full = images[0].URL
		record.Thumbnail = images[0].URL
	}
	return record, nil
}
