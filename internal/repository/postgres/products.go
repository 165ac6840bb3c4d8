package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/domain"
	"github.com/omniful/core/pkg/errors"
)

type productRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sqlx.DB, logger *zap.Logger) *productRepository {
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

type productRow struct {
	ID               int64           `db:"id"`
	SKU              string          `db:"sku"`
	TypeID           string          `db:"type_id"`
	Name             string          `db:"name"`
	Description      sql.NullString  `db:"description"`
	ShortDescription sql.NullString  `db:"short_description"`
	Barcode          sql.NullString  `db:"barcode"`
	RegularPrice     float64         `db:"regular_price"`
	SalePrice        float64         `db:"sale_price"`
	MsrpPrice        float64         `db:"msrp_price"`
	TaxClassID       int             `db:"tax_class_id"`
	ManageStock      bool            `db:"manage_stock"`
	Weight           float64         `db:"weight"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

const productColumns = `
	id, sku, type_id, name, description, short_description, barcode,
	regular_price, sale_price, msrp_price, tax_class_id, manage_stock,
	weight, created_at, updated_at
`

func (r *productRow) toDomain() domain.Product {
	p := domain.Product{
		ID:               r.ID,
		SKU:              r.SKU,
		TypeID:           r.TypeID,
		Name:             r.Name,
		Description:      r.Description.String,
		ShortDescription: r.ShortDescription.String,
		RegularPrice:     r.RegularPrice,
		SalePrice:        r.SalePrice,
		MsrpPrice:        r.MsrpPrice,
		TaxClassID:       r.TaxClassID,
		ManageStock:      r.ManageStock,
		Weight:           r.Weight,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.Barcode.Valid {
		barcode := r.Barcode.String
		p.Barcode = &barcode
	}
	return p
}

func (r *productRepository) List(ctx context.Context, page, limit int) ([]domain.Product, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM products`); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	var rows []productRow
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id LIMIT $1 OFFSET $2`
	if err := r.db.SelectContext(ctx, &rows, query, limit, (page-1)*limit); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for i := range rows {
		products = append(products, rows[i].toDomain())
	}
	return products, total, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var row productRow
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFound("product", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	product := row.toDomain()
	return &product, nil
}

func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	var row productRow
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	if err := r.db.GetContext(ctx, &row, query, sku); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFound("product", sku)
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	product := row.toDomain()
	return &product, nil
}

func (r *productRepository) Children(ctx context.Context, parentID int64) ([]domain.Product, error) {
	var rows []productRow
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE id IN (SELECT child_id FROM product_links WHERE parent_id = $1)
		ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query, parentID); err != nil {
		return nil, fmt.Errorf("list product children: %w", err)
	}
	children := make([]domain.Product, 0, len(rows))
	for i := range rows {
		children = append(children, rows[i].toDomain())
	}
	return children, nil
}

func (r *productRepository) Categories(ctx context.Context, productID int64) ([]domain.Category, error) {
	var categories []domain.Category
	query := `
		SELECT c.id, c.name FROM categories c
		JOIN product_categories pc ON pc.category_id = c.id
		WHERE pc.product_id = $1
		ORDER BY c.id`
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *productRepository) Attributes(ctx context.Context, productID int64) ([]domain.Attribute, error) {
	query := `
		SELECT a.id, a.code, a.label, a.frontend_input FROM attributes a
		JOIN product_attributes pa ON pa.attribute_id = a.id
		WHERE pa.product_id = $1
		ORDER BY a.id`
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product attributes: %w", err)
	}
	defer rows.Close()

	var attributes []domain.Attribute
	var attributeIDs []int64
	for rows.Next() {
		var id int64
		var a domain.Attribute
		if err := rows.Scan(&id, &a.Code, &a.Label, &a.FrontendInput); err != nil {
			return nil, err
		}
		attributes = append(attributes, a)
		attributeIDs = append(attributeIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, attributeID := range attributeIDs {
		options, err := r.attributeOptions(ctx, attributeID)
		if err != nil {
			return nil, err
		}
		attributes[i].Options = options
	}
	return attributes, nil
}

func (r *productRepository) attributeOptions(ctx context.Context, attributeID int64) ([]string, error) {
	var options []string
	query := `SELECT label FROM attribute_options WHERE attribute_id = $1 ORDER BY position`
	if err := r.db.SelectContext(ctx, &options, query, attributeID); err != nil {
		return nil, fmt.Errorf("list attribute options: %w", err)
	}
	return options, nil
}

func (r *productRepository) Gallery(ctx context.Context, productID int64) ([]domain.GalleryImage, error) {
	query := `SELECT url, alt FROM product_gallery WHERE product_id = $1 ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product gallery: %w", err)
	}
	defer rows.Close()

	var images []domain.GalleryImage
	for rows.Next() {
		var img domain.GalleryImage
		if err := rows.Scan(&img.URL, &img.Alt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *productRepository) Stock(ctx context.Context, sku string) (*domain.StockItem, error) {
	var item domain.StockItem
	query := `
		SELECT product_id, qty, is_in_stock, backorders_allowed
		FROM stock_items WHERE sku = $1`
	err := r.db.QueryRowContext(ctx, query, sku).Scan(
		&item.ProductID,
		&item.Qty,
		&item.IsInStock,
		&item.BackordersAllowed,
	)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			// Products without an explicit stock row are treated as unmanaged
			return &domain.StockItem{}, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &item, nil
}

func (r *productRepository) SaveStock(ctx context.Context, sku string, qty float64, inStock bool) error {
	query := `
		UPDATE stock_items SET qty = $2, is_in_stock = $3
		WHERE sku = $1`
	result, err := r.db.ExecContext(ctx, query, sku, qty, inStock)
	if err != nil {
		r.logger.Error("Failed to update stock item", zap.String("sku", sku), zap.Error(err))
		return fmt.Errorf("update stock item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NewNotFound("product", sku)
	}
	return nil
}
