package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/domain"
	"github.com/omniful/core/internal/repository/filter"
	"github.com/omniful/core/pkg/errors"
)

type orderRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sqlx.DB, logger *zap.Logger) *orderRepository {
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

type orderRow struct {
	ID             int64          `db:"id"`
	IncrementID    string         `db:"increment_id"`
	Status         string         `db:"status"`
	StatusLabel    string         `db:"status_label"`
	State          string         `db:"state"`
	CurrencyCode   string         `db:"currency_code"`
	ShippingMethod string         `db:"shipping_method"`
	Subtotal       float64        `db:"subtotal"`
	ShippingAmount float64        `db:"shipping_amount"`
	TaxAmount      float64        `db:"tax_amount"`
	DiscountAmount float64        `db:"discount_amount"`
	GrandTotal     float64        `db:"grand_total"`
	TotalRefunded  float64        `db:"total_refunded"`
	TotalPaid      float64        `db:"total_paid"`
	TotalDue       float64        `db:"total_due"`
	PaymentMethod  string         `db:"payment_method"`
	PaymentTitle   string         `db:"payment_title"`
	CancelReason   sql.NullString `db:"cancel_reason"`
	StoreViewID    int64          `db:"store_view_id"`
	CreatedAt      time.Time      `db:"created_at"`
}

const orderColumns = `
	id, increment_id, status, status_label, state, currency_code,
	shipping_method, subtotal, shipping_amount, tax_amount, discount_amount,
	grand_total, total_refunded, total_paid, total_due, payment_method,
	payment_title, cancel_reason, store_view_id, created_at
`

func (r *orderRow) toDomain() domain.Order {
	o := domain.Order{
		ID:             r.ID,
		IncrementID:    r.IncrementID,
		Status:         r.Status,
		StatusLabel:    r.StatusLabel,
		State:          r.State,
		CurrencyCode:   r.CurrencyCode,
		ShippingMethod: r.ShippingMethod,
		Subtotal:       r.Subtotal,
		ShippingAmount: r.ShippingAmount,
		TaxAmount:      r.TaxAmount,
		DiscountAmount: r.DiscountAmount,
		GrandTotal:     r.GrandTotal,
		TotalRefunded:  r.TotalRefunded,
		TotalPaid:      r.TotalPaid,
		TotalDue:       r.TotalDue,
		PaymentMethod:  r.PaymentMethod,
		PaymentTitle:   r.PaymentTitle,
		StoreViewID:    r.StoreViewID,
		CreatedAt:      r.CreatedAt,
	}
	if r.CancelReason.Valid {
		reason := r.CancelReason.String
		o.CancelReason = &reason
	}
	return o
}

func (r *orderRepository) List(ctx context.Context, f filter.OrderFilter) ([]domain.Order, int, error) {
	where, args := buildOrderWhere(f)

	var total int
	countQuery := `SELECT COUNT(*) FROM orders` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	listArgs := append(args, f.Limit, (f.Page-1)*f.Limit)
	query := fmt.Sprintf(
		`SELECT %s FROM orders%s ORDER BY id LIMIT $%d OFFSET $%d`,
		orderColumns, where, len(args)+1, len(args)+2,
	)
	var rows []orderRow
	if err := r.db.SelectContext(ctx, &rows, query, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for i := range rows {
		order := rows[i].toDomain()
		if err := r.hydrate(ctx, &order); err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	return orders, total, nil
}

func buildOrderWhere(f filter.OrderFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if len(f.Statuses) > 0 {
		placeholders := make([]string, len(f.Statuses))
		for i, status := range f.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		conditions = append(conditions, "status IN ("+strings.Join(placeholders, ", ")+")")
	}
	if f.CreatedAtMin != nil {
		args = append(args, *f.CreatedAtMin)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if f.CreatedAtMax != nil {
		args = append(args, *f.CreatedAtMax)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var row orderRow
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFound("order", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	order := row.toDomain()
	if err := r.hydrate(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByIncrementID(ctx context.Context, incrementID string) (*domain.Order, error) {
	var row orderRow
	query := `SELECT ` + orderColumns + ` FROM orders WHERE increment_id = $1`
	if err := r.db.GetContext(ctx, &row, query, incrementID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFound("order", incrementID)
		}
		return nil, fmt.Errorf("get order by increment id: %w", err)
	}
	order := row.toDomain()
	if err := r.hydrate(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// hydrate loads the order's addresses and line items
func (r *orderRepository) hydrate(ctx context.Context, order *domain.Order) error {
	addresses, err := r.addresses(ctx, order.ID)
	if err != nil {
		return err
	}
	for _, addr := range addresses {
		switch addr.AddressType {
		case "billing":
			order.BillingAddress = addr
		case "shipping":
			order.ShippingAddress = addr
		}
	}

	items, err := r.items(ctx, order.ID)
	if err != nil {
		return err
	}
	order.Items = items
	return nil
}

func (r *orderRepository) addresses(ctx context.Context, orderID int64) ([]domain.Address, error) {
	query := `
		SELECT address_type, firstname, lastname, email, telephone, company,
		       street1, street2, city, region, postcode, country_id
		FROM order_addresses WHERE order_id = $1`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order addresses: %w", err)
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var a domain.Address
		err := rows.Scan(
			&a.AddressType, &a.FirstName, &a.LastName, &a.Email, &a.Telephone,
			&a.Company, &a.Street1, &a.Street2, &a.City, &a.Region,
			&a.Postcode, &a.CountryID,
		)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *orderRepository) items(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `
		SELECT id, product_id, sku, name, barcode, qty_ordered, qty_refunded,
		       price, row_total, row_total_incl_tax, tax_amount
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		var barcode sql.NullString
		err := rows.Scan(
			&item.ID, &item.ProductID, &item.SKU, &item.Name, &barcode,
			&item.QtyOrdered, &item.QtyRefunded, &item.Price, &item.RowTotal,
			&item.RowTotalInclTax, &item.TaxAmount,
		)
		if err != nil {
			return nil, err
		}
		if barcode.Valid {
			b := barcode.String
			item.Barcode = &b
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *orderRepository) Tracks(ctx context.Context, orderID int64) ([]domain.ShipmentTrack, error) {
	query := `
		SELECT title, carrier_code, track_number, tracing_link, label_pdf
		FROM shipment_tracks WHERE order_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list shipment tracks: %w", err)
	}
	defer rows.Close()

	var tracks []domain.ShipmentTrack
	for rows.Next() {
		var t domain.ShipmentTrack
		if err := rows.Scan(&t.Title, &t.CarrierCode, &t.TrackingNumber, &t.TracingLink, &t.LabelPDF); err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status, state string, cancelReason *string) error {
	query := `
		UPDATE orders SET status = $2, status_label = INITCAP($2), state = $3,
		       cancel_reason = COALESCE($4, cancel_reason)
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, orderID, status, state, cancelReason)
	if err != nil {
		r.logger.Error("Failed to update order status", zap.Int64("order_id", orderID), zap.Error(err))
		return fmt.Errorf("update order status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NewNotFound("order", fmt.Sprintf("%d", orderID))
	}
	return nil
}

func (r *orderRepository) SaveRefund(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin refund tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE orders SET status = $2, status_label = INITCAP($2), state = $3,
		       total_refunded = $4, total_paid = $5, total_due = $6
		WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query,
		order.ID, order.Status, order.State,
		order.TotalRefunded, order.TotalPaid, order.TotalDue,
	); err != nil {
		return fmt.Errorf("update order refund totals: %w", err)
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx,
			`UPDATE order_items SET qty_refunded = $2 WHERE id = $1`,
			item.ID, item.QtyRefunded,
		); err != nil {
			return fmt.Errorf("update item refund qty: %w", err)
		}
	}

	return tx.Commit()
}
