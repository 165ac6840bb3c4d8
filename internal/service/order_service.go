package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/omniful/core/internal/domain"
	"github.com/omniful/core/internal/repository"
	"github.com/omniful/core/internal/repository/filter"
	"github.com/omniful/core/internal/response"
	"github.com/omniful/core/pkg/errors"
)

// Dispatcher delivers order lifecycle events to registered observers
type Dispatcher interface {
	Dispatch(ctx context.Context, eventName string, order *domain.Order)
}

// OrderFilters carries the inbound list query parameters
type OrderFilters struct {
	Statuses     []string
	CreatedAtMin string
	CreatedAtMax string
	Page         int
	Limit        int
}

// OrderService projects sales orders into external order records
type OrderService struct {
	repos      *repository.Repositories
	dispatcher Dispatcher
	logger     *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repos *repository.Repositories, logger *zap.Logger) *OrderService {
	return &OrderService{
		repos:  repos,
		logger: logger,
	}
}

// SetDispatcher attaches the event dispatcher used by state-changing
// operations. Wired after construction because observers need the order
// projection themselves.
func (s *OrderService) SetDispatcher(dispatcher Dispatcher) {
	s.dispatcher = dispatcher
}

// GetOrders returns one page of orders matching the filters. An empty status
// filter defaults to the active status set.
func (s *OrderService) GetOrders(ctx context.Context, filters OrderFilters) *response.Envelope {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 200
	}

	statuses := filters.Statuses
	if len(statuses) == 0 {
		statuses = domain.DefaultOrderStatuses
	}

	repoFilter := filter.OrderFilter{
		Statuses: statuses,
		Page:     filters.Page,
		Limit:    filters.Limit,
	}

	createdAtMin, err := parseDateParam(filters.CreatedAtMin)
	if err != nil {
		return response.Internal(err)
	}
	repoFilter.CreatedAtMin = createdAtMin

	createdAtMax, err := parseDateParam(filters.CreatedAtMax)
	if err != nil {
		return response.Internal(err)
	}
	repoFilter.CreatedAtMax = createdAtMax

	orders, total, err := s.repos.Order.List(ctx, repoFilter)
	if err != nil {
		return response.Internal(err)
	}

	records := make([]*OrderRecord, 0, len(orders))
	for i := range orders {
		record, err := s.GetOrderData(ctx, &orders[i])
		if err != nil {
			return response.Internal(err)
		}
		records = append(records, record)
	}

	return response.SuccessPaged(records, response.NewPageInfo(filters.Page, filters.Limit, total))
}

// parseDateParam accepts a bare date or a full timestamp; empty means unset
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, dateLayout, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("invalid date parameter %q", value)
}

// GetOrderByID resolves an order by entity id when the identifier is numeric,
// otherwise by increment id. A missing order yields a 500 envelope with the
// "Order not found." message.
func (s *OrderService) GetOrderByID(ctx context.Context, identifier string) *response.Envelope {
	order, err := s.resolveOrder(ctx, identifier)
	if err != nil {
		if errors.IsNotFound(err) {
			return response.Failure(500, "Order not found.")
		}
		return response.Internal(err)
	}

	record, err := s.GetOrderData(ctx, order)
	if err != nil {
		return response.Internal(err)
	}
	return response.Success(record)
}

func (s *OrderService) resolveOrder(ctx context.Context, identifier string) (*domain.Order, error) {
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		return s.repos.Order.GetByID(ctx, id)
	}
	return s.repos.Order.GetByIncrementID(ctx, identifier)
}

// GetOrderData is the pure order projection, reused by the cancel notifier
func (s *OrderService) GetOrderData(ctx context.Context, order *domain.Order) (*OrderRecord, error) {
	tracks, err := s.repos.Order.Tracks(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	shipments := make([]ShipmentRecord, 0, len(tracks))
	for _, track := range tracks {
		shipments = append(shipments, ShipmentRecord{
			TrackNumber:      track.TrackingNumber,
			Title:            track.Title,
			CarrierCode:      track.CarrierCode,
			TracingLink:      track.TracingLink,
			TrackingNumber:   track.TrackingNumber,
			ShippingLabelPDF: track.LabelPDF,
		})
	}

	billing := order.BillingAddress
	customer := CustomerRecord{
		FirstName: billing.FirstName,
		LastName:  billing.LastName,
		Email:     billing.Email,
		Phone:     billing.Telephone,
		Company:   billing.Company,
		Address1:  billing.Street1,
		Address2:  billing.Street2,
		City:      billing.City,
		State:     billing.Region,
		Postcode:  billing.Postcode,
		Country:   billing.CountryID,
	}

	items := make([]OrderItemRecord, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemRecord{
			ID:        item.ID,
			SKU:       item.SKU,
			ProductID: item.ProductID,
			Name:      item.Name,
			Barcode:   item.Barcode,
			Quantity:  item.QtyOrdered,
			Price:     item.Price,
			Subtotal:  item.RowTotal,
			Total:     item.RowTotalInclTax,
			Tax:       item.TaxAmount,
		})
	}

	currency := order.CurrencyCode
	totals := map[string]TotalRecord{
		"subtotal":       totalRecord("Subtotal", currency, order.Subtotal),
		"shipping":       totalRecord("Shipping", currency, order.ShippingAmount),
		"tax":            totalRecord("Tax", currency, order.TaxAmount),
		"discount":       totalRecord("Discount", currency, order.DiscountAmount),
		"total":          totalRecord("Total", currency, order.GrandTotal),
		"total_refunded": totalRecord("Total Refunded", currency, order.TotalRefunded),
		"total_paid":     totalRecord("Total Paid", currency, order.TotalPaid),
		"total_due":      totalRecord("Total Due", currency, order.TotalDue),
	}

	return &OrderRecord{
		ID:             order.ID,
		IncrementID:    order.IncrementID,
		Status: OrderStatusRecord{
			Code:  order.Status,
			Label: order.StatusLabel,
			State: order.State,
		},
		Currency:       currency,
		ShippingMethod: order.ShippingMethod,
		Total:          order.GrandTotal,
		Subtotal:       order.Subtotal,
		TaxTotal:       order.TaxAmount,
		DiscountTotal:  order.DiscountAmount,
		CreatedAt:      order.CreatedAt.Format(dateLayout),
		Invoice: InvoiceRecord{
			Currency:      currency,
			Subtotal:      order.Subtotal,
			ShippingPrice: order.ShippingAmount,
			Tax:           order.TaxAmount,
			Discount:      order.DiscountAmount,
			Total:         order.GrandTotal,
		},
		Customer:   customer,
		OrderItems: items,
		PaymentMethod: PaymentMethodRecord{
			Code:             order.PaymentMethod,
			Title:            order.PaymentTitle,
			IsCashOnDelivery: isCashOnDelivery(order),
		},
		ShippingAddress: shippingAddressRecord(order.ShippingAddress),
		CancelReason:    order.CancelReason,
		Totals:          totals,
		Shipments:       shipments,
	}, nil
}

func totalRecord(title, currency string, value float64) TotalRecord {
	return TotalRecord{
		Title:          title,
		Value:          value,
		FormattedValue: formatPrice(currency, value),
	}
}

// isCashOnDelivery is true iff the payment method code is the COD literal
func isCashOnDelivery(order *domain.Order) bool {
	return order.PaymentMethod == domain.PaymentMethodCashOnDelivery
}

func shippingAddressRecord(address domain.Address) ShippingAddressRecord {
	street := address.Street1
	if address.Street2 != "" {
		street += "\n" + address.Street2
	}
	return ShippingAddressRecord{
		FirstName:   address.FirstName,
		LastName:    address.LastName,
		Email:       address.Email,
		CountryID:   address.CountryID,
		Country:     countryByCode(address.CountryID),
		Region:      address.Region,
		City:        address.City,
		Street:      street,
		Postcode:    address.Postcode,
		AddressType: address.AddressType,
		Company:     address.Company,
		Phone:       address.Telephone,
	}
}

// CancelOrder moves an order to canceled, stores the reason, and dispatches
// the cancellation event to registered observers
func (s *OrderService) CancelOrder(ctx context.Context, identifier, reason string) *response.Envelope {
	order, err := s.resolveOrder(ctx, identifier)
	if err != nil {
		if errors.IsNotFound(err) {
			return response.Failure(500, "Order not found.")
		}
		return response.Internal(err)
	}

	var cancelReason *string
	if reason != "" {
		cancelReason = &reason
	}
	if err := s.repos.Order.UpdateStatus(ctx, order.ID, domain.OrderStatusCanceled, domain.OrderStatusCanceled, cancelReason); err != nil {
		return response.Internal(err)
	}

	order, err = s.repos.Order.GetByID(ctx, order.ID)
	if err != nil {
		return response.Internal(err)
	}

	if s.dispatcher != nil {
		s.dispatcher.Dispatch(ctx, domain.EventOrderCancelAfter, order)
	}

	record, err := s.GetOrderData(ctx, order)
	if err != nil {
		return response.Internal(err)
	}
	return response.Success(record)
}

// ProcessRefund marks the given line items refunded and moves the order to
// closed once every item is fully refunded
func (s *OrderService) ProcessRefund(ctx context.Context, orderID int64, refunds []RefundItem) *response.Envelope {
	order, err := s.repos.Order.GetByID(ctx, orderID)
	if err != nil {
		if errors.IsNotFound(err) {
			return response.Failure(500, "Order not found.")
		}
		return response.Internal(err)
	}

	var refunded float64
	for _, refund := range refunds {
		applied := false
		for i := range order.Items {
			item := &order.Items[i]
			if item.ID != refund.ItemID {
				continue
			}
			qty := refund.Qty
			if remaining := item.QtyOrdered - item.QtyRefunded; qty > remaining {
				qty = remaining
			}
			item.QtyRefunded += qty
			refunded += qty * item.Price
			applied = true
			break
		}
		if !applied {
			return response.Failure(500, "Order item not found.")
		}
	}

	order.TotalRefunded += refunded
	order.TotalPaid -= refunded
	if order.TotalPaid < 0 {
		order.TotalPaid = 0
	}

	fullyRefunded := true
	for _, item := range order.Items {
		if item.QtyRefunded < item.QtyOrdered {
			fullyRefunded = false
			break
		}
	}
	if fullyRefunded {
		order.Status = domain.OrderStatusClosed
		order.State = domain.OrderStatusClosed
		order.StatusLabel = "Closed"
	}

	if err := s.repos.Order.SaveRefund(ctx, order); err != nil {
		return response.Internal(err)
	}

	record, err := s.GetOrderData(ctx, order)
	if err != nil {
		return response.Internal(err)
	}
	return response.Success(record)
}
