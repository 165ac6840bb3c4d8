package events

import (
	"context"

	"go.uber.org/zap"

	"github.com/omniful/core/internal/adapter"
	"github.com/omniful/core/internal/domain"
	"github.com/omniful/core/internal/repository"
	"github.com/omniful/core/internal/service"
)

// CancelEventName is the event name published for order cancellations
const CancelEventName = "order.canceled"

// OrderCancelNotifier forwards canceled orders to the external platform.
// Delivery is fire-and-forget: every failure is logged and swallowed, and
// duplicate event deliveries produce duplicate publishes.
type OrderCancelNotifier struct {
	adapter adapter.Adapter
	orders  *service.OrderService
	stores  repository.StoreRepository
	logger  *zap.Logger
}

// NewOrderCancelNotifier creates the cancellation notifier
func NewOrderCancelNotifier(
	publishAdapter adapter.Adapter,
	orders *service.OrderService,
	stores repository.StoreRepository,
	logger *zap.Logger,
) *OrderCancelNotifier {
	return &OrderCancelNotifier{
		adapter: publishAdapter,
		orders:  orders,
		stores:  stores,
		logger:  logger,
	}
}

// Execute publishes the order when, and only when, its status is "canceled"
// at the time the handler runs; any other status is a no-op.
func (n *OrderCancelNotifier) Execute(ctx context.Context, order *domain.Order) {
	n.logger.Info("Cancellation event received",
		zap.String("event", CancelEventName),
		zap.Int64("order_id", order.ID),
	)

	if order.Status != domain.OrderStatusCanceled {
		return
	}

	headers, err := n.buildHeaders(ctx, order)
	if err != nil {
		n.logger.Info("Failed to resolve store codes", zap.Error(err))
		return
	}

	if err := n.adapter.Connect(ctx); err != nil {
		n.logger.Info("Failed to connect publish channel", zap.Error(err))
		return
	}

	payload, err := n.orders.GetOrderData(ctx, order)
	if err != nil {
		n.logger.Info("Failed to project canceled order", zap.Error(err))
		return
	}

	if err := n.adapter.PublishMessage(ctx, CancelEventName, payload, headers); err != nil {
		n.logger.Info("Failed to publish cancellation", zap.Error(err))
		return
	}

	n.logger.Info("Order canceled successfully", zap.Int64("order_id", order.ID))
}

// buildHeaders resolves the order's store-view, store-group, and website codes
func (n *OrderCancelNotifier) buildHeaders(ctx context.Context, order *domain.Order) (map[string]string, error) {
	view, err := n.stores.StoreViewByID(ctx, order.StoreViewID)
	if err != nil {
		return nil, err
	}
	group, err := n.stores.StoreGroupByID(ctx, view.GroupID)
	if err != nil {
		return nil, err
	}
	website, err := n.stores.WebsiteByID(ctx, group.WebsiteID)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"website-code":      website.Code,
		"x-store-code":      group.Code,
		"x-store-view-code": view.Code,
	}, nil
}
