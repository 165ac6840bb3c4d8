package events

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/domain"
	"github.com/omniful/core/internal/repository"
	"github.com/omniful/core/internal/repository/filter"
	"github.com/omniful/core/internal/service"
)

type publishedMessage struct {
	eventName string
	payload   interface{}
	headers   map[string]string
}

type fakeAdapter struct {
	connectErr error
	publishErr error
	connects   int
	published  []publishedMessage
}

func (a *fakeAdapter) Connect(ctx context.Context) error {
	a.connects++
	return a.connectErr
}

func (a *fakeAdapter) PublishMessage(ctx context.Context, eventName string, payload interface{}, headers map[string]string) error {
	a.published = append(a.published, publishedMessage{eventName: eventName, payload: payload, headers: headers})
	return a.publishErr
}

type stubOrderRepository struct{}

func (stubOrderRepository) List(ctx context.Context, of filter.OrderFilter) ([]domain.Order, int, error) {
	return nil, 0, nil
}

func (stubOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return nil, stderrors.New("not implemented")
}

func (stubOrderRepository) GetByIncrementID(ctx context.Context, incrementID string) (*domain.Order, error) {
	return nil, stderrors.New("not implemented")
}

func (stubOrderRepository) Tracks(ctx context.Context, orderID int64) ([]domain.ShipmentTrack, error) {
	return nil, nil
}

func (stubOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status, state string, cancelReason *string) error {
	return nil
}

func (stubOrderRepository) SaveRefund(ctx context.Context, order *domain.Order) error {
	return nil
}

type stubStoreRepository struct {
	viewErr error
}

func (s stubStoreRepository) Websites(ctx context.Context) ([]domain.Website, error) {
	return nil, nil
}

func (s stubStoreRepository) StoreGroups(ctx context.Context) ([]domain.StoreGroup, error) {
	return nil, nil
}

func (s stubStoreRepository) StoreViews(ctx context.Context) ([]domain.StoreView, error) {
	return nil, nil
}

func (s stubStoreRepository) WebsiteByID(ctx context.Context, id int64) (*domain.Website, error) {
	return &domain.Website{ID: id, Code: "base"}, nil
}

func (s stubStoreRepository) StoreGroupByID(ctx context.Context, id int64) (*domain.StoreGroup, error) {
	return &domain.StoreGroup{ID: id, WebsiteID: 1, Code: "main_store"}, nil
}

func (s stubStoreRepository) StoreViewByID(ctx context.Context, id int64) (*domain.StoreView, error) {
	if s.viewErr != nil {
		return nil, s.viewErr
	}
	return &domain.StoreView{ID: id, GroupID: 1, Code: "default"}, nil
}

func (s stubStoreRepository) OrderStatuses(ctx context.Context) ([]domain.StatusOption, error) {
	return nil, nil
}

func (s stubStoreRepository) StockSources(ctx context.Context) ([]domain.StockSource, error) {
	return nil, nil
}

func canceledOrder() *domain.Order {
	reason := "customer request"
	return &domain.Order{
		ID:           1001,
		IncrementID:  "000000101",
		Status:       domain.OrderStatusCanceled,
		StatusLabel:  "Canceled",
		State:        domain.OrderStatusCanceled,
		CurrencyCode: "USD",
		StoreViewID:  1,
		CancelReason: &reason,
		CreatedAt:    time.Date(2023, 7, 15, 9, 30, 0, 0, time.UTC),
	}
}

func newNotifier(publishAdapter *fakeAdapter, stores repository.StoreRepository) *OrderCancelNotifier {
	orders := service.NewOrderService(&repository.Repositories{Order: stubOrderRepository{}}, zap.NewNop())
	return NewOrderCancelNotifier(publishAdapter, orders, stores, zap.NewNop())
}

func TestOrderCancelNotifier_PublishesCanceledOrder(t *testing.T) {
	publishAdapter := &fakeAdapter{}
	notifier := newNotifier(publishAdapter, stubStoreRepository{})

	notifier.Execute(context.Background(), canceledOrder())

	assert.Equal(t, 1, publishAdapter.connects)
	require.Len(t, publishAdapter.published, 1)

	message := publishAdapter.published[0]
	assert.Equal(t, "order.canceled", message.eventName)
	assert.Equal(t, map[string]string{
		"website-code":      "base",
		"x-store-code":      "main_store",
		"x-store-view-code": "default",
	}, message.headers)

	record, ok := message.payload.(*service.OrderRecord)
	require.True(t, ok)
	assert.Equal(t, "000000101", record.IncrementID)
	assert.Equal(t, domain.OrderStatusCanceled, record.Status.Code)
	require.NotNil(t, record.CancelReason)
	assert.Equal(t, "customer request", *record.CancelReason)
}

func TestOrderCancelNotifier_IgnoresNonCanceledOrders(t *testing.T) {
	publishAdapter := &fakeAdapter{}
	notifier := newNotifier(publishAdapter, stubStoreRepository{})

	order := canceledOrder()
	order.Status = "processing"
	notifier.Execute(context.Background(), order)

	assert.Zero(t, publishAdapter.connects)
	assert.Empty(t, publishAdapter.published)
}

func TestOrderCancelNotifier_ConnectFailureSwallowed(t *testing.T) {
	publishAdapter := &fakeAdapter{connectErr: stderrors.New("channel unreachable")}
	notifier := newNotifier(publishAdapter, stubStoreRepository{})

	assert.NotPanics(t, func() {
		notifier.Execute(context.Background(), canceledOrder())
	})
	assert.Empty(t, publishAdapter.published)
}

func TestOrderCancelNotifier_StoreLookupFailureSwallowed(t *testing.T) {
	publishAdapter := &fakeAdapter{}
	notifier := newNotifier(publishAdapter, stubStoreRepository{viewErr: stderrors.New("store view missing")})

	notifier.Execute(context.Background(), canceledOrder())

	assert.Zero(t, publishAdapter.connects)
	assert.Empty(t, publishAdapter.published)
}

func TestOrderCancelNotifier_PublishFailureSwallowed(t *testing.T) {
	publishAdapter := &fakeAdapter{publishErr: stderrors.New("broker down")}
	notifier := newNotifier(publishAdapter, stubStoreRepository{})

	assert.NotPanics(t, func() {
		notifier.Execute(context.Background(), canceledOrder())
	})
	require.Len(t, publishAdapter.published, 1)
}
