package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/domain"
)

type recordingObserver struct {
	name  string
	calls *[]string
}

func (o *recordingObserver) Execute(ctx context.Context, order *domain.Order) {
	*o.calls = append(*o.calls, o.name)
}

type panickingObserver struct{}

func (o *panickingObserver) Execute(ctx context.Context, order *domain.Order) {
	panic("observer blew up")
}

func TestDispatcher_DeliversInRegistrationOrder(t *testing.T) {
	dispatcher := NewDispatcher(zap.NewNop())
	var calls []string
	dispatcher.Register("order.event", &recordingObserver{name: "first", calls: &calls})
	dispatcher.Register("order.event", &recordingObserver{name: "second", calls: &calls})
	dispatcher.Register("other.event", &recordingObserver{name: "other", calls: &calls})

	dispatcher.Dispatch(context.Background(), "order.event", &domain.Order{ID: 1})

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatcher_ContainsObserverPanics(t *testing.T) {
	dispatcher := NewDispatcher(zap.NewNop())
	var calls []string
	dispatcher.Register("order.event", &panickingObserver{})
	dispatcher.Register("order.event", &recordingObserver{name: "after", calls: &calls})

	assert.NotPanics(t, func() {
		dispatcher.Dispatch(context.Background(), "order.event", &domain.Order{ID: 1})
	})
	assert.Equal(t, []string{"after"}, calls)
}

func TestDispatcher_UnregisteredEventIsNoop(t *testing.T) {
	dispatcher := NewDispatcher(zap.NewNop())
	assert.NotPanics(t, func() {
		dispatcher.Dispatch(context.Background(), "nobody.listens", &domain.Order{ID: 1})
	})
}
