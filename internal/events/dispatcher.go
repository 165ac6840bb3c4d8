package events

import (
	"context"

	"go.uber.org/zap"

	"github.com/omniful/core/internal/domain"
)

// Observer reacts to an order lifecycle event. Observers own their failures:
// nothing an observer does may abort the operation that raised the event.
type Observer interface {
	Execute(ctx context.Context, order *domain.Order)
}

// Dispatcher invokes registered observers synchronously, in registration
// order, within the caller's invocation
type Dispatcher struct {
	observers map[string][]Observer
	logger    *zap.Logger
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		observers: make(map[string][]Observer),
		logger:    logger,
	}
}

// Register attaches an observer to an event name. Registration happens at
// startup; Dispatch must not run concurrently with Register.
func (d *Dispatcher) Register(eventName string, observer Observer) {
	d.observers[eventName] = append(d.observers[eventName], observer)
}

// Dispatch delivers the event to every observer registered for it. A
// panicking observer is contained and logged so the triggering operation
// completes normally.
func (d *Dispatcher) Dispatch(ctx context.Context, eventName string, order *domain.Order) {
	for _, observer := range d.observers[eventName] {
		d.run(ctx, eventName, observer, order)
	}
}

func (d *Dispatcher) run(ctx context.Context, eventName string, observer Observer, order *domain.Order) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Observer panicked",
				zap.String("event", eventName),
				zap.Any("panic", r),
			)
		}
	}()
	observer.Execute(ctx, order)
}
