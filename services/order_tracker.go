package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yeremiapane/neo-dine/live"
	"github.com/yeremiapane/neo-dine/metrics"
	"github.com/yeremiapane/neo-dine/models"
	"github.com/yeremiapane/neo-dine/utils"
)

// StatusAdvancer moves one order to the next stage of OrderStatusSequence.
type StatusAdvancer interface {
	AdvanceStatus(visitorID, orderID string) (models.Order, error)
}

// OrderTracker simulates the kitchen and courier: every Interval each
// tracked order moves exactly one stage forward until it is delivered.
type OrderTracker struct {
	orders    StatusAdvancer
	notifier  Notifier
	publisher EventPublisher
	Interval  time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	wg     sync.WaitGroup
}

func NewOrderTracker(orders StatusAdvancer, notifier Notifier, publisher EventPublisher, interval time.Duration) *OrderTracker {
	ctx, cancel := context.WithCancel(context.Background())
	return &OrderTracker{
		orders:    orders,
		notifier:  notifier,
		publisher: publisher,
		Interval:  interval,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Track starts the status timer for an order. It is a no-op after Stop.
func (t *OrderTracker) Track(visitorID, orderID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ctx.Err() != nil {
		return
	}

	t.wg.Add(1)
	metrics.TrackerStarted()
	go t.run(visitorID, orderID)
}

// Stop cancels every running timer and waits for them to exit.
func (t *OrderTracker) Stop() {
	t.mu.Lock()
	t.cancel()
	t.mu.Unlock()
	t.wg.Wait()
}

func (t *OrderTracker) run(visitorID, orderID string) {
	defer t.wg.Done()
	defer metrics.TrackerFinished()

	timer := time.NewTimer(t.Interval)
	defer timer.Stop()

	for {
		select {
		case <-t.ctx.Done():
			return
		case <-timer.C:
			order, err := t.orders.AdvanceStatus(visitorID, orderID)
			if err != nil {
				if !errors.Is(err, ErrOrderNotFound) {
					utils.ErrorLogger.Printf("advance order %s: %v", orderID, err)
				}
				return
			}

			t.announce(visitorID, order)
			if order.Status.IsFinal() {
				return
			}
			timer.Reset(t.Interval)
		}
	}
}

func (t *OrderTracker) announce(visitorID string, order models.Order) {
	metrics.RecordStatusTransition(string(order.Status))
	utils.VisitorLog(visitorID).Infof("order %s -> %s", order.ID, order.Status)

	t.notifier.Push(visitorID, live.EventOrderUpdate, models.NewOrderTracking(order))
	switch order.Status {
	case models.OrderStatusDelivering:
		t.notifier.Toast(visitorID, "Your order is on the way!", models.ToastInfo)
	case models.OrderStatusDelivered:
		t.notifier.Toast(visitorID, "Order delivered. Bon appétit!", models.ToastSuccess)
	}

	eventType := models.EventOrderStatusChanged
	if order.Status.IsFinal() {
		eventType = models.EventOrderDelivered
	}
	ev := models.OrderEvent{
		EventType:  eventType,
		OrderID:    order.ID,
		VisitorID:  visitorID,
		Status:     order.Status,
		Total:      order.Total,
		OccurredAt: order.UpdatedAt,
	}
	ctx, cancel := context.WithTimeout(t.ctx, 5*time.Second)
	defer cancel()
	if err := t.publisher.PublishOrderEvent(ctx, ev); err != nil {
		utils.ErrorLogger.Printf("publish %s for order %s: %v", eventType, order.ID, err)
	}
}
