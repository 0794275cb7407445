package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/neo-dine/live"
	"github.com/yeremiapane/neo-dine/metrics"
	"github.com/yeremiapane/neo-dine/models"
	"github.com/yeremiapane/neo-dine/utils"
)

type CheckoutInput struct {
	Name    string                `json:"name" validate:"required,personname"`
	Address string                `json:"address" validate:"required,min=5"`
	Phone   string                `json:"phone" validate:"required,phone"`
	Method  models.DeliveryMethod `json:"method" validate:"required,oneof=drone partner"`
}

func (in *CheckoutInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Method = models.DeliveryMethod(strings.ToLower(strings.TrimSpace(string(in.Method))))
}

// OrderService turns a cart into an order and owns every order a visitor
// placed since the service started.
type OrderService struct {
	cart      *CartService
	notifier  Notifier
	publisher EventPublisher
	tracker   *OrderTracker
	now       func() time.Time

	mu     sync.Mutex
	orders map[string]map[string]*models.Order // visitor -> order id -> order
	active map[string]string                   // visitor -> active order id
}

func NewOrderService(cart *CartService, notifier Notifier, publisher EventPublisher, statusInterval time.Duration) *OrderService {
	s := &OrderService{
		cart:      cart,
		notifier:  notifier,
		publisher: publisher,
		now:       time.Now,
		orders:    make(map[string]map[string]*models.Order),
		active:    make(map[string]string),
	}
	s.tracker = NewOrderTracker(s, notifier, publisher, statusInterval)
	return s
}

// Checkout validates the delivery form, snapshots and clears the cart and
// starts tracking the new order. The cart is untouched on failure.
func (s *OrderService) Checkout(ctx context.Context, visitorID string, in CheckoutInput) (models.Order, error) {
	in.normalize()

	if len(s.cart.Get(visitorID).Items) == 0 {
		metrics.RecordOperation("checkout", false)
		return models.Order{}, ErrCartEmpty
	}
	if err := validateStruct(in); err != nil {
		metrics.RecordOperation("checkout", false)
		return models.Order{}, err
	}

	items := s.cart.Take(visitorID)
	if len(items) == 0 {
		metrics.RecordOperation("checkout", false)
		return models.Order{}, ErrCartEmpty
	}

	subtotal := Subtotal(items)
	fee := decimal.NewFromFloat(in.Method.Fee())
	now := s.now()

	s.mu.Lock()
	byID, ok := s.orders[visitorID]
	if !ok {
		byID = make(map[string]*models.Order)
		s.orders[visitorID] = byID
	}
	order := &models.Order{
		ID:              newOrderID(byID),
		Items:           items,
		Subtotal:        utils.ToFloat(subtotal),
		DeliveryFee:     utils.ToFloat(fee),
		Total:           utils.ToFloat(subtotal.Add(fee)),
		Status:          models.OrderStatusPreparing,
		CreatedAt:       now,
		UpdatedAt:       now,
		DeliveryMethod:  in.Method,
		DeliveryAddress: in.Address,
		ContactPhone:    in.Phone,
		CustomerName:    in.Name,
	}
	byID[order.ID] = order
	s.active[visitorID] = order.ID
	placed := order.Clone()
	s.mu.Unlock()

	metrics.RecordOperation("checkout", true)
	utils.VisitorLog(visitorID).Infof("order %s placed, total %s via %s", placed.ID, utils.FormatCurrency(placed.Total), placed.DeliveryMethod)

	s.notifier.Toast(visitorID, "Order placed successfully!", models.ToastSuccess)
	s.notifier.Push(visitorID, live.EventOrderUpdate, models.NewOrderTracking(placed))

	ev := models.OrderEvent{
		EventType:  models.EventOrderCreated,
		OrderID:    placed.ID,
		VisitorID:  visitorID,
		Status:     placed.Status,
		Total:      placed.Total,
		OccurredAt: now,
	}
	if err := s.publisher.PublishOrderEvent(ctx, ev); err != nil {
		utils.ErrorLogger.Printf("publish order.created for %s: %v", placed.ID, err)
	}

	s.tracker.Track(visitorID, placed.ID)
	return placed, nil
}

// AdvanceStatus moves the order exactly one stage forward. A delivered
// order is returned unchanged.
func (s *OrderService) AdvanceStatus(visitorID, orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[visitorID][orderID]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	if next, ok := order.Status.Next(); ok {
		order.Status = next
		order.UpdatedAt = s.now()
	}
	return order.Clone(), nil
}

// Active returns the tracking view of the visitor's most recent order.
func (s *OrderService) Active(visitorID string) (models.OrderTracking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.active[visitorID]
	if !ok {
		return models.OrderTracking{}, ErrNoActiveOrder
	}
	order, ok := s.orders[visitorID][id]
	if !ok {
		return models.OrderTracking{}, ErrNoActiveOrder
	}
	return models.NewOrderTracking(order.Clone()), nil
}

func (s *OrderService) Get(visitorID, orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[visitorID][orderID]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return order.Clone(), nil
}

// List returns the visitor's orders, newest first.
func (s *OrderService) List(visitorID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]models.Order, 0, len(s.orders[visitorID]))
	for _, o := range s.orders[visitorID] {
		list = append(list, o.Clone())
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

// Stop halts the status timers.
func (s *OrderService) Stop() {
	s.tracker.Stop()
}

// newOrderID -> "#" + angka acak 0..9999, unik per visitor
func newOrderID(taken map[string]*models.Order) string {
	for i := 0; i < 64; i++ {
		id := fmt.Sprintf("#%d", rand.IntN(10000))
		if _, dup := taken[id]; !dup {
			return id
		}
	}
	return fmt.Sprintf("#%d-%d", rand.IntN(10000), len(taken))
}
