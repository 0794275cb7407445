package models

import "time"

type OrderStatus string

const (
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusCooking    OrderStatus = "cooking"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// OrderStatusSequence is the only path an order travels.
var OrderStatusSequence = []OrderStatus{
	OrderStatusPreparing,
	OrderStatusCooking,
	OrderStatusReady,
	OrderStatusDelivering,
	OrderStatusDelivered,
}

// Index returns the position of s in OrderStatusSequence, or -1.
func (s OrderStatus) Index() int {
	for i, st := range OrderStatusSequence {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the following stage; false once delivered.
func (s OrderStatus) Next() (OrderStatus, bool) {
	i := s.Index()
	if i < 0 || i >= len(OrderStatusSequence)-1 {
		return s, false
	}
	return OrderStatusSequence[i+1], true
}

func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusDelivered
}

// Progress -> persentase progress bar di halaman tracking
func (s OrderStatus) Progress() int {
	switch s {
	case OrderStatusPreparing:
		return 20
	case OrderStatusCooking:
		return 40
	case OrderStatusReady:
		return 70
	case OrderStatusDelivering:
		return 90
	case OrderStatusDelivered:
		return 100
	}
	return 0
}

type DeliveryMethod string

const (
	DeliveryDrone   DeliveryMethod = "drone"
	DeliveryPartner DeliveryMethod = "partner"
)

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryDrone || m == DeliveryPartner
}

// Fee in dollars for the delivery method.
func (m DeliveryMethod) Fee() float64 {
	if m == DeliveryDrone {
		return 5.00
	}
	return 2.50
}

// ETA label shown on the tracking page.
func (m DeliveryMethod) ETA() string {
	if m == DeliveryDrone {
		return "15 MIN"
	}
	return "35 MIN"
}

type Order struct {
	ID              string         `json:"id"`
	Items           []CartItem     `json:"items"`
	Subtotal        float64        `json:"subtotal"`
	DeliveryFee     float64        `json:"delivery_fee"`
	Total           float64        `json:"total"`
	Status          OrderStatus    `json:"status"`
	CreatedAt       time.Time      `json:"timestamp"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeliveryMethod  DeliveryMethod `json:"delivery_method"`
	DeliveryAddress string         `json:"delivery_address"`
	ContactPhone    string         `json:"contact_phone"`
	CustomerName    string         `json:"customer_name"`
}

// Clone copies the order including its item slice.
func (o *Order) Clone() Order {
	cp := *o
	cp.Items = append([]CartItem(nil), o.Items...)
	return cp
}

// OrderTracking is the read model behind the "Track Order" page.
type OrderTracking struct {
	Order    Order           `json:"order"`
	ETA      string          `json:"estimated_arrival"`
	Progress int             `json:"progress"`
	Stages   []TrackingStage `json:"stages"`
}

type TrackingStage struct {
	Status  OrderStatus `json:"status"`
	Done    bool        `json:"done"`
	Current bool        `json:"current"`
}

func NewOrderTracking(o Order) OrderTracking {
	cur := o.Status.Index()
	stages := make([]TrackingStage, len(OrderStatusSequence))
	for i, st := range OrderStatusSequence {
		stages[i] = TrackingStage{Status: st, Done: i < cur || (st.IsFinal() && i == cur), Current: i == cur}
	}
	return OrderTracking{
		Order:    o,
		ETA:      o.DeliveryMethod.ETA(),
		Progress: o.Status.Progress(),
		Stages:   stages,
	}
}

// OrderEvent is published on the order event bus.
type OrderEvent struct {
	EventType  string      `json:"event_type"`
	OrderID    string      `json:"order_id"`
	VisitorID  string      `json:"visitor_id"`
	Status     OrderStatus `json:"status"`
	Total      float64     `json:"total"`
	OccurredAt time.Time   `json:"occurred_at"`
}

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderDelivered     = "order.delivered"
)
