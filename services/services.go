package services

import (
	"time"

	"github.com/yeremiapane/neo-dine/live"
	"gorm.io/gorm"
)

type Options struct {
	OrderStatusInterval    time.Duration
	PaymentProcessingDelay time.Duration
	ToastTTL               time.Duration
	WizardMaxAge           time.Duration
}

// Services bundles every store the handlers need.
type Services struct {
	Hub           *live.Hub
	Catalog       *CatalogService
	Notifications *NotificationService
	Cart          *CartService
	Orders        *OrderService
	Payments      *PaymentService
	Bookings      *BookingService
	Consent       *ConsentService

	sweeper *WizardSweeper
}

// NewServices wires the stores together. A nil publisher drops order events.
func NewServices(db *gorm.DB, opts Options, publisher EventPublisher) *Services {
	if publisher == nil {
		publisher = NoopPublisher{}
	}

	hub := live.NewHub()
	catalog := NewCatalogService(db)
	notifications := NewNotificationService(hub, opts.ToastTTL)
	cart := NewCartService(catalog, notifications)
	payments := NewPaymentService(opts.PaymentProcessingDelay, NewPaymentMonitor())
	bookings := NewBookingService(catalog, cart, payments, notifications)

	s := &Services{
		Hub:           hub,
		Catalog:       catalog,
		Notifications: notifications,
		Cart:          cart,
		Orders:        NewOrderService(cart, notifications, publisher, opts.OrderStatusInterval),
		Payments:      payments,
		Bookings:      bookings,
		Consent:       NewConsentService(db),
	}
	if opts.WizardMaxAge > 0 {
		s.sweeper = NewWizardSweeper(bookings, opts.WizardMaxAge)
		s.sweeper.Start()
	}
	return s
}

// Shutdown stops every background timer.
func (s *Services) Shutdown() {
	if s.sweeper != nil {
		s.sweeper.Stop()
	}
	s.Orders.Stop()
	s.Bookings.Stop()
	s.Notifications.Stop()
}
