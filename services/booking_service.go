package services

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/neo-dine/live"
	"github.com/yeremiapane/neo-dine/metrics"
	"github.com/yeremiapane/neo-dine/models"
	"github.com/yeremiapane/neo-dine/utils"
)

type ChefLookup interface {
	GetChef(id uint) (*models.Chef, error)
}

type DetailsInput struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required,timeslot"`
	Guests int    `json:"guests" validate:"required,min=1,max=12"`
	Name   string `json:"name" validate:"required,personname"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required,phone"`
}

func (in *DetailsInput) normalize() {
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
}

// BookingService drives the reservation wizard: details, chef, pre-order,
// payment and confirmation. One wizard per visitor; opening a new one
// replaces the old.
type BookingService struct {
	chefs    ChefLookup
	cart     *CartService
	payments *PaymentService
	notifier Notifier
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	wizards map[string]*models.BookingWizard
}

func NewBookingService(chefs ChefLookup, cart *CartService, payments *PaymentService, notifier Notifier) *BookingService {
	ctx, cancel := context.WithCancel(context.Background())
	return &BookingService{
		chefs:    chefs,
		cart:     cart,
		payments: payments,
		notifier: notifier,
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
		wizards:  make(map[string]*models.BookingWizard),
	}
}

// Open starts a fresh wizard on step 1. chefID pre-selects a chef, as when
// booking from a chef profile.
func (s *BookingService) Open(visitorID string, kind models.BookingKind, chefID *uint) (models.BookingWizard, error) {
	if !kind.Valid() {
		return models.BookingWizard{}, ErrInvalidBookingKind
	}
	if chefID != nil {
		if _, err := s.chefs.GetChef(*chefID); err != nil {
			return models.BookingWizard{}, err
		}
		id := *chefID
		chefID = &id
	}

	w := &models.BookingWizard{
		ID:   uuid.NewString(),
		Kind: kind,
		Step: models.StepDetails,
		Details: models.BookingDetails{
			Time:   models.TimeSlots[0],
			Guests: models.DefaultGuests,
		},
		ChefID:   chefID,
		OpenedAt: s.now(),
	}
	w.LastActivity = w.OpenedAt

	s.mu.Lock()
	s.wizards[visitorID] = w
	snapshot := w.Clone()
	s.mu.Unlock()

	utils.VisitorLog(visitorID).Infof("booking wizard opened (%s)", kind)
	return snapshot, nil
}

func (s *BookingService) Get(visitorID string) (models.BookingWizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wizards[visitorID]
	if !ok {
		return models.BookingWizard{}, ErrWizardNotOpen
	}
	return w.Clone(), nil
}

// SubmitDetails validates step 1. The date may be today but not earlier.
func (s *BookingService) SubmitDetails(visitorID string, in DetailsInput) (models.BookingWizard, error) {
	in.normalize()
	err := validateStruct(in)

	extra := FieldErrors{}
	if d, perr := time.ParseInLocation("2006-01-02", in.Date, time.Local); perr == nil {
		now := s.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		if d.Before(today) {
			extra["date"] = "Date cannot be in the past"
		}
	}
	err = mergeFieldErrors(err, extra)

	return s.step(visitorID, models.StepDetails, func(w *models.BookingWizard) error {
		if err != nil {
			return err
		}
		w.Details = models.BookingDetails{
			Date:   in.Date,
			Time:   in.Time,
			Guests: in.Guests,
			Name:   in.Name,
			Email:  in.Email,
			Phone:  in.Phone,
		}
		w.Step = models.StepChef
		return nil
	})
}

// SelectChef handles step 2. A table booking may go on without a chef; a
// chef booking needs one, either passed here or chosen when opening.
func (s *BookingService) SelectChef(visitorID string, chefID *uint) (models.BookingWizard, error) {
	if chefID != nil {
		if _, err := s.chefs.GetChef(*chefID); err != nil {
			return models.BookingWizard{}, err
		}
	}

	return s.step(visitorID, models.StepChef, func(w *models.BookingWizard) error {
		switch {
		case chefID != nil:
			id := *chefID
			w.ChefID = &id
		case w.Kind == models.BookingChef && w.ChefID == nil:
			return FieldErrors{"chef_id": "Select a chef"}
		case w.Kind == models.BookingTable:
			w.ChefID = nil
		}
		w.Step = models.StepPreOrder
		return nil
	})
}

// SubmitPreOrder attaches whatever is in the cart right now and prices the
// booking. The cart itself is left alone until payment succeeds.
func (s *BookingService) SubmitPreOrder(visitorID string) (models.BookingWizard, error) {
	items := s.cart.Get(visitorID).Items

	return s.step(visitorID, models.StepPreOrder, func(w *models.BookingWizard) error {
		w.PreOrder = items
		quote := s.payments.Quote(items)
		w.Quote = &quote
		w.Step = models.StepPayment
		return nil
	})
}

// SubmitPayment validates the card and starts the simulated authorization.
// The returned wizard has Processing set; the confirmation arrives as a
// booking_update event once the delay is over.
func (s *BookingService) SubmitPayment(visitorID string, in PaymentInput) (models.BookingWizard, error) {
	verr := s.payments.Validate(&in)

	var (
		wizardID string
		amount   float64
	)
	snapshot, err := s.step(visitorID, models.StepPayment, func(w *models.BookingWizard) error {
		if verr != nil {
			return verr
		}
		if w.Quote == nil {
			quote := s.payments.Quote(w.PreOrder)
			w.Quote = &quote
		}
		w.Processing = true
		wizardID = w.ID
		amount = w.Quote.Total
		return nil
	})
	if err != nil {
		metrics.RecordOperation("booking_payment", false)
		return snapshot, err
	}

	s.wg.Add(1)
	go s.process(visitorID, wizardID, in, amount)
	return snapshot, nil
}

func (s *BookingService) process(visitorID, wizardID string, in PaymentInput, amount float64) {
	defer s.wg.Done()

	receipt, err := s.payments.Authorize(s.ctx, in, amount)

	s.mu.Lock()
	w, ok := s.wizards[visitorID]
	if !ok || w.ID != wizardID || !w.Processing {
		// wizard ditutup selama proses, hasil dibuang
		s.mu.Unlock()
		return
	}
	if err != nil {
		w.Processing = false
		s.mu.Unlock()
		utils.ErrorLogger.Printf("booking payment for %s: %v", visitorID, err)
		return
	}

	w.Processing = false
	w.Step = models.StepConfirmation
	w.LastActivity = s.now()
	w.Reservation = &models.Reservation{
		ID:       newReservationID(),
		Kind:     w.Kind,
		Date:     w.Details.Date,
		Time:     w.Details.Time,
		Guests:   w.Details.Guests,
		TableID:  rand.IntN(24) + 1,
		ChefID:   w.ChefID,
		PreOrder: append([]models.CartItem(nil), w.PreOrder...),
		Payment:  receipt,
		Status:   models.ReservationStatus,
		Contact: models.ReservationContact{
			Name:  w.Details.Name,
			Email: w.Details.Email,
			Phone: w.Details.Phone,
		},
	}
	snapshot := w.Clone()
	s.mu.Unlock()

	metrics.RecordOperation("booking_payment", true)
	utils.VisitorLog(visitorID).Infof("reservation %s confirmed for %s %s", snapshot.Reservation.ID, snapshot.Reservation.Date, snapshot.Reservation.Time)

	s.cart.Clear(visitorID)
	s.notifier.Toast(visitorID, "Reservation Confirmed & Paid", models.ToastSuccess)
	s.notifier.Push(visitorID, live.EventBookingUpdate, snapshot)
}

// Back returns to the previous step. Not allowed from the first step, from
// the confirmation or while a payment is processing.
func (s *BookingService) Back(visitorID string) (models.BookingWizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wizards[visitorID]
	if !ok {
		return models.BookingWizard{}, ErrWizardNotOpen
	}
	if w.Processing {
		return w.Clone(), ErrWizardProcessing
	}
	if w.Step <= models.StepDetails || w.Step >= models.StepConfirmation {
		return w.Clone(), ErrWizardStep
	}
	w.Step--
	w.LastActivity = s.now()
	return w.Clone(), nil
}

// Close discards the wizard, including a payment still in flight.
func (s *BookingService) Close(visitorID string) {
	s.mu.Lock()
	_, ok := s.wizards[visitorID]
	delete(s.wizards, visitorID)
	s.mu.Unlock()

	if ok {
		utils.VisitorLog(visitorID).Info("booking wizard closed")
	}
}

// Sweep drops wizards with no activity since cutoff unless a payment is
// still processing. It returns how many went.
func (s *BookingService) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for visitorID, w := range s.wizards {
		if w.Processing || !w.LastActivity.Before(cutoff) {
			continue
		}
		delete(s.wizards, visitorID)
		n++
	}
	return n
}

// Stop cancels in-flight payments and waits for them.
func (s *BookingService) Stop() {
	s.cancel()
	s.wg.Wait()
}

// step runs fn on the visitor's wizard when it sits on the expected step.
func (s *BookingService) step(visitorID string, want int, fn func(w *models.BookingWizard) error) (models.BookingWizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wizards[visitorID]
	if !ok {
		return models.BookingWizard{}, ErrWizardNotOpen
	}
	if w.Processing {
		return w.Clone(), ErrWizardProcessing
	}
	if w.Step != want {
		return w.Clone(), ErrWizardStep
	}
	if err := fn(w); err != nil {
		return w.Clone(), err
	}
	w.LastActivity = s.now()
	return w.Clone(), nil
}

func newReservationID() string {
	return "RSV-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
