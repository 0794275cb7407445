package models

import "time"

type BookingKind string

const (
	BookingTable BookingKind = "table"
	BookingChef  BookingKind = "chef"
)

func (k BookingKind) Valid() bool {
	return k == BookingTable || k == BookingChef
}

// Wizard steps, in order
const (
	StepDetails      = 1
	StepChef         = 2
	StepPreOrder     = 3
	StepPayment      = 4
	StepConfirmation = 5
)

// TimeSlots are the seatings a reservation can start at.
var TimeSlots = []string{"18:00", "19:30", "21:00"}

const (
	DefaultGuests     = 2
	MaxGuests         = 12
	ReservationStatus = "confirmed"
)

type BookingDetails struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

type PaymentQuote struct {
	Deposit    float64 `json:"deposit"`
	ServiceFee float64 `json:"service_fee"`
	PreOrder   float64 `json:"pre_order"`
	Total      float64 `json:"total"`
}

type PaymentReceipt struct {
	Reference  string    `json:"reference"`
	CardMasked string    `json:"card"`
	Amount     float64   `json:"amount"`
	PaidAt     time.Time `json:"paid_at"`
}

// Reservation is what a completed wizard leaves behind.
type Reservation struct {
	ID       string             `json:"id"`
	Kind     BookingKind        `json:"kind"`
	Date     string             `json:"date"`
	Time     string             `json:"time"`
	Guests   int                `json:"guests"`
	TableID  int                `json:"table_id"`
	ChefID   *uint              `json:"chef_id,omitempty"`
	PreOrder []CartItem         `json:"pre_order"`
	Payment  PaymentReceipt     `json:"payment"`
	Status   string             `json:"status"`
	Contact  ReservationContact `json:"contact"`
}

type ReservationContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingWizard is the transient state of one open booking modal.
type BookingWizard struct {
	ID          string         `json:"id"`
	Kind        BookingKind    `json:"kind"`
	Step        int            `json:"step"`
	Details     BookingDetails `json:"details"`
	ChefID      *uint          `json:"chef_id,omitempty"`
	PreOrder    []CartItem     `json:"pre_order"`
	Quote       *PaymentQuote  `json:"quote,omitempty"`
	Processing  bool           `json:"processing"`
	Reservation *Reservation   `json:"reservation,omitempty"`
	OpenedAt    time.Time      `json:"opened_at"`
	// LastActivity moves on every accepted step, Back and payment result.
	LastActivity time.Time `json:"last_activity"`
}

func (w *BookingWizard) Clone() BookingWizard {
	cp := *w
	cp.PreOrder = append([]CartItem(nil), w.PreOrder...)
	if w.ChefID != nil {
		id := *w.ChefID
		cp.ChefID = &id
	}
	if w.Quote != nil {
		q := *w.Quote
		cp.Quote = &q
	}
	if w.Reservation != nil {
		r := *w.Reservation
		r.PreOrder = append([]CartItem(nil), w.Reservation.PreOrder...)
		cp.Reservation = &r
	}
	return cp
}
