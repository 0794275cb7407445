package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrDishNotFound   = errors.New("dish not found")
	ErrChefNotFound   = errors.New("chef not found")
	ErrCartItemAbsent = errors.New("dish is not in the cart")
	ErrCartEmpty      = errors.New("cart is empty")
	ErrOrderNotFound  = errors.New("order not found")
	ErrNoActiveOrder  = errors.New("no active orders")

	ErrWizardNotOpen      = errors.New("booking wizard is not open")
	ErrWizardStep         = errors.New("booking wizard is on another step")
	ErrWizardProcessing   = errors.New("payment is still processing")
	ErrInvalidBookingKind = errors.New("booking type must be table or chef")
)

// FieldErrors maps a form field to the message shown next to it.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid input (" + strings.Join(parts, "; ") + ")"
}

// AsFieldErrors unwraps err into field messages, if it carries any.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
