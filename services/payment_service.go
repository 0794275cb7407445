package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/neo-dine/metrics"
	"github.com/yeremiapane/neo-dine/models"
	"github.com/yeremiapane/neo-dine/utils"
)

// Biaya reservasi
var (
	BookingDeposit    = decimal.NewFromInt(50)
	BookingServiceFee = decimal.NewFromInt(5)
)

type PaymentInput struct {
	CardName   string `json:"card_name" validate:"required"`
	CardNumber string `json:"card_number" validate:"required,cardnumber"`
	Expiry     string `json:"expiry" validate:"required,expiry"`
	CVC        string `json:"cvc" validate:"required,cvc"`
}

func (in *PaymentInput) normalize() {
	in.CardName = strings.TrimSpace(in.CardName)
	in.CardNumber = strings.TrimSpace(in.CardNumber)
	in.Expiry = strings.TrimSpace(in.Expiry)
	in.CVC = strings.TrimSpace(in.CVC)
	if digits := CardDigits(in.CardNumber); cardDigitsPattern.MatchString(digits) {
		in.CardNumber = GroupCardNumber(digits)
	}
}

// PaymentService is the fake card processor behind the booking wizard. Any
// well-formed card is authorized after a fixed delay.
type PaymentService struct {
	Delay   time.Duration
	monitor *PaymentMonitor
	now     func() time.Time
}

func NewPaymentService(delay time.Duration, monitor *PaymentMonitor) *PaymentService {
	if monitor == nil {
		monitor = NewPaymentMonitor()
	}
	return &PaymentService{
		Delay:   delay,
		monitor: monitor,
		now:     time.Now,
	}
}

// Quote computes deposit + service fee + pre-order subtotal.
func (s *PaymentService) Quote(preOrder []models.CartItem) models.PaymentQuote {
	pre := Subtotal(preOrder)
	total := BookingDeposit.Add(BookingServiceFee).Add(pre)
	return models.PaymentQuote{
		Deposit:    utils.ToFloat(BookingDeposit),
		ServiceFee: utils.ToFloat(BookingServiceFee),
		PreOrder:   utils.ToFloat(pre),
		Total:      utils.ToFloat(total),
	}
}

// Validate checks the card form; the input is normalized in place.
func (s *PaymentService) Validate(in *PaymentInput) error {
	in.normalize()
	err := validateStruct(*in)

	extra := FieldErrors{}
	if expiryPattern.MatchString(in.Expiry) && cardExpired(in.Expiry, s.now()) {
		extra["expiry"] = "Card has expired"
	}
	return mergeFieldErrors(err, extra)
}

// Authorize waits out the processing delay and returns a receipt. It only
// fails when ctx is cancelled first.
func (s *PaymentService) Authorize(ctx context.Context, in PaymentInput, amount float64) (models.PaymentReceipt, error) {
	start := time.Now()

	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			s.monitor.Record(false, time.Since(start))
			metrics.RecordOperation("payment", false)
			return models.PaymentReceipt{}, fmt.Errorf("payment interrupted: %w", ctx.Err())
		case <-timer.C:
		}
	}

	receipt := models.PaymentReceipt{
		Reference:  "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10]),
		CardMasked: MaskCardNumber(in.CardNumber),
		Amount:     amount,
		PaidAt:     s.now(),
	}
	s.monitor.Record(true, time.Since(start))
	metrics.RecordOperation("payment", true)
	utils.InfoLogger.Printf("payment %s authorized: %s on %s", receipt.Reference, utils.FormatCurrency(amount), receipt.CardMasked)
	return receipt, nil
}

func (s *PaymentService) Monitor() *PaymentMonitor {
	return s.monitor
}

// GroupCardNumber formats digits as "1234 5678 9012 3456".
func GroupCardNumber(digits string) string {
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaskCardNumber keeps only the last four digits.
func MaskCardNumber(number string) string {
	digits := CardDigits(number)
	if len(digits) < 4 {
		return "****"
	}
	return "**** **** **** " + digits[len(digits)-4:]
}

// cardExpired: kartu berlaku sampai akhir bulan expiry
func cardExpired(expiry string, now time.Time) bool {
	parts := strings.SplitN(expiry, "/", 2)
	if len(parts) != 2 {
		return true
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return true
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return true
	}
	year += 2000

	return year*12+month < now.Year()*12+int(now.Month())
}
