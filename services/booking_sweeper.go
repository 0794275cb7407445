package services

import (
	"time"

	"github.com/yeremiapane/neo-dine/utils"
)

// WizardSweeper periodically closes booking wizards that saw no activity for
// longer than MaxAge, so abandoned modals do not pile up in memory.
type WizardSweeper struct {
	Bookings *BookingService
	StopChan chan struct{}
	Interval time.Duration
	MaxAge   time.Duration
	now      func() time.Time
}

func NewWizardSweeper(bookings *BookingService, maxAge time.Duration) *WizardSweeper {
	return &WizardSweeper{
		Bookings: bookings,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Minute,
		MaxAge:   maxAge,
		now:      time.Now,
	}
}

func (ws *WizardSweeper) Start() {
	go func() {
		ticker := time.NewTicker(ws.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ws.sweep()
			case <-ws.StopChan:
				return
			}
		}
	}()
}

func (ws *WizardSweeper) Stop() {
	close(ws.StopChan)
}

func (ws *WizardSweeper) sweep() int {
	n := ws.Bookings.Sweep(ws.now().Add(-ws.MaxAge))
	if n > 0 {
		utils.InfoLogger.Printf("closed %d idle booking wizards", n)
	}
	return n
}
