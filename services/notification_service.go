package services

import (
	"context"
	"sync"
	"time"

	"github.com/yeremiapane/neo-dine/live"
	"github.com/yeremiapane/neo-dine/models"
	"github.com/yeremiapane/neo-dine/utils"
)

// Notifier is how the other services talk back to a visitor.
type Notifier interface {
	Toast(visitorID, message string, kind models.ToastType)
	Push(visitorID, event string, data interface{})
}

// NotificationService keeps short-lived toasts per visitor and fans every
// event out to the visitor's websocket connections.
type NotificationService struct {
	hub *live.Hub
	ttl time.Duration
	now func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	nextID int64
	toasts map[string][]models.Toast
	timers map[int64]*time.Timer
}

func NewNotificationService(hub *live.Hub, ttl time.Duration) *NotificationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &NotificationService{
		hub:    hub,
		ttl:    ttl,
		now:    time.Now,
		ctx:    ctx,
		cancel: cancel,
		toasts: make(map[string][]models.Toast),
		timers: make(map[int64]*time.Timer),
	}
}

func (s *NotificationService) Toast(visitorID, message string, kind models.ToastType) {
	s.mu.Lock()
	s.nextID++
	toast := models.Toast{
		ID:        s.nextID,
		Message:   message,
		Type:      kind,
		CreatedAt: s.now(),
	}
	s.toasts[visitorID] = append(s.toasts[visitorID], toast)
	if s.ttl > 0 && s.ctx.Err() == nil {
		s.timers[toast.ID] = time.AfterFunc(s.ttl, func() {
			s.expire(visitorID, toast.ID)
		})
	}
	s.mu.Unlock()

	utils.VisitorLog(visitorID).Infof("toast[%s] %s", kind, message)
	s.Push(visitorID, live.EventToast, toast)
}

func (s *NotificationService) expire(visitorID string, id int64) {
	if s.ctx.Err() != nil {
		return
	}
	if s.Dismiss(visitorID, id) {
		s.Push(visitorID, live.EventToastExpired, id)
	}
}

func (s *NotificationService) Push(visitorID, event string, data interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.Send(visitorID, live.Message{Event: event, Data: data})
}

// List returns the toasts still on screen for the visitor.
func (s *NotificationService) List(visitorID string) []models.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Toast{}, s.toasts[visitorID]...)
}

// Dismiss removes one toast; false when it was already gone.
func (s *NotificationService) Dismiss(visitorID string, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.toasts[visitorID]
	for i, t := range list {
		if t.ID == id {
			if timer, ok := s.timers[id]; ok {
				timer.Stop()
				delete(s.timers, id)
			}
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(s.toasts, visitorID)
			} else {
				s.toasts[visitorID] = list
			}
			return true
		}
	}
	return false
}

// Stop cancels every pending expiry. Toasts already queued stay listed.
func (s *NotificationService) Stop() {
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// pendingExpiries is the number of toasts still waiting to expire.
func (s *NotificationService) pendingExpiries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
