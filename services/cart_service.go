package services

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/neo-dine/live"
	"github.com/yeremiapane/neo-dine/models"
	"github.com/yeremiapane/neo-dine/utils"
)

type DishLookup interface {
	GetDish(id uint) (*models.Dish, error)
}

// CartService menyimpan keranjang per visitor di memory
type CartService struct {
	dishes   DishLookup
	notifier Notifier
	mu       sync.Mutex
	carts    map[string][]models.CartItem
}

func NewCartService(dishes DishLookup, notifier Notifier) *CartService {
	return &CartService{
		dishes:   dishes,
		notifier: notifier,
		carts:    make(map[string][]models.CartItem),
	}
}

// Add puts one more of the dish in the cart, creating the line if needed.
func (s *CartService) Add(visitorID string, dishID uint) (models.Cart, error) {
	dish, err := s.dishes.GetDish(dishID)
	if err != nil {
		return models.Cart{}, err
	}

	s.mu.Lock()
	items := s.carts[visitorID]
	found := false
	for i := range items {
		if items[i].ID == dish.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{Dish: *dish, Quantity: 1})
	}
	s.carts[visitorID] = items
	cart := summarize(items)
	s.mu.Unlock()

	s.notifier.Toast(visitorID, fmt.Sprintf("Added %s to cart", dish.Name), models.ToastSuccess)
	s.notifier.Push(visitorID, live.EventCartUpdate, cart)
	return cart, nil
}

// UpdateQuantity shifts a line by delta. The quantity never drops below
// zero and a line that reaches zero leaves the cart.
func (s *CartService) UpdateQuantity(visitorID string, dishID uint, delta int) (models.Cart, error) {
	s.mu.Lock()
	items := s.carts[visitorID]
	idx := -1
	for i := range items {
		if items[i].ID == dishID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Cart{}, ErrCartItemAbsent
	}

	q := items[idx].Quantity + delta
	if q < 0 {
		q = 0
	}
	items[idx].Quantity = q

	kept := items[:0]
	for _, it := range items {
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	if len(kept) == 0 {
		delete(s.carts, visitorID)
	} else {
		s.carts[visitorID] = kept
	}
	cart := summarize(kept)
	s.mu.Unlock()

	s.notifier.Push(visitorID, live.EventCartUpdate, cart)
	return cart, nil
}

func (s *CartService) Clear(visitorID string) models.Cart {
	s.mu.Lock()
	delete(s.carts, visitorID)
	s.mu.Unlock()

	cart := summarize(nil)
	s.notifier.Push(visitorID, live.EventCartUpdate, cart)
	return cart
}

func (s *CartService) Get(visitorID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summarize(s.carts[visitorID])
}

// Take empties the cart and hands back what was in it.
func (s *CartService) Take(visitorID string) []models.CartItem {
	s.mu.Lock()
	items := s.carts[visitorID]
	delete(s.carts, visitorID)
	s.mu.Unlock()

	if len(items) > 0 {
		s.notifier.Push(visitorID, live.EventCartUpdate, summarize(nil))
	}
	return items
}

// Subtotal = sum(price * quantity) over lines with quantity > 0, in cents.
func Subtotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		total = total.Add(utils.LineTotal(it.Price, it.Quantity))
	}
	return utils.Money(total)
}

func summarize(items []models.CartItem) models.Cart {
	cp := make([]models.CartItem, 0, len(items))
	count := 0
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		cp = append(cp, it)
		count += it.Quantity
	}
	return models.Cart{
		Items:    cp,
		Subtotal: utils.ToFloat(Subtotal(cp)),
		Count:    count,
	}
}
