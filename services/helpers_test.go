package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/neo-dine/database"
	"github.com/yeremiapane/neo-dine/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB -> sqlite in-memory per test, sudah dimigrasi + seed katalog
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Setup(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

type pushed struct {
	VisitorID string
	Event     string
	Data      interface{}
}

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []models.Toast
	pushes []pushed
}

func (n *recordingNotifier) Toast(visitorID, message string, kind models.ToastType) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, models.Toast{Message: message, Type: kind})
}

func (n *recordingNotifier) Push(visitorID, event string, data interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pushes = append(n.pushes, pushed{VisitorID: visitorID, Event: event, Data: data})
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.toasts))
	for _, t := range n.toasts {
		out = append(out, t.Message)
	}
	return out
}

func (n *recordingNotifier) Events(event string) []pushed {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []pushed
	for _, p := range n.pushes {
		if p.Event == event {
			out = append(out, p)
		}
	}
	return out
}

// stubDishes is a fixed two-dish menu for tests that need no database.
type stubDishes map[uint]models.Dish

func (s stubDishes) GetDish(id uint) (*models.Dish, error) {
	d, ok := s[id]
	if !ok {
		return nil, ErrDishNotFound
	}
	return &d, nil
}

func testMenu() stubDishes {
	return stubDishes{
		1: {ID: 1, Name: "Quantum Burger", Price: 24.99, CategoryID: models.CategoryMain},
		2: {ID: 2, Name: "Neon Ramen", Price: 18.50, CategoryID: models.CategoryMain},
		3: {ID: 3, Name: "Glitch Cola", Price: 0.10, CategoryID: models.CategoryDrinks},
	}
}
