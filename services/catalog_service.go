package services

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/neo-dine/models"
	"gorm.io/gorm"
)

// menuSections mirrors the three blocks of the menu page.
var menuSections = []struct {
	Title      string
	Categories []string
}{
	{"Sunrise Protocol (Breakfast)", []string{models.CategoryBreakfast}},
	{"Sweet & Sips", []string{models.CategoryDessert, models.CategoryDrinks}},
	{"Chef's Signature", []string{models.CategoryMain, models.CategoryStarter}},
}

// CatalogService membaca reference data (dish, kategori, chef)
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListDishes returns every dish, or only those in category when it is set.
func (s *CatalogService) ListDishes(category string) ([]models.Dish, error) {
	var dishes []models.Dish
	q := s.db.Model(&models.Dish{})
	if category != "" {
		q = q.Where("category_id = ?", category)
	}
	if err := q.Order("id ASC").Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return dishes, nil
}

func (s *CatalogService) GetDish(id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := s.db.First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, fmt.Errorf("get dish %d: %w", id, err)
	}
	return &dish, nil
}

func (s *CatalogService) Categories() ([]models.MenuCategory, error) {
	var cats []models.MenuCategory
	if err := s.db.Order("position ASC").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// Sections -> menu dikelompokkan seperti di halaman Menu
func (s *CatalogService) Sections() ([]models.MenuSection, error) {
	sections := make([]models.MenuSection, 0, len(menuSections))
	for _, def := range menuSections {
		var dishes []models.Dish
		if err := s.db.Where("category_id IN ?", def.Categories).Order("id ASC").Find(&dishes).Error; err != nil {
			return nil, fmt.Errorf("section %q: %w", def.Title, err)
		}
		sections = append(sections, models.MenuSection{
			Title:      def.Title,
			Categories: def.Categories,
			Dishes:     dishes,
		})
	}
	return sections, nil
}

// ListChefs returns the chef grid; limit <= 0 means all.
func (s *CatalogService) ListChefs(limit int) ([]models.Chef, error) {
	var chefs []models.Chef
	q := s.db.Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&chefs).Error; err != nil {
		return nil, fmt.Errorf("list chefs: %w", err)
	}
	return chefs, nil
}

func (s *CatalogService) GetChef(id uint) (*models.Chef, error) {
	var chef models.Chef
	if err := s.db.First(&chef, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChefNotFound
		}
		return nil, fmt.Errorf("get chef %d: %w", id, err)
	}
	return &chef, nil
}
