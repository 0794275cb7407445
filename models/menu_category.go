package models

type MenuCategory struct {
	ID       string `gorm:"primaryKey;type:varchar(20)" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Gradient string `gorm:"type:varchar(100)" json:"gradient"`
	Position int    `gorm:"not null;default:0" json:"-"`
}

const (
	CategoryBreakfast = "breakfast"
	CategoryStarter   = "starter"
	CategoryMain      = "main"
	CategoryDessert   = "dessert"
	CategoryDrinks    = "drinks"
)
