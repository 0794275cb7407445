package models

import "time"

type Dish struct {
	ID          uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string    `gorm:"type:varchar(255);not null" json:"image"`
	CategoryID  string    `gorm:"type:varchar(20);not null;index" json:"category"`
	Rating      float64   `gorm:"type:decimal(3,1)" json:"rating"`
	Calories    int       `json:"calories"`
	IsSpicy     bool      `gorm:"default:false" json:"is_spicy,omitempty"`
	IsVegan     bool      `gorm:"default:false" json:"is_vegan,omitempty"`
	VideoURL    *string   `gorm:"type:varchar(255)" json:"video_url,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// MenuSection groups dishes the way the menu page shows them
type MenuSection struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Dishes     []Dish   `json:"dishes"`
}
