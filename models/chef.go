package models

import "time"

type ChefStats struct {
	Creativity int `json:"creativity"`
	Precision  int `json:"precision"`
	Speed      int `json:"speed"`
	Tech       int `json:"tech"`
}

type Chef struct {
	ID           uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Specialty    string    `gorm:"type:varchar(255)" json:"specialty"`
	Image        string    `gorm:"type:varchar(255)" json:"image"`
	Availability string    `gorm:"type:varchar(50)" json:"availability"`
	Rating       float64   `gorm:"type:decimal(3,1)" json:"rating"`
	Bio          string    `gorm:"type:text" json:"bio"`
	Education    string    `gorm:"type:varchar(255)" json:"education"`
	Experience   []string  `gorm:"serializer:json;type:text" json:"experience"`
	Philosophy   string    `gorm:"type:text" json:"philosophy"`
	Stats        ChefStats `gorm:"embedded;embeddedPrefix:stat_" json:"stats"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
