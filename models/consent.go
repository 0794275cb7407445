package models

import "time"

// ConsentStorageKey is the fixed key the cookie preference is stored under.
const ConsentStorageKey = "neo-dine-cookie-consent"

type CookiePreferences struct {
	Necessary bool `json:"necessary"`
	Analytics bool `json:"analytics"`
	Marketing bool `json:"marketing"`
}

// DefaultCookiePreferences -> yang ditampilkan sebelum visitor memilih
func DefaultCookiePreferences() CookiePreferences {
	return CookiePreferences{Necessary: true}
}

// KVEntry is the visitor-scoped key-value row backing local preferences.
type KVEntry struct {
	VisitorID string    `gorm:"primaryKey;type:varchar(64)"`
	Key       string    `gorm:"primaryKey;type:varchar(100)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (KVEntry) TableName() string {
	return "visitor_kv"
}
