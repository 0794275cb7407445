package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yeremiapane/neo-dine/metrics"
	"github.com/yeremiapane/neo-dine/models"
	"github.com/yeremiapane/neo-dine/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConsentState is what the cookie banner needs on page load.
type ConsentState struct {
	Found       bool                     `json:"found"`
	Preferences models.CookiePreferences `json:"preferences"`
	ShowBanner  bool                     `json:"show_banner"`
}

// ConsentService stores the cookie preference per visitor in the
// visitor_kv table, under models.ConsentStorageKey.
type ConsentService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewConsentService(db *gorm.DB) *ConsentService {
	return &ConsentService{db: db, now: time.Now}
}

// Load returns the saved preference, or the defaults with the banner shown
// when nothing usable is stored.
func (s *ConsentService) Load(visitorID string) (ConsentState, error) {
	var entry models.KVEntry
	err := s.db.Where(&models.KVEntry{VisitorID: visitorID, Key: models.ConsentStorageKey}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ConsentState{Preferences: models.DefaultCookiePreferences(), ShowBanner: true}, nil
	}
	if err != nil {
		return ConsentState{}, fmt.Errorf("load consent: %w", err)
	}

	var prefs models.CookiePreferences
	if err := json.Unmarshal([]byte(entry.Value), &prefs); err != nil {
		// nilai rusak dianggap belum pernah memilih
		utils.VisitorLog(visitorID).Warnf("unreadable consent value %q: %v", entry.Value, err)
		return ConsentState{Preferences: models.DefaultCookiePreferences(), ShowBanner: true}, nil
	}
	prefs.Necessary = true
	return ConsentState{Found: true, Preferences: prefs}, nil
}

// Save writes prefs with Necessary forced on and returns what was stored.
func (s *ConsentService) Save(visitorID string, prefs models.CookiePreferences) (models.CookiePreferences, error) {
	prefs.Necessary = true

	raw, err := json.Marshal(prefs)
	if err != nil {
		return models.CookiePreferences{}, fmt.Errorf("encode consent: %w", err)
	}

	entry := models.KVEntry{
		VisitorID: visitorID,
		Key:       models.ConsentStorageKey,
		Value:     string(raw),
		UpdatedAt: s.now(),
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "visitor_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		metrics.RecordOperation("consent", false)
		return models.CookiePreferences{}, fmt.Errorf("save consent: %w", err)
	}
	metrics.RecordOperation("consent", true)

	log := utils.VisitorLog(visitorID)
	if prefs.Analytics {
		log.Info("Analytics scripts loaded")
	}
	if prefs.Marketing {
		log.Info("Marketing scripts loaded")
	}
	return prefs, nil
}

func (s *ConsentService) AcceptAll(visitorID string) (models.CookiePreferences, error) {
	return s.Save(visitorID, models.CookiePreferences{Necessary: true, Analytics: true, Marketing: true})
}

func (s *ConsentService) RejectOptional(visitorID string) (models.CookiePreferences, error) {
	return s.Save(visitorID, models.DefaultCookiePreferences())
}
