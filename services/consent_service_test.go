package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/neo-dine/models"
)

func TestConsentService_DefaultShowsBanner(t *testing.T) {
	svc := NewConsentService(setupTestDB(t))

	state, err := svc.Load("v1")
	require.NoError(t, err)
	assert.False(t, state.Found)
	assert.True(t, state.ShowBanner)
	assert.Equal(t, models.CookiePreferences{Necessary: true}, state.Preferences)
}

func TestConsentService_SurvivesReload(t *testing.T) {
	db := setupTestDB(t)

	saved, err := NewConsentService(db).Save("v1", models.CookiePreferences{Necessary: false, Analytics: true})
	require.NoError(t, err)
	assert.True(t, saved.Necessary, "necessary cookies cannot be refused")

	// instance baru di database yang sama = reload halaman
	state, err := NewConsentService(db).Load("v1")
	require.NoError(t, err)
	assert.True(t, state.Found)
	assert.False(t, state.ShowBanner)
	assert.Equal(t, models.CookiePreferences{Necessary: true, Analytics: true}, state.Preferences)

	other, err := NewConsentService(db).Load("v2")
	require.NoError(t, err)
	assert.False(t, other.Found)
}

func TestConsentService_AcceptThenReject(t *testing.T) {
	svc := NewConsentService(setupTestDB(t))

	all, err := svc.AcceptAll("v1")
	require.NoError(t, err)
	assert.Equal(t, models.CookiePreferences{Necessary: true, Analytics: true, Marketing: true}, all)

	none, err := svc.RejectOptional("v1")
	require.NoError(t, err)
	assert.Equal(t, models.CookiePreferences{Necessary: true}, none)

	state, err := svc.Load("v1")
	require.NoError(t, err)
	assert.Equal(t, none, state.Preferences)

	var count int64
	svc.db.Model(&models.KVEntry{}).Where("visitor_id = ?", "v1").Count(&count)
	assert.Equal(t, int64(1), count, "saving again overwrites the same key")
}

func TestConsentService_CorruptValue(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.KVEntry{VisitorID: "v1", Key: models.ConsentStorageKey, Value: "{not json"}).Error)

	state, err := NewConsentService(db).Load("v1")
	require.NoError(t, err)
	assert.False(t, state.Found)
	assert.True(t, state.ShowBanner)
}
