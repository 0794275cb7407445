package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/neo-dine/controllers"
	"github.com/yeremiapane/neo-dine/models"
	"github.com/yeremiapane/neo-dine/services"
)

func TestConsentEndpoints(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter()
	consentCtrl := controllers.NewConsentController(services.NewConsentService(db))
	r.GET("/consent", consentCtrl.GetConsent)
	r.PUT("/consent", consentCtrl.SavePreferences)
	r.POST("/consent/accept-all", consentCtrl.AcceptAll)
	r.POST("/consent/reject-optional", consentCtrl.RejectOptional)

	w, env := doJSON(t, r, "GET", "/consent", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var state services.ConsentState
	decode(t, env.Data, &state)
	assert.True(t, state.ShowBanner)
	assert.False(t, state.Found)

	w, env = doJSON(t, r, "PUT", "/consent", map[string]bool{"necessary": false, "analytics": false, "marketing": true})
	require.Equal(t, http.StatusOK, w.Code)
	var prefs models.CookiePreferences
	decode(t, env.Data, &prefs)
	assert.Equal(t, models.CookiePreferences{Necessary: true, Marketing: true}, prefs)

	// router baru di atas database yang sama = reload
	r2 := newRouter()
	reloaded := controllers.NewConsentController(services.NewConsentService(db))
	r2.GET("/consent", reloaded.GetConsent)
	w, env = doJSON(t, r2, "GET", "/consent", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, env.Data, &state)
	assert.True(t, state.Found)
	assert.False(t, state.ShowBanner)
	assert.Equal(t, prefs, state.Preferences)

	w, env = doJSON(t, r, "POST", "/consent/accept-all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, env.Data, &prefs)
	assert.Equal(t, models.CookiePreferences{Necessary: true, Analytics: true, Marketing: true}, prefs)

	w, env = doJSON(t, r, "POST", "/consent/reject-optional", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, env.Data, &prefs)
	assert.Equal(t, models.CookiePreferences{Necessary: true}, prefs)
}
