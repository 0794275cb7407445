package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/neo-dine/models"
	"github.com/yeremiapane/neo-dine/services"
	"github.com/yeremiapane/neo-dine/utils"
)

type ConsentController struct {
	Consent *services.ConsentService
}

func NewConsentController(consent *services.ConsentService) *ConsentController {
	return &ConsentController{Consent: consent}
}

// GetConsent -> show_banner true kalau visitor belum pernah memilih
func (cc *ConsentController) GetConsent(c *gin.Context) {
	state, err := cc.Consent.Load(utils.VisitorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cookie preferences", state)
}

// SavePreferences -> pilihan custom dari modal preferences
func (cc *ConsentController) SavePreferences(c *gin.Context) {
	var prefs models.CookiePreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	saved, err := cc.Consent.Save(utils.VisitorID(c), prefs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Preferences saved", saved)
}

// AcceptAll
func (cc *ConsentController) AcceptAll(c *gin.Context) {
	saved, err := cc.Consent.AcceptAll(utils.VisitorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All cookies accepted", saved)
}

// RejectOptional
func (cc *ConsentController) RejectOptional(c *gin.Context) {
	saved, err := cc.Consent.RejectOptional(utils.VisitorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Optional cookies rejected", saved)
}
