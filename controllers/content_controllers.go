package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/neo-dine/content"
	"github.com/yeremiapane/neo-dine/utils"
)

// GetLegalPage -> privacy, terms, cookies
func GetLegalPage(c *gin.Context) {
	page, ok := content.Legal(c.Param("page"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("page not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, page.Title, page)
}

func GetSocialLinks(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Social links", content.SocialLinks)
}

func GetNavLinks(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Navigation", content.NavLinks)
}
