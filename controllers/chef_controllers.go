package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/neo-dine/services"
	"github.com/yeremiapane/neo-dine/utils"
)

type ChefController struct {
	Catalog *services.CatalogService
}

func NewChefController(catalog *services.CatalogService) *ChefController {
	return &ChefController{Catalog: catalog}
}

// GetAllChefs -> ?limit=2 dipakai halaman home
func (cc *ChefController) GetAllChefs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("limit must be a positive number"))
			return
		}
		limit = n
	}

	chefs, err := cc.Catalog.ListChefs(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of chefs", chefs)
}

// GetChefByID
func (cc *ChefController) GetChefByID(c *gin.Context) {
	id, ok := parseUintParam(c, "chef_id")
	if !ok {
		return
	}

	chef, err := cc.Catalog.GetChef(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Chef profile", chef)
}
