package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/neo-dine/services"
	"github.com/yeremiapane/neo-dine/utils"
)

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GetAllDishes -> ?category= untuk filter per kategori
func (mc *MenuController) GetAllDishes(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))

	dishes, err := mc.Catalog.ListDishes(category)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of dishes", dishes)
}

// GetDishByID
func (mc *MenuController) GetDishByID(c *gin.Context) {
	id, ok := parseUintParam(c, "dish_id")
	if !ok {
		return
	}

	dish, err := mc.Catalog.GetDish(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish detail", dish)
}
