package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/neo-dine/services"
	"github.com/yeremiapane/neo-dine/utils"
)

type MenuCategoryController struct {
	Catalog *services.CatalogService
}

func NewMenuCategoryController(catalog *services.CatalogService) *MenuCategoryController {
	return &MenuCategoryController{Catalog: catalog}
}

// GetAllCategories
func (mcc *MenuCategoryController) GetAllCategories(c *gin.Context) {
	categories, err := mcc.Catalog.Categories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All menu categories", categories)
}

// GetMenuSections -> tiga blok halaman menu beserta dish-nya
func (mcc *MenuCategoryController) GetMenuSections(c *gin.Context) {
	sections, err := mcc.Catalog.Sections()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu sections", sections)
}
