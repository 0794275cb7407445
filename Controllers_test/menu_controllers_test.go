package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/neo-dine/controllers"
	"github.com/yeremiapane/neo-dine/models"
)

func TestMenuEndpoints(t *testing.T) {
	svc := setupServices(t, setupTestDB(t))
	r := newRouter()
	menuCtrl := controllers.NewMenuController(svc.Catalog)
	categoryCtrl := controllers.NewMenuCategoryController(svc.Catalog)
	r.GET("/menu/dishes", menuCtrl.GetAllDishes)
	r.GET("/menu/dishes/:dish_id", menuCtrl.GetDishByID)
	r.GET("/menu/categories", categoryCtrl.GetAllCategories)
	r.GET("/menu/sections", categoryCtrl.GetMenuSections)

	w, env := doJSON(t, r, "GET", "/menu/dishes?category=drinks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Status)
	var drinks []models.Dish
	decode(t, env.Data, &drinks)
	assert.Len(t, drinks, 6)

	w, env = doJSON(t, r, "GET", "/menu/dishes/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dish models.Dish
	decode(t, env.Data, &dish)
	assert.Equal(t, "Quantum Burger", dish.Name)
	assert.Equal(t, 24.99, dish.Price)

	w, env = doJSON(t, r, "GET", "/menu/dishes/4040", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Status)

	w, _ = doJSON(t, r, "GET", "/menu/dishes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = doJSON(t, r, "GET", "/menu/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cats []models.MenuCategory
	decode(t, env.Data, &cats)
	assert.Len(t, cats, 5)

	w, env = doJSON(t, r, "GET", "/menu/sections", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sections []models.MenuSection
	decode(t, env.Data, &sections)
	require.Len(t, sections, 3)
	assert.Equal(t, "Chef's Signature", sections[2].Title)
}

func TestChefEndpoints(t *testing.T) {
	svc := setupServices(t, setupTestDB(t))
	r := newRouter()
	chefCtrl := controllers.NewChefController(svc.Catalog)
	r.GET("/chefs", chefCtrl.GetAllChefs)
	r.GET("/chefs/:chef_id", chefCtrl.GetChefByID)

	w, env := doJSON(t, r, "GET", "/chefs?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var chefs []models.Chef
	decode(t, env.Data, &chefs)
	assert.Len(t, chefs, 2)

	w, _ = doJSON(t, r, "GET", "/chefs?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = doJSON(t, r, "GET", "/chefs/102", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var chef models.Chef
	decode(t, env.Data, &chef)
	assert.Equal(t, "Marcus Void", chef.Name)

	w, _ = doJSON(t, r, "GET", "/chefs/5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
