package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/neo-dine/services"
	"github.com/yeremiapane/neo-dine/utils"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

// GetCart
func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart", cc.Cart.Get(utils.VisitorID(c)))
}

// AddItem -> quantity +1, atau baris baru
func (cc *CartController) AddItem(c *gin.Context) {
	var body struct {
		DishID uint `json:"dish_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart, err := cc.Cart.Add(utils.VisitorID(c), body.DishID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added", cart)
}

// UpdateQuantity -> body {"delta": 1} atau {"delta": -1}
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	id, ok := parseUintParam(c, "dish_id")
	if !ok {
		return
	}

	var body struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart, err := cc.Cart.UpdateQuantity(utils.VisitorID(c), id, body.Delta)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart updated", cart)
}

// ClearCart
func (cc *CartController) ClearCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", cc.Cart.Clear(utils.VisitorID(c)))
}
