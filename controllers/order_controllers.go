package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/neo-dine/services"
	"github.com/yeremiapane/neo-dine/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// Checkout -> cart jadi order, status awal preparing
func (oc *OrderController) Checkout(c *gin.Context) {
	var input services.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Checkout(c.Request.Context(), utils.VisitorID(c), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order placed successfully!", order)
}

// GetActiveOrder -> tracking view order terakhir
func (oc *OrderController) GetActiveOrder(c *gin.Context) {
	tracking, err := oc.Orders.Active(utils.VisitorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active order", tracking)
}

// GetAllOrders
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of orders", oc.Orders.List(utils.VisitorID(c)))
}

// GetOrderByID accepts the id with or without its leading '#'.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("order_id"))
	if !strings.HasPrefix(id, "#") {
		id = "#" + id
	}

	order, err := oc.Orders.Get(utils.VisitorID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}
