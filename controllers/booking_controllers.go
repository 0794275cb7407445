package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/neo-dine/models"
	"github.com/yeremiapane/neo-dine/services"
	"github.com/yeremiapane/neo-dine/utils"
)

type BookingController struct {
	Bookings *services.BookingService
	Payments *services.PaymentService
}

func NewBookingController(bookings *services.BookingService, payments *services.PaymentService) *BookingController {
	return &BookingController{Bookings: bookings, Payments: payments}
}

// OpenWizard -> {"kind": "table"|"chef", "chef_id": 101}
func (bc *BookingController) OpenWizard(c *gin.Context) {
	var body struct {
		Kind   models.BookingKind `json:"kind" binding:"required"`
		ChefID *uint              `json:"chef_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	wizard, err := bc.Bookings.Open(utils.VisitorID(c), body.Kind, body.ChefID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Booking started", wizard)
}

// GetWizard
func (bc *BookingController) GetWizard(c *gin.Context) {
	wizard, err := bc.Bookings.Get(utils.VisitorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking", wizard)
}

// SubmitDetails -> step 1
func (bc *BookingController) SubmitDetails(c *gin.Context) {
	var input services.DetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	wizard, err := bc.Bookings.SubmitDetails(utils.VisitorID(c), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Details saved", wizard)
}

// SelectChef -> step 2, chef_id boleh kosong untuk booking meja
func (bc *BookingController) SelectChef(c *gin.Context) {
	var body struct {
		ChefID *uint `json:"chef_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	wizard, err := bc.Bookings.SelectChef(utils.VisitorID(c), body.ChefID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Chef selected", wizard)
}

// SubmitPreOrder -> step 3, isi cart saat ini jadi pre-order
func (bc *BookingController) SubmitPreOrder(c *gin.Context) {
	wizard, err := bc.Bookings.SubmitPreOrder(utils.VisitorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pre-order attached", wizard)
}

// SubmitPayment -> step 4. Answers 202; the confirmation follows on the
// live channel and on GET /booking.
func (bc *BookingController) SubmitPayment(c *gin.Context) {
	var input services.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	wizard, err := bc.Bookings.SubmitPayment(utils.VisitorID(c), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusAccepted, "Processing payment", wizard)
}

// Back
func (bc *BookingController) Back(c *gin.Context) {
	wizard, err := bc.Bookings.Back(utils.VisitorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Moved back", wizard)
}

// CloseWizard -> semua state wizard dibuang
func (bc *BookingController) CloseWizard(c *gin.Context) {
	bc.Bookings.Close(utils.VisitorID(c))
	utils.RespondJSON(c, http.StatusOK, "Booking closed", nil)
}

// GetPaymentStats -> metrik simulasi pembayaran
func (bc *BookingController) GetPaymentStats(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Payment metrics", bc.Payments.Monitor().GetMetrics())
}
