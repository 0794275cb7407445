package Controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/neo-dine/controllers"
	"github.com/yeremiapane/neo-dine/models"
)

func setupBookingRouter(t *testing.T) http.Handler {
	svc := setupServices(t, setupTestDB(t))
	r := newRouter()
	cartCtrl := controllers.NewCartController(svc.Cart)
	bookingCtrl := controllers.NewBookingController(svc.Bookings, svc.Payments)
	r.GET("/cart", cartCtrl.GetCart)
	r.POST("/cart/items", cartCtrl.AddItem)
	r.POST("/booking", bookingCtrl.OpenWizard)
	r.GET("/booking", bookingCtrl.GetWizard)
	r.DELETE("/booking", bookingCtrl.CloseWizard)
	r.POST("/booking/details", bookingCtrl.SubmitDetails)
	r.POST("/booking/chef", bookingCtrl.SelectChef)
	r.POST("/booking/pre-order", bookingCtrl.SubmitPreOrder)
	r.POST("/booking/payment", bookingCtrl.SubmitPayment)
	r.POST("/booking/back", bookingCtrl.Back)
	r.GET("/payments/stats", bookingCtrl.GetPaymentStats)
	return r
}

func bookingDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestBookingWizardFlow(t *testing.T) {
	r := setupBookingRouter(t)

	w, _ := doJSON(t, r, "GET", "/booking", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	doJSON(t, r, "POST", "/cart/items", map[string]interface{}{"dish_id": 21})

	w, env := doJSON(t, r, "POST", "/booking", map[string]interface{}{"kind": "chef", "chef_id": 103})
	require.Equal(t, http.StatusCreated, w.Code)
	var wizard models.BookingWizard
	decode(t, env.Data, &wizard)
	assert.Equal(t, models.StepDetails, wizard.Step)

	w, _ = doJSON(t, r, "POST", "/booking/chef", map[string]interface{}{})
	assert.Equal(t, http.StatusConflict, w.Code)

	details := map[string]interface{}{
		"date":   bookingDate(),
		"time":   "21:00",
		"guests": 2,
		"name":   "Grace Hopper",
		"email":  "grace@example.com",
		"phone":  "555 987 6543",
	}
	w, env = doJSON(t, r, "POST", "/booking/details", map[string]interface{}{"date": "2001-01-01", "time": "21:00", "guests": 2, "name": "Grace Hopper", "email": "grace@example.com", "phone": "555 987 6543"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var fields map[string]string
	decode(t, env.Data, &fields)
	assert.Equal(t, "Date cannot be in the past", fields["date"])

	w, _ = doJSON(t, r, "POST", "/booking/details", details)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, "POST", "/booking/chef", map[string]interface{}{})
	require.Equal(t, http.StatusOK, w.Code)
	w, env = doJSON(t, r, "POST", "/booking/pre-order", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, env.Data, &wizard)
	require.NotNil(t, wizard.Quote)
	assert.Equal(t, 71.5, wizard.Quote.Total)

	card := map[string]interface{}{
		"card_name":   "Grace Hopper",
		"card_number": "4111 1111 1111 1111",
		"expiry":      "12/99",
		"cvc":         "321",
	}
	w, env = doJSON(t, r, "POST", "/booking/payment", card)
	require.Equal(t, http.StatusAccepted, w.Code)
	decode(t, env.Data, &wizard)
	assert.True(t, wizard.Processing)

	assert.Eventually(t, func() bool {
		w, env := doJSON(t, r, "GET", "/booking", nil)
		if w.Code != http.StatusOK {
			return false
		}
		var got models.BookingWizard
		decode(t, env.Data, &got)
		return got.Step == models.StepConfirmation && got.Reservation != nil
	}, 2*time.Second, 10*time.Millisecond)

	w, env = doJSON(t, r, "GET", "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cart models.Cart
	decode(t, env.Data, &cart)
	assert.Empty(t, cart.Items)

	w, env = doJSON(t, r, "GET", "/payments/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats map[string]int64
	decode(t, env.Data, &stats)
	assert.Equal(t, int64(1), stats["successful_payments"])

	w, _ = doJSON(t, r, "DELETE", "/booking", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, "GET", "/booking", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingOpenValidation(t *testing.T) {
	r := setupBookingRouter(t)

	w, _ := doJSON(t, r, "POST", "/booking", map[string]interface{}{"kind": "banquet"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, "POST", "/booking", map[string]interface{}{"kind": "chef", "chef_id": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, "POST", "/booking/back", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
