package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yeremiapane/neo-dine/config"
	"github.com/yeremiapane/neo-dine/controllers"
	"github.com/yeremiapane/neo-dine/middlewares"
	"github.com/yeremiapane/neo-dine/services"
)

func SetupRouter(cfg *config.Config, svc *services.Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	rateLimiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.PrometheusMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(rateLimiter.RateLimit())

	// Inisialisasi controller
	menuCtrl := controllers.NewMenuController(svc.Catalog)
	categoryCtrl := controllers.NewMenuCategoryController(svc.Catalog)
	chefCtrl := controllers.NewChefController(svc.Catalog)
	cartCtrl := controllers.NewCartController(svc.Cart)
	orderCtrl := controllers.NewOrderController(svc.Orders)
	bookingCtrl := controllers.NewBookingController(svc.Bookings, svc.Payments)
	consentCtrl := controllers.NewConsentController(svc.Consent)
	notificationCtrl := controllers.NewNotificationController(svc.Notifications)
	liveCtrl := controllers.NewLiveController(svc.Hub, svc.Cart)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Katalog & konten statis tidak butuh session
	r.GET("/menu/dishes", menuCtrl.GetAllDishes)
	r.GET("/menu/dishes/:dish_id", menuCtrl.GetDishByID)
	r.GET("/menu/categories", categoryCtrl.GetAllCategories)
	r.GET("/menu/sections", categoryCtrl.GetMenuSections)

	r.GET("/chefs", chefCtrl.GetAllChefs)
	r.GET("/chefs/:chef_id", chefCtrl.GetChefByID)

	r.GET("/legal/:page", controllers.GetLegalPage)
	r.GET("/social", controllers.GetSocialLinks)
	r.GET("/nav", controllers.GetNavLinks)

	// ----------------------------------------------------------------
	//                      VISITOR ROUTES (session cookie)
	// ----------------------------------------------------------------
	visitor := r.Group("/")
	visitor.Use(middlewares.SessionMiddleware([]byte(cfg.SessionSecret), cfg.SessionTTL))

	// CART
	visitor.GET("/cart", cartCtrl.GetCart)
	visitor.POST("/cart/items", cartCtrl.AddItem)
	visitor.PATCH("/cart/items/:dish_id", cartCtrl.UpdateQuantity)
	visitor.DELETE("/cart", cartCtrl.ClearCart)

	// ORDERS
	visitor.POST("/orders", orderCtrl.Checkout)
	visitor.GET("/orders", orderCtrl.GetAllOrders)
	visitor.GET("/orders/active", orderCtrl.GetActiveOrder)
	visitor.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// BOOKING WIZARD
	visitor.POST("/booking", bookingCtrl.OpenWizard)
	visitor.GET("/booking", bookingCtrl.GetWizard)
	visitor.DELETE("/booking", bookingCtrl.CloseWizard)
	visitor.POST("/booking/details", bookingCtrl.SubmitDetails)
	visitor.POST("/booking/chef", bookingCtrl.SelectChef)
	visitor.POST("/booking/pre-order", bookingCtrl.SubmitPreOrder)
	visitor.POST("/booking/back", bookingCtrl.Back)

	paymentGroup := visitor.Group("/booking")
	paymentGroup.Use(middlewares.PaymentSecurityHeaders())
	paymentGroup.Use(middlewares.PaymentRateLimiter())
	paymentGroup.Use(middlewares.LogPaymentRequest())
	{
		paymentGroup.POST("/payment", bookingCtrl.SubmitPayment)
	}
	r.GET("/payments/stats", bookingCtrl.GetPaymentStats)

	// COOKIE CONSENT
	visitor.GET("/consent", consentCtrl.GetConsent)
	visitor.PUT("/consent", consentCtrl.SavePreferences)
	visitor.POST("/consent/accept-all", consentCtrl.AcceptAll)
	visitor.POST("/consent/reject-optional", consentCtrl.RejectOptional)

	// NOTIFICATIONS
	visitor.GET("/notifications", notificationCtrl.GetAllNotifications)
	visitor.DELETE("/notifications/:notif_id", notificationCtrl.DeleteNotification)

	// LIVE CHANNEL
	visitor.GET("/ws", middlewares.WebSocketUpgradeOnly(), liveCtrl.LiveHandler)

	return r
}
