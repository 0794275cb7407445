package middlewares

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/neo-dine/utils"
)

// PaymentSecurityHeaders adds security headers for payment endpoints
func PaymentSecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		c.Next()
	}
}

// PaymentRateLimiter allows a visitor a few card submissions per minute.
func PaymentRateLimiter() gin.HandlerFunc {
	rl := NewRateLimiter(0.1, 5) // satu token tiap 10 detik
	return func(c *gin.Context) {
		if !rl.Allow(utils.VisitorID(c)) {
			utils.RespondError(c, http.StatusTooManyRequests, errors.New("please wait before making another payment request"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// LogPaymentRequest logs payment request details
func LogPaymentRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		utils.VisitorLog(utils.VisitorID(c)).Printf(
			"Payment Request - Method: %s, Path: %s, Status: %d, Duration: %v",
			method, path, status, duration,
		)
	}
}
