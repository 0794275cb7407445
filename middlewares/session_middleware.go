package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeremiapane/neo-dine/utils"
)

// SessionCookie carries the signed visitor id.
const SessionCookie = "neo_dine_session"

// SessionMiddleware resolves the visitor from the session cookie. A missing,
// tampered or expired cookie starts a new anonymous visitor.
func SessionMiddleware(secret []byte, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(SessionCookie); err == nil && raw != "" {
			if claims, err := utils.ParseSessionToken(secret, raw); err == nil {
				c.Set(utils.VisitorKey, claims.VisitorID)
				c.Next()
				return
			}
		}

		visitorID := uuid.NewString()
		token, err := utils.GenerateSessionToken(secret, visitorID, ttl)
		if err != nil {
			utils.ErrorLogger.Printf("sign session: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, err)
			c.Abort()
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, token, int(ttl.Seconds()), "/", "", c.Request.TLS != nil, true)
		c.Set(utils.VisitorKey, visitorID)
		utils.VisitorLog(visitorID).Info("new visitor session")

		c.Next()
	}
}
