package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/neo-dine/utils"
)

// WebSocketUpgradeOnly rejects plain HTTP requests to the live channel.
// It runs after SessionMiddleware, so the visitor is already known.
func WebSocketUpgradeOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			utils.RespondError(c, http.StatusUpgradeRequired, errors.New("websocket upgrade required"))
			c.Abort()
			return
		}
		if utils.VisitorID(c) == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
