package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/neo-dine/utils"
)

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		// route publik tidak punya session
		entry := logrus.NewEntry(utils.InfoLogger)
		if visitorID := utils.VisitorID(c); visitorID != "" {
			entry = utils.VisitorLog(visitorID)
		}
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}
		entry.Printf("%s | %3d | %13v | %s", c.Request.Method, status, latency, path)
	}
}
