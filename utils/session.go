package utils

import "github.com/gin-gonic/gin"

// VisitorKey is the gin context key holding the current visitor id.
const VisitorKey = "visitor_id"

// VisitorID returns the visitor id set by the session middleware.
func VisitorID(c *gin.Context) string {
	return c.GetString(VisitorKey)
}
