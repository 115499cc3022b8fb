package middlewares

import (
	"strings"

	"crowdreport-be/models"

	"github.com/gin-gonic/gin"
)

// UserContext resolves the submitter identity for the request. There is no
// authentication; the client may pass an X-User-ID header, otherwise the
// anonymous placeholder is used.
func UserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if userID == "" {
			userID = models.AnonymousUserID
		}
		c.Set("user_id", userID)
		c.Next()
	}
}
