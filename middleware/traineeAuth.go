package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TraineeIdentityMiddleware injects the trainee identity supplied by the
// external identity collaborator. Identity resolution itself happens outside
// this system; the booking core only needs the resolved id on the request.
func TraineeIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traineeID := strings.TrimSpace(c.GetHeader("X-Trainee-ID"))
		if traineeID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing X-Trainee-ID header"})
			return
		}
		c.Set("traineeID", traineeID)
		c.Next()
	}
}
