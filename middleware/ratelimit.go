package middleware

import (
	"fmt"
	"net/http"
	"time"

	"gamehub/cache"
	"gamehub/models"

	"github.com/gin-gonic/gin"
)

// RateLimit bounds requests per authenticated user using the redis counter.
// Must run after the auth middleware; unauthenticated routes are not limited.
func RateLimit(store *cache.Cache, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		userValue, exists := c.Get("user")
		if !exists {
			c.Next()
			return
		}
		user, ok := userValue.(models.User)
		if !ok {
			c.Next()
			return
		}

		allowed, remaining, err := store.CheckRateLimit(c.Request.Context(), user.ID, maxRequests, window)
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", maxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		if !allowed {
			msg := "Too many requests"
			if err != nil {
				msg = err.Error()
			}
			c.JSON(http.StatusTooManyRequests, gin.H{"error": msg})
			c.Abort()
			return
		}

		c.Next()
	}
}
