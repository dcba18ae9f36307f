package handlers

import (
	"net/http"
	"time"

	"gamehub/concurrent"

	"github.com/gin-gonic/gin"
)

// CommunityStats returns platform-wide totals for the community page.
func (h *Handler) CommunityStats(c *gin.Context) {
	start := time.Now()
	stats := concurrent.CalculatePlatformStats(h.DB)

	c.JSON(http.StatusOK, gin.H{
		"statistics":       stats,
		"calculation_time": time.Since(start).String(),
	})
}
