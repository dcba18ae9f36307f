package handlers

import (
	"net/http"
	"net/url"

	"gamehub/cache"
	"gamehub/external"

	"github.com/gin-gonic/gin"
)

// SearchGames proxies catalog search to GiantBomb, with redis caching.
func (h *Handler) SearchGames(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	cacheKey := cache.SearchCachePrefix + url.QueryEscape(query)
	var cached []external.GameResult
	if err := h.Cache.Get(c.Request.Context(), cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, gin.H{"results": cached})
		return
	}

	results, err := h.GiantBomb.Search(c.Request.Context(), query)
	if err != nil {
		h.Log.WithError(err).Error("Catalog search failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog search failed"})
		return
	}

	if err := h.Cache.Set(c.Request.Context(), cacheKey, results, cache.SearchTTL); err != nil {
		h.Log.WithError(err).Debug("Search cache write skipped")
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetGame proxies one game's catalog detail, with redis caching.
func (h *Handler) GetGame(c *gin.Context) {
	gameID := c.Param("id")

	cacheKey := cache.GameCachePrefix + gameID
	var cached external.GameResult
	if err := h.Cache.Get(c.Request.Context(), cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	game, err := h.GiantBomb.Game(c.Request.Context(), gameID)
	if err != nil {
		h.Log.WithError(err).Error("Catalog lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog lookup failed"})
		return
	}

	if err := h.Cache.Set(c.Request.Context(), cacheKey, game, cache.GameTTL); err != nil {
		h.Log.WithError(err).Debug("Game cache write skipped")
	}
	c.JSON(http.StatusOK, game)
}
