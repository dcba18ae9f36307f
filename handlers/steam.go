package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"gamehub/cache"
	"gamehub/external"

	"github.com/gin-gonic/gin"
)

// SteamPlayers returns the live player count for a Steam app, briefly cached.
func (h *Handler) SteamPlayers(c *gin.Context) {
	appID, err := strconv.Atoi(c.Param("appid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid app id"})
		return
	}

	cacheKey := fmt.Sprintf("%s%d", cache.SteamCachePrefix, appID)
	var cached external.PlayerCount
	if err := h.Cache.Get(c.Request.Context(), cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	count, err := h.Steam.CurrentPlayers(c.Request.Context(), appID)
	if err != nil {
		h.Log.WithError(err).Warn("Steam player lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Steam lookup failed"})
		return
	}

	if err := h.Cache.Set(c.Request.Context(), cacheKey, count, cache.SteamTTL); err != nil {
		h.Log.WithError(err).Debug("Steam cache write skipped")
	}
	c.JSON(http.StatusOK, count)
}

// SteamNews returns an app's latest news entries, cached.
func (h *Handler) SteamNews(c *gin.Context) {
	appID, err := strconv.Atoi(c.Param("appid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid app id"})
		return
	}

	cacheKey := fmt.Sprintf("%s%d", cache.NewsCachePrefix, appID)
	var cached []external.NewsItem
	if err := h.Cache.Get(c.Request.Context(), cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, gin.H{"news": cached})
		return
	}

	news, err := h.Steam.News(c.Request.Context(), appID, 5)
	if err != nil {
		h.Log.WithError(err).Warn("Steam news lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Steam lookup failed"})
		return
	}

	if err := h.Cache.Set(c.Request.Context(), cacheKey, news, cache.NewsTTL); err != nil {
		h.Log.WithError(err).Debug("News cache write skipped")
	}
	c.JSON(http.StatusOK, gin.H{"news": news})
}
