package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeoJunghao/cold-news-dashboard/internal/cache"
	"github.com/LeoJunghao/cold-news-dashboard/pkg/stats"
)

// StatsProvider fetches the market indicator snapshot.
type StatsProvider interface {
	Fetch() stats.Stats
}

const (
	statsCacheKey = "stats:snapshot"
	statsCacheTTL = 5 * time.Minute
)

type StatsHandler struct {
	provider StatsProvider
	cache    *cache.TTLCache
}

func NewStatsHandler(provider StatsProvider, cache *cache.TTLCache) *StatsHandler {
	return &StatsHandler{provider: provider, cache: cache}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	var s stats.Stats

	if v, ok := h.cache.Get(statsCacheKey); ok && !forceRefresh(c) {
		s = v.(stats.Stats)
	} else {
		s = h.provider.Fetch()
		h.cache.Set(statsCacheKey, s, statsCacheTTL)
	}

	c.JSON(http.StatusOK, toStatsResponse(s))
}

func (h *StatsHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
