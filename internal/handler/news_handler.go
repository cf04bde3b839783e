package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeoJunghao/cold-news-dashboard/internal/cache"
	"github.com/LeoJunghao/cold-news-dashboard/pkg/news"
	"github.com/LeoJunghao/cold-news-dashboard/pkg/report"
)

// NewsProvider fetches the full categorized bundle.
type NewsProvider interface {
	FetchAll() map[string][]news.Item
}

const (
	newsCacheKey = "news:bundle"
	newsCacheTTL = 5 * time.Minute
)

type NewsHandler struct {
	provider NewsProvider
	cache    *cache.TTLCache
}

func NewNewsHandler(provider NewsProvider, cache *cache.TTLCache) *NewsHandler {
	return &NewsHandler{provider: provider, cache: cache}
}

// bundle returns the cached bundle, refetching when the revalidation
// window lapsed or the caller forces a refresh.
func (h *NewsHandler) bundle(force bool) map[string][]news.Item {
	if !force {
		if v, ok := h.cache.Get(newsCacheKey); ok {
			return v.(map[string][]news.Item)
		}
	}

	b := h.provider.FetchAll()
	h.cache.Set(newsCacheKey, b, newsCacheTTL)
	return b
}

func forceRefresh(c *gin.Context) bool {
	return c.Query("force") == "true"
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	b := h.bundle(forceRefresh(c))

	c.JSON(http.StatusOK, NewsResponse{
		US:        toNewsItemResponses(b["us"]),
		Intl:      toNewsItemResponses(b["intl"]),
		Geo:       toNewsItemResponses(b["geo"]),
		TW:        toNewsItemResponses(b["tw"]),
		Crypto:    toNewsItemResponses(b["crypto"]),
		UpdatedAt: time.Now().Format(time.RFC3339),
	})
}

func (h *NewsHandler) GetCategoryNews(c *gin.Context) {
	key := c.Param("category")
	if _, ok := news.CategoryByKey(key); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown category"})
		return
	}

	b := h.bundle(forceRefresh(c))

	c.JSON(http.StatusOK, CategoryNewsResponse{
		Category:  key,
		Items:     toNewsItemResponses(b[key]),
		UpdatedAt: time.Now().Format(time.RFC3339),
	})
}

// GetExport renders the current bundle as an email/clipboard digest.
func (h *NewsHandler) GetExport(c *gin.Context) {
	b := h.bundle(forceRefresh(c))
	d := report.Format(b, time.Now())

	c.JSON(http.StatusOK, ExportResponse{Subject: d.Subject, Body: d.Body})
}
