package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/LeoJunghao/cold-news-dashboard/internal/cache"
	"github.com/LeoJunghao/cold-news-dashboard/pkg/stats"
)

type fakeStatsProvider struct {
	stats stats.Stats
	calls int
}

func (f *fakeStatsProvider) Fetch() stats.Stats {
	f.calls++
	return f.stats
}

func newStatsRouter(provider StatsProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStatsHandler(provider, cache.NewTTLCache())
	r.GET("/api/stats", h.GetStats)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetStats(t *testing.T) {
	provider := &fakeStatsProvider{stats: stats.Stats{
		VIX:      17.5,
		StockFnG: 62,
		SP500:    stats.Quote{Price: 6100, ChangePercent: 0.4},
	}}
	r := newStatsRouter(provider)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, nil, err)
	assert.Equal(t, 17.5, res.VIX)
	assert.Equal(t, 62.0, res.StockFnG)
	assert.Equal(t, 6100.0, res.SP500.Price)
	assert.Equal(t, 0.4, res.SP500.ChangePercent)
}

func TestGetStatsUsesCache(t *testing.T) {
	provider := &fakeStatsProvider{}
	r := newStatsRouter(provider)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/stats", nil)
		r.ServeHTTP(w, req)
	}

	assert.Equal(t, 1, provider.calls)
}

func TestGetStatsForceBypassesCache(t *testing.T) {
	provider := &fakeStatsProvider{}
	r := newStatsRouter(provider)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/stats", nil)
	r.ServeHTTP(w, req)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/stats?force=true", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 2, provider.calls)
}

func TestGetHealth(t *testing.T) {
	r := newStatsRouter(&fakeStatsProvider{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
