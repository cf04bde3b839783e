package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/LeoJunghao/cold-news-dashboard/internal/cache"
	"github.com/LeoJunghao/cold-news-dashboard/pkg/news"
)

type fakeNewsProvider struct {
	bundle map[string][]news.Item
	calls  int
}

func (f *fakeNewsProvider) FetchAll() map[string][]news.Item {
	f.calls++
	return f.bundle
}

func newNewsRouter(provider NewsProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNewsHandler(provider, cache.NewTTLCache())
	r.GET("/api/news", h.GetNews)
	r.GET("/api/news/:category", h.GetCategoryNews)
	r.GET("/api/export", h.GetExport)
	return r
}

func testBundle() map[string][]news.Item {
	return map[string][]news.Item{
		"us": {
			{ID: "1", Title: "Fed Raises Rates", Source: "Reuters", Category: "美國財經焦點", PubDate: 1000},
		},
		"intl":   {},
		"geo":    {},
		"tw":     {},
		"crypto": {},
	}
}

func TestGetNews(t *testing.T) {
	provider := &fakeNewsProvider{bundle: testBundle()}
	r := newNewsRouter(provider)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/news", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res NewsResponse
	err := json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(res.US))
	assert.Equal(t, "Fed Raises Rates", res.US[0].Title)
	assert.Equal(t, 0, len(res.Geo))
	assert.NotEqual(t, "", res.UpdatedAt)
}

func TestGetNewsUsesCache(t *testing.T) {
	provider := &fakeNewsProvider{bundle: testBundle()}
	r := newNewsRouter(provider)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/news", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 1, provider.calls)
}

func TestGetNewsForceBypassesCache(t *testing.T) {
	provider := &fakeNewsProvider{bundle: testBundle()}
	r := newNewsRouter(provider)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/news", nil)
	r.ServeHTTP(w, req)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/news?force=true", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 2, provider.calls)
}

func TestGetCategoryNews(t *testing.T) {
	provider := &fakeNewsProvider{bundle: testBundle()}
	r := newNewsRouter(provider)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/news/us", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res CategoryNewsResponse
	err := json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, nil, err)
	assert.Equal(t, "us", res.Category)
	assert.Equal(t, 1, len(res.Items))
}

func TestGetCategoryNewsUnknownKey(t *testing.T) {
	provider := &fakeNewsProvider{bundle: testBundle()}
	r := newNewsRouter(provider)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/news/sports", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, provider.calls)
}

func TestGetExport(t *testing.T) {
	provider := &fakeNewsProvider{bundle: testBundle()}
	r := newNewsRouter(provider)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/export", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ExportResponse
	err := json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, len(res.Subject) > 0)
	assert.Equal(t, true, len(res.Body) > 0)
}
