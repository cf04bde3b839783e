package llm

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/LeoJunghao/cold-news-dashboard/pkg/news"
	"github.com/LeoJunghao/cold-news-dashboard/pkg/stats"
)

func TestBuildPrompt(t *testing.T) {
	req := Request{
		News: map[string][]news.Item{
			"us": {
				{Title: "Fed Raises Rates", Source: "Reuters"},
				{Title: "Treasuries Rally", Source: "WSJ"},
				{Title: "Dollar Gains", Source: "Bloomberg"},
				{Title: "Fourth Item Dropped", Source: "CNBC"},
			},
			"geo": {
				{Title: "紅海緊張升溫", Source: "中央社"},
			},
		},
		Stats: stats.Stats{
			StockFnG:    62,
			VIX:         17.53,
			DollarIndex: 104.2,
			US10Y:       4.25,
			Bitcoin:     stats.Quote{Price: 97123.4},
		},
	}

	prompt := buildPrompt(req)

	assert.Equal(t, true, strings.Contains(prompt, "市場總結分析報告"))
	assert.Equal(t, true, strings.Contains(prompt, "Fear & Greed): 62"))
	assert.Equal(t, true, strings.Contains(prompt, "VIX 波動率: 17.53"))
	assert.Equal(t, true, strings.Contains(prompt, "美元指數: 104.20"))
	assert.Equal(t, true, strings.Contains(prompt, "10年期公債殖利率: 4.25%"))
	assert.Equal(t, true, strings.Contains(prompt, "比特幣價格: $97123"))
	assert.Equal(t, true, strings.Contains(prompt, "- Fed Raises Rates (來源: Reuters)"))
	assert.Equal(t, true, strings.Contains(prompt, "- 紅海緊張升溫 (來源: 中央社)"))
	// Each section is capped before rendering.
	assert.Equal(t, false, strings.Contains(prompt, "Fourth Item Dropped"))
	// Empty sections still render their header.
	assert.Equal(t, true, strings.Contains(prompt, "[台灣財經要聞]:"))
}
