package llm

import (
	"github.com/LeoJunghao/cold-news-dashboard/pkg/news"
	"github.com/LeoJunghao/cold-news-dashboard/pkg/stats"
)

// Request carries the dashboard bundles the report is written from.
type Request struct {
	News  map[string][]news.Item
	Stats stats.Stats
}

// SummaryClient produces the free-text market analysis report.
type SummaryClient interface {
	Summarize(req Request) (string, error)
	ModelName() string
}
