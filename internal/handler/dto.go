package handler

import (
	"github.com/LeoJunghao/cold-news-dashboard/pkg/news"
	"github.com/LeoJunghao/cold-news-dashboard/pkg/stats"
)

type NewsItemResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Source   string `json:"source"`
	Link     string `json:"link"`
	Time     string `json:"time"`
	Category string `json:"category"`
	PubDate  int64  `json:"pubDate"`
}

type NewsResponse struct {
	US        []NewsItemResponse `json:"us"`
	Intl      []NewsItemResponse `json:"intl"`
	Geo       []NewsItemResponse `json:"geo"`
	TW        []NewsItemResponse `json:"tw"`
	Crypto    []NewsItemResponse `json:"crypto"`
	UpdatedAt string             `json:"updated_at"`
}

type CategoryNewsResponse struct {
	Category  string             `json:"category"`
	Items     []NewsItemResponse `json:"items"`
	UpdatedAt string             `json:"updated_at"`
}

type QuoteResponse struct {
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"changePercent"`
}

type StatsResponse struct {
	VIX           float64 `json:"vix"`
	StockFnG      float64 `json:"stockFnG"`
	CryptoFnG     float64 `json:"cryptoFnG"`
	GoldSentiment float64 `json:"goldSentiment"`

	US10Y       float64 `json:"us10Y"`
	US2Y        float64 `json:"us2Y"`
	DollarIndex float64 `json:"dollarIndex"`
	BrentCrude  float64 `json:"brentCrude"`
	GoldPrice   float64 `json:"goldPrice"`
	Copper      float64 `json:"copper"`
	BDI         float64 `json:"bdi"`
	CRB         float64 `json:"crb"`

	SOX     QuoteResponse `json:"sox"`
	SP500   QuoteResponse `json:"sp500"`
	DJI     QuoteResponse `json:"dji"`
	TWII    QuoteResponse `json:"twii"`
	Bitcoin QuoteResponse `json:"bitcoin"`
}

type SummaryRequest struct {
	News  map[string][]NewsItemResponse `json:"news"`
	Stats StatsResponse                 `json:"stats"`
}

type ExportResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func toNewsItemResponses(items []news.Item) []NewsItemResponse {
	res := make([]NewsItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, NewsItemResponse{
			ID:       item.ID,
			Title:    item.Title,
			Summary:  item.Summary,
			Source:   item.Source,
			Link:     item.Link,
			Time:     item.Time,
			Category: item.Category,
			PubDate:  item.PubDate,
		})
	}
	return res
}

func fromNewsItemResponses(res []NewsItemResponse) []news.Item {
	items := make([]news.Item, 0, len(res))
	for _, r := range res {
		items = append(items, news.Item{
			ID:       r.ID,
			Title:    r.Title,
			Summary:  r.Summary,
			Source:   r.Source,
			Link:     r.Link,
			Time:     r.Time,
			Category: r.Category,
			PubDate:  r.PubDate,
		})
	}
	return items
}

func toQuoteResponse(q stats.Quote) QuoteResponse {
	return QuoteResponse{Price: q.Price, ChangePercent: q.ChangePercent}
}

func toStatsResponse(s stats.Stats) StatsResponse {
	return StatsResponse{
		VIX:           s.VIX,
		StockFnG:      s.StockFnG,
		CryptoFnG:     s.CryptoFnG,
		GoldSentiment: s.GoldSentiment,
		US10Y:         s.US10Y,
		US2Y:          s.US2Y,
		DollarIndex:   s.DollarIndex,
		BrentCrude:    s.BrentCrude,
		GoldPrice:     s.GoldPrice,
		Copper:        s.Copper,
		BDI:           s.BDI,
		CRB:           s.CRB,
		SOX:           toQuoteResponse(s.SOX),
		SP500:         toQuoteResponse(s.SP500),
		DJI:           toQuoteResponse(s.DJI),
		TWII:          toQuoteResponse(s.TWII),
		Bitcoin:       toQuoteResponse(s.Bitcoin),
	}
}

func fromStatsResponse(r StatsResponse) stats.Stats {
	return stats.Stats{
		VIX:           r.VIX,
		StockFnG:      r.StockFnG,
		CryptoFnG:     r.CryptoFnG,
		GoldSentiment: r.GoldSentiment,
		US10Y:         r.US10Y,
		US2Y:          r.US2Y,
		DollarIndex:   r.DollarIndex,
		BrentCrude:    r.BrentCrude,
		GoldPrice:     r.GoldPrice,
		Copper:        r.Copper,
		BDI:           r.BDI,
		CRB:           r.CRB,
		SOX:           stats.Quote{Price: r.SOX.Price, ChangePercent: r.SOX.ChangePercent},
		SP500:         stats.Quote{Price: r.SP500.Price, ChangePercent: r.SP500.ChangePercent},
		DJI:           stats.Quote{Price: r.DJI.Price, ChangePercent: r.DJI.ChangePercent},
		TWII:          stats.Quote{Price: r.TWII.Price, ChangePercent: r.TWII.ChangePercent},
		Bitcoin:       stats.Quote{Price: r.Bitcoin.Price, ChangePercent: r.Bitcoin.ChangePercent},
	}
}
