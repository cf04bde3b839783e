package stats

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
)

const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice *float64 `json:"regularMarketPrice"`
				ChartPreviousClose *float64 `json:"chartPreviousClose"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

func (c *Client) yahooChart(symbol, dataRange string) (*yahooChartResponse, error) {
	reqURL := fmt.Sprintf("%s/%s?interval=1d&range=%s", yahooChartURL, url.PathEscape(symbol), dataRange)

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("yahoo fetch %s: status %d", symbol, resp.StatusCode)
	}

	var raw yahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("yahoo decode %s: %w", symbol, err)
	}
	return &raw, nil
}

// yahooPrice fetches the regular market price for symbol, resolving to
// fallback on any transport, decode or missing-field failure.
func (c *Client) yahooPrice(symbol string, fallback float64) float64 {
	raw, err := c.yahooChart(symbol, "1d")
	if err != nil {
		slog.Error("yahoo price fetch failed", "symbol", symbol, "error", err)
		return fallback
	}

	if len(raw.Chart.Result) == 0 || raw.Chart.Result[0].Meta.RegularMarketPrice == nil {
		slog.Error("yahoo price missing in payload", "symbol", symbol)
		return fallback
	}
	return *raw.Chart.Result[0].Meta.RegularMarketPrice
}

// yahooQuote fetches price plus percent change for symbol. A missing or
// zero previous close degrades only the change to zero; a failed fetch
// degrades the whole quote to {0, 0}.
func (c *Client) yahooQuote(symbol string) Quote {
	raw, err := c.yahooChart(symbol, "1d")
	if err != nil {
		slog.Error("yahoo quote fetch failed", "symbol", symbol, "error", err)
		return Quote{}
	}

	if len(raw.Chart.Result) == 0 || raw.Chart.Result[0].Meta.RegularMarketPrice == nil {
		slog.Error("yahoo quote missing in payload", "symbol", symbol)
		return Quote{}
	}

	meta := raw.Chart.Result[0].Meta
	price := *meta.RegularMarketPrice

	change := 0.0
	if meta.ChartPreviousClose != nil && *meta.ChartPreviousClose != 0 {
		prev := *meta.ChartPreviousClose
		change = (price - prev) / prev * 100
	}
	return Quote{Price: price, ChangePercent: change}
}
