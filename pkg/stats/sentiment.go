package stats

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
)

const (
	cryptoFnGURL = "https://api.alternative.me/fng/?limit=1"
	stockFnGURL  = "https://production.dataviz.cnn.io/index/fearandgreed/graphdata"
)

// cryptoFearGreed fetches the alternative.me crypto fear & greed index
// (0-100), falling back to neutral 50.
func (c *Client) cryptoFearGreed() float64 {
	resp, err := c.httpClient.Get(cryptoFnGURL)
	if err != nil {
		slog.Error("crypto fear-greed fetch failed", "error", err)
		return fallbackFearGreed
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		slog.Error("crypto fear-greed fetch failed", "status", resp.StatusCode)
		return fallbackFearGreed
	}

	var raw struct {
		Data []struct {
			Value string `json:"value"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		slog.Error("crypto fear-greed decode failed", "error", err)
		return fallbackFearGreed
	}

	if len(raw.Data) == 0 {
		return fallbackFearGreed
	}

	value, err := strconv.Atoi(raw.Data[0].Value)
	if err != nil {
		return fallbackFearGreed
	}
	return float64(value)
}

// stockFearGreed fetches CNN's fear & greed score. When CNN is
// unavailable the score is derived from the VIX already fetched:
// clamp(0, 100, 110 - 3*vix).
func (c *Client) stockFearGreed(vix float64) float64 {
	req, err := http.NewRequest(http.MethodGet, stockFnGURL, nil)
	if err == nil {
		req.Header.Set("User-Agent", "Mozilla/5.0")

		resp, err := c.httpClient.Do(req)
		if err == nil {
			defer resp.Body.Close()

			if resp.StatusCode == 200 {
				var raw struct {
					FearAndGreed struct {
						Score *float64 `json:"score"`
					} `json:"fear_and_greed"`
				}
				if err := json.NewDecoder(resp.Body).Decode(&raw); err == nil && raw.FearAndGreed.Score != nil {
					return math.Round(*raw.FearAndGreed.Score)
				}
			}
		}
	}

	return clamp(0, 100, 110-3*vix)
}

// goldSentiment derives a 10-90 sentiment score from the gold futures
// trend over a 5-day chart: clamp(10, 90, 50 + 10*change%). Neutral 50
// when the chart is unavailable.
func (c *Client) goldSentiment() float64 {
	raw, err := c.yahooChart("GC=F", "5d")
	if err != nil {
		slog.Error("gold sentiment fetch failed", "error", err)
		return fallbackFearGreed
	}

	if len(raw.Chart.Result) == 0 {
		return fallbackFearGreed
	}

	meta := raw.Chart.Result[0].Meta
	if meta.RegularMarketPrice == nil || *meta.RegularMarketPrice == 0 ||
		meta.ChartPreviousClose == nil || *meta.ChartPreviousClose == 0 {
		return fallbackFearGreed
	}

	change := (*meta.RegularMarketPrice - *meta.ChartPreviousClose) / *meta.ChartPreviousClose * 100
	return clamp(10, 90, 50+change*10)
}
