package stats

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
)

const cnbcQuoteURL = "https://quote.cnbc.com/quote-html-webservice/quote.htm"

type cnbcResponse struct {
	QuickQuoteResult struct {
		// Either a single quote object or an array of them,
		// depending on the symbol. Decoded in two attempts below.
		QuickQuote json.RawMessage `json:"QuickQuote"`
	} `json:"QuickQuoteResult"`
}

type cnbcQuote struct {
	Last string `json:"last"`
}

// cnbcPrice fetches the last traded value for symbol from the CNBC quick
// quote service, resolving to fallback on any failure.
func (c *Client) cnbcPrice(symbol string, fallback float64) float64 {
	reqURL := fmt.Sprintf(
		"%s?partnerId=2&requestMethod=quick&exthrs=1&noform=1&fund=1&output=json&symbols=%s",
		cnbcQuoteURL, url.QueryEscape(symbol),
	)

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		slog.Error("cnbc fetch failed", "symbol", symbol, "error", err)
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		slog.Error("cnbc fetch failed", "symbol", symbol, "status", resp.StatusCode)
		return fallback
	}

	var raw cnbcResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		slog.Error("cnbc decode failed", "symbol", symbol, "error", err)
		return fallback
	}

	quote, ok := decodeQuickQuote(raw.QuickQuoteResult.QuickQuote)
	if !ok {
		slog.Error("cnbc payload missing quote", "symbol", symbol)
		return fallback
	}

	last, err := strconv.ParseFloat(quote.Last, 64)
	if err != nil {
		slog.Error("cnbc last value unparseable", "symbol", symbol, "last", quote.Last)
		return fallback
	}
	return last
}

func decodeQuickQuote(raw json.RawMessage) (cnbcQuote, bool) {
	if len(raw) == 0 {
		return cnbcQuote{}, false
	}

	var list []cnbcQuote
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return cnbcQuote{}, false
		}
		return list[0], true
	}

	var single cnbcQuote
	if err := json.Unmarshal(raw, &single); err != nil {
		return cnbcQuote{}, false
	}
	return single, true
}
