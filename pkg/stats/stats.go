package stats

import (
	"net/http"
	"sync"
	"time"
)

// Quote is a price plus its percent change against the previous close.
type Quote struct {
	Price         float64
	ChangePercent float64
}

// Stats is a snapshot bundle of independently sourced market indicators.
// Each field degrades to its own fallback when its provider is unavailable;
// there is no cross-field consistency guarantee.
type Stats struct {
	VIX           float64
	StockFnG      float64
	CryptoFnG     float64
	GoldSentiment float64

	US10Y       float64
	US2Y        float64
	DollarIndex float64
	BrentCrude  float64
	GoldPrice   float64
	Copper      float64
	BDI         float64
	CRB         float64

	SOX     Quote
	SP500   Quote
	DJI     Quote
	TWII    Quote
	Bitcoin Quote
}

// Fallback constants, substituted per indicator when a fetch fails.
const (
	fallbackVIX         = 20.0
	fallbackUS10Y       = 4.0
	fallbackUS2Y        = 4.0
	fallbackDollarIndex = 100.0
	fallbackBrentCrude  = 80.0
	fallbackGoldPrice   = 2000.0
	fallbackCopper      = 3.8
	fallbackBDI         = 1500.0
	fallbackCRB         = 270.0
	fallbackFearGreed   = 50.0
)

// Client fetches market indicators from Yahoo Finance, CNBC, alternative.me
// and CNN. Every fetch resolves to a value; failures land on the indicator's
// fallback constant and are never surfaced to the caller.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch assembles the full indicator snapshot. The VIX resolves first
// because the stock fear-greed fallback formula reads it; the remaining
// independent fetches fan out concurrently, then the two derived
// sentiments compute concurrently.
func (c *Client) Fetch() Stats {
	s := Stats{}

	// Phase 1a: the dependency.
	s.VIX = c.yahooPrice("^VIX", fallbackVIX)

	// Phase 1b: independent fetches.
	var wg sync.WaitGroup
	run := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}

	run(func() { s.CryptoFnG = c.cryptoFearGreed() })
	run(func() { s.US10Y = c.yahooPrice("^TNX", fallbackUS10Y) })
	run(func() { s.US2Y = c.cnbcPrice("US2Y", fallbackUS2Y) })
	run(func() { s.DollarIndex = c.yahooPrice("DX-Y.NYB", fallbackDollarIndex) })
	run(func() { s.BrentCrude = c.yahooPrice("BZ=F", fallbackBrentCrude) })
	run(func() { s.GoldPrice = c.yahooPrice("GC=F", fallbackGoldPrice) })
	run(func() { s.Copper = c.yahooPrice("HG=F", fallbackCopper) })
	run(func() { s.BDI = c.cnbcPrice(".BADI", fallbackBDI) })
	run(func() { s.CRB = c.yahooPrice("^TRCCRB", fallbackCRB) })
	run(func() { s.SOX = c.yahooQuote("^SOX") })
	run(func() { s.SP500 = c.yahooQuote("^GSPC") })
	run(func() { s.DJI = c.yahooQuote("^DJI") })
	run(func() { s.TWII = c.yahooQuote("^TWII") })
	run(func() { s.Bitcoin = c.yahooQuote("BTC-USD") })
	wg.Wait()

	// Phase 2: derived sentiments, reading already-resolved values.
	run(func() { s.StockFnG = c.stockFearGreed(s.VIX) })
	run(func() { s.GoldSentiment = c.goldSentiment() })
	wg.Wait()

	return s
}

func clamp(low, high, v float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
