package news

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed/rss"
)

// Item is one normalized feed entry, ready for the dashboard.
type Item struct {
	ID       string
	Title    string
	Summary  string
	Source   string
	Link     string
	Time     string
	Category string
	PubDate  int64 // epoch milliseconds, ordering only
}

const feedURL = "https://news.google.com/rss/search"

// Window is the trailing lookback applied to every category: entries
// published at or before now-Window are dropped.
const Window = 24 * time.Hour

// Client fetches and parses Google News RSS search feeds
// (Taiwan edition, Traditional Chinese results).
type Client struct {
	httpClient *http.Client
	parser     *rss.Parser
	now        func() time.Time
	loc        *time.Location
}

func NewClient() *Client {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		loc = time.Local
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		parser:     &rss.Parser{},
		now:        time.Now,
		loc:        loc,
	}
}

// FetchCategory runs the full pipeline for one category: fetch, parse,
// normalize, filter to the trailing window, sort newest first, cap.
// Transport and parse failures surface as an error; the caller treats
// both as an empty category.
func (c *Client) FetchCategory(cat Category) ([]Item, error) {
	reqURL := fmt.Sprintf("%s?q=%s&hl=zh-TW&gl=TW&ceid=TW:zh-Hant", feedURL, url.QueryEscape(cat.Query))

	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("news request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news fetch %s: %w", cat.Key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news fetch %s: status %d", cat.Key, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("news read %s: %w", cat.Key, err)
	}

	feed, err := c.parser.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("news parse %s: %w", cat.Key, err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, raw := range feed.Items {
		items = append(items, normalizeItem(raw, cat.Name, c.loc))
	}

	items = filterWindow(items, c.now(), Window)
	return rankAndCap(items, cat.Limit), nil
}
