package news

import (
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed/rss"
)

// Google News appends the publisher to headlines as "Headline - Publisher".
// The left side is greedy, so the publisher is whatever follows the last " - ".
var titleSourcePattern = regexp.MustCompile(`^(.*) - (.*)$`)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// splitTitleSource strips a trailing " - Publisher" suffix from a headline.
// When no suffix is present the title comes back unchanged with ok=false.
func splitTitleSource(title string) (string, string, bool) {
	m := titleSourcePattern.FindStringSubmatch(title)
	if m == nil {
		return title, "", false
	}
	return m[1], m[2], true
}

// cleanSummary strips markup tags and decodes the two entities Google News
// feeds actually emit. No other entity decoding is applied.
func cleanSummary(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	return s
}

// normalizeItem converts one raw RSS entry into a dashboard item.
// An entry without a parseable publish date gets a zero PubDate, which the
// window filter then drops.
func normalizeItem(raw *rss.Item, categoryName string, loc *time.Location) Item {
	title := raw.Title
	source := ""
	if raw.Source != nil {
		source = raw.Source.Title
	}

	if head, pub, ok := splitTitleSource(title); ok {
		title = head
		if source == "" {
			source = pub
		}
	}
	if source == "" {
		source = "Unknown"
	}

	item := Item{
		Title:    title,
		Summary:  cleanSummary(raw.Description),
		Source:   source,
		Link:     raw.Link,
		Category: categoryName,
	}

	item.ID = raw.Link
	if raw.GUID != nil && raw.GUID.Value != "" {
		item.ID = raw.GUID.Value
	}

	if raw.PubDateParsed != nil {
		item.PubDate = raw.PubDateParsed.UnixMilli()
		item.Time = raw.PubDateParsed.In(loc).Format("15:04")
	}

	return item
}
