package news

import (
	"sort"
	"time"
)

// filterWindow keeps entries published strictly after now-window.
// Entries with a zero PubDate (unparseable dates) never pass.
func filterWindow(items []Item, now time.Time, window time.Duration) []Item {
	cutoff := now.Add(-window).UnixMilli()
	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if item.PubDate > cutoff {
			kept = append(kept, item)
		}
	}
	return kept
}

// rankAndCap orders entries newest first and truncates to limit.
// The sort is stable so equal timestamps keep their feed order and
// repeated runs over the same input produce identical output.
func rankAndCap(items []Item, limit int) []Item {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PubDate > items[j].PubDate
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
