package news

import (
	"log/slog"
	"sync"
)

// Fetcher runs the pipeline for a single category.
type Fetcher interface {
	FetchCategory(cat Category) ([]Item, error)
}

// Aggregator fans out one pipeline run per configured category.
type Aggregator struct {
	fetcher    Fetcher
	categories []Category
}

func NewAggregator(fetcher Fetcher, categories []Category) *Aggregator {
	return &Aggregator{fetcher: fetcher, categories: categories}
}

// FetchAll fetches every category concurrently and returns the results
// keyed by category key. A failed category degrades to an empty list and
// never affects its siblings.
func (a *Aggregator) FetchAll() map[string][]Item {
	results := make(map[string][]Item, len(a.categories))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, cat := range a.categories {
		wg.Add(1)
		go func(cat Category) {
			defer wg.Done()

			items, err := a.fetcher.FetchCategory(cat)
			if err != nil {
				slog.Error("error fetching category", "category", cat.Key, "error", err)
				items = []Item{}
			}

			mu.Lock()
			results[cat.Key] = items
			mu.Unlock()
		}(cat)
	}

	wg.Wait()
	return results
}
