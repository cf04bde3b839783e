package news

import (
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func itemAt(id string, ts time.Time) Item {
	return Item{ID: id, PubDate: ts.UnixMilli()}
}

func TestFilterWindowBoundary(t *testing.T) {
	now := time.Date(2026, 2, 26, 12, 0, 0, 0, time.UTC)

	inside := itemAt("inside", now.Add(-23*time.Hour))
	exact := itemAt("exact", now.Add(-24*time.Hour))
	stale := itemAt("stale", now.Add(-25*time.Hour))
	undated := Item{ID: "undated"}

	kept := filterWindow([]Item{inside, exact, stale, undated}, now, 24*time.Hour)

	assert.Equal(t, 1, len(kept))
	assert.Equal(t, "inside", kept[0].ID)
}

func TestRankAndCapOrdersNewestFirst(t *testing.T) {
	now := time.Date(2026, 2, 26, 12, 0, 0, 0, time.UTC)

	items := []Item{
		itemAt("old", now.Add(-3*time.Hour)),
		itemAt("new", now.Add(-1*time.Hour)),
		itemAt("mid", now.Add(-2*time.Hour)),
	}

	ranked := rankAndCap(items, 10)

	assert.Equal(t, "new", ranked[0].ID)
	assert.Equal(t, "mid", ranked[1].ID)
	assert.Equal(t, "old", ranked[2].ID)
}

func TestRankAndCapStableOnTies(t *testing.T) {
	ts := time.Date(2026, 2, 26, 10, 0, 0, 0, time.UTC)

	items := []Item{
		itemAt("first", ts),
		itemAt("second", ts),
		itemAt("third", ts),
	}

	ranked := rankAndCap(items, 10)

	assert.Equal(t, "first", ranked[0].ID)
	assert.Equal(t, "second", ranked[1].ID)
	assert.Equal(t, "third", ranked[2].ID)
}

func TestRankAndCapTruncates(t *testing.T) {
	now := time.Date(2026, 2, 26, 12, 0, 0, 0, time.UTC)

	var items []Item
	for i := 0; i < 20; i++ {
		items = append(items, itemAt("item", now.Add(-time.Duration(i)*time.Minute)))
	}

	ranked := rankAndCap(items, 5)

	assert.Equal(t, 5, len(ranked))
}

func TestPipelineIdempotent(t *testing.T) {
	now := time.Date(2026, 2, 26, 12, 0, 0, 0, time.UTC)

	build := func() []Item {
		items := []Item{
			itemAt("a", now.Add(-2*time.Hour)),
			itemAt("b", now.Add(-30*time.Hour)),
			itemAt("c", now.Add(-1*time.Hour)),
			itemAt("d", now.Add(-2*time.Hour)),
		}
		return rankAndCap(filterWindow(items, now, 24*time.Hour), 10)
	}

	first := build()
	second := build()

	assert.Equal(t, true, reflect.DeepEqual(first, second))
	assert.Equal(t, 3, len(first))
	assert.Equal(t, "c", first[0].ID)
}
