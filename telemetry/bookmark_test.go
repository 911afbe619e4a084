package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, t BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == t {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_HoneyRush(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndSec: float64(i * 30), Hives: 1, Flowers: 2, HoneyProduced: 3})
	}

	bookmarks := bd.Check(WindowStats{WindowEndSec: 150, Hives: 3, Flowers: 4, HoneyProduced: 9})
	if !hasBookmark(bookmarks, BookmarkHoneyRush) {
		t.Error("expected honey_rush bookmark")
	}
}

func TestBookmarkDetector_TheftSpree(t *testing.T) {
	bd := NewBookmarkDetector(10)

	if hasBookmark(bd.Check(WindowStats{Thefts: 2, HoneyStolen: 10}), BookmarkTheftSpree) {
		t.Error("two thefts should not be a spree")
	}
	if !hasBookmark(bd.Check(WindowStats{Thefts: 3, HoneyStolen: 12}), BookmarkTheftSpree) {
		t.Error("expected theft_spree bookmark")
	}
}

func TestBookmarkDetector_FlowerDieOff(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 3; i++ {
		bd.Check(WindowStats{WindowEndSec: float64(i * 30), Flowers: 10, Hives: 1, HoneyProduced: 3})
	}

	bookmarks := bd.Check(WindowStats{WindowEndSec: 90, Flowers: 5, FlowersWilted: 5, Hives: 1})
	if !hasBookmark(bookmarks, BookmarkFlowerDieOff) {
		t.Fatal("expected flower_die_off bookmark")
	}

	// Peak resets after triggering
	bookmarks = bd.Check(WindowStats{WindowEndSec: 120, Flowers: 4, FlowersWilted: 1, Hives: 1})
	if hasBookmark(bookmarks, BookmarkFlowerDieOff) {
		t.Error("die-off fired again against a stale peak")
	}
}

func TestBookmarkDetector_StalledGardenOnce(t *testing.T) {
	bd := NewBookmarkDetector(10)

	stalled := WindowStats{Money: 5}
	if !hasBookmark(bd.Check(stalled), BookmarkStalledGarden) {
		t.Fatal("expected stalled_garden bookmark")
	}
	if hasBookmark(bd.Check(stalled), BookmarkStalledGarden) {
		t.Error("stalled_garden fired twice for one stall")
	}

	bd.Check(WindowStats{Hives: 1, Flowers: 1, HoneyProduced: 2})
	if !hasBookmark(bd.Check(stalled), BookmarkStalledGarden) {
		t.Error("expected stalled_garden after recovery and a new stall")
	}
}

func TestBookmarkDetector_ThrivingHives(t *testing.T) {
	bd := NewBookmarkDetector(10)

	fired := 0
	for i := 0; i < 8; i++ {
		stats := WindowStats{
			WindowEndSec:    float64(i * 30),
			Hives:           2,
			Flowers:         6,
			HoneyProduced:   6,
			FlowerHealthP10: 70,
		}
		if hasBookmark(bd.Check(stats), BookmarkThrivingHives) {
			fired++
			if i != 4 {
				t.Errorf("thriving_hives fired at window %d, want 4", i)
			}
		}
	}
	if fired != 1 {
		t.Errorf("thriving_hives fired %d times, want 1", fired)
	}
}
