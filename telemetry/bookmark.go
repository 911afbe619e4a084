package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkHoneyRush     BookmarkType = "honey_rush"
	BookmarkTheftSpree    BookmarkType = "theft_spree"
	BookmarkFlowerDieOff  BookmarkType = "flower_die_off"
	BookmarkStalledGarden BookmarkType = "stalled_garden"
	BookmarkThrivingHives BookmarkType = "thriving_hives"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	SimTimeSec  float64      `csv:"sim_time"`
	Day         int          `csv:"day"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"sim_time", b.SimTimeSec,
		"day", b.Day,
		"description", b.Description,
	)
}

// BookmarkDetector flags notable windows in the garden's history.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	recentFlowerPeak    int // peak flower count since the last die-off
	thrivingWindowCount int // consecutive windows with healthy flowers and producing hives
	stalled             bool
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	checks := []func(WindowStats) *Bookmark{
		bd.checkHoneyRush,
		bd.checkTheftSpree,
		bd.checkFlowerDieOff,
		bd.checkStalledGarden,
		bd.checkThrivingHives,
	}
	for _, check := range checks {
		if b := check(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)
	if stats.Flowers > bd.recentFlowerPeak {
		bd.recentFlowerPeak = stats.Flowers
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) newBookmark(t BookmarkType, stats WindowStats, format string, args ...any) *Bookmark {
	return &Bookmark{
		Type:        t,
		SimTimeSec:  stats.WindowEndSec,
		Day:         stats.Day,
		Description: fmt.Sprintf(format, args...),
	}
}

// checkHoneyRush fires when production doubles the rolling average.
func (bd *BookmarkDetector) checkHoneyRush(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.HoneyProduced
	}
	avg := total / float64(len(history))
	if avg == 0 {
		return nil
	}

	if stats.HoneyProduced > avg*2.0 && stats.HoneyProduced >= 5 {
		return bd.newBookmark(BookmarkHoneyRush, stats,
			"Produced %.1f honey, %.1fx average (%.1f)", stats.HoneyProduced, stats.HoneyProduced/avg, avg)
	}
	return nil
}

// checkTheftSpree fires when several kids reach hives in one window.
func (bd *BookmarkDetector) checkTheftSpree(stats WindowStats) *Bookmark {
	if stats.Thefts >= 3 && stats.HoneyStolen > 0 {
		return bd.newBookmark(BookmarkTheftSpree, stats,
			"%d thefts took %.1f honey", stats.Thefts, stats.HoneyStolen)
	}
	return nil
}

// checkFlowerDieOff fires when the flower count drops more than 30% from its peak.
func (bd *BookmarkDetector) checkFlowerDieOff(stats WindowStats) *Bookmark {
	if bd.recentFlowerPeak < 4 || stats.FlowersWilted == 0 {
		return nil
	}

	drop := 1.0 - float64(stats.Flowers)/float64(bd.recentFlowerPeak)
	if drop > 0.30 {
		oldPeak := bd.recentFlowerPeak
		bd.recentFlowerPeak = stats.Flowers
		return bd.newBookmark(BookmarkFlowerDieOff, stats,
			"Flowers fell %.0f%% from peak %d to %d", drop*100, oldPeak, stats.Flowers)
	}
	return nil
}

// checkStalledGarden fires once when nothing can produce and nothing is left to sell.
func (bd *BookmarkDetector) checkStalledGarden(stats WindowStats) *Bookmark {
	stalled := (stats.Hives == 0 || stats.Flowers == 0) &&
		stats.WalletHoney == 0 && stats.HiveHoney == 0 && stats.HoneyProduced == 0
	if !stalled {
		bd.stalled = false
		return nil
	}
	if bd.stalled {
		return nil
	}
	bd.stalled = true
	return bd.newBookmark(BookmarkStalledGarden, stats,
		"No production with %d hives, %d flowers and %.0f money", stats.Hives, stats.Flowers, stats.Money)
}

// checkThrivingHives fires once after five consecutive healthy, producing windows.
func (bd *BookmarkDetector) checkThrivingHives(stats WindowStats) *Bookmark {
	if stats.Hives == 0 || stats.HoneyProduced == 0 || stats.FlowerHealthP10 < 50 {
		bd.thrivingWindowCount = 0
		return nil
	}

	bd.thrivingWindowCount++
	if bd.thrivingWindowCount == 5 { // trigger exactly once at 5 windows
		return bd.newBookmark(BookmarkThrivingHives, stats,
			"%d hives producing with flower health p10 %.0f over 5 windows", stats.Hives, stats.FlowerHealthP10)
	}
	return nil
}
