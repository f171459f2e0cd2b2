package availability

import (
	"math"
	"sort"
	"time"
)

// Item is anything placed on a day timeline: a booking or a blocked slot.
type Item struct {
	ID    int       `json:"id"`
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

type LayoutOptions struct {
	// RowHeight is the pixel height of one 24 hour row.
	RowHeight float64
	// GapPixels separates lanes when items share a row.
	GapPixels float64
	// MinWidthPercent keeps very short items visible.
	MinWidthPercent float64
}

func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		RowHeight:       48,
		GapPixels:       2,
		MinWidthPercent: 0.7,
	}
}

// PositionedItem places one item in a 24 hour row. LeftPercent and
// WidthPercent run along the time axis; overlapping items are split into
// lanes across the row, described by Column, Columns and the pixel box.
type PositionedItem struct {
	ItemID       int     `json:"item_id"`
	Column       int     `json:"column"`
	Columns      int     `json:"columns"`
	Overlaps     int     `json:"overlaps"`
	LeftPercent  float64 `json:"left_percent"`
	WidthPercent float64 `json:"width_percent"`
	LanePercent  float64 `json:"lane_percent"`
	TopPixels    float64 `json:"top_pixels"`
	HeightPixels float64 `json:"height_pixels"`
}

type laneEntry struct {
	item  Item
	order int
	// lo and hi are the rendered extent; start and end the clamped interval.
	lo, hi     time.Duration
	start, end time.Duration
	column     int
	cluster    int
}

// intersects reports whether the clamped intervals share an instant. A zero
// length item counts as the instant it sits on.
func (e *laneEntry) intersects(o *laneEntry) bool {
	switch {
	case e.start == e.end && o.start == o.end:
		return e.start == o.start
	case e.start == e.end:
		return o.start <= e.start && e.start < o.end
	case o.start == o.end:
		return e.start <= o.start && o.start < e.end
	}
	return e.start < o.end && o.start < e.end
}

// LayoutDay positions the items that touch the calendar day containing day.
// Items spanning midnight are clamped to the day. Columns are assigned
// greedily in start order on the rendered extent, so two items in the same
// column never overlap, and every item in a connected overlap group shares
// the group's column count.
func LayoutDay(day time.Time, items []Item, opts LayoutOptions) []PositionedItem {
	dayStart, dayEnd := DayBounds(day)
	dayLen := dayEnd.Sub(dayStart)
	minDur := time.Duration(float64(dayLen) * opts.MinWidthPercent / 100)
	if minDur < 1 {
		minDur = 1
	}

	entries := make([]*laneEntry, 0, len(items))
	for i, it := range items {
		if it.End.Before(it.Start) || !touchesDay(it, dayStart, dayEnd) {
			continue
		}
		start := maxTime(it.Start, dayStart).Sub(dayStart)
		end := minTime(it.End, dayEnd).Sub(dayStart)
		lo, hi := start, end
		if hi-lo < minDur {
			hi = lo + minDur
		}
		if hi > dayLen {
			lo -= hi - dayLen
			hi = dayLen
			if lo < 0 {
				lo = 0
			}
		}
		entries = append(entries, &laneEntry{item: it, order: i, lo: lo, hi: hi, start: start, end: end})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.lo != b.lo {
			return a.lo < b.lo
		}
		if a.hi != b.hi {
			return a.hi > b.hi
		}
		if a.item.ID != b.item.ID {
			return a.item.ID < b.item.ID
		}
		return a.order < b.order
	})

	var (
		columnEnds   []time.Duration
		clusterCols  []int
		clusterEnd   time.Duration
		clusterIndex = -1
	)
	for _, e := range entries {
		if clusterIndex < 0 || e.lo >= clusterEnd {
			clusterIndex++
			clusterCols = append(clusterCols, 0)
			columnEnds = columnEnds[:0]
			clusterEnd = 0
		}

		col := -1
		for c, end := range columnEnds {
			if end <= e.lo {
				col = c
				break
			}
		}
		if col < 0 {
			col = len(columnEnds)
			columnEnds = append(columnEnds, 0)
		}
		columnEnds[col] = e.hi

		e.column = col
		e.cluster = clusterIndex
		if col+1 > clusterCols[clusterIndex] {
			clusterCols[clusterIndex] = col + 1
		}
		if e.hi > clusterEnd {
			clusterEnd = e.hi
		}
	}

	out := make([]PositionedItem, 0, len(entries))
	for _, e := range entries {
		cols := clusterCols[e.cluster]
		lane := opts.RowHeight / float64(cols)
		height := opts.RowHeight
		if cols > 1 {
			height = math.Max(lane-opts.GapPixels, 0)
		}

		overlaps := 0
		for _, o := range entries {
			if o == e || e.intersects(o) {
				overlaps++
			}
		}

		out = append(out, PositionedItem{
			ItemID:       e.item.ID,
			Column:       e.column,
			Columns:      cols,
			Overlaps:     overlaps,
			LeftPercent:  percentOf(e.lo, dayLen),
			WidthPercent: percentOf(e.hi-e.lo, dayLen),
			LanePercent:  100 / float64(cols),
			TopPixels:    float64(e.column) * lane,
			HeightPixels: height,
		})
	}
	return out
}

// BookingItems converts bookings to timeline items.
func BookingItems(bookings []Booking) []Item {
	out := make([]Item, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, Item{ID: b.ID, Start: b.Start, End: b.End})
	}
	return out
}

// SlotItems converts blocked slots to timeline items keyed by the blocking
// booking.
func SlotItems(slots []BlockedSlot) []Item {
	out := make([]Item, 0, len(slots))
	for _, s := range slots {
		out = append(out, Item{ID: s.BookingID, Start: s.Start, End: s.End})
	}
	return out
}

func touchesDay(it Item, dayStart, dayEnd time.Time) bool {
	if it.Start.Equal(it.End) {
		return !it.Start.Before(dayStart) && it.Start.Before(dayEnd)
	}
	return it.Start.Before(dayEnd) && it.End.After(dayStart)
}

func percentOf(d, total time.Duration) float64 {
	return float64(d) / float64(total) * 100
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
