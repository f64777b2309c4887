// Package planner implements the pure computation core of the Travel Planner:
// itinerary ordering, budget aggregation, and usage statistics.
//
// Every function here is a pure value transformation — a Trip (or Budget, or
// slice of Trips) goes in, a new value comes out, and the input is never
// mutated. Callers own persistence and rendering. Unknown IDs and other
// not-found conditions are deliberately no-ops rather than errors: in a
// single-user planning UI, "nothing happened" is the correct failure mode.
package planner

import (
	"sort"
	"time"

	"github.com/hmnguyen/travel-planner/backend/internal/domain"
)

// Direction selects which adjacent day-peer MoveItem swaps with.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// DateRange enumerates every calendar date from start to end inclusive,
// ascending, formatted domain.DateLayout.
//
// Returns nil when either date is unset, unparsable, or end is before start.
func DateRange(start, end string) []string {
	if start == "" || end == "" {
		return nil
	}
	from, err := time.Parse(domain.DateLayout, start)
	if err != nil {
		return nil
	}
	to, err := time.Parse(domain.DateLayout, end)
	if err != nil {
		return nil
	}
	if to.Before(from) {
		return nil
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(domain.DateLayout))
	}
	return dates
}

// ItemsOn returns the trip's items scheduled on the given date, sorted
// ascending by Order. The sort is stable, so items with equal Order values
// keep their insertion order rather than being reordered arbitrarily.
func ItemsOn(trip domain.Trip, date string) []domain.TripItem {
	items := make([]domain.TripItem, 0)
	for _, it := range trip.Items {
		if it.Date == date {
			items = append(items, it)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items
}

// AddItem appends a new item for destinationID on the given date, using the
// caller-supplied item ID. The new item's Order is one past the highest
// Order already on that date, or 0 for the first item of the day.
//
// destinationID is not validated against the catalog; referential integrity
// is the caller's concern (see domain.TripItem).
func AddItem(trip domain.Trip, date, destinationID, itemID string) domain.Trip {
	order := 0
	for _, it := range trip.Items {
		if it.Date == date && it.Order >= order {
			order = it.Order + 1
		}
	}

	items := make([]domain.TripItem, len(trip.Items), len(trip.Items)+1)
	copy(items, trip.Items)
	items = append(items, domain.TripItem{
		ID:            itemID,
		DestinationID: destinationID,
		Date:          date,
		Order:         order,
	})

	trip.Items = items
	return trip
}

// RemoveItem removes the item with the given ID. Remaining Order values are
// not renumbered — gaps are harmless because day views sort by relative
// order, not contiguity. Unknown itemID is a no-op.
func RemoveItem(trip domain.Trip, itemID string) domain.Trip {
	items := make([]domain.TripItem, 0, len(trip.Items))
	removed := false
	for _, it := range trip.Items {
		if it.ID == itemID {
			removed = true
			continue
		}
		items = append(items, it)
	}
	if !removed {
		return trip
	}
	trip.Items = items
	return trip
}

// MoveItem shifts an item one position up or down within its day by swapping
// Order values with the adjacent day-peer. Neither item's Date changes.
//
// No-op when the item is unknown, or already first (up) or last (down)
// within its day.
func MoveItem(trip domain.Trip, itemID string, dir Direction) domain.Trip {
	var item domain.TripItem
	found := false
	for _, it := range trip.Items {
		if it.ID == itemID {
			item, found = it, true
			break
		}
	}
	if !found {
		return trip
	}

	peers := ItemsOn(trip, item.Date)
	idx := 0
	for i, p := range peers {
		if p.ID == itemID {
			idx = i
			break
		}
	}

	if dir == MoveUp && idx == 0 {
		return trip
	}
	if dir == MoveDown && idx == len(peers)-1 {
		return trip
	}

	swapIdx := idx + 1
	if dir == MoveUp {
		swapIdx = idx - 1
	}
	peer := peers[swapIdx]

	items := make([]domain.TripItem, len(trip.Items))
	for i, it := range trip.Items {
		switch it.ID {
		case item.ID:
			it.Order = peer.Order
		case peer.ID:
			it.Order = item.Order
		}
		items[i] = it
	}

	trip.Items = items
	return trip
}

// DragReorder implements drag-and-drop reconciliation: the item at srcIndex
// within srcDate's sorted day sequence is removed and reinserted at dstIndex
// within dstDate's sequence. On a cross-day move the item's Date is rewritten
// to dstDate; an empty destination day is created implicitly, since day
// buckets are derived views and never stored.
//
// Every affected day is then renumbered to contiguous 0..n-1 Order values
// matching final position. This is the only operation that renormalizes
// Order; renumbering an already-contiguous day is a no-op, so re-applying
// the same renormalization is idempotent.
//
// No-op when srcIndex is out of range for srcDate. dstIndex is clamped into
// the destination sequence.
func DragReorder(trip domain.Trip, srcDate string, srcIndex int, dstDate string, dstIndex int) domain.Trip {
	src := ItemsOn(trip, srcDate)
	if srcIndex < 0 || srcIndex >= len(src) {
		return trip
	}

	dragged := src[srcIndex]
	src = append(src[:srcIndex], src[srcIndex+1:]...)

	if srcDate == dstDate {
		dstIndex = clamp(dstIndex, 0, len(src))
		src = insertAt(src, dstIndex, dragged)

		rest := itemsExcept(trip.Items, srcDate)
		trip.Items = append(rest, renumber(src, srcDate)...)
		return trip
	}

	dst := ItemsOn(trip, dstDate)
	dstIndex = clamp(dstIndex, 0, len(dst))
	dst = insertAt(dst, dstIndex, dragged)

	rest := itemsExcept(trip.Items, srcDate, dstDate)
	rest = append(rest, renumber(src, srcDate)...)
	trip.Items = append(rest, renumber(dst, dstDate)...)
	return trip
}

// itemsExcept copies all items whose Date is not in the excluded set.
func itemsExcept(items []domain.TripItem, exclude ...string) []domain.TripItem {
	out := make([]domain.TripItem, 0, len(items))
	for _, it := range items {
		skip := false
		for _, date := range exclude {
			if it.Date == date {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, it)
		}
	}
	return out
}

// renumber rewrites each item's Date to date and its Order to its position,
// yielding the contiguous 0..n-1 sequence the drag operation guarantees.
func renumber(items []domain.TripItem, date string) []domain.TripItem {
	out := make([]domain.TripItem, len(items))
	for i, it := range items {
		it.Date = date
		it.Order = i
		out[i] = it
	}
	return out
}

func insertAt(items []domain.TripItem, idx int, item domain.TripItem) []domain.TripItem {
	out := make([]domain.TripItem, 0, len(items)+1)
	out = append(out, items[:idx]...)
	out = append(out, item)
	return append(out, items[idx:]...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
