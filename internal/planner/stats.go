package planner

import (
	"sort"
	"time"

	"github.com/hmnguyen/travel-planner/backend/internal/domain"
)

// monthLabel is the display format for monthly statistic buckets ("MM/YYYY").
const monthLabel = "01/2006"

// Placeholder display values for popularity rows whose destination ID no
// longer resolves in the catalog.
const (
	unknownDestinationName  = "Unknown"
	unknownDestinationImage = "https://via.placeholder.com/60x60?text=?"
)

// MonthlyTripCounts buckets trips by the month of their start date into
// exactly windowMonths buckets ending at now's month, oldest first.
//
// A trip with no start date, an unparsable start date, or a month outside
// the window is simply excluded — the buckets still cover the full window
// with zero counts.
func MonthlyTripCounts(trips []domain.Trip, windowMonths int, now time.Time) []domain.MonthCount {
	if windowMonths <= 0 {
		return []domain.MonthCount{}
	}

	// Anchor on the first of the month so month arithmetic never spills
	// into a neighboring month on short months.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	counts := make([]domain.MonthCount, 0, windowMonths)
	index := make(map[string]int, windowMonths)
	for i := windowMonths - 1; i >= 0; i-- {
		label := anchor.AddDate(0, -i, 0).Format(monthLabel)
		index[label] = len(counts)
		counts = append(counts, domain.MonthCount{Month: label})
	}

	for _, t := range trips {
		if t.StartDate == "" {
			continue
		}
		start, err := time.Parse(domain.DateLayout, t.StartDate)
		if err != nil {
			continue
		}
		if i, ok := index[start.Format(monthLabel)]; ok {
			counts[i].Count++
		}
	}
	return counts
}

// PopularDestinations counts item-level usage of each destination ID across
// all trips, resolves display fields from the catalog (placeholders for IDs
// that no longer resolve), and returns the top limit rows by descending
// count. Equal counts are broken by ascending destination ID so the result
// is deterministic regardless of map iteration order.
func PopularDestinations(trips []domain.Trip, catalog []domain.Destination, limit int) []domain.PopularDestination {
	usage := make(map[string]int)
	for _, t := range trips {
		for _, it := range t.Items {
			if it.DestinationID != "" {
				usage[it.DestinationID]++
			}
		}
	}

	index := NewCatalogIndex(catalog)
	rows := make([]domain.PopularDestination, 0, len(usage))
	for id, count := range usage {
		row := domain.PopularDestination{
			DestinationID: id,
			Count:         count,
			Name:          unknownDestinationName,
			Image:         unknownDestinationImage,
		}
		if d, ok := index.GetByID(id); ok {
			row.Name = d.Name
			row.Image = d.Image
			row.Price = d.Price
			row.Rating = d.Rating
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].DestinationID < rows[j].DestinationID
	})

	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// TopRatedDestinations returns the limit highest-rated catalog entries,
// descending by rating. The sort is stable, so equally rated destinations
// keep their catalog order.
func TopRatedDestinations(catalog []domain.Destination, limit int) []domain.Destination {
	rated := make([]domain.Destination, len(catalog))
	copy(rated, catalog)

	sort.SliceStable(rated, func(i, j int) bool { return rated[i].Rating > rated[j].Rating })

	if limit >= 0 && len(rated) > limit {
		rated = rated[:limit]
	}
	return rated
}
