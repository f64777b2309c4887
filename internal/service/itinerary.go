package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hmnguyen/travel-planner/backend/internal/domain"
	"github.com/hmnguyen/travel-planner/backend/internal/planner"
)

// DayItem is one itinerary entry in a day view, with its catalog entry
// resolved and the estimated travel time from the previous entry of the
// same day.
type DayItem struct {
	domain.TripItem

	// Destination is nil when the item's DestinationID no longer resolves
	// in the catalog; presentation renders such items as "unknown".
	Destination *domain.Destination

	// TravelMinutesFromPrevious is nil for the first item of a day.
	TravelMinutesFromPrevious *int
}

// Day is the derived day-bucket view: one calendar date of the confirmed
// range with its ordered items.
type Day struct {
	Date  string
	Items []DayItem
}

// Days derives the full day-by-day view of a trip: one Day per calendar
// date in the confirmed range, each with its ordered, catalog-resolved
// items. Returns an empty slice (not an error) while dates are unconfirmed.
func (s *TripService) Days(ctx context.Context, tripID string) ([]Day, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Days: %w", err)
	}

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Days: %w", err)
	}
	index := planner.NewCatalogIndex(catalog)

	dates := planner.DateRange(trip.StartDate, trip.EndDate)
	days := make([]Day, 0, len(dates))
	for _, date := range dates {
		items := planner.ItemsOn(trip, date)
		day := Day{Date: date, Items: make([]DayItem, 0, len(items))}

		for i, it := range items {
			entry := DayItem{TripItem: it}
			if d, ok := index.GetByID(it.DestinationID); ok {
				dest := d
				entry.Destination = &dest
			}
			if i > 0 {
				minutes := s.travel.Minutes(items[i-1].DestinationID, it.DestinationID)
				entry.TravelMinutesFromPrevious = &minutes
			}
			day.Items = append(day.Items, entry)
		}
		days = append(days, day)
	}
	return days, nil
}

// AddItem schedules a destination on the given date, appending it after the
// day's existing items. The destination ID is not checked against the
// catalog — dangling references are tolerated by design — but the date must
// be well-formed.
func (s *TripService) AddItem(ctx context.Context, tripID, date, destinationID string) (domain.Trip, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.Trip{}, fmt.Errorf("%w: date must be a YYYY-MM-DD date", domain.ErrValidation)
	}
	if destinationID == "" {
		return domain.Trip{}, fmt.Errorf("%w: destinationId is required", domain.ErrValidation)
	}

	return s.mutate(ctx, tripID, "AddItem", func(t domain.Trip) domain.Trip {
		return planner.AddItem(t, date, destinationID, s.newItemID())
	})
}

// RemoveItem removes an itinerary item by ID. Removing an item that does
// not exist is a no-op, consistent with the planner's not-found semantics.
func (s *TripService) RemoveItem(ctx context.Context, tripID, itemID string) (domain.Trip, error) {
	return s.mutate(ctx, tripID, "RemoveItem", func(t domain.Trip) domain.Trip {
		return planner.RemoveItem(t, itemID)
	})
}

// MoveItem shifts an item one position up or down within its day.
// Returns domain.ErrValidation for an unknown direction; boundary moves and
// unknown item IDs are no-ops.
func (s *TripService) MoveItem(ctx context.Context, tripID, itemID string, dir planner.Direction) (domain.Trip, error) {
	if dir != planner.MoveUp && dir != planner.MoveDown {
		return domain.Trip{}, fmt.Errorf("%w: direction must be \"up\" or \"down\"", domain.ErrValidation)
	}
	return s.mutate(ctx, tripID, "MoveItem", func(t domain.Trip) domain.Trip {
		return planner.MoveItem(t, itemID, dir)
	})
}

// Reorder applies a drag-and-drop move: the item at sourceIndex within
// sourceDate's day sequence is reinserted at destIndex within destDate's
// sequence (possibly the same day), and affected days are renumbered to
// contiguous order values.
func (s *TripService) Reorder(ctx context.Context, tripID, sourceDate string, sourceIndex int, destDate string, destIndex int) (domain.Trip, error) {
	if _, err := time.Parse(domain.DateLayout, sourceDate); err != nil {
		return domain.Trip{}, fmt.Errorf("%w: sourceDate must be a YYYY-MM-DD date", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, destDate); err != nil {
		return domain.Trip{}, fmt.Errorf("%w: destDate must be a YYYY-MM-DD date", domain.ErrValidation)
	}

	return s.mutate(ctx, tripID, "Reorder", func(t domain.Trip) domain.Trip {
		return planner.DragReorder(t, sourceDate, sourceIndex, destDate, destIndex)
	})
}
