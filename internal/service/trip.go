// Package service contains the business logic for the Travel Planner API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// planner calls. No SQL or JSON mapping lives here — services depend on repo
// interfaces, and all itinerary math is delegated to the planner package.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hmnguyen/travel-planner/backend/internal/clock"
	"github.com/hmnguyen/travel-planner/backend/internal/domain"
	"github.com/hmnguyen/travel-planner/backend/internal/planner"
	"github.com/hmnguyen/travel-planner/backend/internal/repo"
)

// defaultTripName is used when a trip is created without a name.
const defaultTripName = "New Trip"

// TripService implements business logic for Trip operations: lifecycle,
// date confirmation, itinerary editing, and budget management.
//
// It holds the destination repo as well because budget summaries and day
// views resolve catalog entries for the trip's items.
type TripService struct {
	trips   repo.TripRepo
	catalog repo.DestinationRepo
	clock   clock.Clock
	travel  planner.TravelTimeEstimator

	// ID generation is a field so tests can make it deterministic.
	newTripID func() string
	newItemID func() string
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, catalog repo.DestinationRepo, clk clock.Clock, travel planner.TravelTimeEstimator) *TripService {
	return &TripService{
		trips:     trips,
		catalog:   catalog,
		clock:     clk,
		travel:    travel,
		newTripID: func() string { return planner.NewTripID(clk.Now()) },
		newItemID: func() string { return planner.NewItemID(clk.Now()) },
	}
}

// SetIDGeneratorsForTest overrides trip and item ID generation for
// deterministic tests. It should not be used in production code.
func (s *TripService) SetIDGeneratorsForTest(tripID, itemID func() string) {
	if tripID != nil {
		s.newTripID = tripID
	}
	if itemID != nil {
		s.newItemID = itemID
	}
}

// Create persists a new trip in its initial state: no dates, no items, zero
// budget. A blank name falls back to a default so the trip list never shows
// unnamed entries.
func (s *TripService) Create(ctx context.Context, name string) (domain.Trip, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultTripName
	}

	trip := domain.Trip{
		ID:    s.newTripID(),
		Name:  name,
		Items: []domain.TripItem{},
	}
	if err := s.trips.Save(ctx, trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return trip, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all saved trips.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// Rename changes the trip's display name.
// Returns domain.ErrValidation when the new name is empty.
func (s *TripService) Rename(ctx context.Context, id, name string) (domain.Trip, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Trip{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return s.mutate(ctx, id, "Rename", func(t domain.Trip) domain.Trip {
		t.Name = strings.TrimSpace(name)
		return t
	})
}

// Delete removes a trip by ID.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id string) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// ConfirmDates sets the trip's date range. This is the single transition
// into the "dates confirmed" state: only after it do day-by-day views
// become derivable.
//
// Items scheduled outside the new range are neither rejected nor clipped;
// they stay stored and simply drop out of date-indexed views until a later
// range covers them again.
func (s *TripService) ConfirmDates(ctx context.Context, id, startDate, endDate string) (domain.Trip, error) {
	start, err := time.Parse(domain.DateLayout, startDate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("%w: startDate must be a YYYY-MM-DD date", domain.ErrValidation)
	}
	end, err := time.Parse(domain.DateLayout, endDate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("%w: endDate must be a YYYY-MM-DD date", domain.ErrValidation)
	}
	if end.Before(start) {
		return domain.Trip{}, fmt.Errorf("%w: endDate must not be before startDate", domain.ErrValidation)
	}

	return s.mutate(ctx, id, "ConfirmDates", func(t domain.Trip) domain.Trip {
		t.StartDate = startDate
		t.EndDate = endDate
		return t
	})
}

// ResetDates clears the trip's date range, returning it to the undated
// state. Items keep their dates but become unreachable through day views.
func (s *TripService) ResetDates(ctx context.Context, id string) (domain.Trip, error) {
	return s.mutate(ctx, id, "ResetDates", func(t domain.Trip) domain.Trip {
		t.StartDate = ""
		t.EndDate = ""
		return t
	})
}

// mutate loads a trip, applies fn, and persists the result.
// All single-trip updates funnel through here so the load-apply-save cycle
// stays in one place.
func (s *TripService) mutate(ctx context.Context, id, op string, fn func(domain.Trip) domain.Trip) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: %w", op, err)
	}

	updated := fn(trip)

	if err := s.trips.Save(ctx, updated); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: %w", op, err)
	}
	return updated, nil
}
