package service

import (
	"context"
	"fmt"

	"github.com/hmnguyen/travel-planner/backend/internal/clock"
	"github.com/hmnguyen/travel-planner/backend/internal/domain"
	"github.com/hmnguyen/travel-planner/backend/internal/planner"
	"github.com/hmnguyen/travel-planner/backend/internal/repo"
)

// Statistics defaults, matching what the admin dashboard shows.
const (
	defaultStatsWindowMonths = 6
	defaultStatsLimit        = 5
	maxStatsWindowMonths     = 36
	maxStatsLimit            = 50
)

// StatsService derives admin dashboard statistics from the stored trips
// and catalog. All aggregation math lives in the planner package; this
// service only loads inputs and applies parameter defaults.
type StatsService struct {
	trips   repo.TripRepo
	catalog repo.DestinationRepo
	clock   clock.Clock
}

// NewStatsService constructs a StatsService backed by the provided repos.
// The clock anchors the monthly window at "now".
func NewStatsService(trips repo.TripRepo, catalog repo.DestinationRepo, clk clock.Clock) *StatsService {
	return &StatsService{trips: trips, catalog: catalog, clock: clk}
}

// MonthlyTripCounts returns trip-creation counts for the windowMonths
// months ending at the current month, oldest first. Non-positive
// windowMonths falls back to the default; oversized windows are capped.
func (s *StatsService) MonthlyTripCounts(ctx context.Context, windowMonths int) ([]domain.MonthCount, error) {
	if windowMonths <= 0 {
		windowMonths = defaultStatsWindowMonths
	}
	if windowMonths > maxStatsWindowMonths {
		windowMonths = maxStatsWindowMonths
	}

	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.StatsService.MonthlyTripCounts: %w", err)
	}
	return planner.MonthlyTripCounts(trips, windowMonths, s.clock.Now()), nil
}

// PopularDestinations returns the most-used destinations across all trips,
// descending by usage count. Non-positive limit falls back to the default;
// oversized limits are capped.
func (s *StatsService) PopularDestinations(ctx context.Context, limit int) ([]domain.PopularDestination, error) {
	limit = clampLimit(limit)

	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.StatsService.PopularDestinations: %w", err)
	}
	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.StatsService.PopularDestinations: %w", err)
	}
	return planner.PopularDestinations(trips, catalog, limit), nil
}

// TopRatedDestinations returns the highest-rated catalog entries.
// Non-positive limit falls back to the default; oversized limits are capped.
func (s *StatsService) TopRatedDestinations(ctx context.Context, limit int) ([]domain.Destination, error) {
	limit = clampLimit(limit)

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.StatsService.TopRatedDestinations: %w", err)
	}
	return planner.TopRatedDestinations(catalog, limit), nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultStatsLimit
	}
	if limit > maxStatsLimit {
		return maxStatsLimit
	}
	return limit
}
