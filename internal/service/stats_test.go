package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmnguyen/travel-planner/backend/internal/clock"
	"github.com/hmnguyen/travel-planner/backend/internal/domain"
	"github.com/hmnguyen/travel-planner/backend/internal/service"
)

func statsTrips() []domain.Trip {
	return []domain.Trip{
		{ID: "t1", StartDate: "2024-03-05", Items: []domain.TripItem{
			{ID: "a", DestinationID: "1", Date: "2024-03-05"},
			{ID: "b", DestinationID: "2", Date: "2024-03-06"},
		}},
		{ID: "t2", StartDate: "2024-03-20", Items: []domain.TripItem{
			{ID: "c", DestinationID: "1", Date: "2024-03-20"},
		}},
		{ID: "t3", StartDate: "2024-01-10"},
	}
}

func newStatsService(trips []domain.Trip, catalog *mockDestinationRepo) *service.StatsService {
	repo := &mockTripRepo{
		list: func(context.Context) ([]domain.Trip, error) { return trips, nil },
	}
	clk := clock.NewFixed(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	return service.NewStatsService(repo, catalog, clk)
}

func TestStatsService_MonthlyTripCounts_DefaultWindow(t *testing.T) {
	svc := newStatsService(statsTrips(), emptyCatalog())

	got, err := svc.MonthlyTripCounts(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, got, 6)
	assert.Equal(t, "10/2023", got[0].Month)
	assert.Equal(t, "03/2024", got[5].Month)
	assert.Equal(t, 2, got[5].Count)
	assert.Equal(t, 1, got[3].Count) // 01/2024
}

func TestStatsService_MonthlyTripCounts_ExplicitWindow(t *testing.T) {
	svc := newStatsService(statsTrips(), emptyCatalog())

	got, err := svc.MonthlyTripCounts(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "02/2024", got[0].Month)
	assert.Equal(t, "03/2024", got[1].Month)
}

func TestStatsService_MonthlyTripCounts_WindowCapped(t *testing.T) {
	svc := newStatsService(statsTrips(), emptyCatalog())

	got, err := svc.MonthlyTripCounts(context.Background(), 1000)
	require.NoError(t, err)
	assert.Len(t, got, 36)
}

func TestStatsService_PopularDestinations_DefaultLimit(t *testing.T) {
	catalog := fixedCatalog(
		domain.Destination{ID: "1", Name: "Ha Long Bay", Image: "halong.jpg", Price: 1_500_000, Rating: 4.8},
		domain.Destination{ID: "2", Name: "Sapa", Image: "sapa.jpg", Price: 1_200_000, Rating: 4.7},
	)
	svc := newStatsService(statsTrips(), catalog)

	got, err := svc.PopularDestinations(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].DestinationID)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, "Ha Long Bay", got[0].Name)
	assert.Equal(t, "2", got[1].DestinationID)
	assert.Equal(t, 1, got[1].Count)
}

func TestStatsService_PopularDestinations_LimitApplied(t *testing.T) {
	svc := newStatsService(statsTrips(), emptyCatalog())

	got, err := svc.PopularDestinations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	// Unresolved catalog entries still rank, with placeholder fields.
	assert.Equal(t, "Unknown", got[0].Name)
}

func TestStatsService_TopRatedDestinations(t *testing.T) {
	catalog := fixedCatalog(
		domain.Destination{ID: "1", Name: "Ha Long Bay", Rating: 4.8},
		domain.Destination{ID: "2", Name: "Sapa", Rating: 4.7},
		domain.Destination{ID: "3", Name: "Hoi An", Rating: 4.9},
	)
	svc := newStatsService(nil, catalog)

	got, err := svc.TopRatedDestinations(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
}

func TestStatsService_TopRatedDestinations_EmptyCatalog(t *testing.T) {
	svc := newStatsService(nil, emptyCatalog())

	got, err := svc.TopRatedDestinations(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
