package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmnguyen/travel-planner/backend/internal/clock"
	"github.com/hmnguyen/travel-planner/backend/internal/domain"
	"github.com/hmnguyen/travel-planner/backend/internal/planner"
	"github.com/hmnguyen/travel-planner/backend/internal/service"
)

func datedTrip() domain.Trip {
	return domain.Trip{
		ID:        "t1",
		Name:      "Trip",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Items: []domain.TripItem{
			{ID: "a", DestinationID: "1", Date: "2024-03-10", Order: 0},
			{ID: "b", DestinationID: "2", Date: "2024-03-10", Order: 1},
			{ID: "c", DestinationID: "1", Date: "2024-03-11", Order: 0},
		},
	}
}

func TestTripService_Days_OneDayPerDateInRange(t *testing.T) {
	trips := newSingleTripRepo(datedTrip())
	catalog := fixedCatalog(
		domain.Destination{ID: "1", Name: "Ha Long Bay"},
		domain.Destination{ID: "2", Name: "Sapa"},
	)
	svc := service.NewTripService(&trips.mockTripRepo, catalog, testClock(), fixedTravel(45))

	days, err := svc.Days(context.Background(), "t1")
	require.NoError(t, err)

	require.Len(t, days, 3)
	assert.Equal(t, "2024-03-10", days[0].Date)
	assert.Equal(t, "2024-03-11", days[1].Date)
	assert.Equal(t, "2024-03-12", days[2].Date)

	require.Len(t, days[0].Items, 2)
	require.Len(t, days[1].Items, 1)
	// Days without items still appear, with an empty item list.
	assert.Empty(t, days[2].Items)
}

func TestTripService_Days_ResolvesDestinationsAndTravelTime(t *testing.T) {
	trips := newSingleTripRepo(datedTrip())
	catalog := fixedCatalog(
		domain.Destination{ID: "1", Name: "Ha Long Bay"},
		domain.Destination{ID: "2", Name: "Sapa"},
	)
	svc := service.NewTripService(&trips.mockTripRepo, catalog, testClock(), fixedTravel(45))

	days, err := svc.Days(context.Background(), "t1")
	require.NoError(t, err)

	first := days[0].Items[0]
	require.NotNil(t, first.Destination)
	assert.Equal(t, "Ha Long Bay", first.Destination.Name)
	// The first item of a day has no travel leg.
	assert.Nil(t, first.TravelMinutesFromPrevious)

	second := days[0].Items[1]
	require.NotNil(t, second.TravelMinutesFromPrevious)
	assert.Equal(t, 45, *second.TravelMinutesFromPrevious)
}

func TestTripService_Days_DanglingDestinationIsNil(t *testing.T) {
	trips := newSingleTripRepo(domain.Trip{
		ID:        "t1",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
		Items: []domain.TripItem{
			{ID: "a", DestinationID: "deleted", Date: "2024-03-10", Order: 0},
		},
	})
	svc := service.NewTripService(&trips.mockTripRepo, emptyCatalog(), testClock(), fixedTravel(45))

	days, err := svc.Days(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Len(t, days[0].Items, 1)
	assert.Nil(t, days[0].Items[0].Destination)
	assert.Equal(t, "deleted", days[0].Items[0].DestinationID)
}

func TestTripService_Days_UnconfirmedDatesIsEmpty(t *testing.T) {
	trips := newSingleTripRepo(domain.Trip{ID: "t1", Name: "Trip"})
	svc := service.NewTripService(&trips.mockTripRepo, emptyCatalog(), testClock(), fixedTravel(45))

	days, err := svc.Days(context.Background(), "t1")
	require.NoError(t, err)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestTripService_AddItem_Valid(t *testing.T) {
	trips := newSingleTripRepo(datedTrip())
	svc := newTripServiceWith(&trips.mockTripRepo, emptyCatalog())

	trip, err := svc.AddItem(context.Background(), "t1", "2024-03-10", "3")
	require.NoError(t, err)

	require.Len(t, trip.Items, 4)
	added := trip.Items[3]
	assert.Equal(t, "3", added.DestinationID)
	assert.Equal(t, "2024-03-10", added.Date)
	assert.Equal(t, 2, added.Order)
	require.NotNil(t, trips.saved)
}

func TestTripService_AddItem_MalformedDate(t *testing.T) {
	trips := newSingleTripRepo(datedTrip())
	svc := newTripServiceWith(&trips.mockTripRepo, emptyCatalog())

	_, err := svc.AddItem(context.Background(), "t1", "March 10", "3")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, trips.saved)
}

func TestTripService_AddItem_MissingDestinationID(t *testing.T) {
	trips := newSingleTripRepo(datedTrip())
	svc := newTripServiceWith(&trips.mockTripRepo, emptyCatalog())

	_, err := svc.AddItem(context.Background(), "t1", "2024-03-10", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_RemoveItem_Valid(t *testing.T) {
	trips := newSingleTripRepo(datedTrip())
	svc := newTripServiceWith(&trips.mockTripRepo, emptyCatalog())

	trip, err := svc.RemoveItem(context.Background(), "t1", "a")
	require.NoError(t, err)
	require.Len(t, trip.Items, 2)
	for _, it := range trip.Items {
		assert.NotEqual(t, "a", it.ID)
	}
}

func TestTripService_MoveItem_Down(t *testing.T) {
	trips := newSingleTripRepo(datedTrip())
	svc := newTripServiceWith(&trips.mockTripRepo, emptyCatalog())

	trip, err := svc.MoveItem(context.Background(), "t1", "a", planner.MoveDown)
	require.NoError(t, err)

	ordered := planner.ItemsOn(trip, "2024-03-10")
	require.Len(t, ordered, 2)
	assert.Equal(t, "b", ordered[0].ID)
	assert.Equal(t, "a", ordered[1].ID)
}

func TestTripService_MoveItem_UnknownDirection(t *testing.T) {
	trips := newSingleTripRepo(datedTrip())
	svc := newTripServiceWith(&trips.mockTripRepo, emptyCatalog())

	_, err := svc.MoveItem(context.Background(), "t1", "a", planner.Direction("sideways"))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, trips.saved)
}

func TestTripService_Reorder_AcrossDays(t *testing.T) {
	trips := newSingleTripRepo(datedTrip())
	svc := newTripServiceWith(&trips.mockTripRepo, emptyCatalog())

	trip, err := svc.Reorder(context.Background(), "t1", "2024-03-10", 0, "2024-03-11", 1)
	require.NoError(t, err)

	src := planner.ItemsOn(trip, "2024-03-10")
	dst := planner.ItemsOn(trip, "2024-03-11")
	require.Len(t, src, 1)
	require.Len(t, dst, 2)
	assert.Equal(t, "c", dst[0].ID)
	assert.Equal(t, "a", dst[1].ID)
	assert.Equal(t, "2024-03-11", dst[1].Date)
}

func TestTripService_Reorder_MalformedDate(t *testing.T) {
	trips := newSingleTripRepo(datedTrip())
	svc := newTripServiceWith(&trips.mockTripRepo, emptyCatalog())

	_, err := svc.Reorder(context.Background(), "t1", "not-a-date", 0, "2024-03-11", 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_ItemIDsComeFromGenerator(t *testing.T) {
	trips := newSingleTripRepo(domain.Trip{ID: "t1", Items: []domain.TripItem{}})
	svc := service.NewTripService(&trips.mockTripRepo, emptyCatalog(), clock.NewFixed(testClock().Now()), fixedTravel(0))
	svc.SetIDGeneratorsForTest(nil, func() string { return "item-fixed" })

	trip, err := svc.AddItem(context.Background(), "t1", "2024-03-10", "1")
	require.NoError(t, err)
	require.Len(t, trip.Items, 1)
	assert.Equal(t, "item-fixed", trip.Items[0].ID)
}
