package service_test

import (
	"context"
	"time"

	"github.com/hmnguyen/travel-planner/backend/internal/clock"
	"github.com/hmnguyen/travel-planner/backend/internal/domain"
	"github.com/hmnguyen/travel-planner/backend/internal/repo"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.
type mockTripRepo struct {
	list    func(ctx context.Context) ([]domain.Trip, error)
	getByID func(ctx context.Context, id string) (domain.Trip, error)
	save    func(ctx context.Context, trip domain.Trip) error
	delete  func(ctx context.Context, id string) error
}

func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) { return m.list(ctx) }
func (m *mockTripRepo) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) Save(ctx context.Context, trip domain.Trip) error { return m.save(ctx, trip) }
func (m *mockTripRepo) Delete(ctx context.Context, id string) error      { return m.delete(ctx, id) }

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// mockDestinationRepo is a hand-written test double for repo.DestinationRepo.
type mockDestinationRepo struct {
	list        func(ctx context.Context) ([]domain.Destination, error)
	getByID     func(ctx context.Context, id string) (domain.Destination, error)
	save        func(ctx context.Context, d domain.Destination) error
	delete      func(ctx context.Context, id string) error
	seedIfEmpty func(ctx context.Context, seed []domain.Destination) error
}

func (m *mockDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	return m.list(ctx)
}
func (m *mockDestinationRepo) GetByID(ctx context.Context, id string) (domain.Destination, error) {
	return m.getByID(ctx, id)
}
func (m *mockDestinationRepo) Save(ctx context.Context, d domain.Destination) error {
	return m.save(ctx, d)
}
func (m *mockDestinationRepo) Delete(ctx context.Context, id string) error { return m.delete(ctx, id) }
func (m *mockDestinationRepo) SeedIfEmpty(ctx context.Context, seed []domain.Destination) error {
	return m.seedIfEmpty(ctx, seed)
}

var _ repo.DestinationRepo = (*mockDestinationRepo)(nil)

// singleTripRepo serves one trip from memory and records the last save —
// the common setup for mutation tests.
type singleTripRepo struct {
	mockTripRepo
	saved *domain.Trip
}

func newSingleTripRepo(trip domain.Trip) *singleTripRepo {
	r := &singleTripRepo{}
	r.getByID = func(_ context.Context, id string) (domain.Trip, error) {
		if id != trip.ID {
			return domain.Trip{}, domain.ErrNotFound
		}
		return trip, nil
	}
	r.save = func(_ context.Context, t domain.Trip) error {
		r.saved = &t
		return nil
	}
	return r
}

// emptyCatalog is a destination repo whose List returns no entries.
func emptyCatalog() *mockDestinationRepo {
	return &mockDestinationRepo{
		list: func(context.Context) ([]domain.Destination, error) {
			return []domain.Destination{}, nil
		},
	}
}

// fixedCatalog serves the given entries from List.
func fixedCatalog(entries ...domain.Destination) *mockDestinationRepo {
	return &mockDestinationRepo{
		list: func(context.Context) ([]domain.Destination, error) { return entries, nil },
	}
}

// testClock is an arbitrary but fixed instant used wherever the service
// needs a clock and the test doesn't care about time.
func testClock() clock.Fixed {
	return clock.NewFixed(time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC))
}

// fixedTravel is a TravelTimeEstimator that always returns the same minutes.
type fixedTravel int

func (f fixedTravel) Minutes(_, _ string) int { return int(f) }
