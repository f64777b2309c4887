package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/hmnguyen/travel-planner/backend/internal/domain"
	"github.com/hmnguyen/travel-planner/backend/internal/handler"
	"github.com/hmnguyen/travel-planner/backend/internal/planner"
	"github.com/hmnguyen/travel-planner/backend/internal/service"

	"github.com/stretchr/testify/require"
)

// ---- mock servicers ---------------------------------------------------------

// mockTripServicer is a function-field test double for handler.TripServicer.
// Tests set only the methods they exercise; calling an unset method panics,
// which is the desired failure mode for an unexpected call.
type mockTripServicer struct {
	create       func(ctx context.Context, name string) (domain.Trip, error)
	getByID      func(ctx context.Context, id string) (domain.Trip, error)
	list         func(ctx context.Context) ([]domain.Trip, error)
	rename       func(ctx context.Context, id, name string) (domain.Trip, error)
	delete       func(ctx context.Context, id string) error
	confirmDates func(ctx context.Context, id, startDate, endDate string) (domain.Trip, error)
	resetDates   func(ctx context.Context, id string) (domain.Trip, error)

	days       func(ctx context.Context, tripID string) ([]service.Day, error)
	addItem    func(ctx context.Context, tripID, date, destinationID string) (domain.Trip, error)
	removeItem func(ctx context.Context, tripID, itemID string) (domain.Trip, error)
	moveItem   func(ctx context.Context, tripID, itemID string, dir planner.Direction) (domain.Trip, error)
	reorder    func(ctx context.Context, tripID, sourceDate string, sourceIndex int, destDate string, destIndex int) (domain.Trip, error)

	budgetSummaryFor   func(ctx context.Context, tripID string) (service.BudgetSummary, error)
	updateBudget       func(ctx context.Context, tripID string, b domain.Budget) (service.BudgetSummary, error)
	autoAllocateBudget func(ctx context.Context, tripID string) (service.BudgetSummary, error)
}

func (m *mockTripServicer) Create(ctx context.Context, name string) (domain.Trip, error) {
	return m.create(ctx, name)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) { return m.list(ctx) }
func (m *mockTripServicer) Rename(ctx context.Context, id, name string) (domain.Trip, error) {
	return m.rename(ctx, id, name)
}
func (m *mockTripServicer) Delete(ctx context.Context, id string) error { return m.delete(ctx, id) }
func (m *mockTripServicer) ConfirmDates(ctx context.Context, id, startDate, endDate string) (domain.Trip, error) {
	return m.confirmDates(ctx, id, startDate, endDate)
}
func (m *mockTripServicer) ResetDates(ctx context.Context, id string) (domain.Trip, error) {
	return m.resetDates(ctx, id)
}
func (m *mockTripServicer) Days(ctx context.Context, tripID string) ([]service.Day, error) {
	return m.days(ctx, tripID)
}
func (m *mockTripServicer) AddItem(ctx context.Context, tripID, date, destinationID string) (domain.Trip, error) {
	return m.addItem(ctx, tripID, date, destinationID)
}
func (m *mockTripServicer) RemoveItem(ctx context.Context, tripID, itemID string) (domain.Trip, error) {
	return m.removeItem(ctx, tripID, itemID)
}
func (m *mockTripServicer) MoveItem(ctx context.Context, tripID, itemID string, dir planner.Direction) (domain.Trip, error) {
	return m.moveItem(ctx, tripID, itemID, dir)
}
func (m *mockTripServicer) Reorder(ctx context.Context, tripID, sourceDate string, sourceIndex int, destDate string, destIndex int) (domain.Trip, error) {
	return m.reorder(ctx, tripID, sourceDate, sourceIndex, destDate, destIndex)
}
func (m *mockTripServicer) BudgetSummaryFor(ctx context.Context, tripID string) (service.BudgetSummary, error) {
	return m.budgetSummaryFor(ctx, tripID)
}
func (m *mockTripServicer) UpdateBudget(ctx context.Context, tripID string, b domain.Budget) (service.BudgetSummary, error) {
	return m.updateBudget(ctx, tripID, b)
}
func (m *mockTripServicer) AutoAllocateBudget(ctx context.Context, tripID string) (service.BudgetSummary, error) {
	return m.autoAllocateBudget(ctx, tripID)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

// mockDestinationServicer is a function-field test double for
// handler.DestinationServicer.
type mockDestinationServicer struct {
	list    func(ctx context.Context, filter domain.DestinationFilter) ([]domain.Destination, error)
	getByID func(ctx context.Context, id string) (domain.Destination, error)
	create  func(ctx context.Context, d domain.Destination) (domain.Destination, error)
	update  func(ctx context.Context, d domain.Destination) (domain.Destination, error)
	delete  func(ctx context.Context, id string) error
}

func (m *mockDestinationServicer) List(ctx context.Context, filter domain.DestinationFilter) ([]domain.Destination, error) {
	return m.list(ctx, filter)
}
func (m *mockDestinationServicer) GetByID(ctx context.Context, id string) (domain.Destination, error) {
	return m.getByID(ctx, id)
}
func (m *mockDestinationServicer) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	return m.create(ctx, d)
}
func (m *mockDestinationServicer) Update(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	return m.update(ctx, d)
}
func (m *mockDestinationServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ handler.DestinationServicer = (*mockDestinationServicer)(nil)

// mockStatsServicer is a function-field test double for handler.StatsServicer.
type mockStatsServicer struct {
	monthly  func(ctx context.Context, windowMonths int) ([]domain.MonthCount, error)
	popular  func(ctx context.Context, limit int) ([]domain.PopularDestination, error)
	topRated func(ctx context.Context, limit int) ([]domain.Destination, error)
}

func (m *mockStatsServicer) MonthlyTripCounts(ctx context.Context, windowMonths int) ([]domain.MonthCount, error) {
	return m.monthly(ctx, windowMonths)
}
func (m *mockStatsServicer) PopularDestinations(ctx context.Context, limit int) ([]domain.PopularDestination, error) {
	return m.popular(ctx, limit)
}
func (m *mockStatsServicer) TopRatedDestinations(ctx context.Context, limit int) ([]domain.Destination, error) {
	return m.topRated(ctx, limit)
}

var _ handler.StatsServicer = (*mockStatsServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server and returns its router.
// Pass nil for servicers the test does not use.
func newHTTPHandler(trips handler.TripServicer, destinations handler.DestinationServicer, stats handler.StatsServicer) http.Handler {
	return handler.NewServer(trips, destinations, stats).Routes()
}

// jsonBody marshals v for use as a request body.
func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// decodeBody parses a response body into T.
func decodeBody[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:        "trip-1",
		Name:      "Spring Break",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Items: []domain.TripItem{
			{ID: "item-1", DestinationID: "1", Date: "2024-03-10", Order: 0},
		},
	}
}
