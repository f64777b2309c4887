// Package handler implements the HTTP handlers for the Travel Planner API.
// All handlers are methods on Server; methods are split into domain-specific
// files (trip.go, itinerary.go, budget.go, destination.go, stats.go) but all
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/hmnguyen/travel-planner/backend/internal/domain"
	"github.com/hmnguyen/travel-planner/backend/internal/planner"
	"github.com/hmnguyen/travel-planner/backend/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, name string) (domain.Trip, error)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Rename(ctx context.Context, id, name string) (domain.Trip, error)
	Delete(ctx context.Context, id string) error
	ConfirmDates(ctx context.Context, id, startDate, endDate string) (domain.Trip, error)
	ResetDates(ctx context.Context, id string) (domain.Trip, error)

	Days(ctx context.Context, tripID string) ([]service.Day, error)
	AddItem(ctx context.Context, tripID, date, destinationID string) (domain.Trip, error)
	RemoveItem(ctx context.Context, tripID, itemID string) (domain.Trip, error)
	MoveItem(ctx context.Context, tripID, itemID string, dir planner.Direction) (domain.Trip, error)
	Reorder(ctx context.Context, tripID, sourceDate string, sourceIndex int, destDate string, destIndex int) (domain.Trip, error)

	BudgetSummaryFor(ctx context.Context, tripID string) (service.BudgetSummary, error)
	UpdateBudget(ctx context.Context, tripID string, b domain.Budget) (service.BudgetSummary, error)
	AutoAllocateBudget(ctx context.Context, tripID string) (service.BudgetSummary, error)
}

// DestinationServicer defines the catalog operations the destination
// handlers depend on.
type DestinationServicer interface {
	List(ctx context.Context, filter domain.DestinationFilter) ([]domain.Destination, error)
	GetByID(ctx context.Context, id string) (domain.Destination, error)
	Create(ctx context.Context, d domain.Destination) (domain.Destination, error)
	Update(ctx context.Context, d domain.Destination) (domain.Destination, error)
	Delete(ctx context.Context, id string) error
}

// StatsServicer defines the statistics operations the stats handlers
// depend on.
type StatsServicer interface {
	MonthlyTripCounts(ctx context.Context, windowMonths int) ([]domain.MonthCount, error)
	PopularDestinations(ctx context.Context, limit int) ([]domain.PopularDestination, error)
	TopRatedDestinations(ctx context.Context, limit int) ([]domain.Destination, error)
}

// Server holds the service dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips        TripServicer
	destinations DestinationServicer
	stats        StatsServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, destinations DestinationServicer, stats StatsServicer) *Server {
	return &Server{trips: trips, destinations: destinations, stats: stats}
}

// Routes returns the API router with every endpoint mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)

		r.Route("/{tripId}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Patch("/", s.RenameTrip)
			r.Delete("/", s.DeleteTrip)

			r.Put("/dates", s.ConfirmTripDates)
			r.Delete("/dates", s.ResetTripDates)

			r.Get("/days", s.ListTripDays)
			r.Post("/items", s.AddTripItem)
			r.Post("/items/reorder", s.ReorderTripItems)
			r.Delete("/items/{itemId}", s.RemoveTripItem)
			r.Post("/items/{itemId}/move", s.MoveTripItem)

			r.Get("/budget", s.GetTripBudget)
			r.Put("/budget", s.UpdateTripBudget)
			r.Post("/budget/auto-allocate", s.AutoAllocateTripBudget)
		})
	})

	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", s.ListDestinations)
		r.Post("/", s.CreateDestination)
		r.Get("/{destinationId}", s.GetDestination)
		r.Put("/{destinationId}", s.UpdateDestination)
		r.Delete("/{destinationId}", s.DeleteDestination)
	})

	r.Route("/stats", func(r chi.Router) {
		r.Get("/monthly-trips", s.GetMonthlyTripCounts)
		r.Get("/popular-destinations", s.GetPopularDestinations)
		r.Get("/top-rated-destinations", s.GetTopRatedDestinations)
	})

	return r
}
