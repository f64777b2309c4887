package service

import (
	"context"
	"fmt"

	"github.com/hmnguyen/travel-planner/backend/internal/domain"
	"github.com/hmnguyen/travel-planner/backend/internal/planner"
)

// BudgetSummary is the read model for a trip's budget panel: the stored
// categories plus every derived figure the UI renders.
type BudgetSummary struct {
	Budget          domain.Budget
	Total           float64
	Percentages     planner.BudgetPercentages
	DestinationCost float64
	Status          domain.BudgetStatus
}

// BudgetSummaryFor computes the budget summary of a trip against the
// current catalog.
func (s *TripService) BudgetSummaryFor(ctx context.Context, tripID string) (BudgetSummary, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return BudgetSummary{}, fmt.Errorf("service.TripService.BudgetSummaryFor: %w", err)
	}

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return BudgetSummary{}, fmt.Errorf("service.TripService.BudgetSummaryFor: %w", err)
	}

	return s.summarize(trip, catalog), nil
}

// UpdateBudget replaces the trip's budget with the provided categories.
// Returns domain.ErrValidation when any category is negative; the planner
// never sees out-of-range values.
func (s *TripService) UpdateBudget(ctx context.Context, tripID string, b domain.Budget) (BudgetSummary, error) {
	if err := validateBudget(b); err != nil {
		return BudgetSummary{}, err
	}

	trip, err := s.mutate(ctx, tripID, "UpdateBudget", func(t domain.Trip) domain.Trip {
		t.Budget = b
		return t
	})
	if err != nil {
		return BudgetSummary{}, err
	}

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return BudgetSummary{}, fmt.Errorf("service.TripService.UpdateBudget: %w", err)
	}
	return s.summarize(trip, catalog), nil
}

// AutoAllocateBudget replaces the trip's budget with the fixed-proportion
// allocation derived from its current destination cost.
func (s *TripService) AutoAllocateBudget(ctx context.Context, tripID string) (BudgetSummary, error) {
	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return BudgetSummary{}, fmt.Errorf("service.TripService.AutoAllocateBudget: %w", err)
	}
	index := planner.NewCatalogIndex(catalog)

	trip, err := s.mutate(ctx, tripID, "AutoAllocateBudget", func(t domain.Trip) domain.Trip {
		t.Budget = planner.AutoAllocate(planner.DestinationCost(t, index))
		return t
	})
	if err != nil {
		return BudgetSummary{}, err
	}
	return s.summarize(trip, catalog), nil
}

// summarize derives the budget read model for a trip against a catalog
// snapshot.
func (s *TripService) summarize(trip domain.Trip, catalog []domain.Destination) BudgetSummary {
	total := planner.Total(trip.Budget)
	cost := planner.DestinationCost(trip, planner.NewCatalogIndex(catalog))
	return BudgetSummary{
		Budget:          trip.Budget,
		Total:           total,
		Percentages:     planner.Percentages(trip.Budget),
		DestinationCost: cost,
		Status:          planner.Status(total, cost),
	}
}

// validateBudget enforces the non-negativity rule on every category.
func validateBudget(b domain.Budget) error {
	categories := map[string]float64{
		"food":           b.Food,
		"accommodation":  b.Accommodation,
		"transportation": b.Transportation,
		"activities":     b.Activities,
		"other":          b.Other,
	}
	for name, v := range categories {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative", domain.ErrValidation, name)
		}
	}
	return nil
}
