package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hmnguyen/travel-planner/backend/internal/domain"
	"github.com/hmnguyen/travel-planner/backend/internal/service"
)

// UpdateBudgetRequest is the body of PUT /trips/{tripId}/budget.
// Omitted categories default to zero — the budget is replaced, not merged.
type UpdateBudgetRequest struct {
	Food           float64 `json:"food"`
	Accommodation  float64 `json:"accommodation"`
	Transportation float64 `json:"transportation"`
	Activities     float64 `json:"activities"`
	Other          float64 `json:"other"`
}

// BudgetSummaryResponse is the budget panel read model: stored categories
// plus every derived figure.
type BudgetSummaryResponse struct {
	Budget          domain.Budget       `json:"budget"`
	Total           float64             `json:"total"`
	Percentages     PercentagesResponse `json:"percentages"`
	DestinationCost float64             `json:"destinationCost"`
	Status          domain.BudgetStatus `json:"status"`
}

// PercentagesResponse is the per-category share of the total, rounded to
// whole percent.
type PercentagesResponse struct {
	Food           int `json:"food"`
	Accommodation  int `json:"accommodation"`
	Transportation int `json:"transportation"`
	Activities     int `json:"activities"`
	Other          int `json:"other"`
}

// GetTripBudget handles GET /trips/{tripId}/budget.
func (s *Server) GetTripBudget(w http.ResponseWriter, r *http.Request) {
	sum, err := s.trips.BudgetSummaryFor(r.Context(), chi.URLParam(r, "tripId"))
	if err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, summaryToResponse(sum))
}

// UpdateTripBudget handles PUT /trips/{tripId}/budget.
func (s *Server) UpdateTripBudget(w http.ResponseWriter, r *http.Request) {
	var req UpdateBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	sum, err := s.trips.UpdateBudget(r.Context(), chi.URLParam(r, "tripId"), domain.Budget{
		Food:           req.Food,
		Accommodation:  req.Accommodation,
		Transportation: req.Transportation,
		Activities:     req.Activities,
		Other:          req.Other,
	})
	if err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, summaryToResponse(sum))
}

// AutoAllocateTripBudget handles POST /trips/{tripId}/budget/auto-allocate.
func (s *Server) AutoAllocateTripBudget(w http.ResponseWriter, r *http.Request) {
	sum, err := s.trips.AutoAllocateBudget(r.Context(), chi.URLParam(r, "tripId"))
	if err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, summaryToResponse(sum))
}

// summaryToResponse converts a service budget summary into its response shape.
func summaryToResponse(sum service.BudgetSummary) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		Budget: sum.Budget,
		Total:  sum.Total,
		Percentages: PercentagesResponse{
			Food:           sum.Percentages.Food,
			Accommodation:  sum.Percentages.Accommodation,
			Transportation: sum.Percentages.Transportation,
			Activities:     sum.Percentages.Activities,
			Other:          sum.Percentages.Other,
		},
		DestinationCost: sum.DestinationCost,
		Status:          sum.Status,
	}
}
