package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/hmnguyen/travel-planner/backend/internal/domain"
	"github.com/hmnguyen/travel-planner/backend/internal/planner"
	"github.com/hmnguyen/travel-planner/backend/internal/service"
)

// AddItemRequest is the body of POST /trips/{tripId}/items.
type AddItemRequest struct {
	Date          openapi_types.Date `json:"date"`
	DestinationID string             `json:"destinationId"`
}

// MoveItemRequest is the body of POST /trips/{tripId}/items/{itemId}/move.
type MoveItemRequest struct {
	Direction string `json:"direction"` // "up" or "down"
}

// ReorderRequest is the body of POST /trips/{tripId}/items/reorder.
// Indexes are positions within the day's display sequence, zero-based.
type ReorderRequest struct {
	SourceDate  openapi_types.Date `json:"sourceDate"`
	SourceIndex int                `json:"sourceIndex"`
	DestDate    openapi_types.Date `json:"destDate"`
	DestIndex   int                `json:"destIndex"`
}

// DayItemResponse is one itinerary entry in the day view response.
type DayItemResponse struct {
	ID                        string              `json:"id"`
	DestinationID             string              `json:"destinationId"`
	Date                      string              `json:"date"`
	Order                     int                 `json:"order"`
	Destination               *domain.Destination `json:"destination,omitempty"`
	TravelMinutesFromPrevious *int                `json:"travelMinutesFromPrevious,omitempty"`
}

// DayResponse is one calendar date of the confirmed range with its items.
type DayResponse struct {
	Date  string            `json:"date"`
	Items []DayItemResponse `json:"items"`
}

// ListTripDays handles GET /trips/{tripId}/days.
// Returns an empty array while the trip's dates are unconfirmed.
func (s *Server) ListTripDays(w http.ResponseWriter, r *http.Request) {
	days, err := s.trips.Days(r.Context(), chi.URLParam(r, "tripId"))
	if err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}

	resp := make([]DayResponse, len(days))
	for i, d := range days {
		resp[i] = dayToResponse(d)
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddTripItem handles POST /trips/{tripId}/items.
func (s *Server) AddTripItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("date must be a YYYY-MM-DD date"))
		return
	}
	if req.Date.IsZero() {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("date is required"))
		return
	}

	trip, err := s.trips.AddItem(r.Context(), chi.URLParam(r, "tripId"),
		req.Date.Format(domain.DateLayout), req.DestinationID)
	if err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

// RemoveTripItem handles DELETE /trips/{tripId}/items/{itemId}.
// Removing an unknown item succeeds with the unchanged trip.
func (s *Server) RemoveTripItem(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveItem(r.Context(), chi.URLParam(r, "tripId"), chi.URLParam(r, "itemId"))
	if err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// MoveTripItem handles POST /trips/{tripId}/items/{itemId}/move.
func (s *Server) MoveTripItem(w http.ResponseWriter, r *http.Request) {
	var req MoveItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	trip, err := s.trips.MoveItem(r.Context(), chi.URLParam(r, "tripId"),
		chi.URLParam(r, "itemId"), planner.Direction(req.Direction))
	if err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// ReorderTripItems handles POST /trips/{tripId}/items/reorder.
func (s *Server) ReorderTripItems(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("sourceDate and destDate must be YYYY-MM-DD dates"))
		return
	}
	if req.SourceDate.IsZero() || req.DestDate.IsZero() {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("sourceDate and destDate are required"))
		return
	}

	trip, err := s.trips.Reorder(r.Context(), chi.URLParam(r, "tripId"),
		req.SourceDate.Format(domain.DateLayout), req.SourceIndex,
		req.DestDate.Format(domain.DateLayout), req.DestIndex)
	if err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// dayToResponse converts a service day view into its response shape.
func dayToResponse(d service.Day) DayResponse {
	resp := DayResponse{Date: d.Date, Items: make([]DayItemResponse, len(d.Items))}
	for i, it := range d.Items {
		resp.Items[i] = DayItemResponse{
			ID:                        it.ID,
			DestinationID:             it.DestinationID,
			Date:                      it.Date,
			Order:                     it.Order,
			Destination:               it.Destination,
			TravelMinutesFromPrevious: it.TravelMinutesFromPrevious,
		}
	}
	return resp
}
