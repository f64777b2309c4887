package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/hmnguyen/travel-planner/backend/internal/domain"
)

// CreateTripRequest is the body of POST /trips. Name is optional; a blank
// name gets a server-side default.
type CreateTripRequest struct {
	Name string `json:"name"`
}

// RenameTripRequest is the body of PATCH /trips/{tripId}.
type RenameTripRequest struct {
	Name string `json:"name"`
}

// ConfirmDatesRequest is the body of PUT /trips/{tripId}/dates.
// Dates are RFC 3339 full-date values; openapi_types.Date rejects anything
// else at decode time.
type ConfirmDatesRequest struct {
	StartDate openapi_types.Date `json:"startDate"`
	EndDate   openapi_types.Date `json:"endDate"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
			return
		}
	}

	trip, err := s.trips.Create(r.Context(), req.Name)
	if err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "tripId"))
	if err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// RenameTrip handles PATCH /trips/{tripId}.
func (s *Server) RenameTrip(w http.ResponseWriter, r *http.Request) {
	var req RenameTripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	trip, err := s.trips.Rename(r.Context(), chi.URLParam(r, "tripId"), req.Name)
	if err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// DeleteTrip handles DELETE /trips/{tripId}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), chi.URLParam(r, "tripId")); err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ConfirmTripDates handles PUT /trips/{tripId}/dates.
func (s *Server) ConfirmTripDates(w http.ResponseWriter, r *http.Request) {
	var req ConfirmDatesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("startDate and endDate must be YYYY-MM-DD dates"))
		return
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("startDate and endDate are required"))
		return
	}

	trip, err := s.trips.ConfirmDates(r.Context(), chi.URLParam(r, "tripId"),
		req.StartDate.Format(domain.DateLayout), req.EndDate.Format(domain.DateLayout))
	if err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// ResetTripDates handles DELETE /trips/{tripId}/dates.
func (s *Server) ResetTripDates(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.ResetDates(r.Context(), chi.URLParam(r, "tripId"))
	if err != nil {
		s.writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}
