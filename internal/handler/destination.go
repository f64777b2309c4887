package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hmnguyen/travel-planner/backend/internal/domain"
)

// DestinationRequest is the body of POST /destinations and
// PUT /destinations/{destinationId}. The ID comes from the server (create)
// or the path (update), never from the body.
type DestinationRequest struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}

// ListDestinations handles GET /destinations.
// Supports ?type=, ?minRating= and ?sort= query parameters.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	filter := domain.DestinationFilter{
		Type: domain.DestinationType(r.URL.Query().Get("type")),
		Sort: domain.DestinationSort(r.URL.Query().Get("sort")),
	}
	if raw := r.URL.Query().Get("minRating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, requestBody("minRating must be a number"))
			return
		}
		filter.MinRating = v
	}

	destinations, err := s.destinations.List(r.Context(), filter)
	if err != nil {
		s.writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, destinations)
}

// GetDestination handles GET /destinations/{destinationId}.
func (s *Server) GetDestination(w http.ResponseWriter, r *http.Request) {
	d, err := s.destinations.GetByID(r.Context(), chi.URLParam(r, "destinationId"))
	if err != nil {
		s.writeServiceError(w, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// CreateDestination handles POST /destinations.
func (s *Server) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var req DestinationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	d, err := s.destinations.Create(r.Context(), requestToDestination("", req))
	if err != nil {
		s.writeServiceError(w, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

// UpdateDestination handles PUT /destinations/{destinationId}.
func (s *Server) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	var req DestinationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	d, err := s.destinations.Update(r.Context(), requestToDestination(chi.URLParam(r, "destinationId"), req))
	if err != nil {
		s.writeServiceError(w, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// DeleteDestination handles DELETE /destinations/{destinationId}.
// Trip items referencing the deleted destination keep their reference and
// render as unknown from then on.
func (s *Server) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	if err := s.destinations.Delete(r.Context(), chi.URLParam(r, "destinationId")); err != nil {
		s.writeServiceError(w, err, "destination not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// requestToDestination converts a request body into a domain.Destination.
func requestToDestination(id string, req DestinationRequest) domain.Destination {
	return domain.Destination{
		ID:          id,
		Name:        req.Name,
		Image:       req.Image,
		Type:        domain.DestinationType(req.Type),
		Price:       req.Price,
		Rating:      req.Rating,
		Description: req.Description,
	}
}
