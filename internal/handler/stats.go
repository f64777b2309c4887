package handler

import (
	"net/http"
	"strconv"
)

// GetMonthlyTripCounts handles GET /stats/monthly-trips.
// Supports ?months= for the window size; defaults are applied by the service.
func (s *Server) GetMonthlyTripCounts(w http.ResponseWriter, r *http.Request) {
	months, ok := intQuery(w, r, "months")
	if !ok {
		return
	}

	counts, err := s.stats.MonthlyTripCounts(r.Context(), months)
	if err != nil {
		s.writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// GetPopularDestinations handles GET /stats/popular-destinations.
// Supports ?limit=; defaults are applied by the service.
func (s *Server) GetPopularDestinations(w http.ResponseWriter, r *http.Request) {
	limit, ok := intQuery(w, r, "limit")
	if !ok {
		return
	}

	popular, err := s.stats.PopularDestinations(r.Context(), limit)
	if err != nil {
		s.writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, popular)
}

// GetTopRatedDestinations handles GET /stats/top-rated-destinations.
// Supports ?limit=; defaults are applied by the service.
func (s *Server) GetTopRatedDestinations(w http.ResponseWriter, r *http.Request) {
	limit, ok := intQuery(w, r, "limit")
	if !ok {
		return
	}

	top, err := s.stats.TopRatedDestinations(r.Context(), limit)
	if err != nil {
		s.writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, top)
}

// intQuery parses an optional integer query parameter. A missing parameter
// yields zero, which services treat as "use the default". On a malformed
// value it writes a 422 and reports false.
func intQuery(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(name+" must be an integer"))
		return 0, false
	}
	return v, true
}
