package handler

import (
	"net/http"

	"github.com/pkordes/wanderlust/internal/catalog"
	"github.com/pkordes/wanderlust/internal/service"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body TripRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	created, err := s.svc.Trips.Create(r.Context(), body.toDomain(session(r).UserID))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?q= (title or destination) and ?status= (planning, active,
// completed; "all" or empty for every status).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	var q, status *string
	if err := queryParams(r, queryBind{"q", &q}, queryBind{"status", &status}); err != nil {
		s.writeError(w, r, err)
		return
	}
	trips, err := s.svc.Trips.List(r.Context(), session(r).UserID, service.TripQuery{
		Text:   deref(q),
		Status: catalog.Facet(status),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse[Trip]{Data: tripsToResponse(trips)})
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	trip, err := s.svc.Trips.GetByID(r.Context(), session(r).UserID, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var body TripRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	trip := body.toDomain(session(r).UserID)
	trip.ID = id

	updated, err := s.svc.Trips.Update(r.Context(), trip)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.Trips.Delete(r.Context(), session(r).UserID, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
