package handler

import (
	"net/http"

	"github.com/pkordes/wanderlust/internal/catalog"
	"github.com/pkordes/wanderlust/internal/domain"
)

// ListPacking handles GET /packing. Supports ?category=.
// Progress and counts always cover the whole checklist.
func (s *Server) ListPacking(w http.ResponseWriter, r *http.Request) {
	var category *string
	if err := queryParam(r, "category", &category); err != nil {
		s.writeError(w, r, err)
		return
	}
	list, err := s.svc.Packing.List(r.Context(), session(r).UserID, catalog.Facet(category))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PackingListResponse{
		Data:     nonNil(list.Items),
		Groups:   nonNil(list.Groups),
		Progress: list.Progress,
		Counts:   list.Counts,
	})
}

// AddPackingItem handles POST /packing.
func (s *Server) AddPackingItem(w http.ResponseWriter, r *http.Request) {
	var body PackingItemRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	item, err := s.svc.Packing.Add(r.Context(), domain.PackingItem{
		UserID:      session(r).UserID,
		Name:        body.Name,
		Category:    body.Category,
		IsEssential: body.IsEssential,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// TogglePackingItem handles PATCH /packing/{id} with {"is_checked": bool}.
func (s *Server) TogglePackingItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var body ToggleRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	if body.IsChecked == nil {
		s.writeError(w, r, badRequest("is_checked is required"))
		return
	}
	item, err := s.svc.Packing.Toggle(r.Context(), session(r).UserID, id, *body.IsChecked)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeletePackingItem handles DELETE /packing/{id}.
func (s *Server) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.Packing.Delete(r.Context(), session(r).UserID, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetPacking handles POST /packing/reset.
func (s *Server) ResetPacking(w http.ResponseWriter, r *http.Request) {
	n, err := s.svc.Packing.Reset(r.Context(), session(r).UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ResetResponse{Unchecked: n})
}
