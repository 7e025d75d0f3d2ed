package handler

import (
	"net/http"

	"github.com/pkordes/wanderlust/internal/catalog"
	"github.com/pkordes/wanderlust/internal/service"
)

// CreateDiaryEntry handles POST /diary.
func (s *Server) CreateDiaryEntry(w http.ResponseWriter, r *http.Request) {
	var body DiaryEntryRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	created, err := s.svc.Diary.Create(r.Context(), body.toDomain(session(r).UserID))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entryToResponse(created))
}

// ListDiary handles GET /diary. Supports ?q= and ?mood=.
func (s *Server) ListDiary(w http.ResponseWriter, r *http.Request) {
	var q, mood *string
	if err := queryParams(r, queryBind{"q", &q}, queryBind{"mood", &mood}); err != nil {
		s.writeError(w, r, err)
		return
	}
	entries, err := s.svc.Diary.List(r.Context(), session(r).UserID, service.DiaryQuery{
		Text: deref(q),
		Mood: catalog.Facet(mood),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse[DiaryEntry]{Data: entriesToResponse(entries)})
}

// GetDiaryStats handles GET /diary/stats.
func (s *Server) GetDiaryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.Diary.Stats(r.Context(), session(r).UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetDiaryEntry handles GET /diary/{id}.
func (s *Server) GetDiaryEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	e, err := s.svc.Diary.GetByID(r.Context(), session(r).UserID, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entryToResponse(e))
}

// UpdateDiaryEntry handles PUT /diary/{id}.
func (s *Server) UpdateDiaryEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var body DiaryEntryRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	e := body.toDomain(session(r).UserID)
	e.ID = id

	updated, err := s.svc.Diary.Update(r.Context(), e)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entryToResponse(updated))
}

// DeleteDiaryEntry handles DELETE /diary/{id}.
func (s *Server) DeleteDiaryEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.Diary.Delete(r.Context(), session(r).UserID, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
