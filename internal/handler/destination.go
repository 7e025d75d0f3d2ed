package handler

import (
	"net/http"

	"github.com/pkordes/wanderlust/internal/domain"
)

// ListDestinations handles GET /destinations.
// Supports ?q= (name, country or city), ?filter= (all, budget, luxury,
// tropical), ?page= and ?limit= (defaults: page=1, limit=50, max=100).
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	var (
		q, filter   *string
		page, limit *int
	)
	if err := queryParams(r, queryBind{"q", &q}, queryBind{"filter", &filter}, queryBind{"page", &page}, queryBind{"limit", &limit}); err != nil {
		s.writeError(w, r, err)
		return
	}

	params := domain.NewPaginationParams(page, limit)
	res, err := s.svc.Explore.Search(r.Context(), deref(q), deref(filter), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse[domain.Destination]{
		Data: nonNil(res.Items),
		Pagination: &Pagination{
			Page:    params.Page,
			Limit:   params.Limit,
			Total:   res.Total,
			HasMore: params.HasMore(res.Total),
		},
	})
}

// GetDestination handles GET /destinations/{id}.
func (s *Server) GetDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	d, err := s.svc.Explore.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
