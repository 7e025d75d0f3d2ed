package handler

import (
	"net/http"

	"github.com/pkordes/wanderlust/internal/domain"
)

// GetProfile handles GET /profile.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Profile.Get(r.Context(), session(r).UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdateProfile handles PUT /profile.
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var body ProfileRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.svc.Profile.Update(r.Context(), domain.Profile{
		UserID:               session(r).UserID,
		DisplayName:          body.DisplayName,
		AvatarURL:            body.AvatarURL,
		TravelStyle:          body.TravelStyle,
		PreferredBudgetRange: body.PreferredBudgetRange,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetProfileStats handles GET /profile/stats.
func (s *Server) GetProfileStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.Profile.Stats(r.Context(), session(r).UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetDashboard handles GET /dashboard.
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.svc.Dashboard.Get(r.Context(), session(r).UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DashboardResponse{
		Stats:         d.Stats,
		UpcomingTrips: tripsToResponse(d.UpcomingTrips),
		RecentEntries: entriesToResponse(d.RecentEntries),
	})
}
