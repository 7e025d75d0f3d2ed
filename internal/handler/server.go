// Package handler implements the HTTP handlers for the Wanderlust API.
// All handlers are methods on Server. Methods are split into screen-specific
// files (trip.go, diary.go, etc.) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/wanderlust/internal/auth"
	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/middleware"
	"github.com/pkordes/wanderlust/internal/service"
)

// The interfaces below are the business operations each screen depends on.
// Defining them here, in the consumer package, lets handler tests inject a
// mock without touching the database or service layer.

type AuthServicer interface {
	SignUp(ctx context.Context, email, password, confirm string) (auth.Session, error)
	SignIn(ctx context.Context, email, password string) (auth.Session, error)
	SignOut(ctx context.Context, sess auth.Session) error
	Authenticate(ctx context.Context, token string) (auth.Session, error)
}

type ExploreServicer interface {
	Search(ctx context.Context, query, preset string, p domain.PaginationParams) (service.DestinationPage, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Destination, error)
}

type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, userID uuid.UUID, q service.TripQuery) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type DiaryServicer interface {
	Create(ctx context.Context, e domain.DiaryEntry) (domain.DiaryEntry, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.DiaryEntry, error)
	List(ctx context.Context, userID uuid.UUID, q service.DiaryQuery) ([]domain.DiaryEntry, error)
	Update(ctx context.Context, e domain.DiaryEntry) (domain.DiaryEntry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID) (service.DiaryStats, error)
}

type PackingServicer interface {
	Add(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)
	List(ctx context.Context, userID uuid.UUID, category *string) (service.PackingList, error)
	Toggle(ctx context.Context, userID, id uuid.UUID, checked bool) (domain.PackingItem, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Reset(ctx context.Context, userID uuid.UUID) (int64, error)
}

type ProfileServicer interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	Update(ctx context.Context, p domain.Profile) (domain.Profile, error)
	Stats(ctx context.Context, userID uuid.UUID) (domain.Stats, error)
}

type DashboardServicer interface {
	Get(ctx context.Context, userID uuid.UUID) (service.Dashboard, error)
}

type ExportServicer interface {
	Export(ctx context.Context, userID uuid.UUID) ([]domain.ExportRow, error)
}

// Services bundles every dependency of the Server. A nil service leaves its
// routes unregistered, which keeps single-screen handler tests small.
type Services struct {
	Auth      AuthServicer
	Explore   ExploreServicer
	Trips     TripServicer
	Diary     DiaryServicer
	Packing   PackingServicer
	Profile   ProfileServicer
	Dashboard DashboardServicer
	Export    ExportServicer
}

// Server holds the handler dependencies.
type Server struct {
	svc Services
	log *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svc Services, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{svc: svc, log: log}
}

// Routes returns the API router. Everything except health, the OpenAPI
// document and the auth endpoints requires a bearer session.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	if s.svc.Auth == nil {
		return r
	}
	r.Post("/auth/signup", s.SignUp)
	r.Post("/auth/signin", s.SignIn)

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewRequireSession(s.svc.Auth, s.writeError))

		r.Post("/auth/signout", s.SignOut)

		if s.svc.Explore != nil {
			r.Get("/destinations", s.ListDestinations)
			r.Get("/destinations/{id}", s.GetDestination)
		}
		if s.svc.Trips != nil {
			r.Get("/trips", s.ListTrips)
			r.Post("/trips", s.CreateTrip)
			r.Get("/trips/{id}", s.GetTrip)
			r.Put("/trips/{id}", s.UpdateTrip)
			r.Delete("/trips/{id}", s.DeleteTrip)
		}
		if s.svc.Diary != nil {
			r.Get("/diary", s.ListDiary)
			r.Post("/diary", s.CreateDiaryEntry)
			r.Get("/diary/stats", s.GetDiaryStats)
			r.Get("/diary/{id}", s.GetDiaryEntry)
			r.Put("/diary/{id}", s.UpdateDiaryEntry)
			r.Delete("/diary/{id}", s.DeleteDiaryEntry)
		}
		if s.svc.Packing != nil {
			r.Get("/packing", s.ListPacking)
			r.Post("/packing", s.AddPackingItem)
			r.Post("/packing/reset", s.ResetPacking)
			r.Patch("/packing/{id}", s.TogglePackingItem)
			r.Delete("/packing/{id}", s.DeletePackingItem)
		}
		if s.svc.Profile != nil {
			r.Get("/profile", s.GetProfile)
			r.Put("/profile", s.UpdateProfile)
			r.Get("/profile/stats", s.GetProfileStats)
		}
		if s.svc.Dashboard != nil {
			r.Get("/dashboard", s.GetDashboard)
		}
		if s.svc.Export != nil {
			r.Get("/export", s.GetExport)
		}
	})
	return r
}

// session returns the caller's session. Routes behind NewRequireSession always
// have one.
func session(r *http.Request) auth.Session {
	sess, _ := auth.FromContext(r.Context())
	return sess
}
