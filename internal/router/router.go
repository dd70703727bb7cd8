package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-health-tracker/docs"
	"pet-health-tracker/internal/domain/activities"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/middleware"
	"pet-health-tracker/internal/platform/metrics"
	"pet-health-tracker/internal/session"
	"pet-health-tracker/internal/web"
)

type Options struct {
	// Opcional: si es nil se usa un registro en memoria sin límite ni expiración.
	Sessions *session.Manager

	Logger zerolog.Logger

	CookieName   string // default "pet_session"
	CookieSecure bool
	CookieMaxAge time.Duration

	// Zona horaria para el log de actividades en HTML (default time.Local).
	DisplayLocation *time.Location
}

func NewRouter(opts Options) (http.Handler, error) {
	if opts.Sessions == nil {
		opts.Sessions = session.NewManager(session.MemoryBackend{}, session.Options{Logger: opts.Logger})
	}
	if opts.CookieName == "" {
		opts.CookieName = "pet_session"
	}

	rnd, err := web.NewRenderer(opts.DisplayLocation)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)

	// Rutas sin sesión
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Todo lo demás trabaja sobre la sesión del cookie
	r.Group(func(sr chi.Router) {
		sr.Use(middleware.SessionContext(opts.Sessions, middleware.CookieOptions{
			Name:   opts.CookieName,
			Secure: opts.CookieSecure,
			MaxAge: opts.CookieMaxAge,
		}))

		web.RegisterRoutes(sr, rnd)
		web.RegisterDraftRoutes(sr)

		pets.RegisterRoutes(sr, func(r *http.Request) (*pets.Service, bool) {
			s, ok := middleware.GetSession(r.Context())
			if !ok {
				return nil, false
			}
			return s.PetsService(), true
		})
		activities.RegisterRoutes(sr, func(r *http.Request) (*activities.Service, bool) {
			s, ok := middleware.GetSession(r.Context())
			if !ok {
				return nil, false
			}
			return s.ActivitiesService(), true
		})
	})

	return r, nil
}
