package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/flowise/cycle-tracker/docs"
	"github.com/flowise/cycle-tracker/internal/api/handler"
	"github.com/flowise/cycle-tracker/internal/api/middleware"
	"github.com/flowise/cycle-tracker/internal/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	User       *handler.UserHandler
	Store      *handler.StoreHandler
	Profile    *handler.ProfileHandler
	Entry      *handler.EntryHandler
	Prediction *handler.PredictionHandler
	Insights   *handler.InsightsHandler
}

type Router struct {
	handlers       Handlers
	log            *logger.Logger
	allowedOrigins []string
}

func NewRouter(handlers Handlers, log *logger.Logger, allowedOrigins []string) *Router {
	if log == nil {
		log = logger.Nop()
	}
	return &Router{
		handlers:       handlers,
		log:            log,
		allowedOrigins: allowedOrigins,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(rt.log))
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger(rt.log))
	if len(rt.allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: rt.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	h := rt.handlers

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.User.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", h.User.GetByID)

				r.Get("/store", h.Store.Get)
				r.Delete("/store", h.Store.Clear)

				r.Get("/profile", h.Profile.Get)
				r.Put("/profile", h.Profile.Put)
				r.Patch("/profile", h.Profile.Patch)
				r.Post("/questionnaire", h.Profile.SubmitQuestionnaire)

				r.Route("/cycle-entries", func(r chi.Router) {
					r.Post("/", h.Entry.CreateCycleEntry)
					r.Get("/", h.Entry.ListCycleEntries)
				})
				r.Route("/symptom-entries", func(r chi.Router) {
					r.Post("/", h.Entry.CreateSymptomEntry)
					r.Get("/", h.Entry.ListSymptomEntries)
				})

				r.Get("/calendar", h.Prediction.GetCalendar)
				r.Get("/calendar/{date}", h.Prediction.GetDay)
				r.Get("/dashboard", h.Prediction.GetDashboard)

				r.Route("/insights", func(r chi.Router) {
					r.Post("/", h.Insights.Generate)
					r.Get("/", h.Insights.List)
					r.Post("/feedback", h.Insights.PostFeedback)
				})
			})
		})
	})

	return r
}
