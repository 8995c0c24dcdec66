package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(withGZip)
	router.Use(withBodyLimit)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		// routes without a session
		r.Group(func(r chi.Router) {
			r.With(h.withLoginRateLimit).Post("/auth/login", h.login)
			r.Post("/auth/logout", h.logout)
			r.Get("/version", h.getServerVersion)
		})

		// routes with a session
		r.Group(func(r chi.Router) {
			r.Use(h.session)

			r.Get("/auth/me", h.me)

			// kept flat: a nested Route mount answers Match for every method
			r.Post("/conversations", h.createConversation)
			r.Get("/conversations", h.listConversations)
			r.Get("/conversations/{id}", h.getConversation)
			r.Patch("/conversations/{id}", h.updateConversation)

			r.Post("/analyze", h.analyze)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// withCORS allows the configured browser origins to call the API with the
// session cookie.
func (h *Handler) withCORS() func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
