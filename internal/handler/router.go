package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/movieflix/movieflix-go/internal/middleware"
	"github.com/movieflix/movieflix-go/internal/model"
)

// NewRouter assembles the full HTTP surface: auth routes behind rate
// limiting, profile behind bearer auth, health check, JSON 404 for
// everything else, and panic recovery over the whole tree.
func NewRouter(auth *AuthHandler, jwtSecret string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/api/health", HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/auth/register", auth.HandleRegister)
		r.Post("/api/auth/login", auth.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(jwtSecret))
		r.Get("/api/auth/profile", auth.HandleProfile)
	})

	r.NotFound(HandleNotFound)
	r.MethodNotAllowed(HandleNotFound)

	return r
}

// HandleHealth handles GET /api/health requests.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Envelope{
		Success: true,
		Message: "Server is healthy",
		Data:    map[string]string{"timestamp": time.Now().UTC().Format(time.RFC3339)},
	})
}

// HandleNotFound answers unmatched routes with the 404 envelope carrying
// the offending path and method.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, model.Envelope{
		Success: false,
		Message: "Route not found",
		Path:    r.URL.Path,
		Method:  r.Method,
	})
}
