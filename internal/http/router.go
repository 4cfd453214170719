package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"user-admin-service/internal/domain/user"
	"user-admin-service/internal/worker"
)

type Handler struct {
	userSvc  *user.Service
	statusCh chan<- worker.StatusEvent
	db       *sql.DB
}

func NewRouter(userSvc *user.Service, statusCh chan<- worker.StatusEvent, db *sql.DB) http.Handler {
	h := &Handler{
		userSvc:  userSvc,
		statusCh: statusCh,
		db:       db,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(RequestLogger)
	r.Use(CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/ready", h.handleReady)
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.handleListUsers)

		// PATCH is the canonical toggle verb; POST is kept as an alias for
		// clients that cannot send PATCH.
		toggleLimit := RateLimitToggles(rate.Every(time.Second), 10)
		r.With(toggleLimit).Patch("/{userId}", h.handleToggleStatus)
		r.With(toggleLimit).Post("/{userId}", h.handleToggleStatus)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "db_unavailable",
			"message": "database not configured",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "db_unavailable",
			"message": "database not ready",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
