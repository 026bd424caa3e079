package attendance_api

import (
	"net/http"

	"ms-attendance/internal/auth"
	"ms-attendance/internal/logger"
	"ms-attendance/internal/metrics"
	"ms-attendance/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every route. apiKey gates the event detail and narrative
// summary routes.
func NewRouter(h *Handler, apiKey string, log *logger.Logger) chi.Router {
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", h.Root)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/humanitix", func(r chi.Router) {
		r.Get("/current-week-events", h.GetCurrentWeekEvents)
		r.Get("/events/{eventId}/attendees", h.GetEventAttendees)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(apiKey, log))
			r.Get("/events/{eventId}", h.GetEvent)
			r.Get("/events/{eventId}/summary", h.GetEventSummary)
		})
	})

	return r
}
