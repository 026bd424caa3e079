package attendance_api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ms-attendance/internal/attendance"
	"ms-attendance/internal/format"
	"ms-attendance/internal/humanitix"
	"ms-attendance/internal/logger"
	"ms-attendance/internal/utils"

	"github.com/go-chi/chi/v5"
)

// AttendanceService is implemented by *attendance.Service.
type AttendanceService interface {
	CurrentWeekSummary(ctx context.Context, eventID string) (*attendance.EventSummary, error)
	CurrentWeekEvents(ctx context.Context) (*attendance.CurrentWeekEvents, error)
	EventDetail(ctx context.Context, eventID string) (*attendance.EventDetail, error)
	RawEvent(ctx context.Context, eventID string) (json.RawMessage, error)
}

type Handler struct {
	Service AttendanceService
	Logger  *logger.Logger
}

func NewHandler(service AttendanceService, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{Service: service, Logger: log}
}

// Root is the liveness probe.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{"Hello": "World"})
}

// GetEvent returns the flattened event detail, or the upstream body verbatim
// with ?raw=true.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")

	if r.URL.Query().Get("raw") == "true" {
		raw, err := h.Service.RawEvent(r.Context(), eventID)
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(raw)
		return
	}

	detail, err := h.Service.EventDetail(r.Context(), eventID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, detail)
}

// GetEventSummary returns the current-week narrative for one event as plain text.
func (h *Handler) GetEventSummary(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")

	summary, err := h.Service.CurrentWeekSummary(r.Context(), eventID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(format.Narrative(summary)))
}

// GetEventAttendees returns the current-week summary for one event as JSON.
func (h *Handler) GetEventAttendees(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")

	summary, err := h.Service.CurrentWeekSummary(r.Context(), eventID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, summary)
}

// GetCurrentWeekEvents lists this week's events with their attendee counts.
func (h *Handler) GetCurrentWeekEvents(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.CurrentWeekEvents(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, result)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	if err := utils.WriteJSON(w, http.StatusOK, data); err != nil {
		h.Logger.Error("HTTP", fmt.Sprintf("Error encoding response: %v", err))
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var upstreamErr *humanitix.UpstreamError
	switch {
	case errors.Is(err, humanitix.ErrConfigMissing):
		utils.WriteError(w, http.StatusInternalServerError, "Humanitix API key not configured")
	case errors.As(err, &upstreamErr):
		utils.WriteError(w, http.StatusInternalServerError, upstreamErr.Error())
	default:
		h.Logger.Error("HTTP", fmt.Sprintf("Unexpected error: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Unexpected error: %v", err))
	}
}
