package attendance

import (
	"time"

	"ms-attendance/internal/models"
)

// EventSummary is the current-week roll-up of one event.
type EventSummary struct {
	EventID        string            `json:"event_id"`
	EventName      string            `json:"event_name"`
	EventDate      *string           `json:"event_date"`
	OccurrenceID   string            `json:"occurrence_id,omitempty"`
	Week           models.WeekWindow `json:"week"`
	Tickets        int               `json:"tickets"`
	TotalAttendees int               `json:"total_attendees"`
	Details        *Aggregates       `json:"details"`
}

// OccurrenceDetail is a flattened occurrence in EventDetail.
type OccurrenceDetail struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Deleted   bool      `json:"deleted"`
	Disabled  bool      `json:"disabled"`
}

// EventDetail is the flattened view of an event with no week filtering.
type EventDetail struct {
	EventID        string             `json:"event_id"`
	EventName      string             `json:"event_name"`
	Timezone       string             `json:"timezone"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        time.Time          `json:"end_date"`
	Deleted        bool               `json:"deleted"`
	Occurrences    []OccurrenceDetail `json:"occurrences"`
	TotalAttendees int                `json:"total_attendees"`
	TicketTypes    *Aggregates        `json:"ticket_types"`
}

// WeekEventCount is one entry of CurrentWeekEvents.
type WeekEventCount struct {
	EventID        string      `json:"event_id"`
	EventName      string      `json:"event_name"`
	StartDate      time.Time   `json:"start_date"`
	EndDate        time.Time   `json:"end_date"`
	TotalAttendees int         `json:"total_attendees"`
	TicketTypes    *Aggregates `json:"ticket_types"`
}

// CurrentWeekEvents lists the events active in the current week, in
// upstream order.
type CurrentWeekEvents struct {
	Week   models.WeekWindow `json:"week"`
	Events []WeekEventCount  `json:"events"`
}
