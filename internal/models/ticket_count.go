package models

import "time"

// TicketTypeAggregate is the per ticket type roll-up of ticket records.
type TicketTypeAggregate struct {
	TicketTypeName string   `json:"-"`
	TotalAttendees int      `json:"total_attendees"`
	AttendeeNames  []string `json:"attendee_names"`
}

// WeekWindow is the Monday to Sunday span containing a given instant.
type WeekWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
