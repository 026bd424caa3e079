package models

import (
	"time"
)

// Event is a Humanitix event as returned by GET /v1/events/{id}. Fields
// missing from the payload decode to their zero value.
type Event struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	Timezone    string       `json:"timezone,omitempty"`
	StartDate   time.Time    `json:"startDate"`
	EndDate     time.Time    `json:"endDate"`
	Deleted     bool         `json:"deleted,omitempty"`
	Occurrences []Occurrence `json:"dates"`
}

// Occurrence is one dated instance of a recurring event (an "event date"
// upstream).
type Occurrence struct {
	ID        string    `json:"_id"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Deleted   bool      `json:"deleted,omitempty"`
	Disabled  bool      `json:"disabled,omitempty"`
}

// Eligible reports whether the occurrence may be matched against a week.
func (o Occurrence) Eligible() bool {
	return !o.Deleted && !o.Disabled
}

// EventsPage is the body of GET /v1/events.
type EventsPage struct {
	Total    int     `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
	Events   []Event `json:"events"`
}
