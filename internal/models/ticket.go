package models

// TicketRecord is one ticket row from GET /v1/events/{id}/tickets.
type TicketRecord struct {
	TicketTypeName string `json:"ticketTypeName"`
	Quantity       int    `json:"number"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
}

// TicketsPage is the body of GET /v1/events/{id}/tickets.
type TicketsPage struct {
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Tickets  []TicketRecord `json:"tickets"`
}

// Attendee is one row from GET /v1/events/{id}/attendees.
type Attendee struct {
	TicketTypeName string `json:"ticketTypeName"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
}

// AttendeesPage is the body of GET /v1/events/{id}/attendees.
type AttendeesPage struct {
	Total     int        `json:"total"`
	Page      int        `json:"page"`
	PageSize  int        `json:"pageSize"`
	Attendees []Attendee `json:"attendees"`
}

// Record converts an attendee into a single-seat ticket record.
func (a Attendee) Record() TicketRecord {
	return TicketRecord{
		TicketTypeName: a.TicketTypeName,
		Quantity:       1,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
	}
}
