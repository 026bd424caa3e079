package attendance

import (
	"bytes"
	"encoding/json"
	"strings"

	"ms-attendance/internal/models"
)

// Aggregates groups ticket records by ticket type, keeping the order in which
// each type was first seen.
type Aggregates struct {
	order  []string
	byType map[string]*models.TicketTypeAggregate
}

func NewAggregates() *Aggregates {
	return &Aggregates{byType: make(map[string]*models.TicketTypeAggregate)}
}

// Aggregate folds records into per ticket type totals in a single pass.
// Quantities are summed as given and every record contributes one name.
func Aggregate(records []models.TicketRecord) *Aggregates {
	agg := NewAggregates()
	for _, record := range records {
		agg.Add(record)
	}
	return agg
}

func (a *Aggregates) Add(record models.TicketRecord) {
	bucket := a.bucket(record.TicketTypeName)
	bucket.TotalAttendees += record.Quantity
	bucket.AttendeeNames = append(bucket.AttendeeNames, AttendeeName(record.FirstName, record.LastName))
}

func (a *Aggregates) bucket(ticketType string) *models.TicketTypeAggregate {
	if bucket, ok := a.byType[ticketType]; ok {
		return bucket
	}
	bucket := &models.TicketTypeAggregate{TicketTypeName: ticketType, AttendeeNames: []string{}}
	a.byType[ticketType] = bucket
	a.order = append(a.order, ticketType)
	return bucket
}

// Merge returns a new Aggregates holding a followed by other: counts are
// summed and name lists concatenated per ticket type.
func (a *Aggregates) Merge(other *Aggregates) *Aggregates {
	merged := NewAggregates()
	for _, src := range []*Aggregates{a, other} {
		if src == nil {
			continue
		}
		for _, key := range src.order {
			from := src.byType[key]
			bucket := merged.bucket(key)
			bucket.TotalAttendees += from.TotalAttendees
			bucket.AttendeeNames = append(bucket.AttendeeNames, from.AttendeeNames...)
		}
	}
	return merged
}

// Keys returns ticket types in first-seen order.
func (a *Aggregates) Keys() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.order...)
}

func (a *Aggregates) Get(ticketType string) (models.TicketTypeAggregate, bool) {
	if a == nil {
		return models.TicketTypeAggregate{}, false
	}
	bucket, ok := a.byType[ticketType]
	if !ok {
		return models.TicketTypeAggregate{}, false
	}
	return *bucket, true
}

func (a *Aggregates) Len() int {
	if a == nil {
		return 0
	}
	return len(a.order)
}

// TotalAttendees sums the quantity of every ticket type.
func (a *Aggregates) TotalAttendees() int {
	if a == nil {
		return 0
	}
	total := 0
	for _, bucket := range a.byType {
		total += bucket.TotalAttendees
	}
	return total
}

// MarshalJSON writes a JSON object whose keys follow first-seen order.
func (a *Aggregates) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if a != nil {
		for i, key := range a.order {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			v, err := json.Marshal(a.byType[key])
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// AttendeeName joins first and last name with one space and trims the result.
func AttendeeName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
