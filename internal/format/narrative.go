// Package format renders attendance summaries as chat-friendly text.
package format

import (
	"fmt"
	"strings"

	"ms-attendance/internal/attendance"
)

// Narrative renders summary as:
//
//	🎯 {event name}
//	📅 {date}
//	🎫 Total Tickets: {n}
//
//	🎪 {ticket type} ({count} attendees):
//	   • {name}
//
// with ticket types in first-seen order and the whole message trimmed.
func Narrative(summary *attendance.EventSummary) string {
	date := "None"
	if summary.EventDate != nil {
		date = *summary.EventDate
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎯 %s\n", summary.EventName)
	fmt.Fprintf(&b, "📅 %s\n", date)
	fmt.Fprintf(&b, "🎫 Total Tickets: %d\n\n", summary.Tickets)

	for _, ticketType := range summary.Details.Keys() {
		info, _ := summary.Details.Get(ticketType)
		fmt.Fprintf(&b, "🎪 %s (%d attendees):\n", ticketType, info.TotalAttendees)
		for _, name := range info.AttendeeNames {
			fmt.Fprintf(&b, "   • %s\n", name)
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}
