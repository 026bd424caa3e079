// Package week maps instants onto Monday to Sunday windows in a fixed zone
// and picks the event occurrence that falls in them.
package week

import (
	"time"

	"ms-attendance/internal/models"
)

const dateLayout = "January 02, 2006"

// Resolve returns the window containing now: Start is local midnight of the
// Monday on or before now, End is Start plus six days.
func Resolve(now time.Time, loc *time.Location) models.WeekWindow {
	local := now.In(loc)
	offset := (int(local.Weekday()) + 6) % 7 // Monday = 0
	start := time.Date(local.Year(), local.Month(), local.Day()-offset, 0, 0, 0, 0, loc)
	end := time.Date(start.Year(), start.Month(), start.Day()+6, 0, 0, 0, 0, loc)
	return models.WeekWindow{Start: start, End: end}
}

// SelectOccurrence returns the last eligible occurrence overlapping window,
// in upstream order. A later match replaces an earlier one.
func SelectOccurrence(event *models.Event, window models.WeekWindow, loc *time.Location) (*models.Occurrence, bool) {
	if event == nil || event.Deleted {
		return nil, false
	}

	var selected *models.Occurrence
	for i := range event.Occurrences {
		occ := &event.Occurrences[i]
		if !occ.Eligible() {
			continue
		}
		if overlaps(occ.StartDate, occ.EndDate, window, loc) {
			selected = occ
		}
	}
	return selected, selected != nil
}

// EventInWeek compares the event-level dates against window by calendar day.
// An event without an end date is treated as a single-day event.
func EventInWeek(event models.Event, window models.WeekWindow, loc *time.Location) bool {
	if event.Deleted || event.StartDate.IsZero() {
		return false
	}
	end := event.EndDate
	if end.IsZero() {
		end = event.StartDate
	}
	return overlaps(event.StartDate, end, window, loc)
}

// FormatDate renders t in loc as "February 28, 2025".
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateLayout)
}

// overlaps compares at date granularity, so the window's last day counts in
// full and both ends are inclusive.
func overlaps(start, end time.Time, window models.WeekWindow, loc *time.Location) bool {
	return civilDay(start, loc) <= civilDay(window.End, loc) &&
		civilDay(end, loc) >= civilDay(window.Start, loc)
}

func civilDay(t time.Time, loc *time.Location) int {
	y, m, d := t.In(loc).Date()
	return y*10000 + int(m)*100 + d
}
