package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ms-attendance/internal/logger"
	"ms-attendance/internal/models"
	"ms-attendance/internal/utils"
	"ms-attendance/internal/week"
)

// Upstream is the subset of the Humanitix client the service needs.
type Upstream interface {
	FetchEvent(ctx context.Context, eventID string) (*models.Event, error)
	FetchEventRaw(ctx context.Context, eventID string) (json.RawMessage, error)
	FetchEvents(ctx context.Context) ([]models.Event, error)
	FetchEventTickets(ctx context.Context, eventID, occurrenceID string) (int, []models.TicketRecord, error)
	FetchEventAttendees(ctx context.Context, eventID string) (int, []models.TicketRecord, error)
}

// Service composes upstream fetches, week resolution and aggregation. It
// holds no per-request state.
type Service struct {
	Upstream Upstream
	Clock    utils.Clock
	Location *time.Location
	Logger   *logger.Logger
}

func NewService(upstream Upstream, clock utils.Clock, loc *time.Location, log *logger.Logger) *Service {
	if clock == nil {
		clock = utils.SystemClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		Upstream: upstream,
		Clock:    clock,
		Location: loc,
		Logger:   log,
	}
}

// CurrentWeek returns the window containing the service clock's now.
func (s *Service) CurrentWeek() models.WeekWindow {
	return week.Resolve(s.Clock.Now(), s.Location)
}

// CurrentWeekSummary aggregates ticket sales of the event's occurrence in the
// current week. When no occurrence matches, the summary has no date, zero
// tickets and no details, and no ticket request is made.
func (s *Service) CurrentWeekSummary(ctx context.Context, eventID string) (*EventSummary, error) {
	event, err := s.Upstream.FetchEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	window := s.CurrentWeek()
	summary := &EventSummary{
		EventID:   eventID,
		EventName: event.Name,
		Week:      window,
		Details:   NewAggregates(),
	}

	occ, ok := week.SelectOccurrence(event, window, s.Location)
	if !ok {
		s.Logger.Info("ATTENDANCE", fmt.Sprintf("No occurrence of event %s in week starting %s", eventID, window.Start.Format(time.DateOnly)))
		return summary, nil
	}

	total, records, err := s.Upstream.FetchEventTickets(ctx, eventID, occ.ID)
	if err != nil {
		return nil, err
	}

	date := week.FormatDate(occ.StartDate, s.Location)
	summary.EventDate = &date
	summary.OccurrenceID = occ.ID
	summary.Tickets = total
	summary.Details = Aggregate(records)
	summary.TotalAttendees = summary.Details.TotalAttendees()

	s.Logger.Debug("ATTENDANCE", fmt.Sprintf("Event %s occurrence %s: %d tickets across %d ticket types", eventID, occ.ID, total, summary.Details.Len()))
	return summary, nil
}

// CurrentWeekEvents lists the events whose dates touch the current week with
// their attendee counts. Attendee lookups run one after another in upstream
// order; the first failure aborts the whole request.
func (s *Service) CurrentWeekEvents(ctx context.Context) (*CurrentWeekEvents, error) {
	events, err := s.Upstream.FetchEvents(ctx)
	if err != nil {
		return nil, err
	}

	window := s.CurrentWeek()
	result := &CurrentWeekEvents{
		Week:   window,
		Events: []WeekEventCount{},
	}

	for _, event := range events {
		if !week.EventInWeek(event, window, s.Location) {
			continue
		}

		total, records, err := s.Upstream.FetchEventAttendees(ctx, event.ID)
		if err != nil {
			return nil, err
		}

		result.Events = append(result.Events, WeekEventCount{
			EventID:        event.ID,
			EventName:      event.Name,
			StartDate:      event.StartDate,
			EndDate:        event.EndDate,
			TotalAttendees: total,
			TicketTypes:    Aggregate(records),
		})
	}

	s.Logger.Debug("ATTENDANCE", fmt.Sprintf("%d of %d events in week starting %s", len(result.Events), len(events), window.Start.Format(time.DateOnly)))
	return result, nil
}

// EventDetail flattens an event and its attendee counts without any week
// filtering.
func (s *Service) EventDetail(ctx context.Context, eventID string) (*EventDetail, error) {
	event, err := s.Upstream.FetchEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	total, records, err := s.Upstream.FetchEventAttendees(ctx, eventID)
	if err != nil {
		return nil, err
	}

	id := event.ID
	if id == "" {
		id = eventID
	}
	detail := &EventDetail{
		EventID:        id,
		EventName:      event.Name,
		Timezone:       event.Timezone,
		StartDate:      event.StartDate,
		EndDate:        event.EndDate,
		Deleted:        event.Deleted,
		Occurrences:    make([]OccurrenceDetail, 0, len(event.Occurrences)),
		TotalAttendees: total,
		TicketTypes:    Aggregate(records),
	}
	for _, occ := range event.Occurrences {
		detail.Occurrences = append(detail.Occurrences, OccurrenceDetail{
			ID:        occ.ID,
			Date:      week.FormatDate(occ.StartDate, s.Location),
			StartDate: occ.StartDate,
			EndDate:   occ.EndDate,
			Deleted:   occ.Deleted,
			Disabled:  occ.Disabled,
		})
	}
	return detail, nil
}

// RawEvent passes the upstream event body through untouched.
func (s *Service) RawEvent(ctx context.Context, eventID string) (json.RawMessage, error) {
	return s.Upstream.FetchEventRaw(ctx, eventID)
}
