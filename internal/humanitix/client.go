package humanitix

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ms-attendance/internal/config"
	"ms-attendance/internal/logger"
	"ms-attendance/internal/metrics"
	"ms-attendance/internal/models"
)

// Client talks to the Humanitix public REST API. It keeps no state between
// calls besides its configuration.
type Client struct {
	baseURL string
	apiKey  string
	page    int
	client  *http.Client
	logger  *logger.Logger
}

// NewClient creates a Client. A nil httpClient gets one with cfg.Timeout.
func NewClient(cfg config.HumanitixConfig, httpClient *http.Client, log *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		log = logger.Discard()
	}
	page := cfg.Page
	if page < 1 {
		page = 1
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		page:    page,
		client:  httpClient,
		logger:  log,
	}
}

// FetchEvent returns a single event with its occurrences.
func (c *Client) FetchEvent(ctx context.Context, eventID string) (*models.Event, error) {
	var event models.Event
	if err := c.get(ctx, "event", "/v1/events/"+url.PathEscape(eventID), nil, eventID, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// FetchEventRaw returns the event body exactly as upstream sent it.
func (c *Client) FetchEventRaw(ctx context.Context, eventID string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "event", "/v1/events/"+url.PathEscape(eventID), nil, eventID, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// FetchEvents returns the configured page of the account's events.
func (c *Client) FetchEvents(ctx context.Context) ([]models.Event, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(c.page))

	var page models.EventsPage
	if err := c.get(ctx, "events", "/v1/events", query, "events", &page); err != nil {
		return nil, err
	}
	return page.Events, nil
}

// FetchEventTickets returns the upstream ticket total and the ticket rows of
// one occurrence.
func (c *Client) FetchEventTickets(ctx context.Context, eventID, occurrenceID string) (int, []models.TicketRecord, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(c.page))
	query.Set("eventDateId", occurrenceID)

	var page models.TicketsPage
	resource := fmt.Sprintf("tickets for event %s (date %s)", eventID, occurrenceID)
	if err := c.get(ctx, "tickets", "/v1/events/"+url.PathEscape(eventID)+"/tickets", query, resource, &page); err != nil {
		return 0, nil, err
	}
	return page.Total, page.Tickets, nil
}

// FetchEventAttendees returns the attendee total of an event and one
// single-seat record per attendee.
func (c *Client) FetchEventAttendees(ctx context.Context, eventID string) (int, []models.TicketRecord, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(c.page))

	var page models.AttendeesPage
	resource := "attendees for event " + eventID
	if err := c.get(ctx, "attendees", "/v1/events/"+url.PathEscape(eventID)+"/attendees", query, resource, &page); err != nil {
		return 0, nil, err
	}

	records := make([]models.TicketRecord, 0, len(page.Attendees))
	for _, attendee := range page.Attendees {
		records = append(records, attendee.Record())
	}
	return page.Total, records, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, resource string, dest interface{}) error {
	if c.apiKey == "" {
		c.logger.Error("CONFIG", "HUMANITIX_API_KEY not set")
		return ErrConfigMissing
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &UpstreamError{Resource: resource, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ObserveUpstream(endpoint, "transport", time.Since(start))
		c.logger.Error("HUMANITIX", fmt.Sprintf("GET %s failed: %v", path, err))
		return &UpstreamError{Resource: resource, Err: err}
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.logger.Warn("HUMANITIX", fmt.Sprintf("Failed to close response body: %v", err))
		}
	}(resp.Body)

	c.logger.LogUpstream(http.MethodGet, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream(endpoint, "status", time.Since(start))
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("HUMANITIX", fmt.Sprintf("GET %s returned %s: %s", path, resp.Status, body))
		return &UpstreamError{Resource: resource, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		metrics.ObserveUpstream(endpoint, "decode", time.Since(start))
		c.logger.Error("HUMANITIX", fmt.Sprintf("Failed to decode %s response: %v", path, err))
		return &UpstreamError{Resource: resource, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	metrics.ObserveUpstream(endpoint, "ok", time.Since(start))
	return nil
}
