package humanitix

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"ms-attendance/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewClient(config.HumanitixConfig{
		BaseURL: server.URL,
		APIKey:  "secret",
		Page:    1,
		Timeout: 2 * time.Second,
	}, server.Client(), nil)
	return client, &calls
}

func TestFetchEvent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/events/evt-1", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"_id": "evt-1",
			"name": "Trivia Night",
			"timezone": "Australia/Sydney",
			"dates": [
				{"_id": "d1", "startDate": "2025-03-03T08:00:00.000Z", "endDate": "2025-03-03T11:00:00.000Z"},
				{"_id": "d2", "startDate": "2025-03-10T08:00:00.000Z", "endDate": "2025-03-10T11:00:00.000Z", "disabled": true}
			]
		}`))
	})

	event, err := client.FetchEvent(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "evt-1", event.ID)
	assert.Equal(t, "Trivia Night", event.Name)
	require.Len(t, event.Occurrences, 2)
	assert.Equal(t, "d1", event.Occurrences[0].ID)
	assert.True(t, event.Occurrences[0].Eligible())
	assert.False(t, event.Occurrences[1].Eligible())
	assert.Equal(t, time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC), event.Occurrences[0].StartDate.UTC())
}

func TestFetchEventSparsePayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	event, err := client.FetchEvent(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.Empty(t, event.Name)
	assert.Empty(t, event.Occurrences)
}

func TestFetchEventTickets(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/events/evt-1/tickets", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "d1", r.URL.Query().Get("eventDateId"))
		_, _ = w.Write([]byte(`{
			"total": 3,
			"tickets": [
				{"ticketTypeName": "GA", "number": 2, "firstName": "Jo", "lastName": "Lin"},
				{"ticketTypeName": "GA", "number": 1, "firstName": "Amy"}
			]
		}`))
	})

	total, records, err := client.FetchEventTickets(context.Background(), "evt-1", "d1")
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, records, 2)
	assert.Equal(t, 2, records[0].Quantity)
	assert.Equal(t, "Amy", records[1].FirstName)
	assert.Empty(t, records[1].LastName)
}

func TestFetchEventAttendees(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/events/evt-1/attendees", r.URL.Path)
		_, _ = w.Write([]byte(`{"total": 2, "attendees": [
			{"ticketTypeName": "VIP", "firstName": "Sam", "lastName": "Ng"},
			{"ticketTypeName": "GA", "firstName": "Li"}
		]}`))
	})

	total, records, err := client.FetchEventAttendees(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Quantity)
	assert.Equal(t, "VIP", records[0].TicketTypeName)
}

func TestFetchEvents(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/events", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"total": 2, "events": [{"_id": "a", "name": "A"}, {"_id": "b", "name": "B"}]}`))
	})

	events, err := client.FetchEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
}

func TestFetchEventRaw(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"evt-1","extra":{"nested":true}}`))
	})

	raw, err := client.FetchEventRaw(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"evt-1","extra":{"nested":true}}`, string(raw))
}

func TestNon2xxIsUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})

	_, err := client.FetchEvent(context.Background(), "evt-404")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)
	assert.Contains(t, err.Error(), "evt-404")
}

func TestTicketErrorNamesOccurrence(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, _, err := client.FetchEventTickets(context.Background(), "evt-1", "d7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evt-1")
	assert.Contains(t, err.Error(), "d7")
}

func TestUndecodableBodyIsUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := client.FetchEvents(context.Background())
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
}

func TestTransportFailureIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(config.HumanitixConfig{BaseURL: baseURL, APIKey: "secret", Timeout: time.Second}, nil, nil)
	_, err := client.FetchEvent(context.Background(), "evt-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
	assert.Contains(t, err.Error(), "evt-1")
}

func TestMissingKeyFailsBeforeNetwork(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	client.apiKey = ""

	_, err := client.FetchEvent(context.Background(), "evt-1")
	assert.ErrorIs(t, err, ErrConfigMissing)
	_, _, err = client.FetchEventTickets(context.Background(), "evt-1", "d1")
	assert.ErrorIs(t, err, ErrConfigMissing)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}
