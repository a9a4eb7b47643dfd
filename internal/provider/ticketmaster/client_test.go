package ticketmaster

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const samplePayload = `{
	"_embedded": {
		"events": [
			{
				"id": "E1",
				"name": "Show",
				"url": "https://tm.example/e1",
				"classifications": [
					{"segment": {"name": "Music"}, "genre": {"name": "Rock"}}
				],
				"dates": {
					"start": {"dateTime": "2025-08-01T19:00:00Z"},
					"timezone": "America/Chicago"
				},
				"_embedded": {
					"venues": [
						{"name": "Stubbs BBQ", "location": {"latitude": "30.268735", "longitude": "-97.736120"}}
					]
				}
			}
		]
	}
}`

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:     baseURL,
		APIKey:      "test-key",
		City:        "Austin",
		CountryCode: "US",
		PageSize:    50,
	}, NewHTTPClient(5*time.Second), zap.NewNop())
}

func TestClient_SearchEvents_Success(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"apikey":      q.Get("apikey"),
			"city":        q.Get("city"),
			"size":        q.Get("size"),
			"countryCode": q.Get("countryCode"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.SearchEvents(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "test-key", gotQuery["apikey"])
	assert.Equal(t, "Austin", gotQuery["city"])
	assert.Equal(t, "50", gotQuery["size"])
	assert.Equal(t, "US", gotQuery["countryCode"])

	assert.Len(t, result.Embedded.Events, 1)
	event := result.Embedded.Events[0]
	assert.Equal(t, "E1", event.ID)
	assert.Equal(t, "Show", event.Name)

	c, ok := event.FirstClassification()
	assert.True(t, ok)
	assert.Equal(t, "Music", c.Segment.Name)
	assert.Equal(t, "Rock", c.Genre.Name)

	v, ok := event.FirstVenue()
	assert.True(t, ok)
	assert.Equal(t, "Stubbs BBQ", v.Name)
	assert.Equal(t, "30.268735", v.Location.Latitude)

	assert.Equal(t, "2025-08-01T19:00:00Z", event.Dates.Start.DateTime)
	assert.Equal(t, "", event.Dates.EndDateTime())
}

func TestClient_SearchEvents_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.SearchEvents(context.Background())

	assert.Nil(t, result)
	var statusErr *StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTooManyRequests, statusErr.Code)
}

func TestClient_SearchEvents_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.SearchEvents(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestClient_SearchEvents_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_embedded": {`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.SearchEvents(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestClient_SearchEvents_NoEmbeddedEvents(t *testing.T) {
	// A well-formed response with no matches has no _embedded at all.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"page": {"totalElements": 0}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.SearchEvents(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, result.Embedded.Events)
}

func TestClient_Redacted(t *testing.T) {
	client := newTestClient("https://app.ticketmaster.example/discovery/v2/events.json")

	redacted := client.redacted("https://app.ticketmaster.example/discovery/v2/events.json?apikey=test-key&city=Austin")

	assert.NotContains(t, redacted, "test-key")
	assert.Contains(t, redacted, "API_KEY_REMOVED")
}
