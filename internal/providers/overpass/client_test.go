package overpass

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Interpret(t *testing.T) {
	const body = `{
		"version": 0.6,
		"generator": "Overpass API",
		"elements": [
			{"type": "node", "id": 1, "lat": 19.08, "lon": 72.88, "tags": {"amenity": "recycling", "name": "Green Center"}},
			{"type": "node", "id": 2, "lat": 19.09, "lon": 72.89, "tags": {"shop": "bakery"}}
		]
	}`

	var gotQuery, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("data")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	defer server.Close()

	client := NewClient(testLogger(), WithBaseURL(server.URL), WithUserAgent("recycleit-test"))
	query := BuildQuery(19.076, 72.8777, 50000, ewastePredicates)

	resp, err := client.Interpret(context.Background(), query)
	if err != nil {
		t.Fatalf("Interpret() unexpected error = %v", err)
	}

	if gotQuery != query {
		t.Errorf("server received query %q, want %q", gotQuery, query)
	}
	if gotUA != "recycleit-test" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "recycleit-test")
	}
	if len(resp.Elements) != 2 {
		t.Fatalf("Elements = %d, want 2", len(resp.Elements))
	}
	first := resp.Elements[0]
	if first.Lat != 19.08 || first.Lon != 72.88 {
		t.Errorf("first element at (%v, %v), want (19.08, 72.88)", first.Lat, first.Lon)
	}
	if first.Tags["name"] != "Green Center" {
		t.Errorf("first element name = %q, want %q", first.Tags["name"], "Green Center")
	}
}

func TestClient_Interpret_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		errContains string
	}{
		{
			name:        "server error",
			status:      http.StatusGatewayTimeout,
			body:        "runtime error: query timed out",
			errContains: "fetch returned status 504",
		},
		{
			name:        "rate limited",
			status:      http.StatusTooManyRequests,
			body:        "rate_limited",
			errContains: "fetch returned status 429",
		},
		{
			name:        "malformed json",
			status:      http.StatusOK,
			body:        `{"elements": [`,
			errContains: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client := NewClient(testLogger(), WithBaseURL(server.URL))
			_, err := client.Interpret(context.Background(), "[out:json];out;")
			if err == nil {
				t.Fatal("Interpret() expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Interpret() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestClient_Interpret_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(testLogger(), WithBaseURL(server.URL), WithTimeout(50*time.Millisecond))
	_, err := client.Interpret(context.Background(), "[out:json];out;")
	if err == nil {
		t.Fatal("Interpret() expected timeout error but got none")
	}
	if !strings.Contains(err.Error(), "failed to fetch") {
		t.Errorf("Interpret() error = %v, want fetch failure", err)
	}
}

func TestClient_Interpret_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"elements": []}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(testLogger(), WithBaseURL(server.URL))
	_, err := client.Interpret(ctx, "[out:json];out;")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Interpret() error = %v, want context.Canceled", err)
	}
}
