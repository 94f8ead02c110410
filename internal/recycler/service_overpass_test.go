package recycler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recycleit/internal/config"
	"recycleit/internal/types"
)

func testConfig() *config.Config {
	return &config.Config{
		Discovery: config.DiscoveryConfig{
			DefaultLatitude:  19.076,
			DefaultLongitude: 72.8777,
			DefaultRadius:    50000,
			NearbyRadius:     100000,
			RecyclersRadius:  50000,
			OverpassURL:      "https://overpass-api.de/api/interpreter",
			UserAgent:        "recycleit-test",
			Timeout:          10 * time.Second,
		},
	}
}

func TestNewRecyclerService_AgainstOverpassServer(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("data")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"elements": [
			{"type": "node", "id": 1, "lat": 19.08, "lon": 72.88, "tags": {"amenity": "recycling", "name": "Green Center"}},
			{"type": "node", "id": 2, "lat": 19.09, "lon": 72.89, "tags": {"shop": "bakery"}}
		]}`)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.Discovery.OverpassURL = server.URL
	service := NewRecyclerService(cfg, discardLogger())

	point := types.NewCoords(19.076, 72.8777)
	got, err := service.Discover(context.Background(), &point, 50000)
	if err != nil {
		t.Fatalf("Discover() unexpected error = %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("Discover() returned %d recyclers, want 1", len(got))
	}
	r := got[0]
	if r.Name != "Green Center" || r.Latitude != 19.08 || r.Longitude != 72.88 || r.Category != types.CategoryEWaste {
		t.Errorf("Discover()[0] = %+v, want Green Center at (19.08, 72.88) E-Waste", r)
	}
	if r.Tags["amenity"] != "recycling" || r.Tags["name"] != "Green Center" {
		t.Errorf("Discover()[0].Tags = %v, want source tags", r.Tags)
	}

	for _, rule := range DefaultRules {
		clause := `node["` + rule.Key + `"="` + rule.Value + `"](around:50000,19.076,72.8777);`
		if !strings.Contains(gotQuery, clause) {
			t.Errorf("query missing %s", clause)
		}
	}
}

func TestNewRecyclerService_UpstreamStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.Discovery.OverpassURL = server.URL
	service := NewRecyclerService(cfg, discardLogger())

	got, err := service.Discover(context.Background(), nil, 0)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("Discover() error = %v, want ErrUpstream", err)
	}
	if got != nil {
		t.Errorf("Discover() = %v on failure, want nil", got)
	}
}
