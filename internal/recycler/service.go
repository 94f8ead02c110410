package recycler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"recycleit/internal/config"
	"recycleit/internal/metrics"
	"recycleit/internal/providers/overpass"
	"recycleit/internal/types"
)

// ErrUpstream wraps every failure to obtain data from the geodata provider.
var ErrUpstream = errors.New("recycler data provider failed")

const defaultTimeout = 10 * time.Second

// ElementProvider runs Overpass QL queries
type ElementProvider interface {
	Interpret(ctx context.Context, query string) (*overpass.InterpreterAPIResponse, error)
}

// Cache stores serialized discovery results
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Service finds classified recyclers around a point.
type Service interface {
	// Discover returns recyclers within radiusMeters of point. A nil point
	// means the configured fallback; a non-positive radius means the
	// configured default radius.
	Discover(ctx context.Context, point *types.Coords, radiusMeters int) ([]types.Recycler, error)
}

// Defaults are the values Discover falls back to
type Defaults struct {
	Point   types.Coords
	Radius  int
	Timeout time.Duration
}

// DefaultsFromConfig extracts discovery defaults from the application config
func DefaultsFromConfig(cfg *config.Config) Defaults {
	return Defaults{
		Point:   types.NewCoords(cfg.Discovery.DefaultLatitude, cfg.Discovery.DefaultLongitude),
		Radius:  cfg.Discovery.DefaultRadius,
		Timeout: cfg.Discovery.Timeout,
	}
}

// Option configures optional service collaborators
type Option func(*recyclerService)

// WithCache enables result caching for ttl
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(s *recyclerService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

type recyclerService struct {
	provider   ElementProvider
	classifier *Classifier
	defaults   Defaults
	cache      Cache
	cacheTTL   time.Duration
	logger     *slog.Logger
}

// NewRecyclerService creates a recycler service backed by a real Overpass client.
func NewRecyclerService(cfg *config.Config, logger *slog.Logger, opts ...Option) Service {
	client := overpass.NewClient(logger,
		overpass.WithBaseURL(cfg.Discovery.OverpassURL),
		overpass.WithTimeout(cfg.Discovery.Timeout),
		overpass.WithUserAgent(cfg.Discovery.UserAgent),
	)
	return NewRecyclerServiceWithProvider(logger, client, NewClassifier(), DefaultsFromConfig(cfg), opts...)
}

// NewRecyclerServiceWithProvider creates a recycler service with a custom provider.
// This is useful for testing with mock providers.
func NewRecyclerServiceWithProvider(
	logger *slog.Logger,
	provider ElementProvider,
	classifier *Classifier,
	defaults Defaults,
	opts ...Option,
) Service {
	if classifier == nil {
		classifier = NewClassifier()
	}
	if defaults.Timeout <= 0 {
		defaults.Timeout = defaultTimeout
	}
	s := &recyclerService{
		provider:   provider,
		classifier: classifier,
		defaults:   defaults,
		logger:     logger.With("component", "recycler-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Discover queries the provider around the effective point, classifies each
// element, and returns matches in provider order.
func (s *recyclerService) Discover(ctx context.Context, point *types.Coords, radiusMeters int) ([]types.Recycler, error) {
	effective := s.defaults.Point
	if point != nil {
		if err := point.Validate(); err != nil {
			return nil, err
		}
		effective = *point
	}
	if radiusMeters <= 0 {
		radiusMeters = s.defaults.Radius
	}

	s.logger.Debug("discovering recyclers",
		"latitude", effective.Latitude,
		"longitude", effective.Longitude,
		"radius_meters", radiusMeters,
		"fallback_point", point == nil,
	)

	key := cacheKey(effective, radiusMeters)
	if cached, ok := s.readCache(ctx, key); ok {
		return cached, nil
	}

	query := overpass.BuildQuery(effective.Latitude, effective.Longitude, radiusMeters, s.classifier.Predicates())

	callCtx, cancel := context.WithTimeout(ctx, s.defaults.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.provider.Interpret(callCtx, query)
	metrics.ObserveUpstream(err, time.Since(start))
	if err != nil {
		s.logger.Error("failed to query recycler provider",
			"latitude", effective.Latitude,
			"longitude", effective.Longitude,
			"radius_meters", radiusMeters,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	var elements []overpass.Element
	if resp != nil {
		elements = resp.Elements
	}
	recyclers := s.classifyElements(elements)

	s.logger.Debug("classified recyclers",
		"elements", len(elements),
		"recyclers", len(recyclers),
	)
	metrics.RecyclersReturned.Observe(float64(len(recyclers)))

	s.writeCache(ctx, key, recyclers)

	return recyclers, nil
}

// classifyElements keeps classified elements, preserving order and tag maps.
func (s *recyclerService) classifyElements(elements []overpass.Element) []types.Recycler {
	recyclers := make([]types.Recycler, 0, len(elements))
	for _, el := range elements {
		category, ok := s.classifier.Classify(el.Tags)
		if !ok {
			metrics.ElementsDropped.Inc()
			continue
		}
		recyclers = append(recyclers, types.Recycler{
			Name:      ResolveName(el.Tags),
			Latitude:  el.Lat,
			Longitude: el.Lon,
			Category:  category,
			Tags:      el.Tags,
		})
	}
	return recyclers
}

func cacheKey(p types.Coords, radiusMeters int) string {
	return fmt.Sprintf("recyclers:%.6f:%.6f:%d", p.Latitude, p.Longitude, radiusMeters)
}

// readCache never fails a request; errors count as misses.
func (s *recyclerService) readCache(ctx context.Context, key string) ([]types.Recycler, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, found, err := s.cache.Get(ctx, key)
	if err != nil {
		metrics.CacheErrors.WithLabelValues("get").Inc()
		s.logger.Warn("cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !found {
		metrics.CacheMisses.Inc()
		return nil, false
	}

	var recyclers []types.Recycler
	if err := json.Unmarshal(raw, &recyclers); err != nil {
		metrics.CacheErrors.WithLabelValues("decode").Inc()
		s.logger.Warn("cache entry is corrupt", "key", key, "error", err)
		return nil, false
	}
	if recyclers == nil {
		recyclers = []types.Recycler{}
	}

	metrics.CacheHits.Inc()
	s.logger.Debug("served recyclers from cache", "key", key, "recyclers", len(recyclers))
	return recyclers, true
}

func (s *recyclerService) writeCache(ctx context.Context, key string, recyclers []types.Recycler) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(recyclers)
	if err != nil {
		metrics.CacheErrors.WithLabelValues("encode").Inc()
		s.logger.Warn("failed to encode recyclers for cache", "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		metrics.CacheErrors.WithLabelValues("set").Inc()
		s.logger.Warn("cache write failed", "key", key, "error", err)
	}
}
