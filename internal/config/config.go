package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Discovery DiscoveryConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           int
	GinMode        string   // debug, release, test
	FrontendURL    string   // allowed CORS origin
	TrustedProxies []string // IPs or CIDRs allowed to set X-Forwarded-For; empty trusts none
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// DiscoveryConfig holds recycler discovery settings
type DiscoveryConfig struct {
	DefaultLatitude  float64       // used when the caller sends no coordinates
	DefaultLongitude float64       // used when the caller sends no coordinates
	DefaultRadius    int           // meters, used when no route-specific radius applies
	NearbyRadius     int           // meters, GET /api/nearby
	RecyclersRadius  int           // meters, POST /api/recyclers/nearby and POST /api/nearby
	OverpassURL      string        // Overpass interpreter endpoint
	UserAgent        string        // sent to Overpass
	Timeout          time.Duration // upper bound on one Overpass call
}

// CacheConfig holds Valkey result cache configuration. An empty Addr disables caching.
type CacheConfig struct {
	Addr string
	TTL  time.Duration
}

// RateLimitConfig holds per-client limits for /api routes
type RateLimitConfig struct {
	RequestsPerMinute int // 0 disables limiting
	Burst             int
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.recycleit")

	setDefaults(v)

	// Read from environment variables, e.g. RECYCLEIT_SERVER_PORT
	v.SetEnvPrefix("RECYCLEIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.frontendurl", "http://localhost:5173")
	v.SetDefault("server.trustedproxies", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Mumbai
	v.SetDefault("discovery.defaultlatitude", 19.076)
	v.SetDefault("discovery.defaultlongitude", 72.8777)
	v.SetDefault("discovery.defaultradius", 50000)
	v.SetDefault("discovery.nearbyradius", 100000)
	v.SetDefault("discovery.recyclersradius", 50000)
	v.SetDefault("discovery.overpassurl", "https://overpass-api.de/api/interpreter")
	v.SetDefault("discovery.useragent", "recycleit-api/1.0")
	v.SetDefault("discovery.timeout", 10*time.Second)

	v.SetDefault("cache.addr", "")
	v.SetDefault("cache.ttl", 10*time.Minute)

	v.SetDefault("ratelimit.requestsperminute", 100)
	v.SetDefault("ratelimit.burst", 20)
}

// Validate checks values that would otherwise fail at request time
func (c *Config) Validate() error {
	d := c.Discovery
	if d.DefaultLatitude < -90 || d.DefaultLatitude > 90 {
		return fmt.Errorf("discovery.defaultLatitude %f out of range [-90, 90]", d.DefaultLatitude)
	}
	if d.DefaultLongitude < -180 || d.DefaultLongitude > 180 {
		return fmt.Errorf("discovery.defaultLongitude %f out of range [-180, 180]", d.DefaultLongitude)
	}
	if d.DefaultRadius <= 0 || d.NearbyRadius <= 0 || d.RecyclersRadius <= 0 {
		return errors.New("discovery radii must be positive")
	}
	if d.Timeout <= 0 {
		return errors.New("discovery.timeout must be positive")
	}
	if d.OverpassURL == "" {
		return errors.New("discovery.overpassURL is required")
	}
	if c.Cache.Addr != "" && c.Cache.TTL <= 0 {
		return errors.New("cache.ttl must be positive when cache.addr is set")
	}
	for _, p := range c.Server.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("server.trustedProxies: %q is not an IP or CIDR", p)
			}
		}
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo is NewLogger writing to w
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(c.Log.Level),
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a config level name to slog. Unknown names are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
