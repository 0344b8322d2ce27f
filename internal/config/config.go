package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Backend     BackendConfig
	Nominatim   NominatimConfig
	OSRM        OSRMConfig
	Redis       RedisConfig
	Cache       CacheConfig
	Map         MapConfig
	Geolocation GeolocationConfig
	Log         LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// BackendConfig points at the place-list backend, consumed as a black box.
type BackendConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type NominatimConfig struct {
	BaseURL        string
	UserAgent      string
	AcceptLanguage string
	RequestTimeout time.Duration
	// ExtractionZooms are the zoom levels the extraction tool queries
	// concurrently, most specific first.
	ExtractionZooms []int
}

type OSRMConfig struct {
	BaseURL        string
	Profile        string
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GeocodeTTL time.Duration
	RouteTTL   time.Duration
}

// MapConfig carries the map engine tuning the lifecycle controller needs.
type MapConfig struct {
	// StyleSettleDelay gates styleLoaded after a styledata event when the
	// engine exposes no idle signal. Workaround for racing layer operations
	// against an in-flight style application.
	StyleSettleDelay time.Duration
	// RasterZoomLimit is the zoom above which satellite/hybrid styles fall
	// back to the vector style; the raster provider degrades past it.
	RasterZoomLimit float64
}

type GeolocationConfig struct {
	Timeout      time.Duration
	HighAccuracy bool
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Env-only deployments carry no .env file.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !strings.Contains(err.Error(), "no such file") {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Backend: BackendConfig{
			BaseURL:        viper.GetString("PLACES_BACKEND_URL"),
			RequestTimeout: time.Duration(viper.GetInt("PLACES_BACKEND_TIMEOUT")) * time.Second,
		},
		Nominatim: NominatimConfig{
			BaseURL:         viper.GetString("NOMINATIM_URL"),
			UserAgent:       viper.GetString("NOMINATIM_USER_AGENT"),
			AcceptLanguage:  viper.GetString("NOMINATIM_ACCEPT_LANGUAGE"),
			RequestTimeout:  time.Duration(viper.GetInt("NOMINATIM_TIMEOUT")) * time.Second,
			ExtractionZooms: parseZoomLevels(viper.GetString("NOMINATIM_EXTRACTION_ZOOMS")),
		},
		OSRM: OSRMConfig{
			BaseURL:        viper.GetString("OSRM_URL"),
			Profile:        viper.GetString("OSRM_PROFILE"),
			RequestTimeout: time.Duration(viper.GetInt("OSRM_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeocodeTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			RouteTTL:   time.Duration(viper.GetInt("ROUTE_CACHE_TTL")) * time.Second,
		},
		Map: MapConfig{
			StyleSettleDelay: time.Duration(viper.GetInt("MAP_STYLE_SETTLE_MS")) * time.Millisecond,
			RasterZoomLimit:  viper.GetFloat64("MAP_RASTER_ZOOM_LIMIT"),
		},
		Geolocation: GeolocationConfig{
			Timeout:      time.Duration(viper.GetInt("GEOLOCATION_TIMEOUT")) * time.Second,
			HighAccuracy: viper.GetBool("GEOLOCATION_HIGH_ACCURACY"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Backend.RequestTimeout == 0 {
		cfg.Backend.RequestTimeout = 10 * time.Second
	}
	if cfg.Nominatim.BaseURL == "" {
		cfg.Nominatim.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Nominatim.UserAgent == "" {
		cfg.Nominatim.UserAgent = "memoria-radar/1.0"
	}
	if cfg.Nominatim.AcceptLanguage == "" {
		cfg.Nominatim.AcceptLanguage = "es"
	}
	if cfg.Nominatim.RequestTimeout == 0 {
		cfg.Nominatim.RequestTimeout = 10 * time.Second
	}
	if len(cfg.Nominatim.ExtractionZooms) == 0 {
		cfg.Nominatim.ExtractionZooms = []int{18, 14, 10}
	}
	if cfg.OSRM.BaseURL == "" {
		cfg.OSRM.BaseURL = "https://router.project-osrm.org"
	}
	if cfg.OSRM.Profile == "" {
		cfg.OSRM.Profile = "driving"
	}
	if cfg.OSRM.RequestTimeout == 0 {
		cfg.OSRM.RequestTimeout = 15 * time.Second
	}
	if cfg.Cache.GeocodeTTL == 0 {
		cfg.Cache.GeocodeTTL = 24 * time.Hour
	}
	if cfg.Cache.RouteTTL == 0 {
		cfg.Cache.RouteTTL = time.Hour
	}
	if cfg.Map.StyleSettleDelay == 0 {
		cfg.Map.StyleSettleDelay = 100 * time.Millisecond
	}
	if cfg.Map.RasterZoomLimit == 0 {
		cfg.Map.RasterZoomLimit = 16
	}
	if cfg.Geolocation.Timeout == 0 {
		cfg.Geolocation.Timeout = 10 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func parseZoomLevels(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		var zoom int
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%d", &zoom); err == nil {
			result = append(result, zoom)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
