package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultWeatherDir        = "weather_json_raw_data"
	defaultAviationDir       = "aviation_json_raw_data"
	defaultOutputDir         = "reports"
	defaultFlightsPerSession = 50
	defaultRequestTimeout    = 30 * time.Second
	defaultWeatherQuery      = "New York"
	defaultDepartureIATA     = "JFK"
)

// defaultSessions is the capture order used when SESSIONS is unset.
var defaultSessions = []string{
	"2025_Dec_2_Night",
	"2025_Dec_3_Afternoon",
	"2025_Dec_3_Morning",
	"2025_Dec_4_Night",
	"2025_Dec_5_Noon",
	"2025_Dec_6_Midnight",
	"2025_Dec_6_Noon",
}

// Config holds runtime configuration shared by the pipeline stages.
type Config struct {
	DatabaseURL       string
	WeatherDir        string
	AviationDir       string
	OutputDir         string
	Sessions          []string
	FlightsPerSession int

	// Capture stage only.
	WeatherstackKey  string
	AviationstackKey string
	WeatherQuery     string
	DepartureIATA    string
	CaptureSession   string
	RequestTimeout   time.Duration
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		WeatherDir:        getenvDefault("WEATHER_DIR", defaultWeatherDir),
		AviationDir:       getenvDefault("AVIATION_DIR", defaultAviationDir),
		OutputDir:         getenvDefault("OUTPUT_DIR", defaultOutputDir),
		WeatherstackKey:   strings.TrimSpace(os.Getenv("WEATHERSTACK_API_KEY")),
		AviationstackKey:  strings.TrimSpace(os.Getenv("AVIATIONSTACK_API_KEY")),
		WeatherQuery:      getenvDefault("WEATHER_QUERY", defaultWeatherQuery),
		DepartureIATA:     getenvDefault("DEP_IATA", defaultDepartureIATA),
		CaptureSession:    strings.TrimSpace(os.Getenv("CAPTURE_SESSION")),
		FlightsPerSession: defaultFlightsPerSession,
		RequestTimeout:    defaultRequestTimeout,
	}

	cfg.Sessions = defaultSessions
	if v := strings.TrimSpace(os.Getenv("SESSIONS")); v != "" {
		cfg.Sessions = splitList(v)
	}

	if v := strings.TrimSpace(os.Getenv("FLIGHTS_PER_SESSION")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid FLIGHTS_PER_SESSION: %q", v)
		}
		cfg.FlightsPerSession = n
	}

	if v := strings.TrimSpace(os.Getenv("REQUEST_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	return cfg, nil
}

// RequireDatabase errors unless DATABASE_URL was provided. The capture and
// inspect stages run without a store; ingest and report call this first.
func (c Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
