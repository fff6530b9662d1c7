package store

import (
	"context"

	"github.com/kevinwuu/flightlag/internal/models"
)

// Store is the persistence surface the pipeline and aggregator run against.
// The Postgres implementation backs the CLI stages; MemoryStore backs tests.
type Store interface {
	// InitSchema creates the tables if absent and clears all rows in
	// dependency order. Safe to call on an already-initialized store.
	InitSchema(ctx context.Context) error

	// InsertSession writes one session+weather row and returns its id.
	InsertSession(ctx context.Context, w models.SessionWeather) (int64, error)

	// EnsureAirline registers an airline by name if not present and returns
	// its id. Name matching is exact and case-sensitive.
	EnsureAirline(ctx context.Context, name, iata string) (int64, error)

	// InsertFlight writes one flight row referencing existing session and
	// airline ids.
	InsertFlight(ctx context.Context, f models.FlightRow) error

	// SessionDelays returns every (session name, departure delay) pair from
	// the flights-to-sessions join, in session insertion order.
	SessionDelays(ctx context.Context) ([]SessionDelay, error)

	// SessionConditions returns per-session weather attributes in session
	// insertion order.
	SessionConditions(ctx context.Context) ([]SessionConditions, error)

	// MasterRows returns the fully joined flight+weather rows for export.
	MasterRows(ctx context.Context) ([]MasterRow, error)
}

// SessionDelay is one row of the flights-to-sessions join.
type SessionDelay struct {
	SessionName    string
	DepartureDelay int
}

// SessionConditions carries the weather attributes used for enrichment.
type SessionConditions struct {
	SessionName string
	WindSpeed   float64
	Humidity    float64
}

// MasterRow is one row of the joined flight-weather master table.
type MasterRow struct {
	FlightID         int64   `dataframe:"flight_id"`
	SessionName      string  `dataframe:"session_name"`
	AirlineName      string  `dataframe:"airline_name"`
	FlightNumber     string  `dataframe:"flight_number"`
	DepartureDelay   int     `dataframe:"departure_delay"`
	FlightStatus     string  `dataframe:"flight_status"`
	DepartureAirport string  `dataframe:"departure_airport"`
	ScheduledTime    string  `dataframe:"scheduled_time"`
	WindSpeed        float64 `dataframe:"wind_speed"`
	Pressure         float64 `dataframe:"pressure"`
	Precip           float64 `dataframe:"precip"`
	Humidity         float64 `dataframe:"humidity"`
	Cloudcover       float64 `dataframe:"cloudcover"`
	Temperature      float64 `dataframe:"temperature"`
}
