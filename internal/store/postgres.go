package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kevinwuu/flightlag/internal/models"
)

// PgStore wraps database access over a pgx pool.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPg creates a PgStore backed by a pgx pool.
func NewPg(ctx context.Context, databaseURL string) (*PgStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &PgStore{pool: pool}, nil
}

// Close releases the pool resources.
func (s *PgStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS weather_sessions (
    id BIGSERIAL PRIMARY KEY,
    session_name TEXT UNIQUE NOT NULL,
    wind_speed DOUBLE PRECISION,
    pressure DOUBLE PRECISION,
    precip DOUBLE PRECISION,
    humidity DOUBLE PRECISION,
    cloudcover DOUBLE PRECISION,
    feelslike DOUBLE PRECISION,
    uv_index DOUBLE PRECISION,
    visibility DOUBLE PRECISION,
    temperature DOUBLE PRECISION,
    is_day TEXT,
    local_time TEXT
)`,
	`CREATE TABLE IF NOT EXISTS airlines (
    id BIGSERIAL PRIMARY KEY,
    name TEXT UNIQUE NOT NULL,
    iata TEXT
)`,
	`CREATE TABLE IF NOT EXISTS flights (
    id BIGSERIAL PRIMARY KEY,
    weather_id BIGINT NOT NULL REFERENCES weather_sessions (id),
    airline_id BIGINT NOT NULL REFERENCES airlines (id),
    flight_number TEXT,
    departure_delay INTEGER NOT NULL DEFAULT 0,
    flight_status TEXT,
    departure_airport TEXT,
    scheduled_time TEXT
)`,
}

// clearSQL deletes prior rows child-first so foreign keys hold throughout.
var clearSQL = []string{
	`DELETE FROM flights`,
	`DELETE FROM airlines`,
	`DELETE FROM weather_sessions`,
}

// InitSchema creates the tables if needed and clears any rows from a prior
// run, leaving the store empty and ready for ingestion.
func (s *PgStore) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaDDL {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	for _, stmt := range clearSQL {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

const insertSessionSQL = `
INSERT INTO weather_sessions (
    session_name, wind_speed, pressure, precip, humidity, cloudcover,
    feelslike, uv_index, visibility, temperature, is_day, local_time
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
ON CONFLICT (session_name) DO UPDATE SET session_name = EXCLUDED.session_name
RETURNING id`

// InsertSession writes one session+weather row and returns its generated id.
// A repeated session name resolves to the existing row's id instead of
// violating the uniqueness constraint.
func (s *PgStore) InsertSession(ctx context.Context, w models.SessionWeather) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, insertSessionSQL,
		w.SessionName, w.WindSpeed, w.Pressure, w.Precip, w.Humidity,
		w.Cloudcover, w.Feelslike, w.UVIndex, w.Visibility, w.Temperature,
		w.IsDay, w.LocalTime,
	).Scan(&id)
	return id, err
}

const ensureAirlineSQL = `
INSERT INTO airlines (name, iata) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`

// EnsureAirline inserts the airline if unseen and returns its id either way.
// The no-op DO UPDATE makes RETURNING yield the existing id on conflict.
func (s *PgStore) EnsureAirline(ctx context.Context, name, iata string) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, ensureAirlineSQL, name, iata).Scan(&id)
	return id, err
}

const insertFlightSQL = `
INSERT INTO flights (
    weather_id, airline_id, flight_number, departure_delay,
    flight_status, departure_airport, scheduled_time
) VALUES ($1,$2,$3,$4,$5,$6,$7)`

// InsertFlight writes one flight row.
func (s *PgStore) InsertFlight(ctx context.Context, f models.FlightRow) error {
	_, err := s.pool.Exec(ctx, insertFlightSQL,
		f.WeatherID, f.AirlineID, f.FlightNumber, f.DepartureDelay,
		f.FlightStatus, f.DepartureAirport, f.ScheduledTime,
	)
	return err
}

const sessionDelaysSQL = `
SELECT w.session_name, f.departure_delay
FROM flights f
JOIN weather_sessions w ON f.weather_id = w.id
ORDER BY w.id, f.id`

// SessionDelays returns the flights-to-sessions join in session order.
func (s *PgStore) SessionDelays(ctx context.Context) ([]SessionDelay, error) {
	rows, err := s.pool.Query(ctx, sessionDelaysSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SessionDelay, 0)
	for rows.Next() {
		var d SessionDelay
		if err := rows.Scan(&d.SessionName, &d.DepartureDelay); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

const sessionConditionsSQL = `
SELECT session_name, wind_speed, humidity
FROM weather_sessions
ORDER BY id`

// SessionConditions returns per-session weather attributes in session order.
func (s *PgStore) SessionConditions(ctx context.Context) ([]SessionConditions, error) {
	rows, err := s.pool.Query(ctx, sessionConditionsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SessionConditions, 0)
	for rows.Next() {
		var c SessionConditions
		if err := rows.Scan(&c.SessionName, &c.WindSpeed, &c.Humidity); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

const masterRowsSQL = `
SELECT f.id, w.session_name, a.name, f.flight_number, f.departure_delay,
       f.flight_status, f.departure_airport, f.scheduled_time,
       w.wind_speed, w.pressure, w.precip, w.humidity, w.cloudcover, w.temperature
FROM flights f
JOIN weather_sessions w ON f.weather_id = w.id
JOIN airlines a ON f.airline_id = a.id
ORDER BY f.id`

// MasterRows returns the joined flight-weather rows for the master export.
func (s *PgStore) MasterRows(ctx context.Context) ([]MasterRow, error) {
	rows, err := s.pool.Query(ctx, masterRowsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MasterRow, 0)
	for rows.Next() {
		var m MasterRow
		if err := rows.Scan(
			&m.FlightID,
			&m.SessionName,
			&m.AirlineName,
			&m.FlightNumber,
			&m.DepartureDelay,
			&m.FlightStatus,
			&m.DepartureAirport,
			&m.ScheduledTime,
			&m.WindSpeed,
			&m.Pressure,
			&m.Precip,
			&m.Humidity,
			&m.Cloudcover,
			&m.Temperature,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
