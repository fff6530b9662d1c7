package store

import (
	"context"

	"github.com/kevinwuu/flightlag/internal/models"
)

// MemoryStore is an in-memory Store used by tests. It mirrors the relational
// layout: sessions and airlines keyed by generated ids, flights referencing
// both.
type MemoryStore struct {
	nextSessionID int64
	nextAirlineID int64
	nextFlightID  int64

	sessions  []memSession
	airlineID map[string]int64
	airlines  map[int64]memAirline
	flights   []memFlight
}

type memSession struct {
	id int64
	w  models.SessionWeather
}

type memAirline struct {
	name string
	iata string
}

type memFlight struct {
	id int64
	f  models.FlightRow
}

// NewMemory creates an empty MemoryStore.
func NewMemory() *MemoryStore {
	s := &MemoryStore{}
	_ = s.InitSchema(context.Background())
	return s
}

// InitSchema resets all tables.
func (s *MemoryStore) InitSchema(ctx context.Context) error {
	s.sessions = nil
	s.flights = nil
	s.airlineID = make(map[string]int64)
	s.airlines = make(map[int64]memAirline)
	s.nextSessionID = 0
	s.nextAirlineID = 0
	s.nextFlightID = 0
	return nil
}

// InsertSession appends a session row and returns its id. A repeated session
// name returns the existing row's id, mirroring the relational upsert.
func (s *MemoryStore) InsertSession(ctx context.Context, w models.SessionWeather) (int64, error) {
	for _, sess := range s.sessions {
		if sess.w.SessionName == w.SessionName {
			return sess.id, nil
		}
	}
	s.nextSessionID++
	s.sessions = append(s.sessions, memSession{id: s.nextSessionID, w: w})
	return s.nextSessionID, nil
}

// EnsureAirline registers the airline on first sight and returns its id.
func (s *MemoryStore) EnsureAirline(ctx context.Context, name, iata string) (int64, error) {
	if id, ok := s.airlineID[name]; ok {
		return id, nil
	}
	s.nextAirlineID++
	s.airlineID[name] = s.nextAirlineID
	s.airlines[s.nextAirlineID] = memAirline{name: name, iata: iata}
	return s.nextAirlineID, nil
}

// InsertFlight appends a flight row.
func (s *MemoryStore) InsertFlight(ctx context.Context, f models.FlightRow) error {
	s.nextFlightID++
	s.flights = append(s.flights, memFlight{id: s.nextFlightID, f: f})
	return nil
}

// SessionDelays joins flights to sessions in session order.
func (s *MemoryStore) SessionDelays(ctx context.Context) ([]SessionDelay, error) {
	out := make([]SessionDelay, 0, len(s.flights))
	for _, sess := range s.sessions {
		for _, fl := range s.flights {
			if fl.f.WeatherID == sess.id {
				out = append(out, SessionDelay{
					SessionName:    sess.w.SessionName,
					DepartureDelay: fl.f.DepartureDelay,
				})
			}
		}
	}
	return out, nil
}

// SessionConditions returns weather attributes in session order.
func (s *MemoryStore) SessionConditions(ctx context.Context) ([]SessionConditions, error) {
	out := make([]SessionConditions, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, SessionConditions{
			SessionName: sess.w.SessionName,
			WindSpeed:   sess.w.WindSpeed,
			Humidity:    sess.w.Humidity,
		})
	}
	return out, nil
}

// MasterRows returns the joined flight-weather rows in flight order.
func (s *MemoryStore) MasterRows(ctx context.Context) ([]MasterRow, error) {
	byID := make(map[int64]memSession, len(s.sessions))
	for _, sess := range s.sessions {
		byID[sess.id] = sess
	}

	out := make([]MasterRow, 0, len(s.flights))
	for _, fl := range s.flights {
		sess, ok := byID[fl.f.WeatherID]
		if !ok {
			continue
		}
		out = append(out, MasterRow{
			FlightID:         fl.id,
			SessionName:      sess.w.SessionName,
			AirlineName:      s.airlines[fl.f.AirlineID].name,
			FlightNumber:     fl.f.FlightNumber,
			DepartureDelay:   fl.f.DepartureDelay,
			FlightStatus:     fl.f.FlightStatus,
			DepartureAirport: fl.f.DepartureAirport,
			ScheduledTime:    fl.f.ScheduledTime,
			WindSpeed:        sess.w.WindSpeed,
			Pressure:         sess.w.Pressure,
			Precip:           sess.w.Precip,
			Humidity:         sess.w.Humidity,
			Cloudcover:       sess.w.Cloudcover,
			Temperature:      sess.w.Temperature,
		})
	}
	return out, nil
}

// SessionCount reports how many session rows exist. Test helper.
func (s *MemoryStore) SessionCount() int { return len(s.sessions) }

// FlightCount reports how many flight rows exist. Test helper.
func (s *MemoryStore) FlightCount() int { return len(s.flights) }

// AirlineCount reports how many distinct airlines exist. Test helper.
func (s *MemoryStore) AirlineCount() int { return len(s.airlineID) }
