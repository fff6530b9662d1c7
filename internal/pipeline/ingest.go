package pipeline

import (
	"context"
	"log"

	"github.com/kevinwuu/flightlag/internal/models"
	"github.com/kevinwuu/flightlag/internal/store"
)

const (
	unknownAirlineName = "Unknown Airline"
	unknownAirlineIATA = "--"
)

// Source provides per-session snapshot data. snapshot.Dir is the file-backed
// implementation; tests may supply their own.
type Source interface {
	Weather(session string) *models.WeatherSnapshot
	Flights(session string) *models.FlightFeed
}

// Counts summarizes one ingestion run.
type Counts struct {
	Sessions    int
	WeatherRows int
	Flights     int
	Airlines    int

	// Skipped lists sessions whose weather snapshot was absent or
	// undecodable and was replaced with defaults.
	Skipped []string
}

// Run ingests the named sessions in order: one weather row per session, then
// up to maxFlights of its flight entries, with airlines deduplicated by name
// for the whole run. A broken snapshot never aborts the run; the session
// falls back to defaults (weather) or contributes no flights.
func Run(ctx context.Context, sessions []string, src Source, st store.Store, maxFlights int) (Counts, error) {
	var counts Counts
	airlineIDs := make(map[string]int64)

	for _, session := range sessions {
		log.Printf("processing session %s", session)

		snap := src.Weather(session)
		if snap == nil {
			counts.Skipped = append(counts.Skipped, session)
		} else {
			counts.WeatherRows++
		}

		weatherID, err := st.InsertSession(ctx, models.NormalizeWeather(session, snap))
		if err != nil {
			log.Printf("session %s: insert failed, skipping: %v", session, err)
			continue
		}
		counts.Sessions++

		feed := src.Flights(session)
		if feed == nil {
			continue
		}

		entries := feed.Data
		if len(entries) > maxFlights {
			entries = entries[:maxFlights]
		}

		for _, entry := range entries {
			name, iata := airlineIdentity(entry.Airline)
			airlineID, ok := airlineIDs[name]
			if !ok {
				airlineID, err = st.EnsureAirline(ctx, name, iata)
				if err != nil {
					log.Printf("session %s: airline %q: %v", session, name, err)
					continue
				}
				airlineIDs[name] = airlineID
			}

			if err := st.InsertFlight(ctx, flightRow(weatherID, airlineID, entry)); err != nil {
				log.Printf("session %s: flight insert: %v", session, err)
				continue
			}
			counts.Flights++
		}
	}

	counts.Airlines = len(airlineIDs)
	return counts, nil
}

func airlineIdentity(a *models.AirlineRef) (name, iata string) {
	name, iata = unknownAirlineName, unknownAirlineIATA
	if a == nil {
		return name, iata
	}
	if a.Name != "" {
		name = a.Name
	}
	if a.IATA != "" {
		iata = a.IATA
	}
	return name, iata
}

func flightRow(weatherID, airlineID int64, entry models.FlightEntry) models.FlightRow {
	row := models.FlightRow{
		WeatherID:    weatherID,
		AirlineID:    airlineID,
		FlightStatus: entry.FlightStatus,
	}
	if entry.Flight != nil {
		row.FlightNumber = entry.Flight.IATA
	}
	if dep := entry.Departure; dep != nil {
		row.DepartureAirport = dep.IATA
		row.ScheduledTime = dep.Scheduled
		if dep.Delay != nil {
			row.DepartureDelay = *dep.Delay
		}
	}
	return row
}
