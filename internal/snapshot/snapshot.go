package snapshot

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kevinwuu/flightlag/internal/models"
)

// Dir reads and writes per-session snapshot files. Weather captures live
// under WeatherDir as weather_<session>.json, flight captures under
// AviationDir as flights_<session>.json.
type Dir struct {
	WeatherDir  string
	AviationDir string
}

// Weather loads the weather snapshot for a session. A missing or
// undecodable file returns nil: the caller substitutes defaults and the run
// continues.
func (d Dir) Weather(session string) *models.WeatherSnapshot {
	path := filepath.Join(d.WeatherDir, "weather_"+session+".json")
	var snap models.WeatherSnapshot
	if !readJSON(path, &snap) {
		return nil
	}
	return &snap
}

// Flights loads the flight snapshot for a session. A missing or undecodable
// file returns nil, meaning no flights for that session.
func (d Dir) Flights(session string) *models.FlightFeed {
	path := filepath.Join(d.AviationDir, "flights_"+session+".json")
	var feed models.FlightFeed
	if !readJSON(path, &feed) {
		return nil
	}
	return &feed
}

func readJSON(path string, dst any) bool {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("snapshot not found: %s", path)
		} else {
			log.Printf("snapshot unreadable: %s: %v", path, err)
		}
		return false
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(dst); err != nil {
		log.Printf("snapshot decode failed: %s: %v", path, err)
		return false
	}
	return true
}

// SaveWeather writes a raw weather payload for a session, creating the
// directory if needed.
func (d Dir) SaveWeather(session string, payload []byte) (string, error) {
	return writeRaw(d.WeatherDir, "weather_"+session+".json", payload)
}

// SaveFlights writes a raw flight payload for a session.
func (d Dir) SaveFlights(session string, payload []byte) (string, error) {
	return writeRaw(d.AviationDir, "flights_"+session+".json", payload)
}

func writeRaw(dir, name string, payload []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}
