// Command inspect previews the snapshot files for the first configured
// session: the captured weather fields and the first few delayed flights.
package main

import (
	"fmt"
	"log"

	"github.com/kevinwuu/flightlag/internal/config"
	"github.com/kevinwuu/flightlag/internal/models"
	"github.com/kevinwuu/flightlag/internal/snapshot"
)

const maxPreviewFlights = 5

func main() {
	if err := run(); err != nil {
		log.Fatalf("inspect failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if len(cfg.Sessions) == 0 {
		return fmt.Errorf("no sessions configured")
	}
	session := cfg.Sessions[0]

	dir := snapshot.Dir{WeatherDir: cfg.WeatherDir, AviationDir: cfg.AviationDir}

	printWeather(session, dir.Weather(session))
	printFlights(session, dir.Flights(session))
	return nil
}

func printWeather(session string, snap *models.WeatherSnapshot) {
	fmt.Printf("===== WEATHER %s =====\n", session)
	if snap == nil {
		fmt.Println("no weather snapshot")
		return
	}
	w := models.NormalizeWeather(session, snap)
	if snap.Location != nil {
		fmt.Printf("City:          %s\n", snap.Location.Name)
	}
	fmt.Printf("Local time:    %s\n", w.LocalTime)
	fmt.Printf("Wind speed:    %g\n", w.WindSpeed)
	fmt.Printf("Pressure:      %g\n", w.Pressure)
	fmt.Printf("Precipitation: %g\n", w.Precip)
	fmt.Printf("Humidity:      %g\n", w.Humidity)
	fmt.Printf("Cloudcover:    %g\n", w.Cloudcover)
	fmt.Printf("Visibility:    %g\n", w.Visibility)
}

func printFlights(session string, feed *models.FlightFeed) {
	fmt.Printf("===== FLIGHTS %s =====\n", session)
	if feed == nil || len(feed.Data) == 0 {
		fmt.Println("no flights in this snapshot")
		return
	}

	shown := 0
	for _, entry := range feed.Data {
		if shown >= maxPreviewFlights {
			break
		}
		dep := entry.Departure
		if dep == nil || dep.Delay == nil {
			continue
		}
		shown++

		number := "N/A"
		if entry.Flight != nil && entry.Flight.IATA != "" {
			number = entry.Flight.IATA
		}
		airline := "N/A"
		if entry.Airline != nil && entry.Airline.Name != "" {
			airline = entry.Airline.Name
		}
		fmt.Printf("%d. %s (%s) delay %d min, scheduled %s\n",
			shown, number, airline, *dep.Delay, dep.Scheduled)
	}
	if shown == 0 {
		fmt.Println("no delayed flights found")
	}
}
