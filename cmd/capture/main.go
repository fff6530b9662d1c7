package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/kevinwuu/flightlag/internal/config"
	"github.com/kevinwuu/flightlag/internal/feeds"
	"github.com/kevinwuu/flightlag/internal/snapshot"
)

const captureLimit = 100

func main() {
	if err := run(); err != nil {
		log.Fatalf("capture failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.WeatherstackKey == "" || cfg.AviationstackKey == "" {
		return fmt.Errorf("WEATHERSTACK_API_KEY and AVIATIONSTACK_API_KEY are required")
	}

	session := cfg.CaptureSession
	if session == "" {
		session = sessionLabel(time.Now())
	}
	log.Printf("capturing session %s", session)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+10*time.Second)
	defer cancel()

	client := &http.Client{Timeout: cfg.RequestTimeout}
	dir := snapshot.Dir{WeatherDir: cfg.WeatherDir, AviationDir: cfg.AviationDir}

	weather, err := feeds.FetchWeather(ctx, client, feeds.WeatherstackURL, cfg.WeatherstackKey, cfg.WeatherQuery)
	if err != nil {
		return fmt.Errorf("weather capture: %w", err)
	}
	path, err := dir.SaveWeather(session, weather)
	if err != nil {
		return err
	}
	log.Printf("saved weather snapshot to %s", path)

	flights, err := feeds.FetchFlights(ctx, client, feeds.AviationstackURL, cfg.AviationstackKey, cfg.DepartureIATA, captureLimit)
	if err != nil {
		return fmt.Errorf("flight capture: %w", err)
	}
	path, err = dir.SaveFlights(session, flights)
	if err != nil {
		return err
	}
	log.Printf("saved flight snapshot to %s", path)

	return nil
}

// sessionLabel names a capture window the way the stored sessions are named,
// e.g. "2025_Dec_2_Night".
func sessionLabel(t time.Time) string {
	var part string
	switch h := t.Hour(); {
	case h < 5:
		part = "Midnight"
	case h < 11:
		part = "Morning"
	case h < 14:
		part = "Noon"
	case h < 18:
		part = "Afternoon"
	default:
		part = "Night"
	}
	return t.Format("2006_Jan_2") + "_" + part
}
