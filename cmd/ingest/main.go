package main

import (
	"context"
	"log"
	"strings"

	"github.com/kevinwuu/flightlag/internal/config"
	"github.com/kevinwuu/flightlag/internal/pipeline"
	"github.com/kevinwuu/flightlag/internal/snapshot"
	"github.com/kevinwuu/flightlag/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("ingest failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	ctx := context.Background()

	st, err := store.NewPg(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.InitSchema(ctx); err != nil {
		return err
	}
	log.Printf("tables initialized and cleared")

	src := snapshot.Dir{WeatherDir: cfg.WeatherDir, AviationDir: cfg.AviationDir}
	counts, err := pipeline.Run(ctx, cfg.Sessions, src, st, cfg.FlightsPerSession)
	if err != nil {
		return err
	}

	log.Printf("sessions created:  %d", counts.Sessions)
	log.Printf("weather rows:      %d", counts.WeatherRows)
	log.Printf("flight rows:       %d", counts.Flights)
	log.Printf("distinct airlines: %d", counts.Airlines)
	if len(counts.Skipped) > 0 {
		log.Printf("sessions with defaulted weather: %s", strings.Join(counts.Skipped, ", "))
	}
	return nil
}
