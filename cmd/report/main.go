package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/kevinwuu/flightlag/internal/analysis"
	"github.com/kevinwuu/flightlag/internal/config"
	"github.com/kevinwuu/flightlag/internal/report"
	"github.com/kevinwuu/flightlag/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("report failed: %v", err)
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

	averages, err := analysis.AverageDelayBySession(ctx, st)
	if err != nil {
		return err
	}
	reports, err := analysis.EnrichWithWeather(ctx, st, averages)
	if err != nil {
		return err
	}
	log.Printf("aggregated %d sessions with flights", len(reports))

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}

	if err := writeSummary(cfg.OutputDir, reports); err != nil {
		return err
	}

	windPoints := make([]report.Point, 0, len(reports))
	humidityPoints := make([]report.Point, 0, len(reports))
	for _, r := range reports {
		windPoints = append(windPoints, report.Point{X: r.WindSpeed, Y: float64(r.AvgDelay)})
		humidityPoints = append(humidityPoints, report.Point{X: r.Humidity, Y: float64(r.AvgDelay)})
	}

	windPath := filepath.Join(cfg.OutputDir, "avg_delay_vs_wind.png")
	if err := report.ScatterPlot(windPoints, report.PlotOptions{
		Title:  "Average Departure Delay vs Wind Speed",
		XLabel: "Wind speed (m/s)",
		YLabel: "Avg delay (min)",
	}, windPath); err != nil {
		return err
	}
	log.Printf("wrote %s", windPath)

	humidityPath := filepath.Join(cfg.OutputDir, "avg_delay_vs_humidity.png")
	if err := report.ScatterPlot(humidityPoints, report.PlotOptions{
		Title:  "Average Departure Delay vs Humidity",
		XLabel: "Humidity (%)",
		YLabel: "Avg delay (min)",
	}, humidityPath); err != nil {
		return err
	}
	log.Printf("wrote %s", humidityPath)

	if err := writeMaster(ctx, st, cfg.OutputDir); err != nil {
		// An empty store is not fatal for the plots already written.
		log.Printf("master export skipped: %v", err)
	}
	return nil
}

func writeSummary(dir string, reports []analysis.SessionReport) error {
	path := filepath.Join(dir, "delay_summary.txt")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := report.WriteSummary(f, reports); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}

func writeMaster(ctx context.Context, st store.Store, dir string) error {
	path := filepath.Join(dir, "flight_weather_master.csv")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, cols, err := analysis.WriteMasterCSV(ctx, st, f)
	if err != nil {
		return err
	}
	log.Printf("wrote %s (%d rows, %d columns)", path, rows, cols)
	return nil
}
