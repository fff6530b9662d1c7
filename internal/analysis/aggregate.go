package analysis

import (
	"context"
	"math"

	"github.com/kevinwuu/flightlag/internal/store"
)

// SessionReport combines a session's computed average delay with the weather
// attributes used for plotting.
type SessionReport struct {
	Name      string
	AvgDelay  int
	WindSpeed float64
	Humidity  float64
}

// AverageDelayBySession joins flights to their session and returns the mean
// departure delay per session name, rounded half-to-even. Sessions with no
// flights do not appear in the result.
func AverageDelayBySession(ctx context.Context, st store.Store) (map[string]int, error) {
	rows, err := st.SessionDelays(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range rows {
		totals[r.SessionName] += r.DepartureDelay
		counts[r.SessionName]++
	}

	averages := make(map[string]int, len(totals))
	for name, total := range totals {
		mean := float64(total) / float64(counts[name])
		averages[name] = int(math.RoundToEven(mean))
	}
	return averages, nil
}

// EnrichWithWeather merges each averaged session with its wind speed and
// humidity, ordered by session insertion order. Sessions present in averages
// but missing a weather row are omitted.
func EnrichWithWeather(ctx context.Context, st store.Store, averages map[string]int) ([]SessionReport, error) {
	conditions, err := st.SessionConditions(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]SessionReport, 0, len(averages))
	for _, c := range conditions {
		avg, ok := averages[c.SessionName]
		if !ok {
			continue
		}
		reports = append(reports, SessionReport{
			Name:      c.SessionName,
			AvgDelay:  avg,
			WindSpeed: c.WindSpeed,
			Humidity:  c.Humidity,
		})
	}
	return reports, nil
}
