package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kevinwuu/flightlag/internal/analysis"
)

// WriteSummary renders one text block per session, in the order given.
func WriteSummary(w io.Writer, reports []analysis.SessionReport) error {
	for _, r := range reports {
		_, err := fmt.Fprintf(w, "=== %s ===\nAvg delay is %d min\nWind speed is %s m/s\nHumidity is %s%%\n\n",
			r.Name, r.AvgDelay, formatNumber(r.WindSpeed), formatNumber(r.Humidity))
		if err != nil {
			return err
		}
	}
	return nil
}

// formatNumber prints a float with the fewest digits that round-trip, so
// whole values read as integers (60 -> "60") and fractions keep their
// precision (5.2 -> "5.2").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
