package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinwuu/flightlag/internal/snapshot"
	"github.com/kevinwuu/flightlag/internal/store"
)

const weatherFixture = `{
  "location": {"name": "New York", "localtime": "2025-12-02 22:15"},
  "current": {
    "wind_speed": 5.2, "pressure": 1016, "precip": 0,
    "humidity": 60, "cloudcover": 25, "feelslike": -1,
    "uv_index": 0, "visibility": 16, "temperature": 2, "is_day": "no"
  }
}`

func flightFixture(entries ...string) string {
	out := `{"data": [`
	for i, e := range entries {
		if i > 0 {
			out += ","
		}
		out += e
	}
	return out + `]}`
}

func flightEntry(airline, number string, delay any) string {
	return fmt.Sprintf(`{
  "flight_status": "landed",
  "departure": {"iata": "JFK", "scheduled": "2025-12-02T21:40:00+00:00", "delay": %v},
  "airline": {"name": %q, "iata": "XX"},
  "flight": {"iata": %q}
}`, delay, airline, number)
}

func writeFixtures(t *testing.T, session, weather, flights string) snapshot.Dir {
	t.Helper()
	dir := snapshot.Dir{
		WeatherDir:  t.TempDir(),
		AviationDir: t.TempDir(),
	}
	if weather != "" {
		path := filepath.Join(dir.WeatherDir, "weather_"+session+".json")
		require.NoError(t, os.WriteFile(path, []byte(weather), 0o644))
	}
	if flights != "" {
		path := filepath.Join(dir.AviationDir, "flights_"+session+".json")
		require.NoError(t, os.WriteFile(path, []byte(flights), 0o644))
	}
	return dir
}

func TestRunInsertsSessionFlightsAndWeather(t *testing.T) {
	src := writeFixtures(t, "sess_a", weatherFixture, flightFixture(
		flightEntry("Delta Air Lines", "DL100", 10),
		flightEntry("Delta Air Lines", "DL200", 20),
		flightEntry("JetBlue Airways", "B6300", "null"),
	))
	st := store.NewMemory()

	counts, err := Run(context.Background(), []string{"sess_a"}, src, st, 50)
	require.NoError(t, err)

	assert.Equal(t, 1, counts.Sessions)
	assert.Equal(t, 1, counts.WeatherRows)
	assert.Equal(t, 3, counts.Flights)
	assert.Equal(t, 2, counts.Airlines)
	assert.Empty(t, counts.Skipped)

	conditions, err := st.SessionConditions(context.Background())
	require.NoError(t, err)
	require.Len(t, conditions, 1)
	assert.Equal(t, "sess_a", conditions[0].SessionName)
	assert.Equal(t, 5.2, conditions[0].WindSpeed)
	assert.Equal(t, 60.0, conditions[0].Humidity)
}

func TestRunDeduplicatesAirlines(t *testing.T) {
	src := writeFixtures(t, "sess_a", weatherFixture, flightFixture(
		flightEntry("Delta Air Lines", "DL100", 5),
		flightEntry("Delta Air Lines", "DL200", 15),
	))
	st := store.NewMemory()

	_, err := Run(context.Background(), []string{"sess_a"}, src, st, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, st.AirlineCount())

	rows, err := st.MasterRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Delta Air Lines", rows[0].AirlineName)
	assert.Equal(t, rows[0].AirlineName, rows[1].AirlineName)
}

func TestRunNullDelayStoredAsZero(t *testing.T) {
	src := writeFixtures(t, "sess_a", weatherFixture, flightFixture(
		flightEntry("Delta Air Lines", "DL100", "null"),
	))
	st := store.NewMemory()

	_, err := Run(context.Background(), []string{"sess_a"}, src, st, 50)
	require.NoError(t, err)

	delays, err := st.SessionDelays(context.Background())
	require.NoError(t, err)
	require.Len(t, delays, 1)
	assert.Equal(t, 0, delays[0].DepartureDelay)
}

func TestRunCapsFlightsPerSession(t *testing.T) {
	entries := make([]string, 10)
	for i := range entries {
		entries[i] = flightEntry("Delta Air Lines", fmt.Sprintf("DL%d", i), i)
	}
	src := writeFixtures(t, "sess_a", weatherFixture, flightFixture(entries...))
	st := store.NewMemory()

	counts, err := Run(context.Background(), []string{"sess_a"}, src, st, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, counts.Flights)

	// Source order preserved: first four entries made it in.
	delays, err := st.SessionDelays(context.Background())
	require.NoError(t, err)
	require.Len(t, delays, 4)
	for i, d := range delays {
		assert.Equal(t, i, d.DepartureDelay)
	}
}

func TestRunMissingWeatherUsesDefaults(t *testing.T) {
	src := writeFixtures(t, "sess_a", "", flightFixture(
		flightEntry("Delta Air Lines", "DL100", 10),
	))
	st := store.NewMemory()

	counts, err := Run(context.Background(), []string{"sess_a"}, src, st, 50)
	require.NoError(t, err)

	assert.Equal(t, 1, counts.Sessions)
	assert.Equal(t, 0, counts.WeatherRows)
	assert.Equal(t, []string{"sess_a"}, counts.Skipped)

	// The session still exists, with neutral weather values.
	conditions, err := st.SessionConditions(context.Background())
	require.NoError(t, err)
	require.Len(t, conditions, 1)
	assert.Zero(t, conditions[0].WindSpeed)
	assert.Zero(t, conditions[0].Humidity)

	// Its flights were still ingested.
	assert.Equal(t, 1, counts.Flights)
}

func TestRunMissingFlightsSkipsSessionFlights(t *testing.T) {
	src := writeFixtures(t, "sess_a", weatherFixture, "")
	st := store.NewMemory()

	counts, err := Run(context.Background(), []string{"sess_a"}, src, st, 50)
	require.NoError(t, err)

	assert.Equal(t, 1, counts.Sessions)
	assert.Equal(t, 1, counts.WeatherRows)
	assert.Equal(t, 0, counts.Flights)
}

func TestRunMalformedSnapshotsTreatedAsAbsent(t *testing.T) {
	src := writeFixtures(t, "sess_a", "{not json", "also not json")
	st := store.NewMemory()

	counts, err := Run(context.Background(), []string{"sess_a"}, src, st, 50)
	require.NoError(t, err)

	assert.Equal(t, 1, counts.Sessions)
	assert.Equal(t, 0, counts.WeatherRows)
	assert.Equal(t, 0, counts.Flights)
	assert.Equal(t, []string{"sess_a"}, counts.Skipped)
}

func TestRunBrokenSessionDoesNotAbortLaterOnes(t *testing.T) {
	dir := snapshot.Dir{WeatherDir: t.TempDir(), AviationDir: t.TempDir()}
	require.NoError(t, os.WriteFile(
		filepath.Join(dir.WeatherDir, "weather_sess_b.json"), []byte(weatherFixture), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir.AviationDir, "flights_sess_b.json"),
		[]byte(flightFixture(flightEntry("Delta Air Lines", "DL100", 10))), 0o644))
	st := store.NewMemory()

	counts, err := Run(context.Background(), []string{"sess_a", "sess_b"}, dir, st, 50)
	require.NoError(t, err)

	assert.Equal(t, 2, counts.Sessions)
	assert.Equal(t, 1, counts.WeatherRows)
	assert.Equal(t, 1, counts.Flights)
	assert.Equal(t, []string{"sess_a"}, counts.Skipped)
}

func TestRunIsIdempotentAcrossReruns(t *testing.T) {
	source := writeFixtures(t, "sess_a", weatherFixture, flightFixture(
		flightEntry("Delta Air Lines", "DL100", 10),
		flightEntry("JetBlue Airways", "B6300", 20),
	))
	st := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, st.InitSchema(ctx))
	first, err := Run(ctx, []string{"sess_a"}, source, st, 50)
	require.NoError(t, err)

	require.NoError(t, st.InitSchema(ctx))
	second, err := Run(ctx, []string{"sess_a"}, source, st, 50)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, st.SessionCount())
	assert.Equal(t, 2, st.FlightCount())
	assert.Equal(t, 2, st.AirlineCount())
}

func TestRunMissingAirlineBlockFallsBackToUnknown(t *testing.T) {
	entry := `{
  "flight_status": "scheduled",
  "departure": {"iata": "JFK", "scheduled": "2025-12-02T21:40:00+00:00", "delay": 7},
  "flight": {"iata": "XX1"}
}`
	src := writeFixtures(t, "sess_a", weatherFixture, flightFixture(entry))
	st := store.NewMemory()

	_, err := Run(context.Background(), []string{"sess_a"}, src, st, 50)
	require.NoError(t, err)

	rows, err := st.MasterRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Unknown Airline", rows[0].AirlineName)
}
