package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWeather(t *testing.T) {
	payload := `{
	  "location": {"name": "New York", "localtime": "2025-12-02 22:15"},
	  "current": {"wind_speed": 5.2, "humidity": 60, "is_day": "no"}
	}`
	var snap WeatherSnapshot
	require.NoError(t, json.Unmarshal([]byte(payload), &snap))

	row := NormalizeWeather("sess", &snap)
	assert.Equal(t, "sess", row.SessionName)
	assert.Equal(t, 5.2, row.WindSpeed)
	assert.Equal(t, 60.0, row.Humidity)
	assert.Equal(t, "no", row.IsDay)
	assert.Equal(t, "2025-12-02 22:15", row.LocalTime)

	// Fields absent from the payload default to zero values.
	assert.Zero(t, row.Pressure)
	assert.Zero(t, row.Temperature)
}

func TestNormalizeWeatherNilSnapshot(t *testing.T) {
	row := NormalizeWeather("sess", nil)
	assert.Equal(t, SessionWeather{SessionName: "sess"}, row)
}

func TestNormalizeWeatherEmptyBlocks(t *testing.T) {
	row := NormalizeWeather("sess", &WeatherSnapshot{})
	assert.Equal(t, SessionWeather{SessionName: "sess"}, row)
}

func TestFlightEntryNullDelayDecodesToNil(t *testing.T) {
	payload := `{"departure": {"iata": "JFK", "delay": null}}`
	var entry FlightEntry
	require.NoError(t, json.Unmarshal([]byte(payload), &entry))

	require.NotNil(t, entry.Departure)
	assert.Nil(t, entry.Departure.Delay)
}
