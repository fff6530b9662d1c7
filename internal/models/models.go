package models

// WeatherSnapshot models the weatherstack current-conditions payload as
// captured to disk. All fields are optional in the source; absent values
// decode to nil and normalize to zero values.
type WeatherSnapshot struct {
	Location *Location          `json:"location"`
	Current  *CurrentConditions `json:"current"`
}

// Location carries the subset of the weatherstack location block we keep.
type Location struct {
	Name      string `json:"name"`
	LocalTime string `json:"localtime"`
}

// CurrentConditions is the weatherstack "current" block.
type CurrentConditions struct {
	WindSpeed   *float64 `json:"wind_speed"`
	Pressure    *float64 `json:"pressure"`
	Precip      *float64 `json:"precip"`
	Humidity    *float64 `json:"humidity"`
	Cloudcover  *float64 `json:"cloudcover"`
	Feelslike   *float64 `json:"feelslike"`
	UVIndex     *float64 `json:"uv_index"`
	Visibility  *float64 `json:"visibility"`
	Temperature *float64 `json:"temperature"`
	IsDay       *string  `json:"is_day"`
}

// FlightFeed models the aviationstack flights payload.
type FlightFeed struct {
	Data []FlightEntry `json:"data"`
}

// FlightEntry is one flight from the feed. Nested blocks may be null.
type FlightEntry struct {
	FlightStatus string      `json:"flight_status"`
	Departure    *Departure  `json:"departure"`
	Airline      *AirlineRef `json:"airline"`
	Flight       *FlightRef  `json:"flight"`
}

// Departure holds the departure-side fields of a flight entry. Delay is
// reported in whole minutes and is null when no delay was recorded.
type Departure struct {
	IATA      string `json:"iata"`
	Scheduled string `json:"scheduled"`
	Delay     *int   `json:"delay"`
}

// AirlineRef identifies the operating airline of a flight entry.
type AirlineRef struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
}

// FlightRef identifies the flight itself (e.g. "AV7393").
type FlightRef struct {
	IATA string `json:"iata"`
}

// SessionWeather is a normalized weather row ready for insertion, one per
// capture session. Missing source fields are already defaulted.
type SessionWeather struct {
	SessionName string
	WindSpeed   float64
	Pressure    float64
	Precip      float64
	Humidity    float64
	Cloudcover  float64
	Feelslike   float64
	UVIndex     float64
	Visibility  float64
	Temperature float64
	IsDay       string
	LocalTime   string
}

// FlightRow is a normalized flight record ready for insertion, linked to its
// session's weather row and a deduplicated airline.
type FlightRow struct {
	WeatherID        int64
	AirlineID        int64
	FlightNumber     string
	DepartureDelay   int
	FlightStatus     string
	DepartureAirport string
	ScheduledTime    string
}

// NormalizeWeather flattens a snapshot into a SessionWeather row for the
// given session, substituting defaults for any absent field. A nil snapshot
// (missing or unreadable file) yields the all-defaults row, so a session is
// registered even when its weather capture failed.
func NormalizeWeather(name string, snap *WeatherSnapshot) SessionWeather {
	row := SessionWeather{SessionName: name}
	if snap == nil {
		return row
	}
	if cur := snap.Current; cur != nil {
		row.WindSpeed = floatOrZero(cur.WindSpeed)
		row.Pressure = floatOrZero(cur.Pressure)
		row.Precip = floatOrZero(cur.Precip)
		row.Humidity = floatOrZero(cur.Humidity)
		row.Cloudcover = floatOrZero(cur.Cloudcover)
		row.Feelslike = floatOrZero(cur.Feelslike)
		row.UVIndex = floatOrZero(cur.UVIndex)
		row.Visibility = floatOrZero(cur.Visibility)
		row.Temperature = floatOrZero(cur.Temperature)
		row.IsDay = stringOrEmpty(cur.IsDay)
	}
	if loc := snap.Location; loc != nil {
		row.LocalTime = loc.LocalTime
	}
	return row
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
