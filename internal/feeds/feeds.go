// Package feeds fetches raw payloads from the weatherstack and aviationstack
// APIs for capture into snapshot files. Payloads are kept verbatim so the
// ingestion pipeline decodes the same bytes a live capture produced.
package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// WeatherstackURL is the current-conditions endpoint.
	WeatherstackURL = "http://api.weatherstack.com/current"

	// AviationstackURL is the real-time flights endpoint.
	AviationstackURL = "http://api.aviationstack.com/v1/flights"
)

// APIError is the error object both providers embed in an otherwise-200
// response.
type APIError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Code, e.Type, e.Info)
}

// FetchWeather retrieves the current weather payload for a location query.
func FetchWeather(ctx context.Context, client *http.Client, baseURL, accessKey, query string) ([]byte, error) {
	params := url.Values{}
	params.Set("access_key", accessKey)
	params.Set("query", query)
	params.Set("units", "m")
	return fetch(ctx, client, baseURL, params)
}

// FetchFlights retrieves up to limit real-time flights departing depIATA.
func FetchFlights(ctx context.Context, client *http.Client, baseURL, accessKey, depIATA string, limit int) ([]byte, error) {
	params := url.Values{}
	params.Set("access_key", accessKey)
	params.Set("dep_iata", depIATA)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", "0")
	return fetch(ctx, client, baseURL, params)
}

func fetch(ctx context.Context, client *http.Client, baseURL string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	// Providers report failures inside a 200 response.
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if envelope.Error != nil {
		return nil, envelope.Error
	}

	return payload, nil
}
