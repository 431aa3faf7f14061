// Package maps implements the route.DirectionsProvider contract against the
// Google Maps Directions API. Calls are bounded by the HTTP client timeout
// and retried on transient failures; callers treat any error as a
// per-segment failure, never a route-wide one.
package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/asistia/homecare-backend-go/internal/domain/route"
)

type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewClient(apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("maps api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com"
	}

	return &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
	}, nil
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Duration struct {
				Value int `json:"value"` // seconds
			} `json:"duration"`
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
		} `json:"legs"`
	} `json:"routes"`
	ErrorMessage string `json:"error_message"`
}

// Directions fetches one origin-to-destination leg for the given travel
// mode.
func (c *Client) Directions(ctx context.Context, origin, destination string, mode route.TravelMode) (route.DirectionsResult, error) {
	if origin == "" || destination == "" {
		return route.DirectionsResult{}, errors.New("origin and destination must be non-empty")
	}

	endpoint := c.baseURL + "/maps/api/directions/json"

	makeReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		q := url.Values{}
		q.Set("origin", origin)
		q.Set("destination", destination)
		q.Set("mode", string(mode))
		q.Set("key", c.apiKey)
		req.URL.RawQuery = q.Encode()
		return req, nil
	}

	resp, err := c.doWithRetry(ctx, makeReq)
	if err != nil {
		return route.DirectionsResult{}, fmt.Errorf("directions request: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return route.DirectionsResult{}, fmt.Errorf("decode directions response: %w", err)
	}

	if decoded.Status != "OK" {
		msg := decoded.Status
		if decoded.ErrorMessage != "" {
			msg += ": " + decoded.ErrorMessage
		}
		return route.DirectionsResult{Status: decoded.Status}, fmt.Errorf("directions status %s", msg)
	}

	if len(decoded.Routes) == 0 || len(decoded.Routes[0].Legs) == 0 {
		return route.DirectionsResult{Status: "ZERO_RESULTS"}, errors.New("directions returned no route legs")
	}

	duration := 0
	distance := 0
	for _, leg := range decoded.Routes[0].Legs {
		duration += leg.Duration.Value
		distance += leg.Distance.Value
	}

	return route.DirectionsResult{
		Status:          route.StatusOK,
		DurationSeconds: duration,
		DistanceMeters:  distance,
	}, nil
}
