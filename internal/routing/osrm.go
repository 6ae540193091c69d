// Package routing computes driving segments between consecutive trip cities
// using an OSRM routing service. It backs the offline routegen command; the
// API server never calls it.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/eeplog/backend/internal/domain"
)

// DefaultBaseURL is the public OSRM demo server.
const DefaultBaseURL = "https://router.project-osrm.org"

// Route is the raw distance and duration OSRM reports for one drive.
type Route struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Client queries the OSRM /route service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for baseURL. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Route asks OSRM for the driving route from one city to another.
// Any response whose code is not "Ok", or that carries no route, is an error.
func (c *Client) Route(ctx context.Context, from, to domain.City) (Route, error) {
	u := fmt.Sprintf("%s/route/v1/driving/%s;%s?overview=false", c.baseURL, coord(from.LatLng), coord(to.LatLng))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Route{}, fmt.Errorf("routing.Client.Route: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Route{}, fmt.Errorf("routing.Client.Route %s -> %s: %w", from.Name, to.Name, redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Route{}, fmt.Errorf("routing.Client.Route %s -> %s: read body: %w", from.Name, to.Name, err)
	}

	var out osrmResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return Route{}, fmt.Errorf("routing.Client.Route %s -> %s: status %d: decode: %w", from.Name, to.Name, resp.StatusCode, err)
	}
	if out.Code != "Ok" || len(out.Routes) == 0 {
		return Route{}, fmt.Errorf("routing.Client.Route %s -> %s: status %d: code %q: %s",
			from.Name, to.Name, resp.StatusCode, out.Code, out.Message)
	}
	return Route{DistanceMeters: out.Routes[0].Distance, DurationSeconds: out.Routes[0].Duration}, nil
}

// coord formats a point as OSRM expects: longitude first.
func coord(p domain.LatLng) string {
	return strconv.FormatFloat(p.Lng, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lat, 'f', -1, 64)
}

// redact drops the query string from *url.Error so logs stay short.
func redact(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		if u, perr := url.Parse(ue.URL); perr == nil {
			u.RawQuery = ""
			ue.URL = u.String()
		}
	}
	return err
}
