// Package osrm consumes the routing collaborator. Routes are requested with
// full overview geometry encoded as a polyline and decoded into coordinate
// lists for rendering.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/config"
	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/domain/repository"
	"github.com/memoria-radar/internal/pkg/errors"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	profile    string
	logger     *zap.Logger
}

// NewClient creates the routing client.
func NewClient(cfg *config.OSRMConfig, logger *zap.Logger) repository.RouteRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		profile: cfg.Profile,
		logger:  logger,
	}
}

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry string  `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

func (c *client) GetRoute(ctx context.Context, start, end domain.Coordinates) (*domain.Route, error) {
	// Coordinates go on the path lng-first, per the OSRM API.
	reqURL := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=polyline",
		c.baseURL, c.profile, start.Lon, start.Lat, end.Lon, end.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		return nil, fmt.Errorf("routing error: status %d", resp.StatusCode)
	}

	var payload routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if payload.Code != "Ok" || len(payload.Routes) == 0 {
		c.logger.Debug("no route found",
			zap.String("code", payload.Code),
			zap.String("message", payload.Message))
		return nil, errors.ErrRouteNotFound
	}

	best := payload.Routes[0]
	coords, _, err := polyline.DecodeCoords([]byte(best.Geometry))
	if err != nil {
		return nil, fmt.Errorf("failed to decode geometry: %w", err)
	}

	geometry := make([]domain.Coordinates, 0, len(coords))
	for _, pair := range coords {
		geometry = append(geometry, domain.Coordinates{Lat: pair[0], Lon: pair[1]})
	}

	route := &domain.Route{
		Geometry:    geometry,
		DistanceKm:  math.Round(best.Distance/1000*100) / 100,
		DurationMin: int(math.Round(best.Duration / 60)),
	}

	c.logger.Debug("route resolved",
		zap.Float64("distance_km", route.DistanceKm),
		zap.Int("duration_min", route.DurationMin),
		zap.Int("points", len(route.Geometry)))

	return route, nil
}
