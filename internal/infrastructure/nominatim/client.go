// Package nominatim consumes the public reverse-geocoding collaborator.
// Responses are locale-sensitive, so every request carries the configured
// Accept-Language plus a descriptive User-Agent per the service's usage
// policy.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/memoria-radar/internal/config"
	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/domain/repository"
	"github.com/memoria-radar/internal/pkg/utils"
)

type client struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	acceptLanguage string
	logger         *zap.Logger
}

// NewClient creates the reverse-geocoding client.
func NewClient(cfg *config.NominatimConfig, logger *zap.Logger) repository.GeocodeRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:      cfg.UserAgent,
		acceptLanguage: cfg.AcceptLanguage,
		logger:         logger,
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Road          string `json:"road"`
		Neighbourhood string `json:"neighbourhood"`
		Suburb        string `json:"suburb"`
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
		County        string `json:"county"`
		Region        string `json:"region"`
		State         string `json:"state"`
		Postcode      string `json:"postcode"`
		Country       string `json:"country"`
		CountryCode   string `json:"country_code"`
	} `json:"address"`
	Error string `json:"error"`
}

func (c *client) ReverseGeocode(ctx context.Context, lat, lon float64, zoom int) (*domain.Address, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, fmt.Errorf("coordinates out of range: %f, %f", lat, lon)
	}
	if !utils.ValidateZoom(zoom) {
		return nil, fmt.Errorf("zoom out of range: %d", zoom)
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("zoom", fmt.Sprintf("%d", zoom))
	params.Set("format", "jsonv2")

	reqURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.acceptLanguage)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("reverse geocoding returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("geocoding error: status %d", resp.StatusCode)
	}

	var payload reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("geocoding error: %s", payload.Error)
	}

	// Nominatim reports exactly one of city/town/village for the settlement.
	city := payload.Address.City
	if city == "" {
		city = payload.Address.Town
	}
	if city == "" {
		city = payload.Address.Village
	}

	addr := &domain.Address{
		Road:          payload.Address.Road,
		Neighbourhood: payload.Address.Neighbourhood,
		Suburb:        payload.Address.Suburb,
		City:          city,
		County:        payload.Address.County,
		Region:        payload.Address.Region,
		State:         payload.Address.State,
		Postcode:      payload.Address.Postcode,
		Country:       payload.Address.Country,
		CountryCode:   payload.Address.CountryCode,
		DisplayName:   payload.DisplayName,
	}

	c.logger.Debug("reverse geocode resolved",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Int("zoom", zoom),
		zap.String("display_name", addr.DisplayName))

	return addr, nil
}
