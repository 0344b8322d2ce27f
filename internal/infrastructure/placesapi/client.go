// Package placesapi consumes the place-list backend. The backend is an
// external collaborator; its payload shape and category vocabulary are
// translated to the UI-side model here and nowhere else.
package placesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/memoria-radar/internal/config"
	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates the place backend client.
func NewClient(cfg *config.BackendConfig, logger *zap.Logger) repository.PlaceRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// backendPlace is the raw backend payload item.
type backendPlace struct {
	Nombre              string `json:"nombre"`
	Descripcion         string `json:"descripcion"`
	DescripcionCorta    string `json:"descripcion_corta"`
	DescripcionCompleta string `json:"descripcion_completa"`
	Categoria           string `json:"categoria"`
	Ubicacion           string `json:"ubicacion"`
	ImagenURL           string `json:"imagen_url"`
}

type placesResponse struct {
	Places []backendPlace `json:"places"`
}

func (c *client) FetchPlaces(ctx context.Context, query repository.PlaceQuery) ([]domain.Spot, error) {
	params := url.Values{}
	for _, cat := range query.Categories {
		params.Add("category", cat.BackendID())
	}
	if query.Search != "" {
		params.Set("search", query.Search)
	}

	reqURL := c.baseURL + "/api/places"
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("place backend request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("place backend returned error", zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("place backend error: status %d", resp.StatusCode)
	}

	var payload placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn("failed to decode place backend response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	spots := make([]domain.Spot, 0, len(payload.Places))
	seen := make(map[string]int, len(payload.Places))
	for _, p := range payload.Places {
		spot := mapBackendPlace(p)
		seen[spot.ID]++
		if n := seen[spot.ID]; n > 1 {
			spot.ID = fmt.Sprintf("%s-%d", spot.ID, n)
		}
		spots = append(spots, spot)
	}

	c.logger.Debug("places fetched", zap.Int("count", len(spots)))
	return spots, nil
}

// mapBackendPlace resolves a raw backend item into a Spot once, at ingestion.
// An unparsable ubicacion keeps the place with nil coordinates: it stays in
// list views but never renders on the map.
func mapBackendPlace(p backendPlace) domain.Spot {
	name := p.Nombre
	if name == "" {
		name = "lugar"
	}

	description := p.DescripcionCorta
	if description == "" {
		description = p.DescripcionCompleta
	}
	if description == "" {
		description = p.Descripcion
	}

	return domain.Spot{
		ID:          placeID(name),
		Kind:        domain.SpotPlace,
		Name:        p.Nombre,
		Description: description,
		Category:    MapBackendCategory(p.Categoria),
		Coordinates: parseUbicacion(p.Ubicacion),
		ImageURL:    p.ImagenURL,
	}
}

// placeID derives a stable marker identity from the place name. The backend
// carries no ids of its own and reorders its list freely, so a positional id
// would churn marker identity and misdirect delete tombstones.
func placeID(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

// parseUbicacion parses the backend's "lat, lng" string. Any failure yields
// nil rather than an error.
func parseUbicacion(s string) *domain.Coordinates {
	if !strings.Contains(s, ",") {
		return nil
	}
	parts := strings.SplitN(s, ",", 2)
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	return &domain.Coordinates{Lat: lat, Lon: lng}
}
