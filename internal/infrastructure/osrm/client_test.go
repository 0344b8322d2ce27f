package osrm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/config"
	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/pkg/errors"
)

func newTestClient(baseURL string) *client {
	cfg := &config.OSRMConfig{
		BaseURL:        baseURL,
		Profile:        "driving",
		RequestTimeout: 5 * time.Second,
	}
	return NewClient(cfg, zap.NewNop()).(*client)
}

func TestGetRoute(t *testing.T) {
	start := domain.Coordinates{Lat: -12.0651, Lon: -75.2049}
	end := domain.Coordinates{Lat: -12.0680, Lon: -75.2102}

	t.Run("successful route", func(t *testing.T) {
		geometry := polyline.EncodeCoords([][]float64{
			{-12.0651, -75.2049},
			{-12.0665, -75.2071},
			{-12.0680, -75.2102},
		})

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Path, "/route/v1/driving/")
			assert.Equal(t, "full", r.URL.Query().Get("overview"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"code": "Ok",
				"routes": [{"geometry": "` + string(geometry) + `", "distance": 1234.5, "duration": 305.2}]
			}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		route, err := c.GetRoute(context.Background(), start, end)

		require.NoError(t, err)
		assert.Equal(t, 1.23, route.DistanceKm)
		assert.Equal(t, 5, route.DurationMin)
		require.Len(t, route.Geometry, 3)
		assert.InDelta(t, -12.0651, route.Geometry[0].Lat, 0.0001)
		assert.InDelta(t, -75.2049, route.Geometry[0].Lon, 0.0001)
	})

	t.Run("no route found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"code": "NoRoute", "message": "Impossible route between points"}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		route, err := c.GetRoute(context.Background(), start, end)

		assert.ErrorIs(t, err, errors.ErrRouteNotFound)
		assert.Nil(t, route)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		_, err := c.GetRoute(context.Background(), start, end)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, errors.ErrRouteNotFound)
	})

	t.Run("malformed geometry", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code": "Ok", "routes": [{"geometry": "", "distance": 100, "duration": 60}]}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		_, err := c.GetRoute(context.Background(), start, end)

		assert.Error(t, err)
	})
}
