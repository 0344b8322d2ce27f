package placesapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/config"
	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/domain/repository"
)

func newTestClient(baseURL string) repository.PlaceRepository {
	cfg := &config.BackendConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
	}
	return NewClient(cfg, zap.NewNop())
}

func TestFetchPlaces(t *testing.T) {
	t.Run("maps the backend payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/places", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"places": [
				{"nombre": "Parque de la Identidad", "descripcion_corta": "Parque temático huanca", "categoria": "Parques", "ubicacion": "-12.0547, -75.2001", "imagen_url": "https://example.test/identidad.jpg"},
				{"nombre": "Casa del Artesano", "descripcion_completa": "Venta de artesanía del valle", "categoria": "Centros Comerciales", "ubicacion": "sin ubicación"}
			]}`))
		}))
		defer server.Close()

		spots, err := newTestClient(server.URL).FetchPlaces(context.Background(), repository.PlaceQuery{})

		require.NoError(t, err)
		require.Len(t, spots, 2)

		first := spots[0]
		assert.Equal(t, "Parque de la Identidad", first.Name)
		assert.Equal(t, "Parque temático huanca", first.Description)
		assert.Equal(t, domain.CategoryParques, first.Category)
		require.True(t, first.HasCoordinates())
		assert.InDelta(t, -12.0547, first.Coordinates.Lat, 0.0001)

		// Unparsable ubicacion keeps the place, without coordinates.
		second := spots[1]
		assert.Equal(t, domain.CategoryTiendas, second.Category)
		assert.False(t, second.HasCoordinates())
		assert.Equal(t, "Venta de artesanía del valle", second.Description)
	})

	t.Run("categories translate to backend ids in the query", func(t *testing.T) {
		var gotQuery map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"places": []}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FetchPlaces(context.Background(), repository.PlaceQuery{
			Categories: []domain.Category{domain.CategoryMonumentos, domain.CategoryTiendas, domain.CategoryParques},
			Search:     "artesanía",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"patrimonio", "centros-comerciales", "parques"}, gotQuery["category"])
		assert.Equal(t, []string{"artesanía"}, gotQuery["search"])
	})

	t.Run("ids survive a backend reorder", func(t *testing.T) {
		// Marker identity and delete tombstones key on the id, so a backend
		// that shuffles its list must not shift ids.
		ordered := `{"places": [
			{"nombre": "Parque de la Identidad", "categoria": "Parques", "ubicacion": "-12.0547, -75.2001"},
			{"nombre": "Casa del Artesano", "categoria": "Centros Comerciales", "ubicacion": "-12.0680, -75.2102"}
		]}`
		reversed := `{"places": [
			{"nombre": "Casa del Artesano", "categoria": "Centros Comerciales", "ubicacion": "-12.0680, -75.2102"},
			{"nombre": "Parque de la Identidad", "categoria": "Parques", "ubicacion": "-12.0547, -75.2001"}
		]}`

		payload := ordered
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		first, err := c.FetchPlaces(context.Background(), repository.PlaceQuery{})
		require.NoError(t, err)

		payload = reversed
		second, err := c.FetchPlaces(context.Background(), repository.PlaceQuery{})
		require.NoError(t, err)

		byName := func(spots []domain.Spot) map[string]string {
			ids := make(map[string]string, len(spots))
			for _, s := range spots {
				ids[s.Name] = s.ID
			}
			return ids
		}
		assert.Equal(t, byName(first), byName(second))
		assert.Equal(t, "parque-de-la-identidad", byName(first)["Parque de la Identidad"])
	})

	t.Run("duplicate names get distinct ids", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"places": [
				{"nombre": "Mirador", "categoria": "Parques", "ubicacion": "-12.05, -75.20"},
				{"nombre": "Mirador", "categoria": "Parques", "ubicacion": "-12.06, -75.21"}
			]}`))
		}))
		defer server.Close()

		spots, err := newTestClient(server.URL).FetchPlaces(context.Background(), repository.PlaceQuery{})
		require.NoError(t, err)
		require.Len(t, spots, 2)
		assert.Equal(t, "mirador", spots[0].ID)
		assert.Equal(t, "mirador-2", spots[1].ID)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FetchPlaces(context.Background(), repository.PlaceQuery{})
		assert.Error(t, err)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"places": [`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FetchPlaces(context.Background(), repository.PlaceQuery{})
		assert.Error(t, err)
	})
}

func TestParseUbicacion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *domain.Coordinates
	}{
		{"plain pair", "-12.0651, -75.2049", &domain.Coordinates{Lat: -12.0651, Lon: -75.2049}},
		{"no spaces", "-12.0651,-75.2049", &domain.Coordinates{Lat: -12.0651, Lon: -75.2049}},
		{"missing comma", "-12.0651 -75.2049", nil},
		{"non-numeric", "plaza, huancayo", nil},
		{"empty", "", nil},
		{"half pair", "-12.0651,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseUbicacion(tt.input))
		})
	}
}

func TestMapBackendCategory(t *testing.T) {
	tests := []struct {
		input string
		want  domain.Category
	}{
		{"Parques", domain.CategoryParques},
		{"NATURALEZA", domain.CategoryParques},
		{"patrimonio", domain.CategoryMonumentos},
		{"Gastronomía", domain.CategoryRestaurantes},
		{"centros-comerciales", domain.CategoryTiendas},
		{"Vida Nocturna", domain.CategoryBares},
		{"algo raro", domain.CategoryOtros},
		{"", domain.CategoryOtros},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MapBackendCategory(tt.input), "input %q", tt.input)
	}
}

func TestLocalPlaces(t *testing.T) {
	places := LocalPlaces()
	assert.GreaterOrEqual(t, len(places), 8)

	// Every bundled place must be renderable.
	for _, p := range places {
		assert.True(t, p.HasCoordinates(), "place %s", p.Name)
		assert.NotEmpty(t, p.Color)
		// The whole dataset sits in the Mantaro valley.
		assert.InDelta(t, -12.06, p.Coordinates.Lat, 0.05)
		assert.InDelta(t, -75.20, p.Coordinates.Lon, 0.05)
	}

	// Callers get a copy.
	places[0].Name = "mutated"
	assert.NotEqual(t, "mutated", LocalPlaces()[0].Name)
}
