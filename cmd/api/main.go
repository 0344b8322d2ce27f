package main

// @title Memoria Radar API
// @version 1.0.0
// @description Servicio del radar turístico de Huancayo. Expone el catálogo de lugares y eventos, el estado global de filtros compartido con el mapa y el chat, la extracción de direcciones por geocodificación inversa y el cálculo de rutas en auto.
// @description
// @description Capacidades principales:
// @description - Catálogo de lugares con filtrado, búsqueda y orden
// @description - Filtro global compartido (categoría manual y lugares mencionados)
// @description - Extracción de direcciones combinando varios niveles de zoom
// @description - Rutas en auto con distancia y duración

// @contact.name API Support
// @contact.email soporte@memoria-radar.pe

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/memoria-radar/docs/swagger"
	"github.com/memoria-radar/internal/config"
	httpDelivery "github.com/memoria-radar/internal/delivery/http"
	"github.com/memoria-radar/internal/delivery/http/handler"
	"github.com/memoria-radar/internal/domain/repository"
	"github.com/memoria-radar/internal/filterbus"
	"github.com/memoria-radar/internal/infrastructure/nominatim"
	"github.com/memoria-radar/internal/infrastructure/osrm"
	"github.com/memoria-radar/internal/infrastructure/placesapi"
	"github.com/memoria-radar/internal/pkg/logger"
	"github.com/memoria-radar/internal/repository/cache"
	"github.com/memoria-radar/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Memoria Radar")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to Redis. The cache is optional: geocoding and routing
	// degrade to uncached upstream calls without it.
	var cacheRepo repository.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}

		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected")
	} else {
		log.Info("Redis disabled, running without cache")
	}

	// 4. Initialize upstream clients
	placeRepo := placesapi.NewClient(&cfg.Backend, log)
	geocodeRepo := nominatim.NewClient(&cfg.Nominatim, log)
	routeRepo := osrm.NewClient(&cfg.OSRM, log)

	log.Info("Upstream clients initialized")

	// 5. Initialize the shared filter bus
	bus := filterbus.Default()

	// 6. Initialize Use Cases
	placesUC := usecase.NewPlacesUseCase(placeRepo, log)

	extractionUC := usecase.NewExtractionUseCase(
		geocodeRepo,
		cacheRepo,
		log,
		cfg.Nominatim.ExtractionZooms,
		cfg.Cache.GeocodeTTL,
	)

	routeUC := usecase.NewRouteUseCase(
		routeRepo,
		cacheRepo,
		log,
		cfg.Cache.RouteTTL,
	)

	chatUC := usecase.NewChatFilterUseCase(placesUC, bus, log)

	log.Info("Use cases initialized")

	// 7. Initialize Handlers
	placeHandler := handler.NewPlaceHandler(placesUC, log)
	filterHandler := handler.NewFilterHandler(bus, chatUC, log)
	geoHandler := handler.NewGeoHandler(extractionUC, routeUC, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		placeHandler,
		filterHandler,
		geoHandler,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Memoria Radar started successfully")

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	// 11. Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Memoria Radar stopped")
}
