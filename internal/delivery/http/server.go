package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/memoria-radar/internal/config"
	"github.com/memoria-radar/internal/delivery/http/handler"
	"github.com/memoria-radar/internal/delivery/http/middleware"
)

// Server - servidor HTTP sobre Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	placeHandler  *handler.PlaceHandler
	filterHandler *handler.FilterHandler
	geoHandler    *handler.GeoHandler
}

// NewServer - crea el servidor HTTP
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	placeHandler *handler.PlaceHandler,
	filterHandler *handler.FilterHandler,
	geoHandler *handler.GeoHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Memoria Radar",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		placeHandler:  placeHandler,
		filterHandler: filterHandler,
		geoHandler:    geoHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Place routes
	api.Get("/places", s.placeHandler.ListPlaces)
	api.Post("/places", s.placeHandler.CreatePlace)
	api.Delete("/places/:id", s.placeHandler.DeletePlace)
	api.Get("/places/suggestions", s.placeHandler.Suggest)

	// Filter routes
	api.Get("/filter", s.filterHandler.GetState)
	api.Delete("/filter", s.filterHandler.ClearFilters)
	api.Post("/filter/category", s.filterHandler.SetManualFilter)
	api.Post("/filter/mentioned", s.filterHandler.SetMentionedFilter)
	api.Post("/chat/message", s.filterHandler.ProcessChatMessage)

	// Geo routes
	api.Post("/extract", s.geoHandler.Extract)
	api.Get("/route", s.geoHandler.GetRoute)
}

// Start - arranca el servidor HTTP
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - apagado ordenado del servidor HTTP
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App expone la instancia de Fiber para pruebas.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
