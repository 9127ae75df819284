package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"turfnest/internal/cache"
	"turfnest/internal/config"
	"turfnest/internal/database"
	"turfnest/internal/handlers"
	"turfnest/internal/localstore"
	"turfnest/internal/logger"
	"turfnest/internal/messaging"
	"turfnest/internal/middleware"
	"turfnest/internal/repository"
	"turfnest/internal/service"
	"turfnest/internal/source"
)

// Server is the HTTP API server and owns every long-lived collaborator.
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	store    *localstore.Store
	nats     *messaging.NATSClient
	cache    *cache.Client
	services *service.Services
}

// NewServer wires the full application. The remote database, the cache and
// the event broker are all optional at startup; only the embedded local store
// is required.
func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Warn("Remote database unavailable, serving the bundled catalogue", "error", err)
		db = nil
	} else if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	store, err := localstore.Open(cfg.LocalStorePath)
	if err != nil {
		return nil, err
	}

	natsClient := messaging.NewNATSClient(cfg.NATS)

	var cacheClient *cache.Client
	if cfg.CacheEnabled {
		cacheClient, err = cache.NewClient()
		if err != nil {
			slog.Warn("Cache unavailable, serving uncached", "error", err)
			cacheClient = nil
		}
	}

	repos := repository.NewRepositories(db)
	coordinator := source.NewCoordinator(store,
		source.NewRemoteProvider(repos.Turfs, repos.Sports),
		source.NewSeedProvider(),
	)
	services := service.NewServices(repos, coordinator, store, natsClient, cacheClient)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		store:    store,
		nats:     natsClient,
		cache:    cacheClient,
		services: services,
	}
	server.setupRoutes()

	return server, nil
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services)

	s.router.GET("/health", h.HealthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api")
	{
		api.GET("/sports", h.ListSports)

		turfs := api.Group("/turfs")
		{
			turfs.GET("", h.ListTurfs)
			turfs.POST("", h.CreateTurf)
			turfs.GET("/:id", h.GetTurf)
			turfs.GET("/:id/slots", h.ListSlots)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", h.ListBookings)
			bookings.POST("", h.CreateBooking)
		}
	}
}

// GetRouter returns the underlying gin router.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes the optional collaborators.
func (s *Server) Cleanup() error {
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			slog.Error("Failed to close cache client", "error", err)
		}
	}
	if err := s.nats.Close(); err != nil {
		slog.Error("Failed to close NATS connection", "error", err)
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
