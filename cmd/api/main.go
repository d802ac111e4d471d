package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"roomhub/internal/config"
	"roomhub/internal/database"
	"roomhub/internal/middleware"
	"roomhub/internal/modules/auth"
	"roomhub/internal/modules/booking"
	"roomhub/internal/modules/catalog"
	"roomhub/internal/modules/timetable"
	jwtsvc "roomhub/internal/pkg/jwt"
	"roomhub/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("config")
	}

	log := newLogger(cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect")
	}

	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := timetable.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(orgRepo, roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, roomRepo, orgRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	timetableService := timetable.NewService(bookingRepo, orgRepo)
	timetableHandler := timetable.NewHandler(timetableService, hub)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)

			owner := protected.Group("/")
			owner.Use(middleware.RequireRole("owner", "admin"))
			{
				catalogHandler.RegisterOwnerRoutes(owner)
				timetableHandler.RegisterRoutes(owner)
			}
		}
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(appEnv string) zerolog.Logger {
	if appEnv == "dev" {
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		return zerolog.New(output).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
