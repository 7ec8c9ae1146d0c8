package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hanksha/padel-booking-backend/api"
	"github.com/hanksha/padel-booking-backend/auth"
	"github.com/hanksha/padel-booking-backend/config"
	"github.com/hanksha/padel-booking-backend/court"
	"github.com/hanksha/padel-booking-backend/database"
	"github.com/hanksha/padel-booking-backend/logging"
	"github.com/hanksha/padel-booking-backend/notify"
	rs "github.com/hanksha/padel-booking-backend/reservation"
	"github.com/hanksha/padel-booking-backend/user"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Env)

	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("connecting to PostgreSQL database")
	pool, err := database.Open(ctx, cfg.DatabaseURL)

	if err != nil {
		logger.Fatal("unable to connect to database", zap.Error(err))
	}

	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	logger.Info("database schema up to date")

	var notifier rs.Notifier = notify.Nop{}

	if cfg.NotificationsEnabled() {
		notifier = notify.NewReservationNotifier(notify.NewClient(cfg.DiscordBotToken), cfg.DiscordChannelID, logger)
	} else {
		logger.Info("discord notifications disabled")
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	courtService := court.NewService(court.NewRepository(pool))
	userService := user.NewService(user.NewRepository(pool), tokens)
	reservationService := rs.NewService(rs.NewRepository(pool), courtService, notifier, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), api.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", api.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", api.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.NewHealthHandler(database.ReadyCheck(pool)).Register(r)

	v1 := r.Group("/api/v1")
	authenticate := api.Authenticate(tokens, userService)

	// USERS API

	userHandler := api.NewUserHandler(userService)
	userHandler.RegisterAuth(v1.Group("/auth"), api.RateLimit(cfg.AuthRateLimit, logger))
	userHandler.Register(v1.Group("/users"), authenticate)

	// COURTS API

	api.NewCourtHandler(courtService, reservationService).Register(v1.Group("/courts"), authenticate)

	// RESERVATIONS API

	api.NewReservationHandler(reservationService).Register(v1.Group("/reservations"), authenticate)
	api.NewStatsHandler(reservationService).Register(v1.Group("/stats"), authenticate)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
	}

	logger.Info("http server stopped")
}
