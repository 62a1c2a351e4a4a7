package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"giveaway/internal/config"
	"giveaway/internal/database"
	"giveaway/internal/handler"
	"giveaway/internal/logger"
	"giveaway/internal/mw"
	"giveaway/internal/service"
	"giveaway/internal/store"
)

func main() {
	cfg := config.New()

	log := logger.New(cfg.LogLevel, false)
	defer func() { _ = log.Sync() }()

	db, err := database.NewDB(cfg.DatabaseURI)
	if err != nil {
		log.Fatal("failed to connect to DB", logger.Error(err))
	}
	defer func() {
		if err := database.CloseDB(db); err != nil {
			log.Error("failed to close DB", logger.Error(err))
		}
	}()

	if err := database.InitSchema(db); err != nil {
		log.Fatal("failed to init DB schema", logger.Error(err))
	}

	// Stores and services
	st := store.NewPostgres(db)
	authSvc := service.NewCharityAuth(st)
	pickupSvc := service.NewPickupService(st, log)
	intakeSvc := service.NewIntakeService(st, st)
	sampleSvc := service.NewSampleService(authSvc, st, st)

	// Seed at boot so the first dashboard load never writes.
	if err := pickupSvc.EnsureSeeded(context.Background()); err != nil {
		log.Fatal("failed to seed pickups", logger.Error(err))
	}

	// Router
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	r.Get("/health", handler.HealthHandler())
	r.Post("/api/saveFormData", handler.SaveFormDataHandler(intakeSvc, log))
	r.Get("/api/getFormData", handler.GetFormDataHandler(intakeSvc, log))
	r.Post("/api/charity/login", handler.LoginHandler(authSvc, cfg.JWTSecret, log))
	r.Post("/api/sample-data", handler.SampleDataHandler(sampleSvc, log))

	// Charity dashboard routes
	r.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.JWTSecret))

		r.Get("/api/charity/pickups", handler.ListPickupsHandler(pickupSvc, log))
		r.Patch("/api/charity/pickups/{id}", handler.PatchPickupStatusHandler(pickupSvc, log))
	})

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	log.Info("starting server", logger.String("addr", cfg.RunAddress))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", logger.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		log.Error("server shutdown failed", logger.Error(err))
	}

	log.Info("server stopped")
}
