package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"sportshub/internal/bookings"
	"sportshub/internal/bookings/booking_api"
	"sportshub/internal/catalog"
	"sportshub/internal/catalog/catalog_api"
	"sportshub/internal/config"
	"sportshub/internal/diagnostics"
	"sportshub/internal/logger"
	"sportshub/internal/social"
	"sportshub/internal/social/social_api"
	"sportshub/internal/store"
)

// connectStore dials the document store once for the process lifetime. A
// failed connection is not fatal: catalog endpoints keep serving and the
// persisted resources report the store as unavailable.
func connectStore(ctx context.Context, cfg *config.Config, log *logger.Logger) *store.MongoStore {
	if cfg.Database.URL == "" {
		log.Warn("DATABASE", "DATABASE_URL not set, starting without a document store")
		return store.Disconnected()
	}

	st, err := store.Connect(ctx, cfg.Database.URL, cfg.Database.Name)
	if err != nil {
		log.Warn("DATABASE", fmt.Sprintf("Store connection failed, continuing degraded: %v", err))
		return store.Disconnected()
	}

	log.Info("DATABASE", fmt.Sprintf("✅ MongoDB connection successful (database: %s)", st.Name()))
	return st
}

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting Sports Hub API initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()
	ctx := context.Background()

	st := connectStore(ctx, cfg, log)
	defer func() {
		if err := st.Close(ctx); err != nil {
			log.Error("DATABASE", fmt.Sprintf("Failed to close store connection: %v", err))
		}
	}()

	catalogService := catalog.NewService()
	bookingService := bookings.NewService(st)
	socialService := social.NewService(st)

	catalogHandler := catalog_api.NewHandler(catalogService, log)
	bookingHandler := booking_api.NewHandler(bookingService, log)
	socialHandler := social_api.NewHandler(socialService, log)
	diagHandler := diagnostics.NewHandler(st, cfg.DatabaseURLSet(), log)

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/", diagHandler.Root)
	r.Get("/test", diagHandler.Probe)

	r.Route("/api", func(r chi.Router) {
		r.Get("/offers", catalogHandler.GetOffers)
		r.Get("/venues", catalogHandler.GetVenues)
		r.Get("/events", catalogHandler.GetEvents)
		r.Get("/activities/recent", catalogHandler.GetRecentActivities)
		r.Get("/recommendations/recovery", catalogHandler.GetRecoveryPicks)

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", bookingHandler.CreateBooking)
			r.Get("/", bookingHandler.ListBookings)
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", socialHandler.ListGames)
			r.Post("/", socialHandler.CreateGame)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", socialHandler.ListPosts)
			r.Post("/", socialHandler.CreatePost)
		})
	})
	log.Info("ROUTER", "Catalog, booking, social and diagnostics routes registered")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("🚀 Sports Hub API running on :%d", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		log.Info("HTTP", "✅ Sports Hub API shutdown complete")
	}
}
