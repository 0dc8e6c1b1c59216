package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayfinder/internal/api"
	"stayfinder/internal/app/service"
	"stayfinder/internal/common/security"
	"stayfinder/internal/domain/repository"
	"stayfinder/internal/platform/config"
	"stayfinder/internal/platform/database"
	"stayfinder/internal/platform/session"
)

func main() {
	// 1. Load Configuration
	config.Load()
	log.Println("Configuration loaded.")

	// 2. Initialize Database
	database.Connect()
	defer database.Close()

	// 3. Initialize Session Store
	sessions := session.NewRedisStore()
	defer sessions.Close()

	// 4. Initialize Repositories
	timeout := config.AppConfig.StatementTimeout
	userRepo := repository.NewPgUserRepository(database.DB, timeout)
	propertyRepo := repository.NewPgPropertyRepository(database.DB, timeout)
	reservationRepo := repository.NewPgReservationRepository(database.DB, timeout)

	// 5. Initialize Services
	hasher := security.NewBcryptHasher()
	authService := service.NewAuthService(userRepo, hasher, sessions)
	propertyService := service.NewPropertyService(propertyRepo)
	reservationService := service.NewReservationService(reservationRepo)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(authService, propertyService, reservationService, sessions)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
