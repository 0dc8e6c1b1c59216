package api

import (
	"net/http"
	"time"

	"stayfinder/internal/api/handler"
	"stayfinder/internal/api/middleware"
	"stayfinder/internal/app/service"
	"stayfinder/internal/platform/session"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(
	authService *service.AuthService,
	propertyService *service.PropertyService,
	reservationService *service.ReservationService,
	sessions session.Store,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	authenticator := middleware.Authenticator(sessions)

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		// User/auth routes: register, login, logout, me
		authHandler := handler.NewAuthHandler(authService)
		v1.Route("/users", authHandler.RegisterRoutes)

		// Property search is public, creating a listing requires a session
		propertyHandler := handler.NewPropertyHandler(propertyService, authenticator)
		v1.Route("/properties", propertyHandler.RegisterRoutes)

		// Reservation listing for the logged-in guest
		reservationHandler := handler.NewReservationHandler(reservationService, authenticator)
		v1.Route("/reservations", reservationHandler.RegisterRoutes)
	})

	return r
}
