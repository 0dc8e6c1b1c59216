package handler

import (
	"net/http"
	"strconv"

	"stayfinder/internal/api/middleware"
	"stayfinder/internal/app/service"
	"stayfinder/internal/common"
	"stayfinder/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type ReservationHandler struct {
	reservationService *service.ReservationService
	authenticator      func(http.Handler) http.Handler
}

func NewReservationHandler(reservationService *service.ReservationService, authenticator func(http.Handler) http.Handler) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService, authenticator: authenticator}
}

func (h *ReservationHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(authed chi.Router) {
		authed.Use(h.authenticator)
		authed.Get("/", h.listReservations) // GET /api/v1/reservations
	})
}

func (h *ReservationHandler) listReservations(w http.ResponseWriter, r *http.Request) {
	guestID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	reservations, err := h.reservationService.ListForGuest(r.Context(), guestID, limit)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	type reservationsResponse struct {
		Reservations []model.GuestReservation `json:"reservations"`
	}
	common.RespondWithJSON(w, http.StatusOK, reservationsResponse{Reservations: reservations})
}
