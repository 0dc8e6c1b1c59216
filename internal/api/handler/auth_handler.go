package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"stayfinder/internal/api/middleware"
	"stayfinder/internal/app/service"
	"stayfinder/internal/common"
	"stayfinder/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.register)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.Get("/me", h.me)
}

// userPayload is the wire shape for a user: name, email and id only, never
// the password hash.
type userPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	ID    int    `json:"id"`
}

type userResponse struct {
	User userPayload `json:"user"`
}

func wrapUser(user *model.User) userResponse {
	return userResponse{User: userPayload{Name: user.Name, Email: user.Email, ID: user.ID}}
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, sessionID, err := h.authService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	h.setSessionCookie(w, sessionID)
	common.RespondWithJSON(w, http.StatusCreated, wrapUser(user))
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, sessionID, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	h.setSessionCookie(w, sessionID)
	common.RespondWithJSON(w, http.StatusOK, wrapUser(user))
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), middleware.SessionID(r)); err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.clearSessionCookie(w)
	common.RespondWithJSON(w, http.StatusOK, struct{}{})
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.CurrentUser(r.Context(), middleware.SessionID(r))
	if err != nil {
		// "Not logged in" is an expected state for this route, not a failure.
		if errors.Is(err, common.ErrUnauthenticated) {
			common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "not logged in"})
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, wrapUser(user))
}
