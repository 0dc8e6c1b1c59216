package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"stayfinder/internal/api/middleware"
	"stayfinder/internal/app/service"
	"stayfinder/internal/common"
	"stayfinder/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type PropertyHandler struct {
	propertyService *service.PropertyService
	authenticator   func(http.Handler) http.Handler
}

func NewPropertyHandler(propertyService *service.PropertyService, authenticator func(http.Handler) http.Handler) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, authenticator: authenticator}
}

func (h *PropertyHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.searchProperties) // GET /api/v1/properties?city=van&minimum_price_per_night=50

	r.Group(func(authed chi.Router) {
		authed.Use(h.authenticator)
		authed.Post("/", h.createProperty) // POST /api/v1/properties
	})
}

// parseSearchFilter builds a SearchFilter from query parameters. When no
// criterion is present the filter is nil and the search returns everything
// up to the limit.
func parseSearchFilter(r *http.Request) *model.SearchFilter {
	q := r.URL.Query()
	filter := &model.SearchFilter{}
	present := false

	if city := q.Get("city"); city != "" {
		filter.City = city
		present = true
	}
	if v, err := strconv.Atoi(q.Get("minimum_price_per_night")); err == nil {
		filter.MinimumPricePerNight = &v
		present = true
	}
	if v, err := strconv.Atoi(q.Get("maximum_price_per_night")); err == nil {
		filter.MaximumPricePerNight = &v
		present = true
	}
	if v, err := strconv.ParseFloat(q.Get("minimum_rating"), 64); err == nil {
		filter.MinimumRating = &v
		present = true
	}
	if v, err := strconv.Atoi(q.Get("owner_id")); err == nil {
		filter.OwnerID = &v
		present = true
	}

	if !present {
		return nil
	}
	return filter
}

func (h *PropertyHandler) searchProperties(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	properties, err := h.propertyService.Search(r.Context(), parseSearchFilter(r), limit)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	type propertiesResponse struct {
		Properties []model.Property `json:"properties"`
	}
	common.RespondWithJSON(w, http.StatusOK, propertiesResponse{Properties: properties})
}

func (h *PropertyHandler) createProperty(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	property, err := h.propertyService.Create(r.Context(), ownerID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, property)
}
