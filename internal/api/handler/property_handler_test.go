package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stayfinder/internal/api/middleware"
	"stayfinder/internal/app/service"
	"stayfinder/internal/domain/model"
	"stayfinder/internal/domain/repository"
	"stayfinder/internal/platform/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPropertyTestRouter(t *testing.T) (http.Handler, repository.PropertyRepository, session.Store) {
	t.Helper()
	propertyRepo := repository.NewMemoryPropertyRepository()
	sessions := session.NewMemoryStore()
	propertyService := service.NewPropertyService(propertyRepo)

	r := chi.NewRouter()
	r.Route("/api/v1/properties", NewPropertyHandler(propertyService, middleware.Authenticator(sessions)).RegisterRoutes)
	return r, propertyRepo, sessions
}

func sessionCookie(t *testing.T, sessions session.Store, userID int) *http.Cookie {
	t.Helper()
	sessionID, err := sessions.Create(context.Background(), userID)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: sessionID}
}

func TestSearchPropertiesByCity(t *testing.T) {
	router, repo, _ := newPropertyTestRouter(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Property{Title: "Loft", City: "Vancouver", CostPerNight: 15000})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Property{Title: "Condo", City: "Toronto", CostPerNight: 20000})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?city=van", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Properties []model.Property `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Properties, 1)
	assert.Equal(t, "Vancouver", body.Properties[0].City)
}

func TestSearchPropertiesEmptyResult(t *testing.T) {
	router, _, _ := newPropertyTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?city=calgary", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"properties":[]`)
}

func TestCreatePropertyRequiresSession(t *testing.T) {
	router, _, _ := newPropertyTestRouter(t)

	resp := postJSON(t, router, "/api/v1/properties", map[string]any{
		"title": "Loft", "city": "Vancouver", "cost_per_night": 15000,
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCreateProperty(t *testing.T) {
	router, _, sessions := newPropertyTestRouter(t)
	cookie := sessionCookie(t, sessions, 7)

	resp := postJSON(t, router, "/api/v1/properties", map[string]any{
		"title": "Sea View Loft", "city": "Vancouver", "cost_per_night": 15000,
	}, []*http.Cookie{cookie})

	require.Equal(t, http.StatusCreated, resp.Code)

	var created model.Property
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, 7, created.OwnerID)
	assert.Equal(t, "sea-view-loft", created.Slug)
	assert.True(t, created.Active)
}

func TestCreatePropertyValidation(t *testing.T) {
	router, _, sessions := newPropertyTestRouter(t)
	cookie := sessionCookie(t, sessions, 7)

	resp := postJSON(t, router, "/api/v1/properties", map[string]any{
		"title": "", "city": "Vancouver", "cost_per_night": 15000,
	}, []*http.Cookie{cookie})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
