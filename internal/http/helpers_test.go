package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/guttosm/pantry-service/internal/middleware"
	"github.com/guttosm/pantry-service/internal/repository"
	"github.com/guttosm/pantry-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type denyLimiter struct{ calls int }

func (d *denyLimiter) TryAcquire(string) bool {
	d.calls++
	return false
}

func newTestRoutes(t testing.TB, opts ...HandlerOption) *InventoryRoutes {
	t.Helper()
	locations := repository.NewMemoryLocationsRepository()
	for _, loc := range []model.Location{
		{ID: "pantry-1", Name: "Pantry", Kind: model.StoragePantry, OwnerID: "alice", HouseholdID: "home"},
		{ID: "fridge-1", Name: "Fridge", Kind: model.StorageFridge, OwnerID: "alice", HouseholdID: "home"},
		{ID: "freezer-1", Name: "Freezer", Kind: model.StorageFreezer, OwnerID: "alice", HouseholdID: "home"},
	} {
		loc := loc
		require.NoError(t, locations.Create(context.Background(), &loc))
	}
	inv := service.NewInventoryService(repository.NewMemoryPackagesRepository(), locations)
	return NewInventoryRoutes(
		NewHandler(inv, opts...),
		NewLocationsHandler(service.NewLocationService(locations), quantity.SystemMetric),
	)
}

func setupRouter(t testing.TB, opts ...HandlerOption) *gin.Engine {
	t.Helper()
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	return NewRouter(newTestRoutes(t, opts...), NewHealthHandler(), cfg)
}

func doRequest(router *gin.Engine, method, path, body, user string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(middleware.UserIDHeader, user)
		req.Header.Set(middleware.HouseholdIDHeader, "home")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func findGroup(groups []dto.GroupResponse, key string) (dto.GroupResponse, bool) {
	for _, g := range groups {
		if g.Key == key {
			return g, true
		}
	}
	return dto.GroupResponse{}, false
}

const flourBody = `{"item_name": "Flour", "unit": "g", "package_size": 500, "full_packages": 2, "opened_remaining": 200, "location_id": "pantry-1"}`
