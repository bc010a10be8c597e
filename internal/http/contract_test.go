//go:build contract

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contractRouter(t *testing.T) *gin.Engine {
	routes := newTestRoutes(t)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery(), middleware.ErrorHandler())
	NewHealthHandler().Register(router)
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)
	protected := api.Group("", middleware.HeaderIdentity())
	routes.RegisterRoutes(protected)
	return router
}

// TestAPI_ContractCompliance validates that API responses match the documented contract.
func TestAPI_ContractCompliance(t *testing.T) {
	router := contractRouter(t)

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		headers          map[string]string
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "POST /api/inventory/packages - Success 201",
			method:         http.MethodPost,
			path:           "/api/inventory/packages",
			body:           flourBody,
			headers:        map[string]string{middleware.UserIDHeader: "alice"},
			expectedStatus: http.StatusCreated,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				// Validate dto.SuccessResponse structure
				assert.NotEmpty(t, resp.RequestID, "Response must include request_id")
				assert.NotZero(t, resp.Timestamp, "Response must include timestamp")

				pkgs, ok := resp.Data.([]interface{})
				require.True(t, ok, "Data must be a package list")
				require.NotEmpty(t, pkgs)

				for _, raw := range pkgs {
					pkg, ok := raw.(map[string]interface{})
					require.True(t, ok)
					for _, field := range []string{"id", "item_name", "original_quantity", "total_quantity", "unit", "location_id", "owner_id", "is_private", "version"} {
						assert.Contains(t, pkg, field)
					}
					// Quantities are decimal strings
					_, isString := pkg["total_quantity"].(string)
					assert.True(t, isString, "total_quantity must be a decimal string")
				}
			},
		},
		{
			name:           "GET /api/inventory - Success 200",
			method:         http.MethodGet,
			path:           "/api/inventory",
			headers:        map[string]string{middleware.UserIDHeader: "alice"},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				_, ok := resp.Data.([]interface{})
				assert.True(t, ok, "Data must be a group list")
			},
		},
		{
			name:           "POST /api/inventory/transfers - Error 422 carries a reason",
			method:         http.MethodPost,
			path:           "/api/inventory/transfers",
			body:           `{"group_key": "flour|g", "operation": "donate", "selections": {"500": {"full_count": 1}}}`,
			headers:        map[string]string{middleware.UserIDHeader: "alice"},
			expectedStatus: http.StatusUnprocessableEntity,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

				assert.Equal(t, dto.ErrCodeUnprocessable, resp.Error)
				assert.Equal(t, "unknown_operation", resp.Details["reason"])
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
			},
		},
		{
			name:           "POST /api/inventory/packages - Error 400 Invalid JSON",
			method:         http.MethodPost,
			path:           "/api/inventory/packages",
			body:           `invalid json`,
			headers:        map[string]string{middleware.UserIDHeader: "alice"},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
			},
		},
		{
			name:           "GET /api/inventory - Error 401 without identity",
			method:         http.MethodGet,
			path:           "/api/inventory",
			expectedStatus: http.StatusUnauthorized,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error)
			},
		},
		{
			name:           "GET /healthz - Success 200",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Contains(t, resp, "status")
				assert.Equal(t, "ok", resp["status"])
			},
		},
		{
			name:           "GET /readyz - Success 200",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Contains(t, resp, "status")
				assert.Contains(t, resp, "checks")
				assert.Equal(t, "ok", resp["status"])
				assert.Equal(t, "memory", resp["storage"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewReader([]byte(tt.body)))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			// Validate X-Request-ID header
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "Response must include X-Request-ID header")

			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}

// TestAPI_Headers validates required headers are present.
func TestAPI_Headers(t *testing.T) {
	router := contractRouter(t)

	for _, path := range []string{"/api/units", "/healthz"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "Header X-Request-ID must be present")
		})
	}
}
