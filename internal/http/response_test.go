package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/i18n"
	"github.com/guttosm/pantry-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builderContext(locale string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/inventory/eat", nil)
	if locale != "" {
		c.Request.Header.Set(i18n.AcceptLanguageHeader, locale)
	}
	middleware.RequestID()(c)
	return c, w
}

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name       string
		send       func(*ResponseBuilder)
		wantStatus int
		wantData   string
	}{
		{
			name: "location listing",
			send: func(b *ResponseBuilder) {
				b.SuccessOK([]dto.LocationResponse{{ID: "fridge-1", Name: "Kitchen fridge", Kind: "fridge", OwnerID: "alice"}})
			},
			wantStatus: http.StatusOK,
			wantData:   `[{"id":"fridge-1","name":"Kitchen fridge","kind":"fridge","owner_id":"alice","created_at":"0001-01-01T00:00:00Z"}]`,
		},
		{
			name:       "created location",
			send:       func(b *ResponseBuilder) { b.SuccessCreated(map[string]string{"id": "cellar"}) },
			wantStatus: http.StatusCreated,
			wantData:   `{"id":"cellar"}`,
		},
		{
			name:       "explicit status",
			send:       func(b *ResponseBuilder) { b.Success(http.StatusAccepted, nil) },
			wantStatus: http.StatusAccepted,
			wantData:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := builderContext("")

			tt.send(NewResponseBuilder(c))

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp struct {
				Data      json.RawMessage `json:"data"`
				RequestID string          `json:"request_id"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.JSONEq(t, tt.wantData, string(resp.Data))
			assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), resp.RequestID)
		})
	}
}

func TestResponseBuilder_Error(t *testing.T) {
	tests := []struct {
		name        string
		locale      string
		status      int
		key         string
		details     map[string]string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "unknown group",
			status:      http.StatusNotFound,
			key:         i18n.ErrKeyGroupNotFound,
			err:         errors.New("group oats|g"),
			wantCode:    dto.ErrCodeNotFound,
			wantMessage: "Item not found in your inventory",
		},
		{
			name:        "translated for dutch clients",
			locale:      "nl-NL,nl;q=0.9",
			status:      http.StatusNotFound,
			key:         i18n.ErrKeyGroupNotFound,
			wantCode:    dto.ErrCodeNotFound,
			wantMessage: "Artikel niet gevonden in je voorraad",
		},
		{
			name:        "field details",
			status:      http.StatusBadRequest,
			key:         i18n.ErrKeyInvalidRequestBody,
			details:     map[string]string{"items.0.amount": "must be positive"},
			wantCode:    dto.ErrCodeInvalidRequest,
			wantMessage: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := builderContext(tt.locale)

			NewResponseBuilder(c).ErrorWithDetails(tt.status, tt.key, tt.details, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, c.IsAborted())
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.details, resp.Details)
			assert.NotEmpty(t, resp.RequestID)

			if tt.err != nil {
				require.Len(t, c.Errors, 1)
				assert.Equal(t, tt.err, c.Errors.Last().Err)
			} else {
				assert.Empty(t, c.Errors)
			}
		})
	}
}

func TestResponseBuilder_PooledEnvelopesDoNotLeak(t *testing.T) {
	first, w1 := builderContext("")
	NewResponseBuilder(first).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidation,
		map[string]string{"name": "is required"}, nil)
	require.Contains(t, w1.Body.String(), "is required")

	second, w2 := builderContext("")
	NewResponseBuilder(second).Error(http.StatusConflict, i18n.ErrKeyConcurrentUpdate, nil)

	assert.NotContains(t, w2.Body.String(), "details")
	assert.NotContains(t, w2.Body.String(), w1.Header().Get(middleware.RequestIDHeader))
}
