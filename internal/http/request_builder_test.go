package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bodyContext(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/locations", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantName       string
		wantValidation string
		wantErr        error
	}{
		{
			name:     "valid location",
			body:     `{"name": "Garage freezer", "kind": "freezer", "shared": true}`,
			wantName: "Garage freezer",
		},
		{
			name:     "trailing whitespace is fine",
			body:     "{\"name\": \"Cellar\", \"kind\": \"pantry\"}\n\n",
			wantName: "Cellar",
		},
		{
			name:           "validation runs after decoding",
			body:           `{"name": "Cellar", "kind": "attic"}`,
			wantValidation: "kind",
		},
		{
			name:           "missing name",
			body:           `{"kind": "fridge"}`,
			wantValidation: "name",
		},
		{
			name:    "second object is rejected",
			body:    `{"name": "Cellar", "kind": "pantry"}{"name": "Attic", "kind": "pantry"}`,
			wantErr: errTrailingData,
		},
		{
			name:    "stray token after the object",
			body:    `{"name": "Cellar", "kind": "pantry"} true`,
			wantErr: errTrailingData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := decodeRequest[dto.CreateLocationRequest](bodyContext(tt.body))

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, req)
			case tt.wantValidation != "":
				var verr *dto.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantValidation, verr.Field)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantName, req.Name)
			}
		})
	}
}

func TestDecodeRequest_MalformedBody(t *testing.T) {
	for _, body := range []string{``, `{"name": Cellar}`, `{"items": [`} {
		_, err := decodeRequest[dto.EatRequest](bodyContext(body))

		require.Error(t, err, "body %q", body)
		var verr *dto.ValidationError
		assert.NotErrorAs(t, err, &verr, "body %q", body)
	}
}

func TestDecodeRequest_BodyTooLarge(t *testing.T) {
	big := `{"name": "` + strings.Repeat("x", maxBodyBytes) + `", "kind": "pantry"}`

	_, err := decodeRequest[dto.CreateLocationRequest](bodyContext(big))

	var tooLarge *http.MaxBytesError
	assert.ErrorAs(t, err, &tooLarge)
}

func TestDecodeRequest_NilBody(t *testing.T) {
	c := bodyContext("")
	c.Request.Body = nil

	_, err := decodeRequest[dto.CreateLocationRequest](c)

	assert.Error(t, err)
}
