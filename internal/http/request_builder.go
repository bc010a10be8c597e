package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/i18n"
	"github.com/guttosm/pantry-service/internal/middleware"
)

// maxBodyBytes bounds request bodies; the largest, a cook request, stays far below it.
const maxBodyBytes = 1 << 20

// errTrailingData rejects bodies holding more than one JSON value.
var errTrailingData = errors.New("request body must hold a single JSON object")

// Validator is implemented by request DTOs that check their own fields.
type Validator interface {
	Validate() error
}

// decodeRequest reads one JSON value of type T from the body and validates it when T
// implements Validator. Bodies over maxBodyBytes and trailing data are rejected.
func decodeRequest[T any](c *gin.Context) (*T, error) {
	if c.Request.Body == nil {
		return nil, io.EOF
	}
	dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))

	var req T
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

var (
	successResponsePool = sync.Pool{New: func() interface{} { return new(dto.SuccessResponse) }}
	errorResponsePool   = sync.Pool{New: func() interface{} { return new(dto.ErrorResponse) }}
)

// ResponseBuilder writes the service's JSON envelopes, stamped with the request id.
// Envelopes are pooled; gin serializes them before the builder returns.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := successResponsePool.Get().(*dto.SuccessResponse) //nolint:errcheck // pool only holds *dto.SuccessResponse
	*resp = dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	}
	b.c.JSON(statusCode, resp)

	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with a translated error. err, when set, is recorded on the context for
// ErrorHandler and the request log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, nil, err)
}

// ErrorWithDetails is Error with per-field details, such as the failing field of a request.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	resp := errorResponsePool.Get().(*dto.ErrorResponse) //nolint:errcheck // pool only holds *dto.ErrorResponse
	*resp = dto.ErrorResponse{
		Error:     dto.ErrCodeFromStatus(statusCode),
		Message:   i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c)),
		Details:   details,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	}
	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp)

	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}
