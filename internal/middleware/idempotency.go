// Package middleware provides the gin middleware of the pantry service.
package middleware

import (
	"bytes"
	"crypto/sha256"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/i18n"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute
)

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return NewIdempotencyConfig(IdempotencyKeyTTL)
}

// NewIdempotencyConfig returns an enabled configuration that keeps responses for ttl.
func NewIdempotencyConfig(ttl time.Duration) IdempotencyConfig {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(ttl),
		TTL:     ttl,
		Enabled: true,
	}
}

// Idempotency makes inventory mutations safe to retry. A POST, PUT or PATCH carrying an
// Idempotency-Key runs once per household, user and action; a retry with the same body gets
// the stored 2xx response back. Reusing the key with another body is rejected with 422, and a
// retry that arrives while the first request still runs gets 409, so a double-tapped "eat"
// never deducts twice. Failed requests are not stored.
// It must run after the identity middleware.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if !mutating(c.Request.Method) {
			c.Next()
			return
		}
		header := c.GetHeader(IdempotencyKeyHeader)
		scope, ok := GetScope(c)
		if header == "" || !ok {
			c.Next()
			return
		}

		body, err := readBody(c.Request)
		if err != nil {
			abortIdempotency(c, http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody)
			return
		}

		key := idempotencyKey{
			HouseholdID: scope.HouseholdID,
			UserID:      scope.UserID,
			Action:      c.Request.Method + " " + c.Request.URL.Path,
			Key:         header,
		}
		cached, state := cfg.Cache.reserve(key, sha256.Sum256(body))
		switch state {
		case replay:
			writeReplay(c, cached)
			return
		case keyReused:
			abortIdempotency(c, http.StatusUnprocessableEntity, i18n.ErrKeyIdempotencyKeyReused)
			return
		case inProgress:
			abortIdempotency(c, http.StatusConflict, i18n.ErrKeyIdempotencyInProgress)
			return
		}

		writer := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		stored := false
		defer func() {
			if !stored {
				cfg.Cache.release(key)
			}
		}()

		c.Next()

		if status := writer.Status(); status >= 200 && status < 300 {
			cfg.Cache.complete(key, &cachedResponse{
				StatusCode: status,
				Header:     writer.Header().Clone(),
				Body:       writer.body.Bytes(),
			})
			stored = true
		}
	}
}

func mutating(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

func readBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

// replaySkippedHeaders are set afresh for the retry by RequestID and Compression.
var replaySkippedHeaders = map[string]bool{
	RequestIDHeader:    true,
	"Content-Encoding": true,
	"Content-Length":   true,
	"Vary":             true,
}

func writeReplay(c *gin.Context, resp *cachedResponse) {
	for k, values := range resp.Header {
		if replaySkippedHeaders[k] {
			continue
		}
		for _, v := range values {
			c.Writer.Header().Add(k, v)
		}
	}
	c.Header(IdempotencyReplayedHeader, "true")
	c.Data(resp.StatusCode, resp.Header.Get("Content-Type"), resp.Body)
	c.Abort()
}

func abortIdempotency(c *gin.Context, status int, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).
		WithRequestID(GetRequestID(c)))
}

// capturingWriter copies the response body while it is written.
type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
