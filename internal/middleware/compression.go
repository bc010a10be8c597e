package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// uncompressedPaths are polled by monitoring that gains nothing from gzip.
var uncompressedPaths = []string{"/healthz", "/readyz", "/metrics"}

// Compression gzips API responses (inventory views grow with the household's stock)
// for clients that accept it. Health and metrics endpoints are left as plain text.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(uncompressedPaths))
}
