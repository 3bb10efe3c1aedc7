// Package server exposes image generation over HTTP.
//
// The service wraps an imagegen.Generator behind a small JSON API:
//
//	GET  /                  welcome message
//	GET  /healthz           liveness plus provider readiness
//	POST /generate-image/   run one generation and save the PNG
//
// The generator handle is wired once at startup and never mutated
// afterwards, so concurrent requests share it without locking. When the
// provider credential is missing at startup the server still comes up and
// every generation request answers with a client_not_initialized error.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/bitfold/sdxlgen/pkg/imagegen"
)

// Handle owns the generator shared by all request handlers.
type Handle struct {
	gen *imagegen.Generator
}

// NewHandle wraps a generator for use by the router. A nil generator is
// valid and yields a handle that reports not ready.
func NewHandle(gen *imagegen.Generator) *Handle {
	return &Handle{gen: gen}
}

// Ready reports whether a provider client was wired at startup.
func (h *Handle) Ready() bool {
	return h != nil && h.gen != nil
}

// NewRouter builds the gin engine with all middleware and routes attached.
func NewRouter(h *Handle, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(requestID())
	r.Use(accessLog(log))
	r.Use(recovery(log))
	r.Use(corsMiddleware())

	r.GET("/", h.welcome)
	r.GET("/healthz", h.healthz)
	r.POST("/generate-image/", h.generateImage)

	return r
}
