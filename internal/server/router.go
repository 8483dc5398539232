// Package server exposes the rewrite engine over HTTP: a health check
// and a single POST /api/rewrite endpoint that accepts a JSON-encoded
// AIG, runs it to fixpoint, and returns the result.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kegliz/aigrw/internal/rwlog"
)

// Router wraps a gin.Engine with the logger it was built with and the
// *http.Server Start spins up.
type Router struct {
	*gin.Engine
	Logger     *rwlog.Logger
	BasePath   string
	HTTPServer *http.Server
}

// Options configures a new Router.
type Options struct {
	Logger          *rwlog.Logger
	BasePath        string
	CORSAllowOrigin string
}

// ErrNoServerToShutdown is returned by Shutdown when Start was never
// called.
type ErrNoServerToShutdown struct{}

func (e *ErrNoServerToShutdown) Error() string { return "no server to shutdown" }

// NewRouter builds a Router with recovery, request-id/logging, and CORS
// middleware installed, and registers the two rewrite API routes.
func NewRouter(opts Options) *Router {
	if opts.Logger == nil {
		opts.Logger = rwlog.Discard()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestWrapper(opts.Logger))
	engine.Use(cors(corsOptions{Origin: opts.CORSAllowOrigin}))

	r := &Router{Engine: engine, Logger: opts.Logger, BasePath: opts.BasePath}
	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "not found"}) })

	h := &handlers{logger: opts.Logger}
	r.GET(r.BasePath+"/health", h.Health)
	r.POST(r.BasePath+"/api/rewrite", h.Rewrite)
	r.Logger.Info().Msgf("routes registered under base path %q", r.BasePath)

	return r
}

// Start runs the HTTP server on port, blocking until it stops.
func (r *Router) Start(port int) error {
	r.HTTPServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}
	return r.HTTPServer.ListenAndServe()
}

// Shutdown gracefully stops a running server.
func (r *Router) Shutdown(ctx context.Context) error {
	if r.HTTPServer == nil {
		return new(ErrNoServerToShutdown)
	}
	return r.HTTPServer.Shutdown(ctx)
}
