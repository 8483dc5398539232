package server

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kegliz/aigrw/internal/rwlog"
)

var requestCount int64

type corsOptions struct {
	Origin string
}

// cors is a permissive CORS middleware: the rewrite API is meant to be
// callable from a browser-based debugging UI on any origin.
func cors(opts corsOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := "*"
		if opts.Origin != "" {
			origin = opts.Origin
		}
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// requestWrapper tags each request with a request id (reusing
// X-Request-Id if the caller sent one), spawns a per-request logger,
// and logs the outcome once the handler returns.
func requestWrapper(log *rwlog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqCount := strconv.FormatInt(atomic.AddInt64(&requestCount, 1), 10)
		reqID := c.Request.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-Id", reqID)

		l := log.WithCorrelationID(reqID)
		c.Set("logger", l)
		c.Set("requestcount", reqCount)

		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		latency := time.Since(start)

		evt := l.Info()
		if status >= http.StatusInternalServerError {
			evt = l.Error()
		} else if status >= http.StatusBadRequest {
			evt = l.Warn()
		}
		evt.Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status", status).
			Dur("latency", latency).
			Msg("request served")
	}
}

func loggerFromContext(c *gin.Context) *rwlog.Logger {
	if v, ok := c.Get("logger"); ok {
		if l, ok := v.(*rwlog.Logger); ok {
			return l
		}
	}
	return rwlog.Discard()
}
