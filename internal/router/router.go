package router

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/middleware"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine   *gin.Engine
	handlers []Handler
	metrics  *metrics.Metrics
}

// NewRouter builds the engine with the core middlewares. m may be nil.
func NewRouter(m *metrics.Metrics, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	// A trailing slash is served in place by Handler, never redirected.
	engine.RedirectTrailingSlash = false

	r := &Router{
		engine:   engine,
		handlers: handlers,
		metrics:  m,
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
	)

	return r
}

func (r *Router) Setup() *Router {
	root := &r.engine.RouterGroup
	for _, h := range r.handlers {
		h.RegisterRoutes(root)
	}
	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Handler serves the engine with one trailing slash dropped from the path, so
// /patients/ answers the same as /patients instead of redirecting.
func (r *Router) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if p := req.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
			req.URL.Path = strings.TrimSuffix(p, "/")
			req.URL.RawPath = strings.TrimSuffix(req.URL.RawPath, "/")
		}
		r.engine.ServeHTTP(w, req)
	})
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.metrics == nil {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		r.metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		r.metrics.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.ErrorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
