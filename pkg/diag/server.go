// Package diag serves pool diagnostics over HTTP: a JSON stats snapshot,
// a liveness probe, and Prometheus metrics. The server only reads pool
// state; it can never affect scheduling.
package diag

import (
	"encoding/json"
	"net"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/evalio/evalpool/pkg/logging"
	"github.com/evalio/evalpool/pkg/pool"
)

// Server is the diagnostics HTTP server
type Server struct {
	addr   string
	pool   *pool.Pool
	logger logging.Logger
	srv    *fasthttp.Server
}

// NewServer creates a diagnostics server for p. The registry backs the
// /metrics endpoint; pass the registry the pool metrics were registered
// with.
func NewServer(addr string, p *pool.Pool, registry *prometheus.Registry, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		addr:   addr,
		pool:   p,
		logger: logger,
	}
	s.srv = &fasthttp.Server{
		Handler: s.Handler(registry),
		Name:    "evalpool-diag",
	}
	return s
}

// Handler builds the request handler. Exposed separately so tests can
// drive it over an in-memory listener.
func (s *Server) Handler(registry *prometheus.Registry) fasthttp.RequestHandler {
	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)

	return func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/stats":
			body, err := json.Marshal(s.pool.Stats())
			if err != nil {
				ctx.Error("failed to encode stats", fasthttp.StatusInternalServerError)
				return
			}
			ctx.SetContentType("application/json")
			ctx.SetBody(body)
		case "/live":
			ctx.SetContentType("application/json")
			ctx.SetBodyString(`{"status":"up"}`)
		case "/metrics":
			metricsHandler(ctx)
		default:
			ctx.Error("not found", fasthttp.StatusNotFound)
		}
	}
}

// ListenAndServe serves until the listener fails or Close is called
func (s *Server) ListenAndServe() error {
	s.logger.Infof("diag: listening on %s", s.addr)
	return s.srv.ListenAndServe(s.addr)
}

// Serve serves on an existing listener
func (s *Server) Serve(ln net.Listener) error {
	return s.srv.Serve(ln)
}

// Close stops the server
func (s *Server) Close() error {
	return s.srv.Shutdown()
}
