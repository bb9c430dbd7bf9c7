package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"serde-api/common"
	"serde-api/lib/serde"
)

var logger = common.GetLogger("api")

// NewAPIServer creates a new API server
//
// Usage:
//
//	s := api.NewAPIServer(config)
//	if err := s.Listen(); err != nil {
//		panic(err)
//	}
func NewAPIServer(config common.ServerConfig) *apiServer {
	return &apiServer{
		config:     config,
		serializer: serde.NewJSONSerializer(config.Indent, config.ASCIIOnly),
	}
}

type apiServer struct {
	config     common.ServerConfig
	serializer *serde.JSONSerializer
}

// Handler builds the HTTP handler with all routes and middleware registered
func (s *apiServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/json/serialize", s.handleSerialize)
	mux.HandleFunc("POST /api/json/deserialize", s.handleDeserialize)
	mux.HandleFunc("POST /api/json/validate", s.handleValidate)
	mux.HandleFunc("GET /api/json/list", s.handleList)
	mux.HandleFunc("POST /api/json/list", s.handleList)
	mux.HandleFunc("POST /api/dict/to_dict", s.handleToDict)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /metrics", s.handleMetrics)

	var handler http.Handler = instrumentMiddleware(mux)
	if s.config.LogLevel == "debug" {
		handler = loggerMiddleware(handler)
	}
	return handler
}

// Listen starts the API server on the configured endpoint
func (s *apiServer) Listen() error {
	logger.Infof("Starting HTTP server on %s", s.config.Endpoint)
	return http.ListenAndServe(s.config.Endpoint, s.Handler())
}

// --------------------------------------------------------------------------
// Middleware
// --------------------------------------------------------------------------

// responseWriter is a custom ResponseWriter that captures the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code before writing it
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// instrumentMiddleware counts requests per path and status and turns panics
// into a JSON 500 response
func instrumentMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		defer func() {
			if rec := recover(); rec != nil {
				logger.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				writeError(rw, http.StatusInternalServerError, fmt.Sprintf("unexpected error: %v", rec))
			}
			metrics.GetOrCreateCounter(fmt.Sprintf(
				`api_requests_total{path=%q,status="%d"}`, r.URL.Path, rw.statusCode,
			)).Inc()
		}()

		next.ServeHTTP(rw, r)
	})
}

// loggerMiddleware is a middleware that logs HTTP requests
func loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create custom response writer to capture status code
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		// Process request
		next.ServeHTTP(rw, r)

		// Log the request
		duration := time.Since(start)
		logger.Debugf("%s %s => %d took %s", r.Method, r.URL.Path, rw.statusCode, duration)
	})
}
