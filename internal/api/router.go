package api

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// TokenVerifier checks a bearer token and returns its subject
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RouterOptions enables the optional /v1 middleware. Nil fields are off.
type RouterOptions struct {
	Limiter  *RateLimiter
	Verifier TokenVerifier
}

// NewRouter wires the handler's routes. /healthz is never limited or authenticated.
func NewRouter(h *Handler, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	if opts.Limiter != nil {
		v1.Use(RateLimitMiddleware(opts.Limiter))
	}
	if opts.Verifier != nil {
		v1.Use(AuthMiddleware(opts.Verifier, h.logger))
	}
	v1.HandleFunc("/calculate", h.Calculate).Methods(http.MethodPost)
	v1.HandleFunc("/batch", h.Batch).Methods(http.MethodPost)
	v1.HandleFunc("/ledger", h.Ledger).Methods(http.MethodPost)
	v1.HandleFunc("/formats", h.Formats).Methods(http.MethodGet)

	r.Use(LoggingMiddleware(h.logger))
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs one line per request
func LoggingMiddleware(logger logrus.FieldLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": time.Since(start).String(),
			}).Info("request")
		})
	}
}

// RateLimitMiddleware rejects clients that exhaust their token bucket
func RateLimitMiddleware(limiter *RateLimiter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !limiter.Allow(ip) {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AuthMiddleware requires an "Authorization: Bearer <token>" header the verifier accepts
func AuthMiddleware(verifier TokenVerifier, logger logrus.FieldLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			subject, err := verifier.Verify(token)
			if err != nil {
				logger.WithError(err).Debug("rejected token")
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			logger.WithField("subject", subject).Debug("authenticated")
			next.ServeHTTP(w, r)
		})
	}
}
