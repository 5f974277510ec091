package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/chainsafe/castpay-relayer/internal/metrics"
	apperrors "github.com/chainsafe/castpay-relayer/pkg/app/errors"
	"github.com/chainsafe/castpay-relayer/pkg/config"
)

// RateLimiter applies a token bucket per client IP. Buckets for clients that
// stay quiet longer than the idle TTL are evicted.
type RateLimiter struct {
	limiters *ttlcache.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
	retry    time.Duration
}

// NewRateLimiter allows cfg.Requests per cfg.Window for each client
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	idle := cfg.IdleTTL
	if idle < window {
		idle = window
	}

	return &RateLimiter{
		limiters: ttlcache.New[string, *rate.Limiter](
			ttlcache.WithTTL[string, *rate.Limiter](idle),
		),
		limit: rate.Limit(float64(cfg.Requests) / window.Seconds()),
		burst: cfg.Requests,
		retry: window / time.Duration(max(cfg.Requests, 1)),
	}
}

// Start runs the eviction loop until Stop is called
func (l *RateLimiter) Start() {
	go l.limiters.Start()
}

// Stop ends the eviction loop
func (l *RateLimiter) Stop() {
	l.limiters.Stop()
}

// Allow reports whether key may make another request now
func (l *RateLimiter) Allow(key string) bool {
	item, _ := l.limiters.GetOrSet(key, rate.NewLimiter(l.limit, l.burst))
	return item.Value().Allow()
}

// Middleware rejects over-budget clients with 429
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientIP(r)) {
			metrics.HTTPRateLimited.Inc()
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(l.retry.Seconds()))))
			DefaultErrorHandler(w, apperrors.RateLimitedError("too many requests, please try again later"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP expects chi's RealIP middleware to have already rewritten RemoteAddr
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RequestLogger writes one zap line per request
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				fields := []zap.Field{
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", clientIP(r)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				}
				if ww.Status() >= http.StatusInternalServerError {
					logger.Warn("HTTP request", fields...)
					return
				}
				logger.Debug("HTTP request", fields...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// CORS allows browser clients from origins. An empty list allows any origin.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{"Retry-After", middleware.RequestIDHeader},
		MaxAge:         600,
	})
}
