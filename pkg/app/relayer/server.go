// Package relayer implements app.Runner for the relay process.
package relayer

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/castpay-relayer/pkg/app/http"
	"github.com/chainsafe/castpay-relayer/pkg/auth"
	"github.com/chainsafe/castpay-relayer/pkg/config"
	"github.com/chainsafe/castpay-relayer/pkg/ethereum"
	"github.com/chainsafe/castpay-relayer/pkg/nonce"
	paymasterservice "github.com/chainsafe/castpay-relayer/pkg/paymaster/service"
	"github.com/chainsafe/castpay-relayer/pkg/payment"
	paymentservice "github.com/chainsafe/castpay-relayer/pkg/payment/service"
	"github.com/chainsafe/castpay-relayer/pkg/relayer"
	"github.com/chainsafe/castpay-relayer/pkg/transfer/store"
)

const defaultHTTPMiddlewareTimeout = 60 * time.Second

var (
	_ relayer.Chain              = (*ethereum.Client)(nil)
	_ paymentservice.TokenReader = (*ethereum.Client)(nil)
	_ paymasterservice.Chain     = (*ethereum.Client)(nil)
	_ paymentservice.Records     = (*store.Memory)(nil)
	_ relayer.Store              = (*store.Memory)(nil)
)

// Server holds configuration for the relay process.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new relay Server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run starts the relay engine and the HTTP API. It blocks until an OS
// shutdown signal is received or a fatal server error occurs; accepted
// transfers are drained before it returns.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("nil config")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting CastPay transfer relay",
		zap.String("address", cfg.Server.Address()),
		zap.Int64("chain_id", cfg.Ethereum.ChainID),
		zap.String("token", cfg.Token.Address),
		zap.Bool("paymaster", cfg.Paymaster.Enabled))

	ethClient, err := ethereum.NewClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize ethereum client: %w", err)
	}
	defer ethClient.Close()

	records := store.NewMemory()
	nonces := nonce.NewTracker()

	engine := relayer.NewEngine(cfg, ethClient, records, nonces, logger)
	if err := engine.Start(ctx); err != nil {
		return fmt.Errorf("start relayer engine: %w", err)
	}
	defer engine.Stop()

	payments := paymentservice.NewLog(
		paymentservice.NewService(engine, records, ethClient, cfg.Token.Symbol, cfg.Token.Decimals, logger),
		logger)
	paymasters := paymasterservice.NewLog(
		paymasterservice.NewService(
			ethClient,
			cfg.Paymaster.Enabled,
			cfg.Paymaster.StatusCacheTTL,
			cfg.Token.Symbol,
			cfg.Token.Decimals,
			logger),
		logger)

	var limiter *apphttp.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = apphttp.NewRateLimiter(cfg.RateLimit)
		limiter.Start()
		defer limiter.Stop()
	}

	router := newRouter(cfg, routes{
		ready:     engine.IsReady,
		relayer:   ethClient.RelayerAddress().Hex(),
		payments:  payments,
		paymaster: paymasters,
		operators: auth.NewOperatorValidator(cfg.Auth.OperatorJWTSecret, cfg.Auth.JWTIssuer),
		limiter:   limiter,
	}, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

type routes struct {
	ready     func() bool
	relayer   string
	payments  paymentservice.Service
	paymaster paymasterservice.Service
	operators *auth.OperatorValidator
	limiter   *apphttp.RateLimiter
}

func newRouter(cfg *config.Config, rt routes, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apphttp.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultHTTPMiddlewareTimeout))
	r.Use(apphttp.CORS(cfg.Server.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, _ *http.Request) {
		if !rt.ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	r.Group(func(r chi.Router) {
		if rt.limiter != nil {
			r.Use(rt.limiter.Middleware)
		}

		r.Get("/api/meta/relayer", func(w http.ResponseWriter, _ *http.Request) {
			apphttp.WriteJSON(w, http.StatusOK, &payment.RelayerResponse{Relayer: rt.relayer})
		})

		paymentservice.RegisterRoutes(r, rt.payments, cfg.Server.MaxBodyBytes, logger)
		paymasterservice.RegisterRoutes(r, rt.paymaster, rt.operators, cfg.Server.MaxBodyBytes, logger)
	})

	return r
}
