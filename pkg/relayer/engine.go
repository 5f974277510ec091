package relayer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chainsafe/castpay-relayer/internal/metrics"
	"github.com/chainsafe/castpay-relayer/pkg/auth"
	"github.com/chainsafe/castpay-relayer/pkg/config"
	"github.com/chainsafe/castpay-relayer/pkg/ethereum"
	"github.com/chainsafe/castpay-relayer/pkg/nonce"
	"github.com/chainsafe/castpay-relayer/pkg/transfer"
)

var (
	ErrNotRunning    = errors.New("relayer is not running")
	ErrQueueFull     = errors.New("relayer queue is full")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidIntent = errors.New("invalid transfer intent")
)

// Chain defines the chain operations the relayer needs
type Chain interface {
	BalanceReader
	GasSponsor
	EstimateTransferGas(ctx context.Context, from, to common.Address, amount *big.Int) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SubmitTransfer(ctx context.Context, from, to common.Address, amount *big.Int, gasLimit uint64, gasPrice *big.Int) (common.Hash, error)
	WaitForReceipt(ctx context.Context, txHash common.Hash) (*ethereum.Receipt, error)
}

// Store defines the record store operations the relayer needs
type Store interface {
	Create(rec *transfer.Record) error
	Get(id string) (*transfer.Record, error)
	UpdateStatus(id string, status transfer.Status, detail map[string]any) (*transfer.Record, error)
	SetChainTxHash(id, txHash string, detail map[string]any) (*transfer.Record, error)
	Delete(id string) error
	Sweep(cutoff time.Time) int
	Counts() map[transfer.Status]int
}

// NonceTracker guards against replayed intents
type NonceTracker interface {
	Current(sender string) uint64
	Reserve(sender string, n uint64) error
	Release(sender string, n uint64)
	Commit(sender string, n uint64) uint64
}

// SubmitRequest is an unvalidated transfer intent as received from a client
type SubmitRequest struct {
	Sender    string
	Recipient string
	Amount    string
	Nonce     uint64
	Signature string
}

// Engine accepts transfer intents and executes them on a bounded worker pool
type Engine struct {
	config   *config.RelayerConfig
	decimals int32
	store    Store
	nonces   NonceTracker
	executor *Executor
	logger   *zap.Logger
	now      func() time.Time

	mu      sync.RWMutex
	queue   chan *Task
	running bool
	stopCh  chan struct{}
	done    chan struct{}

	sweepMu sync.Mutex
}

// NewEngine creates a relayer engine
func NewEngine(
	cfg *config.Config,
	chain Chain,
	store Store,
	nonces NonceTracker,
	logger *zap.Logger,
) *Engine {
	sponsor := NewSponsor(chain, cfg.Paymaster.Enabled, logger)
	return &Engine{
		config:   &cfg.Relayer,
		decimals: cfg.Token.Decimals,
		store:    store,
		nonces:   nonces,
		executor: NewExecutor(chain, store, nonces, sponsor, cfg.Relayer.GasLimitMultiplierPct, cfg.Token.Decimals, logger),
		logger:   logger,
		now:      time.Now,
	}
}

// Start launches the worker pool and the retention sweep. Workers exit once
// Stop closes the queue and every accepted task has been executed.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return fmt.Errorf("relayer already started")
	}
	queue := make(chan *Task, e.config.QueueSize)
	stopCh := make(chan struct{})
	done := make(chan struct{})
	e.queue = queue
	e.stopCh = stopCh
	e.done = done
	e.running = true
	e.mu.Unlock()

	e.logger.Info("Starting relayer engine",
		zap.Int("workers", e.config.Workers),
		zap.Int("queue_size", e.config.QueueSize))

	// In-flight transfers must finish even after shutdown begins, so
	// execution is detached from ctx cancellation.
	execCtx := context.WithoutCancel(ctx)

	g := new(errgroup.Group)
	for i := 0; i < e.config.Workers; i++ {
		g.Go(func() error {
			for task := range queue {
				metrics.QueueDepth.Dec()
				_ = e.executor.Execute(execCtx, task)
				metrics.InFlightTransfers.Dec()
			}
			return nil
		})
	}

	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		e.sweepLoop(ctx, stopCh)
	}()

	go func() {
		_ = g.Wait()
		<-sweepDone
		e.logger.Info("Relayer workers drained")
		close(done)
	}()

	return nil
}

// Stop stops accepting intents and waits for queued and in-flight transfers.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	close(e.queue)
	close(e.stopCh)
	done := e.done
	e.mu.Unlock()

	e.logger.Info("Stopping relayer engine")
	<-done
	e.logger.Info("Relayer engine stopped")
}

// IsReady reports whether the engine is accepting intents
func (e *Engine) IsReady() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.running
}

// Submit accepts an intent, records it as pending and queues it for
// execution. Address validity and the amount sign are checked later by the
// executor; only malformed payloads and replayed nonces are rejected here.
func (e *Engine) Submit(ctx context.Context, req *SubmitRequest) (*transfer.Acknowledgement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req == nil || req.Sender == "" || req.Recipient == "" || req.Signature == "" {
		metrics.IntakeRejected.WithLabelValues("malformed").Inc()
		return nil, fmt.Errorf("%w: sender, recipient and signature are required", ErrInvalidIntent)
	}

	amount, err := transfer.ParseUnits(req.Amount, e.decimals)
	if err != nil {
		metrics.IntakeRejected.WithLabelValues("amount").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	intent := &transfer.Intent{
		Sender:    normalize(req.Sender),
		Recipient: normalize(req.Recipient),
		Amount:    amount,
		Nonce:     req.Nonce,
		Signature: req.Signature,
	}

	if !e.IsReady() {
		return nil, ErrNotRunning
	}

	if err := e.nonces.Reserve(intent.Sender, intent.Nonce); err != nil {
		metrics.IntakeRejected.WithLabelValues("nonce").Inc()
		return nil, err
	}

	now := e.now()
	rec := transfer.NewRecord(intent, e.decimals, now)
	if err := e.store.Create(rec); err != nil {
		e.nonces.Release(intent.Sender, intent.Nonce)
		return nil, fmt.Errorf("failed to create transfer record: %w", err)
	}

	if err := e.enqueue(&Task{RecordID: rec.ID, Intent: intent, AcceptedAt: now}); err != nil {
		if derr := e.store.Delete(rec.ID); derr != nil {
			e.logger.Error("Failed to roll back unqueued transfer", zap.String("id", rec.ID), zap.Error(derr))
		}
		e.nonces.Release(intent.Sender, intent.Nonce)
		metrics.IntakeRejected.WithLabelValues("queue").Inc()
		return nil, err
	}

	e.logger.Info("Transfer accepted",
		zap.String("id", rec.ID),
		zap.String("sender", intent.Sender),
		zap.String("recipient", intent.Recipient),
		zap.String("amount", rec.Amount),
		zap.Uint64("nonce", intent.Nonce))

	return &transfer.Acknowledgement{
		ID:      rec.ID,
		Status:  transfer.StatusSubmitted,
		Message: "Transfer accepted for processing",
	}, nil
}

func (e *Engine) enqueue(task *Task) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.running {
		return ErrNotRunning
	}
	select {
	case e.queue <- task:
		metrics.QueueDepth.Inc()
		metrics.InFlightTransfers.Inc()
		return nil
	default:
		return ErrQueueFull
	}
}

// Nonce returns the next nonce the sender should sign with
func (e *Engine) Nonce(sender string) uint64 {
	return e.nonces.Current(normalize(sender))
}

// Sweep removes records older than the retention window. Concurrent calls
// are skipped rather than queued.
func (e *Engine) Sweep() int {
	if !e.sweepMu.TryLock() {
		return 0
	}
	defer e.sweepMu.Unlock()

	removed := e.store.Sweep(e.now().Add(-e.config.Retention))
	if removed > 0 {
		metrics.SweptRecords.Add(float64(removed))
		e.logger.Info("Swept expired transfer records", zap.Int("removed", removed))
	}

	counts := e.store.Counts()
	for _, s := range []transfer.Status{
		transfer.StatusPending, transfer.StatusProcessing, transfer.StatusSubmitted,
		transfer.StatusSuccess, transfer.StatusFailed,
	} {
		metrics.StoredRecords.WithLabelValues(string(s)).Set(float64(counts[s]))
	}
	return removed
}

func (e *Engine) sweepLoop(ctx context.Context, stop <-chan struct{}) {
	if e.config.SweepInterval <= 0 || e.config.Retention <= 0 {
		return
	}
	ticker := time.NewTicker(e.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			e.Sweep()
		}
	}
}

// normalize checksums well-formed addresses and leaves anything else as-is
// for the executor to reject.
func normalize(address string) string {
	address = strings.TrimSpace(address)
	if auth.ValidateEVMAddress(address) {
		return auth.NormalizeAddress(address)
	}
	return address
}

var _ NonceTracker = (*nonce.Tracker)(nil)
