package relayer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/castpay-relayer/internal/metrics"
	"github.com/chainsafe/castpay-relayer/pkg/auth"
	"github.com/chainsafe/castpay-relayer/pkg/ethereum"
	"github.com/chainsafe/castpay-relayer/pkg/transfer"
)

// Task is one accepted intent waiting for execution
type Task struct {
	RecordID   string
	Intent     *transfer.Intent
	AcceptedAt time.Time
}

// Executor drives a single transfer from processing to a terminal status
type Executor struct {
	chain     Chain
	store     Store
	nonces    NonceTracker
	validator *Validator
	sponsor   *Sponsor
	gasPct    uint64
	decimals  int32
	logger    *zap.Logger
}

// NewExecutor creates an executor
func NewExecutor(
	chain Chain,
	store Store,
	nonces NonceTracker,
	sponsor *Sponsor,
	gasPct uint64,
	decimals int32,
	logger *zap.Logger,
) *Executor {
	if gasPct == 0 {
		gasPct = ethereum.DefaultGasLimitMultiplierPct
	}
	return &Executor{
		chain:     chain,
		store:     store,
		nonces:    nonces,
		validator: NewValidator(chain, decimals),
		sponsor:   sponsor,
		gasPct:    gasPct,
		decimals:  decimals,
		logger:    logger,
	}
}

// Execute runs the task to completion. The returned error is the tagged
// failure that was recorded, or nil on success. Every outcome is persisted
// before Execute returns.
func (x *Executor) Execute(ctx context.Context, task *Task) error {
	intent := task.Intent
	logger := x.logger.With(
		zap.String("id", task.RecordID),
		zap.String("sender", intent.Sender),
		zap.Uint64("nonce", intent.Nonce))

	if _, err := x.store.UpdateStatus(task.RecordID, transfer.StatusProcessing, nil); err != nil {
		logger.Error("Failed to mark transfer processing", zap.Error(err))
		x.nonces.Release(intent.Sender, intent.Nonce)
		return err
	}

	txHash, gasLimit, err := x.submit(ctx, task.RecordID, intent)
	if err != nil {
		return x.fail(task, err, logger)
	}

	logger = logger.With(zap.String("tx_hash", txHash.Hex()))
	logger.Info("Transfer broadcast, waiting for receipt", zap.Uint64("gas_limit", gasLimit))

	receipt, err := x.chain.WaitForReceipt(ctx, txHash)
	if err != nil {
		metrics.ChainErrorsTotal.WithLabelValues("wait_receipt").Inc()
		return x.fail(task, transfer.WrapError(transfer.KindTimeout, "transfer receipt not available", err), logger)
	}
	metrics.GasUsed.WithLabelValues("transfer_from").Observe(float64(receipt.GasUsed))

	if !receipt.Succeeded() {
		return x.fail(task, transfer.NewError(transfer.KindReverted,
			fmt.Sprintf("transaction %s reverted in block %d", txHash.Hex(), receipt.BlockNumber)), logger)
	}

	if _, err := x.store.UpdateStatus(task.RecordID, transfer.StatusSuccess, map[string]any{
		transfer.DetailBlockNumber: receipt.BlockNumber,
		transfer.DetailGasUsed:     receipt.GasUsed,
	}); err != nil {
		logger.Error("Failed to mark transfer successful", zap.Error(err))
	}

	next := x.nonces.Commit(intent.Sender, intent.Nonce)

	metrics.TransfersTotal.WithLabelValues(string(transfer.StatusSuccess), "").Inc()
	metrics.TransferDuration.WithLabelValues(string(transfer.StatusSuccess)).Observe(time.Since(task.AcceptedAt).Seconds())
	amount, _ := decimal.NewFromBigInt(intent.Amount, -x.decimals).Float64()
	metrics.TransferAmount.Observe(amount)

	logger.Info("Transfer confirmed",
		zap.Uint64("block_number", receipt.BlockNumber),
		zap.Uint64("gas_used", receipt.GasUsed),
		zap.Uint64("next_nonce", next))
	return nil
}

// submit checks the intent and broadcasts transferFrom. Nothing is written
// on chain unless every check passes.
func (x *Executor) submit(ctx context.Context, id string, intent *transfer.Intent) (common.Hash, uint64, error) {
	amountBaseUnits := intent.Amount.String()
	if auth.ValidateEVMAddress(intent.Sender) && auth.ValidateEVMAddress(intent.Recipient) &&
		!auth.Verify(intent.Sender, intent.Recipient, amountBaseUnits, intent.Nonce, intent.Signature) {
		return common.Hash{}, 0, transfer.NewError(transfer.KindInvalidSignature, "signature does not match sender")
	}

	if err := x.validator.Validate(ctx, intent.Sender, intent.Recipient, intent.Amount); err != nil {
		if transfer.KindOf(err) == transfer.KindRPCError {
			metrics.ChainErrorsTotal.WithLabelValues("validate").Inc()
		}
		return common.Hash{}, 0, err
	}

	from := common.HexToAddress(intent.Sender)
	to := common.HexToAddress(intent.Recipient)

	estimate, err := x.chain.EstimateTransferGas(ctx, from, to, intent.Amount)
	if err != nil {
		metrics.ChainErrorsTotal.WithLabelValues("estimate_gas").Inc()
		return common.Hash{}, 0, transfer.WrapError(transfer.KindRPCError, "gas estimation failed", err)
	}
	gasPrice, err := x.chain.SuggestGasPrice(ctx)
	if err != nil {
		metrics.ChainErrorsTotal.WithLabelValues("gas_price").Inc()
		return common.Hash{}, 0, transfer.WrapError(transfer.KindRPCError, "gas price lookup failed", err)
	}
	gasLimit := ethereum.GasLimitWithBuffer(estimate, x.gasPct)

	sponsorship := x.sponsor.TrySponsor(ctx, from, ethereum.GasCost(gasLimit, gasPrice))

	txHash, err := x.chain.SubmitTransfer(ctx, from, to, intent.Amount, gasLimit, gasPrice)
	if err != nil {
		metrics.ChainErrorsTotal.WithLabelValues("submit_transfer").Inc()
		return common.Hash{}, 0, transfer.WrapError(transfer.KindRPCError, "failed to broadcast transfer", err)
	}

	if _, err := x.store.SetChainTxHash(id, txHash.Hex(), map[string]any{
		transfer.DetailGasLimit:    gasLimit,
		transfer.DetailGasPrice:    gasPrice.String(),
		transfer.DetailSponsorship: sponsorship,
	}); err != nil {
		x.logger.Error("Failed to record broadcast transaction",
			zap.String("id", id), zap.String("tx_hash", txHash.Hex()), zap.Error(err))
	}
	return txHash, gasLimit, nil
}

func (x *Executor) fail(task *Task, err error, logger *zap.Logger) error {
	kind := transfer.KindOf(err)
	var te *transfer.Error
	if !errors.As(err, &te) {
		te = transfer.WrapError(kind, "", err)
	}

	if _, serr := x.store.UpdateStatus(task.RecordID, transfer.StatusFailed, map[string]any{
		transfer.DetailError:     te.Error(),
		transfer.DetailErrorKind: kind.String(),
	}); serr != nil {
		logger.Error("Failed to mark transfer failed", zap.Error(serr))
	}
	x.nonces.Release(task.Intent.Sender, task.Intent.Nonce)

	metrics.TransfersTotal.WithLabelValues(string(transfer.StatusFailed), kind.String()).Inc()
	metrics.TransferDuration.WithLabelValues(string(transfer.StatusFailed)).Observe(time.Since(task.AcceptedAt).Seconds())

	if kind.IsValidation() || kind == transfer.KindInvalidSignature {
		logger.Warn("Transfer rejected", zap.String("error_kind", kind.String()), zap.Error(err))
	} else {
		logger.Error("Transfer failed", zap.String("error_kind", kind.String()), zap.Error(err))
	}
	return te
}
