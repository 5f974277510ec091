package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/castpay-relayer/pkg/app/errors"
	"github.com/chainsafe/castpay-relayer/pkg/payment"
	"github.com/chainsafe/castpay-relayer/pkg/transfer"
	"github.com/chainsafe/castpay-relayer/pkg/transfer/store"
)

const serviceName = "PaymentService"

const signatureDisplaySize = 16

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the payment Service. Signatures are
// redacted; client errors are logged at warn, everything else at error.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger.With(zap.String("service", serviceName)),
	}
}

func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)))

	switch {
	case err == nil:
		ls.logger.Debug(method+" completed", fields...)
	case apperrors.IsInternalError(err):
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
	default:
		ls.logger.Warn(method+" rejected", append(fields, zap.Error(err))...)
	}
}

func (ls *logService) SubmitTransfer(
	ctx context.Context,
	req *payment.TransferRequest,
) (ack *transfer.Acknowledgement, err error) {
	start := time.Now()
	ls.logger.Info("SubmitTransfer started",
		zap.String("sender", req.Sender),
		zap.String("recipient", req.Recipient),
		zap.String("amount", req.Amount),
		zap.String("signature", redactSignature(req.Signature)))

	defer func() {
		fields := []zap.Field{zap.String("sender", req.Sender)}
		if ack != nil {
			fields = append(fields, zap.String("id", ack.ID))
		}
		ls.done("SubmitTransfer", start, err, fields...)
	}()

	return ls.svc.SubmitTransfer(ctx, req)
}

func (ls *logService) GetTransaction(ctx context.Context, id string) (rec *transfer.Record, err error) {
	defer func(start time.Time) {
		ls.done("GetTransaction", start, err, zap.String("id", id))
	}(time.Now())
	return ls.svc.GetTransaction(ctx, id)
}

func (ls *logService) ListTransactions(
	ctx context.Context,
	f store.Filter,
) (resp *payment.TransactionsResponse, err error) {
	defer func(start time.Time) {
		ls.done("ListTransactions", start, err,
			zap.String("sender", f.Sender),
			zap.String("status", string(f.Status)),
			zap.Int("limit", f.Limit))
	}(time.Now())
	return ls.svc.ListTransactions(ctx, f)
}

func (ls *logService) GetBalance(ctx context.Context, address string) (resp *payment.BalanceResponse, err error) {
	defer func(start time.Time) {
		ls.done("GetBalance", start, err, zap.String("address", address))
	}(time.Now())
	return ls.svc.GetBalance(ctx, address)
}

func (ls *logService) GetNonce(ctx context.Context, address string) (resp *payment.NonceResponse, err error) {
	defer func(start time.Time) {
		ls.done("GetNonce", start, err, zap.String("address", address))
	}(time.Now())
	return ls.svc.GetNonce(ctx, address)
}

// redactSignature keeps only the edges and length of a signature
func redactSignature(sig string) string {
	if sig == "" {
		return "<empty>"
	}
	n := len(sig)
	if n > signatureDisplaySize {
		return fmt.Sprintf("%s...%s (%d bytes)", sig[:8], sig[n-4:], n)
	}
	return fmt.Sprintf("<%d bytes>", n)
}
