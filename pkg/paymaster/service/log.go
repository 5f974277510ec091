package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/castpay-relayer/pkg/app/errors"
	"github.com/chainsafe/castpay-relayer/pkg/paymaster"
)

const serviceName = "PaymasterService"

type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the paymaster Service
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger.With(zap.String("service", serviceName)),
	}
}

func (ls *logService) log(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)))
	if err == nil {
		ls.logger.Debug(method+" completed", fields...)
		return
	}
	fields = append(fields, zap.Error(err))
	if apperrors.IsInternalError(err) {
		ls.logger.Error(method+" failed", fields...)
		return
	}
	ls.logger.Warn(method+" rejected", fields...)
}

func (ls *logService) GetStatus(ctx context.Context) (resp *paymaster.StatusResponse, err error) {
	defer func(start time.Time) {
		ls.log("GetStatus", start, err)
	}(time.Now())
	return ls.svc.GetStatus(ctx)
}

func (ls *logService) GetBalance(ctx context.Context) (resp *paymaster.BalanceResponse, err error) {
	defer func(start time.Time) {
		ls.log("GetBalance", start, err)
	}(time.Now())
	return ls.svc.GetBalance(ctx)
}

func (ls *logService) Deposit(
	ctx context.Context,
	req *paymaster.DepositRequest,
) (resp *paymaster.TxResponse, err error) {
	start := time.Now()
	ls.logger.Info("Deposit started", zap.String("amount", req.Amount))
	defer func() {
		fields := []zap.Field{zap.String("amount", req.Amount)}
		if resp != nil {
			fields = append(fields, zap.String("tx_hash", resp.TxHash))
		}
		ls.log("Deposit", start, err, fields...)
	}()
	return ls.svc.Deposit(ctx, req)
}

func (ls *logService) RegisterUser(ctx context.Context) (resp *paymaster.TxResponse, err error) {
	start := time.Now()
	ls.logger.Info("RegisterUser started")
	defer func() {
		var fields []zap.Field
		if resp != nil {
			fields = append(fields, zap.String("tx_hash", resp.TxHash))
		}
		ls.log("RegisterUser", start, err, fields...)
	}()
	return ls.svc.RegisterUser(ctx)
}
