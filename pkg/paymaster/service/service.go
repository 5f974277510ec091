package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/castpay-relayer/pkg/app/errors"
	"github.com/chainsafe/castpay-relayer/pkg/ethereum"
	"github.com/chainsafe/castpay-relayer/pkg/paymaster"
	"github.com/chainsafe/castpay-relayer/pkg/transfer"
)

const snapshotKey = "snapshot"

// Chain is the paymaster surface of the chain client
//
//go:generate mockery --name Chain --output mocks --outpkg mocks --filename mock_chain.go --with-expecter
type Chain interface {
	GetPaymasterSnapshot(ctx context.Context) (*ethereum.PaymasterSnapshot, error)
	GetPaymasterBalance(ctx context.Context) (*big.Int, error)
	DepositToPaymaster(ctx context.Context, amount *big.Int) (common.Hash, error)
	RegisterUser(ctx context.Context) (common.Hash, error)
	WaitForReceipt(ctx context.Context, txHash common.Hash) (*ethereum.Receipt, error)
}

// Service defines the paymaster operator API
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	GetStatus(ctx context.Context) (*paymaster.StatusResponse, error)
	GetBalance(ctx context.Context) (*paymaster.BalanceResponse, error)
	Deposit(ctx context.Context, req *paymaster.DepositRequest) (*paymaster.TxResponse, error)
	RegisterUser(ctx context.Context) (*paymaster.TxResponse, error)
}

type cachedSnapshot struct {
	snap      *ethereum.PaymasterSnapshot
	fetchedAt time.Time
}

type paymasterService struct {
	chain    Chain
	enabled  bool
	symbol   string
	decimals int32
	cache    *ttlcache.Cache[string, cachedSnapshot]
	logger   *zap.Logger
}

// NewService creates a paymaster service. Status snapshots are cached for
// statusTTL; deposits and registrations invalidate the cache.
func NewService(
	chain Chain,
	enabled bool,
	statusTTL time.Duration,
	symbol string,
	decimals int32,
	logger *zap.Logger,
) Service {
	return &paymasterService{
		chain:    chain,
		enabled:  enabled,
		symbol:   symbol,
		decimals: decimals,
		cache: ttlcache.New[string, cachedSnapshot](
			ttlcache.WithTTL[string, cachedSnapshot](statusTTL),
			ttlcache.WithDisableTouchOnHit[string, cachedSnapshot](),
		),
		logger: logger,
	}
}

// GetStatus returns the paymaster snapshot, served from cache when fresh
func (s *paymasterService) GetStatus(ctx context.Context) (*paymaster.StatusResponse, error) {
	entry, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	snap := entry.snap
	return &paymaster.StatusResponse{
		Address:            snap.Address.Hex(),
		Enabled:            s.enabled,
		Balance:            transfer.FormatUnits(snap.ContractBalance, s.decimals),
		TotalDeposited:     transfer.FormatUnits(snap.TotalDeposited, s.decimals),
		UserCount:          bigString(snap.UserCount),
		Paused:             snap.Paused,
		SponsorshipEnabled: snap.SponsorshipEnabled,
		Symbol:             s.symbol,
		FetchedAt:          entry.fetchedAt,
	}, nil
}

func (s *paymasterService) snapshot(ctx context.Context) (cachedSnapshot, error) {
	if item := s.cache.Get(snapshotKey); item != nil {
		return item.Value(), nil
	}

	snap, err := s.chain.GetPaymasterSnapshot(ctx)
	if err != nil {
		return cachedSnapshot{}, chainError(err, "failed to read paymaster status")
	}

	entry := cachedSnapshot{snap: snap, fetchedAt: time.Now().UTC()}
	s.cache.Set(snapshotKey, entry, ttlcache.DefaultTTL)
	return entry, nil
}

// GetBalance reads the paymaster's token balance, bypassing the status cache
func (s *paymasterService) GetBalance(ctx context.Context) (*paymaster.BalanceResponse, error) {
	balance, err := s.chain.GetPaymasterBalance(ctx)
	if err != nil {
		return nil, chainError(err, "failed to read paymaster balance")
	}

	resp := &paymaster.BalanceResponse{
		Balance: transfer.FormatUnits(balance, s.decimals),
		Symbol:  s.symbol,
	}
	if item := s.cache.Get(snapshotKey); item != nil {
		resp.Address = item.Value().snap.Address.Hex()
	}
	return resp, nil
}

// Deposit moves tokens from the relay wallet into the paymaster and waits
// for the transaction to be mined.
func (s *paymasterService) Deposit(ctx context.Context, req *paymaster.DepositRequest) (*paymaster.TxResponse, error) {
	amount, err := transfer.ParseUnits(req.Amount, s.decimals)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid amount")
	}
	if amount.Sign() <= 0 {
		return nil, apperrors.BadRequestError(nil, "amount must be positive")
	}

	hash, err := s.chain.DepositToPaymaster(ctx, amount)
	if err != nil {
		return nil, chainError(err, "failed to submit deposit")
	}
	return s.await(ctx, "deposit", hash)
}

// RegisterUser registers the relay wallet with the paymaster
func (s *paymasterService) RegisterUser(ctx context.Context) (*paymaster.TxResponse, error) {
	hash, err := s.chain.RegisterUser(ctx)
	if err != nil {
		return nil, chainError(err, "failed to submit registration")
	}
	return s.await(ctx, "registration", hash)
}

func (s *paymasterService) await(ctx context.Context, action string, hash common.Hash) (*paymaster.TxResponse, error) {
	defer s.cache.Delete(snapshotKey)

	receipt, err := s.chain.WaitForReceipt(ctx, hash)
	if err != nil {
		return nil, chainError(err, fmt.Sprintf("%s %s not confirmed", action, hash.Hex()))
	}
	if !receipt.Succeeded() {
		return nil, apperrors.DependencyError(
			fmt.Errorf("%s %s reverted", action, hash.Hex()),
			action+" reverted")
	}

	s.logger.Info("Paymaster transaction mined",
		zap.String("action", action),
		zap.String("tx_hash", hash.Hex()),
		zap.Uint64("block", receipt.BlockNumber))

	return &paymaster.TxResponse{
		TxHash:      hash.Hex(),
		BlockNumber: receipt.BlockNumber,
		GasUsed:     receipt.GasUsed,
	}, nil
}

func chainError(err error, message string) error {
	switch {
	case errors.Is(err, ethereum.ErrPaymasterNotConfigured):
		return apperrors.UnavailableError(err, "paymaster is not configured")
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.TimeoutError(err, message)
	default:
		return apperrors.DependencyError(err, message)
	}
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
