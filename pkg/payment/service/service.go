package service

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/castpay-relayer/pkg/app/errors"
	"github.com/chainsafe/castpay-relayer/pkg/auth"
	"github.com/chainsafe/castpay-relayer/pkg/nonce"
	"github.com/chainsafe/castpay-relayer/pkg/payment"
	"github.com/chainsafe/castpay-relayer/pkg/relayer"
	"github.com/chainsafe/castpay-relayer/pkg/transfer"
	"github.com/chainsafe/castpay-relayer/pkg/transfer/store"
)

// Engine accepts transfer intents for asynchronous execution
//
//go:generate mockery --name Engine --output mocks --outpkg mocks --filename mock_engine.go --with-expecter
type Engine interface {
	Submit(ctx context.Context, req *relayer.SubmitRequest) (*transfer.Acknowledgement, error)
	Nonce(sender string) uint64
}

// Records is the read side of the transfer record store
//
//go:generate mockery --name Records --output mocks --outpkg mocks --filename mock_records.go --with-expecter
type Records interface {
	Get(id string) (*transfer.Record, error)
	List(f store.Filter) []*transfer.Record
}

// TokenReader reads token balances for the configured stablecoin
//
//go:generate mockery --name TokenReader --output mocks --outpkg mocks --filename mock_token_reader.go --with-expecter
type TokenReader interface {
	GetBalance(ctx context.Context, owner common.Address) (*big.Int, error)
	GetAllowance(ctx context.Context, owner common.Address) (*big.Int, error)
	SpenderAddress() common.Address
}

// Service defines the payment API business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	SubmitTransfer(ctx context.Context, req *payment.TransferRequest) (*transfer.Acknowledgement, error)
	GetTransaction(ctx context.Context, id string) (*transfer.Record, error)
	ListTransactions(ctx context.Context, f store.Filter) (*payment.TransactionsResponse, error)
	GetBalance(ctx context.Context, address string) (*payment.BalanceResponse, error)
	GetNonce(ctx context.Context, address string) (*payment.NonceResponse, error)
}

type paymentService struct {
	engine   Engine
	records  Records
	token    TokenReader
	symbol   string
	decimals int32
	logger   *zap.Logger
}

// NewService creates a payment service
func NewService(
	engine Engine,
	records Records,
	token TokenReader,
	symbol string,
	decimals int32,
	logger *zap.Logger,
) Service {
	return &paymentService{
		engine:   engine,
		records:  records,
		token:    token,
		symbol:   symbol,
		decimals: decimals,
		logger:   logger,
	}
}

// SubmitTransfer hands the intent to the relay engine. Signature, address and
// balance problems surface later on the record, not here.
func (s *paymentService) SubmitTransfer(
	ctx context.Context,
	req *payment.TransferRequest,
) (*transfer.Acknowledgement, error) {
	if req.Nonce == nil {
		return nil, apperrors.BadRequestError(nil, "nonce is required")
	}

	ack, err := s.engine.Submit(ctx, &relayer.SubmitRequest{
		Sender:    req.Sender,
		Recipient: req.Recipient,
		Amount:    req.Amount,
		Nonce:     *req.Nonce,
		Signature: req.Signature,
	})
	if err != nil {
		return nil, submitError(err)
	}
	return ack, nil
}

func submitError(err error) error {
	switch {
	case errors.Is(err, relayer.ErrInvalidAmount):
		return apperrors.BadRequestError(err, "invalid amount")
	case errors.Is(err, relayer.ErrInvalidIntent):
		return apperrors.BadRequestError(err, "sender, recipient, amount, nonce and signature are required")
	case errors.Is(err, nonce.ErrNonceUsed):
		return apperrors.BadRequestError(err, "nonce already used")
	case errors.Is(err, nonce.ErrNonceInFlight):
		return apperrors.BadRequestError(err, "a transfer with this nonce is already in progress")
	case errors.Is(err, relayer.ErrQueueFull):
		return apperrors.UnavailableError(err, "relay busy, please retry")
	case errors.Is(err, relayer.ErrNotRunning):
		return apperrors.UnavailableError(err, "relay is not accepting transfers")
	default:
		return apperrors.GeneralError(err)
	}
}

// GetTransaction returns the tracked record for id
func (s *paymentService) GetTransaction(_ context.Context, id string) (*transfer.Record, error) {
	rec, err := s.records.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "transaction not found")
		}
		return nil, apperrors.GeneralError(err)
	}
	return rec, nil
}

// ListTransactions returns records matching f
func (s *paymentService) ListTransactions(_ context.Context, f store.Filter) (*payment.TransactionsResponse, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, apperrors.BadRequestError(nil, "unknown status "+string(f.Status))
	}
	if f.Sender != "" {
		f.Sender = strings.TrimSpace(f.Sender)
	}
	records := s.records.List(f)
	return &payment.TransactionsResponse{Transactions: records, Count: len(records)}, nil
}

// GetBalance reads the sender's token balance and the relay's allowance
func (s *paymentService) GetBalance(ctx context.Context, address string) (*payment.BalanceResponse, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(nil, "invalid address")
	}
	owner := common.HexToAddress(address)

	balance, err := s.token.GetBalance(ctx, owner)
	if err != nil {
		return nil, chainError(err, "failed to read balance")
	}
	allowance, err := s.token.GetAllowance(ctx, owner)
	if err != nil {
		return nil, chainError(err, "failed to read allowance")
	}

	return &payment.BalanceResponse{
		Address:          owner.Hex(),
		Balance:          transfer.FormatUnits(balance, s.decimals),
		RelayerAllowance: transfer.FormatUnits(allowance, s.decimals),
		SpenderAddress:   s.token.SpenderAddress().Hex(),
		Symbol:           s.symbol,
	}, nil
}

// GetNonce returns the next nonce the address should sign with
func (s *paymentService) GetNonce(_ context.Context, address string) (*payment.NonceResponse, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(nil, "invalid address")
	}
	normalized := auth.NormalizeAddress(address)
	return &payment.NonceResponse{
		Address: normalized,
		Nonce:   s.engine.Nonce(normalized),
		Source:  payment.NonceSourceMemory,
	}, nil
}

func chainError(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError(err, message)
	}
	return apperrors.DependencyError(err, message)
}
