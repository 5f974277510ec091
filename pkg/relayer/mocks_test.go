package relayer

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/castpay-relayer/pkg/auth"
	"github.com/chainsafe/castpay-relayer/pkg/ethereum"
)

// MockChain is a mock implementation of Chain. Unset funcs return zero values.
type MockChain struct {
	GetBalanceFunc          func(ctx context.Context, owner common.Address) (*big.Int, error)
	GetAllowanceFunc        func(ctx context.Context, owner common.Address) (*big.Int, error)
	EstimateTransferGasFunc func(ctx context.Context, from, to common.Address, amount *big.Int) (uint64, error)
	SuggestGasPriceFunc     func(ctx context.Context) (*big.Int, error)
	SubmitTransferFunc      func(ctx context.Context, from, to common.Address, amount *big.Int, gasLimit uint64, gasPrice *big.Int) (common.Hash, error)
	WaitForReceiptFunc      func(ctx context.Context, txHash common.Hash) (*ethereum.Receipt, error)
	SponsorGasFunc          func(ctx context.Context, user common.Address, gasCost *big.Int) (common.Hash, error)

	mu    sync.Mutex
	calls map[string]int
}

func (m *MockChain) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
}

// Calls returns how many times the named method was invoked
func (m *MockChain) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *MockChain) GetBalance(ctx context.Context, owner common.Address) (*big.Int, error) {
	m.record("GetBalance")
	if m.GetBalanceFunc != nil {
		return m.GetBalanceFunc(ctx, owner)
	}
	return new(big.Int), nil
}

func (m *MockChain) GetAllowance(ctx context.Context, owner common.Address) (*big.Int, error) {
	m.record("GetAllowance")
	if m.GetAllowanceFunc != nil {
		return m.GetAllowanceFunc(ctx, owner)
	}
	return new(big.Int), nil
}

func (m *MockChain) EstimateTransferGas(ctx context.Context, from, to common.Address, amount *big.Int) (uint64, error) {
	m.record("EstimateTransferGas")
	if m.EstimateTransferGasFunc != nil {
		return m.EstimateTransferGasFunc(ctx, from, to, amount)
	}
	return 50_000, nil
}

func (m *MockChain) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	m.record("SuggestGasPrice")
	if m.SuggestGasPriceFunc != nil {
		return m.SuggestGasPriceFunc(ctx)
	}
	return big.NewInt(1_000_000_000), nil
}

func (m *MockChain) SubmitTransfer(
	ctx context.Context,
	from, to common.Address,
	amount *big.Int,
	gasLimit uint64,
	gasPrice *big.Int,
) (common.Hash, error) {
	m.record("SubmitTransfer")
	if m.SubmitTransferFunc != nil {
		return m.SubmitTransferFunc(ctx, from, to, amount, gasLimit, gasPrice)
	}
	return common.HexToHash("0xfeed"), nil
}

func (m *MockChain) WaitForReceipt(ctx context.Context, txHash common.Hash) (*ethereum.Receipt, error) {
	m.record("WaitForReceipt")
	if m.WaitForReceiptFunc != nil {
		return m.WaitForReceiptFunc(ctx, txHash)
	}
	return &ethereum.Receipt{TxHash: txHash, Status: 1, BlockNumber: 100, GasUsed: 45_000}, nil
}

func (m *MockChain) SponsorGas(ctx context.Context, user common.Address, gasCost *big.Int) (common.Hash, error) {
	m.record("SponsorGas")
	if m.SponsorGasFunc != nil {
		return m.SponsorGasFunc(ctx, user, gasCost)
	}
	return common.HexToHash("0x5905"), nil
}

// funded returns a chain where every sender holds balance and has approved allowance
func funded(balance, allowance int64) *MockChain {
	return &MockChain{
		GetBalanceFunc: func(context.Context, common.Address) (*big.Int, error) {
			return big.NewInt(balance), nil
		},
		GetAllowanceFunc: func(context.Context, common.Address) (*big.Int, error) {
			return big.NewInt(allowance), nil
		},
	}
}

type signer struct {
	key     *ecdsa.PrivateKey
	address string
}

func newSigner(t *testing.T) *signer {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return &signer{key: key, address: crypto.PubkeyToAddress(key.PublicKey).Hex()}
}

// sign produces a personal-message signature over the canonical intent
func (s *signer) sign(t *testing.T, recipient string, amountBaseUnits string, n uint64) string {
	t.Helper()
	msg := auth.CanonicalMessage(s.address, recipient, amountBaseUnits, n)
	sig, err := crypto.Sign(auth.PersonalMessageHash(msg), s.key)
	require.NoError(t, err)
	sig[64] += 27
	return "0x" + hex.EncodeToString(sig)
}
