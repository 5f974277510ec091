package relayer

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/castpay-relayer/pkg/transfer"
)

const (
	senderAddr    = "0x1111111111111111111111111111111111111111"
	recipientAddr = "0x2222222222222222222222222222222222222222"
)

func usdc(whole int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(whole), big.NewInt(1_000_000))
}

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name      string
		sender    string
		recipient string
		amount    *big.Int
		balance   *big.Int
		allowance *big.Int
		wantKind  transfer.ErrorKind
	}{
		{
			name:      "passes when funded and approved",
			sender:    senderAddr,
			recipient: recipientAddr,
			amount:    usdc(10),
			balance:   usdc(100),
			allowance: usdc(100),
		},
		{
			name:      "exact balance and allowance pass",
			sender:    senderAddr,
			recipient: recipientAddr,
			amount:    usdc(100),
			balance:   usdc(100),
			allowance: usdc(100),
		},
		{
			name:      "malformed sender",
			sender:    "0x1234",
			recipient: recipientAddr,
			amount:    usdc(1),
			wantKind:  transfer.KindInvalidAddress,
		},
		{
			name:      "malformed recipient",
			sender:    senderAddr,
			recipient: "not-an-address",
			amount:    usdc(1),
			wantKind:  transfer.KindInvalidAddress,
		},
		{
			name:      "zero sender",
			sender:    "0x0000000000000000000000000000000000000000",
			recipient: recipientAddr,
			amount:    usdc(1),
			balance:   usdc(100),
			allowance: usdc(100),
			wantKind:  transfer.KindInvalidAddress,
		},
		{
			name:      "zero recipient",
			sender:    senderAddr,
			recipient: "0x0000000000000000000000000000000000000000",
			amount:    usdc(10),
			balance:   usdc(100),
			allowance: usdc(100),
			wantKind:  transfer.KindInvalidAddress,
		},
		{
			name:      "zero amount",
			sender:    senderAddr,
			recipient: recipientAddr,
			amount:    big.NewInt(0),
			wantKind:  transfer.KindInvalidAmount,
		},
		{
			name:      "negative amount",
			sender:    senderAddr,
			recipient: recipientAddr,
			amount:    big.NewInt(-5),
			wantKind:  transfer.KindInvalidAmount,
		},
		{
			name:      "balance below amount",
			sender:    senderAddr,
			recipient: recipientAddr,
			amount:    usdc(75),
			balance:   usdc(50),
			allowance: usdc(100),
			wantKind:  transfer.KindInsufficientBalance,
		},
		{
			name:      "allowance below amount",
			sender:    senderAddr,
			recipient: recipientAddr,
			amount:    usdc(75),
			balance:   usdc(100),
			allowance: usdc(50),
			wantKind:  transfer.KindInsufficientAllowance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := &MockChain{
				GetBalanceFunc: func(context.Context, common.Address) (*big.Int, error) {
					return tt.balance, nil
				},
				GetAllowanceFunc: func(context.Context, common.Address) (*big.Int, error) {
					return tt.allowance, nil
				},
			}
			v := NewValidator(chain, transfer.USDCDecimals)

			err := v.Validate(context.Background(), tt.sender, tt.recipient, tt.amount)
			if tt.wantKind == transfer.KindUnknown {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, transfer.KindOf(err))
		})
	}
}

func TestValidator_InvalidAmountMakesNoChainReads(t *testing.T) {
	chain := funded(0, 0)
	v := NewValidator(chain, transfer.USDCDecimals)

	err := v.Validate(context.Background(), senderAddr, recipientAddr, big.NewInt(0))

	assert.Equal(t, transfer.KindInvalidAmount, transfer.KindOf(err))
	assert.Zero(t, chain.Calls("GetBalance"))
	assert.Zero(t, chain.Calls("GetAllowance"))
}

func TestValidator_InsufficientBalanceSkipsAllowance(t *testing.T) {
	chain := &MockChain{
		GetBalanceFunc: func(context.Context, common.Address) (*big.Int, error) {
			return usdc(1), nil
		},
	}
	v := NewValidator(chain, transfer.USDCDecimals)

	err := v.Validate(context.Background(), senderAddr, recipientAddr, usdc(2))

	assert.Equal(t, transfer.KindInsufficientBalance, transfer.KindOf(err))
	assert.Contains(t, err.Error(), "have 1.000000, need 2.000000")
	assert.Zero(t, chain.Calls("GetAllowance"))
}

func TestValidator_RaisingBalanceLetsIntentPass(t *testing.T) {
	balance := usdc(50)
	chain := &MockChain{
		GetBalanceFunc: func(context.Context, common.Address) (*big.Int, error) {
			return balance, nil
		},
		GetAllowanceFunc: func(context.Context, common.Address) (*big.Int, error) {
			return usdc(100), nil
		},
	}
	v := NewValidator(chain, transfer.USDCDecimals)

	err := v.Validate(context.Background(), senderAddr, recipientAddr, usdc(75))
	assert.Equal(t, transfer.KindInsufficientBalance, transfer.KindOf(err))

	balance = usdc(75)
	assert.NoError(t, v.Validate(context.Background(), senderAddr, recipientAddr, usdc(75)))
}

func TestValidator_ChainReadFailure(t *testing.T) {
	rpcErr := errors.New("connection refused")
	chain := &MockChain{
		GetBalanceFunc: func(context.Context, common.Address) (*big.Int, error) {
			return nil, rpcErr
		},
	}
	v := NewValidator(chain, transfer.USDCDecimals)

	err := v.Validate(context.Background(), senderAddr, recipientAddr, usdc(1))

	assert.Equal(t, transfer.KindRPCError, transfer.KindOf(err))
	assert.ErrorIs(t, err, rpcErr)
}

func TestValidator_ChainReadDeadlineIsTimeout(t *testing.T) {
	chain := &MockChain{
		GetBalanceFunc: func(context.Context, common.Address) (*big.Int, error) {
			return usdc(10), nil
		},
		GetAllowanceFunc: func(context.Context, common.Address) (*big.Int, error) {
			return nil, context.DeadlineExceeded
		},
	}
	v := NewValidator(chain, transfer.USDCDecimals)

	err := v.Validate(context.Background(), senderAddr, recipientAddr, usdc(1))

	assert.Equal(t, transfer.KindTimeout, transfer.KindOf(err))
}
