package relayer

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/castpay-relayer/pkg/auth"
	"github.com/chainsafe/castpay-relayer/pkg/transfer"
)

// BalanceReader reads the on-chain state the validator checks
type BalanceReader interface {
	GetBalance(ctx context.Context, owner common.Address) (*big.Int, error)
	GetAllowance(ctx context.Context, owner common.Address) (*big.Int, error)
}

// Validator checks transfer preconditions before anything is written on chain
type Validator struct {
	chain    BalanceReader
	decimals int32
}

// NewValidator creates a validator reading balances through chain
func NewValidator(chain BalanceReader, decimals int32) *Validator {
	return &Validator{chain: chain, decimals: decimals}
}

// Validate checks, in order, address shape, that neither address is the zero
// address, a positive amount, the sender's balance and the relay's allowance.
// The first failure is returned as a *transfer.Error; a failed chain read is
// reported as KindRPCError.
func (v *Validator) Validate(ctx context.Context, sender, recipient string, amount *big.Int) error {
	if !auth.ValidateEVMAddress(sender) {
		return transfer.NewError(transfer.KindInvalidAddress, fmt.Sprintf("invalid sender address %q", sender))
	}
	if !auth.ValidateEVMAddress(recipient) {
		return transfer.NewError(transfer.KindInvalidAddress, fmt.Sprintf("invalid recipient address %q", recipient))
	}
	if common.HexToAddress(sender) == (common.Address{}) {
		return transfer.NewError(transfer.KindInvalidAddress, "sender cannot be the zero address")
	}
	if common.HexToAddress(recipient) == (common.Address{}) {
		return transfer.NewError(transfer.KindInvalidAddress, "recipient cannot be the zero address")
	}
	if amount == nil || amount.Sign() <= 0 {
		return transfer.NewError(transfer.KindInvalidAmount, "amount must be greater than zero")
	}

	owner := common.HexToAddress(sender)

	balance, err := v.chain.GetBalance(ctx, owner)
	if err != nil {
		return transfer.WrapError(transfer.KindRPCError, "failed to read sender balance", err)
	}
	if balance.Cmp(amount) < 0 {
		return transfer.NewError(transfer.KindInsufficientBalance, fmt.Sprintf(
			"insufficient balance: have %s, need %s",
			transfer.FormatUnits(balance, v.decimals), transfer.FormatUnits(amount, v.decimals)))
	}

	allowance, err := v.chain.GetAllowance(ctx, owner)
	if err != nil {
		return transfer.WrapError(transfer.KindRPCError, "failed to read relayer allowance", err)
	}
	if allowance.Cmp(amount) < 0 {
		return transfer.NewError(transfer.KindInsufficientAllowance, fmt.Sprintf(
			"insufficient allowance: approved %s, need %s",
			transfer.FormatUnits(allowance, v.decimals), transfer.FormatUnits(amount, v.decimals)))
	}

	return nil
}
