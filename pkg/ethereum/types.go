package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Receipt is the subset of a mined transaction receipt the relay records
type Receipt struct {
	TxHash      common.Hash
	Status      uint64
	BlockNumber uint64
	GasUsed     uint64
}

// Succeeded reports whether the transaction executed without reverting
func (r *Receipt) Succeeded() bool {
	return r.Status == types.ReceiptStatusSuccessful
}

// PaymasterSnapshot is a point-in-time view of the paymaster contract
type PaymasterSnapshot struct {
	Address            common.Address
	ContractBalance    *big.Int
	TotalDeposited     *big.Int
	UserCount          *big.Int
	Paused             bool
	SponsorshipEnabled bool
}
