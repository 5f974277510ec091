package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ERC20MetaData contains the subset of the ERC-20 ABI used by the relay.
var ERC20MetaData = &bind.MetaData{
	ABI: `[
	{"type":"function","name":"balanceOf","stateMutability":"view",
	 "inputs":[{"name":"account","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"allowance","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transferFrom","stateMutability":"nonpayable",
	 "inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"value","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]}
]`,
}

// ERC20 is a Go binding around the stablecoin token contract.
type ERC20 struct {
	address  common.Address
	abi      *abi.ABI
	contract *bind.BoundContract
}

// NewERC20 binds the token contract deployed at address.
func NewERC20(address common.Address, backend bind.ContractBackend) (*ERC20, error) {
	parsed, err := ERC20MetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return &ERC20{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, *parsed, backend, backend, backend),
	}, nil
}

// Address returns the bound contract address
func (t *ERC20) Address() common.Address {
	return t.address
}

// BalanceOf is a free data retrieval call binding the contract method 0x70a08231.
//
// Solidity: function balanceOf(address account) view returns(uint256)
func (t *ERC20) BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error) {
	return callUint256(t.contract, opts, "balanceOf", account)
}

// Allowance is a free data retrieval call binding the contract method 0xdd62ed3e.
//
// Solidity: function allowance(address owner, address spender) view returns(uint256)
func (t *ERC20) Allowance(opts *bind.CallOpts, owner, spender common.Address) (*big.Int, error) {
	return callUint256(t.contract, opts, "allowance", owner, spender)
}

// TransferFrom is a paid mutator transaction binding the contract method 0x23b872dd.
//
// Solidity: function transferFrom(address from, address to, uint256 value) returns(bool)
func (t *ERC20) TransferFrom(opts *bind.TransactOpts, from, to common.Address, value *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "transferFrom", from, to, value)
}

// PackTransferFrom returns the calldata for transferFrom, used for gas estimation.
func (t *ERC20) PackTransferFrom(from, to common.Address, value *big.Int) ([]byte, error) {
	return t.abi.Pack("transferFrom", from, to, value)
}

func callUint256(contract *bind.BoundContract, opts *bind.CallOpts, method string, params ...any) (*big.Int, error) {
	var out []any
	if err := contract.Call(opts, &out, method, params...); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func callBool(contract *bind.BoundContract, opts *bind.CallOpts, method string, params ...any) (bool, error) {
	var out []any
	if err := contract.Call(opts, &out, method, params...); err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}
