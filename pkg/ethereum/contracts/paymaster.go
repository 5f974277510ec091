package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// PaymasterMetaData contains the ABI of the gas sponsorship contract.
var PaymasterMetaData = &bind.MetaData{
	ABI: `[
	{"type":"function","name":"sponsor_gas_for_user","stateMutability":"nonpayable",
	 "inputs":[{"name":"user","type":"address"},{"name":"gas_cost","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"register_user","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"deposit_usdc","stateMutability":"nonpayable",
	 "inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"get_contract_balance","stateMutability":"view","inputs":[],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"get_total_usdc_deposited","stateMutability":"view","inputs":[],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"get_user_count","stateMutability":"view","inputs":[],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"is_paused","stateMutability":"view","inputs":[],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"is_gas_sponsorship_enabled","stateMutability":"view","inputs":[],
	 "outputs":[{"name":"","type":"bool"}]}
]`,
}

// Paymaster is a Go binding around the paymaster contract.
type Paymaster struct {
	address  common.Address
	contract *bind.BoundContract
}

// NewPaymaster binds the paymaster contract deployed at address.
func NewPaymaster(address common.Address, backend bind.ContractBackend) (*Paymaster, error) {
	parsed, err := PaymasterMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return &Paymaster{
		address:  address,
		contract: bind.NewBoundContract(address, *parsed, backend, backend, backend),
	}, nil
}

// Address returns the bound contract address
func (p *Paymaster) Address() common.Address {
	return p.address
}

// SponsorGasForUser records a gas sponsorship for user.
//
// Solidity: function sponsor_gas_for_user(address user, uint256 gas_cost)
func (p *Paymaster) SponsorGasForUser(opts *bind.TransactOpts, user common.Address, gasCost *big.Int) (*types.Transaction, error) {
	return p.contract.Transact(opts, "sponsor_gas_for_user", user, gasCost)
}

// RegisterUser registers the transaction sender with the paymaster.
//
// Solidity: function register_user()
func (p *Paymaster) RegisterUser(opts *bind.TransactOpts) (*types.Transaction, error) {
	return p.contract.Transact(opts, "register_user")
}

// DepositUSDC moves stablecoin from the sender into the paymaster.
//
// Solidity: function deposit_usdc(uint256 amount)
func (p *Paymaster) DepositUSDC(opts *bind.TransactOpts, amount *big.Int) (*types.Transaction, error) {
	return p.contract.Transact(opts, "deposit_usdc", amount)
}

// GetContractBalance is a free data retrieval call.
//
// Solidity: function get_contract_balance() view returns(uint256)
func (p *Paymaster) GetContractBalance(opts *bind.CallOpts) (*big.Int, error) {
	return callUint256(p.contract, opts, "get_contract_balance")
}

// GetTotalUSDCDeposited is a free data retrieval call.
//
// Solidity: function get_total_usdc_deposited() view returns(uint256)
func (p *Paymaster) GetTotalUSDCDeposited(opts *bind.CallOpts) (*big.Int, error) {
	return callUint256(p.contract, opts, "get_total_usdc_deposited")
}

// GetUserCount is a free data retrieval call.
//
// Solidity: function get_user_count() view returns(uint256)
func (p *Paymaster) GetUserCount(opts *bind.CallOpts) (*big.Int, error) {
	return callUint256(p.contract, opts, "get_user_count")
}

// IsPaused is a free data retrieval call.
//
// Solidity: function is_paused() view returns(bool)
func (p *Paymaster) IsPaused(opts *bind.CallOpts) (bool, error) {
	return callBool(p.contract, opts, "is_paused")
}

// IsGasSponsorshipEnabled is a free data retrieval call.
//
// Solidity: function is_gas_sponsorship_enabled() view returns(bool)
func (p *Paymaster) IsGasSponsorshipEnabled(opts *bind.CallOpts) (bool, error) {
	return callBool(p.contract, opts, "is_gas_sponsorship_enabled")
}
