package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/castpay-relayer/pkg/config"
	"github.com/chainsafe/castpay-relayer/pkg/ethereum/contracts"
)

// Fallbacks for a config that skipped validation
const (
	defaultRPCTimeout     = 10 * time.Second
	defaultReceiptTimeout = 2 * time.Minute
)

// ErrPaymasterNotConfigured is returned by paymaster calls when no contract address is set
var ErrPaymasterNotConfigured = errors.New("paymaster contract is not configured")

// Backend is the node connection used by Client. *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Client is the relay's read/write gateway to the token and paymaster contracts
type Client struct {
	config     config.EthereumConfig
	backend    Backend
	closer     func()
	privateKey *ecdsa.PrivateKey
	address    common.Address
	chainID    *big.Int
	spender    common.Address
	maxGas     *big.Int
	logger     *zap.Logger

	token     *contracts.ERC20
	paymaster *contracts.Paymaster

	// nonceMu serializes signing so concurrent sends never reuse a wallet nonce
	nonceMu   sync.Mutex
	nextNonce uint64
}

// NewClient dials the configured RPC endpoint and binds the token and paymaster contracts
func NewClient(cfg *config.Config, logger *zap.Logger) (*Client, error) {
	rpc, err := ethclient.Dial(cfg.Ethereum.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	c, err := NewClientWithBackend(rpc, cfg, logger)
	if err != nil {
		rpc.Close()
		return nil, err
	}
	c.closer = rpc.Close

	logger.Info("Connected to Ethereum",
		zap.Int64("chain_id", cfg.Ethereum.ChainID),
		zap.String("rpc_url", cfg.Ethereum.RPCURL),
		zap.String("token_contract", c.token.Address().Hex()),
		zap.String("relayer_address", c.address.Hex()),
		zap.String("spender_address", c.spender.Hex()))

	return c, nil
}

// NewClientWithBackend builds a client over an existing node connection
func NewClientWithBackend(backend Backend, cfg *config.Config, logger *zap.Logger) (*Client, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.Ethereum.RelayerPrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}
	address := crypto.PubkeyToAddress(privateKey.PublicKey)

	token, err := contracts.NewERC20(common.HexToAddress(cfg.Token.Address), backend)
	if err != nil {
		return nil, fmt.Errorf("failed to load token contract: %w", err)
	}

	var paymaster *contracts.Paymaster
	if cfg.Paymaster.Address != "" {
		paymaster, err = contracts.NewPaymaster(common.HexToAddress(cfg.Paymaster.Address), backend)
		if err != nil {
			return nil, fmt.Errorf("failed to load paymaster contract: %w", err)
		}
	}

	spender := address
	if cfg.Token.SpenderAddress != "" {
		spender = common.HexToAddress(cfg.Token.SpenderAddress)
	}

	var maxGas *big.Int
	if cfg.Ethereum.MaxGasPrice != "" {
		v, ok := new(big.Int).SetString(cfg.Ethereum.MaxGasPrice, 10)
		if !ok {
			return nil, fmt.Errorf("invalid max gas price %q", cfg.Ethereum.MaxGasPrice)
		}
		maxGas = v
	}

	return &Client{
		config:     cfg.Ethereum,
		backend:    backend,
		privateKey: privateKey,
		address:    address,
		chainID:    big.NewInt(cfg.Ethereum.ChainID),
		spender:    spender,
		maxGas:     maxGas,
		logger:     logger,
		token:      token,
		paymaster:  paymaster,
	}, nil
}

// Close closes the underlying RPC connection
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// RelayerAddress returns the address of the relay's signing key
func (c *Client) RelayerAddress() common.Address {
	return c.address
}

// SpenderAddress returns the account users must approve to spend their tokens
func (c *Client) SpenderAddress() common.Address {
	return c.spender
}

// PaymasterAddress returns the paymaster address, or the zero address when disabled
func (c *Client) PaymasterAddress() common.Address {
	if c.paymaster == nil {
		return common.Address{}
	}
	return c.paymaster.Address()
}

func (c *Client) rpcContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := c.config.RPCTimeout
	if timeout <= 0 {
		timeout = defaultRPCTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (c *Client) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx, From: c.address}
}

// GetBalance returns the token balance of owner in base units
func (c *Client) GetBalance(ctx context.Context, owner common.Address) (*big.Int, error) {
	ctx, cancel := c.rpcContext(ctx)
	defer cancel()

	balance, err := c.token.BalanceOf(c.callOpts(ctx), owner)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance of %s: %w", owner.Hex(), err)
	}
	return balance, nil
}

// GetAllowance returns how much the relay spender may move on behalf of owner
func (c *Client) GetAllowance(ctx context.Context, owner common.Address) (*big.Int, error) {
	ctx, cancel := c.rpcContext(ctx)
	defer cancel()

	allowance, err := c.token.Allowance(c.callOpts(ctx), owner, c.spender)
	if err != nil {
		return nil, fmt.Errorf("failed to read allowance of %s: %w", owner.Hex(), err)
	}
	return allowance, nil
}

// EstimateTransferGas estimates gas for transferFrom(from, to, amount) sent by the relay
func (c *Client) EstimateTransferGas(ctx context.Context, from, to common.Address, amount *big.Int) (uint64, error) {
	data, err := c.token.PackTransferFrom(from, to, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to pack transferFrom: %w", err)
	}

	ctx, cancel := c.rpcContext(ctx)
	defer cancel()

	tokenAddr := c.token.Address()
	gas, err := c.backend.EstimateGas(ctx, geth.CallMsg{
		From: c.address,
		To:   &tokenAddr,
		Data: data,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to estimate transfer gas: %w", err)
	}
	return gas, nil
}

// SuggestGasPrice returns the node's gas price, capped by ethereum.max_gas_price
func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	ctx, cancel := c.rpcContext(ctx)
	defer cancel()

	suggested, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas price: %w", err)
	}

	price, capped := CapGasPrice(suggested, c.maxGas)
	if capped {
		c.logger.Warn("Suggested gas price exceeds maximum",
			zap.String("suggested", suggested.String()),
			zap.String("max", c.maxGas.String()))
	}
	return price, nil
}

// SubmitTransfer broadcasts transferFrom(from, to, amount) signed by the relay key
func (c *Client) SubmitTransfer(
	ctx context.Context,
	from, to common.Address,
	amount *big.Int,
	gasLimit uint64,
	gasPrice *big.Int,
) (common.Hash, error) {
	tx, err := c.transact(ctx, gasLimit, gasPrice, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.token.TransferFrom(opts, from, to, amount)
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to submit transfer transaction: %w", err)
	}

	c.logger.Info("Transfer transaction submitted",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("from", from.Hex()),
		zap.String("to", to.Hex()),
		zap.String("amount", amount.String()),
		zap.Uint64("wallet_nonce", tx.Nonce()))

	return tx.Hash(), nil
}

// WaitForReceipt polls for the receipt of txHash until it is mined or
// ethereum.receipt_timeout elapses. A missing receipt at the deadline is
// reported as context.DeadlineExceeded.
func (c *Client) WaitForReceipt(ctx context.Context, txHash common.Hash) (*Receipt, error) {
	timeout := c.config.ReceiptTimeout
	if timeout <= 0 {
		timeout = defaultReceiptTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	interval := c.config.ReceiptPollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		rctx, cancel := c.rpcContext(ctx)
		receipt, err := c.backend.TransactionReceipt(rctx, txHash)
		cancel()

		switch {
		case err == nil:
			return &Receipt{
				TxHash:      receipt.TxHash,
				Status:      receipt.Status,
				BlockNumber: blockNumber(receipt),
				GasUsed:     receipt.GasUsed,
			}, nil
		case errors.Is(err, geth.NotFound):
		default:
			c.logger.Warn("Failed to fetch receipt", zap.String("tx_hash", txHash.Hex()), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for receipt of %s: %w", txHash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

func blockNumber(r *types.Receipt) uint64 {
	if r.BlockNumber == nil {
		return 0
	}
	return r.BlockNumber.Uint64()
}

// SponsorGas calls sponsor_gas_for_user(user, gasCost) on the paymaster
func (c *Client) SponsorGas(ctx context.Context, user common.Address, gasCost *big.Int) (common.Hash, error) {
	if c.paymaster == nil {
		return common.Hash{}, ErrPaymasterNotConfigured
	}

	tx, err := c.transact(ctx, 0, nil, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.paymaster.SponsorGasForUser(opts, user, gasCost)
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sponsor gas: %w", err)
	}
	return tx.Hash(), nil
}

// DepositToPaymaster moves amount base units of the token from the relay into the paymaster
func (c *Client) DepositToPaymaster(ctx context.Context, amount *big.Int) (common.Hash, error) {
	if c.paymaster == nil {
		return common.Hash{}, ErrPaymasterNotConfigured
	}

	tx, err := c.transact(ctx, 0, nil, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.paymaster.DepositUSDC(opts, amount)
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to deposit to paymaster: %w", err)
	}

	c.logger.Info("Paymaster deposit submitted",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("amount", amount.String()))
	return tx.Hash(), nil
}

// RegisterUser calls register_user on the paymaster from the relay wallet
func (c *Client) RegisterUser(ctx context.Context) (common.Hash, error) {
	if c.paymaster == nil {
		return common.Hash{}, ErrPaymasterNotConfigured
	}

	tx, err := c.transact(ctx, 0, nil, c.paymaster.RegisterUser)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to register paymaster user: %w", err)
	}
	return tx.Hash(), nil
}

// GetPaymasterSnapshot reads the paymaster's status views
func (c *Client) GetPaymasterSnapshot(ctx context.Context) (*PaymasterSnapshot, error) {
	if c.paymaster == nil {
		return nil, ErrPaymasterNotConfigured
	}

	ctx, cancel := c.rpcContext(ctx)
	defer cancel()
	opts := c.callOpts(ctx)

	snap := &PaymasterSnapshot{Address: c.paymaster.Address()}
	var err error
	if snap.ContractBalance, err = c.paymaster.GetContractBalance(opts); err != nil {
		return nil, fmt.Errorf("failed to read paymaster balance: %w", err)
	}
	if snap.TotalDeposited, err = c.paymaster.GetTotalUSDCDeposited(opts); err != nil {
		return nil, fmt.Errorf("failed to read paymaster deposits: %w", err)
	}
	if snap.UserCount, err = c.paymaster.GetUserCount(opts); err != nil {
		return nil, fmt.Errorf("failed to read paymaster user count: %w", err)
	}
	if snap.Paused, err = c.paymaster.IsPaused(opts); err != nil {
		return nil, fmt.Errorf("failed to read paymaster pause flag: %w", err)
	}
	if snap.SponsorshipEnabled, err = c.paymaster.IsGasSponsorshipEnabled(opts); err != nil {
		return nil, fmt.Errorf("failed to read paymaster sponsorship flag: %w", err)
	}
	return snap, nil
}

// GetPaymasterBalance returns only the paymaster's token balance
func (c *Client) GetPaymasterBalance(ctx context.Context) (*big.Int, error) {
	if c.paymaster == nil {
		return nil, ErrPaymasterNotConfigured
	}

	ctx, cancel := c.rpcContext(ctx)
	defer cancel()

	balance, err := c.paymaster.GetContractBalance(c.callOpts(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to read paymaster balance: %w", err)
	}
	return balance, nil
}

// transact signs and sends a transaction from the relay wallet. The wallet
// nonce is max(local counter, node pending nonce); a failed send drops the
// local counter so the next call re-syncs from the node.
func (c *Client) transact(
	ctx context.Context,
	gasLimit uint64,
	gasPrice *big.Int,
	send func(*bind.TransactOpts) (*types.Transaction, error),
) (*types.Transaction, error) {
	c.nonceMu.Lock()
	defer c.nonceMu.Unlock()

	ctx, cancel := c.rpcContext(ctx)
	defer cancel()

	pending, err := c.backend.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}
	nonce := max(pending, c.nextNonce)

	opts, err := bind.NewKeyedTransactorWithChainID(c.privateKey, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	opts.Nonce = new(big.Int).SetUint64(nonce)
	opts.GasLimit = gasLimit
	opts.GasPrice = gasPrice

	tx, err := send(opts)
	if err != nil {
		c.nextNonce = 0
		return nil, err
	}
	c.nextNonce = nonce + 1
	return tx, nil
}
