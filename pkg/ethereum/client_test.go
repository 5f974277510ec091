package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/castpay-relayer/pkg/config"
	"github.com/chainsafe/castpay-relayer/pkg/ethereum/contracts"
)

const relayerKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var (
	tokenAddr     = common.HexToAddress("0x75faf114eafb1BDbe2F0316DF893fd58CE46AA4d")
	paymasterAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	alice         = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob           = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

// fakeBackend answers contract calls by decoding calldata against the bound
// ABIs. Methods not overridden hit the nil embedded interface and panic.
type fakeBackend struct {
	bind.ContractBackend

	mu           sync.Mutex
	erc20ABI     *abi.ABI
	paymasterABI *abi.ABI
	balances     map[common.Address]*big.Int
	allowances   map[common.Address]*big.Int
	paymaster    map[string]any
	pendingNonce uint64
	sendErr      error
	sent         []*types.Transaction
	receipts     map[common.Hash]*types.Receipt
	misses       int
	gasPrice     *big.Int
	estimate     uint64
	callDeadline bool
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	erc20ABI, err := contracts.ERC20MetaData.GetAbi()
	require.NoError(t, err)
	paymasterABI, err := contracts.PaymasterMetaData.GetAbi()
	require.NoError(t, err)

	return &fakeBackend{
		erc20ABI:     erc20ABI,
		paymasterABI: paymasterABI,
		balances:     map[common.Address]*big.Int{},
		allowances:   map[common.Address]*big.Int{},
		paymaster:    map[string]any{},
		receipts:     map[common.Hash]*types.Receipt{},
		gasPrice:     big.NewInt(100_000_000),
		estimate:     50_000,
	}
}

func (f *fakeBackend) CallContract(ctx context.Context, msg geth.CallMsg, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, f.callDeadline = ctx.Deadline()

	parsed := f.erc20ABI
	if *msg.To == paymasterAddr {
		parsed = f.paymasterABI
	}
	method, err := parsed.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return nil, err
	}

	switch method.Name {
	case "balanceOf":
		return method.Outputs.Pack(valueOr(f.balances[args[0].(common.Address)]))
	case "allowance":
		return method.Outputs.Pack(valueOr(f.allowances[args[0].(common.Address)]))
	default:
		v, ok := f.paymaster[method.Name]
		if !ok {
			return nil, fmt.Errorf("execution reverted: %s", method.Name)
		}
		return method.Outputs.Pack(v)
	}
}

func valueOr(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pendingNonce, nil
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return f.gasPrice, nil
}

func (f *fakeBackend) EstimateGas(_ context.Context, msg geth.CallMsg) (uint64, error) {
	if msg.To == nil || *msg.To != tokenAddr {
		return 0, errors.New("unexpected estimate target")
	}
	return f.estimate, nil
}

func (f *fakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.misses > 0 {
		f.misses--
		return nil, geth.NotFound
	}
	r, ok := f.receipts[hash]
	if !ok {
		return nil, geth.NotFound
	}
	return r, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Ethereum: config.EthereumConfig{
			RPCURL:              "http://localhost:8545",
			ChainID:             421614,
			RelayerPrivateKey:   relayerKey,
			RPCTimeout:          time.Second,
			ReceiptTimeout:      200 * time.Millisecond,
			ReceiptPollInterval: 10 * time.Millisecond,
		},
		Token:     config.TokenConfig{Address: tokenAddr.Hex(), Decimals: 6},
		Paymaster: config.PaymasterConfig{Address: paymasterAddr.Hex(), Enabled: true},
	}
}

func newTestClient(t *testing.T, cfg *config.Config) (*Client, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend(t)
	c, err := NewClientWithBackend(backend, cfg, zap.NewNop())
	require.NoError(t, err)
	return c, backend
}

func TestClient_SpenderDefaultsToRelayer(t *testing.T) {
	c, _ := newTestClient(t, testConfig())
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", c.RelayerAddress().Hex())
	assert.Equal(t, c.RelayerAddress(), c.SpenderAddress())

	cfg := testConfig()
	cfg.Token.SpenderAddress = bob.Hex()
	c, _ = newTestClient(t, cfg)
	assert.Equal(t, bob, c.SpenderAddress())
}

func TestClient_BalanceAndAllowance(t *testing.T) {
	c, backend := newTestClient(t, testConfig())
	backend.balances[alice] = big.NewInt(100_000_000)
	backend.allowances[alice] = big.NewInt(50_000_000)

	balance, err := c.GetBalance(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, "100000000", balance.String())

	allowance, err := c.GetAllowance(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, "50000000", allowance.String())

	balance, err = c.GetBalance(context.Background(), bob)
	require.NoError(t, err)
	assert.Zero(t, balance.Sign())
}

func TestClient_SuggestGasPriceCap(t *testing.T) {
	cfg := testConfig()
	cfg.Ethereum.MaxGasPrice = "50000000"
	c, _ := newTestClient(t, cfg)

	price, err := c.SuggestGasPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "50000000", price.String())
}

func TestClient_EstimateTransferGas(t *testing.T) {
	c, _ := newTestClient(t, testConfig())

	gas, err := c.EstimateTransferGas(context.Background(), alice, bob, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(50_000), gas)
}

func TestClient_SubmitTransfer_WalletNonceSequencing(t *testing.T) {
	c, backend := newTestClient(t, testConfig())
	backend.pendingNonce = 5
	ctx := context.Background()

	_, err := c.SubmitTransfer(ctx, alice, bob, big.NewInt(1), 60_000, big.NewInt(1))
	require.NoError(t, err)
	_, err = c.SubmitTransfer(ctx, alice, bob, big.NewInt(2), 60_000, big.NewInt(1))
	require.NoError(t, err)

	require.Len(t, backend.sent, 2)
	assert.Equal(t, uint64(5), backend.sent[0].Nonce())
	assert.Equal(t, uint64(6), backend.sent[1].Nonce(), "local counter ahead of a lagging node")
	assert.Equal(t, uint64(60_000), backend.sent[0].Gas())
	assert.Equal(t, tokenAddr, *backend.sent[0].To())

	backend.sendErr = errors.New("nonce too low")
	_, err = c.SubmitTransfer(ctx, alice, bob, big.NewInt(3), 60_000, big.NewInt(1))
	require.Error(t, err)

	backend.sendErr = nil
	backend.pendingNonce = 9
	_, err = c.SubmitTransfer(ctx, alice, bob, big.NewInt(3), 60_000, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(9), backend.sent[2].Nonce(), "re-synced from node after failure")
}

func TestClient_SubmitTransfer_ConcurrentNoncesAreUnique(t *testing.T) {
	c, backend := newTestClient(t, testConfig())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.SubmitTransfer(context.Background(), alice, bob, big.NewInt(int64(i+1)), 60_000, big.NewInt(1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seen := map[uint64]bool{}
	for _, tx := range backend.sent {
		assert.False(t, seen[tx.Nonce()], "duplicate nonce %d", tx.Nonce())
		seen[tx.Nonce()] = true
	}
	assert.Len(t, seen, 20)
}

func TestClient_WaitForReceipt(t *testing.T) {
	c, backend := newTestClient(t, testConfig())
	hash := common.HexToHash("0xabc")
	backend.misses = 2
	backend.receipts[hash] = &types.Receipt{
		TxHash:      hash,
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(1234),
		GasUsed:     48_000,
	}

	receipt, err := c.WaitForReceipt(context.Background(), hash)
	require.NoError(t, err)
	assert.True(t, receipt.Succeeded())
	assert.Equal(t, uint64(1234), receipt.BlockNumber)
	assert.Equal(t, uint64(48_000), receipt.GasUsed)
}

func TestClient_WaitForReceipt_Timeout(t *testing.T) {
	c, _ := newTestClient(t, testConfig())

	_, err := c.WaitForReceipt(context.Background(), common.HexToHash("0xdead"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_CallsAlwaysCarryDeadline(t *testing.T) {
	cfg := testConfig()
	cfg.Ethereum.RPCTimeout = 0
	c, backend := newTestClient(t, cfg)

	_, err := c.GetBalance(context.Background(), alice)
	require.NoError(t, err)
	assert.True(t, backend.callDeadline)
}

func TestClient_PaymasterSnapshot(t *testing.T) {
	c, backend := newTestClient(t, testConfig())
	backend.paymaster["get_contract_balance"] = big.NewInt(5_000_000)
	backend.paymaster["get_total_usdc_deposited"] = big.NewInt(9_000_000)
	backend.paymaster["get_user_count"] = big.NewInt(3)
	backend.paymaster["is_paused"] = false
	backend.paymaster["is_gas_sponsorship_enabled"] = true

	snap, err := c.GetPaymasterSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, paymasterAddr, snap.Address)
	assert.Equal(t, "5000000", snap.ContractBalance.String())
	assert.Equal(t, "9000000", snap.TotalDeposited.String())
	assert.Equal(t, "3", snap.UserCount.String())
	assert.False(t, snap.Paused)
	assert.True(t, snap.SponsorshipEnabled)

	balance, err := c.GetPaymasterBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "5000000", balance.String())
}

func TestClient_PaymasterNotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Paymaster = config.PaymasterConfig{}
	c, _ := newTestClient(t, cfg)
	ctx := context.Background()

	_, err := c.GetPaymasterSnapshot(ctx)
	assert.ErrorIs(t, err, ErrPaymasterNotConfigured)
	_, err = c.SponsorGas(ctx, alice, big.NewInt(1))
	assert.ErrorIs(t, err, ErrPaymasterNotConfigured)
	_, err = c.DepositToPaymaster(ctx, big.NewInt(1))
	assert.ErrorIs(t, err, ErrPaymasterNotConfigured)
	_, err = c.RegisterUser(ctx)
	assert.ErrorIs(t, err, ErrPaymasterNotConfigured)
	assert.Equal(t, common.Address{}, c.PaymasterAddress())
}

func TestClient_BadPrivateKey(t *testing.T) {
	cfg := testConfig()
	cfg.Ethereum.RelayerPrivateKey = "zz"
	_, err := NewClientWithBackend(newFakeBackend(t), cfg, zap.NewNop())
	assert.Error(t, err)
}
