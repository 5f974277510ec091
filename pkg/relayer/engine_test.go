package relayer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/castpay-relayer/pkg/config"
	"github.com/chainsafe/castpay-relayer/pkg/ethereum"
	"github.com/chainsafe/castpay-relayer/pkg/nonce"
	"github.com/chainsafe/castpay-relayer/pkg/transfer"
	"github.com/chainsafe/castpay-relayer/pkg/transfer/store"
)

func testConfig(workers, queueSize int) *config.Config {
	return &config.Config{
		Token:     config.TokenConfig{Decimals: transfer.USDCDecimals},
		Paymaster: config.PaymasterConfig{Enabled: true},
		Relayer: config.RelayerConfig{
			Workers:               workers,
			QueueSize:             queueSize,
			Retention:             24 * time.Hour,
			GasLimitMultiplierPct: 120,
		},
	}
}

type engineFixture struct {
	engine *Engine
	store  *store.Memory
	nonces *nonce.Tracker
}

func startEngine(t *testing.T, cfg *config.Config, chain *MockChain) *engineFixture {
	t.Helper()
	st := store.NewMemory()
	tracker := nonce.NewTracker()
	e := NewEngine(cfg, chain, st, tracker, zap.NewNop())
	require.NoError(t, e.Start(context.Background()))
	t.Cleanup(e.Stop)
	return &engineFixture{engine: e, store: st, nonces: tracker}
}

func request(t *testing.T, s *signer, amount string, n uint64) *SubmitRequest {
	t.Helper()
	base, err := transfer.ParseUnits(amount, transfer.USDCDecimals)
	require.NoError(t, err)
	return &SubmitRequest{
		Sender:    s.address,
		Recipient: recipientAddr,
		Amount:    amount,
		Nonce:     n,
		Signature: s.sign(t, recipientAddr, base.String(), n),
	}
}

func (f *engineFixture) waitFor(t *testing.T, id string, status transfer.Status) *transfer.Record {
	t.Helper()
	var rec *transfer.Record
	require.Eventually(t, func() bool {
		got, err := f.store.Get(id)
		if err != nil {
			return false
		}
		rec = got
		return got.Status == status
	}, 5*time.Second, 10*time.Millisecond)
	return rec
}

func TestEngine_SubmitRunsToSuccess(t *testing.T) {
	f := startEngine(t, testConfig(2, 8), funded(100_000_000, 100_000_000))
	s := newSigner(t)

	ack, err := f.engine.Submit(context.Background(), request(t, s, "10.00", 0))
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusSubmitted, ack.Status)
	assert.NotEmpty(t, ack.ID)

	rec := f.waitFor(t, ack.ID, transfer.StatusSuccess)
	assert.NotEmpty(t, rec.ChainTxHash)
	assert.Equal(t, "10.000000", rec.Amount)
	assert.Equal(t, "10000000", rec.AmountBaseUnits)
	assert.Equal(t, uint64(1), f.engine.Nonce(strings.ToLower(s.address)))
}

func TestEngine_ValidationFailureIsAsync(t *testing.T) {
	f := startEngine(t, testConfig(1, 8), funded(100_000_000, 50_000_000))
	s := newSigner(t)

	ack, err := f.engine.Submit(context.Background(), request(t, s, "75", 0))
	require.NoError(t, err, "validator failures are not reported at intake")

	rec := f.waitFor(t, ack.ID, transfer.StatusFailed)
	assert.Equal(t, "InsufficientAllowance", rec.Detail[transfer.DetailErrorKind])
	assert.Equal(t, uint64(0), f.engine.Nonce(s.address))
}

func TestEngine_RejectsMalformedPayloads(t *testing.T) {
	f := startEngine(t, testConfig(1, 8), &MockChain{})
	s := newSigner(t)

	tests := []struct {
		name    string
		mutate  func(r *SubmitRequest)
		wantErr error
	}{
		{"missing sender", func(r *SubmitRequest) { r.Sender = "" }, ErrInvalidIntent},
		{"missing signature", func(r *SubmitRequest) { r.Signature = "" }, ErrInvalidIntent},
		{"non-numeric amount", func(r *SubmitRequest) { r.Amount = "ten" }, ErrInvalidAmount},
		{"too many decimals", func(r *SubmitRequest) { r.Amount = "1.0000001" }, ErrInvalidAmount},
		{"exponent notation", func(r *SubmitRequest) { r.Amount = "1e7" }, ErrInvalidAmount},
		{"huge exponent", func(r *SubmitRequest) { r.Amount = "1e10000000" }, ErrInvalidAmount},
		{"above uint256", func(r *SubmitRequest) { r.Amount = strings.Repeat("9", 80) }, ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request(t, s, "1", 0)
			tt.mutate(req)
			_, err := f.engine.Submit(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, f.store.Counts())
}

func TestEngine_RejectsReplayedNonce(t *testing.T) {
	release := make(chan struct{})
	chain := funded(100_000_000, 100_000_000)
	chain.WaitForReceiptFunc = func(_ context.Context, txHash common.Hash) (*ethereum.Receipt, error) {
		<-release
		return &ethereum.Receipt{TxHash: txHash, Status: 1, BlockNumber: 1}, nil
	}
	f := startEngine(t, testConfig(2, 8), chain)
	s := newSigner(t)

	ack, err := f.engine.Submit(context.Background(), request(t, s, "1", 0))
	require.NoError(t, err)

	_, err = f.engine.Submit(context.Background(), request(t, s, "1", 0))
	assert.ErrorIs(t, err, nonce.ErrNonceInFlight)

	close(release)
	f.waitFor(t, ack.ID, transfer.StatusSuccess)

	_, err = f.engine.Submit(context.Background(), request(t, s, "1", 0))
	assert.ErrorIs(t, err, nonce.ErrNonceUsed)

	_, err = f.engine.Submit(context.Background(), request(t, s, "1", 1))
	assert.NoError(t, err)
}

func TestEngine_QueueFullRollsBack(t *testing.T) {
	release := make(chan struct{})
	chain := funded(100_000_000, 100_000_000)
	chain.WaitForReceiptFunc = func(_ context.Context, txHash common.Hash) (*ethereum.Receipt, error) {
		<-release
		return &ethereum.Receipt{TxHash: txHash, Status: 1, BlockNumber: 1}, nil
	}
	f := startEngine(t, testConfig(1, 1), chain)
	defer close(release)

	first, err := f.engine.Submit(context.Background(), request(t, newSigner(t), "1", 0))
	require.NoError(t, err)
	f.waitFor(t, first.ID, transfer.StatusSubmitted)

	_, err = f.engine.Submit(context.Background(), request(t, newSigner(t), "1", 0))
	require.NoError(t, err, "one task fits in the queue")

	rejected := newSigner(t)
	_, err = f.engine.Submit(context.Background(), request(t, rejected, "1", 0))
	require.ErrorIs(t, err, ErrQueueFull)

	counts := f.store.Counts()
	assert.Equal(t, 1, counts[transfer.StatusPending])
	assert.Equal(t, 1, counts[transfer.StatusSubmitted])
	assert.NoError(t, f.nonces.Reserve(rejected.address, 0), "rejected nonce is released")
}

func TestEngine_StopDrainsAndRejects(t *testing.T) {
	st := store.NewMemory()
	e := NewEngine(testConfig(2, 8), funded(100_000_000, 100_000_000), st, nonce.NewTracker(), zap.NewNop())
	require.NoError(t, e.Start(context.Background()))
	assert.True(t, e.IsReady())

	var ids []string
	for i := 0; i < 5; i++ {
		ack, err := e.Submit(context.Background(), request(t, newSigner(t), "1", 0))
		require.NoError(t, err)
		ids = append(ids, ack.ID)
	}

	e.Stop()
	assert.False(t, e.IsReady())

	for _, id := range ids {
		rec, err := st.Get(id)
		require.NoError(t, err)
		assert.Equal(t, transfer.StatusSuccess, rec.Status)
	}

	_, err := e.Submit(context.Background(), request(t, newSigner(t), "1", 0))
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestEngine_DifferentSendersRunConcurrently(t *testing.T) {
	f := startEngine(t, testConfig(4, 32), funded(100_000_000, 100_000_000))

	var ids []string
	for i := 0; i < 10; i++ {
		ack, err := f.engine.Submit(context.Background(), request(t, newSigner(t), "2.5", 0))
		require.NoError(t, err)
		ids = append(ids, ack.ID)
	}
	for _, id := range ids {
		f.waitFor(t, id, transfer.StatusSuccess)
	}
}

func TestEngine_Sweep(t *testing.T) {
	f := startEngine(t, testConfig(1, 8), funded(100_000_000, 100_000_000))
	ack, err := f.engine.Submit(context.Background(), request(t, newSigner(t), "1", 0))
	require.NoError(t, err)
	f.waitFor(t, ack.ID, transfer.StatusSuccess)

	assert.Equal(t, 0, f.engine.Sweep())

	f.engine.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	assert.Equal(t, 1, f.engine.Sweep())

	_, err = f.store.Get(ack.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
