package relayer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/castpay-relayer/internal/metrics"
)

// GasSponsor submits a sponsorship record to the paymaster
type GasSponsor interface {
	SponsorGas(ctx context.Context, user common.Address, gasCost *big.Int) (common.Hash, error)
}

// Sponsorship outcomes
const (
	SponsorshipSkipped   = "skipped"
	SponsorshipSponsored = "sponsored"
	SponsorshipFailed    = "failed"
)

// SponsorshipOutcome is stored in the record detail under "sponsorship"
type SponsorshipOutcome struct {
	Status  string `json:"status"`
	GasCost string `json:"gasCost,omitempty"`
	TxHash  string `json:"txHash,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Sponsor makes a best-effort paymaster call for each transfer. Its outcome is
// informational and never fails the transfer.
type Sponsor struct {
	paymaster GasSponsor
	enabled   bool
	logger    *zap.Logger
}

// NewSponsor creates a sponsor. A nil paymaster behaves as disabled.
func NewSponsor(paymaster GasSponsor, enabled bool, logger *zap.Logger) *Sponsor {
	return &Sponsor{
		paymaster: paymaster,
		enabled:   enabled && paymaster != nil,
		logger:    logger,
	}
}

// TrySponsor asks the paymaster to sponsor gasCost wei on behalf of user
func (s *Sponsor) TrySponsor(ctx context.Context, user common.Address, gasCost *big.Int) SponsorshipOutcome {
	if !s.enabled {
		metrics.SponsorshipsTotal.WithLabelValues(SponsorshipSkipped).Inc()
		return SponsorshipOutcome{Status: SponsorshipSkipped}
	}

	outcome := SponsorshipOutcome{GasCost: gasCost.String()}

	txHash, err := s.paymaster.SponsorGas(ctx, user, gasCost)
	if err != nil {
		s.logger.Warn("Gas sponsorship failed, continuing without it",
			zap.String("user", user.Hex()),
			zap.String("gas_cost", outcome.GasCost),
			zap.Error(err))
		metrics.SponsorshipsTotal.WithLabelValues(SponsorshipFailed).Inc()
		outcome.Status = SponsorshipFailed
		outcome.Error = err.Error()
		return outcome
	}

	s.logger.Info("Gas sponsorship submitted",
		zap.String("user", user.Hex()),
		zap.String("gas_cost", outcome.GasCost),
		zap.String("tx_hash", txHash.Hex()))
	metrics.SponsorshipsTotal.WithLabelValues(SponsorshipSponsored).Inc()
	outcome.Status = SponsorshipSponsored
	outcome.TxHash = txHash.Hex()
	return outcome
}
