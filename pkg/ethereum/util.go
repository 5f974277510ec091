package ethereum

import (
	"math/big"
)

// DefaultGasLimitMultiplierPct pads gas estimates by 20%
const DefaultGasLimitMultiplierPct = 120

// GasLimitWithBuffer scales an estimate by pct percent using integer math.
// A pct below 100 is treated as 100.
func GasLimitWithBuffer(estimate, pct uint64) uint64 {
	if pct < 100 {
		pct = 100
	}
	return estimate * pct / 100
}

// GasCost returns gasLimit * gasPrice in wei
func GasCost(gasLimit uint64, gasPrice *big.Int) *big.Int {
	if gasPrice == nil {
		return new(big.Int)
	}
	return new(big.Int).Mul(new(big.Int).SetUint64(gasLimit), gasPrice)
}

// CapGasPrice returns the lower of suggested and limit. A nil limit means no cap.
func CapGasPrice(suggested, limit *big.Int) (price *big.Int, capped bool) {
	if limit == nil || suggested.Cmp(limit) <= 0 {
		return suggested, false
	}
	return new(big.Int).Set(limit), true
}
