package transfer

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
)

// USDCDecimals is the fixed-point precision of the relayed stablecoin
const USDCDecimals int32 = 6

// maxIntegerDigits is the digit count of 2^256-1
const maxIntegerDigits = 78

var (
	ErrTooManyDecimals = errors.New("amount has more fractional digits than the token supports")
	ErrAmountTooLarge  = errors.New("amount exceeds uint256")

	plainDecimal = regexp.MustCompile(`^-?([0-9]+)(?:\.([0-9]+))?$`)
)

// ParseUnits converts a human decimal string (e.g. "10.5") into base units.
// Only plain decimal notation is accepted and the magnitude must fit in a
// uint256. Non-positive values are returned as-is; rejecting them is the
// validator's job.
func ParseUnits(amount string, decimals int32) (*big.Int, error) {
	m := plainDecimal.FindStringSubmatch(amount)
	if m == nil {
		return nil, fmt.Errorf("invalid decimal amount %q", amount)
	}
	if len(m[2]) > int(decimals) {
		return nil, ErrTooManyDecimals
	}
	if len(m[1]) > maxIntegerDigits {
		return nil, ErrAmountTooLarge
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal amount %q: %w", amount, err)
	}
	units := d.Shift(decimals).BigInt()
	if new(big.Int).Abs(units).Cmp(math.MaxBig256) > 0 {
		return nil, ErrAmountTooLarge
	}
	return units, nil
}

// FormatUnits renders base units as a decimal string with the given precision.
func FormatUnits(amount *big.Int, decimals int32) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -decimals).StringFixed(decimals)
}
