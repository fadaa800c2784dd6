package decimals

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/uint128"
	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of decimal places between ether and wei.
const EtherDecimals = 18

// ParseUnits converts a human-readable decimal string (e.g. "0.0000092") into an
// integer amount of base units with the given number of decimals.
// Amounts with more fractional digits than decimals, negative amounts and amounts
// above the uint128 range are rejected.
func ParseUnits(s string, decimals int32) (uint128.Uint128, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return uint128.Zero, errors.Wrapf(errs.InvalidArgument, "invalid decimal amount %q", s)
	}
	if value.IsNegative() {
		return uint128.Zero, errors.Wrapf(errs.InvalidArgument, "negative amount %q", s)
	}

	scaled := value.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return uint128.Zero, errors.Wrapf(errs.InvalidArgument, "amount %q has more than %d decimal places", s, decimals)
	}

	amount, err := uint128.FromString(scaled.Truncate(0).String())
	if err != nil {
		return uint128.Zero, errors.Wrapf(errs.OverflowUint128, "amount %q is out of range", s)
	}
	return amount, nil
}

// FormatUnits converts an integer amount of base units into its decimal string representation.
func FormatUnits(amount uint128.Uint128, decimals int32) string {
	return decimal.NewFromBigInt(amount.Big(), -decimals).String()
}

// ParseEther converts an ether-denominated decimal string into wei.
func ParseEther(s string) (uint128.Uint128, error) {
	return ParseUnits(s, EtherDecimals)
}

// MustParseEther is like ParseEther but panics on error. Use for constants only.
func MustParseEther(s string) uint128.Uint128 {
	amount, err := ParseEther(s)
	if err != nil {
		panic(err)
	}
	return amount
}

// FormatEther converts wei into an ether-denominated decimal string.
func FormatEther(amount uint128.Uint128) string {
	return FormatUnits(amount, EtherDecimals)
}
