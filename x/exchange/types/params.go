package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// DefaultBaseDenom is the chain's native asset, the mandatory side of
	// every pool.
	DefaultBaseDenom = "uarc"

	// DefaultFeeNumerator and DefaultFeeDenominator encode the 1% swap fee
	// charged on the input side of every trade.
	DefaultFeeNumerator   = uint64(100)
	DefaultFeeDenominator = uint64(10000)
)

// Params holds the governed parameters of the exchange module.
type Params struct {
	BaseDenom      string `json:"base_denom"`
	FeeNumerator   uint64 `json:"fee_numerator"`
	FeeDenominator uint64 `json:"fee_denominator"`
}

// NewParams creates a Params instance.
func NewParams(baseDenom string, feeNumerator, feeDenominator uint64) Params {
	return Params{
		BaseDenom:      baseDenom,
		FeeNumerator:   feeNumerator,
		FeeDenominator: feeDenominator,
	}
}

// DefaultParams returns default parameters for the exchange module.
func DefaultParams() Params {
	return NewParams(DefaultBaseDenom, DefaultFeeNumerator, DefaultFeeDenominator)
}

// Validate performs basic validation of the parameter set.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.BaseDenom); err != nil {
		return fmt.Errorf("invalid base denom: %w", err)
	}
	if p.FeeDenominator == 0 {
		return fmt.Errorf("fee denominator cannot be zero")
	}
	if p.FeeNumerator >= p.FeeDenominator {
		return fmt.Errorf("fee numerator %d must be less than denominator %d", p.FeeNumerator, p.FeeDenominator)
	}
	return nil
}
