package core

import "github.com/holiman/uint256"

// CurveStatus is the closed result tag returned by every curve kernel call.
type CurveStatus uint8

const (
	// StatusOk indicates the quote succeeded and can be applied to pair state.
	StatusOk CurveStatus = iota
	// StatusInvalidNumItem indicates n == 0.
	StatusInvalidNumItem
	// StatusSpotPriceOverflow indicates the resulting spot price does not
	// fit the engine's 128-bit price representation.
	StatusSpotPriceOverflow
)

// BondingCurve is the closed tagged variant selecting a pricing family.
// Dispatch is a static switch, never virtual dispatch, so every quote is
// auditable and its cost is deterministic.
type BondingCurve uint8

const (
	LinearCurve BondingCurve = iota
	ExponentialCurve
)

// BuyQuote is the shared result shape for a buy-side curve evaluation.
type BuyQuote struct {
	Status       CurveStatus
	NewSpotPrice *uint256.Int
	NewDelta     *uint256.Int
	InputValue   *uint256.Int
	ProtocolFee  *uint256.Int
}

// SellQuote is the shared result shape for a sell-side curve evaluation.
type SellQuote struct {
	Status       CurveStatus
	NewSpotPrice *uint256.Int
	NewDelta     *uint256.Int
	NumItems     uint64 // possibly clamped down from the requested count
	OutputValue  *uint256.Int
	ProtocolFee  *uint256.Int
}

// Curve wraps a BondingCurve tag and dispatches to the matching kernel.
type Curve struct {
	Type BondingCurve
}

// NewCurve constructs a Curve for the given family, rejecting unknown tags
// the way the source panics on an unrecognised wire byte — here surfaced as
// an error instead of a panic, since this engine treats every invariant
// violation as an abortive (returned) error, not a crash.
func NewCurve(t BondingCurve) (Curve, error) {
	switch t {
	case LinearCurve, ExponentialCurve:
		return Curve{Type: t}, nil
	default:
		return Curve{}, ErrUnknownCurve
	}
}

// ValidateDelta reports whether delta is acceptable for this curve family.
func (c Curve) ValidateDelta(delta *uint256.Int) bool {
	switch c.Type {
	case LinearCurve:
		return linearValidateDelta(delta)
	case ExponentialCurve:
		return exponentialValidateDelta(delta)
	default:
		return false
	}
}

// ValidateSpotPrice reports whether spotPrice is acceptable for this curve family.
func (c Curve) ValidateSpotPrice(spotPrice *uint256.Int) bool {
	switch c.Type {
	case LinearCurve:
		return linearValidateSpotPrice(spotPrice)
	case ExponentialCurve:
		return exponentialValidateSpotPrice(spotPrice)
	default:
		return false
	}
}

// GetBuyInfo quotes a buy of numItems at the curve's current state.
func (c Curve) GetBuyInfo(spotPrice, delta *uint256.Int, numItems uint64, feeMultiplier, protocolFeeMultiplier *uint256.Int) BuyQuote {
	switch c.Type {
	case LinearCurve:
		return linearGetBuyInfo(spotPrice, delta, numItems, feeMultiplier, protocolFeeMultiplier)
	case ExponentialCurve:
		return exponentialGetBuyInfo(spotPrice, delta, numItems, feeMultiplier, protocolFeeMultiplier)
	default:
		return BuyQuote{Status: StatusInvalidNumItem}
	}
}

// GetSellInfo quotes a sell of numItems at the curve's current state.
func (c Curve) GetSellInfo(spotPrice, delta *uint256.Int, numItems uint64, feeMultiplier, protocolFeeMultiplier *uint256.Int) SellQuote {
	switch c.Type {
	case LinearCurve:
		return linearGetSellInfo(spotPrice, delta, numItems, feeMultiplier, protocolFeeMultiplier)
	case ExponentialCurve:
		return exponentialGetSellInfo(spotPrice, delta, numItems, feeMultiplier, protocolFeeMultiplier)
	default:
		return SellQuote{Status: StatusInvalidNumItem}
	}
}
