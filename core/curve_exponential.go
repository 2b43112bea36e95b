package core

import "github.com/holiman/uint256"

// exponentialValidateDelta requires delta to encode a ratio strictly above
// 1.0 (WAD-scaled): a ratio of exactly WAD would never move the price.
func exponentialValidateDelta(delta *uint256.Int) bool {
	return delta.Cmp(WAD) > 0
}

// exponentialValidateSpotPrice requires the spot price to sit at or above
// MinPrice; prices below this floor lose too much precision under repeated
// multiplicative steps.
func exponentialValidateSpotPrice(spotPrice *uint256.Int) bool {
	return spotPrice.Cmp(MinPrice) >= 0
}

// exponentialGetBuyInfo prices a buy of numItems by raising delta (a
// WAD-scaled ratio > 1) to the n-th power via fpow and applying it as a
// compounding multiplier, then integrating the resulting geometric series in
// closed form for the input value.
//
// This corrects the source's buy path, which approximated d^n as d*n/WAD
// (linear in n) and duplicated input_value into protocol_fee instead of
// computing an independent fee.
func exponentialGetBuyInfo(spotPrice, delta *uint256.Int, numItems uint64, feeMultiplier, protocolFeeMultiplier *uint256.Int) BuyQuote {
	if numItems == 0 {
		return BuyQuote{Status: StatusInvalidNumItem}
	}

	dPowN := fpow(delta, numItems, WAD)

	newSpot := div(mul(spotPrice, dPowN), WAD)
	if !fits128(newSpot) {
		return BuyQuote{Status: StatusSpotPriceOverflow}
	}

	deltaMinusWad := sub(delta, WAD)
	numerator := mul(mul(spotPrice, delta), sub(dPowN, WAD))
	input := div(div(numerator, deltaMinusWad), WAD)

	protocolFee := mulWad(input, protocolFeeMultiplier)
	input = add(input, mulWad(input, feeMultiplier))
	input = add(input, protocolFee)

	if !fits128(input) {
		return BuyQuote{Status: StatusSpotPriceOverflow}
	}

	return BuyQuote{
		Status:       StatusOk,
		NewSpotPrice: newSpot,
		NewDelta:     new(uint256.Int).Set(delta),
		InputValue:   input,
		ProtocolFee:  protocolFee,
	}
}

// exponentialGetSellInfo prices a sell of numItems using the inverse ratio
// (WAD^2/delta) raised to the n-th power via fpow, flooring the resulting
// spot price at MinPrice rather than letting it decay toward zero.
func exponentialGetSellInfo(spotPrice, delta *uint256.Int, numItems uint64, feeMultiplier, protocolFeeMultiplier *uint256.Int) SellQuote {
	if numItems == 0 {
		return SellQuote{Status: StatusInvalidNumItem}
	}

	invDelta := div(mul(WAD, WAD), delta)
	invDPowN := fpow(invDelta, numItems, WAD)

	newSpot := div(mul(spotPrice, invDPowN), WAD)
	if newSpot.Cmp(MinPrice) < 0 {
		newSpot = new(uint256.Int).Set(MinPrice)
	}

	wadMinusInvD := sub(WAD, invDelta)
	numerator := mul(mul(spotPrice, sub(WAD, invDPowN)), WAD)
	output := div(div(numerator, wadMinusInvD), WAD)

	protocolFee := mulWad(output, protocolFeeMultiplier)
	output = sub(output, mulWad(output, feeMultiplier))
	output = sub(output, protocolFee)

	return SellQuote{
		Status:       StatusOk,
		NewSpotPrice: newSpot,
		NewDelta:     new(uint256.Int).Set(delta),
		NumItems:     numItems,
		OutputValue:  output,
		ProtocolFee:  protocolFee,
	}
}
