package core

import "github.com/holiman/uint256"

// linearValidateDelta always accepts any delta for the linear curve; the
// linear family has no upper bound on its step size.
func linearValidateDelta(delta *uint256.Int) bool {
	return true
}

// linearValidateSpotPrice always accepts any spot price for the linear curve.
func linearValidateSpotPrice(spotPrice *uint256.Int) bool {
	return true
}

// linearGetBuyInfo prices a buy of numItems at the current spot/delta as an
// arithmetic series: the first unit costs spot+delta, each subsequent unit
// costs delta more than the last.
func linearGetBuyInfo(spotPrice, delta *uint256.Int, numItems uint64, feeMultiplier, protocolFeeMultiplier *uint256.Int) BuyQuote {
	if numItems == 0 {
		return BuyQuote{Status: StatusInvalidNumItem}
	}

	n := u64(numItems)
	newSpot := add(spotPrice, mul(delta, n))
	if !fits128(newSpot) {
		return BuyQuote{Status: StatusSpotPriceOverflow}
	}

	buySpot := add(spotPrice, delta) // first unit's price
	nMinus1 := u64(numItems - 1)

	// input = n*buySpot + n*(n-1)*delta/2
	term1 := mul(n, buySpot)
	term2 := div(mul(mul(n, nMinus1), delta), u64(2))
	input := add(term1, term2)

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

// linearGetSellInfo prices a sell of numItems, clamping the count down (and
// flooring the new spot price at zero) if the requested count would drive
// the spot price negative.
func linearGetSellInfo(spotPrice, delta *uint256.Int, numItems uint64, feeMultiplier, protocolFeeMultiplier *uint256.Int) SellQuote {
	if numItems == 0 {
		return SellQuote{Status: StatusInvalidNumItem}
	}

	totalDecrease := mul(delta, u64(numItems))
	n := numItems
	var newSpot *uint256.Int
	if spotPrice.Cmp(totalDecrease) < 0 {
		quotient, _ := new(uint256.Int).DivMod(spotPrice, delta, new(uint256.Int))
		n = quotient.Uint64() + 1
		newSpot = new(uint256.Int)
	} else {
		newSpot = sub(spotPrice, totalDecrease)
	}

	nU := u64(n)
	nMinus1 := u64(n - 1)

	// output = n*spotPrice - n*(n-1)*delta/2
	term1 := mul(nU, spotPrice)
	term2 := div(mul(mul(nU, nMinus1), delta), u64(2))
	output := sub(term1, term2)

	protocolFee := mulWad(output, protocolFeeMultiplier)
	output = sub(output, mulWad(output, feeMultiplier))
	output = sub(output, protocolFee)

	return SellQuote{
		Status:       StatusOk,
		NewSpotPrice: newSpot,
		NewDelta:     new(uint256.Int).Set(delta),
		NumItems:     n,
		OutputValue:  output,
		ProtocolFee:  protocolFee,
	}
}
