package core

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestFpow(t *testing.T) {
	base := uint256.NewInt(2)
	if got := fpow(uint256.NewInt(0), 0, base); got.Cmp(base) != 0 {
		t.Fatalf("fpow(0,0,2) = %v, want %v", got, base)
	}
	if got := fpow(uint256.NewInt(0), 3, base); !got.IsZero() {
		t.Fatalf("fpow(0,3,2) = %v, want 0", got)
	}
	if got := fpow(uint256.NewInt(4), 8, base); got.Uint64() != 512 {
		t.Fatalf("fpow(4,8,2) = %v, want 512", got)
	}
}

func TestLinearBuyQuote(t *testing.T) {
	spot := u64(100)
	delta := u64(10)
	fee := u64(0)
	pfm := mustFromDecimal("100000000000000000") // 0.1 WAD = 10%

	q := linearGetBuyInfo(spot, delta, 1, fee, pfm)
	if q.Status != StatusOk {
		t.Fatalf("status = %v, want Ok", q.Status)
	}
	if q.NewSpotPrice.Uint64() != 110 {
		t.Fatalf("new spot = %v, want 110", q.NewSpotPrice)
	}
	if q.InputValue.Uint64() != 121 {
		t.Fatalf("input value = %v, want 121 (110 + 11 protocol fee)", q.InputValue)
	}
	if q.ProtocolFee.Uint64() != 11 {
		t.Fatalf("protocol fee = %v, want 11", q.ProtocolFee)
	}
}

func TestLinearBuySellRoundTrip(t *testing.T) {
	spot := u64(100)
	delta := u64(10)
	zero := u64(0)

	buy := linearGetBuyInfo(spot, delta, 3, zero, zero)
	if buy.Status != StatusOk {
		t.Fatalf("buy status = %v", buy.Status)
	}
	sell := linearGetSellInfo(buy.NewSpotPrice, buy.NewDelta, 3, zero, zero)
	if sell.Status != StatusOk {
		t.Fatalf("sell status = %v", sell.Status)
	}
	if sell.NewSpotPrice.Uint64() != spot.Uint64() {
		t.Fatalf("round-trip spot = %v, want %v", sell.NewSpotPrice, spot)
	}
}

func TestLinearSellClamps(t *testing.T) {
	spot := u64(5)
	delta := u64(10)
	zero := u64(0)

	q := linearGetSellInfo(spot, delta, 3, zero, zero)
	if q.NewSpotPrice.Uint64() != 0 {
		t.Fatalf("new spot = %v, want 0", q.NewSpotPrice)
	}
	if q.NumItems != 1 {
		t.Fatalf("clamped n = %d, want 1 (5/10 + 1)", q.NumItems)
	}
}

func TestExponentialBuyOverflow(t *testing.T) {
	spot := MinPrice
	delta := mul(u64(2), WAD)
	zero := u64(0)

	q := exponentialGetBuyInfo(spot, delta, 200, zero, zero)
	if q.Status != StatusSpotPriceOverflow {
		t.Fatalf("status = %v, want overflow", q.Status)
	}
}

func TestExponentialSellFloor(t *testing.T) {
	spot := mul(u64(2), MinPrice)
	delta := mul(u64(2), WAD)
	zero := u64(0)

	q := exponentialGetSellInfo(spot, delta, 50, zero, zero)
	if q.Status != StatusOk {
		t.Fatalf("status = %v", q.Status)
	}
	if q.NewSpotPrice.Cmp(MinPrice) < 0 {
		t.Fatalf("new spot %v fell below floor %v", q.NewSpotPrice, MinPrice)
	}
}
