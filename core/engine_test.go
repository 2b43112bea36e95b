package core

import "testing"

func TestEngineCreatePairAndViews(t *testing.T) {
	governance := addr(0x01)
	feeReceiver := addr(0x02)
	eng := New(governance, feeReceiver, nil, 10)

	curve, _ := NewCurve(LinearCurve)
	owner := addr(0x10)
	poolID, err := eng.CreatePair(owner, curve, TradePool, "collection", u64(100), u64(10), u64(0), nil, []string{"a", "b"}, 0, 1000)
	if err != nil {
		t.Fatalf("create pair: %v", err)
	}
	if eng.PoolCount() != 1 {
		t.Fatalf("pool count = %d, want 1", eng.PoolCount())
	}

	info, err := eng.GetPoolInfo(poolID)
	if err != nil {
		t.Fatalf("get pool info: %v", err)
	}
	if len(info.PoolTokenIDs) != 2 {
		t.Fatalf("held ids = %v, want 2", info.PoolTokenIDs)
	}

	meta := eng.GetMetadata()
	if meta.PoolsCount != 1 {
		t.Fatalf("metadata pools count = %d, want 1", meta.PoolsCount)
	}
	if meta.Governance != governance {
		t.Fatalf("metadata governance mismatch")
	}

	lpBalance, err := eng.LPBalanceOf(poolID, owner)
	if err != nil {
		t.Fatalf("lp balance of: %v", err)
	}
	if lpBalance == 0 {
		t.Fatalf("owner should have received lp shares on first deposit")
	}
}

func TestEngineRemoveLiquidityAccumulatesProtocolFee(t *testing.T) {
	eng := New(addr(0x01), addr(0x02), nil, 0)
	curve, _ := NewCurve(LinearCurve)
	owner := addr(0x10)
	poolID, err := eng.CreatePair(owner, curve, TradePool, "collection", u64(100), u64(10), u64(0), nil, []string{"a", "b", "c"}, 0, 300)
	if err != nil {
		t.Fatalf("create pair: %v", err)
	}

	before := eng.ProtocolFeeCredit
	lp, _ := eng.LPBalanceOf(poolID, owner)
	result, err := eng.RemoveLiquidity(owner, poolID, lp, 1)
	if err != nil {
		t.Fatalf("remove liquidity: %v", err)
	}
	if eng.ProtocolFeeCredit != before+result.ProtocolFee {
		t.Fatalf("protocol fee credit = %d, want %d + %d", eng.ProtocolFeeCredit, before, result.ProtocolFee)
	}
}

func TestEngineRemoveLiquidityRequiresOneYocto(t *testing.T) {
	eng := New(addr(0x01), addr(0x02), nil, 0)
	curve, _ := NewCurve(LinearCurve)
	owner := addr(0x10)
	poolID, err := eng.CreatePair(owner, curve, TradePool, "collection", u64(100), u64(10), u64(0), nil, []string{"a", "b", "c"}, 0, 300)
	if err != nil {
		t.Fatalf("create pair: %v", err)
	}
	lp, _ := eng.LPBalanceOf(poolID, owner)

	if _, err := eng.RemoveLiquidity(owner, poolID, lp, 0); err != ErrRequiresOneYocto {
		t.Fatalf("remove liquidity with 0 attached: got %v, want ErrRequiresOneYocto", err)
	}
	if _, err := eng.RemoveLiquidity(owner, poolID, lp, 2); err != ErrRequiresOneYocto {
		t.Fatalf("remove liquidity with 2 attached: got %v, want ErrRequiresOneYocto", err)
	}
}

func TestEngineOnlyGovernanceSetsFeeReceiver(t *testing.T) {
	governance := addr(0x01)
	eng := New(governance, addr(0x02), nil, 0)
	if err := eng.SetFeeReceiver(addr(0x99), addr(0x03)); err != ErrOnlyGovernance {
		t.Fatalf("err = %v, want ErrOnlyGovernance", err)
	}
	if err := eng.SetFeeReceiver(governance, addr(0x03)); err != nil {
		t.Fatalf("set fee receiver: %v", err)
	}
	if eng.FeeReceiver != addr(0x03) {
		t.Fatalf("fee receiver not updated")
	}
}
