package core

import "testing"

func TestRouterTwoHop(t *testing.T) {
	eng := New(addr(0x01), addr(0x02), nil, 0)

	curve, _ := NewCurve(LinearCurve)
	owner := addr(0x10)
	poolA, err := eng.CreatePair(owner, curve, TradePool, "collection", u64(100), u64(10), u64(0), nil, nil, 0, 0)
	if err != nil {
		t.Fatalf("create pool A: %v", err)
	}
	poolB, err := eng.CreatePair(owner, curve, TradePool, "collection", u64(100), u64(10), u64(0), nil, nil, 0, 0)
	if err != nil {
		t.Fatalf("create pool B: %v", err)
	}

	pairA, _ := eng.Pool(poolA)
	pairB, _ := eng.Pool(poolB)
	lp := addr(0x20)
	if _, err := pairA.DepositAndMintLP(lp, lp, []string{"a1"}, 1000); err != nil {
		t.Fatalf("seed pool A: %v", err)
	}
	if _, err := pairB.DepositAndMintLP(lp, lp, []string{}, 1000); err != nil {
		t.Fatalf("seed pool B: %v", err)
	}

	caller := addr(0x30)
	eng.Deposits.Register(caller)

	actions := []Action{
		{PoolID: poolA, Direction: CoinToNFT, NumOutNFTs: 1},
		{PoolID: poolB, Direction: NFTToCoin, MinOut: 0},
	}
	host := NewMemoryHost(caller, 0, 0, 1)
	effects, err := eng.Swap(caller, actions, 1000, host)
	if err != nil {
		t.Fatalf("swap: %v", err)
	}

	var sawCoinRefund bool
	for _, eff := range effects {
		if eff.Kind == NFTEffect {
			t.Fatalf("unexpected nft effect, all nfts should have been consumed by hop 2: %+v", eff)
		}
		if eff.Kind == CoinEffect {
			sawCoinRefund = true
		}
	}
	if !sawCoinRefund {
		t.Fatalf("expected a coin refund effect")
	}
}

func TestRouterAssetRecipientStorageExceedsPrepaid(t *testing.T) {
	eng := New(addr(0x01), addr(0x02), nil, 1000) // 1000 coin per byte of growth
	curve, _ := NewCurve(LinearCurve)
	owner := addr(0x10)
	recipient := addr(0x40)
	poolID, err := eng.CreatePair(owner, curve, TokenPool, "collection", u64(100), u64(10), u64(0), &recipient, nil, 0, 10000)
	if err != nil {
		t.Fatalf("create pool: %v", err)
	}

	seller := addr(0x30)
	eng.Deposits.Register(seller)
	if err := eng.Deposits.DepositNFT(seller, "collection", "x1", 0, 0); err != nil {
		t.Fatalf("stage seller nft: %v", err)
	}
	eng.Deposits.Register(recipient) // recipient has no prepaid coin to absorb storage growth

	host := NewMemoryHost(seller, 0, 0, 1)
	actions := []Action{{PoolID: poolID, Direction: NFTToCoin, InputTokenIDs: []string{"x1"}}}
	if _, err := eng.Swap(seller, actions, 0, host); err != ErrStorageExceedsPrepaid {
		t.Fatalf("err = %v, want ErrStorageExceedsPrepaid", err)
	}
}

func TestRouterFirstActionRequiresInputIDs(t *testing.T) {
	eng := New(addr(0x01), addr(0x02), nil, 0)
	curve, _ := NewCurve(LinearCurve)
	owner := addr(0x10)
	poolA, err := eng.CreatePair(owner, curve, TradePool, "collection", u64(100), u64(10), u64(0), nil, nil, 0, 0)
	if err != nil {
		t.Fatalf("create pool: %v", err)
	}
	host := NewMemoryHost(addr(0x30), 0, 0, 1)
	_, err = eng.Swap(addr(0x30), []Action{{PoolID: poolA, Direction: NFTToCoin}}, 0, host)
	if err != ErrNumItemsZero {
		t.Fatalf("err = %v, want ErrNumItemsZero", err)
	}
}
