package core

import (
	"sync"

	"github.com/holiman/uint256"
)

// DefaultProtocolFeeMultiplier is 10%, WAD-scaled — the default applied when
// New is called without an explicit override.
var DefaultProtocolFeeMultiplier = mustFromDecimal("100000000000000000")

// Engine is the top-level aggregate: the protocol ledger of §4.5 plus the
// account-deposit surface of §4.6. There is no implicit singleton (per
// spec.md §9's explicit design note) — callers construct one with New and
// pass it wherever it is needed, the way a library, not a global, would be
// used.
type Engine struct {
	mu sync.Mutex

	Governance        Address
	FeeReceiver       Address
	ProtocolFeeMult   *uint256.Int
	ProtocolFeeCredit uint64

	pools          []*Pair
	createdByOwner map[Address][]uint64

	Deposits *AccountDeposits

	// Set once at construction by measureStorageUsage; each holds 1, not a
	// measured byte size.
	StoragePerAccountCreation uint64
	StoragePerNFTDeposit      uint64
	StoragePerPairCreation    uint64
}

// New constructs an Engine. pfm defaults to DefaultProtocolFeeMultiplier
// (10%) when nil.
func New(governance, feeReceiver Address, pfm *uint256.Int, byteCost uint64) *Engine {
	if pfm == nil {
		pfm = new(uint256.Int).Set(DefaultProtocolFeeMultiplier)
	}
	e := &Engine{
		Governance:      governance,
		FeeReceiver:     feeReceiver,
		ProtocolFeeMult: pfm,
		createdByOwner:  make(map[Address][]uint64),
		Deposits:        NewAccountDeposits(byteCost),
	}
	e.measureStorageUsage()
	return e
}

// measureStorageUsage runs one account registration and one NFT deposit for
// a probe account and builds one unregistered probe pool, then removes the
// probe account again. It sets each of the three per-entity storage
// counters to 1 (the pool counter only if the probe pool builds); no byte
// size is measured.
func (e *Engine) measureStorageUsage() {
	const probeAsset = "__probe_asset__"
	const probeToken = "__probe_token__"
	var probe Address
	probe[19] = 0xFF

	before := len(e.createdByOwner)
	e.Deposits.Register(probe)
	_ = e.Deposits.DepositNFT(probe, probeAsset, probeToken, 0, 0)
	e.StoragePerAccountCreation = 1
	e.StoragePerNFTDeposit = 1

	curve, _ := NewCurve(LinearCurve)
	recipient := probe
	probePair, err := NewPair(0, curve, NFTPool, probeAsset, u64(1), u64(1), u64(0), probe, &recipient, 0)
	if err == nil {
		_ = probePair
		e.StoragePerPairCreation = 1
	}

	_ = e.Deposits.WithdrawNFT(probe, probeAsset, probeToken)
	delete(e.Deposits.accounts, probe)
	_ = before
}

// SetFeeReceiver reassigns the protocol fee receiver. Governance only.
func (e *Engine) SetFeeReceiver(caller, newReceiver Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if caller != e.Governance {
		return ErrOnlyGovernance
	}
	e.FeeReceiver = newReceiver
	return nil
}

// CreatePair creates and registers a new pair, returning its pool id.
func (e *Engine) CreatePair(owner Address, curve Curve, poolType PoolType, nftAsset string, spotPrice, delta, fee *uint256.Int, assetRecipient *Address, initialIDs []string, releasedTime uint64, depositCoin uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	poolID := uint64(len(e.pools))
	pair, err := NewPair(poolID, curve, poolType, nftAsset, spotPrice, delta, fee, owner, assetRecipient, releasedTime)
	if err != nil {
		return 0, err
	}
	if _, err := pair.DepositAndMintLP(owner, owner, initialIDs, depositCoin); err != nil {
		return 0, err
	}

	e.pools = append(e.pools, pair)
	e.createdByOwner[owner] = append(e.createdByOwner[owner], poolID)
	e.Deposits.Register(owner)
	if assetRecipient != nil {
		e.Deposits.Register(*assetRecipient)
	}
	return poolID, nil
}

// Pool returns the pair registered under poolID.
func (e *Engine) Pool(poolID uint64) (*Pair, error) {
	if poolID >= uint64(len(e.pools)) {
		return nil, ErrInvalidPoolID
	}
	return e.pools[poolID], nil
}

// PoolCount returns the number of registered pools.
func (e *Engine) PoolCount() uint64 {
	return uint64(len(e.pools))
}

// CreatedPoolIDs returns the pool ids created by owner, in creation order.
func (e *Engine) CreatedPoolIDs(owner Address) []uint64 {
	return append([]uint64(nil), e.createdByOwner[owner]...)
}

// AddLiquidity deposits tokenIDs and the caller's attached coin into an
// existing pair and mints LP shares to the caller.
func (e *Engine) AddLiquidity(caller Address, poolID uint64, tokenIDs []string, coinAmount uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pair, err := e.Pool(poolID)
	if err != nil {
		return 0, err
	}
	return pair.DepositAndMintLP(caller, caller, tokenIDs, coinAmount)
}

// RemoveLiquidity burns lp shares from caller, crediting the protocol fee
// credit counter and returning the redeemed coin/NFT ids for the caller
// layer to dispatch as transfer effects. attachedValue must equal 1 (one
// yocto), the same anti-accident check lib.rs's remove_liquidity enforces
// via assert_one_yocto before mutating any LP state.
func (e *Engine) RemoveLiquidity(caller Address, poolID uint64, lp uint64, attachedValue uint64) (BurnLPResult, error) {
	if attachedValue != 1 {
		return BurnLPResult{}, ErrRequiresOneYocto
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	pair, err := e.Pool(poolID)
	if err != nil {
		return BurnLPResult{}, err
	}
	result, err := pair.BurnLP(caller, lp, e.ProtocolFeeMult)
	if err != nil {
		return BurnLPResult{}, err
	}
	e.ProtocolFeeCredit += result.ProtocolFee
	return result, nil
}

// WithdrawCoin withdraws coin from a non-Trade pool to its owner.
func (e *Engine) WithdrawCoin(caller Address, poolID uint64, amount uint64, now uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pair, err := e.Pool(poolID)
	if err != nil {
		return 0, err
	}
	return pair.WithdrawCoin(caller, amount, now)
}

// WithdrawNFTs withdraws NFTs from a non-Trade pool to its owner.
func (e *Engine) WithdrawNFTs(caller Address, poolID uint64, tokenIDs []string, now uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	pair, err := e.Pool(poolID)
	if err != nil {
		return err
	}
	return pair.WithdrawNFTs(caller, tokenIDs, now)
}

// WithdrawNFTsFromStaging withdraws tokenIDs from the caller's own staging
// area, requiring one unit of attached value per token as an anti-spam
// check, per lib.rs's withdraw_nfts_from_deposit.
func (e *Engine) WithdrawNFTsFromStaging(caller Address, asset string, tokenIDs []string, attachedValue uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if attachedValue < uint64(len(tokenIDs)) {
		return ErrNotEnoughCoinPayment
	}
	for _, id := range tokenIDs {
		if err := e.Deposits.WithdrawNFT(caller, asset, id); err != nil {
			return err
		}
	}
	return nil
}

// LPRegister idempotently registers caller for LP accounting on poolID.
func (e *Engine) LPRegister(poolID uint64, account Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	pair, err := e.Pool(poolID)
	if err != nil {
		return err
	}
	pair.internalRegisterAccountLP(account)
	return nil
}

// LPTransfer moves lp shares between two registered accounts on poolID.
func (e *Engine) LPTransfer(poolID uint64, from, to Address, amount uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	pair, err := e.Pool(poolID)
	if err != nil {
		return err
	}
	return pair.LPTransfer(from, to, amount)
}

// ChangeSpotPrice updates poolID's spot price. Owner only.
func (e *Engine) ChangeSpotPrice(caller Address, poolID uint64, newSpotPrice *uint256.Int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	pair, err := e.Pool(poolID)
	if err != nil {
		return err
	}
	return pair.ChangeSpotPrice(caller, newSpotPrice)
}

// ChangeDelta updates poolID's delta. Owner only.
func (e *Engine) ChangeDelta(caller Address, poolID uint64, newDelta *uint256.Int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	pair, err := e.Pool(poolID)
	if err != nil {
		return err
	}
	return pair.ChangeDelta(caller, newDelta)
}

// ChangeFee updates poolID's fee. Owner only; like the source this only
// ever accepts a zero fee, since it is restricted to non-Trade pools.
func (e *Engine) ChangeFee(caller Address, poolID uint64, newFee *uint256.Int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	pair, err := e.Pool(poolID)
	if err != nil {
		return err
	}
	return pair.ChangeFee(caller, newFee)
}

// ChangeAssetRecipient updates poolID's asset recipient. Owner only.
func (e *Engine) ChangeAssetRecipient(caller Address, poolID uint64, newRecipient Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	pair, err := e.Pool(poolID)
	if err != nil {
		return err
	}
	return pair.ChangeAssetRecipient(caller, newRecipient)
}

// LPReceiver is implemented by a contract that wants to be notified of an
// incoming LP transfer via lp_transfer_call; it reports back how much of
// the transferred amount it did NOT use, which is refunded to the sender.
type LPReceiver interface {
	OnLPTransfer(poolID uint64, from Address, amount uint64, msg string) (unused uint64)
}

// LPTransferCall performs an lp_transfer followed immediately by a
// synchronous call into receiver and a refund of any amount it reports as
// unused. spec.md §9 permits executing the source's async
// receiver-callback-with-refund pattern inline on a synchronous host; this
// is that inline execution.
func (e *Engine) LPTransferCall(poolID uint64, from, to Address, amount uint64, msg string, receiver LPReceiver) error {
	if err := e.LPTransfer(poolID, from, to, amount); err != nil {
		return err
	}
	unused := receiver.OnLPTransfer(poolID, from, amount, msg)
	if unused == 0 {
		return nil
	}
	if unused > amount {
		unused = amount
	}
	return e.LPTransfer(poolID, to, from, unused)
}
