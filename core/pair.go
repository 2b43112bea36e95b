package core

import (
	"github.com/holiman/uint256"
)

// MaxFee is the upper bound (exclusive) a Trade pool's fee may carry: 90%,
// WAD-scaled.
var MaxFee = mustFromDecimal("900000000000000000")

// PoolType is the closed tagged variant selecting a pair's trading
// discipline.
type PoolType uint8

const (
	// TokenPool buys NFTs from traders; coins flow out, NFTs flow in.
	// Owner-controlled, no LP.
	TokenPool PoolType = iota
	// NFTPool sells NFTs to traders; NFTs flow out, coins flow in to
	// asset_recipient. Owner-controlled, no LP.
	NFTPool
	// TradePool is two-sided and LP-mintable; coin and NFT balances are
	// jointly redeemed by burning shares.
	TradePool
)

// Pair is a single bonding-curve pool: its curve state, NFT inventory, and
// (for Trade pools) its LP share accounting.
type Pair struct {
	PoolID   uint64
	Curve    Curve
	PoolType PoolType
	NFTAsset string

	SpotPrice *uint256.Int
	Delta     *uint256.Int
	Fee       *uint256.Int // WAD-scaled, 0 <= fee < MaxFee

	Owner          Address
	AssetRecipient *Address // nil unless pool_type is Token or NFT
	ReleasedTime   uint64   // unix seconds before which non-Trade withdrawals are forbidden

	CoinBalance  uint64
	HeldTokenIDs *tokenIDSet
	LPBalances   map[Address]uint64
	LPSupply     uint64
}

// NewPair constructs a Pair, enforcing I1-I3.
func NewPair(poolID uint64, curve Curve, poolType PoolType, nftAsset string, spotPrice, delta, fee *uint256.Int, owner Address, assetRecipient *Address, releasedTime uint64) (*Pair, error) {
	if !curve.ValidateDelta(delta) {
		return nil, ErrInvalidDelta
	}
	if !curve.ValidateSpotPrice(spotPrice) {
		return nil, ErrInvalidSpotPrice
	}

	switch poolType {
	case TokenPool, NFTPool:
		if !fee.IsZero() {
			return nil, ErrFeeExceedsMax
		}
		if assetRecipient == nil {
			return nil, ErrAssetRecipient
		}
	case TradePool:
		if fee.Cmp(MaxFee) >= 0 {
			return nil, ErrFeeExceedsMax
		}
		if assetRecipient != nil {
			return nil, ErrAssetRecipient
		}
	default:
		return nil, ErrUnknownPoolType
	}

	return &Pair{
		PoolID:         poolID,
		Curve:          curve,
		PoolType:       poolType,
		NFTAsset:       nftAsset,
		SpotPrice:      new(uint256.Int).Set(spotPrice),
		Delta:          new(uint256.Int).Set(delta),
		Fee:            new(uint256.Int).Set(fee),
		Owner:          owner,
		AssetRecipient: assetRecipient,
		ReleasedTime:   releasedTime,
		HeldTokenIDs:   newTokenIDSet(),
		LPBalances:     make(map[Address]uint64),
	}, nil
}

func (p *Pair) assertOwner(caller Address) error {
	if caller != p.Owner {
		return ErrOnlyPoolOwner
	}
	return nil
}

func (p *Pair) assertNotTradingPool() error {
	if p.PoolType == TradePool {
		return ErrNotTradingPool
	}
	return nil
}

func (p *Pair) assertRelease(nowSeconds uint64) error {
	if p.ReleasedTime > nowSeconds {
		return ErrPoolLiquidityLocked
	}
	return nil
}

// DepositAndMintLP deposits token ids and coin into the pool and, for Trade
// pools, mints LP shares to receiver; Token and NFT pools take the deposit
// and mint nothing. Trade pools require the deposited coin to roughly
// match the deposited NFTs' value at the current spot price.
func (p *Pair) DepositAndMintLP(depositor, receiver Address, tokenIDs []string, coinAmount uint64) (uint64, error) {
	if p.PoolType == TradePool {
		required := uint64(len(tokenIDs)) * p.SpotPrice.Uint64()
		if required > coinAmount {
			return 0, ErrInvalidAddedLiquidity
		}
	}

	for _, id := range tokenIDs {
		if err := p.HeldTokenIDs.Insert(id, depositor, 0); err != nil {
			return 0, err
		}
	}
	p.CoinBalance += coinAmount

	if p.PoolType != TradePool {
		return 0, nil
	}

	mint := p.CoinBalance
	if p.LPSupply != 0 && p.HeldTokenIDs.Len() != 0 {
		mint = p.LPSupply * uint64(len(tokenIDs)) / uint64(p.HeldTokenIDs.Len())
	}
	if mint == 0 {
		return 0, nil
	}

	p.internalRegisterAccountLP(receiver)
	p.LPBalances[receiver] += mint
	p.LPSupply += mint
	return mint, nil
}

func (p *Pair) internalRegisterAccountLP(account Address) {
	if _, ok := p.LPBalances[account]; !ok {
		p.LPBalances[account] = 0
	}
}

// WithdrawCoin lets the owner of a non-Trade, released pool withdraw coin,
// truncating the request to the available balance.
func (p *Pair) WithdrawCoin(caller Address, amount uint64, nowSeconds uint64) (uint64, error) {
	if err := p.assertOwner(caller); err != nil {
		return 0, err
	}
	if err := p.assertNotTradingPool(); err != nil {
		return 0, err
	}
	if err := p.assertRelease(nowSeconds); err != nil {
		return 0, err
	}
	if amount > p.CoinBalance {
		amount = p.CoinBalance
	}
	p.CoinBalance -= amount
	return amount, nil
}

// WithdrawNFTs lets the owner of a non-Trade, released pool withdraw NFTs by id.
func (p *Pair) WithdrawNFTs(caller Address, tokenIDs []string, nowSeconds uint64) error {
	if err := p.assertOwner(caller); err != nil {
		return err
	}
	if err := p.assertNotTradingPool(); err != nil {
		return err
	}
	if err := p.assertRelease(nowSeconds); err != nil {
		return err
	}
	for _, id := range tokenIDs {
		if !p.HeldTokenIDs.Has(id) {
			return ErrTokenNotInPool
		}
	}
	for _, id := range tokenIDs {
		_ = p.HeldTokenIDs.Remove(id)
	}
	return nil
}

// BurnLPResult is the outcome of burning LP shares: the reported (but
// uncollected) protocol fee, the coin redeemed, and the NFT ids redeemed.
type BurnLPResult struct {
	ProtocolFee  uint64
	RedeemedCoin uint64
	RedeemedIDs  []string
}

// BurnLP redeems lp shares held by account for a proportional mix of the
// pool's NFTs and coin, rounding fractional NFT counts up and charging the
// caller the fractional coin value of the extra NFT via a 1-item buy quote.
//
// The protocol fee is computed and returned for visibility but is not
// deducted from RedeemedCoin — burn_lp only ever reported this fee, never
// collected it, and that behaviour is preserved here.
func (p *Pair) BurnLP(account Address, lp uint64, protocolFeeMultiplier *uint256.Int) (BurnLPResult, error) {
	if lp == 0 {
		return BurnLPResult{}, nil
	}
	balance, ok := p.LPBalances[account]
	if !ok || lp > balance {
		return BurnLPResult{}, ErrInsufficientLPBalance
	}

	h := uint64(p.HeldTokenIDs.Len())
	s := p.LPSupply

	redeemCoinRaw := h * p.SpotPrice.Uint64() * lp / s
	nftsFloor := h * lp / s

	nftsToWithdraw := nftsFloor
	var fractionOwed uint64
	if nftsFloor*s != lp*h {
		nftsToWithdraw = nftsFloor + 1
		buyInfo := p.Curve.GetBuyInfo(p.SpotPrice, p.Delta, 1, u64(0), protocolFeeMultiplier)
		if buyInfo.Status != StatusOk {
			return BurnLPResult{}, ErrLiquidityValueTooSmall
		}
		valueOfCeilNFTs := (nftsToWithdraw-1)*p.SpotPrice.Uint64() + buyInfo.NewSpotPrice.Uint64()
		if valueOfCeilNFTs < redeemCoinRaw {
			return BurnLPResult{}, ErrLiquidityValueTooSmall
		}
		fractionOwed = valueOfCeilNFTs - redeemCoinRaw
	}
	if fractionOwed > redeemCoinRaw {
		return BurnLPResult{}, ErrLiquidityValueTooSmall
	}
	redeemCoin := redeemCoinRaw - fractionOwed

	ids := p.HeldTokenIDs.FirstN(int(nftsToWithdraw))
	for _, id := range ids {
		_ = p.HeldTokenIDs.Remove(id)
	}

	p.LPBalances[account] -= lp
	p.LPSupply -= lp
	p.CoinBalance -= redeemCoin

	protocolFee := mulWad(u64(redeemCoin), protocolFeeMultiplier).Uint64()

	return BurnLPResult{
		ProtocolFee:  protocolFee,
		RedeemedCoin: redeemCoin,
		RedeemedIDs:  ids,
	}, nil
}

// SwapResult is the outcome of a buy- or sell-side swap against a pair.
type SwapResult struct {
	TokenIDs    []string
	CoinAmount  uint64
	ProtocolFee uint64
}

// SwapCoinForAnyNFTs buys the first n NFTs (in insertion order) out of the
// pool, requiring coinIn cover the quoted input value.
func (p *Pair) SwapCoinForAnyNFTs(coinIn uint64, n uint64, feeMultiplier, protocolFeeMultiplier *uint256.Int) (SwapResult, error) {
	if p.PoolType == TokenPool {
		return SwapResult{}, ErrWrongPoolTypeForBuy
	}
	if n == 0 || n > uint64(p.HeldTokenIDs.Len()) {
		return SwapResult{}, ErrNumItemsZero
	}
	ids := p.HeldTokenIDs.FirstN(int(n))
	return p.swapCoinForNFTs(ids, coinIn, feeMultiplier, protocolFeeMultiplier)
}

// SwapCoinForSpecificNFTs buys the named NFTs out of the pool.
func (p *Pair) SwapCoinForSpecificNFTs(coinIn uint64, tokenIDs []string, feeMultiplier, protocolFeeMultiplier *uint256.Int) (SwapResult, error) {
	if p.PoolType == TokenPool {
		return SwapResult{}, ErrWrongPoolTypeForBuy
	}
	if len(tokenIDs) == 0 {
		return SwapResult{}, ErrNumItemsZero
	}
	for _, id := range tokenIDs {
		if !p.HeldTokenIDs.Has(id) {
			return SwapResult{}, ErrTokenNotInPool
		}
	}
	return p.swapCoinForNFTs(tokenIDs, coinIn, feeMultiplier, protocolFeeMultiplier)
}

func (p *Pair) swapCoinForNFTs(ids []string, coinIn uint64, feeMultiplier, protocolFeeMultiplier *uint256.Int) (SwapResult, error) {
	quote := p.Curve.GetBuyInfo(p.SpotPrice, p.Delta, uint64(len(ids)), feeMultiplier, protocolFeeMultiplier)
	if quote.Status != StatusOk {
		return SwapResult{}, statusError(quote.Status)
	}
	if quote.InputValue.Uint64() > coinIn {
		return SwapResult{}, ErrNotEnoughCoinPayment
	}

	if quote.NewSpotPrice.Cmp(p.SpotPrice) != 0 || quote.NewDelta.Cmp(p.Delta) != 0 {
		p.SpotPrice = quote.NewSpotPrice
		p.Delta = quote.NewDelta
	}
	for _, id := range ids {
		_ = p.HeldTokenIDs.Remove(id)
	}

	if p.AssetRecipient == nil {
		p.CoinBalance += quote.InputValue.Uint64() - quote.ProtocolFee.Uint64()
	}

	return SwapResult{
		TokenIDs:    ids,
		CoinAmount:  quote.InputValue.Uint64(),
		ProtocolFee: quote.ProtocolFee.Uint64(),
	}, nil
}

// SwapNFTsForCoin sells tokenIDs into the pool, saturating the payout at the
// pool's available coin balance and requiring the actual paid output meet
// minOut.
func (p *Pair) SwapNFTsForCoin(caller Address, tokenIDs []string, minOut uint64, feeMultiplier, protocolFeeMultiplier *uint256.Int) (SwapResult, error) {
	if p.PoolType == NFTPool {
		return SwapResult{}, ErrWrongPoolTypeForSell
	}
	if len(tokenIDs) == 0 {
		return SwapResult{}, ErrNumItemsZero
	}

	quote := p.Curve.GetSellInfo(p.SpotPrice, p.Delta, uint64(len(tokenIDs)), feeMultiplier, protocolFeeMultiplier)
	if quote.Status != StatusOk {
		return SwapResult{}, statusError(quote.Status)
	}

	wantOutput := quote.OutputValue.Uint64()
	paidOutput := wantOutput
	if paidOutput > p.CoinBalance {
		paidOutput = p.CoinBalance
	}
	p.CoinBalance -= paidOutput

	protocolFee := quote.ProtocolFee.Uint64()
	if protocolFee > p.CoinBalance {
		protocolFee = p.CoinBalance
	}
	p.CoinBalance -= protocolFee

	if paidOutput < minOut {
		return SwapResult{}, ErrOutTooLittleCoin
	}

	if quote.NewSpotPrice.Cmp(p.SpotPrice) != 0 || quote.NewDelta.Cmp(p.Delta) != 0 {
		p.SpotPrice = quote.NewSpotPrice
		p.Delta = quote.NewDelta
	}

	if p.AssetRecipient == nil {
		for _, id := range tokenIDs {
			_ = p.HeldTokenIDs.Insert(id, caller, 0)
		}
	}

	return SwapResult{
		TokenIDs:    tokenIDs,
		CoinAmount:  paidOutput,
		ProtocolFee: protocolFee,
	}, nil
}

// LPTransfer moves lp shares between two registered accounts.
func (p *Pair) LPTransfer(from, to Address, amount uint64) error {
	fromBalance, ok := p.LPBalances[from]
	if !ok {
		return ErrAccountNotRegistered
	}
	if _, ok := p.LPBalances[to]; !ok {
		return ErrAccountNotRegistered
	}
	if from == to {
		return ErrCannotTransferToSelf
	}
	if amount > fromBalance {
		return ErrInsufficientLPBalance
	}
	p.LPBalances[from] -= amount
	p.LPBalances[to] += amount
	return nil
}

// ChangeSpotPrice lets the owner of a non-Trade pool reset its spot price.
func (p *Pair) ChangeSpotPrice(caller Address, newSpotPrice *uint256.Int) error {
	if err := p.assertOwner(caller); err != nil {
		return err
	}
	if err := p.assertNotTradingPool(); err != nil {
		return err
	}
	if !p.Curve.ValidateSpotPrice(newSpotPrice) {
		return ErrInvalidSpotPrice
	}
	p.SpotPrice = new(uint256.Int).Set(newSpotPrice)
	return nil
}

// ChangeDelta lets the owner of a non-Trade pool reset its curve delta.
func (p *Pair) ChangeDelta(caller Address, newDelta *uint256.Int) error {
	if err := p.assertOwner(caller); err != nil {
		return err
	}
	if err := p.assertNotTradingPool(); err != nil {
		return err
	}
	if !p.Curve.ValidateDelta(newDelta) {
		return ErrInvalidDelta
	}
	p.Delta = new(uint256.Int).Set(newDelta)
	return nil
}

// ChangeFee lets the owner of a non-Trade pool reset its fee. Non-Trade
// pools always carry a zero fee (I1), so the only legal value is zero; this
// mirrors the source's setter while staying consistent with that invariant.
func (p *Pair) ChangeFee(caller Address, newFee *uint256.Int) error {
	if err := p.assertOwner(caller); err != nil {
		return err
	}
	if err := p.assertNotTradingPool(); err != nil {
		return err
	}
	if !newFee.IsZero() {
		return ErrFeeExceedsMax
	}
	p.Fee = new(uint256.Int).Set(newFee)
	return nil
}

// ChangeAssetRecipient lets the owner of a non-Trade pool redirect proceeds.
func (p *Pair) ChangeAssetRecipient(caller Address, newRecipient Address) error {
	if err := p.assertOwner(caller); err != nil {
		return err
	}
	if err := p.assertNotTradingPool(); err != nil {
		return err
	}
	p.AssetRecipient = &newRecipient
	return nil
}

func statusError(s CurveStatus) error {
	switch s {
	case StatusInvalidNumItem:
		return ErrInvalidNumItem
	case StatusSpotPriceOverflow:
		return ErrSpotPriceOverflow
	default:
		return nil
	}
}
