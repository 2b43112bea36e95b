package core

import "github.com/holiman/uint256"

// PairInfo is the read-only projection of a pair returned by GetPoolInfo,
// grounded on original_source/view.rs's PairInfo.
type PairInfo struct {
	PoolID         uint64
	CurveType      BondingCurve
	PoolType       PoolType
	NFTAsset       string
	SpotPrice      *uint256.Int
	Delta          *uint256.Int
	Fee            *uint256.Int
	Owner          Address
	AssetRecipient *Address
	CoinBalance    uint64
	PoolTokenIDs   []string
}

// Metadata is the engine-wide read-only projection returned by GetMetadata.
type Metadata struct {
	Governance                Address
	FeeReceiver                Address
	ProtocolFeeCredit          uint64
	PoolsCount                 uint64
	ProtocolFeeMultiplier      *uint256.Int
	StoragePerAccountCreation  uint64
	StoragePerNFTDeposit       uint64
	StoragePerPairCreation     uint64
}

// AccountInfo is the read-only projection of a staged account returned by
// GetDeposits.
type AccountInfo struct {
	Deposits     map[string][]string
	CoinBalance  uint64
	StorageUsage uint64
}

func pairToInfo(p *Pair) PairInfo {
	return PairInfo{
		PoolID:         p.PoolID,
		CurveType:      p.Curve.Type,
		PoolType:       p.PoolType,
		NFTAsset:       p.NFTAsset,
		SpotPrice:      new(uint256.Int).Set(p.SpotPrice),
		Delta:          new(uint256.Int).Set(p.Delta),
		Fee:            new(uint256.Int).Set(p.Fee),
		Owner:          p.Owner,
		AssetRecipient: p.AssetRecipient,
		CoinBalance:    p.CoinBalance,
		PoolTokenIDs:   p.HeldTokenIDs.All(),
	}
}

// GetPoolInfo returns the read-only projection of poolID.
func (e *Engine) GetPoolInfo(poolID uint64) (PairInfo, error) {
	pair, err := e.Pool(poolID)
	if err != nil {
		return PairInfo{}, err
	}
	return pairToInfo(pair), nil
}

// GetPools returns a page of pool projections starting at fromIndex, at most
// limit entries. limit == 0 is rejected, matching get_pools' panic on a
// zero-limit request.
func (e *Engine) GetPools(fromIndex, limit uint64) ([]PairInfo, error) {
	if limit == 0 {
		return nil, ErrInvalidPoolID
	}
	if fromIndex >= uint64(len(e.pools)) {
		return nil, nil
	}
	end := fromIndex + limit
	if end > uint64(len(e.pools)) {
		end = uint64(len(e.pools))
	}
	out := make([]PairInfo, 0, end-fromIndex)
	for i := fromIndex; i < end; i++ {
		out = append(out, pairToInfo(e.pools[i]))
	}
	return out, nil
}

// GetPoolCount returns the number of registered pools.
func (e *Engine) GetPoolCount() uint64 {
	return e.PoolCount()
}

// GetHeldIDs returns the token ids a pool currently holds, in insertion
// order.
func (e *Engine) GetHeldIDs(poolID uint64) ([]string, error) {
	pair, err := e.Pool(poolID)
	if err != nil {
		return nil, err
	}
	return pair.HeldTokenIDs.All(), nil
}

// GetBuyQuote quotes a buy of n items against poolID without mutating state.
func (e *Engine) GetBuyQuote(poolID uint64, n uint64) (BuyQuote, error) {
	pair, err := e.Pool(poolID)
	if err != nil {
		return BuyQuote{}, err
	}
	return pair.Curve.GetBuyInfo(pair.SpotPrice, pair.Delta, n, pair.Fee, e.ProtocolFeeMult), nil
}

// GetSellQuote quotes a sell of n items against poolID without mutating state.
func (e *Engine) GetSellQuote(poolID uint64, n uint64) (SellQuote, error) {
	pair, err := e.Pool(poolID)
	if err != nil {
		return SellQuote{}, err
	}
	return pair.Curve.GetSellInfo(pair.SpotPrice, pair.Delta, n, pair.Fee, e.ProtocolFeeMult), nil
}

// GetDeposits returns the read-only projection of account's staging area.
func (e *Engine) GetDeposits(account Address) (AccountInfo, error) {
	acct, err := e.Deposits.get(account)
	if err != nil {
		return AccountInfo{}, err
	}
	deposits := make(map[string][]string, len(acct.Assets))
	for asset, set := range acct.Assets {
		deposits[asset] = set.All()
	}
	return AccountInfo{
		Deposits:     deposits,
		CoinBalance:  acct.CoinBalance,
		StorageUsage: acct.StorageUsage,
	}, nil
}

// GetMetadata returns the engine-wide read-only projection.
func (e *Engine) GetMetadata() Metadata {
	return Metadata{
		Governance:                e.Governance,
		FeeReceiver:               e.FeeReceiver,
		ProtocolFeeCredit:         e.ProtocolFeeCredit,
		PoolsCount:                e.PoolCount(),
		ProtocolFeeMultiplier:     new(uint256.Int).Set(e.ProtocolFeeMult),
		StoragePerAccountCreation: e.StoragePerAccountCreation,
		StoragePerNFTDeposit:      e.StoragePerNFTDeposit,
		StoragePerPairCreation:    e.StoragePerPairCreation,
	}
}

// LPBalanceOf returns account's LP balance on poolID.
func (e *Engine) LPBalanceOf(poolID uint64, account Address) (uint64, error) {
	pair, err := e.Pool(poolID)
	if err != nil {
		return 0, err
	}
	return pair.LPBalances[account], nil
}

// LPTotalSupply returns poolID's total LP supply.
func (e *Engine) LPTotalSupply(poolID uint64) (uint64, error) {
	pair, err := e.Pool(poolID)
	if err != nil {
		return 0, err
	}
	return pair.LPSupply, nil
}

// LPMetadata describes a pool's LP share accounting unit — grounded on
// multi_lp.rs's lp_metadata/FungibleTokenMetadata.
type LPMetadata struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// GetLPMetadata returns poolID's LP share metadata.
func (e *Engine) GetLPMetadata(poolID uint64) (LPMetadata, error) {
	if _, err := e.Pool(poolID); err != nil {
		return LPMetadata{}, err
	}
	return LPMetadata{
		Name:     "nftamm-pool-lp",
		Symbol:   "NFTAMM-LP",
		Decimals: 1,
	}, nil
}
