package core

// SwapDirection is the closed tagged variant selecting a hop's trade
// direction within a multi-hop action list.
type SwapDirection uint8

const (
	// NFTToCoin sells NFTs into a pool for coin.
	NFTToCoin SwapDirection = iota
	// CoinToNFT buys NFTs out of a pool with coin.
	CoinToNFT
)

// Action is one hop of a caller-supplied route (§4.4). The caller decides
// the route; this engine never performs cross-pool pathfinding.
type Action struct {
	PoolID         uint64
	Direction      SwapDirection
	MinOut         uint64   // NFTToCoin only
	InputTokenIDs  []string // NFTToCoin: ids to sell; empty means "drain in-flight"
	OutputTokenIDs []string // CoinToNFT: specific ids wanted, or empty for "any n"
	NumOutNFTs     uint64   // CoinToNFT, "any n" variant
}

// Swap evaluates actions in order against e's live pools, threading a single
// coin budget and a per-asset set of NFTs acquired mid-route. It returns the
// transfer effects the caller layer must dispatch (a coin refund and/or NFT
// deliveries). host is consulted only for the one production path that grows
// an account's own staged holdings (crediting a Token/NFT pool's
// asset_recipient): it reports the real storage write so the account's
// byte-cost accounting (§4.6) stays enforceable rather than a standing no-op.
func (e *Engine) Swap(caller Address, actions []Action, attachedCoin uint64, host Host) ([]TransferEffect, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(actions) == 0 {
		return nil, ErrInvalidPoolID
	}
	if actions[0].Direction == NFTToCoin && len(actions[0].InputTokenIDs) == 0 {
		return nil, ErrNumItemsZero
	}

	coinRemaining := attachedCoin
	inFlight := make(map[string]*tokenIDSet)

	for _, action := range actions {
		pair, err := e.Pool(action.PoolID)
		if err != nil {
			return nil, err
		}
		nftAsset := pair.NFTAsset
		set, ok := inFlight[nftAsset]
		if !ok {
			set = newTokenIDSet()
			inFlight[nftAsset] = set
		}

		switch action.Direction {
		case NFTToCoin:
			ids := action.InputTokenIDs
			if len(ids) == 0 {
				ids = set.All()
			}
			for _, id := range ids {
				if set.Has(id) {
					_ = set.Remove(id)
				} else if err := e.Deposits.WithdrawNFT(caller, nftAsset, id); err != nil {
					return nil, err
				}
			}

			result, err := pair.SwapNFTsForCoin(caller, ids, action.MinOut, pair.Fee, e.ProtocolFeeMult)
			if err != nil {
				return nil, err
			}
			if pair.AssetRecipient != nil {
				for _, id := range result.TokenIDs {
					prevBytes := host.StorageBytesUsed()
					host.RecordStorageWrite(uint64(len(id)))
					grown := host.StorageBytesUsed() - prevBytes
					if err := e.Deposits.DepositNFT(*pair.AssetRecipient, nftAsset, id, 0, grown); err != nil {
						return nil, err
					}
				}
			}
			coinRemaining += result.CoinAmount
			e.ProtocolFeeCredit += result.ProtocolFee

		case CoinToNFT:
			var result SwapResult
			if len(action.OutputTokenIDs) > 0 {
				if uint64(len(action.OutputTokenIDs)) != action.NumOutNFTs && action.NumOutNFTs != 0 {
					return nil, ErrNumItemsZero
				}
				result, err = pair.SwapCoinForSpecificNFTs(coinRemaining, action.OutputTokenIDs, pair.Fee, e.ProtocolFeeMult)
			} else {
				result, err = pair.SwapCoinForAnyNFTs(coinRemaining, action.NumOutNFTs, pair.Fee, e.ProtocolFeeMult)
			}
			if err != nil {
				return nil, err
			}
			for _, id := range result.TokenIDs {
				_ = set.Insert(id, caller, 0)
			}
			if pair.AssetRecipient != nil {
				if err := e.Deposits.CreditCoin(*pair.AssetRecipient, result.CoinAmount-result.ProtocolFee); err != nil {
					return nil, err
				}
			}
			coinRemaining -= result.CoinAmount
			e.ProtocolFeeCredit += result.ProtocolFee
		}
	}

	var effects []TransferEffect
	if coinRemaining > 0 {
		effects = append(effects, TransferEffect{Kind: CoinEffect, To: caller, Amount: coinRemaining})
	}
	for asset, set := range inFlight {
		for _, id := range set.All() {
			effects = append(effects, TransferEffect{Kind: NFTEffect, To: caller, Asset: asset, TokenID: id})
		}
	}
	return effects, nil
}
