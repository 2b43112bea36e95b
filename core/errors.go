package core

import "errors"

// Input errors.
var (
	ErrInvalidPoolID    = errors.New("invalid pool id")
	ErrUnknownPoolType  = errors.New("unknown pool type")
	ErrUnknownCurve     = errors.New("unknown curve")
	ErrNumItemsZero     = errors.New("n must be > 0")
	ErrFeeExceedsMax    = errors.New("fee exceeds max")
	ErrAssetRecipient   = errors.New("asset_recipient must be set or none depending on pool type")
	ErrInvalidDelta     = errors.New("invalid delta")
	ErrInvalidSpotPrice = errors.New("invalid spot price")
	errAddressLength    = errors.New("address must decode to 20 bytes")
)

// Arithmetic errors (curve kernel statuses surfaced as errors at the pair layer).
var (
	ErrSpotPriceOverflow = errors.New("spot price overflow")
	ErrInvalidNumItem    = errors.New("invalid num item")
)

// Liquidity errors.
var (
	ErrInsufficientLPBalance  = errors.New("insufficient lp balance")
	ErrLiquidityValueTooSmall = errors.New("liquidity value too small vs nft spot price")
	ErrInvalidAddedLiquidity  = errors.New("invalid added liquidity")
)

// Quote-vs-limit errors.
var (
	ErrNotEnoughCoinPayment = errors.New("not enough coin payment")
	ErrOutTooLittleCoin     = errors.New("out too little coin")
)

// Custody errors.
var (
	ErrTokenNotInPool       = errors.New("token id not in pool")
	ErrAccountNotRegistered = errors.New("sender or receiver account not registered")
	ErrCannotTransferToSelf = errors.New("cannot transfer to self")
	ErrTokenNotDeposited    = errors.New("no deposited tokens for withdrawal")
	ErrDuplicateTokenID     = errors.New("duplicate token id")
)

// Authorisation errors.
var (
	ErrOnlyGovernance        = errors.New("only governance")
	ErrOnlyPoolOwner         = errors.New("only pool owner")
	ErrPoolLiquidityLocked   = errors.New("pool liquidity cannot release now")
	ErrStorageExceedsPrepaid = errors.New("storage usage exceeds prepaid coin")
	ErrNotTradingPool        = errors.New("operation not permitted on a trading pool")
	ErrWrongPoolTypeForBuy   = errors.New("pool type does not sell nfts")
	ErrWrongPoolTypeForSell  = errors.New("pool type does not buy nfts")
	ErrRequiresOneYocto      = errors.New("requires exactly one yocto of attached value")
)
