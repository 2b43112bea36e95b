package core

// AccountDeposit is a single account's staging area: NFTs deposited pending
// use by a pool operation, prepaid coin, and the storage bytes that coin is
// covering. Grounded on original_source's AccountDeposit/account_deposit.rs.
type AccountDeposit struct {
	Assets       map[string]*tokenIDSet // nft asset id -> deposited token ids
	CoinBalance  uint64
	StorageUsage uint64
}

func newAccountDeposit() *AccountDeposit {
	return &AccountDeposit{Assets: make(map[string]*tokenIDSet)}
}

// AccountDeposits is the per-account staging surface the router and CLI
// consume. It is a concrete, minimal implementation of the "account deposits
// surface" component — the engine's real byte-accounting logic, running
// against an in-memory store rather than the excluded host key-value store.
type AccountDeposits struct {
	accounts map[Address]*AccountDeposit
	byteCost uint64
}

// NewAccountDeposits constructs an empty staging surface charging byteCost
// coin per byte of storage growth.
func NewAccountDeposits(byteCost uint64) *AccountDeposits {
	return &AccountDeposits{accounts: make(map[Address]*AccountDeposit), byteCost: byteCost}
}

// Register idempotently creates a staging entry for account.
func (d *AccountDeposits) Register(account Address) {
	if _, ok := d.accounts[account]; !ok {
		d.accounts[account] = newAccountDeposit()
	}
}

func (d *AccountDeposits) get(account Address) (*AccountDeposit, error) {
	acct, ok := d.accounts[account]
	if !ok {
		return nil, ErrAccountNotRegistered
	}
	return acct, nil
}

// DepositNFT stages tokenID under asset for account, charging storage bytes
// against the account's prepaid coin.
func (d *AccountDeposits) DepositNFT(account Address, asset, tokenID string, attached uint64, bytesGrown uint64) error {
	acct, err := d.get(account)
	if err != nil {
		return err
	}
	set, ok := acct.Assets[asset]
	if !ok {
		set = newTokenIDSet()
		acct.Assets[asset] = set
	}
	if err := set.Insert(tokenID, account, 0); err != nil {
		return err
	}
	return d.assertStorage(acct, attached, bytesGrown)
}

// WithdrawNFT removes tokenID from account's staging area for asset.
func (d *AccountDeposits) WithdrawNFT(account Address, asset, tokenID string) error {
	acct, err := d.get(account)
	if err != nil {
		return err
	}
	set, ok := acct.Assets[asset]
	if !ok {
		return ErrTokenNotDeposited
	}
	if err := set.Remove(tokenID); err != nil {
		return ErrTokenNotDeposited
	}
	return nil
}

// Holdings returns every token id staged under asset for account, in
// insertion order.
func (d *AccountDeposits) Holdings(account Address, asset string) []string {
	acct, ok := d.accounts[account]
	if !ok {
		return nil
	}
	set, ok := acct.Assets[asset]
	if !ok {
		return nil
	}
	return set.All()
}

// CoinBalance returns account's prepaid staging coin balance.
func (d *AccountDeposits) CoinBalance(account Address) uint64 {
	acct, ok := d.accounts[account]
	if !ok {
		return 0
	}
	return acct.CoinBalance
}

// CreditCoin adds amount to account's staging coin balance.
func (d *AccountDeposits) CreditCoin(account Address, amount uint64) error {
	acct, err := d.get(account)
	if err != nil {
		return err
	}
	acct.CoinBalance += amount
	return nil
}

// DebitCoin subtracts amount from account's staging coin balance.
func (d *AccountDeposits) DebitCoin(account Address, amount uint64) error {
	acct, err := d.get(account)
	if err != nil {
		return err
	}
	if amount > acct.CoinBalance {
		return ErrNotEnoughCoinPayment
	}
	acct.CoinBalance -= amount
	return nil
}

// assertStorage charges bytesGrown*byteCost (no refund if bytesGrown <= 0)
// against acct's balance after crediting attached, and fails if the
// resulting balance cannot cover the new storage usage. Grounded on
// account_deposit.rs's assert_storage/compute_storage_usage: storage
// refunds on shrinkage are never granted.
func (d *AccountDeposits) assertStorage(acct *AccountDeposit, attached uint64, bytesGrown uint64) error {
	if bytesGrown > 0 {
		acct.StorageUsage += bytesGrown
	}
	acct.CoinBalance += attached
	if acct.CoinBalance < acct.StorageUsage*d.byteCost {
		return ErrStorageExceedsPrepaid
	}
	return nil
}
