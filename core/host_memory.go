package core

import (
	"github.com/google/uuid"
)

// MemoryHost is a synchronous, in-process Host implementation for CLI and
// test use: it resolves every transfer immediately rather than modelling an
// asynchronous cross-contract call, per spec.md's design note that a
// synchronous host may execute such effects inline and skip the resolve
// callback entirely.
type MemoryHost struct {
	caller           Address
	attachedValue    uint64
	now              uint64
	storageBytesUsed uint64
	byteCostPerByte  uint64

	// CoinLedger and NFTLedger record the effects dispatched through this
	// host so CLI output and tests can observe them; a real host would
	// instead route these through actual custody.
	CoinLedger map[Address]uint64
	NFTLedger  map[string]map[string]Address // asset -> token id -> holder

	// LastDispatchID is the correlation id assigned to the most recently
	// dispatched transfer, so an operator can join CLI output and logs
	// without guessing at implicit ordering.
	LastDispatchID string
}

// NewMemoryHost constructs a MemoryHost for the given caller/attached-value
// context, with an initial wall-clock reading and byte cost.
func NewMemoryHost(caller Address, attachedValue, now, byteCostPerByte uint64) *MemoryHost {
	return &MemoryHost{
		caller:          caller,
		attachedValue:   attachedValue,
		now:             now,
		byteCostPerByte: byteCostPerByte,
		CoinLedger:      make(map[Address]uint64),
		NFTLedger:       make(map[string]map[string]Address),
	}
}

func (h *MemoryHost) Caller() Address          { return h.caller }
func (h *MemoryHost) AttachedValue() uint64    { return h.attachedValue }
func (h *MemoryHost) NowSeconds() uint64       { return h.now }
func (h *MemoryHost) StorageBytesUsed() uint64 { return h.storageBytesUsed }
func (h *MemoryHost) ByteCost() uint64         { return h.byteCostPerByte }

// RecordStorageWrite bumps the tracked storage counter by n bytes.
func (h *MemoryHost) RecordStorageWrite(n uint64) { h.storageBytesUsed += n }

// Advance moves the host's wall clock forward and bumps the tracked storage
// counter, for exercising released_time gating and storage accounting
// without a real host.
func (h *MemoryHost) Advance(seconds, bytesGrown uint64) {
	h.now += seconds
	h.storageBytesUsed += bytesGrown
}

func (h *MemoryHost) TransferCoin(to Address, amount uint64) error {
	h.CoinLedger[to] += amount
	h.LastDispatchID = uuid.NewString()
	return nil
}

func (h *MemoryHost) TransferNFT(asset string, to Address, tokenID string) <-chan error {
	ch := make(chan error, 1)
	holders, ok := h.NFTLedger[asset]
	if !ok {
		holders = make(map[string]Address)
		h.NFTLedger[asset] = holders
	}
	holders[tokenID] = to
	h.LastDispatchID = uuid.NewString()
	ch <- nil
	close(ch)
	return ch
}
