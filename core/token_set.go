package core

import "container/list"

// depositedToken records who deposited a token id and any minimum resale
// price they attached to it — grounded on original_source's DepositedToken.
type depositedToken struct {
	depositor Address
	minPrice  uint64
}

// tokenIDSet is an insertion-ordered set of NFT token ids. Selection order
// for "any-n" buys must follow insertion order (§5); the standard library has
// no ordered-map type, and nothing in the example pack pulls one in, so this
// is built directly on container/list plus a companion index map — the one
// place this engine reaches past a bare map for an ordering guarantee the
// spec requires.
type tokenIDSet struct {
	order *list.List
	index map[string]*list.Element
	info  map[string]depositedToken
}

func newTokenIDSet() *tokenIDSet {
	return &tokenIDSet{
		order: list.New(),
		index: make(map[string]*list.Element),
		info:  make(map[string]depositedToken),
	}
}

func (s *tokenIDSet) Len() int {
	return s.order.Len()
}

func (s *tokenIDSet) Has(tokenID string) bool {
	_, ok := s.index[tokenID]
	return ok
}

// Insert adds tokenID tagged with the given depositor, returning
// ErrDuplicateTokenID if it is already present.
func (s *tokenIDSet) Insert(tokenID string, depositor Address, minPrice uint64) error {
	if s.Has(tokenID) {
		return ErrDuplicateTokenID
	}
	el := s.order.PushBack(tokenID)
	s.index[tokenID] = el
	s.info[tokenID] = depositedToken{depositor: depositor, minPrice: minPrice}
	return nil
}

// Remove deletes tokenID, returning ErrTokenNotInPool if absent.
func (s *tokenIDSet) Remove(tokenID string) error {
	el, ok := s.index[tokenID]
	if !ok {
		return ErrTokenNotInPool
	}
	s.order.Remove(el)
	delete(s.index, tokenID)
	delete(s.info, tokenID)
	return nil
}

// FirstN returns the first n token ids in insertion order without removing
// them. It returns fewer than n if the set is smaller.
func (s *tokenIDSet) FirstN(n int) []string {
	out := make([]string, 0, n)
	for el := s.order.Front(); el != nil && len(out) < n; el = el.Next() {
		out = append(out, el.Value.(string))
	}
	return out
}

// All returns every token id in insertion order.
func (s *tokenIDSet) All() []string {
	return s.FirstN(s.order.Len())
}

// DepositorOf returns the depositor tagged on tokenID, if present.
func (s *tokenIDSet) DepositorOf(tokenID string) (Address, bool) {
	info, ok := s.info[tokenID]
	return info.depositor, ok
}
