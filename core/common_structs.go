package core

import "encoding/hex"

// Address represents a 20-byte account identifier.
type Address [20]byte

// Hash represents a 32-byte cryptographic hash.
type Hash [32]byte

// String renders the address as a 0x-prefixed hex string.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool {
	return a == Address{}
}

// AddressFromHex parses a hex-encoded (optionally 0x-prefixed) 20-byte address.
func AddressFromHex(s string) (Address, error) {
	var a Address
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, err
	}
	if len(b) != len(a) {
		return a, errAddressLength
	}
	copy(a[:], b)
	return a, nil
}
