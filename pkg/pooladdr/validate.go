package pooladdr

import (
	"bytes"
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrInvalidAddressBuffer is returned when a token is not exactly 20 bytes.
	ErrInvalidAddressBuffer = errors.New("invalid buffer ETH addresses")
	// ErrZeroAddress is returned when either token is the zero address.
	ErrZeroAddress = errors.New("not accepted zero addresses")
	// ErrIdenticalAddresses is returned when both tokens are the same.
	ErrIdenticalAddresses = errors.New("not identical addresses")
)

// ValidatePair checks that a and b are usable as a token pair.
// Both lengths are checked first, then the zero address, then equality.
func ValidatePair(a, b []byte) error {
	if len(a) != common.AddressLength || len(b) != common.AddressLength {
		return ErrInvalidAddressBuffer
	}
	var zero common.Address
	if bytes.Equal(a, zero[:]) || bytes.Equal(b, zero[:]) {
		return ErrZeroAddress
	}
	if bytes.Equal(a, b) {
		return ErrIdenticalAddresses
	}
	return nil
}

// SortPair returns the two addresses in ascending byte order.
func SortPair(a, b common.Address) (common.Address, common.Address) {
	if bytes.Compare(a[:], b[:]) < 0 {
		return a, b
	}
	return b, a
}
