// Package formatter converts human readable hex strings into the raw
// addresses and hashes consumed by pooladdr.
package formatter

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrInvalidAddress is returned by ToEthAddress for anything but 40 hex digits.
var ErrInvalidAddress = errors.New("invalid hex address")

// HexToBytes decodes a hex string with an optional 0x prefix.
// Digits are case-insensitive. An odd digit count is rejected with
// hexutil.ErrOddLength.
func HexToBytes(s string) ([]byte, error) {
	digits := s
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if digits == "" {
		return nil, fmt.Errorf("decode %q: %w", s, hexutil.ErrEmptyString)
	}
	b, err := hexutil.Decode("0x" + digits)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", s, err)
	}
	return b, nil
}

// ToEthAddress parses a 40 digit hex address. Checksum casing is not enforced.
func ToEthAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// ToFactoryInitCode returns the creation-code hash for s. A 32 byte value is
// already a hash and is returned as is; anything longer or shorter is
// treated as the init code itself and hashed.
func ToFactoryInitCode(s string) (common.Hash, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return common.Hash{}, err
	}
	if len(b) == common.HashLength {
		return common.BytesToHash(b), nil
	}
	return crypto.Keccak256Hash(b), nil
}
