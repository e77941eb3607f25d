package pooladdr

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

// Test addresses
var (
	testAddress1 = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testAddress2 = common.HexToAddress("0x2222222222222222222222222222222222222222")
	testAddress3 = common.HexToAddress("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	testAddress4 = common.HexToAddress("0x00000000000000000000000000000000000000ff")
)

func TestValidatePair(t *testing.T) {
	tests := []struct {
		name    string
		a       []byte
		b       []byte
		wantErr error
	}{
		{
			name: "valid pair",
			a:    testAddress1.Bytes(),
			b:    testAddress2.Bytes(),
		},
		{
			name:    "empty first",
			a:       []byte{},
			b:       testAddress2.Bytes(),
			wantErr: ErrInvalidAddressBuffer,
		},
		{
			name:    "short second",
			a:       testAddress1.Bytes(),
			b:       testAddress2.Bytes()[:19],
			wantErr: ErrInvalidAddressBuffer,
		},
		{
			// Length is checked for both operands before the zero check.
			name:    "zero first and long second",
			a:       make([]byte, common.AddressLength),
			b:       append(testAddress2.Bytes(), 0x00),
			wantErr: ErrInvalidAddressBuffer,
		},
		{
			name:    "zero second",
			a:       testAddress1.Bytes(),
			b:       make([]byte, common.AddressLength),
			wantErr: ErrZeroAddress,
		},
		{
			// Zero is reported before identity.
			name:    "both zero",
			a:       make([]byte, common.AddressLength),
			b:       make([]byte, common.AddressLength),
			wantErr: ErrZeroAddress,
		},
		{
			name:    "identical",
			a:       testAddress3.Bytes(),
			b:       testAddress3.Bytes(),
			wantErr: ErrIdenticalAddresses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePair(tt.a, tt.b)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePair() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePair() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidAddressBuffer, "invalid buffer ETH addresses"},
		{ErrZeroAddress, "not accepted zero addresses"},
		{ErrIdenticalAddresses, "not identical addresses"},
		{ErrUnknownExchange, "invalid exchange name"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestSortPair(t *testing.T) {
	tests := []struct {
		name       string
		tokenA     common.Address
		tokenB     common.Address
		wantToken0 common.Address
		wantToken1 common.Address
	}{
		{
			name:       "already sorted",
			tokenA:     testAddress1,
			tokenB:     testAddress2,
			wantToken0: testAddress1,
			wantToken1: testAddress2,
		},
		{
			name:       "needs sorting",
			tokenA:     testAddress2,
			tokenB:     testAddress1,
			wantToken0: testAddress1,
			wantToken1: testAddress2,
		},
		{
			name:       "high bytes sort last",
			tokenA:     testAddress3,
			tokenB:     testAddress2,
			wantToken0: testAddress2,
			wantToken1: testAddress3,
		},
		{
			name:       "most significant byte decides",
			tokenA:     testAddress1,
			tokenB:     testAddress4,
			wantToken0: testAddress4,
			wantToken1: testAddress1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotToken0, gotToken1 := SortPair(tt.tokenA, tt.tokenB)
			if gotToken0 != tt.wantToken0 {
				t.Errorf("SortPair() token0 = %s, want %s", gotToken0.Hex(), tt.wantToken0.Hex())
			}
			if gotToken1 != tt.wantToken1 {
				t.Errorf("SortPair() token1 = %s, want %s", gotToken1.Hex(), tt.wantToken1.Hex())
			}
		})
	}
}
