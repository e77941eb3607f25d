// Package pooladdr derives Uniswap-V2-style pair addresses offline.
//
// A pair address is fully determined by its factory, the creation-code hash
// the factory deploys, and the two tokens. Nothing here touches the network.
package pooladdr

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// create2Prefix is the leading byte of every CREATE2 preimage.
const create2Prefix = 0xff

// Salt computes keccak256(low ++ high) for an already sorted pair.
func Salt(low, high common.Address) common.Hash {
	return crypto.Keccak256Hash(low.Bytes(), high.Bytes())
}

// GetMultiChainPoolAddress derives the pair address for a factory given
// directly by the caller, e.g. a deployment on another chain.
func GetMultiChainPoolAddress(factory common.Address, initCodeHash common.Hash, tokenA, tokenB []byte) (common.Address, error) {
	if err := ValidatePair(tokenA, tokenB); err != nil {
		return common.Address{}, err
	}
	token0, token1 := SortPair(common.BytesToAddress(tokenA), common.BytesToAddress(tokenB))
	salt := Salt(token0, token1)

	// keccak256(0xff ++ factory ++ salt ++ initCodeHash)[12:]
	data := make([]byte, 1+common.AddressLength+common.HashLength+common.HashLength)
	data[0] = create2Prefix
	copy(data[1:21], factory.Bytes())
	copy(data[21:53], salt.Bytes())
	copy(data[53:85], initCodeHash.Bytes())

	hash := crypto.Keccak256Hash(data)
	return common.BytesToAddress(hash[12:]), nil
}

// GetPoolAddress derives the pair address for a registered exchange.
// Token validation runs before the exchange lookup.
func GetPoolAddress(exchange string, tokenA, tokenB []byte) (common.Address, error) {
	if err := ValidatePair(tokenA, tokenB); err != nil {
		return common.Address{}, err
	}
	d, err := Lookup(exchange)
	if err != nil {
		return common.Address{}, err
	}
	return GetMultiChainPoolAddress(d.Factory, d.InitCodeHash, tokenA, tokenB)
}
