package core

// types.go – shared identifiers for the liquidity pool core.
//
// Only depends on go-ethereum's common package for address interop. Pool storage and arithmetic live in the other files of this
// package.

import (
	"github.com/ethereum/go-ethereum/common"
)

// Address identifies a token account, user, or derived state record.
type Address [20]byte

// FromCommon converts a go-ethereum address into our 20-byte Address.
func FromCommon(a common.Address) Address {
	var out Address
	copy(out[:], a.Bytes())
	return out
}

// Common converts Address back to a go-ethereum common.Address.
func (a Address) Common() common.Address {
	return common.BytesToAddress(a[:])
}

// Hash is a 32-byte digest, used for derived-record addressing.
type Hash [32]byte

// TokenID identifies a fungible asset known to the Ledger.
type TokenID uint32

// PoolID identifies a single two-asset pool.
type PoolID uint32

// Domain constants from the request/account-derivation scheme.
const (
	// FeeBps is the swap fee, 0.30% of the input amount.
	FeeBps = 30
	// SlippageToleranceBps bounds how much a non-initial provide may move
	// the reserve ratio, expressed in basis points (100 = 1%).
	SlippageToleranceBps = 100
	// PoolSeed is the fixed domain tag mixed into every derived address.
	PoolSeed = "liquidity pool"
)
