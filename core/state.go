package core

// state.go – the two derived state records (TotalCommission and
// per-user WithdrawnFee) and their deterministic addressing.
//
// Record layout mirrors the source program's account layout: both
// kinds share one 16-byte, two-little-endian-uint64 encoding, since
// original_source/src/state.rs stores WithdrawedFee and TotalCommision
// as the same shape ({paid_x, paid_y} and {total_x_commision,
// total_y_commision} respectively).

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// Record is the on-disk shape of both TotalCommission and
// WithdrawnFee[user]: a pair of cumulative paid-out amounts.
type Record struct {
	X uint64
	Y uint64
}

// Encode returns the stable 16-byte little-endian encoding of r.
func (r Record) Encode() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[0:8], r.X)
	binary.LittleEndian.PutUint64(buf[8:16], r.Y)
	return buf
}

// DecodeRecord parses the 16-byte encoding produced by Record.Encode.
// It rejects any payload whose length does not match.
func DecodeRecord(payload []byte) (Record, error) {
	if len(payload) != 16 {
		return Record{}, fmt.Errorf("state record: want 16 bytes, got %d", len(payload))
	}
	return Record{
		X: binary.LittleEndian.Uint64(payload[0:8]),
		Y: binary.LittleEndian.Uint64(payload[8:16]),
	}, nil
}

// DeriveTotalCommission returns the deterministic address of a pool's
// TotalCommission record, derived from the pool's own identity plus the
// fixed domain tag, mirroring derive(seeds, program_id) over
// [program_id.bytes, "liquidity pool".bytes].
func DeriveTotalCommission(programID Address) Address {
	return derive(programID[:])
}

// DeriveWithdrawnFee returns the deterministic address of a user's
// WithdrawnFee record, derived from the user's identity plus the same
// domain tag, mirroring derive(seeds, program_id) over
// [user.bytes, "liquidity pool".bytes].
func DeriveWithdrawnFee(user Address) Address {
	return derive(user[:])
}

// derive reproduces the seed-plus-domain-tag derivation scheme without
// depending on any particular host's PDA bump-seed search: the host's
// program-derived-address convention is abstracted away per this core's
// scope, so a plain keyed hash stands in for it. The digest is kept at
// its full 32-byte Hash width before being truncated to an Address, the
// same last-20-bytes convention go-ethereum uses for PubkeyToAddress.
func derive(seed []byte) Address {
	h := digest(seed)
	var a Address
	copy(a[:], h[len(h)-len(a):])
	return a
}

// digest returns the 32-byte Keccak256 hash of seed concatenated with
// the pool's domain tag.
func digest(seed []byte) Hash {
	return Hash(crypto.Keccak256Hash(seed, []byte(PoolSeed)))
}

// State provides load/save/ensure access to the two record kinds. The
// Ledger interface in ledger.go embeds State, so every Ledger
// implementation provides these methods alongside the token-movement
// ones.
type State interface {
	// Load returns the record at addr, or (Record{}, false) if empty.
	Load(addr Address) (Record, bool)
	// Save persists rec at addr.
	Save(addr Address, rec Record) error
	// Ensure returns the record at addr, allocating it with def and
	// persisting that default first if the slot was empty.
	Ensure(addr Address, def Record) (Record, error)
}
