package core

// pool.go – PoolConfig: the immutable identities a request carries on
// every call. Not persisted by the core; the caller (CLI/server request
// assembly, out of scope here) supplies it fresh each time.

// PoolConfig identifies the accounts a pool operation touches. It is
// immutable after setup and is never written to durable state by the
// core itself.
type PoolConfig struct {
	ID        PoolID
	TokenX    TokenID
	TokenY    TokenID
	VaultX    Address
	VaultY    Address
	LPMint    TokenID
	FeeVaultX Address
	FeeVaultY Address
	Admin     Address
	ProgramID Address
}
