package main

import (
	"encoding/hex"
	"fmt"

	"github.com/ammforge/liquiditycore/core"
)

// parseAddr decodes a hex string into an Address, left-padding with
// zero bytes if fewer than 20 bytes were given so short seeds like
// "00" (used as a throwaway program identifier in examples) still
// parse.
func parseAddr(s string) (core.Address, error) {
	var addr core.Address
	b, err := hex.DecodeString(s)
	if err != nil {
		return addr, fmt.Errorf("decode hex: %w", err)
	}
	if len(b) > len(addr) {
		return addr, fmt.Errorf("address has %d bytes, want at most %d", len(b), len(addr))
	}
	copy(addr[len(addr)-len(b):], b)
	return addr, nil
}
