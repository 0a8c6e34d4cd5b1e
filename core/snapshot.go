package core

// snapshot.go – JSON persistence for MemLedger, so the poolcli/poolserver
// binaries can survive across process invocations without a real
// database. Grounded on core/liquidity_pools.go's ledger.Snapshot
// transactional wrapper: here the whole ledger state round-trips through
// one JSON blob rather than a WAL, since this core has no durability
// requirements of its own (that's explicitly the host's job).

import (
	"encoding/hex"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

type ledgerSnapshot struct {
	Balances map[TokenID]map[string]uint64 `json:"balances"`
	Supply   map[TokenID]uint64            `json:"supply"`
	Records  map[string]Record   `json:"records"`
}

// Snapshot serializes the ledger's full state to JSON.
func (l *MemLedger) Snapshot() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := ledgerSnapshot{
		Balances: make(map[TokenID]map[string]uint64, len(l.balances)),
		Supply:   l.supply,
		Records:  make(map[string]Record, len(l.records)),
	}
	for tid, bal := range l.balances {
		m := make(map[string]uint64, len(bal))
		for addr, amount := range bal {
			m[hex.EncodeToString(addr[:])] = amount
		}
		snap.Balances[tid] = m
	}
	for addr, rec := range l.records {
		snap.Records[hex.EncodeToString(addr[:])] = rec
	}
	return json.MarshalIndent(snap, "", "  ")
}

// LoadMemLedger reconstructs a MemLedger from a blob produced by
// Snapshot. A nil or empty blob yields an empty ledger.
func LoadMemLedger(data []byte, log *logrus.Logger) (*MemLedger, error) {
	l := NewMemLedger(log)
	if len(data) == 0 {
		return l, nil
	}

	var snap ledgerSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	for tid, bal := range snap.Balances {
		m := make(map[Address]uint64, len(bal))
		for hexAddr, amount := range bal {
			addr, err := decodeAddressHex(hexAddr)
			if err != nil {
				return nil, err
			}
			m[addr] = amount
		}
		l.balances[tid] = m
	}
	if snap.Supply != nil {
		l.supply = snap.Supply
	}
	for hexAddr, rec := range snap.Records {
		addr, err := decodeAddressHex(hexAddr)
		if err != nil {
			return nil, err
		}
		l.records[addr] = rec
	}
	return l, nil
}

func decodeAddressHex(s string) (Address, error) {
	var addr Address
	b, err := hex.DecodeString(s)
	if err != nil {
		return addr, err
	}
	copy(addr[:], b)
	return addr, nil
}
