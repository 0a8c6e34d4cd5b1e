package core

import "testing"

// TestSnapshotRoundTrip verifies that a ledger's balances, supply and
// fee records all survive a Snapshot/LoadMemLedger cycle.
func TestSnapshotRoundTrip(t *testing.T) {
	l := NewMemLedger(nil)
	var tokenX TokenID = 1
	var user Address
	user[0] = 0xAA
	l.Credit(tokenX, user, 500)
	if err := l.Mint(tokenX, user, 250); err != nil {
		t.Fatalf("Mint failed: %v", err)
	}
	addr := DeriveWithdrawnFee(user)
	if err := l.Save(addr, Record{X: 7, Y: 9}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := l.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	l2, err := LoadMemLedger(data, nil)
	if err != nil {
		t.Fatalf("LoadMemLedger failed: %v", err)
	}
	if got := l2.Balance(tokenX, user); got != 750 {
		t.Fatalf("Balance after reload = %d, want 750", got)
	}
	if got := l2.Supply(tokenX); got != 250 {
		t.Fatalf("Supply after reload = %d, want 250", got)
	}
	rec, ok := l2.Load(addr)
	if !ok || rec.X != 7 || rec.Y != 9 {
		t.Fatalf("Load after reload = %+v,%v want {7 9},true", rec, ok)
	}
}

// TestLoadMemLedgerEmptyBlob confirms an empty snapshot yields a usable
// empty ledger rather than an error.
func TestLoadMemLedgerEmptyBlob(t *testing.T) {
	l, err := LoadMemLedger(nil, nil)
	if err != nil {
		t.Fatalf("LoadMemLedger(nil) failed: %v", err)
	}
	var addr Address
	if bal := l.Balance(1, addr); bal != 0 {
		t.Fatalf("Balance on empty ledger = %d, want 0", bal)
	}
}
