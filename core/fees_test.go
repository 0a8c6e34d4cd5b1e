package core

import "testing"

func newTestPool(l *MemLedger) PoolConfig {
	var cfg PoolConfig
	cfg.ID = 1
	cfg.TokenX, cfg.TokenY, cfg.LPMint = 1, 2, 3
	cfg.VaultX[0], cfg.VaultY[0] = 0x10, 0x11
	cfg.FeeVaultX[0], cfg.FeeVaultY[0] = 0x20, 0x21
	cfg.ProgramID[0] = 0x99
	return cfg
}

// TestDistributeFeesFullOwnership exercises S4: a sole LP holder claims
// the entire fee-vault balance.
func TestDistributeFeesFullOwnership(t *testing.T) {
	l := NewMemLedger(nil)
	cfg := newTestPool(l)
	var user Address
	user[0] = 1

	if err := l.Mint(cfg.LPMint, user, 100); err != nil {
		t.Fatalf("seed mint failed: %v", err)
	}
	l.Credit(cfg.TokenX, cfg.FeeVaultX, 750)

	dx, dy, err := DistributeFees(l, cfg, user, user, user, nil, nil)
	if err != nil {
		t.Fatalf("DistributeFees failed: %v", err)
	}
	if dx != 750 || dy != 0 {
		t.Fatalf("dx,dy = %d,%d want 750,0", dx, dy)
	}
	if bal := l.Balance(cfg.TokenX, user); bal != 750 {
		t.Fatalf("user X balance = %d, want 750", bal)
	}
}

// TestDistributeFeesIdempotent exercises S5: a second call with no new
// fees moves nothing.
func TestDistributeFeesIdempotent(t *testing.T) {
	l := NewMemLedger(nil)
	cfg := newTestPool(l)
	var user Address
	user[0] = 1
	if err := l.Mint(cfg.LPMint, user, 100); err != nil {
		t.Fatalf("seed mint failed: %v", err)
	}
	l.Credit(cfg.TokenX, cfg.FeeVaultX, 750)

	if _, _, err := DistributeFees(l, cfg, user, user, user, nil, nil); err != nil {
		t.Fatalf("first DistributeFees failed: %v", err)
	}
	dx, dy, err := DistributeFees(l, cfg, user, user, user, nil, nil)
	if err != nil {
		t.Fatalf("second DistributeFees failed: %v", err)
	}
	if dx != 0 || dy != 0 {
		t.Fatalf("second call dx,dy = %d,%d want 0,0", dx, dy)
	}
}

// TestDistributeFeesProportionalSplit exercises two LP holders sharing
// a fee vault in proportion to their LP balance (supplements S1-S6).
func TestDistributeFeesProportionalSplit(t *testing.T) {
	l := NewMemLedger(nil)
	cfg := newTestPool(l)
	var a, b Address
	a[0], b[0] = 1, 2

	if err := l.Mint(cfg.LPMint, a, 75); err != nil {
		t.Fatalf("mint a failed: %v", err)
	}
	if err := l.Mint(cfg.LPMint, b, 25); err != nil {
		t.Fatalf("mint b failed: %v", err)
	}
	l.Credit(cfg.TokenX, cfg.FeeVaultX, 1000)

	dxA, _, err := DistributeFees(l, cfg, a, a, a, nil, nil)
	if err != nil {
		t.Fatalf("distribute a failed: %v", err)
	}
	if dxA != 750 {
		t.Fatalf("dxA = %d, want 750", dxA)
	}

	dxB, _, err := DistributeFees(l, cfg, b, b, b, nil, nil)
	if err != nil {
		t.Fatalf("distribute b failed: %v", err)
	}
	if dxB != 250 {
		t.Fatalf("dxB = %d, want 250", dxB)
	}

	// A's later call, with no new fees, must not re-pay their share.
	dxA2, _, err := DistributeFees(l, cfg, a, a, a, nil, nil)
	if err != nil {
		t.Fatalf("second distribute a failed: %v", err)
	}
	if dxA2 != 0 {
		t.Fatalf("dxA2 = %d, want 0 (non-retroactive / idempotent)", dxA2)
	}
}
