package core

import "testing"

func seededPool(t *testing.T, l *MemLedger, cfg PoolConfig, provider Address, x, y uint64) {
	t.Helper()
	l.Credit(cfg.TokenX, provider, x)
	l.Credit(cfg.TokenY, provider, y)
	if _, err := Provide(l, cfg, provider, x, y, nil, nil); err != nil {
		t.Fatalf("seed provide failed: %v", err)
	}
}

// TestSwapXForY exercises S3's literal figures.
func TestSwapXForY(t *testing.T) {
	l := NewMemLedger(nil)
	cfg := newTestPool(l)
	var provider Address
	provider[0] = 1
	seededPool(t, l, cfg, provider, 5, 15)

	l.Credit(cfg.TokenX, provider, 32) // enough to cover the swap's input leg
	res, err := Swap(l, cfg, provider, 13, SwapXForY, nil, nil)
	if err != nil {
		t.Fatalf("Swap failed: %v", err)
	}
	if res.InAmount != 32 {
		t.Fatalf("InAmount = %d, want 32", res.InAmount)
	}
	if res.FeeAmount != 0 {
		t.Fatalf("FeeAmount = %d, want 0", res.FeeAmount)
	}
}

// TestSwapOverBuyRejected checks the destination-reserve bound.
func TestSwapOverBuyRejected(t *testing.T) {
	l := NewMemLedger(nil)
	cfg := newTestPool(l)
	var provider Address
	provider[0] = 1
	seededPool(t, l, cfg, provider, 5, 15)

	_, err := Swap(l, cfg, provider, 15, SwapXForY, nil, nil)
	if err != ErrOverBuy {
		t.Fatalf("expected ErrOverBuy, got %v", err)
	}
}

// TestSwapTooMuchBuyRejected checks the up-front in+fee balance check
// (open question 2's preferred behaviour).
func TestSwapTooMuchBuyRejected(t *testing.T) {
	l := NewMemLedger(nil)
	cfg := newTestPool(l)
	var provider Address
	provider[0] = 1
	seededPool(t, l, cfg, provider, 500_000, 750_000)

	// provider already holds 0 of TokenX beyond what's left after
	// seeding; request a swap whose cost exceeds their remaining balance.
	_, err := Swap(l, cfg, provider, 250_000, SwapXForY, nil, nil)
	if err != ErrTooMuchBuy {
		t.Fatalf("expected ErrTooMuchBuy, got %v", err)
	}
}

// TestSwapYForXSymmetric exercises the reverse direction (S8).
func TestSwapYForXSymmetric(t *testing.T) {
	l := NewMemLedger(nil)
	cfg := newTestPool(l)
	var provider Address
	provider[0] = 1
	seededPool(t, l, cfg, provider, 500_000, 750_000)

	l.Credit(cfg.TokenY, provider, 1_000_000)
	res, err := Swap(l, cfg, provider, 100_000, SwapYForX, nil, nil)
	if err != nil {
		t.Fatalf("Swap failed: %v", err)
	}
	wantIn := SwapInputPrice(100_000, 750_000, 500_000)
	if res.InAmount != wantIn {
		t.Fatalf("InAmount = %d, want %d", res.InAmount, wantIn)
	}
}

// TestConstantProductNonDecreasing checks invariant 4: reserve product
// never decreases across a swap, since fees are diverted to a separate
// vault rather than paid out of the pool.
func TestConstantProductNonDecreasing(t *testing.T) {
	l := NewMemLedger(nil)
	cfg := newTestPool(l)
	var provider Address
	provider[0] = 1
	seededPool(t, l, cfg, provider, 500_000, 750_000)

	before := l.Balance(cfg.TokenX, cfg.VaultX) * l.Balance(cfg.TokenY, cfg.VaultY)

	l.Credit(cfg.TokenX, provider, 500_000)
	if _, err := Swap(l, cfg, provider, 100_000, SwapXForY, nil, nil); err != nil {
		t.Fatalf("Swap failed: %v", err)
	}

	after := l.Balance(cfg.TokenX, cfg.VaultX) * l.Balance(cfg.TokenY, cfg.VaultY)
	if after < before {
		t.Fatalf("reserve product decreased: before=%d after=%d", before, after)
	}
}
