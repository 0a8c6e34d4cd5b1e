package core

import "testing"

// TestRequestEncodeDecodeProvide round-trips the ProvideLiquidity framing.
func TestRequestEncodeDecodeProvide(t *testing.T) {
	r := Request{Tag: TagProvideLiquidity, XAmount: 5, YAmount: 15}
	enc := r.Encode()
	if len(enc) != 17 {
		t.Fatalf("encoded length = %d, want 17", len(enc))
	}
	if enc[0] != 0 {
		t.Fatalf("discriminant = %d, want 0", enc[0])
	}
	got, err := DecodeRequest(enc)
	if err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}
	if got.Tag != r.Tag || got.XAmount != r.XAmount || got.YAmount != r.YAmount {
		t.Fatalf("round trip = %+v, want tag/x/y = %d/%d/%d", got, r.Tag, r.XAmount, r.YAmount)
	}
}

// TestRequestEncodeDecodeSwapAndWithdraw covers the single-amount
// variants and their discriminants.
func TestRequestEncodeDecodeSwapAndWithdraw(t *testing.T) {
	for _, tc := range []struct {
		tag  RequestTag
		want byte
	}{
		{TagSwapTokens, 1},
		{TagWithdrawLiquidity, 2},
	} {
		r := Request{Tag: tc.tag, Amount: 42}
		enc := r.Encode()
		if enc[0] != tc.want {
			t.Fatalf("tag %d discriminant = %d, want %d", tc.tag, enc[0], tc.want)
		}
		got, err := DecodeRequest(enc)
		if err != nil {
			t.Fatalf("DecodeRequest failed: %v", err)
		}
		if got.Amount != 42 {
			t.Fatalf("Amount = %d, want 42", got.Amount)
		}
	}
}

// TestRequestEncodeDecodeWithdrawFee covers the empty-payload variant.
func TestRequestEncodeDecodeWithdrawFee(t *testing.T) {
	r := Request{Tag: TagWithdrawFee}
	enc := r.Encode()
	if len(enc) != 1 || enc[0] != 3 {
		t.Fatalf("encoded = %v, want [3]", enc)
	}
	if _, err := DecodeRequest(enc); err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}
}

// TestDecodeRequestRejectsWrongLength covers malformed payload lengths.
func TestDecodeRequestRejectsWrongLength(t *testing.T) {
	if _, err := DecodeRequest([]byte{0, 1, 2}); err == nil {
		t.Fatalf("expected error for undersized provide_liquidity payload")
	}
	if _, err := DecodeRequest([]byte{3, 1}); err == nil {
		t.Fatalf("expected error for non-empty withdraw_fee payload")
	}
}

// TestDeriveSwapDirection checks both orderings resolve and a mismatched
// pair is rejected.
func TestDeriveSwapDirection(t *testing.T) {
	var cfg PoolConfig
	cfg.VaultX[0] = 0x10
	cfg.VaultY[0] = 0x11

	if dir, err := DeriveSwapDirection(cfg, cfg.VaultX, cfg.VaultY); err != nil || dir != SwapXForY {
		t.Fatalf("DeriveSwapDirection(X,Y) = %v,%v want SwapXForY,nil", dir, err)
	}
	if dir, err := DeriveSwapDirection(cfg, cfg.VaultY, cfg.VaultX); err != nil || dir != SwapYForX {
		t.Fatalf("DeriveSwapDirection(Y,X) = %v,%v want SwapYForX,nil", dir, err)
	}
	var bogus Address
	bogus[0] = 0xFF
	if _, err := DeriveSwapDirection(cfg, bogus, cfg.VaultY); err != ErrWrongWithdraw {
		t.Fatalf("expected ErrWrongWithdraw for mismatched vault, got %v", err)
	}
}
