package core

// kernel.go – pure arithmetic for the constant-product pool.
//
// Every function here is deterministic integer math: intermediate
// products that could overflow a uint64 are carried through math/big so
// results never depend on floating-point rounding behaviour. Division is
// always floor (Go's integer division already truncates toward zero, and
// every operand here is non-negative).

import "math/big"

// InitialLP returns the LP minted for the first deposit into an empty
// pool: floor(sqrt(x*y)). Callers must ensure x > 0 and y > 0.
func InitialLP(x, y uint64) uint64 {
	prod := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
	return new(big.Int).Sqrt(prod).Uint64()
}

// IncrementalLP returns the LP minted for a deposit into a non-empty
// pool. postX and postY are the reserves after the deposit transfers
// landed; x and y are the deposited amounts; supply is the LP supply
// before minting.
func IncrementalLP(x, y, postX, postY, supply uint64) uint64 {
	preX := postX - x
	preY := postY - y
	fromX := mulDiv(x, supply, preX)
	fromY := mulDiv(y, supply, preY)
	if fromX < fromY {
		return fromX
	}
	return fromY
}

// SlippageWithinTolerance reports whether the reserve ratio moved by at
// most toleranceBps (basis points) across a deposit. preX/preY are the
// reserves before the deposit; postX/postY are the reserves after.
func SlippageWithinTolerance(preX, preY, postX, postY uint64, toleranceBps uint64) bool {
	// |1 - r_post/r_pre| <= tolerance  <=>  |postX*preY - preX*postY| * 10000 <= tolerance * preX*postY
	lhs := new(big.Int).Mul(new(big.Int).SetUint64(postX), new(big.Int).SetUint64(preY))
	rhs := new(big.Int).Mul(new(big.Int).SetUint64(preX), new(big.Int).SetUint64(postY))
	diff := new(big.Int).Sub(lhs, rhs)
	diff.Abs(diff)
	diff.Mul(diff, big.NewInt(10_000))
	bound := new(big.Int).Mul(rhs, new(big.Int).SetUint64(toleranceBps))
	return diff.Cmp(bound) <= 0
}

// SwapInputPrice returns the input amount required to buy `out` units of
// the destination token from a pool with reserves (rIn, rOut). Callers
// must ensure out < rOut.
func SwapInputPrice(out, rIn, rOut uint64) uint64 {
	return mulDiv(out, rIn, rOut-out)
}

// SwapFee returns the 0.3% input-side fee for a swap of the given input
// amount.
func SwapFee(in uint64) uint64 {
	return mulDiv(in, FeeBps, 10_000)
}

// RedemptionSplit returns the (x, y) a user receives for burning lp out
// of a total supply of S against reserves (X, Y). Returns (0, 0) if
// supply is 0.
func RedemptionSplit(lp, supply, x, y uint64) (uint64, uint64) {
	if supply == 0 {
		return 0, 0
	}
	return mulDiv(lp, x, supply), mulDiv(lp, y, supply)
}

// FeeEntitlement returns a user's total lifetime entitlement to a fee
// asset: floor((vault + paid) * lpBalance / supply). Returns 0 if supply
// is 0 (no LP has ever been minted, so no entitlement can exist).
func FeeEntitlement(lpBalance, supply, vault, paid uint64) uint64 {
	if supply == 0 {
		return 0
	}
	total := vault + paid
	return mulDiv(total, lpBalance, supply)
}

// SaturatingSub returns a-b, or 0 if the subtraction would underflow.
func SaturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// mulDiv computes floor(a*b/d) using a 128-bit-equivalent intermediate
// product so callers never see uint64 overflow on the multiplication.
func mulDiv(a, b, d uint64) uint64 {
	prod := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	prod.Div(prod, new(big.Int).SetUint64(d))
	return prod.Uint64()
}
