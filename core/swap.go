package core

// swap.go – Swap Engine: swap(user, out_amount, direction).
//
// Grounded on core/liquidity_pools.go's Swap (constant-product math,
// fee split into a separate vault so reserves aren't inflated by fees)
// and original_source/src/processor.rs's swap_tokens/swap_price_define
// for the exact three-transfer ordering (buy, pay, commission) and the
// up-front balance check resolving open question 2.

import "github.com/sirupsen/logrus"

// SwapDirection selects which pair of vaults a swap moves between. The
// source identifies direction by which vault account the caller passes
// as "from" vs "to"; this port keeps it as a first-class enum but a
// request decoder should still derive it from the named vaults (see
// core/requests.go) rather than trust a client-supplied flag.
type SwapDirection int

const (
	// SwapXForY spends TokenX to receive TokenY.
	SwapXForY SwapDirection = iota
	// SwapYForX spends TokenY to receive TokenX.
	SwapYForX
)

// SwapResult reports the outcome of a successful Swap call.
type SwapResult struct {
	InAmount  uint64
	FeeAmount uint64
}

// Swap implements swap(user, out_amount, direction): it buys out_amount
// units of the destination token from the pool under the
// constant-product curve, paying in_amount of the source token plus a
// 0.3% fee, both charged on the input side.
func Swap(ledger Ledger, cfg PoolConfig, user Address, outAmount uint64, direction SwapDirection, metrics *PoolMetrics, log *logrus.Logger) (SwapResult, error) {
	tokenFrom, tokenTo := cfg.TokenX, cfg.TokenY
	poolFrom, poolTo := cfg.VaultX, cfg.VaultY
	feeVaultFrom := cfg.FeeVaultX
	if direction == SwapYForX {
		tokenFrom, tokenTo = cfg.TokenY, cfg.TokenX
		poolFrom, poolTo = cfg.VaultY, cfg.VaultX
		feeVaultFrom = cfg.FeeVaultY
	}

	rOut := ledger.Balance(tokenTo, poolTo)
	rIn := ledger.Balance(tokenFrom, poolFrom)
	if outAmount >= rOut {
		return SwapResult{}, ErrOverBuy
	}

	inAmount := SwapInputPrice(outAmount, rIn, rOut)
	feeAmount := SwapFee(inAmount)

	// Open question 2: check the sum upfront so an undersized balance
	// surfaces as TooMuchBuy rather than failing deep in the fee
	// transfer step.
	if inAmount+feeAmount > ledger.Balance(tokenFrom, user) {
		return SwapResult{}, ErrTooMuchBuy
	}

	if err := ledger.Transfer(tokenTo, poolTo, user, outAmount); err != nil {
		return SwapResult{}, err
	}
	if err := ledger.Transfer(tokenFrom, user, poolFrom, inAmount); err != nil {
		return SwapResult{}, err
	}
	if err := ledger.Transfer(tokenFrom, user, feeVaultFrom, feeAmount); err != nil {
		return SwapResult{}, err
	}

	if metrics != nil {
		metrics.RecordSwap(cfg.ID)
	}
	if log != nil {
		log.WithFields(logrus.Fields{
			"pool": cfg.ID, "user": user, "direction": direction,
			"in": inAmount, "out": outAmount, "fee": feeAmount,
		}).Info("swap executed")
	}
	return SwapResult{InAmount: inAmount, FeeAmount: feeAmount}, nil
}
