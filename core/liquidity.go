package core

// liquidity.go – Liquidity Manager: provide and withdraw.
//
// Mirrors the transfer-then-mint/burn ordering of a Snapshot-wrapped
// ledger update, except this core returns an error with no partial
// state persisted rather than rolling one back, per the "single atomic
// host transaction" model this package assumes its caller provides.
// Step ordering against fee settlement follows
// original_source/src/processor.rs's provide_liquidity/
// withdraw_liquidity.

import "github.com/sirupsen/logrus"

// ProvideResult reports the outcome of a successful Provide call.
type ProvideResult struct {
	Minted    uint64
	SettledDX uint64
	SettledDY uint64
}

// Provide implements provide(user, x_in, y_in) from the Liquidity
// Manager: it transfers the deposit into the reserve vaults, mints LP
// proportional to the post-transfer reserves, and advances the user's
// fee high-water mark so they cannot retroactively claim fees accrued
// before this deposit.
//
// Step order mirrors the source exactly: transfer, read post-transfer
// reserves, mint-amount/slippage decision, settle existing fee claim,
// mint LP, then overwrite WithdrawnFee[user] with the entitlement at
// the user's NEW LP balance (the non-retroactivity rule).
func Provide(ledger Ledger, cfg PoolConfig, user Address, xIn, yIn uint64, metrics *PoolMetrics, log *logrus.Logger) (ProvideResult, error) {
	if xIn == 0 || yIn == 0 {
		return ProvideResult{}, ErrZeroProvide
	}
	if ledger.Balance(cfg.TokenX, user) < xIn || ledger.Balance(cfg.TokenY, user) < yIn {
		return ProvideResult{}, ErrOverProvide
	}

	if err := ledger.Transfer(cfg.TokenX, user, cfg.VaultX, xIn); err != nil {
		return ProvideResult{}, err
	}
	if err := ledger.Transfer(cfg.TokenY, user, cfg.VaultY, yIn); err != nil {
		return ProvideResult{}, err
	}

	postX := ledger.Balance(cfg.TokenX, cfg.VaultX)
	postY := ledger.Balance(cfg.TokenY, cfg.VaultY)
	supply := ledger.Supply(cfg.LPMint)

	var minted uint64
	if supply == 0 {
		minted = InitialLP(xIn, yIn)
	} else {
		preX, preY := postX-xIn, postY-yIn
		if !SlippageWithinTolerance(preX, preY, postX, postY, SlippageToleranceBps) {
			return ProvideResult{}, ErrSlippageFail
		}
		minted = IncrementalLP(xIn, yIn, postX, postY, supply)
	}

	dx, dy, err := DistributeFees(ledger, cfg, user, user, user, metrics, log)
	if err != nil {
		return ProvideResult{}, err
	}

	if err := ledger.Mint(cfg.LPMint, user, minted); err != nil {
		return ProvideResult{}, err
	}

	// Non-retroactivity: recompute the user's entitlement against their
	// NEW LP balance and overwrite WithdrawnFee[user] verbatim, so the
	// deposit just made advances their high-water mark over any fees
	// that accrued before it, rather than letting them claim those fees
	// on a later call.
	if err := settleAtCurrentBalance(ledger, cfg, user); err != nil {
		return ProvideResult{}, err
	}

	if metrics != nil {
		metrics.RecordProvide(cfg.ID)
	}
	if log != nil {
		log.WithFields(logrus.Fields{"pool": cfg.ID, "user": user, "minted": minted}).Info("liquidity provided")
	}
	return ProvideResult{Minted: minted, SettledDX: dx, SettledDY: dy}, nil
}

// WithdrawResult reports the outcome of a successful Withdraw call.
type WithdrawResult struct {
	XOut uint64
	YOut uint64
}

// Withdraw implements withdraw(user, lp_amount) from the Liquidity
// Manager: it redeems lp_amount of LP for a proportional share of
// current reserves (computed pre-burn), settles the user's outstanding
// fee claim, burns the LP, then transfers the redeemed reserves out.
func Withdraw(ledger Ledger, cfg PoolConfig, user Address, lpAmount uint64, metrics *PoolMetrics, log *logrus.Logger) (WithdrawResult, error) {
	if ledger.Balance(cfg.LPMint, user) < lpAmount {
		return WithdrawResult{}, ErrOverWithdraw
	}

	supply := ledger.Supply(cfg.LPMint)
	x := ledger.Balance(cfg.TokenX, cfg.VaultX)
	y := ledger.Balance(cfg.TokenY, cfg.VaultY)
	xOut, yOut := RedemptionSplit(lpAmount, supply, x, y)

	if _, _, err := DistributeFees(ledger, cfg, user, user, user, metrics, log); err != nil {
		return WithdrawResult{}, err
	}

	if err := ledger.Burn(cfg.LPMint, user, lpAmount); err != nil {
		return WithdrawResult{}, err
	}

	if err := ledger.Transfer(cfg.TokenX, cfg.VaultX, user, xOut); err != nil {
		return WithdrawResult{}, err
	}
	if err := ledger.Transfer(cfg.TokenY, cfg.VaultY, user, yOut); err != nil {
		return WithdrawResult{}, err
	}

	if metrics != nil {
		metrics.RecordWithdraw(cfg.ID)
	}
	if log != nil {
		log.WithFields(logrus.Fields{"pool": cfg.ID, "user": user, "lp": lpAmount, "x_out": xOut, "y_out": yOut}).Info("liquidity withdrawn")
	}
	return WithdrawResult{XOut: xOut, YOut: yOut}, nil
}

// settleAtCurrentBalance overwrites WithdrawnFee[user] with the
// entitlement computed against the user's current LP balance, without
// moving any tokens. It is the second half of Provide's non-
// retroactivity step: after minting, the user's high-water mark is set
// to match what they'd be entitled to right now, so a later
// DistributeFees call only ever pays out fees that arrive from here on.
func settleAtCurrentBalance(ledger Ledger, cfg PoolConfig, user Address) error {
	totalAddr := DeriveTotalCommission(cfg.ProgramID)
	userAddr := DeriveWithdrawnFee(user)

	total, err := ledger.Ensure(totalAddr, Record{})
	if err != nil {
		return err
	}
	vx := ledger.Balance(cfg.TokenX, cfg.FeeVaultX)
	vy := ledger.Balance(cfg.TokenY, cfg.FeeVaultY)
	supply := ledger.Supply(cfg.LPMint)
	lpBal := ledger.Balance(cfg.LPMint, user)

	ex := FeeEntitlement(lpBal, supply, vx, total.X)
	ey := FeeEntitlement(lpBal, supply, vy, total.Y)
	return ledger.Save(userAddr, Record{X: ex, Y: ey})
}
