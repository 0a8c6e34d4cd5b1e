package core

// fees.go – Fee Distributor: settles a user's unclaimed share of the fee
// vaults against their high-water mark, idempotently.
//
// Grounded on original_source/src/processor.rs's withdraw_fee (derive
// the two records, read balances/supply, compute entitlement via
// liquidity_profit, saturating-subtract already-withdrawn amounts,
// update both records, transfer) and core/liquidity_pools.go's
// fee-split/transfer idiom for the surrounding Transfer calls.

import "github.com/sirupsen/logrus"

// DistributeFees settles user's unclaimed fee entitlement: it reads the
// live fee-vault balances and cumulative paid-out totals, computes the
// user's unclaimed share via the entitlement formula, transfers it out
// of the fee vaults, and advances both the pool-wide TotalCommission
// record and the user's WithdrawnFee record.
//
// Calling it twice with no intervening swap yields dx = dy = 0 on the
// second call (idempotence), which is what makes it safe to invoke
// unconditionally as a settle-before-mutate step from Provide and
// Withdraw.
func DistributeFees(ledger Ledger, cfg PoolConfig, user, userXAccount, userYAccount Address, metrics *PoolMetrics, log *logrus.Logger) (dx, dy uint64, err error) {
	totalAddr := DeriveTotalCommission(cfg.ProgramID)
	userAddr := DeriveWithdrawnFee(user)

	total, err := ledger.Ensure(totalAddr, Record{})
	if err != nil {
		return 0, 0, err
	}
	withdrawn, err := ledger.Ensure(userAddr, Record{})
	if err != nil {
		return 0, 0, err
	}

	vx := ledger.Balance(cfg.TokenX, cfg.FeeVaultX)
	vy := ledger.Balance(cfg.TokenY, cfg.FeeVaultY)
	supply := ledger.Supply(cfg.LPMint)
	lpBal := ledger.Balance(cfg.LPMint, user)

	ex := FeeEntitlement(lpBal, supply, vx, total.X)
	ey := FeeEntitlement(lpBal, supply, vy, total.Y)

	// Open question 1: entitlement can fall below the high-water mark if
	// the denominator (supply) shrinks between distributions due to
	// other users burning LP. Saturate to 0 rather than underflow.
	dx = SaturatingSub(ex, withdrawn.X)
	dy = SaturatingSub(ey, withdrawn.Y)

	withdrawn.X += dx
	withdrawn.Y += dy
	total.X += dx
	total.Y += dy

	if err := ledger.Save(userAddr, withdrawn); err != nil {
		return 0, 0, err
	}
	if err := ledger.Save(totalAddr, total); err != nil {
		return 0, 0, err
	}

	// A zero-value transfer is a ledger no-op by the Ledger.Transfer
	// contract, so the idempotent second call issues no movement at all
	// rather than a pair of vacuous transfer instructions.
	if err := ledger.Transfer(cfg.TokenX, cfg.FeeVaultX, userXAccount, dx); err != nil {
		return 0, 0, err
	}
	if err := ledger.Transfer(cfg.TokenY, cfg.FeeVaultY, userYAccount, dy); err != nil {
		return 0, 0, err
	}

	if metrics != nil {
		metrics.RecordFeeDistribution(cfg.ID)
	}
	if log != nil {
		log.WithFields(logrus.Fields{
			"pool": cfg.ID, "user": user, "dx": dx, "dy": dy,
		}).Info("fees distributed")
	}
	return dx, dy, nil
}
