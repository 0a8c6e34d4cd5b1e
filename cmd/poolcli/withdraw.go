package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ammforge/liquiditycore/core"
)

var (
	withdrawUser string
	withdrawLP   uint64
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Redeem LP shares for a proportional share of the pool reserves",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger := loadLedger()
		cfg := poolConfig()
		user := mustAddr(withdrawUser)

		result, err := core.Withdraw(ledger, cfg, user, withdrawLP, metrics, log)
		if err != nil {
			return fmt.Errorf("withdraw: %w", err)
		}
		saveLedger(ledger)
		return printJSON(result)
	},
}

func init() {
	withdrawCmd.Flags().StringVar(&withdrawUser, "user", "", "hex-encoded 20-byte LP holder address")
	withdrawCmd.Flags().Uint64Var(&withdrawLP, "lp", 0, "amount of LP shares to redeem")
}
