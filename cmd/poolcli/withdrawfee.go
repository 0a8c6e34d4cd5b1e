package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ammforge/liquiditycore/core"
)

var withdrawFeeUser string

var withdrawFeeCmd = &cobra.Command{
	Use:   "withdraw-fee",
	Short: "Settle the caller's accrued share of the fee pool without touching LP shares",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger := loadLedger()
		cfg := poolConfig()
		user := mustAddr(withdrawFeeUser)

		dx, dy, err := core.DistributeFees(ledger, cfg, user, user, user, metrics, log)
		if err != nil {
			return fmt.Errorf("withdraw-fee: %w", err)
		}
		saveLedger(ledger)
		return printJSON(struct {
			DX uint64 `json:"dx"`
			DY uint64 `json:"dy"`
		}{dx, dy})
	},
}

func init() {
	withdrawFeeCmd.Flags().StringVar(&withdrawFeeUser, "user", "", "hex-encoded 20-byte LP holder settling their fee claim")
}
