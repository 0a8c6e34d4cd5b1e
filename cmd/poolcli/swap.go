package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ammforge/liquiditycore/core"
)

var (
	swapUser string
	swapOut  uint64
	swapFrom string
	swapTo   string
)

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Buy an exact amount of one token by spending the other",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger := loadLedger()
		cfg := poolConfig()
		user := mustAddr(swapUser)

		direction, err := core.DeriveSwapDirection(cfg, mustAddr(swapFrom), mustAddr(swapTo))
		if err != nil {
			return fmt.Errorf("derive swap direction: %w", err)
		}

		result, err := core.Swap(ledger, cfg, user, swapOut, direction, metrics, log)
		if err != nil {
			return fmt.Errorf("swap: %w", err)
		}
		saveLedger(ledger)
		return printJSON(result)
	},
}

func init() {
	swapCmd.Flags().StringVar(&swapUser, "user", "", "hex-encoded 20-byte trader address")
	swapCmd.Flags().Uint64Var(&swapOut, "out-amount", 0, "exact amount of the destination token to receive")
	swapCmd.Flags().StringVar(&swapFrom, "from-vault", "", "hex-encoded vault address the trader sends into (vault-x or vault-y)")
	swapCmd.Flags().StringVar(&swapTo, "to-vault", "", "hex-encoded vault address the trader receives from (vault-x or vault-y)")
}
