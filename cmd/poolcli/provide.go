package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ammforge/liquiditycore/core"
)

var (
	provideUser string
	provideXIn  uint64
	provideYIn  uint64
)

var provideCmd = &cobra.Command{
	Use:   "provide",
	Short: "Deposit tokens into the pool and mint LP shares",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger := loadLedger()
		cfg := poolConfig()
		user := mustAddr(provideUser)

		result, err := core.Provide(ledger, cfg, user, provideXIn, provideYIn, metrics, log)
		if err != nil {
			return fmt.Errorf("provide: %w", err)
		}
		saveLedger(ledger)
		return printJSON(result)
	},
}

func init() {
	provideCmd.Flags().StringVar(&provideUser, "user", "", "hex-encoded 20-byte depositor address")
	provideCmd.Flags().Uint64Var(&provideXIn, "x-in", 0, "amount of token X to deposit")
	provideCmd.Flags().Uint64Var(&provideYIn, "y-in", 0, "amount of token Y to deposit")
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
