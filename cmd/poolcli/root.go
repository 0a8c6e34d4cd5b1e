// Command poolcli is a command-line front end for the liquidity pool
// core: each operation subcommand loads a ledger snapshot from disk,
// applies one operation, and writes the updated snapshot back out;
// pool-info only reads the snapshot. Grounded on
// cmd/cli/liquidity_pools.go's command-per-operation structure.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ammforge/liquiditycore/core"
)

var (
	log     = logrus.StandardLogger()
	metrics = core.NewPoolMetrics()

	ledgerPath  string
	poolIDFlag  uint32
	tokenXFlag  uint32
	tokenYFlag  uint32
	lpMintFlag  uint32
	vaultXFlag  string
	vaultYFlag  string
	feeXFlag    string
	feeYFlag    string
	adminFlag   string
	programFlag string
)

var rootCmd = &cobra.Command{
	Use:   "poolcli",
	Short: "Inspect and drive a constant-product liquidity pool",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load() // ignore error: .env is optional
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ledgerPath, "ledger", "ledger.json", "path to the ledger snapshot file")
	rootCmd.PersistentFlags().Uint32Var(&poolIDFlag, "pool-id", 1, "pool identifier")
	rootCmd.PersistentFlags().Uint32Var(&tokenXFlag, "token-x", 1, "token X identifier")
	rootCmd.PersistentFlags().Uint32Var(&tokenYFlag, "token-y", 2, "token Y identifier")
	rootCmd.PersistentFlags().Uint32Var(&lpMintFlag, "lp-mint", 3, "LP mint token identifier")
	rootCmd.PersistentFlags().StringVar(&vaultXFlag, "vault-x", "", "hex-encoded 20-byte reserve vault for token X")
	rootCmd.PersistentFlags().StringVar(&vaultYFlag, "vault-y", "", "hex-encoded 20-byte reserve vault for token Y")
	rootCmd.PersistentFlags().StringVar(&feeXFlag, "fee-vault-x", "", "hex-encoded 20-byte fee vault for token X")
	rootCmd.PersistentFlags().StringVar(&feeYFlag, "fee-vault-y", "", "hex-encoded 20-byte fee vault for token Y")
	rootCmd.PersistentFlags().StringVar(&adminFlag, "admin", "", "hex-encoded 20-byte pool admin")
	rootCmd.PersistentFlags().StringVar(&programFlag, "program-id", "00", "hex-encoded pool program identifier seed")

	rootCmd.AddCommand(provideCmd, withdrawCmd, swapCmd, withdrawFeeCmd, poolInfoCmd)
}

func mustAddr(s string) core.Address {
	addr, err := parseAddr(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid address %q: %v\n", s, err)
		os.Exit(1)
	}
	return addr
}

func poolConfig() core.PoolConfig {
	return core.PoolConfig{
		ID:        core.PoolID(poolIDFlag),
		TokenX:    core.TokenID(tokenXFlag),
		TokenY:    core.TokenID(tokenYFlag),
		VaultX:    mustAddr(vaultXFlag),
		VaultY:    mustAddr(vaultYFlag),
		LPMint:    core.TokenID(lpMintFlag),
		FeeVaultX: mustAddr(feeXFlag),
		FeeVaultY: mustAddr(feeYFlag),
		Admin:     mustAddr(adminFlag),
		ProgramID: mustAddr(programFlag),
	}
}

func loadLedger() *core.MemLedger {
	data, err := os.ReadFile(ledgerPath)
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "read ledger: %v\n", err)
		os.Exit(1)
	}
	ledger, err := core.LoadMemLedger(data, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load ledger: %v\n", err)
		os.Exit(1)
	}
	return ledger
}

func saveLedger(ledger *core.MemLedger) {
	data, err := ledger.Snapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapshot ledger: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(ledgerPath, data, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "write ledger: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
