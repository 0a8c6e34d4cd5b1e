package main

import (
	"github.com/spf13/cobra"
)

var poolInfoCmd = &cobra.Command{
	Use:   "pool-info",
	Short: "Print the pool's current reserves, LP supply and fee-vault balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger := loadLedger()
		cfg := poolConfig()

		view := struct {
			ReserveX  uint64 `json:"reserve_x"`
			ReserveY  uint64 `json:"reserve_y"`
			LPSupply  uint64 `json:"lp_supply"`
			FeeVaultX uint64 `json:"fee_vault_x"`
			FeeVaultY uint64 `json:"fee_vault_y"`
		}{
			ReserveX:  ledger.Balance(cfg.TokenX, cfg.VaultX),
			ReserveY:  ledger.Balance(cfg.TokenY, cfg.VaultY),
			LPSupply:  ledger.Supply(cfg.LPMint),
			FeeVaultX: ledger.Balance(cfg.TokenX, cfg.FeeVaultX),
			FeeVaultY: ledger.Balance(cfg.TokenY, cfg.FeeVaultY),
		}
		return printJSON(view)
	},
}
