// Command poolserver exposes a read-only JSON view of pool state and a
// Prometheus /metrics endpoint over HTTP. Grounded on cmd/dexserver/
// main.go's JSON pool listing, upgraded from bare net/http routing to
// github.com/go-chi/chi/v5.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/ammforge/liquiditycore/core"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	ledgerPath := flag.String("ledger", "ledger.json", "path to the ledger snapshot file")
	poolIDFlag := flag.Uint("pool-id", 1, "pool identifier")
	tokenXFlag := flag.Uint("token-x", 1, "token X identifier")
	tokenYFlag := flag.Uint("token-y", 2, "token Y identifier")
	lpMintFlag := flag.Uint("lp-mint", 3, "LP mint token identifier")
	vaultXFlag := flag.String("vault-x", "", "hex-encoded 20-byte reserve vault for token X")
	vaultYFlag := flag.String("vault-y", "", "hex-encoded 20-byte reserve vault for token Y")
	feeXFlag := flag.String("fee-vault-x", "", "hex-encoded 20-byte fee vault for token X")
	feeYFlag := flag.String("fee-vault-y", "", "hex-encoded 20-byte fee vault for token Y")
	flag.Parse()

	log := logrus.StandardLogger()

	cfg := core.PoolConfig{
		ID:        core.PoolID(*poolIDFlag),
		TokenX:    core.TokenID(*tokenXFlag),
		TokenY:    core.TokenID(*tokenYFlag),
		VaultX:    parseAddr(*vaultXFlag),
		VaultY:    parseAddr(*vaultYFlag),
		LPMint:    core.TokenID(*lpMintFlag),
		FeeVaultX: parseAddr(*feeXFlag),
		FeeVaultY: parseAddr(*feeYFlag),
	}
	metrics := core.NewPoolMetrics()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestID)

	r.Get("/pool", func(w http.ResponseWriter, req *http.Request) {
		ledger := reloadLedger(*ledgerPath, log)
		metrics.Observe(ledger, cfg)

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
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(view)
	})
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))

	log.WithFields(logrus.Fields{"addr": *addr}).Info("poolserver listening")
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.WithError(err).Fatal("poolserver exited")
	}
}

func reloadLedger(path string, log *logrus.Logger) *core.MemLedger {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		log.WithError(err).Fatal("read ledger snapshot")
	}
	ledger, err := core.LoadMemLedger(data, log)
	if err != nil {
		log.WithError(err).Fatal("decode ledger snapshot")
	}
	return ledger
}

func parseAddr(s string) core.Address {
	var addr core.Address
	b, err := hex.DecodeString(s)
	if err != nil || len(b) > len(addr) {
		return addr
	}
	copy(addr[len(addr)-len(b):], b)
	return addr
}
