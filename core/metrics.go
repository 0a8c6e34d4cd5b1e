package core

// metrics.go – Prometheus instrumentation for pool state, adapted from
// core/system_health_logging.go's HealthLogger (registry + gauges +
// promhttp exposition), retargeted from node/chain health onto pool
// reserves, LP supply, fee-vault balances and operation counts.

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PoolMetrics holds the Prometheus collectors for one running pool
// server process. A single registry backs every pool the process
// serves; per-pool values are distinguished by the "pool" label.
type PoolMetrics struct {
	registry *prometheus.Registry

	reserveX  *prometheus.GaugeVec
	reserveY  *prometheus.GaugeVec
	lpSupply  *prometheus.GaugeVec
	feeVaultX *prometheus.GaugeVec
	feeVaultY *prometheus.GaugeVec

	swaps            *prometheus.CounterVec
	provides         *prometheus.CounterVec
	withdraws        *prometheus.CounterVec
	feeDistributions *prometheus.CounterVec
}

// NewPoolMetrics constructs and registers the full set of collectors
// against a fresh registry.
func NewPoolMetrics() *PoolMetrics {
	reg := prometheus.NewRegistry()
	m := &PoolMetrics{
		registry: reg,
		reserveX: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pool_reserve_x", Help: "Current balance of token X held in the pool vault.",
		}, []string{"pool"}),
		reserveY: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pool_reserve_y", Help: "Current balance of token Y held in the pool vault.",
		}, []string{"pool"}),
		lpSupply: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pool_lp_supply", Help: "Current total LP supply for the pool.",
		}, []string{"pool"}),
		feeVaultX: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pool_fee_vault_x", Help: "Current balance of token X held in the fee vault.",
		}, []string{"pool"}),
		feeVaultY: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pool_fee_vault_y", Help: "Current balance of token Y held in the fee vault.",
		}, []string{"pool"}),
		swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_swaps_total", Help: "Total number of swaps executed.",
		}, []string{"pool"}),
		provides: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_provides_total", Help: "Total number of provide-liquidity operations.",
		}, []string{"pool"}),
		withdraws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_withdraws_total", Help: "Total number of withdraw-liquidity operations.",
		}, []string{"pool"}),
		feeDistributions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_fee_distributions_total", Help: "Total number of fee-distribution settlements.",
		}, []string{"pool"}),
	}
	reg.MustRegister(
		m.reserveX, m.reserveY, m.lpSupply, m.feeVaultX, m.feeVaultY,
		m.swaps, m.provides, m.withdraws, m.feeDistributions,
	)
	return m
}

// Registry exposes the underlying Prometheus registry so a caller can
// wire it into promhttp.HandlerFor.
func (m *PoolMetrics) Registry() *prometheus.Registry { return m.registry }

// Observe snapshots a pool's current reserves, LP supply and fee-vault
// balances into the gauges.
func (m *PoolMetrics) Observe(ledger Ledger, cfg PoolConfig) {
	label := poolLabel(cfg.ID)
	m.reserveX.WithLabelValues(label).Set(float64(ledger.Balance(cfg.TokenX, cfg.VaultX)))
	m.reserveY.WithLabelValues(label).Set(float64(ledger.Balance(cfg.TokenY, cfg.VaultY)))
	m.lpSupply.WithLabelValues(label).Set(float64(ledger.Supply(cfg.LPMint)))
	m.feeVaultX.WithLabelValues(label).Set(float64(ledger.Balance(cfg.TokenX, cfg.FeeVaultX)))
	m.feeVaultY.WithLabelValues(label).Set(float64(ledger.Balance(cfg.TokenY, cfg.FeeVaultY)))
}

// RecordSwap increments the swap counter for a pool.
func (m *PoolMetrics) RecordSwap(pid PoolID) { m.swaps.WithLabelValues(poolLabel(pid)).Inc() }

// RecordProvide increments the provide counter for a pool.
func (m *PoolMetrics) RecordProvide(pid PoolID) { m.provides.WithLabelValues(poolLabel(pid)).Inc() }

// RecordWithdraw increments the withdraw counter for a pool.
func (m *PoolMetrics) RecordWithdraw(pid PoolID) { m.withdraws.WithLabelValues(poolLabel(pid)).Inc() }

// RecordFeeDistribution increments the fee-distribution counter for a pool.
func (m *PoolMetrics) RecordFeeDistribution(pid PoolID) {
	m.feeDistributions.WithLabelValues(poolLabel(pid)).Inc()
}

func poolLabel(pid PoolID) string {
	return strconv.FormatUint(uint64(pid), 10)
}
