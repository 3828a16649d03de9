package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

// Metrics holds all Prometheus metrics for the exchange module
type Metrics struct {
	// Swap metrics
	SwapsTotal        *prometheus.CounterVec
	SwapVolume        *prometheus.CounterVec
	SwapFeesCollected *prometheus.CounterVec

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec
	ShareSupply      *prometheus.GaugeVec

	// Pool metrics
	PoolCreations prometheus.Counter
}

var (
	exchangeMetricsOnce sync.Once
	exchangeMetrics     *Metrics
)

// NewMetrics creates and registers exchange metrics (singleton pattern)
func NewMetrics() *Metrics {
	exchangeMetricsOnce.Do(func() {
		exchangeMetrics = &Metrics{
			// Swap metrics
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "arcadex",
					Subsystem: "exchange",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"denom_in", "denom_out", "status"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "arcadex",
					Subsystem: "exchange",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume by denom",
				},
				[]string{"denom"},
			),
			SwapFeesCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "arcadex",
					Subsystem: "exchange",
					Name:      "swap_fees_collected_total",
					Help:      "Total swap fees collected by denom",
				},
				[]string{"denom"},
			),

			// Liquidity metrics
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "arcadex",
					Subsystem: "exchange",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity added to pools",
				},
				[]string{"pool", "denom"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "arcadex",
					Subsystem: "exchange",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity removed from pools",
				},
				[]string{"pool", "denom"},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "arcadex",
					Subsystem: "exchange",
					Name:      "pool_reserves",
					Help:      "Current pool reserves",
				},
				[]string{"pool", "denom"},
			),
			ShareSupply: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "arcadex",
					Subsystem: "exchange",
					Name:      "share_supply",
					Help:      "Share supply per pool",
				},
				[]string{"pool"},
			),

			// Pool metrics
			PoolCreations: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "arcadex",
					Subsystem: "exchange",
					Name:      "pool_creations_total",
					Help:      "Total number of pools created",
				},
			),
		}
	})
	return exchangeMetrics
}

// GetMetrics returns the singleton exchange metrics instance
func GetMetrics() *Metrics {
	if exchangeMetrics == nil {
		return NewMetrics()
	}
	return exchangeMetrics
}

// gaugeValue converts a math.Int to the nearest float64 for gauge exports.
func gaugeValue(v math.Int) float64 {
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
	return f
}

// recordPoolGauges refreshes the reserve and supply gauges for one pool.
func (k Keeper) recordPoolGauges(pool types.Pool, baseDenom string) {
	if k.metrics == nil {
		return
	}
	k.metrics.PoolReserves.WithLabelValues(pool.TokenDenom, baseDenom).Set(gaugeValue(pool.BaseReserve))
	k.metrics.PoolReserves.WithLabelValues(pool.TokenDenom, pool.TokenDenom).Set(gaugeValue(pool.TokenReserve))
	k.metrics.ShareSupply.WithLabelValues(pool.TokenDenom).Set(gaugeValue(pool.ShareSupply))
}
