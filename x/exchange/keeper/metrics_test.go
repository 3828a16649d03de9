package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/arcadex-chain/arcadex/x/exchange/keeper"
	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

func TestMetricsRecordSwapsAndLiquidity(t *testing.T) {
	k, _, ctx := setupKeeper(t)
	m := keeper.NewMetrics()
	k.SetMetrics(m)

	// The registry is shared across the package, so counters are checked as
	// deltas.
	createsBefore := promtestutil.ToFloat64(m.PoolCreations)
	addedBase := promtestutil.ToFloat64(m.LiquidityAdded.WithLabelValues("tokena", types.DefaultBaseDenom))
	addedToken := promtestutil.ToFloat64(m.LiquidityAdded.WithLabelValues("tokena", "tokena"))
	swapsOK := promtestutil.ToFloat64(m.SwapsTotal.WithLabelValues(types.DefaultBaseDenom, "tokena", "success"))
	swapsFailed := promtestutil.ToFloat64(m.SwapsTotal.WithLabelValues(types.DefaultBaseDenom, "tokena", "failed"))
	volume := promtestutil.ToFloat64(m.SwapVolume.WithLabelValues(types.DefaultBaseDenom))
	fees := promtestutil.ToFloat64(m.SwapFeesCollected.WithLabelValues(types.DefaultBaseDenom))
	removedBase := promtestutil.ToFloat64(m.LiquidityRemoved.WithLabelValues("tokena", types.DefaultBaseDenom))

	seedPool(t, k, ctx, "tokena", 1000, 1000)
	require.Equal(t, createsBefore+1, promtestutil.ToFloat64(m.PoolCreations))
	require.Equal(t, addedBase+1000, promtestutil.ToFloat64(m.LiquidityAdded.WithLabelValues("tokena", types.DefaultBaseDenom)))
	require.Equal(t, addedToken+1000, promtestutil.ToFloat64(m.LiquidityAdded.WithLabelValues("tokena", "tokena")))

	// 100 in at 1% fee: 1 unit of fee, 90 out, reserves (1100, 910).
	_, err := k.SwapBaseForToken(ctx, trader, "tokena", math.NewInt(100), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, swapsOK+1, promtestutil.ToFloat64(m.SwapsTotal.WithLabelValues(types.DefaultBaseDenom, "tokena", "success")))
	require.Equal(t, volume+100, promtestutil.ToFloat64(m.SwapVolume.WithLabelValues(types.DefaultBaseDenom)))
	require.Equal(t, fees+1, promtestutil.ToFloat64(m.SwapFeesCollected.WithLabelValues(types.DefaultBaseDenom)))

	// A swap rejected for slippage counts as failed and moves no gauges.
	_, err = k.SwapBaseForToken(ctx, trader, "tokena", math.NewInt(100), math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
	require.Equal(t, swapsFailed+1, promtestutil.ToFloat64(m.SwapsTotal.WithLabelValues(types.DefaultBaseDenom, "tokena", "failed")))

	// 100 of 1000 shares on (1100, 910) pays out 110 base and 91 token.
	_, _, err = k.RemoveLiquidity(ctx, provider, "tokena", math.NewInt(100), math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, removedBase+110, promtestutil.ToFloat64(m.LiquidityRemoved.WithLabelValues("tokena", types.DefaultBaseDenom)))

	// Gauges hold the latest pool state.
	require.Equal(t, float64(990), promtestutil.ToFloat64(m.PoolReserves.WithLabelValues("tokena", types.DefaultBaseDenom)))
	require.Equal(t, float64(819), promtestutil.ToFloat64(m.PoolReserves.WithLabelValues("tokena", "tokena")))
	require.Equal(t, float64(900), promtestutil.ToFloat64(m.ShareSupply.WithLabelValues("tokena")))
}

func TestMetricsNilKeeperRecordsNothing(t *testing.T) {
	k, _, ctx := setupKeeper(t)

	// No metrics attached; every operation still settles normally.
	seedPool(t, k, ctx, "tokena", 1000, 1000)
	_, err := k.SwapBaseForToken(ctx, trader, "tokena", math.NewInt(100), math.ZeroInt())
	require.NoError(t, err)
	_, _, err = k.RemoveLiquidity(ctx, provider, "tokena", math.NewInt(100), math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)
}

func TestGetMetricsSingleton(t *testing.T) {
	require.Same(t, keeper.NewMetrics(), keeper.GetMetrics())
}
