package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcadex-chain/arcadex/testutil/keeper"
	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, _, ctx := setupKeeper(t)
	seedPool(t, k, ctx, "tokena", 1000, 2000)
	seedPool(t, k, ctx, "tokenb", 500, 500)
	require.NoError(t, k.TransferShares(ctx, provider, other, "tokena", math.NewInt(300)))

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Pools, 2)
	require.Len(t, exported.Positions, 3)

	// Import into a fresh keeper and compare the exports.
	k2, _, ctx2 := testkeeper.ExchangeKeeper(t)
	k2.InitGenesis(ctx2, *exported)

	reExported := k2.ExportGenesis(ctx2)
	require.Equal(t, exported, reExported)

	pool, err := k2.GetPool(ctx2, "tokena")
	require.NoError(t, err)
	require.Equal(t, int64(1000), pool.BaseReserve.Int64())
	require.Equal(t, int64(300), k2.GetShares(ctx2, "tokena", other).Int64())
}

func TestGenesisExportEmpty(t *testing.T) {
	k, _, ctx := testkeeper.ExchangeKeeper(t)

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Empty(t, exported.Pools)
	require.Empty(t, exported.Positions)
	require.Equal(t, types.DefaultParams(), exported.Params)
}
