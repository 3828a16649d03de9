package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/arcadex-chain/arcadex/x/exchange/keeper"
)

func TestInvariantsHoldAfterOperations(t *testing.T) {
	k, _, ctx := setupKeeper(t)
	seedPool(t, k, ctx, "tokena", 1000, 1000)
	seedPool(t, k, ctx, "tokenb", 5000, 3000)

	_, err := k.SwapBaseForToken(ctx, trader, "tokena", math.NewInt(100), math.ZeroInt())
	require.NoError(t, err)
	_, err = k.SwapTokenForToken(ctx, trader, "tokena", "tokenb", math.NewInt(50), math.ZeroInt())
	require.NoError(t, err)
	_, _, _, err = k.AddLiquidity(ctx, provider, "tokena",
		math.NewInt(200), math.NewInt(200), math.ZeroInt())
	require.NoError(t, err)
	_, _, err = k.RemoveLiquidity(ctx, provider, "tokenb",
		math.NewInt(100), math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)
	require.NoError(t, k.TransferShares(ctx, provider, other, "tokena", math.NewInt(10)))

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

func TestShareSupplyInvariantDetectsMismatch(t *testing.T) {
	k, _, ctx := setupKeeper(t)
	seedPool(t, k, ctx, "tokena", 1000, 1000)

	// Corrupt the supply behind the ledger's back.
	pool, err := k.GetPool(ctx, "tokena")
	require.NoError(t, err)
	pool.ShareSupply = pool.ShareSupply.AddRaw(1)
	require.NoError(t, k.SetPool(ctx, pool))

	_, broken := keeper.ShareSupplyInvariant(k)(ctx)
	require.True(t, broken)
}

func TestPoolRecordsInvariantDetectsNegative(t *testing.T) {
	k, _, ctx := setupKeeper(t)
	seedPool(t, k, ctx, "tokena", 1000, 1000)

	pool, err := k.GetPool(ctx, "tokena")
	require.NoError(t, err)
	pool.BaseReserve = math.NewInt(-1)
	require.NoError(t, k.SetPool(ctx, pool))

	_, broken := keeper.PoolRecordsInvariant(k)(ctx)
	require.True(t, broken)
}

func TestReserveBackingInvariantDetectsShortfall(t *testing.T) {
	k, _, ctx := setupKeeper(t)
	seedPool(t, k, ctx, "tokena", 1000, 1000)

	msg, broken := keeper.ReserveBackingInvariant(k)(ctx)
	require.False(t, broken, msg)

	// Claim more reserve than the module account holds.
	pool, err := k.GetPool(ctx, "tokena")
	require.NoError(t, err)
	pool.TokenReserve = pool.TokenReserve.AddRaw(1)
	require.NoError(t, k.SetPool(ctx, pool))

	_, broken = keeper.ReserveBackingInvariant(k)(ctx)
	require.True(t, broken)
}
