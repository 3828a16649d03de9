package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcadex-chain/arcadex/testutil/keeper"
	"github.com/arcadex-chain/arcadex/x/exchange/keeper"
	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

var (
	provider = sdk.AccAddress([]byte("provider____________"))
	trader   = sdk.AccAddress([]byte("trader______________"))
	other    = sdk.AccAddress([]byte("other_______________"))
)

func bigPow2(exp uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), exp)
}

// setupKeeper returns a keeper with the default 1% fee and well-funded
// provider and trader accounts.
func setupKeeper(t testing.TB) (*keeper.Keeper, bankkeeper.BaseKeeper, sdk.Context) {
	k, bk, ctx := testkeeper.ExchangeKeeper(t)

	funds := sdk.NewCoins(
		sdk.NewCoin(types.DefaultBaseDenom, math.NewInt(1_000_000)),
		sdk.NewCoin("tokena", math.NewInt(1_000_000)),
		sdk.NewCoin("tokenb", math.NewInt(1_000_000)),
	)
	testkeeper.FundAccount(t, ctx, bk, provider, funds)
	testkeeper.FundAccount(t, ctx, bk, trader, funds)

	return k, bk, ctx
}

// seedPool creates a pool with the given reserves from the provider account.
func seedPool(t testing.TB, k *keeper.Keeper, ctx sdk.Context, tokenDenom string, base, token int64) math.Int {
	t.Helper()
	shares, err := k.CreatePool(ctx, provider, tokenDenom, math.NewInt(base), math.NewInt(token))
	require.NoError(t, err)
	return shares
}

func TestGetParamsDefaults(t *testing.T) {
	k, _, ctx := testkeeper.ExchangeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultBaseDenom, params.BaseDenom)
	require.Equal(t, uint64(100), params.FeeNumerator)
	require.Equal(t, uint64(10000), params.FeeDenominator)
}

func TestSetParamsRejectsInvalid(t *testing.T) {
	k, _, ctx := testkeeper.ExchangeKeeper(t)

	err := k.SetParams(ctx, types.NewParams("uarc", 10000, 10000))
	require.Error(t, err)

	err = k.SetParams(ctx, types.NewParams("uarc", 0, 0))
	require.Error(t, err)

	require.NoError(t, k.SetParams(ctx, types.NewParams("uarc", 30, 10000)))
	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(30), params.FeeNumerator)
}
