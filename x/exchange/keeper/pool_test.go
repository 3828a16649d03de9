package keeper_test

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

func TestCreatePool(t *testing.T) {
	k, bk, ctx := setupKeeper(t)

	// Initial share supply is floor(sqrt(base * token)).
	shares, err := k.CreatePool(ctx, provider, "tokena", math.NewInt(100), math.NewInt(400))
	require.NoError(t, err)
	require.Equal(t, int64(200), shares.Int64())

	pool, err := k.GetPool(ctx, "tokena")
	require.NoError(t, err)
	require.Equal(t, int64(100), pool.BaseReserve.Int64())
	require.Equal(t, int64(400), pool.TokenReserve.Int64())
	require.Equal(t, int64(200), pool.ShareSupply.Int64())

	require.Equal(t, int64(200), k.GetShares(ctx, "tokena", provider).Int64())

	// Deposit landed in the module account.
	moduleAddr := k.GetModuleAddress()
	require.Equal(t, int64(100), bk.GetBalance(ctx, moduleAddr, types.DefaultBaseDenom).Amount.Int64())
	require.Equal(t, int64(400), bk.GetBalance(ctx, moduleAddr, "tokena").Amount.Int64())
}

func TestCreatePoolErrors(t *testing.T) {
	k, _, ctx := setupKeeper(t)
	seedPool(t, k, ctx, "tokena", 1000, 1000)

	tests := []struct {
		name    string
		denom   string
		base    int64
		token   int64
		wantErr error
	}{
		{
			name:    "duplicate pool",
			denom:   "tokena",
			base:    100,
			token:   100,
			wantErr: types.ErrPoolAlreadyExists,
		},
		{
			name:    "base denom pooled against itself",
			denom:   types.DefaultBaseDenom,
			base:    100,
			token:   100,
			wantErr: types.ErrInvalidTokenDenom,
		},
		{
			name:    "zero base side",
			denom:   "tokenb",
			base:    0,
			token:   100,
			wantErr: types.ErrZeroAmount,
		},
		{
			name:    "zero token side",
			denom:   "tokenb",
			base:    100,
			token:   0,
			wantErr: types.ErrZeroAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := k.CreatePool(ctx, provider, tt.denom, math.NewInt(tt.base), math.NewInt(tt.token))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetPoolNotFound(t *testing.T) {
	k, _, ctx := setupKeeper(t)

	_, err := k.GetPool(ctx, "tokena")
	require.ErrorIs(t, err, types.ErrPoolNotFound)
	require.False(t, k.HasPool(ctx, "tokena"))
}

func TestGetAllPoolsOrdered(t *testing.T) {
	k, _, ctx := setupKeeper(t)
	seedPool(t, k, ctx, "tokenb", 500, 500)
	seedPool(t, k, ctx, "tokena", 1000, 1000)

	pools := k.GetAllPools(ctx)
	require.Len(t, pools, 2)
	require.Equal(t, "tokena", pools[0].TokenDenom)
	require.Equal(t, "tokenb", pools[1].TokenDenom)
}

func TestDrainedPoolTreatedAsAbsent(t *testing.T) {
	k, _, ctx := setupKeeper(t)
	shares := seedPool(t, k, ctx, "tokena", 1000, 1000)

	_, _, err := k.RemoveLiquidity(ctx, provider, "tokena", shares, math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)

	_, err = k.GetPool(ctx, "tokena")
	require.ErrorIs(t, err, types.ErrPoolNotFound)
	require.False(t, k.HasPool(ctx, "tokena"))
	require.Empty(t, k.GetAllPools(ctx))

	// The drained record is re-seeded like a fresh pool.
	minted, err := k.CreatePool(ctx, provider, "tokena", math.NewInt(100), math.NewInt(400))
	require.NoError(t, err)
	require.Equal(t, int64(200), minted.Int64())
}

type captureLogger struct {
	entries *[]string
}

func (l captureLogger) Debug(msg string, _ ...any) { *l.entries = append(*l.entries, msg) }
func (l captureLogger) Info(msg string, _ ...any)  { *l.entries = append(*l.entries, msg) }
func (l captureLogger) Warn(msg string, _ ...any)  { *l.entries = append(*l.entries, msg) }
func (l captureLogger) Error(msg string, _ ...any) { *l.entries = append(*l.entries, msg) }
func (l captureLogger) With(_ ...any) log.Logger   { return l }
func (l captureLogger) Impl() any                  { return l }

func TestCreatePoolLogsCreation(t *testing.T) {
	k, _, ctx := setupKeeper(t)

	var entries []string
	ctx = ctx.WithLogger(captureLogger{entries: &entries})

	seedPool(t, k, ctx, "tokena", 1000, 1000)
	require.Contains(t, entries, "pool created")
}

func TestCreatePoolInsufficientFunds(t *testing.T) {
	k, _, ctx := setupKeeper(t)

	// other holds nothing; state-then-transfer still fails the operation.
	_, err := k.CreatePool(ctx, other, "tokena", math.NewInt(100), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrTransferFailed)
}

func TestPoolViewDiagnostics(t *testing.T) {
	k, bk, ctx := setupKeeper(t)
	seedPool(t, k, ctx, "tokena", 1000, 2000)

	view, err := k.PoolView(ctx, "tokena", provider)
	require.NoError(t, err)
	require.Equal(t, int64(1000), view.BaseReserve.Int64())
	require.Equal(t, int64(2000), view.TokenReserve.Int64())
	require.Equal(t, view.ShareSupply, view.HolderShares)
	require.Equal(t, view.BaseReserve, view.ModuleBaseBalance)
	require.Equal(t, view.TokenReserve, view.ModuleTokenBalance)

	// Coins sent straight to the module account show up in the balance
	// diagnostic but never in the tracked reserves.
	testFunds := sdk.NewCoins(sdk.NewCoin("tokena", math.NewInt(500)))
	require.NoError(t, bk.SendCoins(ctx, provider, k.GetModuleAddress(), testFunds))

	view, err = k.PoolView(ctx, "tokena", provider)
	require.NoError(t, err)
	require.Equal(t, int64(2000), view.TokenReserve.Int64())
	require.Equal(t, int64(2500), view.ModuleTokenBalance.Int64())

	views, err := k.AllPoolViews(ctx, provider)
	require.NoError(t, err)
	require.Len(t, views, 1)

	_, err = k.PoolView(ctx, "tokenb", provider)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}
