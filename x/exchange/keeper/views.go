package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

// PoolView returns the query projection of a single pool, including the
// holder's share balance and the module account's bank balances as a
// diagnostic cross-check against the tracked reserves.
func (k Keeper) PoolView(ctx context.Context, tokenDenom string, holder sdk.AccAddress) (types.PoolView, error) {
	pool, err := k.GetPool(ctx, tokenDenom)
	if err != nil {
		return types.PoolView{}, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.PoolView{}, err
	}

	return types.PoolView{
		TokenDenom:         pool.TokenDenom,
		BaseReserve:        pool.BaseReserve,
		TokenReserve:       pool.TokenReserve,
		ShareSupply:        pool.ShareSupply,
		HolderShares:       k.GetShares(ctx, tokenDenom, holder),
		ModuleBaseBalance:  k.bankKeeper.GetBalance(ctx, k.moduleAddress, params.BaseDenom).Amount,
		ModuleTokenBalance: k.bankKeeper.GetBalance(ctx, k.moduleAddress, tokenDenom).Amount,
	}, nil
}

// AllPoolViews returns the view of every initialized pool, ordered by token
// denom.
func (k Keeper) AllPoolViews(ctx context.Context, holder sdk.AccAddress) ([]types.PoolView, error) {
	views := []types.PoolView{}
	for _, pool := range k.GetAllPools(ctx) {
		view, err := k.PoolView(ctx, pool.TokenDenom, holder)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
