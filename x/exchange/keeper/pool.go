package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sdkerrors "cosmossdk.io/errors"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

// GetPool returns the initialized pool for a token denom. Records that were
// drained by a full withdrawal count as absent.
func (k Keeper) GetPool(ctx context.Context, tokenDenom string) (types.Pool, error) {
	pool, found := k.getPoolRecord(ctx, tokenDenom)
	if !found || !pool.IsInitialized() {
		return types.Pool{}, sdkerrors.Wrapf(types.ErrPoolNotFound, "no pool for token %s", tokenDenom)
	}
	return pool, nil
}

// getPoolRecord looks up a pool record regardless of initialization state.
func (k Keeper) getPoolRecord(ctx context.Context, tokenDenom string) (types.Pool, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetPoolKey(tokenDenom))
	if bz == nil {
		return types.Pool{}, false
	}

	var pool types.Pool
	if err := k.cdc.Unmarshal(bz, &pool); err != nil {
		panic(fmt.Errorf("getPoolRecord: corrupted pool record for %s: %w", tokenDenom, err))
	}
	return pool, true
}

// HasPool reports whether an initialized pool exists for the token denom.
func (k Keeper) HasPool(ctx context.Context, tokenDenom string) bool {
	pool, found := k.getPoolRecord(ctx, tokenDenom)
	return found && pool.IsInitialized()
}

// SetPool writes a pool record to the store.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	bz, err := k.cdc.Marshal(&pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal: %w", err)
	}
	k.getStore(ctx).Set(types.GetPoolKey(pool.TokenDenom), bz)
	return nil
}

// IteratePools walks every pool record in denom order. The callback returns
// true to stop early.
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := k.cdc.Unmarshal(iterator.Value(), &pool); err != nil {
			panic(fmt.Errorf("IteratePools: corrupted pool record: %w", err))
		}
		if cb(pool) {
			break
		}
	}
}

// GetAllPools returns every initialized pool, ordered by token denom.
func (k Keeper) GetAllPools(ctx context.Context) []types.Pool {
	var pools []types.Pool
	k.IteratePools(ctx, func(pool types.Pool) bool {
		if pool.IsInitialized() {
			pools = append(pools, pool)
		}
		return false
	})
	return pools
}

// CreatePool seeds a fresh pool with the provider's deposit and mints the
// initial share supply, floor(sqrt(base * token)). A record left behind by a
// full withdrawal is re-seeded the same way.
func (k Keeper) CreatePool(
	ctx context.Context,
	provider sdk.AccAddress,
	tokenDenom string,
	baseAmount, tokenAmount math.Int,
) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}

	if tokenDenom == params.BaseDenom {
		return math.Int{}, sdkerrors.Wrapf(types.ErrInvalidTokenDenom,
			"cannot pool the base denom %s against itself", tokenDenom)
	}
	if !baseAmount.IsPositive() || !tokenAmount.IsPositive() {
		return math.Int{}, sdkerrors.Wrap(types.ErrZeroAmount,
			"initial deposit must be positive on both sides")
	}

	if pool, found := k.getPoolRecord(ctx, tokenDenom); found && pool.IsInitialized() {
		return math.Int{}, sdkerrors.Wrapf(types.ErrPoolAlreadyExists, "pool for token %s", tokenDenom)
	}

	product, err := SafeMul(baseAmount, tokenAmount)
	if err != nil {
		return math.Int{}, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}
	shares, err := IntegerSqrt(product)
	if err != nil {
		return math.Int{}, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}
	if shares.IsZero() {
		return math.Int{}, sdkerrors.Wrap(types.ErrZeroAmount, "initial deposit too small to mint shares")
	}

	pool := types.Pool{
		TokenDenom:   tokenDenom,
		BaseReserve:  baseAmount,
		TokenReserve: tokenAmount,
		ShareSupply:  shares,
	}

	// State first, transfer second. The caller runs this against a branched
	// context, so a failed transfer discards the writes as well.
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}
	k.SetShares(ctx, tokenDenom, provider, shares)

	deposit := sdk.NewCoins(
		sdk.NewCoin(params.BaseDenom, baseAmount),
		sdk.NewCoin(tokenDenom, tokenAmount),
	)
	if err := k.bankKeeper.SendCoins(ctx, provider, k.moduleAddress, deposit); err != nil {
		return math.Int{}, sdkerrors.Wrap(types.ErrTransferFailed, err.Error())
	}

	k.Logger(ctx).Debug("pool created",
		"token_denom", tokenDenom,
		"base_reserve", baseAmount.String(),
		"token_reserve", tokenAmount.String(),
		"shares", shares.String(),
	)

	if k.metrics != nil {
		k.metrics.PoolCreations.Inc()
		k.metrics.LiquidityAdded.WithLabelValues(tokenDenom, params.BaseDenom).Add(gaugeValue(baseAmount))
		k.metrics.LiquidityAdded.WithLabelValues(tokenDenom, tokenDenom).Add(gaugeValue(tokenAmount))
		k.recordPoolGauges(pool, params.BaseDenom)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyTokenDenom, tokenDenom),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyBaseAmount, baseAmount.String()),
			sdk.NewAttribute(types.AttributeKeyTokenAmount, tokenAmount.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return shares, nil
}
