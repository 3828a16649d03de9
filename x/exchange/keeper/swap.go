package keeper

import (
	"context"
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sdkerrors "cosmossdk.io/errors"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

// SwapBaseForToken trades amountIn of the base asset for the pool's token.
func (k Keeper) SwapBaseForToken(
	ctx context.Context,
	trader sdk.AccAddress,
	tokenDenom string,
	amountIn, minOut math.Int,
) (math.Int, error) {
	return k.executeRoute(ctx, trader, types.NewBaseForTokenRoute(tokenDenom), amountIn, minOut)
}

// SwapTokenForBase trades amountIn of the pool's token for the base asset.
func (k Keeper) SwapTokenForBase(
	ctx context.Context,
	trader sdk.AccAddress,
	tokenDenom string,
	amountIn, minOut math.Int,
) (math.Int, error) {
	return k.executeRoute(ctx, trader, types.NewTokenForBaseRoute(tokenDenom), amountIn, minOut)
}

// SwapTokenForToken trades one token for another through two pools, with the
// base asset as the bridge. Both pool updates commit together.
func (k Keeper) SwapTokenForToken(
	ctx context.Context,
	trader sdk.AccAddress,
	denomIn, denomOut string,
	amountIn, minOut math.Int,
) (math.Int, error) {
	return k.executeRoute(ctx, trader, types.NewTokenForTokenRoute(denomIn, denomOut), amountIn, minOut)
}

// executeRoute settles a swap along a resolved route: it computes every hop
// against in-memory pool copies, checks the trader's minimum, then writes
// all pool updates and performs the asset transfers.
func (k Keeper) executeRoute(
	ctx context.Context,
	trader sdk.AccAddress,
	route types.SwapRoute,
	amountIn, minOut math.Int,
) (math.Int, error) {
	zero := math.Int{}

	if err := route.Validate(); err != nil {
		return zero, err
	}
	if !amountIn.IsPositive() {
		return zero, sdkerrors.Wrap(types.ErrZeroAmount, "swap input must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return zero, err
	}

	var (
		pools     []types.Pool
		amountOut math.Int
		denomIn   string
		denomOut  string
	)

	switch route.Kind {
	case types.RouteBaseForToken:
		denomIn, denomOut = params.BaseDenom, route.DenomOut
		pool, err := k.GetPool(ctx, route.DenomOut)
		if err != nil {
			return zero, err
		}
		amountOut, err = k.applySwap(&pool, true, amountIn, params)
		if err != nil {
			k.recordSwapFailure(denomIn, denomOut)
			return zero, err
		}
		pools = []types.Pool{pool}

	case types.RouteTokenForBase:
		denomIn, denomOut = route.DenomIn, params.BaseDenom
		pool, err := k.GetPool(ctx, route.DenomIn)
		if err != nil {
			return zero, err
		}
		amountOut, err = k.applySwap(&pool, false, amountIn, params)
		if err != nil {
			k.recordSwapFailure(denomIn, denomOut)
			return zero, err
		}
		pools = []types.Pool{pool}

	case types.RouteTokenForToken:
		denomIn, denomOut = route.DenomIn, route.DenomOut
		poolIn, err := k.GetPool(ctx, route.DenomIn)
		if err != nil {
			return zero, err
		}
		poolOut, err := k.GetPool(ctx, route.DenomOut)
		if err != nil {
			return zero, err
		}

		// First hop sells the input token for base, second hop spends that
		// base in the output pool. The bridge amount never leaves the
		// module account.
		baseBridge, err := k.applySwap(&poolIn, false, amountIn, params)
		if err != nil {
			k.recordSwapFailure(denomIn, denomOut)
			return zero, err
		}
		amountOut, err = k.applySwap(&poolOut, true, baseBridge, params)
		if err != nil {
			k.recordSwapFailure(denomIn, denomOut)
			return zero, err
		}
		pools = []types.Pool{poolIn, poolOut}
	}

	if amountOut.LT(minOut) {
		k.recordSwapFailure(denomIn, denomOut)
		return zero, sdkerrors.Wrapf(types.ErrSlippageExceeded,
			"output %s below minimum %s", amountOut, minOut)
	}

	for _, pool := range pools {
		if err := k.SetPool(ctx, pool); err != nil {
			return zero, err
		}
	}

	if err := k.bankKeeper.SendCoins(ctx, trader, k.moduleAddress,
		sdk.NewCoins(sdk.NewCoin(denomIn, amountIn))); err != nil {
		return zero, sdkerrors.Wrap(types.ErrTransferFailed, err.Error())
	}
	if err := k.bankKeeper.SendCoins(ctx, k.moduleAddress, trader,
		sdk.NewCoins(sdk.NewCoin(denomOut, amountOut))); err != nil {
		return zero, sdkerrors.Wrap(types.ErrTransferFailed, err.Error())
	}

	if k.metrics != nil {
		k.metrics.SwapsTotal.WithLabelValues(denomIn, denomOut, "success").Inc()
		k.metrics.SwapVolume.WithLabelValues(denomIn).Add(gaugeValue(amountIn))
		if afterFee, ferr := SafeMulDiv(amountIn,
			math.NewIntFromUint64(params.FeeDenominator-params.FeeNumerator),
			math.NewIntFromUint64(params.FeeDenominator)); ferr == nil {
			k.metrics.SwapFeesCollected.WithLabelValues(denomIn).Add(gaugeValue(amountIn.Sub(afterFee)))
		}
		for _, pool := range pools {
			k.recordPoolGauges(pool, params.BaseDenom)
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyDenomIn, denomIn),
			sdk.NewAttribute(types.AttributeKeyDenomOut, denomOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		),
	)

	return amountOut, nil
}

// recordSwapFailure counts a failed swap attempt.
func (k Keeper) recordSwapFailure(denomIn, denomOut string) {
	if k.metrics == nil {
		return
	}
	k.metrics.SwapsTotal.WithLabelValues(denomIn, denomOut, "failed").Inc()
}

// applySwap runs one constant-product hop against an in-memory pool copy.
// The fee is charged on the input side but the full input amount joins the
// reserve, so the invariant product never decreases.
func (k Keeper) applySwap(pool *types.Pool, baseIn bool, amountIn math.Int, params types.Params) (math.Int, error) {
	reserveIn, reserveOut := pool.BaseReserve, pool.TokenReserve
	if !baseIn {
		reserveIn, reserveOut = pool.TokenReserve, pool.BaseReserve
	}

	amountOut, err := computeSwapOutput(amountIn, reserveIn, reserveOut, params)
	if err != nil {
		return math.Int{}, err
	}

	newIn, err := SafeAdd(reserveIn, amountIn)
	if err != nil {
		return math.Int{}, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}
	newOut, err := SafeSub(reserveOut, amountOut)
	if err != nil {
		return math.Int{}, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}

	// The invariant product must never decrease across a hop.
	oldK := new(big.Int).Mul(reserveIn.BigInt(), reserveOut.BigInt())
	newK := new(big.Int).Mul(newIn.BigInt(), newOut.BigInt())
	if newK.Cmp(oldK) < 0 {
		return math.Int{}, sdkerrors.Wrapf(types.ErrArithmetic,
			"constant product decreased from %s to %s", oldK, newK)
	}

	if baseIn {
		pool.BaseReserve, pool.TokenReserve = newIn, newOut
	} else {
		pool.TokenReserve, pool.BaseReserve = newIn, newOut
	}

	return amountOut, nil
}

// computeSwapOutput prices one hop:
//
//	afterFee = floor(amountIn * (feeDenominator - feeNumerator) / feeDenominator)
//	out      = floor(reserveOut * afterFee / (reserveIn + afterFee))
//
// Truncation always favors the pool.
func computeSwapOutput(amountIn, reserveIn, reserveOut math.Int, params types.Params) (math.Int, error) {
	if !amountIn.IsPositive() {
		return math.Int{}, sdkerrors.Wrap(types.ErrZeroAmount, "swap input must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, sdkerrors.Wrap(types.ErrInsufficientLiquidity, "pool reserves are empty")
	}

	feeKeep := math.NewIntFromUint64(params.FeeDenominator - params.FeeNumerator)
	feeDenom := math.NewIntFromUint64(params.FeeDenominator)

	afterFee, err := SafeMulDiv(amountIn, feeKeep, feeDenom)
	if err != nil {
		return math.Int{}, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}

	numerator, err := SafeMul(reserveOut, afterFee)
	if err != nil {
		return math.Int{}, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}
	denominator, err := SafeAdd(reserveIn, afterFee)
	if err != nil {
		return math.Int{}, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}
	amountOut, err := SafeQuo(numerator, denominator)
	if err != nil {
		return math.Int{}, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}

	if amountOut.IsZero() {
		return math.Int{}, sdkerrors.Wrap(types.ErrInsufficientLiquidity,
			"input too small to buy any output")
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, sdkerrors.Wrap(types.ErrInsufficientReserve,
			"output would drain the pool")
	}

	return amountOut, nil
}

// SimulateSwapBaseForToken quotes a base-for-token swap without settling it.
func (k Keeper) SimulateSwapBaseForToken(ctx context.Context, tokenDenom string, amountIn math.Int) (math.Int, error) {
	pool, err := k.GetPool(ctx, tokenDenom)
	if err != nil {
		return math.Int{}, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return computeSwapOutput(amountIn, pool.BaseReserve, pool.TokenReserve, params)
}

// SimulateSwapTokenForBase quotes a token-for-base swap without settling it.
func (k Keeper) SimulateSwapTokenForBase(ctx context.Context, tokenDenom string, amountIn math.Int) (math.Int, error) {
	pool, err := k.GetPool(ctx, tokenDenom)
	if err != nil {
		return math.Int{}, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return computeSwapOutput(amountIn, pool.TokenReserve, pool.BaseReserve, params)
}

// SimulateSwapTokenForToken quotes a two-hop swap without settling it.
func (k Keeper) SimulateSwapTokenForToken(ctx context.Context, denomIn, denomOut string, amountIn math.Int) (math.Int, error) {
	if denomIn == denomOut {
		return math.Int{}, sdkerrors.Wrap(types.ErrInvalidTokenDenom, "input and output tokens must differ")
	}
	baseBridge, err := k.SimulateSwapTokenForBase(ctx, denomIn, amountIn)
	if err != nil {
		return math.Int{}, err
	}
	return k.SimulateSwapBaseForToken(ctx, denomOut, baseBridge)
}
