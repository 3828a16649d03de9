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

// GetShares returns a provider's share balance in a pool, zero if none.
func (k Keeper) GetShares(ctx context.Context, tokenDenom string, provider sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.GetShareKey(tokenDenom, provider))
	if bz == nil {
		return math.ZeroInt()
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("GetShares: corrupted share balance for %s in %s: %w", provider, tokenDenom, err))
	}
	return shares
}

// SetShares writes a provider's share balance. Zero balances are deleted so
// the share store only holds live positions.
func (k Keeper) SetShares(ctx context.Context, tokenDenom string, provider sdk.AccAddress, shares math.Int) {
	store := k.getStore(ctx)
	key := types.GetShareKey(tokenDenom, provider)

	if shares.IsZero() {
		store.Delete(key)
		return
	}

	bz, err := shares.Marshal()
	if err != nil {
		panic(fmt.Errorf("SetShares: marshal: %w", err))
	}
	store.Set(key, bz)
}

// IterateSharePositions walks every share balance in the store. The callback
// returns true to stop early.
func (k Keeper) IterateSharePositions(ctx context.Context, cb func(tokenDenom string, provider sdk.AccAddress, shares math.Int) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.ShareKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		denomLen := int(key[1])
		tokenDenom := string(key[2 : 2+denomLen])
		provider := sdk.AccAddress(key[2+denomLen:])

		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Errorf("IterateSharePositions: corrupted share balance: %w", err))
		}
		if cb(tokenDenom, provider, shares) {
			break
		}
	}
}

// AddLiquidity deposits base and token into the pool for tokenDenom,
// creating the pool when none exists. For an existing pool the desired
// amounts are upper bounds: the deposit is scaled to the current reserve
// ratio, whichever side binds, and shares are minted in proportion to the
// base side of the deposit. Returns the actual deposit and minted shares.
func (k Keeper) AddLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	tokenDenom string,
	baseDesired, tokenDesired, minShares math.Int,
) (baseDeposit, tokenDeposit, shares math.Int, err error) {
	zero := math.Int{}

	if !baseDesired.IsPositive() || !tokenDesired.IsPositive() {
		return zero, zero, zero, sdkerrors.Wrap(types.ErrZeroAmount, "deposit must be positive on both sides")
	}

	pool, found := k.getPoolRecord(ctx, tokenDenom)
	if !found || !pool.IsInitialized() {
		// The initial mint is known upfront, so the slippage check runs
		// before anything is written.
		product, err := SafeMul(baseDesired, tokenDesired)
		if err != nil {
			return zero, zero, zero, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
		}
		toMint, err := IntegerSqrt(product)
		if err != nil {
			return zero, zero, zero, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
		}
		if toMint.LT(minShares) {
			return zero, zero, zero, sdkerrors.Wrapf(types.ErrSlippageExceeded,
				"minted %s shares, minimum %s", toMint, minShares)
		}

		minted, err := k.CreatePool(ctx, provider, tokenDenom, baseDesired, tokenDesired)
		if err != nil {
			return zero, zero, zero, err
		}
		return baseDesired, tokenDesired, minted, nil
	}

	if !pool.BaseReserve.IsPositive() || !pool.TokenReserve.IsPositive() {
		return zero, zero, zero, sdkerrors.Wrapf(types.ErrInvalidPoolState,
			"pool %s has supply without reserves", tokenDenom)
	}

	// Match the deposit to the reserve ratio. Whichever side runs out first
	// binds; the other side is scaled down, never up.
	tokenForBase, err := SafeMulDiv(baseDesired, pool.TokenReserve, pool.BaseReserve)
	if err != nil {
		return zero, zero, zero, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}

	if tokenForBase.LTE(tokenDesired) {
		baseDeposit = baseDesired
		tokenDeposit = tokenForBase
		shares, err = SafeMulDiv(pool.ShareSupply, baseDeposit, pool.BaseReserve)
	} else {
		baseDeposit, err = SafeMulDiv(tokenDesired, pool.BaseReserve, pool.TokenReserve)
		if err != nil {
			return zero, zero, zero, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
		}
		tokenDeposit = tokenDesired
		shares, err = SafeMulDiv(pool.ShareSupply, tokenDeposit, pool.TokenReserve)
	}
	if err != nil {
		return zero, zero, zero, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}

	if baseDeposit.IsZero() || tokenDeposit.IsZero() || shares.IsZero() {
		return zero, zero, zero, sdkerrors.Wrap(types.ErrRatioMismatch,
			"deposit too small relative to pool reserves")
	}
	if shares.LT(minShares) {
		return zero, zero, zero, sdkerrors.Wrapf(types.ErrSlippageExceeded,
			"minted %s shares, minimum %s", shares, minShares)
	}

	pool.BaseReserve, err = SafeAdd(pool.BaseReserve, baseDeposit)
	if err != nil {
		return zero, zero, zero, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}
	pool.TokenReserve, err = SafeAdd(pool.TokenReserve, tokenDeposit)
	if err != nil {
		return zero, zero, zero, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}
	pool.ShareSupply, err = SafeAdd(pool.ShareSupply, shares)
	if err != nil {
		return zero, zero, zero, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return zero, zero, zero, err
	}
	k.SetShares(ctx, tokenDenom, provider, k.GetShares(ctx, tokenDenom, provider).Add(shares))

	params, err := k.GetParams(ctx)
	if err != nil {
		return zero, zero, zero, err
	}
	deposit := sdk.NewCoins(
		sdk.NewCoin(params.BaseDenom, baseDeposit),
		sdk.NewCoin(tokenDenom, tokenDeposit),
	)
	if err := k.bankKeeper.SendCoins(ctx, provider, k.moduleAddress, deposit); err != nil {
		return zero, zero, zero, sdkerrors.Wrap(types.ErrTransferFailed, err.Error())
	}

	if k.metrics != nil {
		k.metrics.LiquidityAdded.WithLabelValues(tokenDenom, params.BaseDenom).Add(gaugeValue(baseDeposit))
		k.metrics.LiquidityAdded.WithLabelValues(tokenDenom, tokenDenom).Add(gaugeValue(tokenDeposit))
		k.recordPoolGauges(pool, params.BaseDenom)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyTokenDenom, tokenDenom),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyBaseAmount, baseDeposit.String()),
			sdk.NewAttribute(types.AttributeKeyTokenAmount, tokenDeposit.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return baseDeposit, tokenDeposit, shares, nil
}

// RemoveLiquidity burns shares and pays out the proportional slice of both
// reserves, rounded down. Dust below one unit stays in the pool.
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	tokenDenom string,
	shares, minBase, minToken math.Int,
) (baseOut, tokenOut math.Int, err error) {
	zero := math.Int{}

	if !shares.IsPositive() {
		return zero, zero, sdkerrors.Wrap(types.ErrZeroAmount, "shares to burn must be positive")
	}

	pool, err := k.GetPool(ctx, tokenDenom)
	if err != nil {
		return zero, zero, err
	}

	balance := k.GetShares(ctx, tokenDenom, provider)
	if balance.LT(shares) {
		return zero, zero, sdkerrors.Wrapf(types.ErrInsufficientShares,
			"have %s, need %s", balance, shares)
	}

	baseOut, err = SafeMulDiv(pool.BaseReserve, shares, pool.ShareSupply)
	if err != nil {
		return zero, zero, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}
	tokenOut, err = SafeMulDiv(pool.TokenReserve, shares, pool.ShareSupply)
	if err != nil {
		return zero, zero, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}

	if baseOut.LT(minBase) || tokenOut.LT(minToken) {
		return zero, zero, sdkerrors.Wrapf(types.ErrSlippageExceeded,
			"payout %s base / %s token below minimum %s / %s", baseOut, tokenOut, minBase, minToken)
	}

	pool.BaseReserve, err = SafeSub(pool.BaseReserve, baseOut)
	if err != nil {
		return zero, zero, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}
	pool.TokenReserve, err = SafeSub(pool.TokenReserve, tokenOut)
	if err != nil {
		return zero, zero, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}
	pool.ShareSupply, err = SafeSub(pool.ShareSupply, shares)
	if err != nil {
		return zero, zero, sdkerrors.Wrap(types.ErrArithmetic, err.Error())
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return zero, zero, err
	}
	k.SetShares(ctx, tokenDenom, provider, balance.Sub(shares))

	params, err := k.GetParams(ctx)
	if err != nil {
		return zero, zero, err
	}
	payout := sdk.NewCoins(
		sdk.NewCoin(params.BaseDenom, baseOut),
		sdk.NewCoin(tokenDenom, tokenOut),
	)
	if err := k.bankKeeper.SendCoins(ctx, k.moduleAddress, provider, payout); err != nil {
		return zero, zero, sdkerrors.Wrap(types.ErrTransferFailed, err.Error())
	}

	if k.metrics != nil {
		k.metrics.LiquidityRemoved.WithLabelValues(tokenDenom, params.BaseDenom).Add(gaugeValue(baseOut))
		k.metrics.LiquidityRemoved.WithLabelValues(tokenDenom, tokenDenom).Add(gaugeValue(tokenOut))
		k.recordPoolGauges(pool, params.BaseDenom)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyTokenDenom, tokenDenom),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyBaseAmount, baseOut.String()),
			sdk.NewAttribute(types.AttributeKeyTokenAmount, tokenOut.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return baseOut, tokenOut, nil
}

// TransferShares moves pool shares between holders without touching the
// reserves or the share supply.
func (k Keeper) TransferShares(
	ctx context.Context,
	sender, recipient sdk.AccAddress,
	tokenDenom string,
	shares math.Int,
) error {
	if !shares.IsPositive() {
		return sdkerrors.Wrap(types.ErrZeroAmount, "shares to transfer must be positive")
	}

	if _, err := k.GetPool(ctx, tokenDenom); err != nil {
		return err
	}

	senderBalance := k.GetShares(ctx, tokenDenom, sender)
	if senderBalance.LT(shares) {
		return sdkerrors.Wrapf(types.ErrInsufficientShares,
			"have %s, need %s", senderBalance, shares)
	}

	// A self-transfer validates but moves nothing.
	if !sender.Equals(recipient) {
		k.SetShares(ctx, tokenDenom, sender, senderBalance.Sub(shares))
		k.SetShares(ctx, tokenDenom, recipient, k.GetShares(ctx, tokenDenom, recipient).Add(shares))
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransferShares,
			sdk.NewAttribute(types.AttributeKeyTokenDenom, tokenDenom),
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return nil
}
