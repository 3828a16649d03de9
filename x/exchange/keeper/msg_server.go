package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sdkerrors "cosmossdk.io/errors"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

type msgServer struct {
	Keeper *Keeper
}

// NewMsgServerImpl returns an implementation of the exchange MsgServer
// interface for the provided Keeper.
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// branch returns a cached context and its commit func. Handlers run keeper
// logic against the cache and commit only on success, so a failure anywhere
// in an operation leaves no partial writes behind.
func branch(goCtx context.Context) (sdk.Context, func()) {
	sdkCtx := sdk.UnwrapSDKContext(goCtx)
	return sdkCtx.CacheContext()
}

// AddLiquidity handles MsgAddLiquidity
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidAddress, err.Error())
	}

	cacheCtx, commit := branch(goCtx)
	baseDeposit, tokenDeposit, shares, err := ms.Keeper.AddLiquidity(
		cacheCtx, provider, msg.TokenDenom, msg.BaseAmount, msg.TokenAmount, msg.MinShares)
	if err != nil {
		return nil, err
	}
	commit()

	return &types.MsgAddLiquidityResponse{
		BaseDeposited:  baseDeposit,
		TokenDeposited: tokenDeposit,
		SharesMinted:   shares,
	}, nil
}

// RemoveLiquidity handles MsgRemoveLiquidity
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidAddress, err.Error())
	}

	cacheCtx, commit := branch(goCtx)
	baseOut, tokenOut, err := ms.Keeper.RemoveLiquidity(
		cacheCtx, provider, msg.TokenDenom, msg.Shares, msg.MinBase, msg.MinToken)
	if err != nil {
		return nil, err
	}
	commit()

	return &types.MsgRemoveLiquidityResponse{
		BaseWithdrawn:  baseOut,
		TokenWithdrawn: tokenOut,
	}, nil
}

// SwapBaseForToken handles MsgSwapBaseForToken
func (ms msgServer) SwapBaseForToken(goCtx context.Context, msg *types.MsgSwapBaseForToken) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidAddress, err.Error())
	}

	cacheCtx, commit := branch(goCtx)
	amountOut, err := ms.Keeper.SwapBaseForToken(cacheCtx, trader, msg.TokenDenom, msg.AmountIn, msg.MinOut)
	if err != nil {
		return nil, err
	}
	commit()

	return &types.MsgSwapResponse{AmountOut: amountOut}, nil
}

// SwapTokenForBase handles MsgSwapTokenForBase
func (ms msgServer) SwapTokenForBase(goCtx context.Context, msg *types.MsgSwapTokenForBase) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidAddress, err.Error())
	}

	cacheCtx, commit := branch(goCtx)
	amountOut, err := ms.Keeper.SwapTokenForBase(cacheCtx, trader, msg.TokenDenom, msg.AmountIn, msg.MinOut)
	if err != nil {
		return nil, err
	}
	commit()

	return &types.MsgSwapResponse{AmountOut: amountOut}, nil
}

// SwapTokenForToken handles MsgSwapTokenForToken
func (ms msgServer) SwapTokenForToken(goCtx context.Context, msg *types.MsgSwapTokenForToken) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidAddress, err.Error())
	}

	cacheCtx, commit := branch(goCtx)
	amountOut, err := ms.Keeper.SwapTokenForToken(cacheCtx, trader, msg.DenomIn, msg.DenomOut, msg.AmountIn, msg.MinOut)
	if err != nil {
		return nil, err
	}
	commit()

	return &types.MsgSwapResponse{AmountOut: amountOut}, nil
}

// TransferShares handles MsgTransferShares
func (ms msgServer) TransferShares(goCtx context.Context, msg *types.MsgTransferShares) (*types.MsgTransferSharesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidAddress, err.Error())
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidAddress, err.Error())
	}

	cacheCtx, commit := branch(goCtx)
	if err := ms.Keeper.TransferShares(cacheCtx, sender, recipient, msg.TokenDenom, msg.Shares); err != nil {
		return nil, err
	}
	commit()

	return &types.MsgTransferSharesResponse{}, nil
}

// UpdateParams handles MsgUpdateParams
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if msg.Authority != ms.Keeper.GetAuthority() {
		return nil, sdkerrors.Wrapf(types.ErrUnauthorized,
			"expected authority %s, got %s", ms.Keeper.GetAuthority(), msg.Authority)
	}

	sdkCtx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.SetParams(sdkCtx, msg.Params); err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateParams,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
		),
	)

	return &types.MsgUpdateParamsResponse{}, nil
}
