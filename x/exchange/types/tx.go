package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the transaction-handling surface of the exchange module.
type MsgServer interface {
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	SwapBaseForToken(context.Context, *MsgSwapBaseForToken) (*MsgSwapResponse, error)
	SwapTokenForBase(context.Context, *MsgSwapTokenForBase) (*MsgSwapResponse, error)
	SwapTokenForToken(context.Context, *MsgSwapTokenForToken) (*MsgSwapResponse, error)
	TransferShares(context.Context, *MsgTransferShares) (*MsgTransferSharesResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgAddLiquidityResponse reports the actual deposit and the shares minted.
type MsgAddLiquidityResponse struct {
	BaseDeposited  math.Int `json:"base_deposited"`
	TokenDeposited math.Int `json:"token_deposited"`
	SharesMinted   math.Int `json:"shares_minted"`
}

// MsgRemoveLiquidityResponse reports the amounts paid out for burnt shares.
type MsgRemoveLiquidityResponse struct {
	BaseWithdrawn  math.Int `json:"base_withdrawn"`
	TokenWithdrawn math.Int `json:"token_withdrawn"`
}

// MsgSwapResponse reports the output amount of a swap.
type MsgSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgTransferSharesResponse is the empty response of a share transfer.
type MsgTransferSharesResponse struct{}

// MsgUpdateParamsResponse is the empty response of a parameter update.
type MsgUpdateParamsResponse struct{}
