package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sdkerrors "cosmossdk.io/errors"
)

var _ sdk.Msg = &MsgRemoveLiquidity{}

// MsgRemoveLiquidity burns pool shares and withdraws the proportional slice
// of both reserves.
type MsgRemoveLiquidity struct {
	Provider   string   `json:"provider"`
	TokenDenom string   `json:"token_denom"`
	Shares     math.Int `json:"shares"`
	MinBase    math.Int `json:"min_base"`
	MinToken   math.Int `json:"min_token"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider, tokenDenom string, shares, minBase, minToken math.Int) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider:   provider,
		TokenDenom: tokenDenom,
		Shares:     shares,
		MinBase:    minBase,
		MinToken:   minToken,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string {
	return "remove_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.TokenDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenDenom, "invalid token denom: %s", err)
	}

	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "shares must be positive")
	}

	if msg.MinBase.IsNil() || msg.MinBase.IsNegative() {
		return sdkerrors.Wrap(ErrZeroAmount, "min base cannot be negative")
	}

	if msg.MinToken.IsNil() || msg.MinToken.IsNegative() {
		return sdkerrors.Wrap(ErrZeroAmount, "min token cannot be negative")
	}

	return nil
}

func (msg *MsgRemoveLiquidity) Reset()              { *msg = MsgRemoveLiquidity{} }
func (msg *MsgRemoveLiquidity) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgRemoveLiquidity) ProtoMessage()           {}
func (*MsgRemoveLiquidity) XXX_MessageName() string { return "arcadex.exchange.v1.MsgRemoveLiquidity" }
