package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sdkerrors "cosmossdk.io/errors"
)

var (
	_ sdk.Msg = &MsgSwapBaseForToken{}
	_ sdk.Msg = &MsgSwapTokenForBase{}
	_ sdk.Msg = &MsgSwapTokenForToken{}
)

// MsgSwapBaseForToken trades the base asset for a pool's token.
type MsgSwapBaseForToken struct {
	Trader     string   `json:"trader"`
	TokenDenom string   `json:"token_denom"`
	AmountIn   math.Int `json:"amount_in"`
	MinOut     math.Int `json:"min_out"`
}

// MsgSwapTokenForBase trades a pool's token for the base asset.
type MsgSwapTokenForBase struct {
	Trader     string   `json:"trader"`
	TokenDenom string   `json:"token_denom"`
	AmountIn   math.Int `json:"amount_in"`
	MinOut     math.Int `json:"min_out"`
}

// MsgSwapTokenForToken trades one token for another through two pools,
// bridged by the base asset. Both legs settle atomically.
type MsgSwapTokenForToken struct {
	Trader   string   `json:"trader"`
	DenomIn  string   `json:"denom_in"`
	DenomOut string   `json:"denom_out"`
	AmountIn math.Int `json:"amount_in"`
	MinOut   math.Int `json:"min_out"`
}

// NewMsgSwapBaseForToken creates a new MsgSwapBaseForToken instance
func NewMsgSwapBaseForToken(trader, tokenDenom string, amountIn, minOut math.Int) *MsgSwapBaseForToken {
	return &MsgSwapBaseForToken{
		Trader:     trader,
		TokenDenom: tokenDenom,
		AmountIn:   amountIn,
		MinOut:     minOut,
	}
}

// NewMsgSwapTokenForBase creates a new MsgSwapTokenForBase instance
func NewMsgSwapTokenForBase(trader, tokenDenom string, amountIn, minOut math.Int) *MsgSwapTokenForBase {
	return &MsgSwapTokenForBase{
		Trader:     trader,
		TokenDenom: tokenDenom,
		AmountIn:   amountIn,
		MinOut:     minOut,
	}
}

// NewMsgSwapTokenForToken creates a new MsgSwapTokenForToken instance
func NewMsgSwapTokenForToken(trader, denomIn, denomOut string, amountIn, minOut math.Int) *MsgSwapTokenForToken {
	return &MsgSwapTokenForToken{
		Trader:   trader,
		DenomIn:  denomIn,
		DenomOut: denomOut,
		AmountIn: amountIn,
		MinOut:   minOut,
	}
}

func validateSwapFields(trader, tokenDenom string, amountIn, minOut math.Int) error {
	if _, err := sdk.AccAddressFromBech32(trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}
	if err := sdk.ValidateDenom(tokenDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenDenom, "invalid token denom: %s", err)
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "input amount must be positive")
	}
	if minOut.IsNil() || minOut.IsNegative() {
		return sdkerrors.Wrap(ErrZeroAmount, "min out cannot be negative")
	}
	return nil
}

// Route implements the sdk.Msg interface
func (msg MsgSwapBaseForToken) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSwapBaseForToken) Type() string { return "swap_base_for_token" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapBaseForToken) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapBaseForToken) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapBaseForToken) ValidateBasic() error {
	return validateSwapFields(msg.Trader, msg.TokenDenom, msg.AmountIn, msg.MinOut)
}

// Route implements the sdk.Msg interface
func (msg MsgSwapTokenForBase) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSwapTokenForBase) Type() string { return "swap_token_for_base" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapTokenForBase) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapTokenForBase) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapTokenForBase) ValidateBasic() error {
	return validateSwapFields(msg.Trader, msg.TokenDenom, msg.AmountIn, msg.MinOut)
}

// Route implements the sdk.Msg interface
func (msg MsgSwapTokenForToken) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSwapTokenForToken) Type() string { return "swap_token_for_token" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapTokenForToken) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapTokenForToken) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapTokenForToken) ValidateBasic() error {
	if err := validateSwapFields(msg.Trader, msg.DenomIn, msg.AmountIn, msg.MinOut); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.DenomOut); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenDenom, "invalid output denom: %s", err)
	}
	if msg.DenomIn == msg.DenomOut {
		return sdkerrors.Wrap(ErrInvalidTokenDenom, "input and output tokens must differ")
	}
	return nil
}

func (msg *MsgSwapBaseForToken) Reset()          { *msg = MsgSwapBaseForToken{} }
func (msg *MsgSwapBaseForToken) String() string  { return fmt.Sprintf("%+v", *msg) }
func (*MsgSwapBaseForToken) ProtoMessage()       {}
func (*MsgSwapBaseForToken) XXX_MessageName() string {
	return "arcadex.exchange.v1.MsgSwapBaseForToken"
}

func (msg *MsgSwapTokenForBase) Reset()         { *msg = MsgSwapTokenForBase{} }
func (msg *MsgSwapTokenForBase) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSwapTokenForBase) ProtoMessage()      {}
func (*MsgSwapTokenForBase) XXX_MessageName() string {
	return "arcadex.exchange.v1.MsgSwapTokenForBase"
}

func (msg *MsgSwapTokenForToken) Reset()         { *msg = MsgSwapTokenForToken{} }
func (msg *MsgSwapTokenForToken) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSwapTokenForToken) ProtoMessage()      {}
func (*MsgSwapTokenForToken) XXX_MessageName() string {
	return "arcadex.exchange.v1.MsgSwapTokenForToken"
}
