package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sdkerrors "cosmossdk.io/errors"
)

var _ sdk.Msg = &MsgAddLiquidity{}

// MsgAddLiquidity deposits base and token into a pool, creating the pool if
// it does not exist yet. BaseAmount and TokenAmount are upper bounds; the
// actual deposit is scaled down to the pool's reserve ratio.
type MsgAddLiquidity struct {
	Provider    string   `json:"provider"`
	TokenDenom  string   `json:"token_denom"`
	BaseAmount  math.Int `json:"base_amount"`
	TokenAmount math.Int `json:"token_amount"`
	MinShares   math.Int `json:"min_shares"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider, tokenDenom string, baseAmount, tokenAmount, minShares math.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider:    provider,
		TokenDenom:  tokenDenom,
		BaseAmount:  baseAmount,
		TokenAmount: tokenAmount,
		MinShares:   minShares,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string {
	return "add_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.TokenDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenDenom, "invalid token denom: %s", err)
	}

	if msg.BaseAmount.IsNil() || !msg.BaseAmount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "base amount must be positive")
	}

	if msg.TokenAmount.IsNil() || !msg.TokenAmount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "token amount must be positive")
	}

	if msg.MinShares.IsNil() || msg.MinShares.IsNegative() {
		return sdkerrors.Wrap(ErrZeroAmount, "min shares cannot be negative")
	}

	return nil
}

func (msg *MsgAddLiquidity) Reset()                  { *msg = MsgAddLiquidity{} }
func (msg *MsgAddLiquidity) String() string          { return fmt.Sprintf("%+v", *msg) }
func (*MsgAddLiquidity) ProtoMessage()               {}
func (*MsgAddLiquidity) XXX_MessageName() string     { return "arcadex.exchange.v1.MsgAddLiquidity" }
