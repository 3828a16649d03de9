package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sdkerrors "cosmossdk.io/errors"
)

var _ sdk.Msg = &MsgTransferShares{}

// MsgTransferShares moves pool shares from one holder to another without
// touching the reserves.
type MsgTransferShares struct {
	Sender     string   `json:"sender"`
	Recipient  string   `json:"recipient"`
	TokenDenom string   `json:"token_denom"`
	Shares     math.Int `json:"shares"`
}

// NewMsgTransferShares creates a new MsgTransferShares instance
func NewMsgTransferShares(sender, recipient, tokenDenom string, shares math.Int) *MsgTransferShares {
	return &MsgTransferShares{
		Sender:     sender,
		Recipient:  recipient,
		TokenDenom: tokenDenom,
		Shares:     shares,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgTransferShares) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgTransferShares) Type() string {
	return "transfer_shares"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgTransferShares) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgTransferShares) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgTransferShares) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.TokenDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenDenom, "invalid token denom: %s", err)
	}

	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "shares must be positive")
	}

	return nil
}

func (msg *MsgTransferShares) Reset()              { *msg = MsgTransferShares{} }
func (msg *MsgTransferShares) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgTransferShares) ProtoMessage()           {}
func (*MsgTransferShares) XXX_MessageName() string { return "arcadex.exchange.v1.MsgTransferShares" }
