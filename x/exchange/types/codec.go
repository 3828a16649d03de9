package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "exchange/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "exchange/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwapBaseForToken{}, "exchange/MsgSwapBaseForToken", nil)
	cdc.RegisterConcrete(&MsgSwapTokenForBase{}, "exchange/MsgSwapTokenForBase", nil)
	cdc.RegisterConcrete(&MsgSwapTokenForToken{}, "exchange/MsgSwapTokenForToken", nil)
	cdc.RegisterConcrete(&MsgTransferShares{}, "exchange/MsgTransferShares", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "exchange/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgAddLiquidity{},
		&MsgRemoveLiquidity{},
		&MsgSwapBaseForToken{},
		&MsgSwapTokenForBase{},
		&MsgSwapTokenForToken{},
		&MsgTransferShares{},
		&MsgUpdateParams{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
