package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

// InitGenesis initializes the exchange module state from a genesis state.
// The state is expected to be validated already.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Errorf("exchange InitGenesis: params: %w", err))
	}

	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			panic(fmt.Errorf("exchange InitGenesis: pool %s: %w", pool.TokenDenom, err))
		}
	}

	for _, pos := range genState.Positions {
		provider, err := sdk.AccAddressFromBech32(pos.Provider)
		if err != nil {
			panic(fmt.Errorf("exchange InitGenesis: position provider %s: %w", pos.Provider, err))
		}
		k.SetShares(ctx, pos.TokenDenom, provider, pos.Shares)
	}
}

// ExportGenesis returns the exchange module's state for a genesis file.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(fmt.Errorf("exchange ExportGenesis: params: %w", err))
	}

	pools := k.GetAllPools(ctx)
	if pools == nil {
		pools = []types.Pool{}
	}

	positions := []types.SharePosition{}
	k.IterateSharePositions(ctx, func(tokenDenom string, provider sdk.AccAddress, shares math.Int) bool {
		positions = append(positions, types.SharePosition{
			TokenDenom: tokenDenom,
			Provider:   provider.String(),
			Shares:     shares,
		})
		return false
	})

	return types.NewGenesisState(params, pools, positions)
}
