package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

func validGenesis() *types.GenesisState {
	return types.NewGenesisState(
		types.DefaultParams(),
		[]types.Pool{
			{TokenDenom: "tokena", BaseReserve: math.NewInt(1000), TokenReserve: math.NewInt(2000), ShareSupply: math.NewInt(1414)},
			{TokenDenom: "tokenb", BaseReserve: math.NewInt(500), TokenReserve: math.NewInt(500), ShareSupply: math.NewInt(500)},
		},
		[]types.SharePosition{
			{TokenDenom: "tokena", Provider: addr1, Shares: math.NewInt(1000)},
			{TokenDenom: "tokena", Provider: addr2, Shares: math.NewInt(414)},
			{TokenDenom: "tokenb", Provider: addr1, Shares: math.NewInt(500)},
		},
	)
}

func TestGenesisStateValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
	require.NoError(t, validGenesis().Validate())

	tests := []struct {
		name   string
		mutate func(gs *types.GenesisState)
	}{
		{
			name: "duplicate pool",
			mutate: func(gs *types.GenesisState) {
				gs.Pools = append(gs.Pools, gs.Pools[0])
			},
		},
		{
			name: "pool over base denom",
			mutate: func(gs *types.GenesisState) {
				gs.Pools[0].TokenDenom = gs.Params.BaseDenom
			},
		},
		{
			name: "negative reserve",
			mutate: func(gs *types.GenesisState) {
				gs.Pools[0].BaseReserve = math.NewInt(-1)
			},
		},
		{
			name: "supply without reserves",
			mutate: func(gs *types.GenesisState) {
				gs.Pools[0].BaseReserve = math.ZeroInt()
			},
		},
		{
			name: "supply mismatch",
			mutate: func(gs *types.GenesisState) {
				gs.Pools[0].ShareSupply = math.NewInt(9999)
			},
		},
		{
			name: "orphan position",
			mutate: func(gs *types.GenesisState) {
				gs.Positions = append(gs.Positions, types.SharePosition{
					TokenDenom: "tokenc", Provider: addr1, Shares: math.NewInt(1),
				})
			},
		},
		{
			name: "duplicate position",
			mutate: func(gs *types.GenesisState) {
				gs.Positions = append(gs.Positions, gs.Positions[0])
			},
		},
		{
			name: "bad position provider",
			mutate: func(gs *types.GenesisState) {
				gs.Positions[0].Provider = "notbech32"
			},
		},
		{
			name: "bad params",
			mutate: func(gs *types.GenesisState) {
				gs.Params.FeeDenominator = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := validGenesis()
			tt.mutate(gs)
			require.Error(t, gs.Validate())
		})
	}
}
