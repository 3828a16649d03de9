package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState defines the exchange module's genesis state.
type GenesisState struct {
	Params    Params          `json:"params"`
	Pools     []Pool          `json:"pools"`
	Positions []SharePosition `json:"positions"`
}

// NewGenesisState creates a new GenesisState instance.
func NewGenesisState(params Params, pools []Pool, positions []SharePosition) *GenesisState {
	return &GenesisState{
		Params:    params,
		Pools:     pools,
		Positions: positions,
	}
}

// DefaultGenesis returns the default genesis state: default params, no pools.
func DefaultGenesis() *GenesisState {
	return NewGenesisState(DefaultParams(), []Pool{}, []SharePosition{})
}

// Validate performs basic genesis state validation: well-formed records,
// unique pools, and per-pool share supply equal to the sum of positions.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	supplies := make(map[string]math.Int, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		if pool.TokenDenom == gs.Params.BaseDenom {
			return fmt.Errorf("pool token denom %s cannot equal the base denom", pool.TokenDenom)
		}
		if _, ok := supplies[pool.TokenDenom]; ok {
			return fmt.Errorf("duplicate pool for token %s", pool.TokenDenom)
		}
		supplies[pool.TokenDenom] = math.ZeroInt()
	}

	seen := make(map[string]struct{}, len(gs.Positions))
	for _, pos := range gs.Positions {
		if err := pos.Validate(); err != nil {
			return err
		}
		sum, ok := supplies[pos.TokenDenom]
		if !ok {
			return fmt.Errorf("share position references unknown pool %s", pos.TokenDenom)
		}
		key := pos.TokenDenom + "/" + pos.Provider
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate share position for %s in pool %s", pos.Provider, pos.TokenDenom)
		}
		seen[key] = struct{}{}
		supplies[pos.TokenDenom] = sum.Add(pos.Shares)
	}

	for _, pool := range gs.Pools {
		if !supplies[pool.TokenDenom].Equal(pool.ShareSupply) {
			return fmt.Errorf("pool %s share supply %s does not match sum of positions %s",
				pool.TokenDenom, pool.ShareSupply, supplies[pool.TokenDenom])
		}
	}

	return nil
}
