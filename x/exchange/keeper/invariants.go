package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

// RegisterInvariants registers the exchange module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-records", PoolRecordsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
}

// AllInvariants runs every exchange invariant
func AllInvariants(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if msg, broken := PoolRecordsInvariant(k)(ctx); broken {
			return msg, broken
		}
		if msg, broken := ShareSupplyInvariant(k)(ctx); broken {
			return msg, broken
		}
		return ReserveBackingInvariant(k)(ctx)
	}
}

// PoolRecordsInvariant checks that every stored pool record is internally
// consistent: non-negative amounts, and reserves zero exactly when the share
// supply is zero.
func PoolRecordsInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var msg string

		k.IteratePools(ctx, func(pool types.Pool) bool {
			if err := pool.Validate(); err != nil {
				broken = true
				msg = fmt.Sprintf("pool %s: %s\n", pool.TokenDenom, err)
				return true
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "pool-records", msg), broken
	}
}

// ShareSupplyInvariant checks that each pool's share supply equals the sum
// of all provider balances for that pool.
func ShareSupplyInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sums := make(map[string]math.Int)
		k.IterateSharePositions(ctx, func(tokenDenom string, _ sdk.AccAddress, shares math.Int) bool {
			sum, ok := sums[tokenDenom]
			if !ok {
				sum = math.ZeroInt()
			}
			sums[tokenDenom] = sum.Add(shares)
			return false
		})

		var broken bool
		var msg string

		k.IteratePools(ctx, func(pool types.Pool) bool {
			sum, ok := sums[pool.TokenDenom]
			if !ok {
				sum = math.ZeroInt()
			}
			if !sum.Equal(pool.ShareSupply) {
				broken = true
				msg += fmt.Sprintf("pool %s: share supply %s, sum of balances %s\n",
					pool.TokenDenom, pool.ShareSupply, sum)
			}
			delete(sums, pool.TokenDenom)
			return false
		})

		for tokenDenom := range sums {
			broken = true
			msg += fmt.Sprintf("share balances for unknown pool %s\n", tokenDenom)
		}

		return sdk.FormatInvariant(types.ModuleName, "share-supply", msg), broken
	}
}

// ReserveBackingInvariant checks that the module account holds at least the
// assets the pool ledger claims. Tracked reserves drive all settlement; the
// bank balance may only exceed them (e.g. coins sent directly to the module
// account), never fall short.
func ReserveBackingInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reserve-backing", err.Error()), true
		}

		var broken bool
		var msg string
		baseTotal := math.ZeroInt()

		k.IteratePools(ctx, func(pool types.Pool) bool {
			baseTotal = baseTotal.Add(pool.BaseReserve)
			tokenBalance := k.bankKeeper.GetBalance(ctx, k.moduleAddress, pool.TokenDenom).Amount
			if tokenBalance.LT(pool.TokenReserve) {
				broken = true
				msg += fmt.Sprintf("pool %s: token reserve %s exceeds module balance %s\n",
					pool.TokenDenom, pool.TokenReserve, tokenBalance)
			}
			return false
		})

		baseBalance := k.bankKeeper.GetBalance(ctx, k.moduleAddress, params.BaseDenom).Amount
		if baseBalance.LT(baseTotal) {
			broken = true
			msg += fmt.Sprintf("total base reserves %s exceed module balance %s\n", baseTotal, baseBalance)
		}

		return sdk.FormatInvariant(types.ModuleName, "reserve-backing", msg), broken
	}
}
