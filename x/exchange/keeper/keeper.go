package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

// Keeper of the exchange store. Pool reserves and share balances live in
// the module's own KVStore; the bank keeper only moves the backing assets.
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        *codec.LegacyAmino
	bankKeeper types.BankKeeper

	// authority is the account allowed to update module parameters,
	// normally the governance module account.
	authority string

	moduleAddress sdk.AccAddress

	// metrics is optional; all recording sites are nil-guarded.
	metrics *Metrics
}

// NewKeeper creates a new exchange Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:      key,
		cdc:           cdc,
		bankKeeper:    bankKeeper,
		authority:     authority,
		moduleAddress: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// SetMetrics attaches Prometheus metrics to the keeper. Without it the
// keeper records nothing.
func (k *Keeper) SetMetrics(m *Metrics) {
	k.metrics = m
}

// GetAuthority returns the module's parameter-update authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the module account address holding pool assets.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddress
}

// getStore returns the KVStore for the exchange module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}
