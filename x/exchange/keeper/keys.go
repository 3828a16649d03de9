package keeper

import (
	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

// Store keys, re-exported from types for keeper-internal use.
var (
	PoolKeyPrefix  = types.PoolKeyPrefix
	ShareKeyPrefix = types.ShareKeyPrefix
	ParamsKey      = types.ParamsKey
)
