package types

const (
	// ModuleName defines the module name
	ModuleName = "exchange"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	PoolKeyPrefix  = []byte{0x01} // prefix for pool records, keyed by token denom
	ShareKeyPrefix = []byte{0x02} // prefix for provider share balances
	ParamsKey      = []byte{0x03} // key for module parameters
)

// GetPoolKey returns the store key for the pool trading the given token.
func GetPoolKey(tokenDenom string) []byte {
	return append(PoolKeyPrefix, []byte(tokenDenom)...)
}

// GetSharePoolPrefix returns the store prefix covering every share balance
// held against a single pool. The denom is length-prefixed so one pool's
// range can never bleed into another's.
func GetSharePoolPrefix(tokenDenom string) []byte {
	key := append(ShareKeyPrefix, byte(len(tokenDenom)))
	return append(key, []byte(tokenDenom)...)
}

// GetShareKey returns the store key for a provider's share balance in a pool.
func GetShareKey(tokenDenom string, provider []byte) []byte {
	return append(GetSharePoolPrefix(tokenDenom), provider...)
}
