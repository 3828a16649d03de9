package types

// Exchange module event types
const (
	EventTypePoolCreated     = "pool_created"
	EventTypeAddLiquidity    = "add_liquidity"
	EventTypeRemoveLiquidity = "remove_liquidity"
	EventTypeSwap            = "swap"
	EventTypeTransferShares  = "transfer_shares"
	EventTypeUpdateParams    = "update_params"
)

// Exchange module event attribute keys
const (
	AttributeKeyTokenDenom  = "token_denom"
	AttributeKeyProvider    = "provider"
	AttributeKeyTrader      = "trader"
	AttributeKeyBaseAmount  = "base_amount"
	AttributeKeyTokenAmount = "token_amount"
	AttributeKeyShares      = "shares"
	AttributeKeyDenomIn     = "denom_in"
	AttributeKeyDenomOut    = "denom_out"
	AttributeKeyAmountIn    = "amount_in"
	AttributeKeyAmountOut   = "amount_out"
	AttributeKeySender      = "sender"
	AttributeKeyRecipient   = "recipient"
	AttributeKeyAuthority   = "authority"
)
