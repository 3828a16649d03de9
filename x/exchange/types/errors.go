package types

import (
	"cosmossdk.io/errors"
)

// Exchange module sentinel errors
var (
	ErrPoolNotFound          = errors.Register(ModuleName, 2, "pool not found")
	ErrPoolAlreadyExists     = errors.Register(ModuleName, 3, "pool already exists")
	ErrZeroAmount            = errors.Register(ModuleName, 4, "amount cannot be zero")
	ErrInsufficientReserve   = errors.Register(ModuleName, 5, "insufficient pool reserve")
	ErrInsufficientShares    = errors.Register(ModuleName, 6, "insufficient liquidity shares")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 7, "insufficient liquidity in pool")
	ErrRatioMismatch         = errors.Register(ModuleName, 8, "deposit does not match pool ratio")
	ErrSlippageExceeded      = errors.Register(ModuleName, 9, "output below minimum required")
	ErrArithmetic            = errors.Register(ModuleName, 10, "arithmetic overflow")
	ErrTransferFailed        = errors.Register(ModuleName, 11, "asset transfer failed")
	ErrUnauthorized          = errors.Register(ModuleName, 12, "unauthorized")
	ErrInvalidAddress        = errors.Register(ModuleName, 13, "invalid address")
	ErrInvalidTokenDenom     = errors.Register(ModuleName, 14, "invalid token denomination")
	ErrInvalidPoolState      = errors.Register(ModuleName, 15, "invalid pool state")
)
