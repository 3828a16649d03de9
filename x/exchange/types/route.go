package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// RouteKind distinguishes the three supported swap directions.
type RouteKind uint8

const (
	RouteBaseForToken RouteKind = iota + 1
	RouteTokenForBase
	RouteTokenForToken
)

// SwapRoute names the pools a trade passes through. Single-hop routes touch
// one pool; a token-for-token route is two hops bridged by the base asset.
type SwapRoute struct {
	Kind     RouteKind
	DenomIn  string
	DenomOut string
}

// NewBaseForTokenRoute routes base in, token out through the token's pool.
func NewBaseForTokenRoute(tokenDenom string) SwapRoute {
	return SwapRoute{Kind: RouteBaseForToken, DenomOut: tokenDenom}
}

// NewTokenForBaseRoute routes token in, base out through the token's pool.
func NewTokenForBaseRoute(tokenDenom string) SwapRoute {
	return SwapRoute{Kind: RouteTokenForBase, DenomIn: tokenDenom}
}

// NewTokenForTokenRoute routes through two pools via the base asset.
func NewTokenForTokenRoute(denomIn, denomOut string) SwapRoute {
	return SwapRoute{Kind: RouteTokenForToken, DenomIn: denomIn, DenomOut: denomOut}
}

// Pools returns the token denoms of the pools the route touches, in hop order.
func (r SwapRoute) Pools() []string {
	switch r.Kind {
	case RouteBaseForToken:
		return []string{r.DenomOut}
	case RouteTokenForBase:
		return []string{r.DenomIn}
	case RouteTokenForToken:
		return []string{r.DenomIn, r.DenomOut}
	}
	return nil
}

// Validate checks the route shape.
func (r SwapRoute) Validate() error {
	switch r.Kind {
	case RouteBaseForToken:
		if r.DenomOut == "" {
			return sdkerrors.Wrap(ErrInvalidTokenDenom, "output token denom cannot be empty")
		}
	case RouteTokenForBase:
		if r.DenomIn == "" {
			return sdkerrors.Wrap(ErrInvalidTokenDenom, "input token denom cannot be empty")
		}
	case RouteTokenForToken:
		if r.DenomIn == "" || r.DenomOut == "" {
			return sdkerrors.Wrap(ErrInvalidTokenDenom, "token denoms cannot be empty")
		}
		if r.DenomIn == r.DenomOut {
			return sdkerrors.Wrap(ErrInvalidTokenDenom, "input and output tokens must differ")
		}
	default:
		return sdkerrors.Wrapf(ErrInvalidTokenDenom, "unknown route kind %d", r.Kind)
	}
	return nil
}
