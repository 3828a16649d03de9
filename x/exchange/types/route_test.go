package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

func TestSwapRoutePools(t *testing.T) {
	require.Equal(t, []string{"tokena"}, types.NewBaseForTokenRoute("tokena").Pools())
	require.Equal(t, []string{"tokena"}, types.NewTokenForBaseRoute("tokena").Pools())
	require.Equal(t, []string{"tokena", "tokenb"}, types.NewTokenForTokenRoute("tokena", "tokenb").Pools())
}

func TestSwapRouteValidate(t *testing.T) {
	require.NoError(t, types.NewBaseForTokenRoute("tokena").Validate())
	require.NoError(t, types.NewTokenForBaseRoute("tokena").Validate())
	require.NoError(t, types.NewTokenForTokenRoute("tokena", "tokenb").Validate())

	require.Error(t, types.NewBaseForTokenRoute("").Validate())
	require.Error(t, types.NewTokenForBaseRoute("").Validate())
	require.Error(t, types.NewTokenForTokenRoute("tokena", "tokena").Validate())
	require.Error(t, types.NewTokenForTokenRoute("", "tokenb").Validate())
	require.Error(t, types.SwapRoute{Kind: types.RouteKind(42), DenomIn: "tokena"}.Validate())
}
