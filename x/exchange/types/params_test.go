package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())
	require.NoError(t, types.NewParams("uarc", 0, 10000).Validate())

	require.Error(t, types.NewParams("", 100, 10000).Validate())
	require.Error(t, types.NewParams("7denom", 100, 10000).Validate())
	require.Error(t, types.NewParams("uarc", 100, 0).Validate())
	require.Error(t, types.NewParams("uarc", 10000, 10000).Validate())
	require.Error(t, types.NewParams("uarc", 10001, 10000).Validate())
}

func TestDefaultParamsFee(t *testing.T) {
	p := types.DefaultParams()
	require.Equal(t, "uarc", p.BaseDenom)
	require.Equal(t, uint64(100), p.FeeNumerator)
	require.Equal(t, uint64(10000), p.FeeDenominator)
}
