package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcadex-chain/arcadex/cmd/arcadexd/cmd"
	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := cmd.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestQuoteSeed(t *testing.T) {
	out, err := execute(t, "quote", "seed", "100", "400")
	require.NoError(t, err)
	require.Contains(t, out, "shares: 200")
}

func TestQuoteSeedRejectsZero(t *testing.T) {
	_, err := execute(t, "quote", "seed", "0", "400")
	require.Error(t, err)
}

func TestQuoteSwap(t *testing.T) {
	out, err := execute(t, "quote", "swap", "1000", "1000", "100")
	require.NoError(t, err)
	require.Contains(t, out, "amount out: 90")
}

func TestQuoteSwapNoFee(t *testing.T) {
	out, err := execute(t, "quote", "swap", "1000", "1000", "100", "--fee-numerator", "0")
	require.NoError(t, err)
	require.Contains(t, out, "amount out: 90")
}

func TestQuoteSwapRejectsBadFee(t *testing.T) {
	_, err := execute(t, "quote", "swap", "1000", "1000", "100", "--fee-denominator", "0")
	require.Error(t, err)
}

func TestGenesisDefaultRoundTrips(t *testing.T) {
	out, err := execute(t, "genesis", "default")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "genesis.json")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))

	out, err = execute(t, "genesis", "validate", path)
	require.NoError(t, err)
	require.Contains(t, out, "valid: 0 pools, 0 positions")
}

func TestGenesisValidateRejectsBadState(t *testing.T) {
	state := types.DefaultGenesis()
	state.Params.FeeDenominator = 0
	bz, err := types.ModuleCdc.LegacyAmino.MarshalJSON(state)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "genesis.json")
	require.NoError(t, os.WriteFile(path, bz, 0o600))

	_, err = execute(t, "genesis", "validate", path)
	require.Error(t, err)
}

func TestParamsPrintsDefaults(t *testing.T) {
	out, err := execute(t, "params")
	require.NoError(t, err)
	require.Contains(t, out, "uarc")
}
