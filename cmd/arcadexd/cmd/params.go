package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

// ParamsCmd prints the default module parameters.
func ParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the default exchange module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bz, err := types.ModuleCdc.LegacyAmino.MarshalJSONIndent(types.DefaultParams(), "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(bz))
			return nil
		},
	}
}
