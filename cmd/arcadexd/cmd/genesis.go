package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadex-chain/arcadex/x/exchange/types"
)

// GenesisCmd groups genesis file tooling.
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Genesis file tooling for the exchange module",
	}

	cmd.AddCommand(genesisValidateCmd(), genesisDefaultCmd())

	return cmd
}

func genesisValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate an exchange module genesis state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var state types.GenesisState
			if err := types.ModuleCdc.LegacyAmino.UnmarshalJSON(bz, &state); err != nil {
				return fmt.Errorf("unmarshal genesis state: %w", err)
			}

			if err := state.Validate(); err != nil {
				return fmt.Errorf("invalid genesis state: %w", err)
			}

			cmd.Printf("valid: %d pools, %d positions\n", len(state.Pools), len(state.Positions))
			return nil
		},
	}
}

func genesisDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Print the default exchange module genesis state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bz, err := types.ModuleCdc.LegacyAmino.MarshalJSONIndent(types.DefaultGenesis(), "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(bz))
			return nil
		},
	}
}
