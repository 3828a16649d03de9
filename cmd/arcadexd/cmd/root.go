package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the arcadex devtool. The tool works
// entirely offline: it validates genesis files and quotes pool math without
// talking to a node.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arcadexd",
		Short: "ArcadeX exchange devtool",
		Long: `Offline tooling for the ArcadeX exchange module: genesis file
validation and deterministic quotes for pool seeding and swaps.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		GenesisCmd(),
		QuoteCmd(),
		ParamsCmd(),
	)

	return rootCmd
}
