package main

import (
	"os"

	"github.com/arcadex-chain/arcadex/cmd/arcadexd/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
