package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "drc",
	Short: "Board design rule checker",
	Long: `drc runs the board design-rule-check engine against a board
description and reports any violation not already present in an
approval file.

Examples:
  drc check board.json
  drc check board.json --config drc.toml --approved board.approved
  drc inspect-key board.approved`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
