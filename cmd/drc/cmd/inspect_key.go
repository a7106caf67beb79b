package cmd

import (
	"fmt"
	"os"

	"github.com/chewxy/sexp"
	"github.com/spf13/cobra"
)

var inspectKeyCmd = &cobra.Command{
	Use:   "inspect-key <approved-file>",
	Short: "Pretty-print the structure of an approval-key file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspectKey,
}

func init() {
	rootCmd.AddCommand(inspectKeyCmd)
}

func runInspectKey(cmd *cobra.Command, args []string) error {
	filename := args[0]
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	exprs, err := sexp.Parse(file)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	fmt.Printf("%s: %d approval key(s)\n", filename, len(exprs))
	for i, e := range exprs {
		if e.IsLeaf() {
			fmt.Printf("  [%d] leaf (%T)\n", i, e)
			continue
		}
		fmt.Printf("  [%d] list (%T), %d leaves\n", i, e, e.LeafCount())
	}
	return nil
}
