package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Jimyzzp/LibrePCB/pkg/approval"
	"github.com/Jimyzzp/LibrePCB/pkg/drc"
	"github.com/Jimyzzp/LibrePCB/pkg/drcsettings"
)

var (
	checkConfigFile   string
	checkApprovedFile string
	checkQuick        bool
)

var checkCmd = &cobra.Command{
	Use:   "check <board.json>",
	Short: "Run the design rule checker against a board fixture",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkConfigFile, "config", "", "TOML file overriding default DRC settings")
	checkCmd.Flags().StringVar(&checkApprovedFile, "approved", "", "canonical S-expression approval file")
	checkCmd.Flags().BoolVar(&checkQuick, "quick", false, "run only the quick-safe subset of checks")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	model, err := LoadBoardFixture(path)
	if err != nil {
		return fmt.Errorf("load board: %w", err)
	}

	v := viper.New()
	drcsettings.SetDefaults(v)
	if checkConfigFile != "" {
		v.SetConfigFile(checkConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	settings := drcsettings.LoadViper(v)

	var approved approval.Set
	if checkApprovedFile != "" {
		f, err := os.Open(checkApprovedFile)
		if err != nil {
			return fmt.Errorf("open approved file: %w", err)
		}
		approved, err = approval.LoadSet(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("load approved file: %w", err)
		}
	}

	outcome, err := drc.Run(context.Background(), model, settings, checkQuick, drc.NopReporter{})
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	approvedCount, remaining := approval.Resolve(outcome.Messages, approved)

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	fmt.Printf("Board '%s':\n", name)
	fmt.Printf("  Approved messages: %d\n", approvedCount)
	fmt.Printf("  Non-approved messages: %d\n", len(remaining))
	for _, m := range remaining {
		fmt.Printf("    [%s] %s\n", m.Severity(), m.Message())
	}

	if outcome.Cancelled {
		return fmt.Errorf("run was cancelled")
	}
	if len(remaining) > 0 {
		os.Exit(1)
	}
	return nil
}
