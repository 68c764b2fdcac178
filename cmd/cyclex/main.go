// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ezrec/cyclex/internal/logging"
	"github.com/ezrec/cyclex/schedule"
)

var (
	logger zerolog.Logger

	planFile string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "cyclex",
	Short: "Time-triggered cyclic executive",
	Long: `cyclex runs tasks from a static schedule table, one at a time, in a fixed
order. Idle positions of the table busy-wait on the host clock tick so that
every slot of the table lasts at least the slot time.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.Setup(verbose, cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&planFile, "plan", "p", "", "Schedule plan (.star, .py, .yaml or .yml); default plan if empty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadPlan loads the plan named by --plan.
func loadPlan() (plan schedule.Plan, err error) {
	plan, err = schedule.LoadFile(planFile)
	if err != nil {
		err = fmt.Errorf("load plan: %w", err)
		return
	}

	return
}
