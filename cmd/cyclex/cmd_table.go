package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ezrec/cyclex/debounce"
	"github.com/ezrec/cyclex/schedule"
	"github.com/ezrec/cyclex/task"
	"github.com/ezrec/cyclex/translate"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the schedule table",
	Long:  "Load and resolve the plan, then print its slot time and table without dispatching.",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

// knownTasks is every task name a plan may use.
func knownTasks() (reg schedule.Registry) {
	reg = schedule.Merge(
		task.Registry(nil, nil),
		debounce.NewTask(nil, nil, logger).Registry(),
		schedule.Registry{schedule.FillerName: schedule.TaskFunc(func() {})},
	)

	return
}

func runTable(cmd *cobra.Command, args []string) (err error) {
	plan, err := loadPlan()
	if err != nil {
		return
	}

	err = plan.Validate()
	if err != nil {
		return
	}

	table, err := plan.Layout.Build(knownTasks())
	if err != nil {
		return
	}

	logger.Debug().Strs("tasks", knownTasks().Names()).Msg("known tasks")

	out := cmd.OutOrStdout()
	translate.Fprintf(out, "slot time = %v\n", plan.SlotTime)
	translate.Fprintf(out, "filler ends slot = %v\n", plan.FillerEndsSlot)
	translate.Fprintf(out, "slots = %s, cycles = %s, steps = %s\n\n",
		strconv.Itoa(table.Slots()), strconv.Itoa(table.Cycles()), strconv.Itoa(table.Len()))
	translate.Fprintf(out, "%v", table)

	return
}
