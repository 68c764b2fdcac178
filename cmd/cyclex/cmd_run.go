package main

import (
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"

	"github.com/ezrec/cyclex/debounce"
	"github.com/ezrec/cyclex/dispatch"
	"github.com/ezrec/cyclex/schedule"
	"github.com/ezrec/cyclex/task"
	"github.com/ezrec/cyclex/tick"
)

// hostRate queries the clock tick rate of the host.
var hostRate tick.RateFunc = tick.HostRate

var (
	runCycles         int
	runSlot           time.Duration
	runFillerEndsSlot bool
	runDebounceTape   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the schedule",
	Long: `Load the plan, query the host clock tick rate and dispatch the schedule
table forever, or for the given number of major cycles.

Examples:
  # Run the default plan forever
  cyclex run

  # Run a plan for two major cycles with 100ms slots
  cyclex run --plan plan.star --cycles 2 --slot 100ms

  # Replay a recorded tape into the debounce task, or poll stdin with '-'
  cyclex run --plan debounce.yaml --debounce-tape keys.txt
`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVarP(&runCycles, "cycles", "n", 0, "Major cycles to run (0 = forever)")
	runCmd.Flags().DurationVar(&runSlot, "slot", schedule.DEFAULT_SLOT_TIME, "Slot time, overrides the plan")
	runCmd.Flags().BoolVar(&runFillerEndsSlot, "filler-ends-slot", false, "Filler also ends the rest of its slot, overrides the plan")
	runCmd.Flags().StringVar(&runDebounceTape, "debounce-tape", "", "Recorded input of the debounce task, '-' polls stdin")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) (err error) {
	plan, err := loadPlan()
	if err != nil {
		return
	}

	flags := cmd.Flags()
	if flags.Changed("slot") {
		plan.SlotTime = runSlot
	}
	if flags.Changed("filler-ends-slot") {
		plan.FillerEndsSlot = runFillerEndsSlot
	}

	out := cmd.OutOrStdout()
	clk := clock.New()

	reg := task.Registry(out, task.ClockSleeper(clk))

	if len(runDebounceTape) != 0 {
		var input debounce.Input
		if runDebounceTape == "-" {
			input = debounce.NewSerial(cmd.InOrStdin(), debounce.DEFAULT_FIFO)
		} else {
			var inf *os.File
			inf, err = os.Open(runDebounceTape)
			if err != nil {
				return
			}
			defer inf.Close()
			input = &debounce.Tape{Input: inf}
		}

		led := &debounce.WriterLED{Output: out}
		reg = schedule.Merge(reg, debounce.NewTask(input, led, logger).Registry())
	}

	// The host counts at the rate Initialize queries.
	host := tick.NewHost(clk, 0)

	d := dispatch.New(host, plan)
	d.Output = out
	d.Logger = logger

	err = d.Initialize(host.Rate(hostRate), reg)
	if err != nil {
		return
	}

	logger.Info().Str("plan", planFile).Int("cycles", runCycles).Msg("cyclex starting")

	if runCycles > 0 {
		err = d.RunCycles(runCycles)
		if err != nil {
			return
		}

		st := d.State()
		logger.Info().
			Uint64("steps", st.Steps).
			Uint64("major_cycles", st.MajorCycles).
			Uint64("overruns", st.Overruns).
			Msg("cyclex stopped")
		return
	}

	err = d.RunForever()

	return
}
