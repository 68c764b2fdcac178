package task

import (
	"bytes"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/cyclex/dispatch"
	"github.com/ezrec/cyclex/schedule"
	"github.com/ezrec/cyclex/tick"
)

func TestRegistry(t *testing.T) {
	assert := assert.New(t)

	var slept []time.Duration
	out := &bytes.Buffer{}
	reg := Registry(out, func(d time.Duration) { slept = append(slept, d) })

	assert.Equal([]string{"five", "four", "one", "three", "two"}, reg.Names())

	for _, name := range Names() {
		reg[name].Run()
	}

	assert.Equal("task 1 running\ntask 2 running\ntask 3 running\ntask 4 running\ntask 5 running\n", out.String())
	assert.Equal([]time.Duration{1 * time.Second, 2 * time.Second, 3 * time.Second, 4 * time.Second, 5 * time.Second}, slept)

	demo := reg["three"].(*Demo)
	assert.Equal(3, demo.Number)
	assert.Equal(1, demo.Runs)
}

func TestDemoQuiet(t *testing.T) {
	assert := assert.New(t)

	demo := &Demo{Number: 1, Block: time.Hour}
	demo.Run()
	demo.Run()
	assert.Equal(2, demo.Runs)
}

func TestDemoLargeNumber(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	demo := &Demo{Number: 1200, Output: out}
	demo.Run()
	assert.Equal("task 1200 running\n", out.String())
}

func TestClockSleeper(t *testing.T) {
	assert := assert.New(t)

	mock := clock.NewMock()
	sleep := ClockSleeper(mock)

	done := make(chan struct{})
	go func() {
		sleep(2 * time.Second)
		close(done)
	}()

	// Wait for the sleeper to register its timer before moving the clock.
	assert.Eventually(func() bool {
		mock.Add(time.Second)
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

// steppingHost moves the mock clock one tick forward before every read,
// so that a burn can finish without a wall clock.
type steppingHost struct {
	*tick.Host
	mock *clock.Mock
}

func (sh *steppingHost) Ticks() int64 {
	sh.mock.Add(10 * time.Millisecond)
	return sh.Host.Ticks()
}

// TestDefaultPlan runs the demonstration plan for one major cycle, with the
// tasks blocking on a mock clock.
func TestDefaultPlan(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mock := clock.NewMock()
	source := &steppingHost{Host: tick.NewHost(mock, 100), mock: mock}

	out := &bytes.Buffer{}
	reg := Registry(out, func(d time.Duration) { mock.Add(d) })

	plan := schedule.DefaultPlan()
	plan.FillerEndsSlot = true
	plan.SlotTime = 500 * time.Millisecond

	d := dispatch.New(source, plan)
	d.Output = out
	require.NoError(d.Initialize(tick.FixedRate(100), reg))
	require.NoError(d.RunCycles(1))

	// The first three slots overrun, the idle slot burns its full 50 ticks
	// less the tick read on entry.
	assert.Equal(
		"clock ticks/sec = 100\n\n"+
			"task 1 running\ntask 2 running\nburn time = 00ms\n\n"+
			"task 1 running\ntask 3 running\nburn time = 00ms\n\n"+
			"task 1 running\ntask 4 running\nburn time = 00ms\n\n"+
			"burn time = 490ms\n\n",
		out.String())

	st := d.State()
	assert.Equal(uint64(3), st.Overruns)
	assert.Equal(uint64(10), st.Steps)
	assert.Equal(int64(1254), st.Then)
	assert.Equal(3, reg["one"].(*Demo).Runs)
	assert.Equal(0, reg["five"].(*Demo).Runs)
}
