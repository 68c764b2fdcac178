// Package tick measures elapsed time in ticks of the host clock.
//
// A tick is the smallest unit of elapsed time the dispatcher observes. The
// host reports how many ticks make up one second (the POSIX clock tick rate)
// and a Source counts them against a monotonic clock.
package tick

import (
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/tklauser/go-sysconf"

	"github.com/ezrec/cyclex/translate"
)

var f = translate.From

var (
	ErrRate = errors.New(f("tick rate unavailable"))
)

// Source reports a monotonic tick count.
type Source interface {
	Ticks() int64
}

// RateFunc reports the number of ticks per second.
type RateFunc func() (int64, error)

// HostRate queries the clock tick rate of the host, sysconf(_SC_CLK_TCK).
func HostRate() (tps int64, err error) {
	tps, err = sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		err = errors.Join(ErrRate, err)
		return
	}
	if tps <= 0 {
		err = ErrRate
	}
	return
}

// FixedRate returns a RateFunc that always reports tps.
func FixedRate(tps int64) RateFunc {
	return func() (int64, error) {
		if tps <= 0 {
			return 0, ErrRate
		}
		return tps, nil
	}
}

// SlotTicks converts a slot time into whole ticks at tps ticks per second.
// Sub-millisecond precision of d is discarded.
func SlotTicks(d time.Duration, tps int64) int64 {
	return d.Milliseconds() * tps / 1000
}

// Millis converts a tick count into whole milliseconds.
func Millis(ticks int64, tps int64) int64 {
	if tps <= 0 {
		return 0
	}
	return ticks * 1000 / tps
}

// Host counts ticks of a clock since the Host was created.
type Host struct {
	clock     clock.Clock
	epoch     time.Time
	perSecond int64
}

var _ Source = (*Host)(nil)

// NewHost creates a tick source counting tps ticks per second of clk.
func NewHost(clk clock.Clock, tps int64) (host *Host) {
	host = &Host{
		clock:     clk,
		epoch:     clk.Now(),
		perSecond: tps,
	}

	return
}

// Rate wraps query so that the rate it reports also drives the host. A
// failed or non-positive query leaves the host rate unchanged.
func (host *Host) Rate(query RateFunc) RateFunc {
	return func() (tps int64, err error) {
		tps, err = query()
		if err == nil && tps > 0 {
			host.perSecond = tps
		}
		return
	}
}

// Ticks returns the whole ticks elapsed since the Host was created.
func (host *Host) Ticks() int64 {
	elapsed := host.clock.Now().Sub(host.epoch)
	if elapsed < 0 {
		return 0
	}

	ns := int64(elapsed)
	secs := ns / int64(time.Second)
	rem := ns % int64(time.Second)

	return secs*host.perSecond + rem*host.perSecond/int64(time.Second)
}
