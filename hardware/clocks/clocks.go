// Package clocks defines the simulator's notion of simulated time.
//
// Cycle is a monotonic count of simulator ticks. Clock is the single,
// process-wide source of "now" for a run: it is created and owned by the
// driver package, which passes its current value to hardware/core and
// hardware/dram on every tick and advances it exactly once per simulated
// cycle.
package clocks

import "math"

// Cycle is a signed count of simulator cycles.
type Cycle int64

// CycleMax is the sentinel meaning "not yet scheduled". It is used by ROB
// slots to denote an instruction waiting on an outstanding read.
const CycleMax Cycle = math.MaxInt64

// Address is a physical memory address.
type Address uint64

// Clock is a monotonic cycle counter. It has no behaviour beyond counting;
// all scheduling decisions are made by the components that read Now().
type Clock struct {
	now Cycle
}

// NewClock returns a Clock starting at cycle 0.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current simulated cycle.
func (c *Clock) Now() Cycle {
	return c.now
}

// Tick advances the clock by exactly one cycle.
func (c *Clock) Tick() {
	c.now++
}
