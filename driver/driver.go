// This file is part of uarchsim.
//
// uarchsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// uarchsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with uarchsim.  If not, see <https://www.gnu.org/licenses/>.

// Package driver composes a Core and a DRAM controller into a runnable
// simulation: advance the Core, then the DRAM controller, then the
// clock, once per cycle, up to a fixed budget or until the trace ends.
package driver

import (
	"github.com/aeversen/uarchsim/assert"
	"github.com/aeversen/uarchsim/config"
	"github.com/aeversen/uarchsim/hardware/clocks"
	"github.com/aeversen/uarchsim/hardware/core"
	"github.com/aeversen/uarchsim/hardware/dram"
	"github.com/aeversen/uarchsim/hardware/memory/bus"
	"github.com/aeversen/uarchsim/trace"
)

// Result summarizes a completed run, whether it ended by exhausting the
// cycle budget or by the trace source reaching its end.
type Result struct {
	InstructionsRetired int64
	Cycles              clocks.Cycle
}

// Driver owns one Core, one DRAM controller and the shared Clock, and
// drives them for exactly the caller's cycle budget or until the trace
// ends, whichever comes first.
type Driver struct {
	clock *clocks.Clock
	core  *core.Core
	dram  *dram.Controller
	owner uint64
}

// New constructs a Driver from a Config and a trace Source. cfg must
// already have passed Validate; New does not re-validate it.
func New(cfg config.Config, source trace.Source) (*Driver, error) {
	dc, err := dram.New(cfg.ChannelBits, cfg.BankBits, dram.Timing{
		ClockDiv: cfg.ClockDiv,
		TCCD:     cfg.TCCD,
		TCL:      cfg.TCL,
		TRCD:     cfg.TRCD,
		TRP:      cfg.TRP,
		TRAS:     cfg.TRAS,
	})
	if err != nil {
		return nil, err
	}

	var sink bus.RequestSink = dc
	cc, err := core.New(cfg.SuperscalarWidth, cfg.ROBSize, source, sink)
	if err != nil {
		return nil, err
	}

	return &Driver{
		clock: clocks.NewClock(),
		core:  cc,
		dram:  dc,
		owner: assert.GoroutineID(),
	}, nil
}

// Run advances the simulation for up to budget cycles, or until the
// trace ends and every in-flight instruction has retired, whichever
// comes first. Any error from a tick (malformed trace, I/O failure, a
// logic error) is returned immediately and the counters are still
// populated on a best-effort basis.
func (d *Driver) Run(budget clocks.Cycle) (Result, error) {
	if assert.GoroutineID() != d.owner {
		panic("driver: Run called from a different goroutine than New")
	}

	for d.clock.Now() < budget {
		now := d.clock.Now()
		if err := d.core.Tick(now); err != nil {
			return d.result(now), err
		}
		d.dram.Tick(now)
		d.clock.Tick()
		if d.core.Done() {
			break
		}
	}

	return d.result(d.clock.Now()), nil
}

func (d *Driver) result(cycles clocks.Cycle) Result {
	return Result{
		InstructionsRetired: d.core.Retired(),
		Cycles:              cycles,
	}
}
