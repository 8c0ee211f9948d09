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

// Package core implements the out-of-order CPU side of the simulator: a
// fixed-capacity reorder buffer, a table of miss-status handling
// registers coalescing in-flight reads, and the three-phase per-cycle
// tick (retire, then deliver memory responses, then issue) described by
// the simulator's timing contract.
package core

import (
	"container/heap"
	"fmt"

	"github.com/aeversen/uarchsim/hardware/clocks"
	"github.com/aeversen/uarchsim/hardware/memory/bus"
	"github.com/aeversen/uarchsim/logger"
	"github.com/aeversen/uarchsim/simerrors"
	"github.com/aeversen/uarchsim/trace"
)

// Core models a superscalar out-of-order CPU: up to Width instructions
// are retired and up to Width are issued per cycle, bounded by ROB
// capacity and by the trace's own supply of instructions.
type Core struct {
	width int
	rob   *rob
	mshrs *mshrTable
	resp  responseQueue
	seq   uint64

	source trace.Source
	dram   bus.RequestSink

	cur       *trace.Record
	retired   int64
	exhausted bool
}

// New constructs a Core. It returns a ConfigError if width or robSize is
// not positive.
func New(width, robSize int, source trace.Source, dram bus.RequestSink) (*Core, error) {
	if width <= 0 {
		return nil, simerrors.Errorf(simerrors.ConfigError, fmt.Sprintf("superscalar width must be positive, got %d", width))
	}
	if robSize <= 0 {
		return nil, simerrors.Errorf(simerrors.ConfigError, fmt.Sprintf("rob size must be positive, got %d", robSize))
	}
	return &Core{
		width:  width,
		rob:    newROB(robSize),
		mshrs:  newMSHRTable(),
		source: source,
		dram:   dram,
	}, nil
}

// Retired returns the total number of instructions retired so far.
func (c *Core) Retired() int64 { return c.retired }

// ROBOccupancy returns the current count of in-flight ROB slots, for
// diagnostics and tests (P1: 0 <= ROBOccupancy() <= ROBSize()).
func (c *Core) ROBOccupancy() int { return c.rob.count }

// ROBSize returns the ROB's fixed capacity.
func (c *Core) ROBSize() int { return c.rob.size() }

// OutstandingMSHRs returns the number of distinct addresses with an
// in-flight read (P2: this is always the true count, never double
// counted for coalesced readers).
func (c *Core) OutstandingMSHRs() int { return c.mshrs.count() }

// Done reports whether the trace is exhausted and every issued
// instruction has retired. Once true, further ticks would be no-ops;
// the driver stops the run here rather than on the raw end-of-stream
// signal, so that instructions already in flight get to retire.
func (c *Core) Done() bool { return c.exhausted && c.rob.empty() }

// Deliver implements bus.ResponseSink. It is called by the DRAM
// controller when a read completes; the response is queued and drained
// during the next Tick's memory phase, never synchronously.
func (c *Core) Deliver(at clocks.Cycle, addr clocks.Address) {
	heap.Push(&c.resp, waitingResponse{arrival: at, seq: c.seq, addr: addr})
	c.seq++
}

// Tick advances the Core by one cycle: retire, then drain due memory
// responses, then issue. Retire runs before the memory phase so that a
// response arriving this cycle cannot retire until the following cycle's
// retire phase -- this is what keeps read latency at least one cycle.
//
// Tick returns a non-nil error when the trace source fails with a
// malformed record or an I/O error, or when a DRAM response arrives for
// an address with no matching MSHR (a logic error); both are fatal and
// are the caller's (driver's) responsibility to handle. Reaching the end
// of the trace is not an error from Tick's perspective: it sets Done
// once every in-flight instruction has also retired, and the caller
// checks Done rather than an error return.
func (c *Core) Tick(now clocks.Cycle) error {
	c.tickRetire(now)

	if err := c.tickMem(now); err != nil {
		return err
	}

	return c.tickIssue(now)
}

func (c *Core) tickRetire(now clocks.Cycle) {
	retired := 0
	for retired < c.width && !c.rob.empty() && c.rob.headCycle() <= now {
		c.rob.popHead()
		c.retired++
		retired++
	}
}

func (c *Core) tickMem(now clocks.Cycle) error {
	for c.resp.Len() > 0 && c.resp[0].arrival <= now {
		w := heap.Pop(&c.resp).(waitingResponse)

		m, ok := c.mshrs.lookup(w.addr)
		if !ok {
			return simerrors.Errorf(simerrors.LogicError, fmt.Sprintf("response for address %#x with no matching MSHR", uint64(w.addr)))
		}

		for _, idx := range m.robIndices {
			c.rob.set(idx, now)
		}
		c.mshrs.remove(w.addr)
		logger.Logf("core", "mshr resolved addr=%#x waiters=%d", uint64(w.addr), len(m.robIndices))
	}
	return nil
}

func (c *Core) tickIssue(now clocks.Cycle) error {
	if c.exhausted {
		return nil
	}

	issued := 0
	for issued < c.width && !c.rob.full() {
		if c.cur == nil {
			rec, err := c.source.Next()
			if err != nil {
				if simerrors.Is(err, simerrors.TraceEndOfStream) {
					c.exhausted = true
					return nil
				}
				return err
			}
			c.cur = &rec
		}

		if c.cur.Prec > 0 {
			c.rob.pushTail(now)
			c.cur.Prec--
			issued++
			continue
		}

		if c.cur.IsWrite {
			c.dram.Receive(bus.Request{Kind: bus.Write, Addr: c.cur.Addr})
			c.rob.pushTail(now)
			c.cur = nil
			issued++
			continue
		}

		c.issueRead(now, c.cur.Addr)
		c.cur = nil
		issued++
	}
	return nil
}

func (c *Core) issueRead(now clocks.Cycle, addr clocks.Address) {
	m, created := c.mshrs.lookupOrCreate(addr)
	idx := c.rob.pushTail(clocks.CycleMax)
	m.robIndices = append(m.robIndices, idx)

	if !m.issued {
		c.dram.Receive(bus.Request{Kind: bus.Read, Addr: addr, Sink: c})
		m.issued = true
		if created {
			logger.Logf("core", "mshr created addr=%#x at cycle=%d", uint64(addr), int64(now))
		}
	}
}
