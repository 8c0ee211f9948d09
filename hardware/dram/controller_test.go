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

package dram

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aeversen/uarchsim/hardware/clocks"
	"github.com/aeversen/uarchsim/hardware/memory/bus"
)

// recordingSink captures every delivered (cycle, addr) pair in order.
type recordingSink struct {
	delivered []struct {
		at   clocks.Cycle
		addr clocks.Address
	}
}

func (s *recordingSink) Deliver(at clocks.Cycle, addr clocks.Address) {
	s.delivered = append(s.delivered, struct {
		at   clocks.Cycle
		addr clocks.Address
	}{at, addr})
}

func readReq(sink bus.ResponseSink, addr clocks.Address) bus.Request {
	return bus.Request{Kind: bus.Read, Addr: addr, Sink: sink}
}

// runUntilDelivered ticks c for up to limit cycles, stopping as soon as
// n responses have been recorded.
func runUntilDelivered(c *Controller, sink *recordingSink, n int, limit clocks.Cycle) {
	for now := clocks.Cycle(0); now < limit && len(sink.delivered) < n; now++ {
		c.Tick(now)
	}
}

// S1 / P7: a single read to an idle bank is a Miss; its response
// arrives exactly (t_rcd+t_ccd+t_cl)*clock_div cycles after issue.
func TestMissTiming(t *testing.T) {
	c, err := New(0, 0, DefaultTiming())
	require.NoError(t, err)

	sink := &recordingSink{}
	c.Receive(readReq(sink, 0x0))

	runUntilDelivered(c, sink, 1, 500)

	require.Len(t, sink.delivered, 1)
	require.EqualValues(t, 104, sink.delivered[0].at)
}

// S2 / P6: a second read to the same row, after the first completes,
// is a Hit; its response arrives (t_ccd+t_cl)*clock_div after issue.
func TestHitTiming(t *testing.T) {
	c, err := New(0, 0, DefaultTiming())
	require.NoError(t, err)

	sink := &recordingSink{}
	c.Receive(readReq(sink, 0x0))
	runUntilDelivered(c, sink, 1, 500)
	require.EqualValues(t, 104, sink.delivered[0].at)

	// issue the second request well after the first has completed and
	// the channel/bank are free again.
	issueAt := clocks.Cycle(200)
	for now := clocks.Cycle(0); now < issueAt; now++ {
		c.Tick(now)
	}
	c.Receive(readReq(sink, 0x0))
	for now := issueAt; now < 500 && len(sink.delivered) < 2; now++ {
		c.Tick(now)
	}

	require.Len(t, sink.delivered, 2)
	require.EqualValues(t, issueAt+(4+11)*4, sink.delivered[1].at)
}

// P8: a read to a different row in the same bank as one still open is
// a Conflict; its response arrives (t_rp+t_rcd+t_ccd+t_cl)*clock_div
// after issue.
func TestConflictTiming(t *testing.T) {
	c, err := New(0, 0, DefaultTiming())
	require.NoError(t, err)

	sink := &recordingSink{}
	c.Receive(readReq(sink, 0x0))
	runUntilDelivered(c, sink, 1, 500)
	require.EqualValues(t, 104, sink.delivered[0].at)

	// t_ras*clock_div = 112, so issuing at 300 guarantees next_conflict
	// has long since elapsed and the conflicting row swap is unblocked.
	issueAt := clocks.Cycle(300)
	for now := clocks.Cycle(0); now < issueAt; now++ {
		c.Tick(now)
	}
	// same bank (single-bank config), different row: row is addr >> 13.
	c.Receive(readReq(sink, clocks.Address(1)<<19))
	for now := issueAt; now < 700 && len(sink.delivered) < 2; now++ {
		c.Tick(now)
	}

	require.Len(t, sink.delivered, 2)
	require.EqualValues(t, issueAt+(11+11+4+11)*4, sink.delivered[1].at)
}

// P9: two consecutive issues on the same channel are at least
// t_ccd*clock_div cycles apart, even across different banks.
func TestConsecutiveIssuesRespectChannelSpacing(t *testing.T) {
	c, err := New(0, 2, DefaultTiming()) // 4 banks, 1 channel
	require.NoError(t, err)

	sink := &recordingSink{}
	// distinct banks so selection doesn't block on bank timing, only
	// on the channel's next_request gate.
	c.Receive(readReq(sink, clocks.Address(0)<<19))
	c.Receive(readReq(sink, clocks.Address(1)<<13))
	runUntilDelivered(c, sink, 2, 500)

	require.Len(t, sink.delivered, 2)
	spacing := sink.delivered[1].at - sink.delivered[0].at
	require.GreaterOrEqual(t, int64(spacing), int64(4*4))
}

// writes never produce a response.
func TestWritesProduceNoResponse(t *testing.T) {
	c, err := New(0, 0, DefaultTiming())
	require.NoError(t, err)

	sink := &recordingSink{}
	c.Receive(bus.Request{Kind: bus.Write, Addr: 0x0})
	c.Receive(readReq(sink, 0x0))

	// the write opens the row and holds the bank until cycle 60, when the
	// read issues as a Hit.
	for now := clocks.Cycle(0); now < 100; now++ {
		c.Tick(now)
	}

	require.Len(t, sink.delivered, 1, "only the read should have produced a response")
}

func TestNewRejectsOversizedGeometry(t *testing.T) {
	_, err := New(30, 30, DefaultTiming())
	require.Error(t, err)
}
