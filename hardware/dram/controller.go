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

// Package dram implements the timing-accurate DRAM controller side of
// the simulator: per-channel, per-bank state, row-buffer semantics, and
// a row-hit-first scheduling policy running on a channel-clock divider.
package dram

import (
	"fmt"

	"github.com/aeversen/uarchsim/hardware/clocks"
	"github.com/aeversen/uarchsim/hardware/memory/bus"
	"github.com/aeversen/uarchsim/logger"
	"github.com/aeversen/uarchsim/simerrors"
)

// Timing holds the JEDEC-style latency constants, all expressed in DRAM
// cycles except ClockDiv which is simulator cycles per DRAM cycle.
type Timing struct {
	ClockDiv clocks.Cycle // simulator cycles per DRAM cycle
	TCCD     clocks.Cycle // column-to-column delay
	TCL      clocks.Cycle // column latency (command to first data beat)
	TRCD     clocks.Cycle // activate to column
	TRP      clocks.Cycle // precharge to activate
	TRAS     clocks.Cycle // activate to precharge minimum
}

// DefaultTiming returns the reference design's timing constants.
func DefaultTiming() Timing {
	return Timing{
		ClockDiv: 4,
		TCCD:     4,
		TCL:      11,
		TRCD:     11,
		TRP:      11,
		TRAS:     28,
	}
}

// Controller is a multi-channel DRAM timing model. Each channel is
// independently scheduled; only the channel-clock divider is shared.
type Controller struct {
	channels    []*channelState
	channelBits uint
	bankBits    uint
	timing      Timing
}

// New constructs a Controller with 2^channelBits channels of 2^bankBits
// banks each. It returns a ConfigError if the geometry would overflow a
// 64-bit Address during decoding (channelBits+bankBits+13 bits of offset
// reserved before the row field).
func New(channelBits, bankBits int, timing Timing) (*Controller, error) {
	if channelBits < 0 || bankBits < 0 {
		return nil, simerrors.Errorf(simerrors.ConfigError, fmt.Sprintf("channel/bank bits must not be negative (got %d, %d)", channelBits, bankBits))
	}
	if rowSizeBits+channelBits+bankBits >= 64 {
		return nil, simerrors.Errorf(simerrors.ConfigError, "channel_bits+bank_bits too large, address decode would overflow 64 bits")
	}

	numChannels := 1 << uint(channelBits)
	numBanks := 1 << uint(bankBits)

	channels := make([]*channelState, numChannels)
	for i := range channels {
		channels[i] = newChannel(numBanks)
	}

	return &Controller{
		channels:    channels,
		channelBits: uint(channelBits),
		bankBits:    uint(bankBits),
		timing:      timing,
	}, nil
}

// Receive implements bus.RequestSink. It decodes the request's address
// once and appends it to its channel's waiting queue in arrival order.
func (c *Controller) Receive(req bus.Request) {
	channel, bank, row := decode(req.Addr, c.channelBits, c.bankBits)
	c.channels[channel].enqueue(request{bank: bank, row: row, mem: req})
}

// Tick advances the DRAM controller by one simulator cycle. DRAM runs on
// a slower clock: outside of every ClockDiv'th cycle, Tick is a no-op.
func (c *Controller) Tick(now clocks.Cycle) {
	if now%c.timing.ClockDiv != 0 {
		return
	}

	for _, ch := range c.channels {
		if ch.nextRequest > now {
			continue
		}

		idx, state, ok := ch.selectBest(now)
		if !ok {
			continue
		}

		r := ch.remove(idx)
		c.issue(ch, r, state, now)
	}
}

// issue dispatches the winning request: computes request-to-response
// timing in DRAM cycles per the conflict state decided at selection
// time (still valid -- nothing else has mutated the bank since), updates
// channel/bank timing state, and delivers the response (reads only).
func (c *Controller) issue(ch *channelState, r request, state conflictState, now clocks.Cycle) {
	t := c.timing
	bank := &ch.banks[r.bank]

	var reqDelay clocks.Cycle

	// the channel serializes column commands; this approximates steady
	// state bandwidth without modeling per-beat bus arbitration.
	ch.nextRequest = now + t.TCCD*t.ClockDiv

	if state == Conflict {
		reqDelay += t.TRP
	}

	if state != Hit {
		bank.nextConflict = now + (reqDelay+t.TRAS)*t.ClockDiv
		reqDelay += t.TRCD
		bank.open = true
		bank.openRow = r.row
	}

	reqDelay += t.TCCD
	bank.nextRequest = now + reqDelay*t.ClockDiv

	respondCycle := now + (reqDelay+t.TCL)*t.ClockDiv

	logger.Logf("dram", "issue bank=%d state=%s respond=%d", r.bank, state, int64(respondCycle))

	if r.mem.Kind == bus.Read && r.mem.Sink != nil {
		r.mem.Sink.Deliver(respondCycle, r.mem.Addr)
	}
}
