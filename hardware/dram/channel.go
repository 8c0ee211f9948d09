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
	"github.com/aeversen/uarchsim/hardware/clocks"
	"github.com/aeversen/uarchsim/hardware/memory/bus"
)

// request is a MemRequest decoded once, at insertion, into its target
// channel/bank/row.
type request struct {
	bank int
	row  clocks.Address
	mem  bus.Request
}

// channelState holds one DRAM channel's pending requests (in arrival
// order, for fairness and deterministic tie-breaking) and its banks.
type channelState struct {
	waiting     []request
	banks       []bankState
	nextRequest clocks.Cycle
}

func newChannel(numBanks int) *channelState {
	return &channelState{banks: make([]bankState, numBanks)}
}

func (ch *channelState) enqueue(r request) {
	ch.waiting = append(ch.waiting, r)
}

// selectBest scans the waiting queue in arrival order and returns the
// index of the winning request, per the row-hit-first policy: the first
// schedulable Hit wins immediately; otherwise the first schedulable
// fallback wins, where a Conflict candidate is only a valid fallback once
// its bank's t_RAS minimum (nextConflict) has elapsed.
func (ch *channelState) selectBest(now clocks.Cycle) (idx int, state conflictState, ok bool) {
	fallback := -1
	var fallbackState conflictState

	for i, r := range ch.waiting {
		bank := &ch.banks[r.bank]
		if bank.nextRequest > now {
			continue
		}

		s := bank.classify(r.row)
		if s == Hit {
			return i, Hit, true
		}

		if fallback == -1 {
			if s == Conflict && bank.nextConflict > now {
				continue
			}
			fallback = i
			fallbackState = s
		}
	}

	if fallback != -1 {
		return fallback, fallbackState, true
	}
	return -1, 0, false
}

// remove deletes the request at idx, preserving arrival order of the rest.
func (ch *channelState) remove(idx int) request {
	r := ch.waiting[idx]
	ch.waiting = append(ch.waiting[:idx], ch.waiting[idx+1:]...)
	return r
}
