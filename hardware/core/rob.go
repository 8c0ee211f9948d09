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

package core

import "github.com/aeversen/uarchsim/hardware/clocks"

// rob is a fixed-capacity circular buffer of reorder-buffer slots. Each
// slot holds the earliest cycle at which the occupying instruction may
// retire; clocks.CycleMax means "waiting on an outstanding read".
//
// Invariants: 0 <= count <= len(slots); head and tail are always taken
// modulo len(slots); retirement only ever examines slots[head]; issue
// only ever writes slots[tail].
type rob struct {
	slots []clocks.Cycle
	head  int
	tail  int
	count int
}

func newROB(size int) *rob {
	return &rob{slots: make([]clocks.Cycle, size)}
}

func (r *rob) size() int { return len(r.slots) }

func (r *rob) full() bool { return r.count == len(r.slots) }

func (r *rob) empty() bool { return r.count == 0 }

// pushTail writes v into the tail slot, advances tail, and returns the
// slot index so callers (the MSHR table) can address it later.
func (r *rob) pushTail(v clocks.Cycle) int {
	idx := r.tail
	r.slots[idx] = v
	r.tail = (r.tail + 1) % len(r.slots)
	r.count++
	return idx
}

// set overwrites the retirement cycle of a slot already in the window --
// used when a coalesced read's response arrives.
func (r *rob) set(idx int, v clocks.Cycle) {
	r.slots[idx] = v
}

// headCycle returns the retirement cycle of the oldest occupied slot.
func (r *rob) headCycle() clocks.Cycle {
	return r.slots[r.head]
}

// popHead retires the oldest occupied slot.
func (r *rob) popHead() {
	r.head = (r.head + 1) % len(r.slots)
	r.count--
}
