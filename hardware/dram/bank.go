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

import "github.com/aeversen/uarchsim/hardware/clocks"

// conflictState classifies a candidate request against its target bank's
// currently open row.
type conflictState int

const (
	// Hit: the bank's open row matches the request's row.
	Hit conflictState = iota
	// Miss: the bank has no open row.
	Miss
	// Conflict: the bank has a different row open.
	Conflict
)

func (s conflictState) String() string {
	switch s {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Conflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// bankState is a single DRAM bank: either idle (no open row) or holding
// one open row. There is no spontaneous precharge -- a row stays open
// until a conflicting request forces it closed.
type bankState struct {
	open    bool
	openRow clocks.Address

	// nextRequest is the earliest cycle the bank can accept a new column
	// command (activate, or RD/WR).
	nextRequest clocks.Cycle

	// nextConflict is the earliest cycle the currently open row has
	// satisfied t_RAS and may be precharged by a conflicting request.
	nextConflict clocks.Cycle
}

// classify reports this bank's conflict state against a candidate row.
func (b *bankState) classify(row clocks.Address) conflictState {
	if !b.open {
		return Miss
	}
	if b.openRow == row {
		return Hit
	}
	return Conflict
}
