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

// Package trace defines the contract between the simulator and whatever
// produces its input: a lazy, finite sequence of memory references, each
// annotated with the count of non-memory instructions that logically
// precede it. hardware/core depends only on the Source interface defined
// here, never on a concrete producer, so that file-backed traces,
// in-memory slices (tests) and synthetic workloads are interchangeable.
package trace

import "github.com/aeversen/uarchsim/hardware/clocks"

// Record describes a single memory reference plus the non-memory
// instructions that logically precede it in program order.
type Record struct {
	Addr    clocks.Address
	Prec    uint32
	IsWrite bool
}

// Source produces Records lazily, one at a time, in program order. Next
// returns simerrors.TraceEndOfStream once the trace is exhausted, or
// simerrors.TraceMalformed / simerrors.TraceIoError on a parse or I/O
// failure -- both are fatal to the run.
type Source interface {
	Next() (Record, error)
}
