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

// Package workload generates synthetic traces for benchmarking and
// soak-testing the simulator without a recorded trace file. It is test
// tooling layered on trace.Source; the trace-file driven original has no
// generator of its own.
package workload

import (
	"github.com/aeversen/uarchsim/hardware/clocks"
	"github.com/aeversen/uarchsim/trace"
)

// Uniform builds n Records with addresses drawn uniformly from
// [0, addrSpace) using a simple linear congruential sequence (no
// math/rand dependency needed, and the sequence is reproducible for a
// given seed without carrying generator state across runs). Every
// record has the same precCount of interposed non-memory instructions
// and writeEvery controls the R/W mix: writeEvery <= 0 means all reads.
func Uniform(n int, addrSpace clocks.Address, precCount uint32, writeEvery int, seed uint64) *trace.SliceSource {
	records := make([]trace.Record, n)
	state := seed | 1
	for i := range records {
		state = state*6364136223846793005 + 1442695040888963407
		addr := clocks.Address(state) % addrSpace
		records[i] = trace.Record{
			Addr:    addr,
			Prec:    precCount,
			IsWrite: writeEvery > 0 && i%writeEvery == writeEvery-1,
		}
	}
	return trace.NewSliceSource(records)
}

// Stride builds n Records walking addr in fixed increments of stride,
// wrapping modulo addrSpace. This exercises the row-hit-first scheduler
// the way a streaming access pattern does: consecutive requests to the
// same row land as Hits until the stride crosses a row boundary.
func Stride(n int, addrSpace clocks.Address, stride clocks.Address, precCount uint32) *trace.SliceSource {
	records := make([]trace.Record, n)
	var addr clocks.Address
	for i := range records {
		records[i] = trace.Record{Addr: addr % addrSpace, Prec: precCount, IsWrite: false}
		addr += stride
	}
	return trace.NewSliceSource(records)
}
