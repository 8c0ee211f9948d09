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

import (
	"container/heap"

	"github.com/aeversen/uarchsim/hardware/clocks"
)

// waitingResponse is a DRAM reply waiting to be delivered to the Core.
// seq breaks ties between equal arrival cycles so that, for a given
// sequence of insertions, delivery order is fixed and reproducible --
// correctness (P11) only requires a fixed rule, not a particular one.
type waitingResponse struct {
	arrival clocks.Cycle
	seq     uint64
	addr    clocks.Address
}

type responseQueue []waitingResponse

func (q responseQueue) Len() int { return len(q) }

func (q responseQueue) Less(i, j int) bool {
	if q[i].arrival != q[j].arrival {
		return q[i].arrival < q[j].arrival
	}
	return q[i].seq < q[j].seq
}

func (q responseQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *responseQueue) Push(x interface{}) {
	*q = append(*q, x.(waitingResponse))
}

func (q *responseQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

var _ = heap.Interface(&responseQueue{})
