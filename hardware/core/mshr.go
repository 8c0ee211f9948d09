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

// mshr (Miss Status Handling Register) coalesces every in-flight read to
// the same address into a single outstanding DRAM request. All ROB slots
// waiting on that address are woken together when the response arrives.
type mshr struct {
	addr       clocks.Address
	issued     bool
	robIndices []int
}

// mshrTable maps Address to its single outstanding MSHR, if any. At most
// one MSHR exists per address at any instant.
type mshrTable struct {
	byAddr map[clocks.Address]*mshr
}

func newMSHRTable() *mshrTable {
	return &mshrTable{byAddr: make(map[clocks.Address]*mshr)}
}

// lookupOrCreate returns the existing MSHR for addr, creating one if this
// is the first outstanding read to that address.
func (t *mshrTable) lookupOrCreate(addr clocks.Address) (m *mshr, created bool) {
	if m, ok := t.byAddr[addr]; ok {
		return m, false
	}
	m = &mshr{addr: addr}
	t.byAddr[addr] = m
	return m, true
}

func (t *mshrTable) lookup(addr clocks.Address) (*mshr, bool) {
	m, ok := t.byAddr[addr]
	return m, ok
}

func (t *mshrTable) remove(addr clocks.Address) {
	delete(t.byAddr, addr)
}

func (t *mshrTable) count() int {
	return len(t.byAddr)
}
