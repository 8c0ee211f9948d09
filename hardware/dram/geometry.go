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

// Fixed address-decode geometry. Only channel_bits and bank_bits are
// configurable; the offset and row-size fields are constants of the
// reference design.
const (
	offsetBits  = 6
	rowSizeBits = 13
)

// decode splits a physical address into channel, bank and row according
// to spec: channel occupies bits [offsetBits, offsetBits+channelBits),
// bank occupies bits [rowSizeBits+channelBits, rowSizeBits+channelBits+bankBits),
// and row everything above that.
func decode(addr clocks.Address, channelBits, bankBits uint) (channel, bank int, row clocks.Address) {
	channelMask := clocks.Address((uint64(1) << channelBits) - 1)
	bankMask := clocks.Address((uint64(1) << bankBits) - 1)

	channel = int((addr >> offsetBits) & channelMask)
	bank = int((addr >> (rowSizeBits + channelBits)) & bankMask)
	row = addr >> (rowSizeBits + channelBits + bankBits)
	return
}
