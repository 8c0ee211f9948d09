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

// Package config holds the simulator's construction-time parameters and
// validates them in one place, at the edge, before they reach
// hardware/core and hardware/dram (whose constructors re-check only their
// own width/ROB-size and geometry preconditions).
package config

import (
	"fmt"

	"github.com/aeversen/uarchsim/hardware/clocks"
	"github.com/aeversen/uarchsim/simerrors"
)

// rowSizeBits mirrors hardware/dram's fixed row_size_bits: its address
// decode places the bank field at bit rowSizeBits+channelBits and the row
// field at bit rowSizeBits+channelBits+bankBits.
const rowSizeBits = 13

// Config holds every parameter exposed at construction, per spec.
type Config struct {
	SuperscalarWidth int
	ROBSize          int

	ChannelBits int
	BankBits    int

	ClockDiv clocks.Cycle
	TCCD     clocks.Cycle
	TCL      clocks.Cycle
	TRCD     clocks.Cycle
	TRP      clocks.Cycle
	TRAS     clocks.Cycle

	CycleBudget clocks.Cycle
}

// Default returns the reference design's parameters.
func Default() Config {
	return Config{
		SuperscalarWidth: 4,
		ROBSize:          128,
		ChannelBits:      1,
		BankBits:         3,
		ClockDiv:         4,
		TCCD:             4,
		TCL:              11,
		TRCD:             11,
		TRP:              11,
		TRAS:             28,
		CycleBudget:      100_000_000,
	}
}

// Validate rejects a Config that would violate a ConfigError rule from
// spec.md §7: non-positive width/ROBSize, non-positive timing constants,
// or geometry bits large enough to overflow Address's usable range
// during hardware/dram's address decode.
func (c Config) Validate() error {
	if c.SuperscalarWidth <= 0 {
		return simerrors.Errorf(simerrors.ConfigError, fmt.Sprintf("superscalar_width must be positive, got %d", c.SuperscalarWidth))
	}
	if c.ROBSize <= 0 {
		return simerrors.Errorf(simerrors.ConfigError, fmt.Sprintf("rob_size must be positive, got %d", c.ROBSize))
	}
	if c.ChannelBits < 0 || c.BankBits < 0 {
		return simerrors.Errorf(simerrors.ConfigError, fmt.Sprintf("channel_bits/bank_bits must not be negative (got %d, %d)", c.ChannelBits, c.BankBits))
	}
	if rowSizeBits+c.ChannelBits+c.BankBits >= 64 {
		return simerrors.Errorf(simerrors.ConfigError, fmt.Sprintf("channel_bits(%d)+bank_bits(%d) too large, address decode would overflow 64 bits", c.ChannelBits, c.BankBits))
	}
	if c.ClockDiv <= 0 || c.TCCD <= 0 || c.TCL <= 0 || c.TRCD <= 0 || c.TRP <= 0 || c.TRAS <= 0 {
		return simerrors.Errorf(simerrors.ConfigError, "timing constants must all be positive")
	}
	if c.CycleBudget <= 0 {
		return simerrors.Errorf(simerrors.ConfigError, fmt.Sprintf("cycle budget must be positive, got %d", int64(c.CycleBudget)))
	}
	return nil
}
