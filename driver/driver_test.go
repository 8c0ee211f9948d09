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

package driver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aeversen/uarchsim/config"
	"github.com/aeversen/uarchsim/hardware/clocks"
	"github.com/aeversen/uarchsim/trace"
)

// S1: a single Miss read into an empty ROB/DRAM retires one cycle
// after its response, per L1's precise timing law.
func TestSingleMissReadRetiresAfterResponse(t *testing.T) {
	cfg := config.Default()
	cfg.SuperscalarWidth = 1
	cfg.ChannelBits = 0
	cfg.BankBits = 0
	require.NoError(t, cfg.Validate())

	src := trace.NewSliceSource([]trace.Record{{Addr: 0x0}})
	d, err := New(cfg, src)
	require.NoError(t, err)

	result, err := d.Run(1000)
	require.NoError(t, err)

	// Miss response at (11+4+11)*4 = 104, retire one cycle later at 105;
	// Cycles counts cycles actually executed (0..105 inclusive = 106).
	require.EqualValues(t, 1, result.InstructionsRetired)
	require.EqualValues(t, 106, result.Cycles)
}

// S4: an all-writes trace never blocks on the ROB and retires quickly.
func TestAllWritesRetireWithoutBlocking(t *testing.T) {
	cfg := config.Default()
	cfg.SuperscalarWidth = 4
	cfg.ROBSize = 192

	records := make([]trace.Record, 100)
	for i := range records {
		records[i] = trace.Record{Addr: clocks.Address(i * 64), IsWrite: true}
	}
	src := trace.NewSliceSource(records)

	d, err := New(cfg, src)
	require.NoError(t, err)

	result, err := d.Run(1000)
	require.NoError(t, err)
	require.EqualValues(t, 100, result.InstructionsRetired)
	require.LessOrEqual(t, result.Cycles, clocks.Cycle(30))
}

// S6: a large prec count ahead of the one memory reference delays
// issuing that reference until the non-memory instructions drain.
func TestLargePrecDelaysTheMemoryReference(t *testing.T) {
	cfg := config.Default()
	cfg.SuperscalarWidth = 1
	cfg.ROBSize = 4

	src := trace.NewSliceSource([]trace.Record{{Addr: 0xA, Prec: 100}})
	d, err := New(cfg, src)
	require.NoError(t, err)

	result, err := d.Run(2000)
	require.NoError(t, err)
	// 100 non-memory instructions plus the read itself.
	require.EqualValues(t, 101, result.InstructionsRetired)
	require.Greater(t, result.Cycles, clocks.Cycle(100))
}

// the cycle budget is a hard cap: a trace that never ends still stops.
func TestCycleBudgetCapsALongRunningTrace(t *testing.T) {
	cfg := config.Default()
	records := make([]trace.Record, 10000)
	for i := range records {
		records[i] = trace.Record{Addr: clocks.Address(i * 64)}
	}
	src := trace.NewSliceSource(records)

	d, err := New(cfg, src)
	require.NoError(t, err)

	result, err := d.Run(50)
	require.NoError(t, err)
	require.LessOrEqual(t, result.Cycles, clocks.Cycle(50))
}
