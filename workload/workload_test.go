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

package workload

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aeversen/uarchsim/simerrors"
)

func TestUniformProducesNRecordsInAddrSpace(t *testing.T) {
	src := Uniform(20, 1<<20, 2, 5, 42)

	count := 0
	for {
		r, err := src.Next()
		if simerrors.Is(err, simerrors.TraceEndOfStream) {
			break
		}
		require.NoError(t, err)
		require.Less(t, uint64(r.Addr), uint64(1<<20))
		require.EqualValues(t, 2, r.Prec)
		count++
	}
	require.Equal(t, 20, count)
}

func TestUniformWriteEveryControlsMix(t *testing.T) {
	src := Uniform(10, 1<<20, 0, 5, 1)

	writes := 0
	for i := 0; i < 10; i++ {
		r, err := src.Next()
		require.NoError(t, err)
		if r.IsWrite {
			writes++
		}
	}
	require.Equal(t, 2, writes) // records at index 4 and 9 (every 5th)
}

func TestStrideWalksByFixedIncrement(t *testing.T) {
	src := Stride(5, 1<<20, 64, 0)

	var prev int64
	for i := 0; i < 5; i++ {
		r, err := src.Next()
		require.NoError(t, err)
		require.False(t, r.IsWrite)
		if i > 0 {
			require.EqualValues(t, 64, int64(r.Addr)-prev)
		}
		prev = int64(r.Addr)
	}
}
