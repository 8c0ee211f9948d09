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

package trace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aeversen/uarchsim/simerrors"
)

func TestSliceSourceReplaysThenEndsOfStream(t *testing.T) {
	s := NewSliceSource([]Record{{Addr: 1}, {Addr: 2}})

	r, err := s.Next()
	require.NoError(t, err)
	require.EqualValues(t, 1, r.Addr)

	r, err = s.Next()
	require.NoError(t, err)
	require.EqualValues(t, 2, r.Addr)

	_, err = s.Next()
	require.True(t, simerrors.Is(err, simerrors.TraceEndOfStream))

	// end of stream repeats, it does not panic or wrap around.
	_, err = s.Next()
	require.True(t, simerrors.Is(err, simerrors.TraceEndOfStream))
}

func writeTraceFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestFileSourceParsesReadsAndWrites(t *testing.T) {
	path := writeTraceFile(t, "0 R 0x100\n5 W 0x200 0xdead\n\n")
	src, err := NewFileSource(path)
	require.NoError(t, err)

	r1, err := src.Next()
	require.NoError(t, err)
	require.Equal(t, Record{Addr: 0x100, Prec: 0, IsWrite: false}, r1)

	r2, err := src.Next()
	require.NoError(t, err)
	require.Equal(t, Record{Addr: 0x200, Prec: 5, IsWrite: true}, r2)

	_, err = src.Next()
	require.True(t, simerrors.Is(err, simerrors.TraceEndOfStream))
}

func TestFileSourceRejectsMalformedLines(t *testing.T) {
	cases := []string{
		"not enough\n",
		"0 X 0x100\n",
		"0 R notHex\n",
		"0 R 0x100 0x1 0x2\n",
	}
	for _, c := range cases {
		path := writeTraceFile(t, c)
		src, err := NewFileSource(path)
		require.NoError(t, err)
		_, err = src.Next()
		require.True(t, simerrors.Is(err, simerrors.TraceMalformed), "input %q should be malformed", c)
	}
}

func TestNewFileSourceMissingFileIsIoError(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.True(t, simerrors.Is(err, simerrors.TraceIoError))
}
