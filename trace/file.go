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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aeversen/uarchsim/hardware/clocks"
	"github.com/aeversen/uarchsim/logger"
	"github.com/aeversen/uarchsim/simerrors"
)

// FileSource reads the reference ASCII trace format from a file, one
// line at a time: "<prec> <R|W> 0x<addr> [0x<pc>]". The trailing PC
// field is parsed, to catch malformed hex, but otherwise discarded.
type FileSource struct {
	path string
	f    *os.File
	sc   *bufio.Scanner
	line int
	done bool
}

// NewFileSource opens path (resolved to an absolute path for logging)
// and prepares to scan it lazily. It returns simerrors.TraceIoError if
// the file cannot be opened.
func NewFileSource(path string) (*FileSource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, simerrors.Errorf(simerrors.TraceIoError, fmt.Errorf("opening %s: %w", abs, err))
	}

	logger.Logf("trace", "opened %s", abs)

	return &FileSource{
		path: abs,
		f:    f,
		sc:   bufio.NewScanner(f),
	}, nil
}

// Next implements Source. Once the file is exhausted it closes the
// underlying handle and every subsequent call returns
// simerrors.TraceEndOfStream.
func (s *FileSource) Next() (Record, error) {
	if s.done {
		return Record{}, simerrors.Errorf(simerrors.TraceEndOfStream)
	}

	for s.sc.Scan() {
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" {
			continue
		}
		rec, err := parseLine(text)
		if err != nil {
			return Record{}, simerrors.Errorf(simerrors.TraceMalformed, fmt.Errorf("%s:%d: %w", s.path, s.line, err))
		}
		return rec, nil
	}

	if err := s.sc.Err(); err != nil {
		s.close()
		return Record{}, simerrors.Errorf(simerrors.TraceIoError, fmt.Errorf("%s: %w", s.path, err))
	}

	s.close()
	return Record{}, simerrors.Errorf(simerrors.TraceEndOfStream)
}

func (s *FileSource) close() {
	if s.done {
		return
	}
	s.done = true
	s.f.Close()
	logger.Logf("trace", "closed %s", s.path)
}

// parseLine parses one "<prec> <R|W> 0x<addr> [0x<pc>]" line.
func parseLine(text string) (Record, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 && len(fields) != 4 {
		return Record{}, fmt.Errorf("expected 3 or 4 fields, got %d", len(fields))
	}

	prec, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("bad prec %q: %w", fields[0], err)
	}

	var isWrite bool
	switch fields[1] {
	case "R":
		isWrite = false
	case "W":
		isWrite = true
	default:
		return Record{}, fmt.Errorf("unknown request type %q", fields[1])
	}

	addr, err := parseHexAddr(fields[2])
	if err != nil {
		return Record{}, fmt.Errorf("bad address %q: %w", fields[2], err)
	}

	if len(fields) == 4 {
		if _, err := parseHexAddr(fields[3]); err != nil {
			return Record{}, fmt.Errorf("bad pc %q: %w", fields[3], err)
		}
	}

	return Record{Addr: clocks.Address(addr), Prec: uint32(prec), IsWrite: isWrite}, nil
}

func parseHexAddr(s string) (uint64, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return strconv.ParseUint(s, 16, 64)
}
