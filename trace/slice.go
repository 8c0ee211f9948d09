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

import "github.com/aeversen/uarchsim/simerrors"

// SliceSource serves a fixed, pre-built slice of Records. It backs
// tests and the workload generators, which build their Records up front
// rather than streaming them from a file.
type SliceSource struct {
	records []Record
	pos     int
}

// NewSliceSource returns a Source that replays records in order, then
// reports simerrors.TraceEndOfStream forever after.
func NewSliceSource(records []Record) *SliceSource {
	return &SliceSource{records: records}
}

// Next implements Source.
func (s *SliceSource) Next() (Record, error) {
	if s.pos >= len(s.records) {
		return Record{}, simerrors.Errorf(simerrors.TraceEndOfStream)
	}
	r := s.records[s.pos]
	s.pos++
	return r, nil
}
