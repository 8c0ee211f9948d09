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

// Package simerrors is a helper package for the plain Go error type. Errors
// raised through Errorf are thought of as curated: composed of a message
// template plus formatting values, so that the Error() implementation can
// normalise a chain of identically-worded wraps down to a single instance.
//
// The sentinel messages in messages.go are the only failure modes the
// simulator's components ever raise: trace I/O/parse failures, end of
// trace, an internal logic error (a DRAM response for an address with no
// matching MSHR), and configuration errors caught at construction time.
package simerrors
