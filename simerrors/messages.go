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

package simerrors

// sentinel message templates, formatted through Errorf
const (
	TraceIoError    = "trace io error: %v"
	TraceMalformed  = "trace malformed: %v"
	TraceEndOfStream = "end of trace"
	LogicError      = "logic error: %v"
	ConfigError     = "config error: %v"
)
