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

import (
	"fmt"
	"strings"
)

// Values holds the formatting arguments for a curated error.
type Values []interface{}

// curated errors let code raise a predefined, well-known failure without
// worrying about how the message chain gets assembled on the way up.
type curated struct {
	message string
	values  Values
}

// Errorf creates a new curated error from one of the sentinel messages
// below (or any format string), plus its formatting arguments.
func Errorf(message string, values ...interface{}) error {
	return curated{
		message: message,
		values:  values,
	}
}

// Error returns the normalised error message: adjacent chain segments that
// repeat the same text are collapsed so that wrapping a curated error at
// each layer of a call stack doesn't produce "x: x: x: root cause".
func (e curated) Error() string {
	s := fmt.Errorf(e.message, e.values...).Error()

	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}
	return strings.Join(p, ": ")
}

// Head returns the leading (message-template) part of a curated error, or
// Error() if err isn't one of ours.
func Head(err error) string {
	if e, ok := err.(curated); ok {
		return e.message
	}
	return err.Error()
}

// IsAny reports whether err was raised by Errorf.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is reports whether err is a curated error with the given message head.
func Is(err error, head string) bool {
	if err == nil {
		return false
	}
	e, ok := err.(curated)
	return ok && e.message == head
}

// Has reports whether head appears anywhere in err's curated chain.
func Has(err error, head string) bool {
	if err == nil || !IsAny(err) {
		return false
	}
	if Is(err, head) {
		return true
	}
	for _, v := range err.(curated).values {
		if e, ok := v.(curated); ok && Has(e, head) {
			return true
		}
	}
	return false
}
