// Package assert provides small debugging invariants that are cheap enough
// to leave compiled in. The simulator is specified as strictly
// single-threaded (see hardware/core, hardware/dram); GoroutineID lets
// the driver catch, in a test or a debug build, an accidental call into
// the tick loop from a second goroutine.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier that differs between goroutines and is
// stable for a given goroutine. Debugging/testing use only.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}
