package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoroutineIDIsStableWithinAGoroutine(t *testing.T) {
	require.Equal(t, GoroutineID(), GoroutineID())
}

func TestGoroutineIDDiffersAcrossGoroutines(t *testing.T) {
	here := GoroutineID()

	other := make(chan uint64, 1)
	go func() { other <- GoroutineID() }()

	require.NotEqual(t, here, <-other)
}
