package bus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aeversen/uarchsim/hardware/clocks"
)

type recordingSink struct {
	at   clocks.Cycle
	addr clocks.Address
	hit  bool
}

func (r *recordingSink) Deliver(at clocks.Cycle, addr clocks.Address) {
	r.at, r.addr, r.hit = at, addr, true
}

func TestKindStringDistinguishesReadFromWrite(t *testing.T) {
	require.Equal(t, "read", Read.String())
	require.Equal(t, "write", Write.String())
}

func TestResponseSinkReceivesDeliveredResponse(t *testing.T) {
	sink := &recordingSink{}
	req := Request{Kind: Read, Addr: 0x40, Sink: sink}
	req.Sink.Deliver(7, req.Addr)

	require.True(t, sink.hit)
	require.EqualValues(t, 7, sink.at)
	require.EqualValues(t, 0x40, sink.addr)
}
