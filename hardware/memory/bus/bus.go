// Package bus defines the narrow capability interfaces that let
// hardware/core and hardware/dram talk to each other without either
// package importing the other's concrete types. See doc.go for the
// rationale.
package bus

import "github.com/aeversen/uarchsim/hardware/clocks"

// Kind distinguishes a read from a write MemRequest.
type Kind int

const (
	Read Kind = iota
	Write
)

func (k Kind) String() string {
	if k == Write {
		return "write"
	}
	return "read"
}

// ResponseSink is implemented by whatever should be told when a read
// completes. In practice this is the Core's response inbox; writes never
// carry a ResponseSink since they have no reply.
type ResponseSink interface {
	// Deliver notifies the sink that the read for addr completed and its
	// data is available as of cycle "at".
	Deliver(at clocks.Cycle, addr clocks.Address)
}

// Request is a single memory transaction travelling from the Core to the
// DRAM controller. Ownership transfers from the Core, into the DRAM
// controller's waiting queue, to being consumed on issue — see hardware/dram.
type Request struct {
	Kind Kind
	Addr clocks.Address

	// Sink is nil for writes. For reads it is the Core's inbox, invoked
	// exactly once when the DRAM controller computes the response cycle.
	Sink ResponseSink
}

// RequestSink is implemented by the DRAM controller. The Core holds a
// non-owning reference to a RequestSink; it never reaches back into DRAM
// state beyond this single method.
type RequestSink interface {
	Receive(req Request)
}
