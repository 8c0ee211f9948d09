// Package bus exists so that hardware/core and hardware/dram depend on
// interfaces rather than on each other's concrete types. The Core sees
// DRAM only as a bus.RequestSink; the DRAM controller sees the Core only
// through the bus.ResponseSink embedded in each read's bus.Request. There
// is no cyclic import and no open inheritance hierarchy — just two narrow,
// tagged capabilities.
package bus
