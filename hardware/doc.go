// Package hardware is the base package for the simulated machine. Its
// sub-packages contain everything required for a headless, deterministic
// run: the clock, the out-of-order core, the DRAM controller, and the
// bus capability interfaces connecting them.
package hardware
