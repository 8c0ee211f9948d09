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

// Command uarchsim runs the out-of-order core / DRAM timing simulator
// against a trace file and reports instructions retired.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aeversen/uarchsim/config"
	"github.com/aeversen/uarchsim/diagnostics"
	"github.com/aeversen/uarchsim/driver"
	"github.com/aeversen/uarchsim/hardware/clocks"
	"github.com/aeversen/uarchsim/logger"
	"github.com/aeversen/uarchsim/trace"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	def := config.Default()

	fs := flag.NewFlagSet("uarchsim", flag.ContinueOnError)
	tracePath := fs.String("trace", "", "path to the trace file (required)")
	cycles := fs.Int64("cycles", int64(def.CycleBudget), "simulation cycle budget")
	rob := fs.Int("rob", def.ROBSize, "reorder buffer size")
	width := fs.Int("width", def.SuperscalarWidth, "superscalar issue/retire width")
	channelBits := fs.Int("channel-bits", def.ChannelBits, "log2(number of DRAM channels)")
	bankBits := fs.Int("bank-bits", def.BankBits, "log2(number of banks per channel)")
	clockDiv := fs.Int64("clock-div", int64(def.ClockDiv), "simulator cycles per DRAM cycle")
	tCCD := fs.Int64("t-ccd", int64(def.TCCD), "column-to-column delay (DRAM cycles)")
	tCL := fs.Int64("t-cl", int64(def.TCL), "column latency (DRAM cycles)")
	tRCD := fs.Int64("t-rcd", int64(def.TRCD), "activate-to-column delay (DRAM cycles)")
	tRP := fs.Int64("t-rp", int64(def.TRP), "precharge-to-activate delay (DRAM cycles)")
	tRAS := fs.Int64("t-ras", int64(def.TRAS), "activate-to-precharge minimum (DRAM cycles)")
	statsAddr := fs.String("statsview", "", "if set, serve a live stats dashboard on this address")
	dumpGraph := fs.String("dump-graph", "", "if set, dump the final simulator state as Graphviz dot to this path")
	verbose := fs.Bool("v", false, "print the log tail on exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *tracePath == "" {
		fmt.Fprintln(os.Stderr, "uarchsim: -trace is required")
		return 2
	}

	cfg := config.Config{
		SuperscalarWidth: *width,
		ROBSize:          *rob,
		ChannelBits:      *channelBits,
		BankBits:         *bankBits,
		ClockDiv:         clocks.Cycle(*clockDiv),
		TCCD:             clocks.Cycle(*tCCD),
		TCL:              clocks.Cycle(*tCL),
		TRCD:             clocks.Cycle(*tRCD),
		TRP:              clocks.Cycle(*tRP),
		TRAS:             clocks.Cycle(*tRAS),
		CycleBudget:      clocks.Cycle(*cycles),
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "uarchsim: %v\n", err)
		return 1
	}

	var stats *diagnostics.StatsServer
	if *statsAddr != "" {
		stats = diagnostics.StartStatsServer(*statsAddr)
		defer stats.Stop()
	}

	source, err := trace.NewFileSource(*tracePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "uarchsim: %v\n", err)
		return 1
	}

	d, err := driver.New(cfg, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "uarchsim: %v\n", err)
		return 1
	}

	result, err := d.Run(cfg.CycleBudget)

	if *dumpGraph != "" {
		if derr := diagnostics.DumpGraph(*dumpGraph, d); derr != nil {
			fmt.Fprintf(os.Stderr, "uarchsim: %v\n", derr)
		}
	}

	if *verbose {
		logger.Tail(os.Stderr, 200)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "uarchsim: %v\n", err)
		fmt.Printf("%d instructions retired in %d cycles\n", result.InstructionsRetired, result.Cycles)
		return 1
	}

	fmt.Printf("%d instructions retired in %d cycles\n", result.InstructionsRetired, result.Cycles)
	return 0
}
