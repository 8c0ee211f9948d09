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

// Package diagnostics holds the CLI-only observability tooling: a
// postmortem state-graph dump and an optional live stats dashboard.
// Neither is imported by hardware/core or hardware/dram -- both run
// strictly off the hot path, wired in from cmd/uarchsim only.
package diagnostics

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/go-echarts/statsview"
)

// DumpGraph renders v's in-memory structure to path as Graphviz dot,
// the way the debugger does for its command-template tree -- useful
// here for inspecting a Driver's final Core/DRAM state after a run.
func DumpGraph(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dump-graph: %w", err)
	}
	defer f.Close()

	memviz.Map(f, v)
	return nil
}

// StatsServer wraps a statsview dashboard's lifecycle so the CLI can
// start it for the duration of a long run and leave it running in the
// background; the server never touches simulated state.
type StatsServer struct {
	viewer *statsview.Viewer
}

// StartStatsServer starts a statsview HTTP dashboard (goroutine count,
// heap, GC pauses) listening on addr, e.g. "127.0.0.1:18066".
func StartStatsServer(addr string) *StatsServer {
	v := statsview.New(statsview.WithAddr(addr))
	go v.Start()
	return &StatsServer{viewer: v}
}

// Stop shuts the dashboard down.
func (s *StatsServer) Stop() {
	if s != nil && s.viewer != nil {
		s.viewer.Stop()
	}
}
