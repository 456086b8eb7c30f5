package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/skelly-dash/perf"
)

// PerfData carries the frame profiler for the session.
type PerfData struct {
	Collector *perf.Collector
}

var Perf = donburi.NewComponentType[PerfData]()
