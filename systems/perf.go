package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/skelly-dash/components"
	"github.com/automoto/skelly-dash/perf"
)

// UpdatePerfFrame opens a new frame sample. Must be the FIRST system in
// the update order so the input phase covers the polling that follows;
// DrawFade closes the sample at the end of the draw pass.
func UpdatePerfFrame(e *ecs.ECS) {
	c := getOrCreatePerf(e).Collector
	c.StartFrame()
	c.StartPhase(perf.PhaseInput)
}

// getOrCreatePerf returns the singleton Perf component, creating it with
// a default collector if needed.
func getOrCreatePerf(e *ecs.ECS) *components.PerfData {
	entry, ok := components.Perf.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Perf))
		components.Perf.SetValue(entry, components.PerfData{Collector: perf.NewCollector(240)})
	}
	return components.Perf.Get(entry)
}

// getCollector returns the frame collector, or nil when the Perf
// singleton has not been created yet.
func getCollector(e *ecs.ECS) *perf.Collector {
	entry, ok := components.Perf.First(e.World)
	if !ok {
		return nil
	}
	return components.Perf.Get(entry).Collector
}
