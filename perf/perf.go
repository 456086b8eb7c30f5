// Package perf times the frame loop phase by phase. The on-screen numbers
// latch the worst frame of every 16-frame window so they are readable at
// 60fps; the rolling window behind them feeds mean/p95 aggregates and CSV
// export for headless bench runs.
package perf

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for the frame loop.
const (
	PhaseInput  = "input"
	PhaseSim    = "sim"
	PhaseRender = "render"
	PhaseDebug  = "debug"
)

// DisplayWindow is how many frames the HUD maxima cover before latching.
const DisplayWindow = 16

// Sample holds the timing of a single frame.
type Sample struct {
	Frame  int
	Total  time.Duration
	Phases map[string]time.Duration
}

// Window is the latched per-phase maxima shown on the debug HUD.
type Window struct {
	Total  time.Duration
	Phases map[string]time.Duration
}

// Stats aggregates the rolling sample window.
type Stats struct {
	Frames    int
	Mean      time.Duration
	P95       time.Duration
	Max       time.Duration
	PhaseMean map[string]time.Duration
}

// Collector accumulates frame samples over a rolling window. Not safe for
// concurrent use; the frame loop owns it.
type Collector struct {
	windowSize  int
	samples     []Sample
	writeIndex  int
	sampleCount int
	frame       int

	current    map[string]time.Duration
	frameStart time.Time
	phaseStart time.Time
	lastPhase  string
	open       bool

	windowCount  int
	runningTotal time.Duration
	runningMax   map[string]time.Duration
	latched      Window
}

// NewCollector returns a collector keeping the last windowSize frames.
func NewCollector(windowSize int) *Collector {
	if windowSize < 1 {
		windowSize = 240
	}
	return &Collector{
		windowSize: windowSize,
		samples:    make([]Sample, windowSize),
		current:    make(map[string]time.Duration),
		runningMax: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a frame.
func (c *Collector) StartFrame() {
	c.frameStart = time.Now()
	c.current = make(map[string]time.Duration)
	c.lastPhase = ""
	c.open = true
}

// StartPhase closes the previous phase, if any, and opens the named one.
// Ignored when no frame is open, which happens when the display repaints
// without a new tick.
func (c *Collector) StartPhase(name string) {
	if !c.open {
		return
	}
	now := time.Now()
	if c.lastPhase != "" {
		c.current[c.lastPhase] += now.Sub(c.phaseStart)
	}
	c.phaseStart = now
	c.lastPhase = name
}

// EndFrame closes the frame and records its sample. Ignored when no frame
// is open.
func (c *Collector) EndFrame() {
	if !c.open {
		return
	}
	c.open = false
	now := time.Now()
	if c.lastPhase != "" {
		c.current[c.lastPhase] += now.Sub(c.phaseStart)
	}
	c.record(Sample{Total: now.Sub(c.frameStart), Phases: c.current})
}

func (c *Collector) record(s Sample) {
	c.frame++
	s.Frame = c.frame

	c.samples[c.writeIndex] = s
	c.writeIndex = (c.writeIndex + 1) % c.windowSize
	if c.sampleCount < c.windowSize {
		c.sampleCount++
	}

	// HUD maxima: worst frame and worst per-phase time of the window.
	c.windowCount++
	if s.Total > c.runningTotal {
		c.runningTotal = s.Total
	}
	for name, d := range s.Phases {
		if d > c.runningMax[name] {
			c.runningMax[name] = d
		}
	}
	if c.windowCount == DisplayWindow {
		c.latched = Window{Total: c.runningTotal, Phases: c.runningMax}
		c.windowCount = 0
		c.runningTotal = 0
		c.runningMax = make(map[string]time.Duration)
	}
}

// Window returns the most recently latched HUD maxima. Zero until the
// first DisplayWindow frames have passed.
func (c *Collector) Window() Window {
	return c.latched
}

// Stats computes mean, p95, and max frame time over the rolling window.
func (c *Collector) Stats() Stats {
	st := Stats{Frames: c.sampleCount, PhaseMean: make(map[string]time.Duration)}
	if c.sampleCount == 0 {
		return st
	}

	totals := make([]float64, 0, c.sampleCount)
	phaseSum := make(map[string]time.Duration)
	for _, s := range c.ordered() {
		totals = append(totals, float64(s.Total))
		if s.Total > st.Max {
			st.Max = s.Total
		}
		for name, d := range s.Phases {
			phaseSum[name] += d
		}
	}

	st.Mean = time.Duration(stat.Mean(totals, nil))
	sort.Float64s(totals)
	st.P95 = time.Duration(stat.Quantile(0.95, stat.Empirical, totals, nil))
	for name, sum := range phaseSum {
		st.PhaseMean[name] = sum / time.Duration(c.sampleCount)
	}
	return st
}

// ordered returns the window's samples oldest first.
func (c *Collector) ordered() []Sample {
	out := make([]Sample, 0, c.sampleCount)
	if c.sampleCount < c.windowSize {
		return append(out, c.samples[:c.sampleCount]...)
	}
	out = append(out, c.samples[c.writeIndex:]...)
	return append(out, c.samples[:c.writeIndex]...)
}
