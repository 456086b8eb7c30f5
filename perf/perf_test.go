package perf

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestWindowLatchesMaxima(t *testing.T) {
	c := NewCollector(64)

	for i := 1; i <= DisplayWindow-1; i++ {
		c.record(Sample{Total: ms(i), Phases: map[string]time.Duration{PhaseSim: ms(i) / 2}})
	}
	if w := c.Window(); w.Total != 0 {
		t.Fatalf("window latched early: %v", w.Total)
	}

	c.record(Sample{Total: ms(4), Phases: map[string]time.Duration{PhaseSim: ms(2)}})
	w := c.Window()
	if w.Total != ms(15) {
		t.Errorf("latched total = %v, want 15ms", w.Total)
	}
	if w.Phases[PhaseSim] != ms(15)/2 {
		t.Errorf("latched sim = %v, want 7.5ms", w.Phases[PhaseSim])
	}

	// The next window replaces the latch wholesale, even with lower peaks.
	for i := 0; i < DisplayWindow; i++ {
		c.record(Sample{Total: ms(3), Phases: map[string]time.Duration{PhaseSim: ms(1)}})
	}
	if w := c.Window(); w.Total != ms(3) || w.Phases[PhaseSim] != ms(1) {
		t.Errorf("relatch = %v, want 3ms/1ms", w)
	}
}

func TestStatsOverWindow(t *testing.T) {
	c := NewCollector(64)
	for i := 1; i <= 10; i++ {
		c.record(Sample{Total: ms(i), Phases: map[string]time.Duration{PhaseSim: ms(i)}})
	}

	st := c.Stats()
	if st.Frames != 10 {
		t.Fatalf("Frames = %d, want 10", st.Frames)
	}
	if st.Mean != 5500*time.Microsecond {
		t.Errorf("Mean = %v, want 5.5ms", st.Mean)
	}
	if st.Max != ms(10) {
		t.Errorf("Max = %v, want 10ms", st.Max)
	}
	if st.P95 != ms(10) {
		t.Errorf("P95 = %v, want 10ms", st.P95)
	}
	if st.PhaseMean[PhaseSim] != 5500*time.Microsecond {
		t.Errorf("sim mean = %v, want 5.5ms", st.PhaseMean[PhaseSim])
	}
}

func TestRollingWindowDropsOldest(t *testing.T) {
	c := NewCollector(4)
	for i := 1; i <= 6; i++ {
		c.record(Sample{Total: ms(i)})
	}

	rows := c.Rows()
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	for i, want := range []int{3, 4, 5, 6} {
		if rows[i].Frame != want {
			t.Errorf("rows[%d].Frame = %d, want %d", i, rows[i].Frame, want)
		}
		if rows[i].TotalUS != int64(want)*1000 {
			t.Errorf("rows[%d].TotalUS = %d, want %d", i, rows[i].TotalUS, want*1000)
		}
	}
}

func TestFramePhaseClock(t *testing.T) {
	c := NewCollector(8)

	c.StartFrame()
	c.StartPhase(PhaseInput)
	time.Sleep(time.Millisecond)
	c.StartPhase(PhaseSim)
	time.Sleep(time.Millisecond)
	c.EndFrame()

	rows := c.Rows()
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	r := rows[0]
	if r.InputUS <= 0 || r.SimUS <= 0 {
		t.Errorf("phase times not captured: input=%dus sim=%dus", r.InputUS, r.SimUS)
	}
	if r.TotalUS < r.InputUS+r.SimUS {
		t.Errorf("total %dus less than phase sum %dus", r.TotalUS, r.InputUS+r.SimUS)
	}
}

func TestWriteCSV(t *testing.T) {
	c := NewCollector(8)
	c.record(Sample{Total: ms(2), Phases: map[string]time.Duration{PhaseSim: ms(1)}})
	c.record(Sample{Total: ms(3), Phases: map[string]time.Duration{PhaseRender: ms(2)}})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, c.Rows()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv lines = %d, want header plus 2 rows:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "total_us") || !strings.Contains(lines[0], "sim_us") {
		t.Errorf("header missing columns: %s", lines[0])
	}
}
