package perf

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Row is one frame's timings flattened for CSV export.
type Row struct {
	Frame    int   `csv:"frame"`
	TotalUS  int64 `csv:"total_us"`
	InputUS  int64 `csv:"input_us"`
	SimUS    int64 `csv:"sim_us"`
	RenderUS int64 `csv:"render_us"`
	DebugUS  int64 `csv:"debug_us"`
}

// Rows flattens the rolling window, oldest frame first.
func (c *Collector) Rows() []Row {
	samples := c.ordered()
	rows := make([]Row, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, Row{
			Frame:    s.Frame,
			TotalUS:  s.Total.Microseconds(),
			InputUS:  s.Phases[PhaseInput].Microseconds(),
			SimUS:    s.Phases[PhaseSim].Microseconds(),
			RenderUS: s.Phases[PhaseRender].Microseconds(),
			DebugUS:  s.Phases[PhaseDebug].Microseconds(),
		})
	}
	return rows
}

// WriteCSV writes rows with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("write perf csv: %w", err)
	}
	return nil
}
