package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/skelly-dash/config"
	"github.com/automoto/skelly-dash/core"
	"github.com/automoto/skelly-dash/levels"
	"github.com/automoto/skelly-dash/perf"
	"github.com/automoto/skelly-dash/replay"
)

var (
	flagBenchFrames int
	flagBenchLevel  string
	flagBenchReplay string
	flagBenchTuning string
	flagBenchCSV    string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the simulation headless and report frame timings",
	Long: `Step the simulation without a window and report mean, p95, and max
frame times over the run. The input script holds right and fires a
jump and a dash on a fixed cadence so the sweep and the dash path
both get exercised. With --replay the recording's input stream is
used instead.

Examples:
  skellydash bench --frames 10000
  skellydash bench --level cavern --csv frames.csv
  skellydash bench --replay run.json`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchFrames, "frames", 10000, "Number of frames to simulate")
	benchCmd.Flags().StringVar(&flagBenchLevel, "level", "", "Level to run, or \"flat\" for the infinite floor (default: first embedded level)")
	benchCmd.Flags().StringVar(&flagBenchReplay, "replay", "", "Drive the run from a recording instead of the input script")
	benchCmd.Flags().StringVar(&flagBenchTuning, "tuning", "", "Physics tuning YAML file")
	benchCmd.Flags().StringVar(&flagBenchCSV, "csv", "", "Write per-frame timings to this CSV file")
}

func runBench(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skellydash",
	})

	tn, err := config.LoadTuning(flagBenchTuning)
	if err != nil {
		logger.Fatal("could not load tuning", "error", err)
	}

	var cursor *replay.Cursor
	levelName := flagBenchLevel
	frames := flagBenchFrames
	if flagBenchReplay != "" {
		rec, err := replay.Load(flagBenchReplay)
		if err != nil {
			logger.Fatal("could not load replay", "error", err)
		}
		cursor = replay.NewCursor(rec)
		levelName = rec.Level
		frames = int(rec.Frames)
	}

	var lv *core.Level
	if levelName == "flat" {
		tn.FlatGround = true
		lv = core.NewFlatLevel(&tn)
	} else {
		lvs, names := levels.MustEmbedded()
		if levelName == "" {
			levelName = names[0]
		}
		if lv = lvs[levelName]; lv == nil {
			logger.Fatal("unknown level, see 'skellydash levels'", "level", levelName)
		}
	}

	sim := core.NewSim(lv, tn)
	c := perf.NewCollector(frames)
	for i := 0; i < frames; i++ {
		in := benchButtons(i)
		if cursor != nil {
			in = cursor.ButtonsAt(uint64(i))
		}
		c.StartFrame()
		c.StartPhase(perf.PhaseSim)
		sim.Step(in)
		c.EndFrame()
	}

	st := c.Stats()
	logger.Info("bench complete",
		"level", levelName,
		"frames", st.Frames,
		"mean", st.Mean,
		"p95", st.P95,
		"max", st.Max,
		"hash", fmt.Sprintf("%016x", sim.StateHash()),
	)

	if flagBenchCSV != "" {
		f, err := os.Create(flagBenchCSV)
		if err != nil {
			logger.Fatal("could not create csv", "error", err)
		}
		defer f.Close()
		if err := perf.WriteCSV(f, c.Rows()); err != nil {
			logger.Fatal("could not write csv", "error", err)
		}
		logger.Info("wrote timings", "path", flagBenchCSV, "rows", st.Frames)
	}
}

// benchButtons is the scripted input: run right, hop every so often, dash
// when the cooldown should be long clear.
func benchButtons(frame int) core.Buttons {
	b := core.ButtonRight
	if frame%64 == 0 {
		b |= core.ButtonJump
	}
	if frame%90 == 45 {
		b |= core.ButtonDash
	}
	return b
}
