package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/skelly-dash/config"
	"github.com/automoto/skelly-dash/core"
	"github.com/automoto/skelly-dash/levels"
	"github.com/automoto/skelly-dash/replay"
)

var flagVerifyTuning string

var verifyCmd = &cobra.Command{
	Use:   "verify <replay>",
	Short: "Re-run a recording headless and verify its state hashes",
	Long: `Re-run a recorded session against the simulation and compare the
state hash at every checkpoint and at the final frame. Any divergence
fails with the frame where the states split.

A recording made under a custom tuning file verifies only with that
same file passed via --tuning.

Examples:
  skellydash verify run.json
  skellydash verify run.json --tuning tuning.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&flagVerifyTuning, "tuning", "", "Physics tuning YAML the recording was made under")
}

func runVerify(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skellydash",
	})

	rec, err := replay.Load(args[0])
	if err != nil {
		logger.Fatal("could not load replay", "error", err)
	}

	tn, err := config.LoadTuning(flagVerifyTuning)
	if err != nil {
		logger.Fatal("could not load tuning", "error", err)
	}

	var lv *core.Level
	if rec.Level == "flat" {
		tn.FlatGround = true
		lv = core.NewFlatLevel(&tn)
	} else {
		lvs, _ := levels.MustEmbedded()
		if lv = lvs[rec.Level]; lv == nil {
			logger.Fatal("replay names a level not in this build", "level", rec.Level)
		}
	}

	if err := replay.Verify(rec, lv, tn); err != nil {
		logger.Fatal("replay diverged", "error", err)
	}
	logger.Info("replay verified",
		"level", rec.Level,
		"frames", rec.Frames,
		"events", len(rec.Events),
		"checkpoints", len(rec.Checkpoints),
	)
}
