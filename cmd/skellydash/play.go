package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/automoto/skelly-dash/config"
	"github.com/automoto/skelly-dash/core"
	"github.com/automoto/skelly-dash/levels"
	"github.com/automoto/skelly-dash/replay"
	"github.com/automoto/skelly-dash/scenes"
	"github.com/automoto/skelly-dash/systems"
)

var (
	flagLevel    string
	flagTuning   string
	flagRecord   string
	flagReplay   string
	flagFlat     bool
	flagSkipMenu bool
	flagOverlay  bool
	flagHUD      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game. Without flags this opens the level-select menu.

Controls:
  Left/Right - Move
  X/Space    - Jump
  Z/Shift    - Dash
  Esc/P      - Pause (N steps one frame while paused)
  R          - Reset the level
  Q          - Quit to menu
  F1         - Collision overlay
  F2         - Profiler HUD

Examples:
  skellydash play
  skellydash play --level meadow
  skellydash play --level meadow --record run.json
  skellydash play --replay run.json
  skellydash play --flat --tuning tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Start directly in the named embedded level")
	playCmd.Flags().StringVar(&flagTuning, "tuning", "", "Physics tuning YAML, watched for live reload")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the session to this file (sealed on Q)")
	playCmd.Flags().StringVar(&flagReplay, "replay", "", "Play back a recorded session")
	playCmd.Flags().BoolVar(&flagFlat, "flat", false, "Use the flat-ground world instead of a tile level")
	playCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Skip the menu, starting the last played level")
	playCmd.Flags().BoolVar(&flagOverlay, "overlay", false, "Start with the collision overlay on")
	playCmd.Flags().BoolVar(&flagHUD, "hud", false, "Start with the profiler HUD on")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skellydash",
	})

	tn, err := config.LoadTuning(flagTuning)
	if err != nil {
		logger.Fatal("could not load tuning", "error", err)
	}
	if flagFlat {
		tn.FlatGround = true
	}

	config.Debug.SkipMenu = flagSkipMenu
	config.Debug.Overlay = flagOverlay
	config.Debug.HUD = flagHUD

	if err := systems.InitPersistence(); err != nil {
		logger.Warn("running without saved settings", "error", err)
	}

	opts := scenes.WorldOptions{
		Tuning:     tn,
		TuningPath: flagTuning,
		RecordPath: flagRecord,
	}
	scenes.Defaults = opts

	lvs, names := levels.MustEmbedded()

	// Resolve a direct starting level, if any
	switch {
	case flagReplay != "":
		rec, err := replay.Load(flagReplay)
		if err != nil {
			logger.Fatal("could not load replay", "error", err)
		}
		opts.Playback = rec
		opts.LevelName = rec.Level
		if rec.Level == "flat" {
			opts.Tuning.FlatGround = true
			opts.Level = core.NewFlatLevel(&opts.Tuning)
		} else if opts.Level = lvs[rec.Level]; opts.Level == nil {
			logger.Fatal("replay names a level not in this build", "level", rec.Level)
		}
		// Recording a replay of a replay makes no sense
		opts.RecordPath = ""
	case flagFlat:
		opts.Level = core.NewFlatLevel(&tn)
		opts.LevelName = opts.Level.Name
	case flagLevel != "":
		lv, ok := lvs[flagLevel]
		if !ok {
			logger.Fatal("unknown level, see 'skellydash levels'", "level", flagLevel)
		}
		opts.Level = lv
		opts.LevelName = flagLevel
	case flagSkipMenu:
		name := names[0]
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			if _, ok := lvs[saved.LastLevel]; ok {
				name = saved.LastLevel
			}
		}
		opts.Level = lvs[name]
		opts.LevelName = name
	}

	g := &Game{}
	if opts.Level != nil {
		g.scene = scenes.NewWorldScene(g, opts)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle("Skelly Dash")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game loop", "error", err)
	}
}
