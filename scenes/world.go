package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/skelly-dash/components"
	cfg "github.com/automoto/skelly-dash/config"
	"github.com/automoto/skelly-dash/core"
	"github.com/automoto/skelly-dash/replay"
	"github.com/automoto/skelly-dash/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldOptions configures a play session.
type WorldOptions struct {
	Level      *core.Level
	LevelName  string
	Tuning     core.Tuning
	TuningPath string // watched for live reload when set
	RecordPath string // session is recorded here when set
	Playback   *replay.Recording
}

// WorldScene runs one play session: the sim plus the systems and
// renderers around it.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         WorldOptions
	once         sync.Once
}

// NewWorldScene creates a world scene for the given session options.
func NewWorldScene(sc SceneChanger, opts WorldOptions) *WorldScene {
	return &WorldScene{sceneChanger: sc, opts: opts}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	// Switch back once the closing fade finishes
	if ws.sessionClosed() {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Update order is the frame order: open the perf sample, poll input,
	// step the sim, then bookkeeping
	e.AddSystem(systems.UpdatePerfFrame)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.UpdateFade)
	e.AddSystem(systems.UpdatePersistence)

	// Add renderers
	e.AddRenderer(ecs.LayerDefault, systems.DrawWorld)
	e.AddRenderer(ecs.LayerDefault, systems.DrawDebug)
	e.AddRenderer(ecs.LayerDefault, systems.DrawHUD)
	e.AddRenderer(ecs.LayerDefault, systems.DrawFade)

	data := components.SessionData{
		Sim:        core.NewSim(ws.opts.Level, ws.opts.Tuning),
		LevelName:  ws.opts.LevelName,
		RecordPath: ws.opts.RecordPath,
		TuningPath: ws.opts.TuningPath,
	}
	if ws.opts.RecordPath != "" {
		data.Recorder = replay.NewRecorder(ws.opts.LevelName)
	}
	if ws.opts.Playback != nil {
		data.Playback = replay.NewCursor(ws.opts.Playback)
	}
	if ws.opts.TuningPath != "" {
		w, err := cfg.WatchTuning(ws.opts.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			data.Watcher = w
		}
	}
	entry := e.World.Entry(e.World.Create(components.Session))
	components.Session.SetValue(entry, data)

	systems.RememberLevel(e, ws.opts.LevelName)
	systems.StartFadeIn(e)

	ws.ecs = e
}

// sessionClosed reports whether the session quit and its closing fade has
// finished.
func (ws *WorldScene) sessionClosed() bool {
	entry, ok := components.Session.First(ws.ecs.World)
	if !ok {
		return false
	}
	if !components.Session.Get(entry).Quit {
		return false
	}
	fadeEntry, ok := components.Fade.First(ws.ecs.World)
	if !ok {
		return true
	}
	fade := components.Fade.Get(fadeEntry)
	return fade.Phase == components.FadeOut && fade.Done
}
