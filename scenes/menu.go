package scenes

import (
	"bytes"
	"image/color"
	"os"
	"strings"
	"sync"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/automoto/skelly-dash/config"
	"github.com/automoto/skelly-dash/core"
	"github.com/automoto/skelly-dash/levels"
	"github.com/automoto/skelly-dash/systems"
)

// Defaults carries the CLI-resolved session options into menu-started
// sessions. The play command sets it once at startup; the menu fills in
// the level per selection.
var Defaults = WorldOptions{Tuning: core.DefaultTuning()}

// MenuScene is the level-select menu.
type MenuScene struct {
	ui           *ebitenui.UI
	sceneChanger SceneChanger
	once         sync.Once

	levels     map[string]*core.Level
	startLevel string // set by a level button, consumed next update

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ui.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		os.Exit(0)
	}

	if ms.startLevel != "" {
		name := ms.startLevel
		ms.startLevel = ""

		opts := Defaults
		opts.Level = ms.levels[name]
		opts.LevelName = name
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, opts))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ui == nil {
		return
	}
	ms.ui.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.loadFonts()

	lvs, names := levels.MustEmbedded()
	ms.levels = lvs

	lastLevel := ""
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		lastLevel = saved.LastLevel
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(5),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SKELLY DASH", &ms.titleFace, &widget.LabelColor{
			Idle: cfg.TitleYellow,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, name := range names {
		name := name
		img := ms.buttonImage()
		if name == lastLevel {
			img = ms.lastLevelButtonImage()
		}
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 20)),
			widget.ButtonOpts.Image(img),
			widget.ButtonOpts.Text(strings.ToUpper(name), &ms.normalFace, &widget.ButtonTextColor{
				Idle:    cfg.White,
				Hover:   cfg.LightBlue,
				Pressed: cfg.DarkBlue,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				ms.startLevel = name
			}),
		)
		contentContainer.AddChild(button)
	}

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 20)),
		widget.ButtonOpts.Image(ms.buttonImage()),
		widget.ButtonOpts.Text("QUIT", &ms.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.LightBlue,
			Pressed: cfg.DarkBlue,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			os.Exit(0)
		}),
	)
	contentContainer.AddChild(quitButton)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("X jump  Z dash  F1 overlay  F2 hud", &ms.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 160, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	ms.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (ms *MenuScene) loadFonts() {
	// Load fonts using go fonts
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility
	// Small sizes to fit the 240x160 screen
	ms.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	ms.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
	ms.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   7,
	}
}

func (ms *MenuScene) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 50, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 75, 110, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// lastLevelButtonImage highlights the most recently played level.
func (ms *MenuScene) lastLevelButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 80, 50, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 110, 70, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 60, 40, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
