package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/skelly-dash/config"
)

// Scene is anything the game loop can route to.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Game routes ebiten's loop to the active scene.
type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}
