package main

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/session"
)

// Game adapts a session and its scheduler to the ebiten game loop.
type Game struct {
	session   *session.Session
	scheduler *session.Scheduler
	input     *keyboard

	// Set only in -debug mode.
	imgui *ebitenbackend.EbitenBackend
	ui    *debugui.ImguiSystem
}

// Update polls the keyboard and runs one scheduler frame inside the ImGui frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())

	if g.ui == nil || !g.ui.InputState.WantCaptureKeyboard {
		g.input.poll(g.session.Commands(), dt)
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
	}
	g.scheduler.Once(dt)
	if g.imgui != nil {
		g.imgui.EndFrame()
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawSession(screen, g.session)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return screenWidth, screenHeight
}
