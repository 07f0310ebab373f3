package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/session"
)

const (
	cellSize   = 30
	margin     = 20
	panelWidth = 160

	boardX = margin + cellSize
	boardY = margin
	panelX = margin + (engine.Width+2)*cellSize + margin

	screenWidth  = panelX + panelWidth
	screenHeight = 2*margin + (engine.Height+1)*cellSize

	debugWidth  = 1100
	debugHeight = screenHeight
)

var (
	wallColor  = color.RGBA{R: 110, G: 60, B: 40, A: 255}
	gridColor  = color.RGBA{R: 24, G: 24, B: 24, A: 255}
	ghostColor = color.RGBA{R: 255, G: 255, B: 255, A: 60}
)

var cellColors = map[engine.Cell]color.RGBA{
	engine.CellBlue:   {R: 40, G: 80, B: 230, A: 255},
	engine.CellBrown:  {R: 150, G: 90, B: 40, A: 255},
	engine.CellGreen:  {R: 40, G: 200, B: 70, A: 255},
	engine.CellOrange: {R: 245, G: 150, B: 30, A: 255},
	engine.CellPurple: {R: 160, G: 60, B: 220, A: 255},
	engine.CellRed:    {R: 230, G: 40, B: 40, A: 255},
	engine.CellYellow: {R: 240, G: 220, B: 40, A: 255},
}

func drawCell(screen *ebiten.Image, x, y float32, clr color.Color) {
	vector.DrawFilledRect(screen, x+1, y+1, cellSize-2, cellSize-2, clr, false)
}

func boardCell(row, col int) (float32, float32) {
	return float32(boardX + col*cellSize), float32(boardY + row*cellSize)
}

func drawSession(screen *ebiten.Image, s *session.Session) {
	screen.Fill(color.Black)

	for row := range engine.Height + 1 {
		drawCell(screen, float32(margin), float32(boardY+row*cellSize), wallColor)
		drawCell(screen, float32(boardX+engine.Width*cellSize), float32(boardY+row*cellSize), wallColor)
	}
	for col := range engine.Width {
		x, y := boardCell(engine.Height, col)
		drawCell(screen, x, y, wallColor)
	}

	grid := s.Grid()
	for pos, cell := range grid.All() {
		x, y := boardCell(pos.Row, pos.Col)
		if cell.IsEmpty() {
			drawCell(screen, x, y, gridColor)
			continue
		}
		drawCell(screen, x, y, cellColors[cell])
	}
	drawGhost(screen, grid)

	drawPanel(screen, s)
}

// drawGhost outlines where the active piece would land.
func drawGhost(screen *ebiten.Image, grid *engine.Grid) {
	sim := grid.Clone()
	landing, ok := sim.ActivePiece()
	if !ok {
		return
	}
	for {
		moved, _ := sim.MovePiece(engine.Down)
		if !moved {
			break
		}
		landing, _ = sim.ActivePiece()
	}

	for pos := range landing.Cells() {
		if !grid.Cell(pos.Row, pos.Col).IsEmpty() {
			continue
		}
		x, y := boardCell(pos.Row, pos.Col)
		drawCell(screen, x, y, ghostColor)
	}
}

func drawPanel(screen *ebiten.Image, s *session.Session) {
	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, boardY)
	next := engine.NewPiece(s.Next(), engine.Position{})
	for pos, cell := range next.Cells() {
		x := float32(panelX + pos.Col*cellSize/2)
		y := float32(boardY + 20 + pos.Row*cellSize/2)
		vector.DrawFilledRect(screen, x, y, cellSize/2-1, cellSize/2-1, cellColors[cell], false)
	}

	stats := fmt.Sprintf("SCORE\n%d\n\nLEVEL\n%d\n\nLINES\n%d", s.Score(), s.Level(), s.Lines())
	ebitenutil.DebugPrintAt(screen, stats, panelX, boardY+100)

	controls := "Left/Right  move\nDown        soft drop\nSpace       hard drop\nZ / X       rotate\nC           pause\nR           restart\nEsc         quit"
	ebitenutil.DebugPrintAt(screen, controls, panelX, boardY+240)

	switch {
	case s.GameOver():
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nPress R to restart", boardX+2*cellSize, boardY+engine.Height*cellSize/2)
	case s.Paused():
		ebitenutil.DebugPrintAt(screen, "PAUSED", boardX+4*cellSize, boardY+engine.Height*cellSize/2)
	}
}
