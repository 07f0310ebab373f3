package session

import "github.com/plus3/blockfall/engine"

// InputSystem applies queued player actions to the grid in order. Actions that
// arrive while no piece is falling are dropped.
type InputSystem struct{}

// Execute drains the command queue into grid operations.
func (InputSystem) Execute(frame *UpdateFrame) {
	s := frame.Session

	for _, action := range frame.Commands.take() {
		switch action {
		case ActionRestart:
			s.Restart()
			continue
		case ActionTogglePause:
			if !s.gameOver {
				s.paused = !s.paused
			}
			continue
		}

		if !s.active() {
			continue
		}

		grid := s.grid
		switch action {
		case ActionMoveLeft:
			grid.MovePiece(engine.Left)
		case ActionMoveRight:
			grid.MovePiece(engine.Right)
		case ActionSoftDrop:
			moved, points := grid.MovePiece(engine.Down)
			if moved {
				s.fallAccumulator = 0
			}
			s.collect(points)
		case ActionHardDrop:
			if grid.HasPiece() {
				s.stats.drops++
			}
			s.collect(grid.LandPiece())
		case ActionRotateClockwise, ActionRotateCounterClockwise:
			rotation := engine.Clockwise
			if action == ActionRotateCounterClockwise {
				rotation = engine.CounterClockwise
			}
			kicks := grid.Kicks()
			grid.RotatePiece(rotation)
			s.stats.kicks += grid.Kicks() - kicks
		}
	}
}

// GravitySystem moves the falling piece down at the current level's speed. A
// blocked step locks the piece.
type GravitySystem struct{}

// Execute advances the fall timer by the frame delta and steps the piece down.
func (GravitySystem) Execute(frame *UpdateFrame) {
	s := frame.Session
	if !s.active() || !s.grid.HasPiece() {
		return
	}

	s.fallAccumulator += frame.DeltaTime
	interval := s.FallInterval()

	for s.fallAccumulator >= interval {
		s.fallAccumulator -= interval
		moved, points := s.grid.MovePiece(engine.Down)
		s.collect(points)
		if !moved {
			s.fallAccumulator = 0
			return
		}
	}
}

// SpawnSystem puts the lookahead piece into play whenever the grid is empty.
// A rejected spawn ends the game.
type SpawnSystem struct{}

// Execute spawns the lookahead piece when the slot is empty.
func (SpawnSystem) Execute(frame *UpdateFrame) {
	s := frame.Session
	if !s.active() || s.grid.HasPiece() {
		return
	}
	s.spawn()
}
