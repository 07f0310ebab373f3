package main

import (
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/session"
)

// Weights for scoring a board after a candidate placement.
const (
	weightHeight    = -0.51
	weightLines     = 0.76
	weightHoles     = -0.36
	weightBumpiness = -0.18
)

// turnSequences are the rotations tried for every piece: none, one and two
// clockwise turns, and one counter-clockwise turn.
var turnSequences = [][]engine.Rotation{
	nil,
	{engine.Clockwise},
	{engine.Clockwise, engine.Clockwise},
	{engine.CounterClockwise},
}

// AutoplaySystem plays the session by itself. Each frame with a falling piece it
// picks the best reachable placement and queues the actions to reach it, ending
// with a hard drop so the next frame sees a fresh piece. It restarts the session
// after a top-out and records the final score of every game.
type AutoplaySystem struct {
	Scores []uint64
}

// Execute restarts a finished game or plans the current piece.
func (a *AutoplaySystem) Execute(frame *session.UpdateFrame) {
	s := frame.Session

	if s.GameOver() {
		a.Scores = append(a.Scores, s.Score())
		frame.Commands.Push(session.ActionRestart)
		return
	}
	if s.Paused() || !s.Grid().HasPiece() || frame.Commands.Len() > 0 {
		return
	}

	for _, action := range plan(s.Grid()) {
		frame.Commands.Push(action)
	}
}

// plan returns the actions that move the active piece into its best placement,
// hard drop included.
func plan(grid *engine.Grid) []session.Action {
	var (
		best      []session.Action
		bestScore float64
	)

	for _, turns := range turnSequences {
		for shift := -engine.Width; shift <= engine.Width; shift++ {
			actions, sim, ok := try(grid, turns, shift)
			if !ok {
				continue
			}

			event, _ := sim.LastLock()
			score := evaluate(sim.Board(), event.Lines)
			if best == nil || score > bestScore {
				best = actions
				bestScore = score
			}
		}
	}

	if best == nil {
		return []session.Action{session.ActionHardDrop}
	}
	return best
}

// try replays turns then shift on a clone of grid and lands the piece. ok is false
// when a turn or a sideways step is refused, since the live grid would refuse it too.
func try(grid *engine.Grid, turns []engine.Rotation, shift int) ([]session.Action, *engine.Grid, bool) {
	sim := grid.Clone()
	var actions []session.Action

	for _, r := range turns {
		if !sim.RotatePiece(r) {
			return nil, nil, false
		}
		if r == engine.Clockwise {
			actions = append(actions, session.ActionRotateClockwise)
		} else {
			actions = append(actions, session.ActionRotateCounterClockwise)
		}
	}

	direction, action := engine.Right, session.ActionMoveRight
	if shift < 0 {
		direction, action = engine.Left, session.ActionMoveLeft
	}
	for range abs(shift) {
		if moved, _ := sim.MovePiece(direction); !moved {
			return nil, nil, false
		}
		actions = append(actions, action)
	}

	sim.LandPiece()
	return append(actions, session.ActionHardDrop), sim, true
}

// evaluate scores a board by its column heights, covered holes and surface
// roughness, rewarding cleared lines.
func evaluate(board engine.Board, lines int) float64 {
	var heights [engine.Width]int
	holes := 0

	for col := range engine.Width {
		seen := false
		for row := range engine.Height {
			if !board[row][col].IsEmpty() {
				if !seen {
					heights[col] = engine.Height - row
					seen = true
				}
				continue
			}
			if seen {
				holes++
			}
		}
	}

	aggregate, bumpiness := 0, 0
	for col, h := range heights {
		aggregate += h
		if col > 0 {
			bumpiness += abs(h - heights[col-1])
		}
	}

	return weightHeight*float64(aggregate) +
		weightLines*float64(lines) +
		weightHoles*float64(holes) +
		weightBumpiness*float64(bumpiness)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
