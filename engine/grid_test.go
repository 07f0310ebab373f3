package engine_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullRowExcept returns a row filled with color everywhere but the given columns.
func fullRowExcept(color engine.Cell, holes ...int) [engine.Width]engine.Cell {
	var row [engine.Width]engine.Cell
	for col := range engine.Width {
		row[col] = color
	}
	for _, col := range holes {
		row[col] = engine.CellEmpty
	}
	return row
}

func TestNewGrid(t *testing.T) {
	grid := engine.NewGrid()

	assert.False(t, grid.HasPiece())
	assert.Equal(t, engine.Board{}, grid.Board())
	for _, cell := range grid.All() {
		assert.Equal(t, engine.CellEmpty, cell)
	}
	_, ok := grid.LastLock()
	assert.False(t, ok)
}

func TestAddPiece(t *testing.T) {
	t.Run("fills the slot", func(t *testing.T) {
		grid := engine.NewGrid()

		require.True(t, grid.AddPiece(engine.SpawnPiece(engine.TetrominoT)))
		assert.True(t, grid.HasPiece())

		active, ok := grid.ActivePiece()
		require.True(t, ok)
		assert.Equal(t, engine.TetrominoT, active.Tetromino())
	})

	t.Run("rejects a second piece", func(t *testing.T) {
		grid := engine.NewGrid()

		require.True(t, grid.AddPiece(engine.SpawnPiece(engine.TetrominoT)))
		assert.False(t, grid.AddPiece(engine.SpawnPiece(engine.TetrominoO)))

		active, _ := grid.ActivePiece()
		assert.Equal(t, engine.TetrominoT, active.Tetromino())
	})

	tests := []struct {
		name     string
		position engine.Position
	}{
		{"left of the board", engine.Position{Row: 5, Col: -2}},
		{"right of the board", engine.Position{Row: 5, Col: 9}},
		{"below the board", engine.Position{Row: 17, Col: 3}},
		{"above the board", engine.Position{Row: -1, Col: 3}},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			grid := engine.NewGrid()

			assert.False(t, grid.AddPiece(engine.NewPiece(engine.TetrominoI, tt.position)))
			assert.False(t, grid.HasPiece())
		})
	}

	t.Run("accepts a box that hangs off the board", func(t *testing.T) {
		grid := engine.NewGrid()

		// The I template only occupies column 1, so column -1 puts it against the wall.
		assert.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoI, engine.Position{Row: 16, Col: -1})))
	})
}

func TestSpawnCollision(t *testing.T) {
	grid := engine.NewGrid()

	require.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoO, engine.Position{Row: 17, Col: 3})))
	moved, _ := grid.MovePiece(engine.Down)
	require.False(t, moved)
	require.False(t, grid.HasPiece())

	// The O locked on rows 18-19, columns 4-5; the L's stem reaches (18,5).
	assert.False(t, grid.AddPiece(engine.NewPiece(engine.TetrominoL, engine.Position{Row: 16, Col: 4})))
	assert.False(t, grid.HasPiece())
}

func TestMovePiece(t *testing.T) {
	t.Run("drop and lock", func(t *testing.T) {
		grid := engine.NewGrid()
		require.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoI, engine.Position{Row: 15, Col: 0})))

		moved, points := grid.MovePiece(engine.Down)
		assert.True(t, moved)
		assert.Zero(t, points)
		assert.True(t, grid.HasPiece())

		moved, points = grid.MovePiece(engine.Down)
		assert.False(t, moved)
		assert.Zero(t, points)
		assert.False(t, grid.HasPiece())
		assert.Equal(t, uint64(1), grid.Locks())

		board := grid.Board()
		for row := 16; row < engine.Height; row++ {
			assert.Equal(t, engine.CellBrown, board[row][1], "row %d", row)
		}

		event, ok := grid.LastLock()
		require.True(t, ok)
		assert.Equal(t, engine.LockEvent{Tetromino: engine.TetrominoI}, event)
	})

	t.Run("sideways block never locks", func(t *testing.T) {
		grid := engine.NewGrid()
		require.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoI, engine.Position{Row: 5, Col: -1})))

		moved, points := grid.MovePiece(engine.Left)
		assert.False(t, moved)
		assert.Zero(t, points)
		assert.True(t, grid.HasPiece())
		assert.Zero(t, grid.Locks())

		active, _ := grid.ActivePiece()
		assert.Equal(t, engine.Position{Row: 5, Col: -1}, active.Position())
	})

	t.Run("blocked by locked cells", func(t *testing.T) {
		var board engine.Board
		board[10][5] = engine.CellRed
		grid := engine.NewGridWithBoard(board)
		require.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoI, engine.Position{Row: 8, Col: 3})))

		moved, _ := grid.MovePiece(engine.Right)
		assert.False(t, moved)

		moved, _ = grid.MovePiece(engine.Left)
		assert.True(t, moved)
	})

	t.Run("up is validated like any move", func(t *testing.T) {
		grid := engine.NewGrid()
		require.True(t, grid.AddPiece(engine.SpawnPiece(engine.TetrominoI)))

		moved, points := grid.MovePiece(engine.Up)
		assert.False(t, moved)
		assert.Zero(t, points)
		assert.True(t, grid.HasPiece())
	})

	t.Run("no active piece", func(t *testing.T) {
		grid := engine.NewGrid()

		moved, points := grid.MovePiece(engine.Down)
		assert.False(t, moved)
		assert.Zero(t, points)
		assert.Zero(t, grid.Locks())
	})
}

func TestRotatePiece(t *testing.T) {
	t.Run("in place", func(t *testing.T) {
		grid := engine.NewGrid()
		require.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoT, engine.Position{Row: 5, Col: 3})))

		assert.True(t, grid.RotatePiece(engine.Clockwise))

		active, _ := grid.ActivePiece()
		assert.Equal(t, engine.OrientationRight, active.Orientation())
		assert.Equal(t, engine.Position{Row: 5, Col: 3}, active.Position())
		assert.Zero(t, grid.Kicks())
	})

	t.Run("kicks right off the left wall", func(t *testing.T) {
		grid := engine.NewGrid()
		require.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoI, engine.Position{Row: 5, Col: -1})))

		assert.True(t, grid.RotatePiece(engine.CounterClockwise))

		active, _ := grid.ActivePiece()
		assert.Equal(t, engine.OrientationLeft, active.Orientation())
		assert.Equal(t, engine.Position{Row: 5, Col: 0}, active.Position())
		assert.Equal(t, uint64(1), grid.Kicks())

		for col := range 4 {
			assert.Equal(t, engine.CellBrown, grid.Cell(7, col))
		}
	})

	t.Run("kicks left off the right wall", func(t *testing.T) {
		grid := engine.NewGrid()
		// Column 1 of the template at board column 9.
		require.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoI, engine.Position{Row: 5, Col: 8})))

		// Against the wall the bar spans 8..11 in place and 7..10 one cell left.
		assert.False(t, grid.RotatePiece(engine.Clockwise))

		moved, _ := grid.MovePiece(engine.Left)
		require.True(t, moved)

		// From column 8 the bar spans 7..10 in place and 6..9 one cell left.
		assert.True(t, grid.RotatePiece(engine.Clockwise))
		active, _ := grid.ActivePiece()
		assert.Equal(t, engine.Position{Row: 5, Col: 6}, active.Position())
	})

	t.Run("refused rotation leaves the piece untouched", func(t *testing.T) {
		var board engine.Board
		for row := 4; row < 10; row++ {
			board[row] = fullRowExcept(engine.CellGreen, 0)
		}
		grid := engine.NewGridWithBoard(board)
		require.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoI, engine.Position{Row: 5, Col: -1})))
		before, _ := grid.ActivePiece()

		assert.False(t, grid.RotatePiece(engine.Clockwise))
		assert.False(t, grid.RotatePiece(engine.CounterClockwise))

		after, _ := grid.ActivePiece()
		assert.Equal(t, before, after)
		assert.Zero(t, grid.Kicks())
	})

	t.Run("no active piece", func(t *testing.T) {
		assert.False(t, engine.NewGrid().RotatePiece(engine.Clockwise))
	})
}

func TestRowClear(t *testing.T) {
	t.Run("two adjacent rows", func(t *testing.T) {
		var board engine.Board
		board[10][0] = engine.CellGreen
		board[18] = fullRowExcept(engine.CellRed, 5)
		board[19] = fullRowExcept(engine.CellRed, 5)
		grid := engine.NewGridWithBoard(board)

		// Template column 1 lands on board column 5, covering rows 16..19.
		require.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoI, engine.Position{Row: 16, Col: 4})))
		moved, points := grid.MovePiece(engine.Down)

		assert.False(t, moved)
		assert.Equal(t, engine.LineClearPoints[2], points)
		assert.Equal(t, uint64(100), points)

		var expected engine.Board
		expected[12][0] = engine.CellGreen
		expected[18][5] = engine.CellBrown
		expected[19][5] = engine.CellBrown
		assert.Equal(t, expected, grid.Board())

		event, _ := grid.LastLock()
		assert.Equal(t, 2, event.Lines)
		assert.Equal(t, uint64(100), event.Points)
	})

	t.Run("two non-adjacent rows", func(t *testing.T) {
		var board engine.Board
		board[14][3] = engine.CellYellow
		board[15] = fullRowExcept(engine.CellPurple)
		board[16][4] = engine.CellBlue
		board[17][4] = engine.CellGreen
		board[18][4] = engine.CellOrange
		board[19] = fullRowExcept(engine.CellRed, 0)
		grid := engine.NewGridWithBoard(board)

		require.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoI, engine.Position{Row: 16, Col: -1})))
		_, points := grid.MovePiece(engine.Down)

		assert.Equal(t, uint64(100), points)

		var expected engine.Board
		expected[16][3] = engine.CellYellow
		expected[17][0] = engine.CellBrown
		expected[17][4] = engine.CellBlue
		expected[18][0] = engine.CellBrown
		expected[18][4] = engine.CellGreen
		expected[19][0] = engine.CellBrown
		expected[19][4] = engine.CellOrange
		assert.Equal(t, expected, grid.Board())
	})

	t.Run("four rows", func(t *testing.T) {
		var board engine.Board
		for row := 16; row < engine.Height; row++ {
			board[row] = fullRowExcept(engine.CellGreen, 9)
		}
		grid := engine.NewGridWithBoard(board)

		require.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoI, engine.Position{Row: 16, Col: 8})))
		_, points := grid.MovePiece(engine.Down)

		assert.Equal(t, uint64(1200), points)
		assert.Equal(t, engine.Board{}, grid.Board())
	})

	t.Run("partial rows stay", func(t *testing.T) {
		var board engine.Board
		board[19] = fullRowExcept(engine.CellGreen, 0, 1)
		grid := engine.NewGridWithBoard(board)

		require.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoI, engine.Position{Row: 16, Col: -1})))
		moved, points := grid.MovePiece(engine.Down)

		assert.False(t, moved)
		assert.Zero(t, points)
		assert.Equal(t, engine.CellEmpty, grid.Board()[19][1])
		assert.Equal(t, engine.CellBrown, grid.Board()[19][0])
	})
}

func TestLandPiece(t *testing.T) {
	t.Run("bonus on a clearing drop", func(t *testing.T) {
		var board engine.Board
		board[18] = fullRowExcept(engine.CellRed, 5)
		board[19] = fullRowExcept(engine.CellRed, 5)
		grid := engine.NewGridWithBoard(board)

		require.True(t, grid.AddPiece(engine.NewPiece(engine.TetrominoI, engine.Position{Row: 10, Col: 4})))

		// Six steps from row 10 to row 16, then the lock clears two rows.
		assert.Equal(t, uint64(100+6+1), grid.LandPiece())
		assert.False(t, grid.HasPiece())
	})

	t.Run("no bonus without a clear", func(t *testing.T) {
		grid := engine.NewGrid()
		require.True(t, grid.AddPiece(engine.SpawnPiece(engine.TetrominoO)))

		assert.Zero(t, grid.LandPiece())
		assert.False(t, grid.HasPiece())

		board := grid.Board()
		assert.Equal(t, engine.CellYellow, board[19][4])
		assert.Equal(t, engine.CellYellow, board[18][5])
		assert.Equal(t, uint64(1), grid.Locks())
	})

	t.Run("no active piece", func(t *testing.T) {
		assert.Zero(t, engine.NewGrid().LandPiece())
	})
}

func TestGridView(t *testing.T) {
	var board engine.Board
	board[19][0] = engine.CellRed
	grid := engine.NewGridWithBoard(board)
	require.True(t, grid.AddPiece(engine.SpawnPiece(engine.TetrominoO)))

	assert.Equal(t, engine.CellYellow, grid.Cell(0, 4))
	assert.Equal(t, engine.CellEmpty, grid.Cell(0, 3), "inside the piece box but unoccupied")
	assert.Equal(t, engine.CellRed, grid.Cell(19, 0))
	assert.Equal(t, engine.CellEmpty, grid.Cell(-1, 0))
	assert.Equal(t, engine.CellEmpty, grid.Cell(0, engine.Width))

	snapshot := grid.Snapshot()
	assert.Equal(t, engine.CellYellow, snapshot[1][5])
	assert.Equal(t, engine.CellEmpty, grid.Board()[1][5], "the piece is not locked")

	count := 0
	for pos, cell := range grid.All() {
		assert.Equal(t, snapshot[pos.Row][pos.Col], cell)
		count++
	}
	assert.Equal(t, engine.Width*engine.Height, count)

	lines := strings.Split(strings.TrimSuffix(grid.String(), "\n"), "\n")
	require.Len(t, lines, engine.Height+1)
	assert.Equal(t, "🧱⬛⬛⬛⬛🟨🟨⬛⬛⬛⬛🧱", lines[0])
	assert.Equal(t, "🧱🟥⬛⬛⬛⬛⬛⬛⬛⬛⬛🧱", lines[19])
	assert.Equal(t, strings.Repeat("🧱", engine.Width+2), lines[20])
}

func TestGridClone(t *testing.T) {
	grid := engine.NewGrid()
	require.True(t, grid.AddPiece(engine.SpawnPiece(engine.TetrominoJ)))

	clone := grid.Clone()
	clone.LandPiece()

	assert.False(t, clone.HasPiece())
	assert.True(t, grid.HasPiece())
	assert.Equal(t, engine.Board{}, grid.Board())
	assert.NotEqual(t, engine.Board{}, clone.Board())
}

// TestRandomPlayInvariants drives random commands through full games and checks
// that the active piece never leaves the board or overlaps a locked cell.
func TestRandomPlayInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for game := range 20 {
		grid := engine.NewGrid()
		pieces := 0

		for pieces < 500 {
			if !grid.HasPiece() {
				if !grid.AddPiece(engine.SpawnPiece(engine.Tetrominoes[rng.IntN(engine.TetrominoCount)])) {
					break
				}
				pieces++
			}

			switch rng.IntN(6) {
			case 0:
				grid.MovePiece(engine.Left)
			case 1:
				grid.MovePiece(engine.Right)
			case 2:
				grid.MovePiece(engine.Down)
			case 3:
				grid.RotatePiece(engine.Clockwise)
			case 4:
				grid.RotatePiece(engine.CounterClockwise)
			case 5:
				if rng.IntN(4) == 0 {
					grid.LandPiece()
				}
			}

			board := grid.Board()
			active, ok := grid.ActivePiece()
			if !ok {
				continue
			}
			for pos := range active.Cells() {
				require.True(t, pos.Row >= 0 && pos.Row < engine.Height, "game %d: row %d out of bounds", game, pos.Row)
				require.True(t, pos.Col >= 0 && pos.Col < engine.Width, "game %d: col %d out of bounds", game, pos.Col)
				require.Equal(t, engine.CellEmpty, board[pos.Row][pos.Col], "game %d: overlap at %v", game, pos)
			}
		}
	}
}

func BenchmarkLandPiece(b *testing.B) {
	for b.Loop() {
		grid := engine.NewGrid()
		for _, tetromino := range engine.Tetrominoes {
			grid.AddPiece(engine.SpawnPiece(tetromino))
			grid.LandPiece()
		}
	}
}
