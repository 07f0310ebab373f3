package engine

// LineClearPoints is the score for clearing 0 to 4 rows with a single lock.
var LineClearPoints = [...]uint64{0, 40, 100, 300, 1200}

// LockEvent describes the outcome of one piece locking into the board.
type LockEvent struct {
	Tetromino Tetromino
	Lines     int
	Points    uint64
}

// Locks returns the number of pieces that have locked since the grid was created.
func (g *Grid) Locks() uint64 {
	return g.locks
}

// LastLock returns the most recent lock event. ok is false before the first lock.
func (g *Grid) LastLock() (LockEvent, bool) {
	return g.lastLock, g.locks > 0
}

// incorporatePiece writes the active piece into the board, empties the slot and
// clears any completed rows. Cells outside the board are dropped.
func (g *Grid) incorporatePiece() uint64 {
	if !g.active.ok {
		return 0
	}

	p := &g.active.piece
	for pos, cell := range p.Cells() {
		if withinBounds(pos.Row, 0, Height) && withinBounds(pos.Col, 0, Width) {
			g.board[pos.Row][pos.Col] = cell
		}
	}
	t := p.tetromino
	g.active = activeSlot{}

	lines := g.clearFullRows()
	points := LineClearPoints[min(lines, len(LineClearPoints)-1)]

	g.locks++
	g.lastLock = LockEvent{Tetromino: t, Lines: lines, Points: points}
	return points
}

// clearFullRows removes every full row, pulling the rows above it down, and returns
// the number removed. Scanning restarts from the bottom after each removal so rows
// that shift into an already-visited index are not skipped.
func (g *Grid) clearFullRows() int {
	cleared := 0
	for {
		row := g.lowestFullRow()
		if row < 0 {
			return cleared
		}
		g.pullDown(row)
		cleared++
	}
}

func (g *Grid) lowestFullRow() int {
	for row := Height - 1; row >= 0; row-- {
		if g.isRowFull(row) {
			return row
		}
	}
	return -1
}

func (g *Grid) isRowFull(row int) bool {
	for _, cell := range g.board[row] {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

// pullDown overwrites row with the row above it, repeating up to the top; row 0
// becomes empty.
func (g *Grid) pullDown(row int) {
	for r := row; r > 0; r-- {
		g.board[r] = g.board[r-1]
	}
	g.board[0] = [Width]Cell{}
}
