package engine

import (
	"iter"
	"strings"
)

// NewGridWithBoard returns a grid whose locked cells start as a copy of b.
// Useful for puzzle setups and tests; normal play starts from NewGrid.
func NewGridWithBoard(b Board) *Grid {
	return &Grid{board: b}
}

// Clone returns an independent copy of the grid, active piece included. Planners
// use clones to try moves without touching the live game.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Board returns a copy of the locked cells, without the active piece.
func (g *Grid) Board() Board {
	return g.board
}

// Cell returns the effective cell at a board coordinate: the active piece's cell
// when it covers the coordinate, otherwise the locked cell. Out-of-board
// coordinates read as CellEmpty.
func (g *Grid) Cell(row, col int) Cell {
	if !withinBounds(row, 0, Height) || !withinBounds(col, 0, Width) {
		return CellEmpty
	}
	if g.active.ok && g.active.piece.IsInside(row, col) {
		pr, pc := toPieceCoord(g.active.piece.position, row, col)
		if cell := g.active.piece.CellAt(pr, pc); !cell.IsEmpty() {
			return cell
		}
	}
	return g.board[row][col]
}

// Snapshot returns the merged board and active piece as one matrix.
func (g *Grid) Snapshot() Board {
	out := g.board
	if g.active.ok {
		for pos, cell := range g.active.piece.Cells() {
			if withinBounds(pos.Row, 0, Height) && withinBounds(pos.Col, 0, Width) {
				out[pos.Row][pos.Col] = cell
			}
		}
	}
	return out
}

// All iterates over every board coordinate in row-major order with its effective cell.
func (g *Grid) All() iter.Seq2[Position, Cell] {
	return func(yield func(Position, Cell) bool) {
		snapshot := g.Snapshot()
		for row := range Height {
			for col := range Width {
				if !yield(Position{Row: row, Col: col}, snapshot[row][col]) {
					return
				}
			}
		}
	}
}

const wallGlyph = "🧱"

// String draws the merged view framed by walls on the sides and bottom.
func (g *Grid) String() string {
	snapshot := g.Snapshot()

	var b strings.Builder
	for row := range Height {
		b.WriteString(wallGlyph)
		for col := range Width {
			b.WriteString(snapshot[row][col].Glyph())
		}
		b.WriteString(wallGlyph)
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(wallGlyph, Width+2))
	b.WriteByte('\n')
	return b.String()
}
