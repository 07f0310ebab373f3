package engine

import (
	"iter"
	"strings"
)

// Piece is a tetromino instance: family, orientation, anchor position and the shape
// cached for that orientation. Pieces are values; copying one yields an independent
// hypothetical that can be moved without touching the original.
type Piece struct {
	tetromino   Tetromino
	orientation Orientation
	position    Position
	shape       Shape
}

// NewPiece creates a piece in its spawn orientation anchored at position.
func NewPiece(t Tetromino, position Position) Piece {
	return Piece{
		tetromino:   t,
		orientation: OrientationUp,
		position:    position,
		shape:       t.Template(),
	}
}

// SpawnPiece creates a piece of the given family at its spawn position.
func SpawnPiece(t Tetromino) Piece {
	return NewPiece(t, t.SpawnPosition())
}

// Tetromino returns the piece's family.
func (p Piece) Tetromino() Tetromino {
	return p.tetromino
}

// Orientation returns the current quarter-turn state.
func (p Piece) Orientation() Orientation {
	return p.orientation
}

// Position returns the board coordinate of the shape's top-left corner.
func (p Piece) Position() Position {
	return p.position
}

// Shape returns a copy of the cached shape for the current orientation.
func (p Piece) Shape() Shape {
	return p.shape
}

// Slide moves the piece one cell in the given direction. The grid validates
// moves before calling this; the piece itself never refuses.
func (p *Piece) Slide(d Direction) {
	p.position = p.position.Add(d.Offset())
}

// Rotate turns the piece a quarter turn and rebuilds its shape from the canonical
// template and the new absolute orientation.
func (p *Piece) Rotate(r Rotation) {
	p.orientation = p.orientation.Turn(r)
	p.shape = rotateShape(p.tetromino.Template(), p.tetromino.RotationSize(), int(p.orientation))
}

// CellAt returns the shape cell at piece-local coordinates, or CellEmpty when the
// coordinates fall outside the 4x4 extent.
func (p Piece) CellAt(row, col int) Cell {
	if !withinBounds(row, 0, ShapeSize) || !withinBounds(col, 0, ShapeSize) {
		return CellEmpty
	}
	return p.shape[row][col]
}

// HasCellAt reports whether the shape is occupied at piece-local coordinates.
func (p Piece) HasCellAt(row, col int) bool {
	return !p.CellAt(row, col).IsEmpty()
}

// IsInside reports whether a board coordinate falls within the piece's 4x4 extent,
// occupied or not.
func (p Piece) IsInside(boardRow, boardCol int) bool {
	row, col := toPieceCoord(p.position, boardRow, boardCol)
	return withinBounds(row, 0, ShapeSize) && withinBounds(col, 0, ShapeSize)
}

// Cells iterates over the occupied cells of the piece in board coordinates.
func (p Piece) Cells() iter.Seq2[Position, Cell] {
	return func(yield func(Position, Cell) bool) {
		for i := range ShapeSize {
			for j := range ShapeSize {
				cell := p.shape[i][j]
				if cell.IsEmpty() {
					continue
				}
				row, col := toBoardCoord(p.position, i, j)
				if !yield(Position{Row: row, Col: col}, cell) {
					return
				}
			}
		}
	}
}

// String draws the 4x4 shape, one line per row.
func (p Piece) String() string {
	var b strings.Builder
	for i := range ShapeSize {
		for j := range ShapeSize {
			b.WriteString(p.shape[i][j].Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
