package engine

//go:generate go tool stringer -type=Direction,Rotation
//go:generate go tool stringer -type=Orientation -trimprefix=Orientation

// Position is a signed row/column pair. Piece anchors may sit above or left of the
// board because a 4x4 template rarely fills its own top row or left column.
type Position struct {
	Row int
	Col int
}

// Add returns the position translated by the given offset.
func (p Position) Add(o Position) Position {
	return Position{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Direction is a single-cell translation.
// Up exists for symmetry; standard play never moves a piece up.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Offset returns the one-cell translation for the direction.
func (d Direction) Offset() Position {
	switch d {
	case Up:
		return Position{Row: -1}
	case Down:
		return Position{Row: 1}
	case Left:
		return Position{Col: -1}
	case Right:
		return Position{Col: 1}
	}
	return Position{}
}

// Rotation is the sense of a quarter turn.
type Rotation uint8

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// Orientation is the absolute rotation state of a piece relative to its spawn shape.
// Values are the number of clockwise quarter turns from OrientationUp.
type Orientation uint8

const (
	OrientationUp Orientation = iota
	OrientationRight
	OrientationDown
	OrientationLeft
)

// Turn returns the orientation one quarter turn away in the given sense.
func (o Orientation) Turn(r Rotation) Orientation {
	if r == Clockwise {
		return (o + 1) % 4
	}
	return (o + 3) % 4
}

// toBoardCoord translates piece-local coordinates into board coordinates.
// The result is not guaranteed to be a valid board index.
func toBoardCoord(anchor Position, pieceRow, pieceCol int) (int, int) {
	return pieceRow + anchor.Row, pieceCol + anchor.Col
}

// toPieceCoord translates board coordinates into piece-local coordinates.
// The result is not guaranteed to be a valid shape index.
func toPieceCoord(anchor Position, boardRow, boardCol int) (int, int) {
	return boardRow - anchor.Row, boardCol - anchor.Col
}

func withinBounds(val, lo, hi int) bool {
	return val >= lo && val < hi
}
