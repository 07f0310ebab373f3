package engine

//go:generate go tool stringer -type=Tetromino -trimprefix=Tetromino

// ShapeSize is the side of the square every piece template is drawn in.
const ShapeSize = 4

// Shape is a piece template or a rotated piece shape, indexed [row][col].
type Shape [ShapeSize][ShapeSize]Cell

// Tetromino identifies one of the seven piece families.
type Tetromino uint8

const (
	TetrominoI Tetromino = iota
	TetrominoJ
	TetrominoL
	TetrominoO
	TetrominoS
	TetrominoT
	TetrominoZ
)

// TetrominoCount is the number of piece families.
const TetrominoCount = 7

// Tetrominoes lists every family in declaration order.
var Tetrominoes = [TetrominoCount]Tetromino{
	TetrominoI, TetrominoJ, TetrominoL, TetrominoO, TetrominoS, TetrominoT, TetrominoZ,
}

type tetrominoSpec struct {
	color Cell
	// rotationSize is the side of the square the template rotates in. Rotating a 3-wide
	// template inside the full 4x4 would shift its footprint by a column.
	rotationSize int
	cells        [4][2]int
	spawn        Position
}

var tetrominoSpecs = [TetrominoCount]tetrominoSpec{
	TetrominoI: {
		color:        CellBrown,
		rotationSize: 4,
		cells:        [4][2]int{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		spawn:        Position{Row: 0, Col: 3},
	},
	TetrominoJ: {
		color:        CellBlue,
		rotationSize: 3,
		cells:        [4][2]int{{0, 2}, {1, 2}, {2, 1}, {2, 2}},
		spawn:        Position{Row: 0, Col: 3},
	},
	TetrominoL: {
		color:        CellOrange,
		rotationSize: 3,
		cells:        [4][2]int{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		spawn:        Position{Row: 0, Col: 3},
	},
	TetrominoO: {
		color:        CellYellow,
		rotationSize: 4,
		cells:        [4][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}},
		spawn:        Position{Row: -1, Col: 3},
	},
	TetrominoS: {
		color:        CellGreen,
		rotationSize: 3,
		cells:        [4][2]int{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		spawn:        Position{Row: 0, Col: 3},
	},
	TetrominoT: {
		color:        CellPurple,
		rotationSize: 3,
		cells:        [4][2]int{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		spawn:        Position{Row: 0, Col: 3},
	},
	TetrominoZ: {
		color:        CellRed,
		rotationSize: 3,
		cells:        [4][2]int{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		spawn:        Position{Row: 0, Col: 3},
	},
}

var templates = func() [TetrominoCount]Shape {
	var out [TetrominoCount]Shape
	for t, spec := range tetrominoSpecs {
		for _, rc := range spec.cells {
			out[t][rc[0]][rc[1]] = spec.color
		}
	}
	return out
}()

// Valid reports whether t names one of the seven families.
func (t Tetromino) Valid() bool {
	return t < TetrominoCount
}

// Template returns the canonical spawn-orientation shape.
func (t Tetromino) Template() Shape {
	return templates[t]
}

// Color returns the cell color shared by every square of the family.
func (t Tetromino) Color() Cell {
	return tetrominoSpecs[t].color
}

// RotationSize returns the side of the active square the template rotates within.
func (t Tetromino) RotationSize() int {
	return tetrominoSpecs[t].rotationSize
}

// SpawnPosition returns the board anchor that centers the family on the top rows.
func (t Tetromino) SpawnPosition() Position {
	return tetrominoSpecs[t].spawn
}

// rotateShape turns the top-left size x size square of s by the given number of
// clockwise quarter turns. Cells outside that square are left empty.
func rotateShape(s Shape, size int, quarterTurns int) Shape {
	out := s
	for range quarterTurns % 4 {
		var next Shape
		for i := range size {
			for j := range size {
				next[j][size-1-i] = out[i][j]
			}
		}
		out = next
	}
	return out
}
