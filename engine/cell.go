package engine

//go:generate go tool stringer -type=Cell -trimprefix=Cell

// Cell is the content of a single board or piece square.
// The zero value is CellEmpty; every other value is the color of one tetromino family.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBlue
	CellBrown
	CellGreen
	CellOrange
	CellPurple
	CellRed
	CellYellow
)

// IsEmpty reports whether the cell is unoccupied.
func (c Cell) IsEmpty() bool {
	return c == CellEmpty
}

// Glyph returns the square used by the text renderer for this cell.
func (c Cell) Glyph() string {
	switch c {
	case CellBlue:
		return "🟦"
	case CellBrown:
		return "🟫"
	case CellGreen:
		return "🟩"
	case CellOrange:
		return "🟧"
	case CellPurple:
		return "🟪"
	case CellRed:
		return "🟥"
	case CellYellow:
		return "🟨"
	default:
		return "⬛"
	}
}
