// Package engine implements the placement rules of a falling-block puzzle: a fixed
// board of locked cells, a single active piece, and the validation, locking,
// row-clearing and scoring that happen as the piece moves.
//
// The engine is synchronous and does no I/O. Every operation returns immediately
// with a boolean outcome and, where relevant, the points earned.
package engine

const (
	Width  = 10
	Height = 20
)

// Board is the matrix of locked cells, indexed [row][col] with row 0 at the top.
type Board [Height][Width]Cell

// activeSlot holds the single falling piece. ok is false when no piece is active.
type activeSlot struct {
	piece Piece
	ok    bool
}

// Grid is the game board: locked cells plus at most one active piece overlaid on
// top. The two are merged only when the piece locks.
type Grid struct {
	board  Board
	active activeSlot

	locks    uint64
	lastLock LockEvent
	kicks    uint64
}

// NewGrid returns an empty board with no active piece.
func NewGrid() *Grid {
	return &Grid{}
}

// HasPiece reports whether a piece is currently falling.
func (g *Grid) HasPiece() bool {
	return g.active.ok
}

// ActivePiece returns a copy of the falling piece, if any.
func (g *Grid) ActivePiece() (Piece, bool) {
	return g.active.piece, g.active.ok
}

// AddPiece places a new active piece. It fails when a piece is already active, when
// any occupied cell lands outside the board, or when it overlaps a locked cell.
// A rejected piece is discarded; a failed spawn is the usual top-out condition.
func (g *Grid) AddPiece(p Piece) bool {
	if g.active.ok || !p.tetromino.Valid() {
		return false
	}
	if g.doesPieceOverlap(&p) {
		return false
	}
	g.active = activeSlot{piece: p, ok: true}
	return true
}

// MovePiece slides the active piece one cell. A blocked downward move locks the
// piece and returns the points earned by the lock; blocked sideways moves have no
// effect.
func (g *Grid) MovePiece(d Direction) (bool, uint64) {
	if !g.active.ok {
		return false, 0
	}

	moved := g.active.piece
	moved.Slide(d)
	if !g.doesPieceOverlap(&moved) {
		g.active.piece = moved
		return true, 0
	}

	if d == Down {
		return false, g.incorporatePiece()
	}
	return false, 0
}

// LandPiece drops the active piece until it locks. When the lock clears at least one
// row the result is the clear points plus a bonus of one per row dropped plus one;
// a drop that clears nothing earns nothing.
func (g *Grid) LandPiece() uint64 {
	if !g.active.ok {
		return 0
	}

	var linesDropped uint64
	for {
		moved, points := g.MovePiece(Down)
		if moved {
			linesDropped++
			continue
		}
		if points > 0 {
			return points + linesDropped + 1
		}
		return 0
	}
}

// kickOffsets are tried in order when rotating: in place, one cell left, one cell right.
var kickOffsets = [...]Position{{}, {Col: -1}, {Col: 1}}

// RotatePiece turns the active piece, falling back to a one-cell shift left and
// then right when the rotated shape does not fit. Exactly one candidate is
// committed, or none and the piece is unchanged.
func (g *Grid) RotatePiece(r Rotation) bool {
	if !g.active.ok {
		return false
	}

	for i, offset := range kickOffsets {
		candidate := g.active.piece
		candidate.position = candidate.position.Add(offset)
		candidate.Rotate(r)
		if g.doesPieceOverlap(&candidate) {
			continue
		}
		g.active.piece = candidate
		if i > 0 {
			g.kicks++
		}
		return true
	}
	return false
}

// Kicks returns how many rotations needed a sideways shift to succeed.
func (g *Grid) Kicks() uint64 {
	return g.kicks
}

// doesPieceOverlap reports whether any occupied cell of p is outside the board or on
// a locked cell. It is the only validity predicate for spawn, slide and rotation.
func (g *Grid) doesPieceOverlap(p *Piece) bool {
	for pos := range p.Cells() {
		if !withinBounds(pos.Row, 0, Height) || !withinBounds(pos.Col, 0, Width) {
			return true
		}
		if !g.board[pos.Row][pos.Col].IsEmpty() {
			return true
		}
	}
	return false
}
