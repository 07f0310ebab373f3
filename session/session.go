// Package session drives an engine.Grid through a game: it deals pieces from a
// seven-piece bag, keeps one piece of lookahead, applies gravity and player
// commands frame by frame, and totals score, lines and level across pieces.
package session

import (
	"github.com/plus3/blockfall/engine"
)

// Session is the state of one game plus the statistics collected across restarts.
type Session struct {
	config   Config
	grid     *engine.Grid
	bag      *Bag
	next     engine.Tetromino
	commands *Commands
	stats    *Stats

	score    uint64
	lines    int
	level    int
	paused   bool
	gameOver bool

	fallAccumulator float64
	seenLocks       uint64
}

// New creates a session with an empty grid. It fails with an error wrapping
// ErrInvalidConfig when the config does not validate.
func New(config Config) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		config:   config,
		bag:      NewBag(config.Seed),
		commands: newCommands(),
		stats:    newStats(),
	}
	s.reset()
	return s, nil
}

func (s *Session) reset() {
	s.grid = engine.NewGrid()
	s.next = s.bag.Next()
	s.score = 0
	s.lines = 0
	s.level = s.config.StartLevel
	s.paused = false
	s.gameOver = false
	s.fallAccumulator = 0
	s.seenLocks = 0
	s.stats.games++
}

// Restart begins a new game on a fresh grid. The bag and statistics carry over.
func (s *Session) Restart() {
	s.reset()
}

// Config returns the settings the session was created with.
func (s *Session) Config() Config {
	return s.config
}

// Grid returns the live grid. Drivers read it to render; mutations should go
// through Commands.
func (s *Session) Grid() *engine.Grid {
	return s.grid
}

// Seed returns the seed the piece bag actually uses. It differs from
// Config().Seed only when that is zero.
func (s *Session) Seed() uint64 {
	return s.bag.Seed()
}

// Commands returns the input queue applied on the next frame.
func (s *Session) Commands() *Commands {
	return s.commands
}

// Score returns the points earned in the current game.
func (s *Session) Score() uint64 {
	return s.score
}

// Lines returns the rows cleared in the current game.
func (s *Session) Lines() int {
	return s.lines
}

// Level returns the current level, which sets the fall speed.
func (s *Session) Level() int {
	return s.level
}

// Next returns the tetromino that will spawn after the current piece locks.
func (s *Session) Next() engine.Tetromino {
	return s.next
}

// Paused reports whether gravity and input are suspended.
func (s *Session) Paused() bool {
	return s.paused
}

// GameOver reports whether the last spawn was rejected.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Stats returns the statistics collected since the session was created.
func (s *Session) Stats() *Stats {
	return s.stats
}

// FallSpeed returns the gravity for the current level in rows per second.
func (s *Session) FallSpeed() float64 {
	return s.config.BaseFallSpeed + float64(s.level-1)*s.config.FallSpeedStep
}

// FallInterval returns the seconds between gravity steps at the current level.
func (s *Session) FallInterval() float64 {
	return 1 / s.FallSpeed()
}

func (s *Session) active() bool {
	return !s.paused && !s.gameOver
}

// spawn hands the lookahead piece to the grid and draws a new lookahead.
// A rejected spawn ends the game.
func (s *Session) spawn() bool {
	t := s.next
	s.next = s.bag.Next()
	if !s.grid.AddPiece(engine.SpawnPiece(t)) {
		s.gameOver = true
		return false
	}
	s.stats.recordSpawn(t)
	return true
}

// collect adds points to the score and, when the grid has locked a piece since
// the last call, accounts for its cleared lines.
func (s *Session) collect(points uint64) {
	s.score += points

	if s.grid.Locks() == s.seenLocks {
		return
	}
	s.seenLocks = s.grid.Locks()
	s.fallAccumulator = 0

	event, _ := s.grid.LastLock()
	s.stats.recordLock(event)
	if event.Lines == 0 {
		return
	}
	s.lines += event.Lines
	s.level = s.config.StartLevel + s.lines/s.config.LinesPerLevel
}
