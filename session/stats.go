package session

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/engine"
)

// Stats counts what happened across every game of a session.
type Stats struct {
	spawned *intmap.Map[engine.Tetromino, uint64]
	clears  *intmap.Map[int, uint64]
	games   uint64
	locks   uint64
	lines   uint64
	kicks   uint64
	drops   uint64
}

func newStats() *Stats {
	return &Stats{
		spawned: intmap.New[engine.Tetromino, uint64](engine.TetrominoCount),
		clears:  intmap.New[int, uint64](len(engine.LineClearPoints)),
	}
}

func (st *Stats) recordSpawn(t engine.Tetromino) {
	n, _ := st.spawned.Get(t)
	st.spawned.Put(t, n+1)
}

func (st *Stats) recordLock(event engine.LockEvent) {
	st.locks++
	st.lines += uint64(event.Lines)
	n, _ := st.clears.Get(event.Lines)
	st.clears.Put(event.Lines, n+1)
}

// Games returns the number of games started, including the current one.
func (st *Stats) Games() uint64 {
	return st.games
}

// Locks returns the number of pieces locked.
func (st *Stats) Locks() uint64 {
	return st.locks
}

// Lines returns the number of rows cleared.
func (st *Stats) Lines() uint64 {
	return st.lines
}

// Kicks returns the number of rotations that needed a sideways shift.
func (st *Stats) Kicks() uint64 {
	return st.kicks
}

// HardDrops returns the number of hard drops performed.
func (st *Stats) HardDrops() uint64 {
	return st.drops
}

// Spawned returns how many pieces of family t entered play.
func (st *Stats) Spawned(t engine.Tetromino) uint64 {
	n, _ := st.spawned.Get(t)
	return n
}

// Clears returns how many locks cleared exactly the given number of rows.
func (st *Stats) Clears(lines int) uint64 {
	n, _ := st.clears.Get(lines)
	return n
}

// ClearHistogram returns lock counts indexed by rows cleared.
func (st *Stats) ClearHistogram() [len(engine.LineClearPoints)]uint64 {
	var out [len(engine.LineClearPoints)]uint64
	st.clears.ForEach(func(lines int, n uint64) bool {
		if lines >= 0 && lines < len(out) {
			out[lines] = n
		}
		return true
	})
	return out
}
