package session

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/engine"
)

// Bag deals tetrominoes in shuffled rounds of seven: every family appears exactly
// once per round. Two bags built from the same seed deal the same sequence.
type Bag struct {
	seed    uint64
	rng     *rand.Rand
	pending []engine.Tetromino
}

// NewBag creates a bag seeded with seed. A zero seed draws a random one, which
// Seed reports so the sequence can be replayed.
func NewBag(seed uint64) *Bag {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return &Bag{
		seed:    seed,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		pending: make([]engine.Tetromino, 0, engine.TetrominoCount),
	}
}

// Seed returns the seed the bag was built from.
func (b *Bag) Seed() uint64 {
	return b.seed
}

// Next removes and returns the next tetromino, starting a new round when the
// current one is exhausted.
func (b *Bag) Next() engine.Tetromino {
	if len(b.pending) == 0 {
		b.refill()
	}
	t := b.pending[0]
	b.pending = b.pending[1:]
	return t
}

// Peek returns the tetromino Next would return without consuming it.
func (b *Bag) Peek() engine.Tetromino {
	if len(b.pending) == 0 {
		b.refill()
	}
	return b.pending[0]
}

// Remaining returns how many tetrominoes are left in the current round.
func (b *Bag) Remaining() int {
	return len(b.pending)
}

func (b *Bag) refill() {
	b.pending = append(b.pending[:0], engine.Tetrominoes[:]...)
	b.rng.Shuffle(len(b.pending), func(i, j int) {
		b.pending[i], b.pending[j] = b.pending[j], b.pending[i]
	})
}
