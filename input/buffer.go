package input

import (
	"sync"

	"github.com/battlesnakeio/arena/rules"
)

// Buffer holds at most one pending direction per snake. The input goroutine
// pushes, the tick goroutine drains; a later push for the same snake replaces
// the earlier one.
type Buffer struct {
	mu      sync.Mutex
	pending map[int]rules.Direction
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{pending: map[int]rules.Direction{}}
}

// Push records a direction change for a snake.
func (b *Buffer) Push(index int, d rules.Direction) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending[index] = d
}

// PushAll records every move of a resolved signal at once.
func (b *Buffer) PushAll(moves map[int]rules.Direction) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, d := range moves {
		b.pending[i] = d
	}
}

// Drain returns the pending changes and empties the buffer.
func (b *Buffer) Drain() map[int]rules.Direction {
	b.mu.Lock()
	defer b.mu.Unlock()

	moves := b.pending
	b.pending = map[int]rules.Direction{}
	return moves
}
