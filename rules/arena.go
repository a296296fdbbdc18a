package rules

import (
	"github.com/battlesnakeio/arena/config"
	"golang.org/x/exp/rand"
)

// Arena owns the board, every snake and the food. It is not safe for
// concurrent use: one goroutine drives it with Tick and everything else works
// from the Frames it returns.
type Arena struct {
	id      string
	cfg     config.Config
	snakes  []*Snake
	food    Point
	hasFood bool
	turn    int
	rng     *rand.Rand
}

// ID is the unique game id.
func (a *Arena) ID() string { return a.id }

// Turn is the number of ticks run so far.
func (a *Arena) Turn() int { return a.turn }

// Config returns the configuration the arena was built with.
func (a *Arena) Config() config.Config { return a.cfg }

// Food returns the food cell, false when the board currently has none.
func (a *Arena) Food() (Point, bool) { return a.food, a.hasFood }

// Snakes returns the snakes in creation order. Their exported methods are
// read-only.
func (a *Arena) Snakes() []*Snake {
	return append([]*Snake(nil), a.snakes...)
}

// GameOver is true once every snake is dead.
func (a *Arena) GameOver() bool {
	for _, s := range a.snakes {
		if s.alive {
			return false
		}
	}
	return true
}

// Scoreboard lists every snake's score in creation order.
func (a *Arena) Scoreboard() Scoreboard {
	sb := make(Scoreboard, 0, len(a.snakes))
	for _, s := range a.snakes {
		sb = append(sb, ScoreEntry{Index: s.index, Name: s.name, Score: s.score, Alive: s.alive})
	}
	return sb
}

// Snapshot copies the current state into a Frame.
func (a *Arena) Snapshot() *Frame {
	frame := &Frame{
		GameID:    a.id,
		Turn:      a.turn,
		Width:     a.cfg.Width,
		Height:    a.cfg.Height,
		BlockSize: a.cfg.BlockSize,
		Snakes:    make([]SnakeState, 0, len(a.snakes)),
		GameOver:  a.GameOver(),
	}
	for _, s := range a.snakes {
		frame.Snakes = append(frame.Snakes, SnakeState{
			Index:     s.index,
			Name:      s.name,
			Color:     s.color,
			Body:      s.Body(),
			Direction: s.direction,
			Alive:     s.alive,
			Score:     s.score,
			Death:     s.Death(),
		})
	}
	if a.hasFood {
		food := a.food
		frame.Food = &food
	}
	return frame
}

// Game returns the recorder description of the arena.
func (a *Arena) Game() *Game {
	g := &Game{
		ID:        a.id,
		Width:     a.cfg.Width,
		Height:    a.cfg.Height,
		BlockSize: a.cfg.BlockSize,
		TickRate:  a.cfg.TickRate,
		Status:    GameStatusRunning,
		Snakes:    make([]SnakeInfo, 0, len(a.snakes)),
	}
	if a.turn == 0 {
		g.Status = GameStatusStopped
	}
	if a.GameOver() {
		g.Status = GameStatusComplete
	}
	for _, s := range a.snakes {
		g.Snakes = append(g.Snakes, SnakeInfo{Index: s.index, Name: s.name, Color: s.color})
	}
	return g
}

func (a *Arena) aliveSnakes() []*Snake {
	snakes := []*Snake{}
	for _, s := range a.snakes {
		if s.alive {
			snakes = append(snakes, s)
		}
	}
	return snakes
}
