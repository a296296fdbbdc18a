// Package store records games frame by frame so they can be replayed and
// inspected after they finish.
package store

import (
	"context"
	"sync"

	"github.com/battlesnakeio/arena/rules"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when a game is not found.
var ErrNotFound = errors.New("store: game not found")

// Store is the interface to the backend store.
type Store interface {
	// CreateGame will insert a game with its initial frames.
	CreateGame(ctx context.Context, g *rules.Game, frames []*rules.Frame) error
	// PushGameFrame will push a game frame onto the list of frames.
	PushGameFrame(ctx context.Context, id string, f *rules.Frame) error
	// ListGameFrames will list frames by an offset and limit, it supports
	// negative offset.
	ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*rules.Frame, error)
	// GetGame will fetch the game.
	GetGame(ctx context.Context, id string) (*rules.Game, error)
	// SetGameStatus is used to set a specific game status.
	SetGameStatus(ctx context.Context, id string, status rules.GameStatus) error
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{
		games:  map[string]*rules.Game{},
		frames: map[string][]*rules.Frame{},
	}
}

type inmem struct {
	games  map[string]*rules.Game
	frames map[string][]*rules.Frame
	lock   sync.Mutex
}

func (in *inmem) CreateGame(ctx context.Context, g *rules.Game, frames []*rules.Frame) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	in.games[g.ID] = g.Clone()
	in.frames[g.ID] = nil
	for _, f := range frames {
		in.frames[g.ID] = append(in.frames[g.ID], f.Clone())
	}
	return nil
}

func (in *inmem) PushGameFrame(ctx context.Context, id string, f *rules.Frame) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[id]; !ok {
		return ErrNotFound
	}
	in.frames[id] = append(in.frames[id], f.Clone())
	return nil
}

func (in *inmem) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*rules.Frame, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[id]; !ok {
		return nil, ErrNotFound
	}
	page := Page(in.frames[id], limit, offset)
	out := make([]*rules.Frame, 0, len(page))
	for _, f := range page {
		out = append(out, f.Clone())
	}
	return out, nil
}

func (in *inmem) GetGame(ctx context.Context, id string) (*rules.Game, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if g, ok := in.games[id]; ok {
		return g.Clone(), nil
	}
	return nil, ErrNotFound
}

func (in *inmem) SetGameStatus(ctx context.Context, id string, status rules.GameStatus) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	g, ok := in.games[id]
	if !ok {
		return ErrNotFound
	}
	g.Status = status
	return nil
}

// Page applies limit and offset to frames. A negative offset counts back from
// the end.
func Page(frames []*rules.Frame, limit, offset int) []*rules.Frame {
	start, end := Bounds(len(frames), limit, offset)
	return frames[start:end]
}

// Bounds turns limit and offset into slice bounds over n items.
func Bounds(n, limit, offset int) (int, int) {
	if offset < 0 {
		offset = n + offset
		if offset < 0 {
			offset = 0
		}
	}
	if n == 0 || offset >= n || limit <= 0 {
		return 0, 0
	}
	if offset+limit >= n {
		limit = n - offset
	}
	return offset, offset + limit
}
