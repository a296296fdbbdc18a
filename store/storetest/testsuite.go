// Package storetest runs the same behaviour checks against every Store
// implementation.
package storetest

import (
	"context"
	"testing"

	"github.com/battlesnakeio/arena/rules"
	"github.com/battlesnakeio/arena/store"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
)

// Suite runs every store test against s.
func Suite(t *testing.T, s store.Store) {
	t.Run("Games", func(t *testing.T) { testStoreGames(t, s) })
	t.Run("Frames", func(t *testing.T) { testStoreFrames(t, s) })
	t.Run("Status", func(t *testing.T) { testStoreGameStatus(t, s) })
}

// Game returns a recorder description with a fresh id.
func Game() *rules.Game {
	return &rules.Game{
		ID:        uuid.NewV4().String(),
		Width:     100,
		Height:    100,
		BlockSize: 20,
		TickRate:  10,
		Status:    rules.GameStatusRunning,
		Snakes: []rules.SnakeInfo{
			{Index: 0, Name: "Snake_0", Color: "green"},
			{Index: 1, Name: "Snake_1", Color: "blue"},
		},
	}
}

// Frame returns a small frame for the given game and turn.
func Frame(id string, turn int, gameOver bool) *rules.Frame {
	return &rules.Frame{
		GameID:    id,
		Turn:      turn,
		Width:     100,
		Height:    100,
		BlockSize: 20,
		Snakes: []rules.SnakeState{
			{
				Index:     0,
				Name:      "Snake_0",
				Color:     "green",
				Body:      []rules.Point{{X: 40 + 20*turn, Y: 0}, {X: 20 + 20*turn, Y: 0}},
				Direction: rules.DirectionRight,
				Alive:     !gameOver,
				Score:     turn,
			},
			{
				Index:     1,
				Name:      "Snake_1",
				Color:     "blue",
				Body:      []rules.Point{{X: 40, Y: 60}},
				Direction: rules.DirectionRight,
				Death:     &rules.Death{Turn: 0, Cause: rules.DeathCauseWallCollision},
			},
		},
		Food:     &rules.Point{X: 80, Y: 80},
		GameOver: gameOver,
	}
}

func testStoreGames(t *testing.T, s store.Store) {
	ctx := context.Background()
	game := Game()

	// Create and fetch a game.
	err := s.CreateGame(ctx, game, nil)
	require.NoError(t, err)
	g, err := s.GetGame(ctx, game.ID)
	require.NoError(t, err)
	require.Equal(t, game.ID, g.ID)
	require.Equal(t, game.Snakes, g.Snakes)
	require.Equal(t, game.BlockSize, g.BlockSize)

	// Returned games are copies.
	g.Snakes[0].Name = "changed"
	g, err = s.GetGame(ctx, game.ID)
	require.NoError(t, err)
	require.Equal(t, "Snake_0", g.Snakes[0].Name)

	// NotFound error thrown.
	_, err = s.GetGame(ctx, game.ID+"-missing")
	require.Equal(t, store.ErrNotFound, errors.Cause(err))
}

func testStoreFrames(t *testing.T, s store.Store) {
	ctx := context.Background()
	game := Game()

	err := s.CreateGame(ctx, game, []*rules.Frame{Frame(game.ID, 0, false)})
	require.NoError(t, err)

	for turn := 1; turn <= 2; turn++ {
		err = s.PushGameFrame(ctx, game.ID, Frame(game.ID, turn, turn == 2))
		require.NoError(t, err)
	}

	frames, err := s.ListGameFrames(ctx, game.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	for i, f := range frames {
		require.Equal(t, Frame(game.ID, i, i == 2), f)
	}

	frames, err = s.ListGameFrames(ctx, game.ID, 1, -1)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	require.Equal(t, 2, frames[0].Turn)
	require.True(t, frames[0].GameOver)

	frames, err = s.ListGameFrames(ctx, game.ID, 2, 1)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	require.Equal(t, 1, frames[0].Turn)

	frames, err = s.ListGameFrames(ctx, game.ID, 10, 5)
	require.NoError(t, err)
	require.Empty(t, frames)

	_, err = s.ListGameFrames(ctx, game.ID+"-missing", 10, 0)
	require.Equal(t, store.ErrNotFound, errors.Cause(err))

	err = s.PushGameFrame(ctx, game.ID+"-missing", Frame(game.ID, 3, false))
	require.Equal(t, store.ErrNotFound, errors.Cause(err))
}

func testStoreGameStatus(t *testing.T, s store.Store) {
	ctx := context.Background()
	game := Game()

	err := s.CreateGame(ctx, game, []*rules.Frame{Frame(game.ID, 0, false)})
	require.NoError(t, err)
	err = s.PushGameFrame(ctx, game.ID, Frame(game.ID, 1, true))
	require.NoError(t, err)

	err = s.SetGameStatus(ctx, game.ID, rules.GameStatusComplete)
	require.NoError(t, err)

	g, err := s.GetGame(ctx, game.ID)
	require.NoError(t, err)
	require.Equal(t, rules.GameStatusComplete, g.Status)

	// Frames survive the game being completed.
	frames, err := s.ListGameFrames(ctx, game.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	err = s.SetGameStatus(ctx, game.ID+"-missing", rules.GameStatusComplete)
	require.Equal(t, store.ErrNotFound, errors.Cause(err))
}
