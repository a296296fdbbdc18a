package commands

import (
	"context"
	"testing"
	"time"

	"github.com/battlesnakeio/arena/rules"
	"github.com/battlesnakeio/arena/store"
	"github.com/battlesnakeio/arena/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestLoadGamePages(t *testing.T) {
	ctx := context.Background()
	s := store.InMemStore()
	game := storetest.Game()

	total := framePageSize + 3
	require.NoError(t, s.CreateGame(ctx, game, []*rules.Frame{storetest.Frame(game.ID, 0, false)}))
	for turn := 1; turn < total; turn++ {
		require.NoError(t, s.PushGameFrame(ctx, game.ID, storetest.Frame(game.ID, turn, turn == total-1)))
	}

	g, frames, err := loadGame(ctx, s, game.ID)
	require.NoError(t, err)
	require.Equal(t, game.ID, g.ID)
	require.Len(t, frames, total)
	for i, f := range frames {
		require.Equal(t, i, f.Turn)
	}
}

func TestLoadGameErrors(t *testing.T) {
	ctx := context.Background()
	s := store.InMemStore()

	_, _, err := loadGame(ctx, s, "missing")
	require.Error(t, err)

	game := storetest.Game()
	require.NoError(t, s.CreateGame(ctx, game, nil))
	_, _, err = loadGame(ctx, s, game.ID)
	require.EqualError(t, err, "game "+game.ID+" has no frames")
}

func TestMoveFrames(t *testing.T) {
	frames := []*rules.Frame{{Turn: 0}, {Turn: 1}, {Turn: 2}}

	i, f, done := moveFrameForwards(0, frames)
	require.Equal(t, 1, i)
	require.Equal(t, 1, f.Turn)
	require.False(t, done)

	i, f, done = moveFrameForwards(2, frames)
	require.Equal(t, 2, i)
	require.Equal(t, 2, f.Turn)
	require.True(t, done)

	i, f = moveFrameBackwards(1, frames)
	require.Equal(t, 0, i)
	require.Equal(t, 0, f.Turn)

	i, f = moveFrameBackwards(0, frames)
	require.Equal(t, 0, i)
	require.Equal(t, 0, f.Turn)
}

func TestFramePeriod(t *testing.T) {
	require.Equal(t, 100*time.Millisecond, framePeriod(&rules.Game{TickRate: 10}))
	require.Equal(t, 200*time.Millisecond, framePeriod(&rules.Game{}))
}

func TestOpenStore(t *testing.T) {
	s, closeStore, err := openStore("inmem", "")
	require.NoError(t, err)
	require.NotNil(t, s)
	closeStore()

	s, closeStore, err = openStore("file", t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, s)
	closeStore()

	_, _, err = openStore("sql", "")
	require.EqualError(t, err, `invalid backend "sql"`)
}
