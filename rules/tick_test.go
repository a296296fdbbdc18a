package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameTickUpdatesTurnCounter(t *testing.T) {
	a := testArena(t, testSnake(0, DirectionRight, horizontal(Point{X: 100, Y: 100}, 3)...))
	f := a.Tick(nil)
	require.Equal(t, 1, f.Turn)
	f = a.Tick(nil)
	require.Equal(t, 2, f.Turn)
	require.Equal(t, 2, a.Turn())
}

func TestGameTickMovesSnake(t *testing.T) {
	a := testArena(t, testSnake(0, DirectionRight, horizontal(Point{X: 100, Y: 100}, 3)...))

	f := a.Tick(nil)
	require.Len(t, f.Snakes, 1)
	s := f.Snakes[0]
	require.True(t, s.Alive)
	require.Equal(t, []Point{
		{X: 120, Y: 100},
		{X: 100, Y: 100},
		{X: 80, Y: 100},
	}, s.Body)
	require.Equal(t, 0, s.Score)
	require.False(t, f.GameOver)
}

func TestGameTickSnakeEats(t *testing.T) {
	a := testArena(t, testSnake(0, DirectionRight, horizontal(Point{X: 100, Y: 100}, 3)...))
	a.food = Point{X: 120, Y: 100}

	f := a.Tick(nil)
	s := f.Snakes[0]
	require.Equal(t, 1, s.Score)
	require.Len(t, s.Body, 4)
	require.NotNil(t, f.Food)
	require.NotContains(t, s.Body, *f.Food)
}

func TestGameTickReverseIntoNeck(t *testing.T) {
	a := testArena(t,
		testSnake(0, DirectionRight, horizontal(Point{X: 100, Y: 100}, 3)...),
		testSnake(1, DirectionRight, horizontal(Point{X: 100, Y: 300}, 3)...),
	)

	f := a.Tick(map[int]Direction{0: DirectionLeft})
	require.Equal(t, DirectionLeft, f.Snakes[0].Direction)
	require.False(t, f.Snakes[0].Alive)
	require.Equal(t, DeathCauseSnakeSelfCollision, f.Snakes[0].Death.Cause)

	require.Equal(t, DirectionRight, f.Snakes[1].Direction)
	require.True(t, f.Snakes[1].Alive)
	head, _ := f.Snakes[1].Head()
	require.Equal(t, Point{X: 120, Y: 300}, head)
}

func TestGameTickForbidReversal(t *testing.T) {
	a := testArena(t, testSnake(0, DirectionRight, horizontal(Point{X: 100, Y: 100}, 3)...))
	a.cfg.ForbidReversal = true

	f := a.Tick(map[int]Direction{0: DirectionLeft})
	require.True(t, f.Snakes[0].Alive)
	require.Equal(t, DirectionRight, f.Snakes[0].Direction)

	f = a.Tick(map[int]Direction{0: DirectionUp})
	require.True(t, f.Snakes[0].Alive)
	head, _ := f.Snakes[0].Head()
	require.Equal(t, Point{X: 120, Y: 80}, head)
}

func TestGameTickIgnoresUnknownMoves(t *testing.T) {
	a := testArena(t, testSnake(0, DirectionRight, horizontal(Point{X: 100, Y: 100}, 3)...))

	f := a.Tick(map[int]Direction{-1: DirectionUp, 5: DirectionDown, 0: DirectionNone})
	require.True(t, f.Snakes[0].Alive)
	require.Equal(t, DirectionRight, f.Snakes[0].Direction)
}

func TestGameTickBodyCollisionKillsBoth(t *testing.T) {
	// a moves down onto the third cell of b while b moves right
	a := testSnake(0, DirectionDown, vertical(Point{X: 180, Y: 80}, 3)...)
	b := testSnake(1, DirectionRight, horizontal(Point{X: 200, Y: 100}, 3)...)
	arena := testArena(t, a, b)

	f := arena.Tick(nil)
	require.False(t, f.Snakes[0].Alive)
	require.False(t, f.Snakes[1].Alive)
	require.Equal(t, DeathCauseSnakeCollision, f.Snakes[0].Death.Cause)
	require.Equal(t, DeathCauseSnakeCollision, f.Snakes[1].Death.Cause)
	require.True(t, f.GameOver)
}

func TestGameTickWallCollision(t *testing.T) {
	a := testArena(t, testSnake(0, DirectionRight, horizontal(Point{X: 620, Y: 100}, 3)...))

	f := a.Tick(nil)
	require.False(t, f.Snakes[0].Alive)
	require.Equal(t, DeathCauseWallCollision, f.Snakes[0].Death.Cause)
	require.Equal(t, 1, f.Snakes[0].Death.Turn)
	require.True(t, f.GameOver)
	require.True(t, a.GameOver())
}

func TestGameTickDeadSnakeDoNotUpdate(t *testing.T) {
	dead := testSnake(0, DirectionRight, horizontal(Point{X: 100, Y: 100}, 3)...)
	dead.kill(&Death{Turn: 0, Cause: DeathCauseWallCollision})
	alive := testSnake(1, DirectionRight, horizontal(Point{X: 100, Y: 300}, 3)...)
	a := testArena(t, dead, alive)

	f := a.Tick(map[int]Direction{0: DirectionDown})
	require.False(t, f.Snakes[0].Alive)
	require.Equal(t, horizontal(Point{X: 100, Y: 100}, 3), f.Snakes[0].Body)
	require.True(t, f.Snakes[1].Alive)
}

func TestGameTickDeadBodiesAreNotObstacles(t *testing.T) {
	dead := testSnake(0, DirectionRight, vertical(Point{X: 120, Y: 140}, 3)...)
	dead.kill(&Death{Turn: 0, Cause: DeathCauseWallCollision})
	a := testArena(t, dead, testSnake(1, DirectionRight, horizontal(Point{X: 100, Y: 100}, 3)...))

	f := a.Tick(nil)
	require.True(t, f.Snakes[1].Alive)
}

func TestGameTickRetriesMissingFood(t *testing.T) {
	a := testArena(t, testSnake(0, DirectionRight, horizontal(Point{X: 100, Y: 100}, 3)...))
	a.hasFood = false

	f := a.Tick(nil)
	require.NotNil(t, f.Food)
	for _, p := range f.Snakes[0].Body {
		require.NotEqual(t, p, *f.Food)
	}
}

func TestGameTickSnapshotIsDetached(t *testing.T) {
	a := testArena(t, testSnake(0, DirectionRight, horizontal(Point{X: 100, Y: 100}, 3)...))
	f := a.Tick(nil)
	f.Snakes[0].Body[0] = Point{X: -100, Y: -100}
	f.Food.X = -100

	require.Equal(t, Point{X: 120, Y: 100}, a.Snakes()[0].Head())
	require.Equal(t, Point{X: 120, Y: 100}, a.Snakes()[0].Body()[0])
	food, ok := a.Food()
	require.True(t, ok)
	require.Equal(t, Point{X: 620, Y: 460}, food)
}
