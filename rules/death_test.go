package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func causes(updates []deathUpdate) map[int][]string {
	out := map[int][]string{}
	for _, u := range updates {
		out[u.Snake.index] = append(out[u.Snake.index], u.Death.Cause)
	}
	return out
}

func TestDeathCauseWallCollision(t *testing.T) {
	points := []Point{
		{X: -20, Y: 100},
		{X: 640, Y: 100},
		{X: 100, Y: -20},
		{X: 100, Y: 480},
	}
	for _, p := range points {
		updates := checkForDeath(640, 480, testBlock, 3, []*Snake{
			testSnake(0, DirectionRight, p),
		})
		require.Len(t, updates, 1, "point %v", p)
		require.Equal(t, DeathCauseWallCollision, updates[0].Death.Cause)
		require.Equal(t, 3, updates[0].Death.Turn)
	}
}

func TestNoDeathOnTheEdge(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 620, Y: 0},
		{X: 0, Y: 460},
		{X: 620, Y: 460},
	}
	for _, p := range points {
		updates := checkForDeath(640, 480, testBlock, 3, []*Snake{
			testSnake(0, DirectionRight, p),
		})
		require.Empty(t, updates, "point %v", p)
	}
}

func TestDeathCauseSnakeSelfCollision(t *testing.T) {
	updates := checkForDeath(640, 480, testBlock, 3, []*Snake{
		testSnake(0, DirectionDown,
			Point{X: 80, Y: 80},
			Point{X: 60, Y: 80},
			Point{X: 60, Y: 60},
			Point{X: 80, Y: 60},
			Point{X: 80, Y: 80},
		),
	})
	require.Len(t, updates, 1)
	require.Equal(t, DeathCauseSnakeSelfCollision, updates[0].Death.Cause)
}

func TestDeathCauseSnakeCollisionKillsBoth(t *testing.T) {
	a := testSnake(0, DirectionDown, Point{X: 100, Y: 100}, Point{X: 100, Y: 80})
	b := testSnake(1, DirectionRight, Point{X: 120, Y: 100}, Point{X: 100, Y: 100}, Point{X: 80, Y: 100})

	updates := checkForDeath(640, 480, testBlock, 3, []*Snake{a, b})
	got := causes(updates)
	require.Equal(t, []string{DeathCauseSnakeCollision}, got[0])
	require.Equal(t, []string{DeathCauseSnakeCollision}, got[1])
}

func TestDeathCauseHeadToHead(t *testing.T) {
	a := testSnake(0, DirectionRight, Point{X: 100, Y: 100}, Point{X: 80, Y: 100})
	b := testSnake(1, DirectionLeft, Point{X: 100, Y: 100}, Point{X: 120, Y: 100})

	updates := checkForDeath(640, 480, testBlock, 3, []*Snake{a, b})
	got := causes(updates)
	// each head lies in the other body, so the pair is reported from both sides
	require.Len(t, got[0], 2)
	require.Len(t, got[1], 2)
}

func TestDeathDoesNotPropagate(t *testing.T) {
	// c runs into b, b is nowhere near a
	a := testSnake(0, DirectionRight, horizontal(Point{X: 100, Y: 300}, 3)...)
	b := testSnake(1, DirectionRight, horizontal(Point{X: 100, Y: 100}, 3)...)
	c := testSnake(2, DirectionDown, Point{X: 80, Y: 100}, Point{X: 80, Y: 80})

	got := causes(checkForDeath(640, 480, testBlock, 3, []*Snake{a, b, c}))
	require.NotContains(t, got, 0)
	require.Contains(t, got, 1)
	require.Contains(t, got, 2)
}

func TestNoDeathForSeparateSnakes(t *testing.T) {
	a := testSnake(0, DirectionRight, horizontal(Point{X: 100, Y: 100}, 3)...)
	b := testSnake(1, DirectionRight, horizontal(Point{X: 100, Y: 200}, 3)...)
	require.Empty(t, checkForDeath(640, 480, testBlock, 3, []*Snake{a, b}))
}
