package commands

import (
	"testing"

	"github.com/battlesnakeio/arena/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

func TestColorAttribute(t *testing.T) {
	require.Equal(t, termbox.ColorGreen, colorAttribute("green"))
	require.Equal(t, termbox.ColorCyan, colorAttribute("cyan"))
	require.Equal(t, termbox.ColorWhite, colorAttribute("unknown"))
}

func TestBlockCell(t *testing.T) {
	x, y := blockCell(rules.Point{X: 0, Y: 0}, 20)
	require.Equal(t, left, x)
	require.Equal(t, top+1, y)

	x, y = blockCell(rules.Point{X: 60, Y: 40}, 20)
	require.Equal(t, left+6, x)
	require.Equal(t, top+3, y)
}

func TestBoardSize(t *testing.T) {
	f := &rules.Frame{Width: 640, Height: 480, BlockSize: 20}
	require.Equal(t, 32, boardColumns(f))
	require.Equal(t, 24, boardRows(f))

	require.Zero(t, boardColumns(&rules.Frame{}))
}

func TestScoreLine(t *testing.T) {
	alive := rules.SnakeState{Name: "Snake_0", Score: 3, Alive: true}
	require.Equal(t, "Snake_0: 3", scoreLine(alive))

	dead := rules.SnakeState{
		Name:  "Snake_1",
		Score: 1,
		Death: &rules.Death{Turn: 12, Cause: rules.DeathCauseWallCollision},
	}
	require.Equal(t, "Snake_1: 1 - wall-collision on turn 12", scoreLine(dead))
}
