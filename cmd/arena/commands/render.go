package commands

import (
	"fmt"

	"github.com/battlesnakeio/arena/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	foodColor    = termbox.ColorRed
	foodRune     = '●'

	// Terminal cells are about twice as tall as they are wide, so one block
	// takes two columns.
	cellsPerBlock = 2
	left          = 2
	top           = 2
)

var snakeColors = map[string]termbox.Attribute{
	"green":   termbox.ColorGreen,
	"blue":    termbox.ColorBlue,
	"magenta": termbox.ColorMagenta,
	"yellow":  termbox.ColorYellow,
	"cyan":    termbox.ColorCyan,
	"red":     termbox.ColorRed,
	"white":   termbox.ColorWhite,
}

func colorAttribute(name string) termbox.Attribute {
	if c, ok := snakeColors[name]; ok {
		return c
	}
	return termbox.ColorWhite
}

// terminalRenderer draws frames with termbox. Footer is printed under the
// board.
type terminalRenderer struct {
	footer string
}

func (r *terminalRenderer) Render(frame *rules.Frame) error {
	if frame == nil {
		return errors.New("received nil frame")
	}
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	var (
		width  = boardColumns(frame) * cellsPerBlock
		bottom = top + boardRows(frame) + 1
	)

	renderTitle(frame)
	renderBoard(width, bottom)
	for i, s := range frame.Snakes {
		// Dead bodies stay in the frame but are not obstacles, so they are
		// not drawn.
		if s.Alive {
			renderSnake(frame.BlockSize, s)
		}
		tbprint(left+width+3, top+i, colorAttribute(s.Color), defaultColor, scoreLine(s))
	}
	if frame.Food != nil {
		x, y := blockCell(*frame.Food, frame.BlockSize)
		termbox.SetCell(x, y, foodRune, foodColor, bgColor)
	}
	if frame.GameOver {
		tbprint(left, bottom+1, defaultColor, defaultColor, "Game over! "+frame.Scoreboard().String())
	}
	if r.footer != "" {
		tbprint(left, bottom+2, defaultColor, defaultColor, r.footer)
	}

	return termbox.Flush()
}

func boardColumns(f *rules.Frame) int {
	if f.BlockSize <= 0 {
		return 0
	}
	return f.Width / f.BlockSize
}

func boardRows(f *rules.Frame) int {
	if f.BlockSize <= 0 {
		return 0
	}
	return f.Height / f.BlockSize
}

// blockCell returns the terminal position of the first column of a block.
func blockCell(p rules.Point, block int) (int, int) {
	return left + (p.X/block)*cellsPerBlock, top + 1 + p.Y/block
}

func scoreLine(s rules.SnakeState) string {
	text := fmt.Sprintf("%s: %d", s.Name, s.Score)
	if s.Death != nil {
		text = fmt.Sprintf("%s - %s on turn %d", text, s.Death.Cause, s.Death.Turn)
	}
	return text
}

func renderSnake(block int, s rules.SnakeState) {
	color := colorAttribute(s.Color)
	for i, b := range s.Body {
		x, y := blockCell(b, block)
		ch := ' '
		if i == 0 {
			ch = '▪'
		}
		termbox.SetCell(x, y, ch, termbox.ColorBlack, color)
		termbox.SetCell(x+1, y, ' ', termbox.ColorBlack, color)
	}
}

func renderBoard(width, bottom int) {
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(frame *rules.Frame) {
	tbprint(left, top-1, defaultColor, defaultColor, fmt.Sprintf("Arena - Turn %d", frame.Turn))
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
