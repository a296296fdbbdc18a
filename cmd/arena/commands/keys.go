package commands

import (
	"github.com/battlesnakeio/arena/input"
	termbox "github.com/nsf/termbox-go"
)

var keySignals = map[termbox.Key]input.Signal{
	termbox.KeyArrowUp:    input.SignalArrowUp,
	termbox.KeyArrowDown:  input.SignalArrowDown,
	termbox.KeyArrowLeft:  input.SignalArrowLeft,
	termbox.KeyArrowRight: input.SignalArrowRight,
}

// signalForEvent translates a termbox key event into an input signal.
func signalForEvent(ev termbox.Event) input.Signal {
	if ev.Type != termbox.EventKey {
		return input.SignalNone
	}
	if ev.Ch != 0 {
		return input.SignalForRune(ev.Ch)
	}
	return keySignals[ev.Key]
}

func isQuit(ev termbox.Event) bool {
	return ev.Type == termbox.EventKey && ev.Ch == 0 &&
		(ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC)
}
