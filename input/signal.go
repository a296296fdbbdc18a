// Package input turns physical key presses into per-snake direction changes.
// Each snake has a Scheme, a fixed table from Signal to Direction, and
// pending changes wait in a Buffer until the next tick drains them.
package input

// Signal identifies a physical input, independent of the terminal library
// that produced it.
type Signal int

// Signals known to the default schemes.
const (
	SignalNone Signal = iota
	SignalArrowUp
	SignalArrowDown
	SignalArrowLeft
	SignalArrowRight
	SignalA
	SignalD
	SignalF
	SignalG
	SignalH
	SignalI
	SignalJ
	SignalK
	SignalL
	SignalS
	SignalT
	SignalW
)

var runeSignals = map[rune]Signal{
	'a': SignalA,
	'd': SignalD,
	'f': SignalF,
	'g': SignalG,
	'h': SignalH,
	'i': SignalI,
	'j': SignalJ,
	'k': SignalK,
	'l': SignalL,
	's': SignalS,
	't': SignalT,
	'w': SignalW,
}

// SignalForRune maps a typed character to its Signal. Upper and lower case
// are the same key.
func SignalForRune(r rune) Signal {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return runeSignals[r]
}
