package input

import "github.com/battlesnakeio/arena/rules"

// Scheme is one snake's key bindings.
type Scheme map[Signal]rules.Direction

// DefaultSchemes returns the bindings in player order: arrows, WASD, TFGH,
// IJKL.
func DefaultSchemes() []Scheme {
	return []Scheme{
		{
			SignalArrowRight: rules.DirectionRight,
			SignalArrowLeft:  rules.DirectionLeft,
			SignalArrowUp:    rules.DirectionUp,
			SignalArrowDown:  rules.DirectionDown,
		},
		{
			SignalD: rules.DirectionRight,
			SignalA: rules.DirectionLeft,
			SignalW: rules.DirectionUp,
			SignalS: rules.DirectionDown,
		},
		{
			SignalH: rules.DirectionRight,
			SignalF: rules.DirectionLeft,
			SignalT: rules.DirectionUp,
			SignalG: rules.DirectionDown,
		},
		{
			SignalL: rules.DirectionRight,
			SignalJ: rules.DirectionLeft,
			SignalI: rules.DirectionUp,
			SignalK: rules.DirectionDown,
		},
	}
}

// Controls holds the scheme of every snake, indexed like the arena's snakes.
type Controls struct {
	Schemes []Scheme
}

// NewControls takes the first n default schemes. Snakes beyond the number of
// default schemes get no bindings and the returned count says how many are
// actually bound.
func NewControls(n int) (*Controls, int) {
	defaults := DefaultSchemes()
	if n > len(defaults) {
		return &Controls{Schemes: defaults}, len(defaults)
	}
	if n < 0 {
		n = 0
	}
	return &Controls{Schemes: defaults[:n]}, n
}

// Resolve returns the direction change the signal requests for every snake
// whose scheme binds it. Unbound signals resolve to an empty map. Overlapping
// bindings steer every snake that has them.
func (c *Controls) Resolve(sig Signal) map[int]rules.Direction {
	moves := map[int]rules.Direction{}
	for i, scheme := range c.Schemes {
		if d, ok := scheme[sig]; ok {
			moves[i] = d
		}
	}
	return moves
}
