package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// Direction is a heading on the grid. There is no diagonal movement.
type Direction int

const (
	// DirectionNone means "keep the current heading" when used as input.
	DirectionNone Direction = iota
	// DirectionRight moves along +x
	DirectionRight
	// DirectionLeft moves along -x
	DirectionLeft
	// DirectionUp moves along -y
	DirectionUp
	// DirectionDown moves along +y
	DirectionDown
)

var directionNames = map[Direction]string{
	DirectionNone:  "none",
	DirectionRight: "right",
	DirectionLeft:  "left",
	DirectionUp:    "up",
	DirectionDown:  "down",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= DirectionRight && d <= DirectionDown
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionRight:
		return DirectionLeft
	case DirectionLeft:
		return DirectionRight
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	}
	return DirectionNone
}

// offset is the displacement of one step of the given block size.
func (d Direction) offset(block int) Point {
	switch d {
	case DirectionRight:
		return Point{X: block}
	case DirectionLeft:
		return Point{X: -block}
	case DirectionUp:
		return Point{Y: -block}
	case DirectionDown:
		return Point{Y: block}
	}
	return Point{}
}

// ParseDirection converts "right", "left", "up" or "down" to a Direction.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range directionNames {
		if name == s {
			return d, nil
		}
	}
	return DirectionNone, errors.Errorf("rules: unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
