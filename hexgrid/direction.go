package hexgrid

import (
	"fmt"
	"strings"
)

// Direction indexes the six neighbors of a tile, clockwise from Top.
// Any integer is accepted where a Direction is expected; it is reduced
// modulo 6, so d and d+6k name the same neighbor.
type Direction int

const (
	Top Direction = iota
	TopRight
	BottomRight
	Bottom
	BottomLeft
	TopLeft
)

// NumDirections is the number of neighbors a hex tile has.
const NumDirections = 6

// directionDeltas holds the coordinate offset of each Direction.
// Entry d and entry d+3 always cancel out.
var directionDeltas = [NumDirections]Position{
	Top:         {Y1: +1, Y2: +1, X: 0},
	TopRight:    {Y1: 0, Y2: +1, X: +1},
	BottomRight: {Y1: -1, Y2: 0, X: +1},
	Bottom:      {Y1: -1, Y2: -1, X: 0},
	BottomLeft:  {Y1: 0, Y2: -1, X: -1},
	TopLeft:     {Y1: +1, Y2: 0, X: -1},
}

var directionNames = [NumDirections]string{
	"top", "top-right", "bottom-right", "bottom", "bottom-left", "top-left",
}

// Normalize reduces d into [0, NumDirections), correcting for negative values.
func (d Direction) Normalize() Direction {
	n := d % NumDirections
	if n < 0 {
		n += NumDirections
	}
	return n
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d.Normalize() + NumDirections/2) % NumDirections
}

// Delta returns the coordinate offset of one step in direction d.
func (d Direction) Delta() Position {
	return directionDeltas[d.Normalize()]
}

// String returns the hyphenated direction name, e.g. "bottom-left".
func (d Direction) String() string {
	return directionNames[d.Normalize()]
}

// ParseDirection converts a direction name such as "top-right" into a Direction.
// Underscores and spaces are accepted in place of the hyphen.
func ParseDirection(name string) (Direction, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "-", " ", "-").Replace(n)
	for i, dn := range directionNames {
		if n == dn {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}
