package keyshape

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned by ParseDirection for unknown names.
var ErrInvalidDirection = errors.New("keyshape: invalid direction")

// Direction names one side of a key. The values follow the clockwise
// order in which the edges are walked, so neighbours are found modulo 4.
type Direction uint8

const (
	Left Direction = iota
	Up
	Right
	Down
)

// directionCount is the number of sides, corners and edges of a key.
const directionCount = 4

var directionNames = [directionCount]string{
	Left:  "left",
	Up:    "up",
	Right: "right",
	Down:  "down",
}

// Directions lists every side in edge order.
func Directions() [directionCount]Direction {
	return [directionCount]Direction{Left, Up, Right, Down}
}

// index returns the edge index of d, wrapping out-of-range values.
func (d Direction) index() int {
	return int(d) % directionCount
}

// Clockwise returns the side that follows d when walking clockwise.
func (d Direction) Clockwise() Direction {
	return Direction((d.index() + 1) % directionCount)
}

// Counterclockwise returns the side that precedes d when walking clockwise.
func (d Direction) Counterclockwise() Direction {
	return Direction((d.index() + directionCount - 1) % directionCount)
}

// Opposite returns the facing side, the one a neighbour attached on d
// must suppress.
func (d Direction) Opposite() Direction {
	return Direction((d.index() + 2) % directionCount)
}

// String returns the lowercase side name.
func (d Direction) String() string {
	if int(d) < directionCount {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection parses a side name such as "left" or "Down".
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Attachment records which side of a key, if any, is merged with a
// neighbour. It has five states: detached, or attached on one of the four
// sides. The zero value is Detached.
type Attachment struct {
	dir Direction
	set bool
}

// Detached is the attachment state of a free-standing key.
var Detached = Attachment{}

// AttachedTo returns the state where side d is suppressed.
func AttachedTo(d Direction) Attachment {
	return Attachment{dir: Direction(d.index()), set: true}
}

// Direction returns the attached side. ok is false when detached.
func (a Attachment) Direction() (d Direction, ok bool) {
	return a.dir, a.set
}

// IsAttached reports whether any side is suppressed.
func (a Attachment) IsAttached() bool {
	return a.set
}

// Is reports whether side d is the suppressed one.
func (a Attachment) Is(d Direction) bool {
	return a.set && a.dir == Direction(d.index())
}

func (a Attachment) String() string {
	if !a.set {
		return "none"
	}
	return a.dir.String()
}
