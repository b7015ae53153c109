package snake

import "github.com/vovakirdan/snakebite/internal/core"

// Heading is a unit step on the grid.
type Heading core.Point

// The four cardinal headings. Screen y grows downward.
var (
	Right = Heading{X: 1, Y: 0}
	Left  = Heading{X: -1, Y: 0}
	Down  = Heading{X: 0, Y: 1}
	Up    = Heading{X: 0, Y: -1}
)

// Headings lists every cardinal heading in a fixed order.
var Headings = [4]Heading{Right, Left, Down, Up}

// Opposite reports whether a and b point in exactly opposite directions.
func Opposite(a, b Heading) bool {
	return a.X == -b.X && a.Y == -b.Y
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
