package snake

import "github.com/vovakirdan/snakebite/internal/core"

// Advance returns the cell in front of the head, wrapping around the edges.
// The result is always on the board.
func Advance(body []core.Point, h Heading, boardSize int) core.Point {
	return body[0].Add(core.Point(h)).Wrap(boardSize)
}

// AdvanceBounded returns the cell in front of the head without wrapping.
// The result may be off the board.
func AdvanceBounded(body []core.Point, h Heading) core.Point {
	return body[0].Add(core.Point(h))
}

// Slither prepends head and drops the tail unless the snake grows.
// The input slice is not modified.
func Slither(body []core.Point, head core.Point, grow bool) []core.Point {
	keep := len(body)
	if !grow {
		keep--
	}
	next := make([]core.Point, 0, keep+1)
	next = append(next, head)
	return append(next, body[:keep]...)
}
