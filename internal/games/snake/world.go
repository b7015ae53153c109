package snake

import "github.com/vovakirdan/snakebite/internal/core"

// Phase is the state of the game loop.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndCause says why a run ended.
type EndCause int

const (
	CauseNone EndCause = iota
	CauseWall
	CauseSelf
	CauseBitten
)

func (c EndCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBitten:
		return "bitten"
	default:
		return "none"
	}
}

// World holds every mutable entity of one session.
type World struct {
	Size int

	Player  []core.Point // Head at index 0
	Heading Heading      // Heading used by the last move
	Next    Heading      // Queued heading, committed on the next tick

	Enemy        []core.Point
	EnemyHeading Heading

	Food  core.Point
	Score int
	Phase Phase
	Cause EndCause
	Ticks uint64
}

// layout places both snakes at their starting cells on a board of the given size.
// Food is left for the caller, since it depends on the player body.
func layout(size int) World {
	row := size - 3
	return World{
		Size: size,
		Player: []core.Point{
			{X: 3, Y: row},
			{X: 2, Y: row},
			{X: 1, Y: row},
		},
		Heading: Right,
		Next:    Right,
		Enemy: []core.Point{
			{X: size - 3, Y: 2},
			{X: size - 2, Y: 2},
			{X: size - 1, Y: 2},
		},
		EnemyHeading: Down,
		Phase:        PhaseIdle,
	}
}

// Snapshot is a read-only copy of the world for the presentation layer.
type Snapshot struct {
	Size      int
	Player    []core.Point
	Enemy     []core.Point
	Food      core.Point
	Heading   Heading
	Score     int
	Best      int
	Phase     Phase
	Cause     EndCause
	Ticks     uint64
	ShowLabel bool // The "YOU" marker is visible
}

// snapshot copies the world. Body slices are cloned so later ticks cannot
// change what a renderer already holds.
func (w *World) snapshot(best int, showLabel bool) Snapshot {
	return Snapshot{
		Size:      w.Size,
		Player:    append([]core.Point(nil), w.Player...),
		Enemy:     append([]core.Point(nil), w.Enemy...),
		Food:      w.Food,
		Heading:   w.Heading,
		Score:     w.Score,
		Best:      best,
		Phase:     w.Phase,
		Cause:     w.Cause,
		Ticks:     w.Ticks,
		ShowLabel: showLabel,
	}
}
