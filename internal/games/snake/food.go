package snake

import (
	"golang.org/x/exp/rand"

	"github.com/vovakirdan/snakebite/internal/core"
)

// SpawnFood samples board cells uniformly until one is free of the player.
//
// There is no retry cap: the loop terminates almost surely as long as the
// board has more cells than the snake. A snake filling the whole board would
// spin forever.
func SpawnFood(rng *rand.Rand, playerBody []core.Point, boardSize int) core.Point {
	for {
		p := core.Point{X: rng.Intn(boardSize), Y: rng.Intn(boardSize)}
		if !IsSelfCollision(p, playerBody) {
			return p
		}
	}
}
