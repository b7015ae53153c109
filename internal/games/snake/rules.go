package snake

import "github.com/vovakirdan/snakebite/internal/core"

// IsWallCollision reports whether pos lies outside a square board.
// Toroidal movement never produces such a position; the walled variant does.
func IsWallCollision(pos core.Point, boardSize int) bool {
	return !pos.In(boardSize)
}

// IsSelfCollision reports whether pos coincides with any cell of body.
// Callers pass the body as it was before the move, tail included, so
// stepping onto the current tail is a collision even though the tail
// would have moved away this tick.
func IsSelfCollision(pos core.Point, body []core.Point) bool {
	for _, seg := range body {
		if seg == pos {
			return true
		}
	}
	return false
}

// EnemyBitesPlayer reports whether the enemy's head sits on any player cell.
func EnemyBitesPlayer(enemyBody, playerBody []core.Point) bool {
	if len(enemyBody) == 0 {
		return false
	}
	return IsSelfCollision(enemyBody[0], playerBody)
}
