package snake

import "golang.org/x/exp/rand"

// EnemyController steers the enemy with a memoryless random walk.
// It knows nothing about the player or the food.
type EnemyController struct {
	rng      *rand.Rand
	turnProb float64
}

// NewEnemyController creates a controller that turns with probability turnProb per tick.
func NewEnemyController(rng *rand.Rand, turnProb float64) *EnemyController {
	return &EnemyController{rng: rng, turnProb: turnProb}
}

// Steer returns the heading for the next move. With probability turnProb
// it picks uniformly among the headings that do not reverse current,
// which includes current itself.
func (c *EnemyController) Steer(current Heading) Heading {
	if c.rng.Float64() >= c.turnProb {
		return current
	}

	choices := make([]Heading, 0, len(Headings)-1)
	for _, h := range Headings {
		if !Opposite(h, current) {
			choices = append(choices, h)
		}
	}
	return choices[c.rng.Intn(len(choices))]
}
