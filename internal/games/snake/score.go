package snake

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakebite/internal/core"
)

// BestScoreKey is the stable storage key for the best score.
const BestScoreKey = "bestScore"

// ScoreKeeper tracks the best score and persists every new best.
// A nil store keeps the best score in memory only.
type ScoreKeeper struct {
	store  core.KeyValueStore
	logger *log.Logger
	best   int
}

// NewScoreKeeper reads the stored best score. Missing, unreadable or
// malformed values count as zero.
func NewScoreKeeper(store core.KeyValueStore, logger *log.Logger) *ScoreKeeper {
	k := &ScoreKeeper{store: store, logger: orDiscard(logger)}
	if store == nil {
		return k
	}

	raw, ok, err := store.Get(BestScoreKey)
	switch {
	case err != nil:
		k.logger.Warn("could not read best score", "error", err)
	case ok:
		best, convErr := strconv.Atoi(raw)
		if convErr != nil || best < 0 {
			k.logger.Warn("ignoring malformed best score", "value", raw)
			break
		}
		k.best = best
	}
	return k
}

// Best returns the best score seen so far.
func (k *ScoreKeeper) Best() int {
	return k.best
}

// Observe records a score and reports whether it is a new best.
func (k *ScoreKeeper) Observe(score int) bool {
	if score <= k.best {
		return false
	}
	k.best = score

	if k.store != nil {
		if err := k.store.Set(BestScoreKey, strconv.Itoa(score)); err != nil {
			k.logger.Warn("could not persist best score", "score", score, "error", err)
		}
	}
	return true
}
