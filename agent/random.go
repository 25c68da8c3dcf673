package agent

import (
	"sync"

	"pursuit/game"
	"pursuit/metrics"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu    sync.Mutex
	index int
	rng   *rand.Rand
}

// NewRandomAgent picks uniformly among the legal actions. The same seed
// replays the same choices.
func NewRandomAgent(index int, seed uint64) Agent {
	return &randomAgent{
		index: index,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent) FindMove(state *game.PursuitState) (game.Direction, metrics.SearchMetric) {
	moves := state.LegalActions(a.index)
	if len(moves) == 0 {
		panic("random agent has no legal actions")
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}

func (a *randomAgent) Index() int {
	return a.index
}
