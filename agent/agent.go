package agent

import (
	"pursuit/game"
	"pursuit/metrics"
	"pursuit/searcher"
)

type Agent interface {
	// FindMove returns a legal action for the agent's index and the metrics
	// of the search that produced it (zero when nothing was collected)
	FindMove(state *game.PursuitState) (game.Direction, metrics.SearchMetric)
	Index() int
}

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent plays the moves chosen by m.
func NewMinimaxAgent(m *searcher.Minimax) Agent {
	return minimaxAgent{minimax: m}
}

func (a minimaxAgent) FindMove(state *game.PursuitState) (game.Direction, metrics.SearchMetric) {
	return a.minimax.FindMove(state)
}

func (a minimaxAgent) Index() int {
	return a.minimax.Agent()
}
