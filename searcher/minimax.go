package searcher

import (
	"math"

	"pursuit/game"
	"pursuit/metrics"
)

// Value computes the depth-limited minimax value of state when the turn at
// position turn of order is to move and plies full rounds have been played.
//
// The state is evaluated as is when plies reaches depth, the game is won or
// lost, or the acting agent has no legal actions. Otherwise each legal action
// is searched and the child values are folded with max or min according to
// the acting turn's role.
func Value(state game.State, order Order, turn, plies, depth int, evaluate game.Evaluate) float64 {
	return value(state, order, turn, plies, depth, evaluate, metrics.NewDummyCollector())
}

func value(state game.State, order Order, turn, plies, depth int, evaluate game.Evaluate, collector metrics.Collector) float64 {
	acting := order[turn]
	var actions []game.Direction
	if plies < depth && !state.IsWin() && !state.IsLose() {
		actions = state.LegalActions(acting.Agent)
	}
	if len(actions) == 0 { // Cutoff or terminal node
		collector.AddEvaluation()
		return evaluate(state)
	}

	collector.AddExpansion()
	nextTurn, nextPlies := order.next(turn, plies)

	best := initValue(acting.Role)
	for _, action := range actions {
		child := value(state.Successor(acting.Agent, action), order, nextTurn, nextPlies, depth, evaluate, collector)
		best = fold(acting.Role, best, child)
	}
	return best
}

func initValue(role Role) float64 {
	if role == Max {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func fold(role Role, best, v float64) float64 {
	if role == Max {
		return math.Max(best, v)
	}
	return math.Min(best, v)
}
