package agent

import (
	"pursuit/game"
	"pursuit/metrics"
	"pursuit/search"
)

type plannerAgent struct {
	index      int
	discipline search.Discipline
	options    []search.Option
}

// NewPlannerAgent replans a path every move and takes its first step. The
// runner heads for the nearest food, the chaser for the runner. An agent
// with no reachable target stays put.
func NewPlannerAgent(index int, discipline search.Discipline, options ...search.Option) Agent {
	return &plannerAgent{
		index:      index,
		discipline: discipline,
		options:    options,
	}
}

func (a *plannerAgent) FindMove(state *game.PursuitState) (game.Direction, metrics.SearchMetric) {
	var problem *game.PositionProblem
	if a.index == game.Runner {
		problem = game.NewFoodProblem(state, game.Runner)
	} else {
		problem = game.NewTargetProblem(state.Layout(), state.Position(a.index), state.Runner())
	}

	collector := metrics.NewCollector()
	collector.Start(0)
	options := append([]search.Option{search.WithCollector(collector)}, a.options...)
	path, found := search.Find[game.Position, game.Direction](problem, a.discipline, options...)
	if !found {
		return game.Stop, collector.Complete(0)
	}

	move := game.Stop
	if len(path) > 0 {
		move = path[0]
	}
	cost, _, _ := search.PathCost[game.Position, game.Direction](problem, path)
	metric := collector.Complete(cost)
	metric.Depth = len(path)
	return move, metric
}

func (a *plannerAgent) Index() int {
	return a.index
}
