package engine

import (
	"testing"

	"pursuit/agent"
	"pursuit/game"
	"pursuit/metrics"
	"pursuit/search"
	"pursuit/searcher"

	"github.com/stretchr/testify/require"
)

/**
Tests the local game loop
- happy path: a planner runner clears a corridor, a planner chaser catches a
  minimax runner
- move cap stops the game with a timeout
- every move is recorded with its agent and step
- edge case: an illegal move aborts the game with an error
- edge case: agents registered for the wrong side panic
*/

const corridorLayout = `
%%%%%%
%P..G%
%%%%%%
`

const isolatedLayout = `
%%%%%%%
%P.%%G%
%%%%%%%
`

// fixedAgent always plays the same move, legal or not.
type fixedAgent struct {
	index int
	move  game.Direction
}

func (a fixedAgent) FindMove(*game.PursuitState) (game.Direction, metrics.SearchMetric) {
	return a.move, metrics.SearchMetric{}
}

func (a fixedAgent) Index() int { return a.index }

func TestLocalEngine(t *testing.T) {
	t.Run("runner clears food out of the chaser's reach", func(t *testing.T) {
		l := game.MustParseLayout(isolatedLayout)
		e := NewLocalEngine(l, agent.NewPlannerAgent(game.Runner, search.BreadthFirst), agent.NewPlannerAgent(game.Chaser, search.BreadthFirst))

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, "win", gameMetric.Outcome)
		require.Equal(t, 1, gameMetric.Moves)
		require.Equal(t, 509.0, gameMetric.Score)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, metrics.MoveMetric{Step: 1, Agent: game.Runner, SearchMetric: moveMetrics[0].SearchMetric}, moveMetrics[0])
	})

	t.Run("chaser catches a runner that stands still", func(t *testing.T) {
		l := game.MustParseLayout(corridorLayout)
		e := NewLocalEngine(l, fixedAgent{index: game.Runner, move: game.Stop}, agent.NewMinimaxAgent(
			searcher.NewMinimax(searcher.WithAgentIndex(game.Chaser), searcher.WithEvaluationFn(game.NewWeightedEvaluation(game.ChaserWeights, game.Chaser))),
		))

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, "lose", gameMetric.Outcome)
		require.Equal(t, 6, gameMetric.Moves, "Chaser needs three moves")
		require.Equal(t, game.Lost, e.State.Outcome())
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			require.Equal(t, i%2, mm.Agent)
		}
	})

	t.Run("move cap stops the game", func(t *testing.T) {
		l := game.MustParseLayout(isolatedLayout)
		var steps []int
		e := NewLocalEngine(l, fixedAgent{index: game.Runner, move: game.Stop}, fixedAgent{index: game.Chaser, move: game.Stop},
			WithMaxMoves(4), WithObserver(func(step int, _ *game.PursuitState) { steps = append(steps, step) }))

		gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, Timeout, gameMetric.Outcome)
		require.Equal(t, 4, gameMetric.Moves)
		require.Equal(t, -2.0, gameMetric.Score)
		require.Equal(t, []int{1, 2, 3, 4}, steps)
	})

	t.Run("illegal move aborts the game", func(t *testing.T) {
		l := game.MustParseLayout(corridorLayout)
		e := NewLocalEngine(l, fixedAgent{index: game.Runner, move: game.North}, fixedAgent{index: game.Chaser, move: game.Stop})

		_, moveMetrics, err := e.Run()

		require.ErrorContains(t, err, "illegal move North")
		require.Empty(t, moveMetrics)
	})

	t.Run("agents on the wrong side panic", func(t *testing.T) {
		l := game.MustParseLayout(corridorLayout)

		require.Panics(t, func() {
			NewLocalEngine(l, fixedAgent{index: game.Chaser}, fixedAgent{index: game.Runner})
		})
	})
}
