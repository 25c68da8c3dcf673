package engine

import (
	"fmt"
	"time"

	"pursuit/agent"
	"pursuit/game"
	"pursuit/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Option func(e *LocalEngine)

// WithMaxMoves caps the number of moves, counting both agents. Non-positive
// values are ignored.
func WithMaxMoves(n int) Option {
	return func(e *LocalEngine) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// WithObserver calls observe after every move with the resulting state.
func WithObserver(observe func(step int, state *game.PursuitState)) Option {
	return func(e *LocalEngine) {
		e.observe = observe
	}
}

// LocalEngine plays the runner against the chaser in-process, runner first.
type LocalEngine struct {
	State    *game.PursuitState
	Agents   [game.NumAgents]agent.Agent
	maxMoves int
	observe  func(step int, state *game.PursuitState)
}

func NewLocalEngine(l *game.Layout, runner, chaser agent.Agent, options ...Option) *LocalEngine {
	if runner.Index() != game.Runner || chaser.Index() != game.Chaser {
		panic(fmt.Sprintf("agents must play as %d and %d, got %d and %d", game.Runner, game.Chaser, runner.Index(), chaser.Index()))
	}

	e := &LocalEngine{
		State:    game.NewPursuitState(l),
		Agents:   [game.NumAgents]agent.Agent{runner, chaser},
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is decided or the move cap is
// reached. An agent choosing an illegal move aborts the game with an error.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("starting game on a %dx%d layout with %d food", e.State.Layout().Width, e.State.Layout().Height, e.State.FoodLeft())

	current := game.Runner
	step := 0
	for e.State.Outcome() == game.Playing && step < e.maxMoves {
		step++
		move, metric := e.Agents[current].FindMove(e.State)
		if !slices.Contains(e.State.LegalActions(current), move) {
			return metrics.GameMetric{}, moveMetrics, fmt.Errorf("step %d: agent %d chose illegal move %s at %s", step, current, move, e.State.Position(current))
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Agent:        current,
			SearchMetric: metric,
		})

		e.State = e.State.Play(current, move)
		log.Debug().Msgf("step %d: agent %d played %s, score %g", step, current, move, e.State.Score())
		if e.observe != nil {
			e.observe(step, e.State)
		}
		current = game.Opponent(current)
	}

	outcome := e.State.Outcome().String()
	if e.State.Outcome() == game.Playing {
		outcome = Timeout
		log.Warn().Msgf("stopped after %d moves without a result", step)
	}
	end := time.Now()
	log.Info().Msgf("game ended with outcome %s and score %g after %d moves", outcome, e.State.Score(), step)

	return metrics.GameMetric{
		Outcome:   outcome,
		Score:     e.State.Score(),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
		Moves:     step,
	}, moveMetrics, nil
}
