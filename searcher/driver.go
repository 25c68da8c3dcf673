package searcher

import (
	"fmt"
	"sync"

	"pursuit/game"
	"pursuit/metrics"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax chooses moves by depth-limited minimax search. It holds only its
// configuration, so every call searches afresh from the given state.
type Minimax struct {
	agent      int
	depth      int
	goroutines int
	evaluate   game.Evaluate
	order      Order
	collect    bool
}

// WithDepth sets the number of plies searched. Non-positive depths are ignored.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithAgentIndex sets the agent that moves and maximizes.
func WithAgentIndex(agent int) Option {
	return func(m *Minimax) {
		m.agent = agent
	}
}

// WithOrder replaces the two-player turn order. The first turn must belong
// to the searching agent.
func WithOrder(order Order) Option {
	return func(m *Minimax) {
		m.order = order
	}
}

// WithGoroutines searches the root actions on n goroutines. The evaluation
// function and the states must then be safe for concurrent use.
func WithGoroutines(n int) Option {
	return func(m *Minimax) {
		if n > 0 {
			m.goroutines = n
		}
	}
}

// WithMetrics makes FindMove count expansions and evaluations.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.collect = true
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		agent:      game.Runner,
		depth:      DefaultDepth,
		goroutines: DefaultGoroutines,
		evaluate:   game.EvaluateScore,
	}
	for _, option := range options {
		option(m)
	}
	if m.order == nil {
		if m.agent != game.Runner && m.agent != game.Chaser {
			panic(fmt.Sprintf("agent index must be %d or %d, got %d", game.Runner, game.Chaser, m.agent))
		}
		m.order = TwoPlayer(m.agent)
	}
	if len(m.order) == 0 || m.order[0].Agent != m.agent {
		panic("turn order must start with the searching agent")
	}
	return m
}

func (m *Minimax) Agent() int { return m.agent }
func (m *Minimax) Depth() int { return m.depth }

// ChooseAction returns the legal action with the highest minimax value, the
// first one enumerated on ties. It panics if the agent has no legal actions.
func (m *Minimax) ChooseAction(state game.State) game.Direction {
	action, _ := m.FindMove(state)
	return action
}

// FindMove is ChooseAction that also reports the search metrics.
func (m *Minimax) FindMove(state game.State) (game.Direction, metrics.SearchMetric) {
	actions := state.LegalActions(m.agent)
	if len(actions) == 0 {
		panic(fmt.Sprintf("agent %d has no legal actions to choose from", m.agent))
	}

	collector := metrics.NewDummyCollector()
	if m.collect {
		collector = metrics.NewCollector()
	}
	collector.Start(m.depth)
	collector.AddExpansion() // Root

	values := m.evaluateActions(state, actions, collector)

	best := 0
	for i, v := range values[1:] {
		if v > values[best] {
			best = i + 1
		}
	}
	metric := collector.Complete(values[best])

	log.Debug().Msgf("agent %d chose %s with value %g at depth %d", m.agent, actions[best], values[best], m.depth)
	return actions[best], metric
}

// evaluateActions returns the minimax value of each root action, indexed
// like actions.
func (m *Minimax) evaluateActions(state game.State, actions []game.Direction, collector metrics.Collector) []float64 {
	values := make([]float64, len(actions))
	turn, plies := m.order.next(0, 0)
	search := func(i int) {
		child := state.Successor(m.agent, actions[i])
		values[i] = value(child, m.order, turn, plies, m.depth, m.evaluate, collector)
	}

	if m.goroutines <= 1 || len(actions) == 1 {
		for i := range actions {
			search(i)
		}
		return values
	}

	task := make(chan int, len(actions))
	for i := range actions {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for g := 0; g < min(m.goroutines, len(actions)); g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				search(i)
			}
		}()
	}

	wg.Wait()
	return values
}
