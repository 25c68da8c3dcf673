package search

import (
	"fmt"

	"pursuit/metrics"

	"github.com/rs/zerolog/log"
)

// Successor is one transition out of a state: the state reached, the action
// taken to reach it and the cost of that single step.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem is a search problem over states that are compared by equality.
// NextStates must not mutate anything the search depends on.
type Problem[S comparable, A any] interface {
	StartState() S
	IsGoal(state S) bool
	NextStates(state S) []Successor[S, A]
}

type Discipline int

const (
	DepthFirst Discipline = iota
	BreadthFirst
	UniformCost
)

func (d Discipline) String() string {
	switch d {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	case UniformCost:
		return "ucs"
	default:
		return fmt.Sprintf("Discipline(%d)", int(d))
	}
}

// ParseDiscipline accepts the short names returned by Discipline.String.
func ParseDiscipline(name string) (Discipline, error) {
	switch name {
	case "dfs":
		return DepthFirst, nil
	case "bfs":
		return BreadthFirst, nil
	case "ucs":
		return UniformCost, nil
	default:
		return 0, fmt.Errorf("unknown search discipline %q", name)
	}
}

type Option func(c *config)

type config struct {
	stepCostPriority bool
	collector        metrics.Collector
}

// WithStepCostPriority orders the uniform-cost frontier by the cost of the
// last edge instead of the cumulative path cost. This reproduces the legacy
// ordering and can return suboptimal paths on weighted graphs.
func WithStepCostPriority() Option {
	return func(c *config) {
		c.stepCostPriority = true
	}
}

// WithCollector counts one expansion per state expanded and one evaluation
// per goal test.
func WithCollector(collector metrics.Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.collector = collector
		}
	}
}

// node is one frontier entry. parent indexes the node it was discovered
// from, or is noParent for the start entry.
type node[S comparable, A any] struct {
	state    S
	action   A
	pathCost float64
	parent   int
}

const noParent = -1

// Find runs a closed-list graph search with the given frontier discipline and
// returns the actions from the start state to the first goal state popped.
// found is false when the frontier empties without reaching a goal. A start
// state that is already a goal yields an empty path.
func Find[S comparable, A any](p Problem[S, A], d Discipline, options ...Option) (path []A, found bool) {
	c := config{collector: metrics.NewDummyCollector()}
	for _, option := range options {
		option(&c)
	}

	frontier := newFrontier[int](d)
	// nodes doubles as the parent map: every pushed entry gets one record,
	// written once at discovery
	var nodes []node[S, A]
	visited := make(map[S]struct{})

	var noAction A
	nodes = append(nodes, node[S, A]{state: p.StartState(), action: noAction, parent: noParent})
	frontier.Push(0, 0)

	goal := noParent
	for !frontier.IsEmpty() {
		id := frontier.Pop()
		current := nodes[id]

		c.collector.AddEvaluation()
		if p.IsGoal(current.state) {
			goal = id
			break
		}

		if _, ok := visited[current.state]; ok {
			continue
		}
		visited[current.state] = struct{}{}
		c.collector.AddExpansion()

		for _, next := range p.NextStates(current.state) {
			if _, ok := visited[next.State]; ok {
				continue
			}
			nodes = append(nodes, node[S, A]{
				state:    next.State,
				action:   next.Action,
				pathCost: current.pathCost + next.Cost,
				parent:   id,
			})
			priority := nodes[len(nodes)-1].pathCost
			if c.stepCostPriority {
				priority = next.Cost
			}
			frontier.Push(len(nodes)-1, priority)
		}
	}

	if goal == noParent {
		log.Debug().Msgf("%s search exhausted %d entries without reaching a goal", d, len(nodes))
		return nil, false
	}
	return reconstruct(nodes, goal), true
}

// Search is Find with the unreachable case mapped to a single stay action,
// which callers treat as "do not move".
func Search[S comparable, A any](p Problem[S, A], d Discipline, stay A, options ...Option) []A {
	path, found := Find(p, d, options...)
	if !found {
		return []A{stay}
	}
	return path
}

// PathCost sums the step costs along path by replaying it through
// NextStates. ok is false if some action is not available at its state.
func PathCost[S comparable, A comparable](p Problem[S, A], path []A) (cost float64, end S, ok bool) {
	state := p.StartState()
	for _, action := range path {
		moved := false
		for _, next := range p.NextStates(state) {
			if next.Action == action {
				state = next.State
				cost += next.Cost
				moved = true
				break
			}
		}
		if !moved {
			return cost, state, false
		}
	}
	return cost, state, true
}

func reconstruct[S comparable, A any](nodes []node[S, A], goal int) []A {
	var walk []A
	for id := goal; nodes[id].parent != noParent; id = nodes[id].parent {
		walk = append(walk, nodes[id].action)
	}
	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
	}
	if walk == nil {
		walk = []A{}
	}
	return walk
}

func newFrontier[T any](d Discipline) Frontier[T] {
	switch d {
	case DepthFirst:
		return NewStack[T]()
	case BreadthFirst:
		return NewQueue[T]()
	case UniformCost:
		return NewPriorityQueue[T]()
	default:
		panic(fmt.Sprintf("unknown search discipline %d", int(d)))
	}
}
