package game

import "pursuit/search"

// PositionProblem searches the grid for a cell satisfying a goal predicate.
// States are positions; the four moving directions are the actions.
type PositionProblem struct {
	layout *Layout
	start  Position
	goal   func(Position) bool
	cost   func(Position) float64
}

type ProblemOption func(p *PositionProblem)

// WithCellCost charges cost(to) for every step into cell to. The default
// charges 1 per step.
func WithCellCost(cost func(Position) float64) ProblemOption {
	return func(p *PositionProblem) {
		if cost != nil {
			p.cost = cost
		}
	}
}

func NewPositionProblem(l *Layout, start Position, goal func(Position) bool, options ...ProblemOption) *PositionProblem {
	p := &PositionProblem{
		layout: l,
		start:  start,
		goal:   goal,
		cost:   func(Position) float64 { return 1 },
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// NewTargetProblem searches for a path from start to target.
func NewTargetProblem(l *Layout, start, target Position, options ...ProblemOption) *PositionProblem {
	return NewPositionProblem(l, start, func(p Position) bool { return p == target }, options...)
}

// NewFoodProblem searches for a path from agent's cell to any remaining food.
func NewFoodProblem(s *PursuitState, agent int, options ...ProblemOption) *PositionProblem {
	return NewPositionProblem(s.Layout(), s.Position(agent), s.HasFood, options...)
}

func (p *PositionProblem) StartState() Position {
	return p.start
}

func (p *PositionProblem) IsGoal(state Position) bool {
	return p.goal(state)
}

func (p *PositionProblem) NextStates(state Position) []search.Successor[Position, Direction] {
	moves := p.layout.Moves(state)
	next := make([]search.Successor[Position, Direction], 0, len(moves))
	for _, d := range moves {
		to := state.Step(d)
		next = append(next, search.Successor[Position, Direction]{State: to, Action: d, Cost: p.cost(to)})
	}
	return next
}

// MazeDistance returns the number of steps on the shortest path between a
// and b, or -1 when b cannot be reached.
func MazeDistance(l *Layout, a, b Position) int {
	path, found := search.Find[Position, Direction](NewTargetProblem(l, a, b), search.BreadthFirst)
	if !found {
		return -1
	}
	return len(path)
}
