package game

import (
	"fmt"
	"strings"
)

// Scoring and timing rules
const (
	TimePenalty = 1.0   // Runner loses this much per move
	FoodScore   = 10.0  // Eating one food
	CatchScore  = 200.0 // Runner catching a scared chaser
	WinScore    = 500.0 // Clearing the board
	LoseScore   = 500.0 // Being caught
	ScaredTime  = 40    // Chaser moves a capsule keeps the chaser scared
)

type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "win"
	case Lost:
		return "lose"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// PursuitState is a two-agent pursuit game: the runner collects food while
// the chaser tries to catch it. Values are never modified after creation;
// slices are copied before a successor changes them.
type PursuitState struct {
	layout   *Layout
	runner   Position
	chaser   Position
	food     []bool // Indexed like Layout.walls
	foodLeft int
	capsules []Position
	scared   int
	score    float64
	outcome  Outcome
	heading  Direction // Runner's last move
}

// NewPursuitState returns the initial state of a game on layout l.
func NewPursuitState(l *Layout) *PursuitState {
	food := make([]bool, l.Width*l.Height)
	for _, p := range l.Food {
		food[l.index(p)] = true
	}
	capsules := make([]Position, len(l.Capsules))
	copy(capsules, l.Capsules)

	s := &PursuitState{
		layout:   l,
		runner:   l.RunnerStart,
		chaser:   l.ChaserStart,
		food:     food,
		foodLeft: len(l.Food),
		capsules: capsules,
		heading:  Stop,
	}
	if s.foodLeft == 0 {
		s.outcome = Won
	}
	return s
}

func (s *PursuitState) Layout() *Layout       { return s.layout }
func (s *PursuitState) Runner() Position      { return s.runner }
func (s *PursuitState) Chaser() Position      { return s.chaser }
func (s *PursuitState) Score() float64        { return s.score }
func (s *PursuitState) ScaredTimer() int      { return s.scared }
func (s *PursuitState) FoodLeft() int         { return s.foodLeft }
func (s *PursuitState) Outcome() Outcome      { return s.outcome }
func (s *PursuitState) Heading() Direction    { return s.heading }
func (s *PursuitState) IsWin() bool           { return s.outcome == Won }
func (s *PursuitState) IsLose() bool          { return s.outcome == Lost }
func (s *PursuitState) HasFood(p Position) bool {
	return s.layout.InBounds(p) && s.food[s.layout.index(p)]
}

// Position returns the cell occupied by agent.
func (s *PursuitState) Position(agent int) Position {
	switch agent {
	case Runner:
		return s.runner
	case Chaser:
		return s.chaser
	default:
		panic(fmt.Sprintf("unknown agent index %d", agent))
	}
}

// Food lists the remaining food in row-major order.
func (s *PursuitState) Food() []Position {
	food := make([]Position, 0, s.foodLeft)
	for i, ok := range s.food {
		if ok {
			food = append(food, Position{Row: i / s.layout.Width, Col: i % s.layout.Width})
		}
	}
	return food
}

func (s *PursuitState) Capsules() []Position {
	capsules := make([]Position, len(s.capsules))
	copy(capsules, s.capsules)
	return capsules
}

// LegalActions returns the free moving directions followed by Stop. A
// finished game has no legal actions for either agent.
func (s *PursuitState) LegalActions(agent int) []Direction {
	if s.outcome != Playing {
		return nil
	}
	return append(s.layout.Moves(s.Position(agent)), Stop)
}

// Successor returns the state after agent plays action. It panics on an
// action that LegalActions does not offer.
func (s *PursuitState) Successor(agent int, action Direction) State {
	return s.Play(agent, action)
}

// Play is Successor with the concrete return type.
func (s *PursuitState) Play(agent int, action Direction) *PursuitState {
	if !s.isLegal(agent, action) {
		panic(fmt.Sprintf("illegal action %s for agent %d at %s", action, agent, s.Position(agent)))
	}

	next := *s
	switch agent {
	case Runner:
		next.runner = s.runner.Step(action)
		next.heading = action
		next.score -= TimePenalty
		next.eat()
		next.collide()
		if next.outcome == Playing && next.foodLeft == 0 {
			next.outcome = Won
			next.score += WinScore
		}
	case Chaser:
		next.chaser = s.chaser.Step(action)
		if next.scared > 0 {
			next.scared--
		}
		next.collide()
	}
	return &next
}

func (s *PursuitState) isLegal(agent int, action Direction) bool {
	for _, legal := range s.LegalActions(agent) {
		if legal == action {
			return true
		}
	}
	return false
}

// eat consumes whatever lies under the runner. Shared slices are cloned
// before being changed.
func (s *PursuitState) eat() {
	if s.HasFood(s.runner) {
		food := make([]bool, len(s.food))
		copy(food, s.food)
		food[s.layout.index(s.runner)] = false
		s.food = food
		s.foodLeft--
		s.score += FoodScore
	}

	for i, p := range s.capsules {
		if p == s.runner {
			capsules := make([]Position, 0, len(s.capsules)-1)
			capsules = append(capsules, s.capsules[:i]...)
			capsules = append(capsules, s.capsules[i+1:]...)
			s.capsules = capsules
			s.scared = ScaredTime
			break
		}
	}
}

func (s *PursuitState) collide() {
	if s.runner != s.chaser {
		return
	}
	if s.scared > 0 {
		s.score += CatchScore
		s.chaser = s.layout.ChaserStart
		s.scared = 0
		return
	}
	s.outcome = Lost
	s.score -= LoseScore
}

// String renders the board with the agents on top of the items.
func (s *PursuitState) String() string {
	var b strings.Builder
	for r := 0; r < s.layout.Height; r++ {
		for c := 0; c < s.layout.Width; c++ {
			p := Position{Row: r, Col: c}
			switch {
			case p == s.chaser:
				b.WriteByte(ChaserCell)
			case p == s.runner:
				b.WriteByte(RunnerCell)
			case s.layout.IsWall(p):
				b.WriteByte(WallCell)
			case s.HasFood(p):
				b.WriteByte(FoodCell)
			case s.hasCapsule(p):
				b.WriteByte(CapsuleCell)
			default:
				b.WriteByte(EmptyCell)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "score: %g scared: %d food: %d outcome: %s\n", s.score, s.scared, s.foodLeft, s.outcome)
	return b.String()
}

func (s *PursuitState) hasCapsule(p Position) bool {
	for _, c := range s.capsules {
		if c == p {
			return true
		}
	}
	return false
}
