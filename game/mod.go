package game

import "fmt"

// Agent indices. The runner is the maximizing side of the default
// evaluations, the chaser the minimizing side.
const (
	Runner = 0
	Chaser = 1
)

// NumAgents is the number of agents taking turns in a game.
const NumAgents = 2

// Opponent returns the other agent of a two-agent game.
func Opponent(agent int) int {
	return 1 - agent
}

// Direction is an action: one of the four cardinal moves or Stop.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Stop
)

// Directions lists the moving directions in enumeration order.
var Directions = []Direction{North, South, East, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Reverse returns the opposite direction. Stop reverses to itself.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// State should be immutable - Successor always returns a new value and never
// changes the receiver.
type State interface {
	LegalActions(agent int) []Direction
	Successor(agent int, action Direction) State
	IsWin() bool
	IsLose() bool
}

// Evaluate scores a state from the perspective of the agent doing the
// search. +Inf and -Inf mark decisive wins and losses.
type Evaluate func(State) float64
