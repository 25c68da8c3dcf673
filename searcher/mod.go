package searcher

import (
	"fmt"

	"pursuit/game"
)

// Default hyperparameters for minimax

const DefaultDepth = 2

const DefaultGoroutines = 1

type Role int

const (
	Max Role = iota // Folds child values with max
	Min             // Folds child values with min
)

func (r Role) String() string {
	switch r {
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Turn is one agent's move within a round of play.
type Turn struct {
	Agent int
	Role  Role
}

// Order is the cyclic sequence of turns making up one ply. A ply elapses
// each time play wraps from the last turn back to the first.
type Order []Turn

// TwoPlayer returns the order in which agent maximizes and its opponent
// minimizes, agent moving first.
func TwoPlayer(agent int) Order {
	return Order{
		{Agent: agent, Role: Max},
		{Agent: game.Opponent(agent), Role: Min},
	}
}

// next returns the turn after position i and the plies elapsed once it is
// taken.
func (o Order) next(i, plies int) (int, int) {
	j := i + 1
	if j == len(o) {
		return 0, plies + 1
	}
	return j, plies
}
