package agent

import "fmt"

type Kind int

const (
	Minimax Kind = iota
	Random
	Planner
)

func (k Kind) String() string {
	switch k {
	case Minimax:
		return "minimax"
	case Random:
		return "random"
	case Planner:
		return "path"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func ParseKind(name string) (Kind, error) {
	for _, k := range []Kind{Minimax, Random, Planner} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown agent kind %q", name)
}
