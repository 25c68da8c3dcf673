package game

import (
	"fmt"
	"os"
	"strings"
)

// Position is a cell of the grid. Row 0 is the top row, so North decreases Row.
type Position struct {
	Row int
	Col int
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	switch d {
	case North:
		return Position{Row: p.Row - 1, Col: p.Col}
	case South:
		return Position{Row: p.Row + 1, Col: p.Col}
	case East:
		return Position{Row: p.Row, Col: p.Col + 1}
	case West:
		return Position{Row: p.Row, Col: p.Col - 1}
	default:
		return p
	}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the grid distance between two positions ignoring walls.
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Layout symbols
const (
	WallCell    = '%'
	FoodCell    = '.'
	CapsuleCell = 'o'
	RunnerCell  = 'P'
	ChaserCell  = 'G'
	EmptyCell   = ' '
)

// Layout is the static board: walls, the initial items and the agents'
// starting cells. It is shared read-only by every state of a game.
type Layout struct {
	Width       int
	Height      int
	walls       []bool // Indexed by Row*Width+Col
	Food        []Position
	Capsules    []Position
	RunnerStart Position
	ChaserStart Position
}

// ParseLayout reads a rectangular ASCII board. Every row must have the same
// width and the board must contain exactly one runner and one chaser.
func ParseLayout(text string) (*Layout, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	rows := strings.Split(strings.Trim(text, "\n"), "\n")
	if len(rows) == 0 || rows[0] == "" {
		return nil, fmt.Errorf("empty layout")
	}

	l := &Layout{Width: len(rows[0]), Height: len(rows)}
	l.walls = make([]bool, l.Width*l.Height)
	runners, chasers := 0, 0

	for r, row := range rows {
		if len(row) != l.Width {
			return nil, fmt.Errorf("row %d has width %d, expected %d", r, len(row), l.Width)
		}
		for c, cell := range row {
			p := Position{Row: r, Col: c}
			switch cell {
			case WallCell:
				l.walls[l.index(p)] = true
			case FoodCell:
				l.Food = append(l.Food, p)
			case CapsuleCell:
				l.Capsules = append(l.Capsules, p)
			case RunnerCell:
				l.RunnerStart = p
				runners++
			case ChaserCell:
				l.ChaserStart = p
				chasers++
			case EmptyCell:
			default:
				return nil, fmt.Errorf("unknown layout symbol %q at %s", cell, p)
			}
		}
	}

	if runners != 1 {
		return nil, fmt.Errorf("layout must contain exactly one runner %q, found %d", RunnerCell, runners)
	}
	if chasers != 1 {
		return nil, fmt.Errorf("layout must contain exactly one chaser %q, found %d", ChaserCell, chasers)
	}
	return l, nil
}

// LoadLayout parses the layout stored in file path.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	l, err := ParseLayout(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return l, nil
}

// MustParseLayout is ParseLayout for boards known to be valid.
func MustParseLayout(text string) *Layout {
	l, err := ParseLayout(text)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Layout) index(p Position) int {
	return p.Row*l.Width + p.Col
}

func (l *Layout) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < l.Height && p.Col >= 0 && p.Col < l.Width
}

// IsWall reports whether p is blocked. Cells off the board are walls.
func (l *Layout) IsWall(p Position) bool {
	if !l.InBounds(p) {
		return true
	}
	return l.walls[l.index(p)]
}

// Moves lists the moving directions from p that lead to a free cell, in
// enumeration order.
func (l *Layout) Moves(p Position) []Direction {
	moves := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if !l.IsWall(p.Step(d)) {
			moves = append(moves, d)
		}
	}
	return moves
}

// DefaultLayout is a small board with two capsules used when no layout file
// is given.
var DefaultLayout = MustParseLayout(defaultLayout)

const defaultLayout = `
%%%%%%%%%%%%%%%%%%%%
%o...%........%....%
%.%%.%.%%%%%%.%.%%.%
%.%..............%.%
%.%.%%.%%  %%.%%.%.%
%......%G   %......%
%.%.%%.%%%%%%.%%.%.%
%.%..............%.%
%.%%.%.%%%%%%.%.%%.%
%....%...P....%...o%
%%%%%%%%%%%%%%%%%%%%
`
