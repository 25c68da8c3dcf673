package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration    time.Duration
	Depth       int
	Expansions  int
	Evaluations int
	Value       float64 // Root value for game-tree searches, path cost for graph searches
}

type MoveMetric struct {
	Step  int
	Agent int // Agent index
	SearchMetric
}

type GameMetric struct {
	Outcome   string
	Score     float64
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Moves     int
}

// Collector gathers search statistics. Implementations must be safe for
// concurrent use since root actions may be searched in parallel.
type Collector interface {
	Start(depth int)
	AddExpansion()
	AddEvaluation()
	Complete(value float64) SearchMetric
}

type collector struct {
	depth       int
	startTime   time.Time
	expansions  atomic.Int64
	evaluations atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.expansions.Store(0)
	m.evaluations.Store(0)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) Complete(value float64) SearchMetric {
	return SearchMetric{
		Duration:    time.Since(m.startTime),
		Depth:       m.depth,
		Expansions:  int(m.expansions.Load()),
		Evaluations: int(m.evaluations.Load()),
		Value:       value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                     {}
func (m *dummyCollector) AddExpansion()                       {}
func (m *dummyCollector) AddEvaluation()                      {}
func (m *dummyCollector) Complete(value float64) SearchMetric { return SearchMetric{} }
