package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm  string
	Goroutines int
	Duration   time.Duration
	Nodes      int64 // Positions visited, root included
	Cutoffs    int64 // Alpha-beta prunings
}

type MoveMetric struct {
	Step   int
	Player string // "X" or "O"
	Row    int
	Col    int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "X", "O" or "draw"
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(algorithm string, goroutines int)
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	algorithm  string
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, goroutines int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:  m.algorithm,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		Cutoffs:    m.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, goroutines int) {}
func (m *dummyCollector) AddNode()                               {}
func (m *dummyCollector) AddCutoff()                             {}
func (m *dummyCollector) Complete() SearchMetric                 { return SearchMetric{} }
