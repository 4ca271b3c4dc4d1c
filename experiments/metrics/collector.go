package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes a single move search.
type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // Positions expanded by the recursive evaluators
	Leaves   int // Positions scored by the evaluation function
	Cutoffs  int // Alpha-beta cutoffs taken
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	Score  int // Board score after the move
	SearchMetric
}

type GameMetric struct {
	Winner     string // "B", "W" or "" for a draw
	BlackCount int
	WhiteCount int
	Forfeits   int
	TotalMoves int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth int) {
	m.depth = depth
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
