package metrics

import (
	"santorini/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Layers     int
	Branches   int
	Duration   time.Duration
	Candidates int  // Candidate plays enumerated across every ranked state
	MemoHits   int  // Feature vectors served from the memo caches
	Nodes      int  // States simulated
	Depth      int  // Deepest ply reached
	Exhausted  bool // Node budget ran out before the tree was complete
}

type MoveMetric struct {
	Step      int
	Player    int // Player ID
	Play      game.Play
	StateHash game.StateHash // Hash of the state after the play
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, game.NoPlayer on a turn limit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(layers, branches int)
	AddCandidates(n int)
	AddMemoHit()
	AddNode()
	ReachDepth(ply int)
	SetExhausted()
	Complete() SearchMetric
}

type collector struct {
	layers     int
	branches   int
	startTime  time.Time
	candidates atomic.Int32
	memoHits   atomic.Int32
	nodes      atomic.Int32
	depth      atomic.Int32
	exhausted  atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(layers, branches int) {
	m.startTime = time.Now()
	m.layers = layers
	m.branches = branches
}

func (m *collector) AddCandidates(n int) {
	m.candidates.Add(int32(n))
}

func (m *collector) AddMemoHit() {
	m.memoHits.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) ReachDepth(ply int) {
	for {
		current := m.depth.Load()
		if int32(ply) <= current || m.depth.CompareAndSwap(current, int32(ply)) {
			return
		}
	}
}

func (m *collector) SetExhausted() {
	m.exhausted.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Layers:     m.layers,
		Branches:   m.branches,
		Duration:   time.Since(m.startTime),
		Candidates: int(m.candidates.Load()),
		MemoHits:   int(m.memoHits.Load()),
		Nodes:      int(m.nodes.Load()),
		Depth:      int(m.depth.Load()),
		Exhausted:  m.exhausted.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(layers, branches int) {}
func (m *dummyCollector) AddCandidates(n int)        {}
func (m *dummyCollector) AddMemoHit()                {}
func (m *dummyCollector) AddNode()                   {}
func (m *dummyCollector) ReachDepth(ply int)         {}
func (m *dummyCollector) SetExhausted()              {}
func (m *dummyCollector) Complete() SearchMetric     { return SearchMetric{} }
