package searcher

import (
	"math"
	"othello/experiments/metrics"
	"othello/game"
)

// Initial alpha-beta window. Every reachable evaluation lies strictly inside it.
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

// Candidate is a root move and the value the search assigned to it. Values of
// moves that did not become the best may be bounds rather than exact scores.
type Candidate struct {
	Move  game.Move
	Value int
}

type Result struct {
	Move       game.Move // game.NoMove when the player has to pass
	Value      int
	Candidates []Candidate // In the order they were searched
	Metric     metrics.SearchMetric
}
