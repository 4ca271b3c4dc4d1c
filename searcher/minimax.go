package searcher

import (
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax search with alpha-beta pruning. Scores are
// always taken from the board's max player perspective: the max player picks the
// highest value, its opponent the lowest.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 0 {
		panic("search depth cannot be negative")
	}
	m := &Minimax{ // Default values
		depth:    depth,
		evaluate: game.EvaluateWeighted,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// ChooseMove searches board for player with the weighted evaluation and returns
// game.NoMove if player has to pass.
func ChooseMove(board *game.Board, player game.Player, limit int) game.Move {
	return NewMinimax(limit).FindNextMove(board, player)
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) FindNextMove(board *game.Board, player game.Player) game.Move {
	return m.Search(board, player).Move
}

// FindMove returns the chosen move together with the search metrics.
func (m *Minimax) FindMove(board *game.Board, player game.Player) (game.Move, metrics.SearchMetric) {
	result := m.Search(board, player)
	return result.Move, result.Metric
}

// Search applies every legal move of player to a copy of board and keeps the one
// with the best value. Ties keep the earliest move in row-major order. board is
// never modified.
func (m *Minimax) Search(board *game.Board, player game.Player) Result {
	m.metrics.Start(m.depth)

	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return Result{
			Move:   game.NoMove,
			Value:  m.evaluate(board),
			Metric: m.metrics.Complete(),
		}
	}

	maximizing := player == board.MaxPlayer()
	opponent := player.Opponent()

	best := Result{Move: game.NoMove, Value: PosInf}
	if maximizing {
		best.Value = NegInf
	}
	best.Candidates = make([]Candidate, 0, len(moves))

	for _, move := range moves {
		child := board.Copy()
		child.MakeMove(player, move.Row, move.Col)

		var value int
		if maximizing {
			value = m.minValue(child, opponent, m.depth, best.Value, PosInf)
		} else {
			value = m.maxValue(child, opponent, m.depth, NegInf, best.Value)
		}
		log.Debug().Str("player", player.String()).Stringer("move", move).Int("value", value).Msg("considering move")

		best.Candidates = append(best.Candidates, Candidate{Move: move, Value: value})
		if (maximizing && value > best.Value) || (!maximizing && value < best.Value) {
			best.Value = value
			best.Move = move
		}
	}

	best.Metric = m.metrics.Complete()
	return best
}

// maxValue evaluates board with the max player to move inside the window (a, b).
// On a cutoff it returns b, the bound, not the running best.
func (m *Minimax) maxValue(board *game.Board, player game.Player, depth, a, b int) int {
	m.metrics.AddNode()
	if depth == 0 || board.IsEndOfGame() {
		m.metrics.AddLeaf()
		return m.evaluate(board)
	}

	opponent := player.Opponent()
	moves := board.LegalMoves(player)
	if len(moves) == 0 { // Pass
		return m.minValue(board, opponent, depth-1, a, b)
	}

	for _, move := range moves {
		child := board.Copy()
		child.MakeMove(player, move.Row, move.Col)

		a = max(a, m.minValue(child, opponent, depth-1, a, b))
		if b <= a {
			m.metrics.AddCutoff()
			return b
		}
	}
	return a
}

// minValue mirrors maxValue for the max player's opponent. On a cutoff it returns a.
func (m *Minimax) minValue(board *game.Board, player game.Player, depth, a, b int) int {
	m.metrics.AddNode()
	if depth == 0 || board.IsEndOfGame() {
		m.metrics.AddLeaf()
		return m.evaluate(board)
	}

	opponent := player.Opponent()
	moves := board.LegalMoves(player)
	if len(moves) == 0 { // Pass
		return m.maxValue(board, opponent, depth-1, a, b)
	}

	for _, move := range moves {
		child := board.Copy()
		child.MakeMove(player, move.Row, move.Col)

		b = min(b, m.maxValue(child, opponent, depth-1, a, b))
		if b <= a {
			m.metrics.AddCutoff()
			return a
		}
	}
	return b
}
