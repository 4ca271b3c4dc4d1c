package engine

import (
	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/rand"
)

type Engine interface {
	// Run plays a game till the board is full or both players had to pass
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Agent picks a move for player. It must return one of board's legal moves, or
// game.NoMove when there is none.
type Agent interface {
	FindMove(board *game.Board, player game.Player) (game.Move, metrics.SearchMetric)
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *game.Board, player game.Player) (game.Move, metrics.SearchMetric) {
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
