package engine

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/utils"
	"time"

	"github.com/rs/zerolog/log"
)

type LocalOption func(e *LocalEngine)

// WithOpening plays plies random moves before the agents take over, so games
// between deterministic agents differ.
func WithOpening(plies int, seed uint64) LocalOption {
	return func(e *LocalEngine) {
		if plies > 0 {
			e.openingPlies = plies
			e.opening = NewRandomAgent(seed)
		}
	}
}

// WithMaxPlayer sets the colour scores are computed for, White by default.
func WithMaxPlayer(p game.Player) LocalOption {
	return func(e *LocalEngine) {
		e.maxPlayer = p
	}
}

// LocalEngine plays a whole game between two agents in process.
type LocalEngine struct {
	Board        *game.Board
	agents       [2]Agent // Indexed by game.Player
	maxPlayer    game.Player
	opening      Agent
	openingPlies int
}

func NewLocalEngine(size int, black, white Agent, options ...LocalOption) *LocalEngine {
	if black == nil || white == nil {
		panic("both agents are required")
	}
	if size < meta.MIN_BOARD_SIZE {
		panic(fmt.Sprintf("board size %d is too small", size))
	}

	e := &LocalEngine{maxPlayer: game.White}
	e.agents[game.Black] = black
	e.agents[game.White] = white
	for _, option := range options {
		option(e)
	}
	e.Board = game.NewBoard(size, e.maxPlayer)
	return e
}

// Run plays from the opening position with Black to move first.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	e.Board.Init()
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	player := game.Black
	forfeits := 0
	step := 1
	for !e.Board.IsEndOfGame() && forfeits < meta.CONSECUTIVE_FORFEITS {
		moves := e.Board.LegalMoves(player)
		if len(moves) == 0 {
			log.Debug().Str("player", player.String()).Msg("turn forfeited")
			forfeits++
			gameMetric.Forfeits++
			player = player.Opponent()
			continue
		}
		forfeits = 0

		agent := e.agents[player]
		if step <= e.openingPlies {
			agent = e.opening
		}
		move, searchMetric := agent.FindMove(e.Board, player)
		if !utils.Contains(moves, move) {
			panic(fmt.Sprintf("agent returned illegal move %s for %s", move, player))
		}

		e.Board.MakeMove(player, move.Row, move.Col)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         move.String(),
			Score:        e.Board.Score(),
			SearchMetric: searchMetric,
		})

		player = player.Opponent()
		step++
	}

	black, white := e.Board.Counts()
	winner := ""
	if black > white {
		winner = game.Black.String()
	} else if white > black {
		winner = game.White.String()
	}

	gameMetric.Winner = winner
	gameMetric.BlackCount = black
	gameMetric.WhiteCount = white
	gameMetric.TotalMoves = step - 1
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Debug().Str("winner", winner).Int("black", black).Int("white", white).Msg("game finished")
	return winner, gameMetric, moveMetrics
}
