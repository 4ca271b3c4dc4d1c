package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"othello/game"
	"othello/meta"
	"othello/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

const helpText = `# Your command is not supported in this version of Othello
# Only the following commands are supported:
#     "init" - places 4 pieces in the middle (standard starting configuration)
#     "put <P> <X> <Y>" - place a stone of type P at coords X,Y, and flip
#                           any pieces that can be flipped
#     "move <P>" - ask the program to choose the next move for player P
#                     using minimax (and update the state based on this move)
#     "reset" - removes all stones, leaving an empty board
#     "quit"- exit the program
# "init" must be used as an initial command
`

type SessionOption func(s *Session)

func WithRenderer(r *Renderer) SessionOption {
	return func(s *Session) {
		if r != nil {
			s.renderer = r
		}
	}
}

// Session drives a single board from a line-oriented command stream.
type Session struct {
	board    *game.Board
	searcher *searcher.Minimax
	renderer *Renderer
	in       io.Reader
	out      io.Writer
	forfeits int // Consecutive forfeited turns
	start    time.Time
	err      error // First write error, later writes are skipped
}

func NewSession(board *game.Board, search *searcher.Minimax, in io.Reader, out io.Writer, options ...SessionOption) *Session {
	s := &Session{
		board:    board,
		searcher: search,
		in:       in,
		out:      out,
	}
	for _, option := range options {
		option(s)
	}
	if s.renderer == nil {
		s.renderer = NewRenderer(out, false)
	}
	return s
}

func (s *Session) Board() *game.Board {
	return s.board
}

// Run reads commands until quit, end of input, or the end of the game. The final
// summary is only written when the game ends.
func (s *Session) Run() error {
	s.start = time.Now()
	scanner := bufio.NewScanner(s.in)

	for {
		s.printf("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			log.Debug().Msg("end of input")
			return s.err
		}

		cmd, err := ParseCommand(scanner.Text())
		switch {
		case errors.Is(err, ErrEmptyCommand):
			continue
		case err != nil:
			log.Debug().Err(err).Msg("rejected command")
			s.printf("%s", helpText)
		default:
			if cmd.Action == QuitAction {
				s.printf("Thank you! Hope you had fun!\n")
				return s.err
			}
			if over := s.execute(cmd); over {
				return s.finish()
			}
		}

		if s.board.IsEndOfGame() {
			return s.finish()
		}
		s.printf("%s", s.renderer.Board(s.board))
		if s.err != nil {
			return s.err
		}
	}
}

// execute applies cmd and reports whether the game is over.
func (s *Session) execute(cmd Command) bool {
	switch cmd.Action {
	case InitAction:
		s.board.Init()
	case ResetAction:
		s.board.Reset()
	case PutAction:
		moves := s.board.LegalMoves(cmd.Player)
		if len(moves) == 0 {
			return s.forfeit(cmd.Player)
		}
		if !s.board.IsLegal(moves, cmd.Row, cmd.Col) {
			s.printf("\n# Not a valid move, try again.\n")
			return false
		}
		s.board.MakeMove(cmd.Player, cmd.Row, cmd.Col)
		s.forfeits = 0
	case MoveAction:
		if len(s.board.LegalMoves(cmd.Player)) == 0 {
			return s.forfeit(cmd.Player)
		}
		s.printf("# making move for %s...\n", cmd.Player)
		result := s.searcher.Search(s.board, cmd.Player)
		for _, c := range result.Candidates {
			s.printf("# considering: %s, mm=%d\n", c.Move, c.Value)
		}
		s.printf("%s\n", result.Move)
		log.Debug().
			Str("player", cmd.Player.String()).
			Stringer("move", result.Move).
			Int("value", result.Value).
			Int("nodes", result.Metric.Nodes).
			Dur("duration", result.Metric.Duration).
			Msg("chose move")

		s.board.MakeMove(cmd.Player, result.Move.Row, result.Move.Col)
		s.forfeits = 0
	}
	return false
}

func (s *Session) forfeit(player game.Player) bool {
	s.printf("\n# No legal moves available, so %s's turn is forfeited\n", player)
	s.forfeits++
	return s.forfeits >= meta.CONSECUTIVE_FORFEITS
}

func (s *Session) finish() error {
	s.printf("%s", s.renderer.Board(s.board))
	s.printf("%s", s.renderer.Final(s.board))
	s.printf("\n# game over\n")
	s.printf("\n# Time used in seconds: %d\n", int(time.Since(s.start).Seconds()))

	black, white := s.board.Counts()
	log.Info().Int("black", black).Int("white", white).Msg("game over")
	return s.err
}

func (s *Session) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		s.err = fmt.Errorf("failed to write output: %w", err)
	}
}
