package engine

import (
	"errors"
	"fmt"
	"othello/game"
	"strconv"
	"strings"
)

var (
	ErrEmptyCommand       = errors.New("empty command")
	ErrUnsupportedCommand = errors.New("unsupported command")
)

// Action is the verb of a command line.
type Action int

const (
	InitAction Action = iota
	PutAction
	MoveAction
	ResetAction
	QuitAction
)

// Command is a parsed command line. Player is set for put and move, Row and Col
// for put only.
type Command struct {
	Action Action
	Player game.Player
	Row    int
	Col    int
}

// ParseCommand splits line on whitespace and validates its arity. Coordinates that
// are not integers parse as -1 so they are rejected as off-board moves later.
func ParseCommand(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, ErrEmptyCommand
	}

	switch {
	case len(tokens) == 1 && tokens[0] == "init":
		return Command{Action: InitAction}, nil
	case len(tokens) == 1 && tokens[0] == "reset":
		return Command{Action: ResetAction}, nil
	case len(tokens) == 1 && tokens[0] == "quit":
		return Command{Action: QuitAction}, nil
	case len(tokens) == 2 && tokens[0] == "move":
		player, err := game.ParsePlayer(tokens[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %w", ErrUnsupportedCommand, err)
		}
		return Command{Action: MoveAction, Player: player}, nil
	case len(tokens) == 4 && tokens[0] == "put":
		player, err := game.ParsePlayer(tokens[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %w", ErrUnsupportedCommand, err)
		}
		return Command{Action: PutAction, Player: player, Row: coordinate(tokens[2]), Col: coordinate(tokens[3])}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnsupportedCommand, line)
}

func coordinate(token string) int {
	n, err := strconv.Atoi(token)
	if err != nil {
		return -1
	}
	return n
}
