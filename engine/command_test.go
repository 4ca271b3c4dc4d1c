package engine

import (
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	t.Run("single word commands", func(t *testing.T) {
		for line, want := range map[string]Action{"init": InitAction, "reset": ResetAction, " quit ": QuitAction} {
			got, err := ParseCommand(line)
			require.NoError(t, err, line)
			require.Equal(t, want, got.Action, line)
		}
	})

	t.Run("put with coordinates", func(t *testing.T) {
		got, err := ParseCommand("put W 2  3")
		require.NoError(t, err)
		require.Equal(t, Command{Action: PutAction, Player: game.White, Row: 2, Col: 3}, got)
	})

	t.Run("non numeric coordinates are off the board", func(t *testing.T) {
		got, err := ParseCommand("put B x 1")
		require.NoError(t, err)
		require.Equal(t, -1, got.Row)
		require.Equal(t, 1, got.Col)
	})

	t.Run("move", func(t *testing.T) {
		got, err := ParseCommand("move black")
		require.NoError(t, err)
		require.Equal(t, Command{Action: MoveAction, Player: game.Black}, got)
	})

	t.Run("blank line", func(t *testing.T) {
		_, err := ParseCommand("   ")
		require.ErrorIs(t, err, ErrEmptyCommand)
	})

	t.Run("unsupported commands", func(t *testing.T) {
		for _, line := range []string{"init now", "put B 1", "move", "jump", "move X"} {
			_, err := ParseCommand(line)
			require.ErrorIs(t, err, ErrUnsupportedCommand, line)
		}
	})

	t.Run("unknown player keeps the cause", func(t *testing.T) {
		_, err := ParseCommand("put X 1 1")
		require.ErrorIs(t, err, game.ErrUnknownPlayer)
	})
}
