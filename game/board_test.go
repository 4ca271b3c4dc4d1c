package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustParse(t *testing.T, maxPlayer Player, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(maxPlayer, rows...)
	require.NoError(t, err)
	return b
}

// randomPosition plays random legal moves from the starting position.
func randomPosition(r *rand.Rand, size, plies int) (*Board, Player) {
	b := NewBoard(size, White)
	b.Init()
	player := Black
	for i := 0; i < plies && !b.IsEndOfGame(); i++ {
		moves := b.LegalMoves(player)
		if len(moves) == 0 {
			if len(b.LegalMoves(player.Opponent())) == 0 {
				break
			}
			player = player.Opponent()
			continue
		}
		m := moves[r.Intn(len(moves))]
		b.MakeMove(player, m.Row, m.Col)
		player = player.Opponent()
	}
	return b, player
}

func count(b *Board, c Cell) int {
	n := 0
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			if b.At(row, col) == c {
				n++
			}
		}
	}
	return n
}

func TestPlayer(t *testing.T) {
	t.Run("opponent mapping is total and involutive", func(t *testing.T) {
		require.Equal(t, White, Black.Opponent())
		require.Equal(t, Black, White.Opponent())
		require.Equal(t, Black, Black.Opponent().Opponent())
	})

	t.Run("parsing uses the first character", func(t *testing.T) {
		for token, want := range map[string]Player{"B": Black, "b": Black, "White": White, "w": White} {
			got, err := ParsePlayer(token)
			require.NoError(t, err, token)
			require.Equal(t, want, got, token)
		}
	})

	t.Run("rejects unknown players", func(t *testing.T) {
		_, err := ParsePlayer("X")
		require.ErrorIs(t, err, ErrUnknownPlayer)
		_, err = ParsePlayer("")
		require.ErrorIs(t, err, ErrUnknownPlayer)
	})

	t.Run("cells know their owner", func(t *testing.T) {
		p, ok := WhiteCounter.Owner()
		require.True(t, ok)
		require.Equal(t, White, p)
		_, ok = Empty.Owner()
		require.False(t, ok)
		require.Equal(t, BlackCounter, Black.Counter())
	})
}

func TestBoardInit(t *testing.T) {
	t.Run("4x4 starting pattern", func(t *testing.T) {
		b := NewBoard(4, White)
		b.Init()

		require.Equal(t, WhiteCounter, b.At(1, 1))
		require.Equal(t, WhiteCounter, b.At(2, 2))
		require.Equal(t, BlackCounter, b.At(1, 2))
		require.Equal(t, BlackCounter, b.At(2, 1))
		require.Equal(t, 12, count(b, Empty))
	})

	t.Run("init clears previous contents", func(t *testing.T) {
		b := NewBoard(8, Black)
		b.MakeMove(Black, 0, 0)
		b.Init()

		require.Equal(t, Empty, b.At(0, 0))
		black, white := b.Counts()
		require.Equal(t, 2, black)
		require.Equal(t, 2, white)
	})

	t.Run("reset blanks every cell but keeps size and max player", func(t *testing.T) {
		b := NewBoard(6, Black)
		b.Init()
		b.Reset()

		require.Equal(t, 36, count(b, Empty))
		require.Equal(t, 6, b.Size())
		require.Equal(t, Black, b.MaxPlayer())
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("round trips through String", func(t *testing.T) {
		b := mustParse(t, White,
			". B W .",
			"W W B .",
			". . . .",
			"B . . W",
		)
		require.Equal(t, ". B W .\nW W B .\n. . . .\nB . . W", b.String())
		require.Equal(t, White, b.MaxPlayer())
	})

	t.Run("rejects ragged rows", func(t *testing.T) {
		_, err := ParseBoard(White, "..", "...")
		require.Error(t, err)
	})

	t.Run("rejects unknown characters", func(t *testing.T) {
		_, err := ParseBoard(White, ".X", "..")
		require.Error(t, err)
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("black from the 4x4 opening", func(t *testing.T) {
		b := NewBoard(4, White)
		b.Init()

		require.Equal(t, []Move{{0, 1}, {1, 0}, {2, 3}, {3, 2}}, b.LegalMoves(Black))
	})

	t.Run("white from the 4x4 opening", func(t *testing.T) {
		b := NewBoard(4, White)
		b.Init()

		require.Equal(t, []Move{{0, 2}, {1, 3}, {2, 0}, {3, 1}}, b.LegalMoves(White))
	})

	t.Run("empty board has no moves", func(t *testing.T) {
		b := NewBoard(8, White)
		require.Empty(t, b.LegalMoves(Black))
		require.Empty(t, b.LegalMoves(White))
	})

	t.Run("a run ending in an empty cell does not qualify", func(t *testing.T) {
		b := mustParse(t, White,
			". W W .",
			". . . .",
			". . . .",
			". . . .",
		)
		require.Empty(t, b.LegalMoves(Black))
	})

	t.Run("a run reaching the edge does not qualify", func(t *testing.T) {
		b := mustParse(t, White,
			". W W W",
			". . . .",
			". . . .",
			". . . .",
		)
		require.Empty(t, b.LegalMoves(Black))
	})

	t.Run("diagonal capture", func(t *testing.T) {
		b := mustParse(t, White,
			". . . .",
			". W . .",
			". . B .",
			". . . .",
		)
		require.Equal(t, []Move{{0, 0}}, b.LegalMoves(Black))
		require.Equal(t, []Move{{3, 3}}, b.LegalMoves(White))
	})

	t.Run("never returns an occupied cell", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		for i := 0; i < 50; i++ {
			b, player := randomPosition(r, 6, r.Intn(30))
			for _, m := range b.LegalMoves(player) {
				require.Equal(t, Empty, b.At(m.Row, m.Col))
			}
		}
	})

	t.Run("matches brute force flipping", func(t *testing.T) {
		r := rand.New(rand.NewSource(11))
		for i := 0; i < 50; i++ {
			b, player := randomPosition(r, 6, r.Intn(30))

			var want []Move
			for row := 0; row < b.Size(); row++ {
				for col := 0; col < b.Size(); col++ {
					if b.At(row, col) != Empty {
						continue
					}
					tmp := b.Copy()
					tmp.MakeMove(player, row, col)
					if count(tmp, player.Counter()) > count(b, player.Counter())+1 {
						want = append(want, Move{Row: row, Col: col})
					}
				}
			}
			require.Equal(t, want, b.LegalMoves(player), "position:\n%s", b)
		}
	})
}

func TestIsLegal(t *testing.T) {
	b := NewBoard(4, White)
	b.Init()
	moves := b.LegalMoves(Black)

	require.True(t, b.IsLegal(moves, 0, 1))
	require.False(t, b.IsLegal(moves, 0, 0))
	require.False(t, b.IsLegal(nil, 0, 1))
}

func TestMakeMove(t *testing.T) {
	t.Run("flips a single flanked counter", func(t *testing.T) {
		b := NewBoard(4, White)
		b.Init()
		b.MakeMove(Black, 0, 1)

		require.Equal(t, BlackCounter, b.At(0, 1))
		require.Equal(t, BlackCounter, b.At(1, 1))
		require.Equal(t, WhiteCounter, b.At(2, 2))
	})

	t.Run("flips in several directions at once", func(t *testing.T) {
		b := mustParse(t, White,
			"B . B .",
			". W W .",
			"B W . .",
			". . . .",
		)
		b.MakeMove(Black, 2, 2)

		require.Equal(t, "B . B .\n. B B .\nB B B .\n. . . .", b.String())
	})

	t.Run("does not flip across an empty gap", func(t *testing.T) {
		b := mustParse(t, White,
			". W . B",
			"W . . .",
			"B . . .",
			". . . .",
		)
		b.MakeMove(Black, 0, 0)

		require.Equal(t, WhiteCounter, b.At(0, 1), "gap before the black counter")
		require.Equal(t, BlackCounter, b.At(1, 0), "flanked vertically")
	})

	t.Run("does not flip a run that reaches the edge", func(t *testing.T) {
		b := mustParse(t, White,
			". W W W",
			"W . . .",
			"B . . .",
			". . . .",
		)
		b.MakeMove(Black, 0, 0)

		require.Equal(t, "B W W W", b.String()[:7])
		require.Equal(t, BlackCounter, b.At(1, 0))
	})

	t.Run("legal moves claim the target and never lose counters", func(t *testing.T) {
		r := rand.New(rand.NewSource(3))
		for i := 0; i < 50; i++ {
			b, player := randomPosition(r, 6, r.Intn(30))
			for _, m := range b.LegalMoves(player) {
				tmp := b.Copy()
				tmp.MakeMove(player, m.Row, m.Col)

				require.Equal(t, player.Counter(), tmp.At(m.Row, m.Col))
				require.Greater(t, count(tmp, player.Counter()), count(b, player.Counter()))
				require.Equal(t, count(b, Empty)-1, count(tmp, Empty))
			}
		}
	})

	t.Run("copies are isolated", func(t *testing.T) {
		b := NewBoard(8, White)
		b.Init()
		before := b.String()

		tmp := b.Copy()
		tmp.MakeMove(Black, 2, 3)

		require.Equal(t, before, b.String())
		require.NotEqual(t, before, tmp.String())
	})
}

func TestIsEndOfGame(t *testing.T) {
	t.Run("one empty cell left", func(t *testing.T) {
		b := mustParse(t, White,
			"B W",
			"W .",
		)
		require.False(t, b.IsEndOfGame())

		b.MakeMove(Black, 1, 1)
		require.True(t, b.IsEndOfGame())
	})

	t.Run("opening is not terminal", func(t *testing.T) {
		b := NewBoard(8, White)
		b.Init()
		require.False(t, b.IsEndOfGame())
	})
}
