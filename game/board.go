package game

import (
	"fmt"
	"othello/utils"
	"strings"
)

// The 8 compass directions as (row delta, col delta).
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a square Othello grid. The size and the max player are fixed at
// construction; copies never share cells.
type Board struct {
	size      int    // Side length of the grid
	maxPlayer Player // Player whose perspective scores are computed from
	cells     []Cell // Row-major cells, size*size long
}

// NewBoard returns an empty board of the given size.
func NewBoard(size int, maxPlayer Player) *Board {
	return &Board{
		size:      size,
		maxPlayer: maxPlayer,
		cells:     make([]Cell, size*size),
	}
}

// ParseBoard builds a board from text rows of '.', 'B' and 'W'. Spaces are ignored.
func ParseBoard(maxPlayer Player, rows ...string) (*Board, error) {
	b := NewBoard(len(rows), maxPlayer)
	for row, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != b.size {
			return nil, fmt.Errorf("cannot parse board: row %d has %d cells, want %d", row, len(line), b.size)
		}
		for col, ch := range line {
			switch ch {
			case '.':
				b.set(row, col, Empty)
			case 'B', 'b':
				b.set(row, col, BlackCounter)
			case 'W', 'w':
				b.set(row, col, WhiteCounter)
			default:
				return nil, fmt.Errorf("cannot parse board: unexpected %q at (%d,%d)", ch, row, col)
			}
		}
	}
	return b, nil
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cellsCopy := make([]Cell, len(b.cells))
	copy(cellsCopy, b.cells)

	return &Board{
		size:      b.size,
		maxPlayer: b.maxPlayer,
		cells:     cellsCopy,
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) MaxPlayer() Player {
	return b.maxPlayer
}

// At returns the cell at (row, col).
func (b *Board) At(row, col int) Cell {
	return b.cells[row*b.size+col]
}

func (b *Board) set(row, col int, c Cell) {
	b.cells[row*b.size+col] = c
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// Init clears the board and places the four starting counters in the centre.
func (b *Board) Init() {
	b.Reset()

	mid := b.size / 2
	b.set(mid-1, mid-1, WhiteCounter)
	b.set(mid, mid, WhiteCounter)
	b.set(mid-1, mid, BlackCounter)
	b.set(mid, mid-1, BlackCounter)
}

// Reset blanks every cell.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// LegalMoves returns the empty cells where player would capture at least one
// opposing counter, in row-major order. An empty result means player must pass.
func (b *Board) LegalMoves(player Player) []Move {
	var moves []Move
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.At(row, col) != Empty {
				continue
			}
			for _, d := range directions {
				if b.captures(player, row, col, d) {
					moves = append(moves, Move{Row: row, Col: col})
					break
				}
			}
		}
	}
	return moves
}

// captures reports whether a counter of player at (row, col) would flank a run of
// opponent counters in direction d.
func (b *Board) captures(player Player, row, col int, d [2]int) bool {
	own := player.Counter()
	opponent := player.Opponent().Counter()

	x, y := row+d[0], col+d[1]
	if !b.inBounds(x, y) || b.At(x, y) != opponent {
		return false
	}
	for {
		x += d[0]
		y += d[1]
		if !b.inBounds(x, y) {
			return false
		}
		switch b.At(x, y) {
		case Empty:
			return false
		case own:
			return true
		}
	}
}

// IsLegal reports whether (row, col) is one of moves.
func (b *Board) IsLegal(moves []Move, row, col int) bool {
	return utils.FindIndex(moves, Move{Row: row, Col: col}) != -1
}

// MakeMove places player's counter at (row, col) and flips every flanked opponent
// counter. The move is not validated: callers must check it against LegalMoves.
func (b *Board) MakeMove(player Player, row, col int) {
	own := player.Counter()
	opponent := player.Opponent().Counter()

	b.set(row, col, own)
	for _, d := range directions {
		if !b.captures(player, row, col, d) {
			continue
		}
		for x, y := row+d[0], col+d[1]; b.At(x, y) == opponent; x, y = x+d[0], y+d[1] {
			b.set(x, y, own)
		}
	}
}

// IsEndOfGame reports whether every cell is occupied. Two consecutive passes on a
// partially filled board are detected by the game loop, not here.
func (b *Board) IsEndOfGame() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// Counts tallies the counters of each colour.
func (b *Board) Counts() (black, white int) {
	for _, c := range b.cells {
		switch c {
		case BlackCounter:
			black++
		case WhiteCounter:
			white++
		}
	}
	return black, white
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.At(row, col).String())
		}
	}
	return sb.String()
}
