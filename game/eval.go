package game

// Evaluate scores a position from the board's max player perspective.
type Evaluate func(b *Board) int

// EvaluateWeighted uses the positional weight table, see Board.Score.
func EvaluateWeighted(b *Board) int {
	return b.Score()
}

// EvaluateDiscs uses the plain counter differential, see Board.DiscDifference.
func EvaluateDiscs(b *Board) int {
	return b.DiscDifference()
}

// Score sums the positional weight of every occupied cell, added for the max
// player's counters and subtracted for the opponent's.
func (b *Board) Score() int {
	own := b.maxPlayer.Counter()
	opponent := b.maxPlayer.Opponent().Counter()

	score := 0
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			switch b.At(row, col) {
			case own:
				score += b.Weight(row, col)
			case opponent:
				score -= b.Weight(row, col)
			}
		}
	}
	return score
}

// DiscDifference is the max player's counter count minus the opponent's.
func (b *Board) DiscDifference() int {
	black, white := b.Counts()
	if b.maxPlayer == Black {
		return black - white
	}
	return white - black
}

// Weight is the static value of holding (row, col). Corners are worth the most,
// the squares that give the opponent access to a corner are penalized.
func (b *Board) Weight(row, col int) int {
	last := b.size - 1
	switch {
	case isCorner(row, col, last):
		return 50
	case isXSquare(row, col, last):
		return -10
	case isCSquare(row, col, last):
		return -1
	case row == 0 || col == 0 || row == last || col == last:
		return 3
	default:
		return 1
	}
}

func isCorner(row, col, last int) bool {
	return (row == 0 || row == last) && (col == 0 || col == last)
}

// isXSquare matches the cell diagonally inwards from a corner.
func isXSquare(row, col, last int) bool {
	return (row == 1 || row == last-1) && (col == 1 || col == last-1)
}

// isCSquare matches the edge cells orthogonally next to a corner.
func isCSquare(row, col, last int) bool {
	onRowEdge := (row == 0 || row == last) && (col == 1 || col == last-1)
	onColEdge := (col == 0 || col == last) && (row == 1 || row == last-1)
	return onRowEdge || onColEdge
}
