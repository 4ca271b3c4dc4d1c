package game

import "fmt"

// Move is a board coordinate. NoMove signals a forced pass.
type Move struct {
	Row int
	Col int
}

var NoMove = Move{Row: -1, Col: -1}

func (m Move) IsNone() bool {
	return m == NoMove
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
