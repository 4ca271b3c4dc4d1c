package game

import (
	"errors"
	"fmt"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Player identifies one of the two counter colours.
type Player uint8

const (
	Black Player = iota
	White
)

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	BlackCounter
	WhiteCounter
)

// Opponent returns the other colour.
func (p Player) Opponent() Player {
	if p == Black {
		return White
	}
	return Black
}

// Counter returns the cell state holding p's counter.
func (p Player) Counter() Cell {
	if p == Black {
		return BlackCounter
	}
	return WhiteCounter
}

func (p Player) String() string {
	if p == Black {
		return "B"
	}
	return "W"
}

// ParsePlayer reads a player from the first character of token, e.g. "B", "w" or "White".
func ParsePlayer(token string) (Player, error) {
	if token == "" {
		return Black, fmt.Errorf("%w: empty token", ErrUnknownPlayer)
	}
	switch token[0] {
	case 'B', 'b':
		return Black, nil
	case 'W', 'w':
		return White, nil
	}
	return Black, fmt.Errorf("%w: %q", ErrUnknownPlayer, token)
}

// Owner reports which player holds the cell, ok is false for empty cells.
func (c Cell) Owner() (p Player, ok bool) {
	switch c {
	case BlackCounter:
		return Black, true
	case WhiteCounter:
		return White, true
	}
	return Black, false
}

func (c Cell) String() string {
	switch c {
	case BlackCounter:
		return "B"
	case WhiteCounter:
		return "W"
	}
	return "."
}
