package move

import (
	"fmt"

	"github.com/matadorhq/matador/board"
	"github.com/matadorhq/matador/tile"
)

// MoveType is a type of move; a placement or a pass.
type MoveType uint8

const (
	MoveTypePlace MoveType = iota
	MoveTypePass
)

// A Move is a candidate play: a tile and the side of the chain to place it
// on. A double, or a tile that matches both open ends, shows up as two
// separate moves, one per side. Equity is assigned by the calculators and
// is not part of the move's identity.
type Move struct {
	action MoveType
	t      tile.Tile
	side   board.Side
	equity float64
}

// NewPlace creates a placement move.
func NewPlace(t tile.Tile, s board.Side) *Move {
	return &Move{action: MoveTypePlace, t: t, side: s}
}

// NewPass creates a pass move, used by the game layer when a player has no
// legal placement and the boneyard is empty.
func NewPass() *Move {
	return &Move{action: MoveTypePass}
}

// Action returns the move type.
func (m *Move) Action() MoveType {
	return m.action
}

// Tile returns the tile being placed. Only meaningful for placements.
func (m *Move) Tile() tile.Tile {
	return m.t
}

// Side returns which open end the tile goes on.
func (m *Move) Side() board.Side {
	return m.side
}

// Equity is the heuristic value assigned to this move.
func (m *Move) Equity() float64 {
	return m.equity
}

// SetEquity sets the heuristic value for this move.
func (m *Move) SetEquity(e float64) {
	m.equity = e
}

// Equal compares moves by tile and side, ignoring equity.
func (m *Move) Equal(other *Move) bool {
	if m.action != other.action {
		return false
	}
	if m.action == MoveTypePass {
		return true
	}
	return m.t.Equal(other.t) && m.side == other.side
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	if m.action == MoveTypePass {
		return fmt.Sprintf("<action: pass equity: %.3f>", m.equity)
	}
	return fmt.Sprintf("<action: place tile: %v side: %v equity: %.3f>",
		m.t, m.side, m.equity)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	if m.action == MoveTypePass {
		return "(Pass)"
	}
	return fmt.Sprintf("%v %v", m.t, m.side)
}
