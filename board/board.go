package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matadorhq/matador/tile"
)

// A Side is one of the two ends of the chain a tile can be placed on.
type Side uint8

const (
	LeftSide Side = iota
	RightSide
)

func (s Side) String() string {
	if s == LeftSide {
		return "left"
	}
	return "right"
}

// ErrIllegalPlacement is returned when a tile does not match the open end
// it is being placed against. It is distinct from having no legal moves at
// all; callers that get this error passed a move that was never legal.
var ErrIllegalPlacement = errors.New("tile does not match the open end")

// A Board is the linear chain of played tiles. Placed tiles are stored in
// chain order, left to right, already oriented so that adjacent ends touch
// on equal pips. leftEnd and rightEnd mirror the outward-facing pips of the
// boundary tiles; they are meaningless while the board is empty.
type Board struct {
	placed   []tile.Tile
	leftEnd  tile.Pip
	rightEnd tile.Pip
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{placed: make([]tile.Tile, 0, tile.SetSize)}
}

// IsEmpty returns true if no tile has been played yet.
func (b *Board) IsEmpty() bool {
	return len(b.placed) == 0
}

// TilesPlayed is the number of tiles on the chain.
func (b *Board) TilesPlayed() int {
	return len(b.placed)
}

// End returns the open pip on the given side. Only valid on a non-empty
// board.
func (b *Board) End(s Side) tile.Pip {
	if s == LeftSide {
		return b.leftEnd
	}
	return b.rightEnd
}

// Ends returns both open pips.
func (b *Board) Ends() (left, right tile.Pip) {
	return b.leftEnd, b.rightEnd
}

// CanPlace reports whether t legally fits on side s. Any tile fits on an
// empty board.
func (b *Board) CanPlace(t tile.Tile, s Side) bool {
	if b.IsEmpty() {
		return true
	}
	return t.Matches(b.End(s))
}

// Place puts t on side s, flipping it as needed so the matching pip faces
// the chain. The operation is all-or-nothing: on ErrIllegalPlacement the
// board is untouched.
func (b *Board) Place(t tile.Tile, s Side) error {
	if b.IsEmpty() {
		b.placed = append(b.placed, t)
		b.leftEnd = t.L
		b.rightEnd = t.H
		return nil
	}
	end := b.End(s)
	if !t.Matches(end) {
		return ErrIllegalPlacement
	}
	newEnd := t.OtherEnd(end)
	if s == LeftSide {
		// The chain reads left to right, so the matching pip must be the
		// tile's H end when prepending.
		if t.H != end {
			t = t.Reversed()
		}
		b.placed = append(b.placed, tile.Tile{})
		copy(b.placed[1:], b.placed)
		b.placed[0] = t
		b.leftEnd = newEnd
	} else {
		if t.L != end {
			t = t.Reversed()
		}
		b.placed = append(b.placed, t)
		b.rightEnd = newEnd
	}
	return nil
}

// Applied returns a new board with t placed on side s, leaving the
// receiver untouched. It fails with ErrIllegalPlacement exactly when Place
// would.
func (b *Board) Applied(t tile.Tile, s Side) (*Board, error) {
	nb := b.Copy()
	if err := nb.Place(t, s); err != nil {
		return nil, err
	}
	return nb, nil
}

// Placed returns the chain in order. The returned slice is a copy.
func (b *Board) Placed() []tile.Tile {
	out := make([]tile.Tile, len(b.placed))
	copy(out, b.placed)
	return out
}

// Copy returns a fully independent deep copy, safe for simulated
// placements.
func (b *Board) Copy() *Board {
	nb := &Board{
		placed:   make([]tile.Tile, len(b.placed), cap(b.placed)),
		leftEnd:  b.leftEnd,
		rightEnd: b.rightEnd,
	}
	copy(nb.placed, b.placed)
	return nb
}

// CopyFrom overwrites this board with the contents of other.
func (b *Board) CopyFrom(other *Board) {
	b.placed = b.placed[:0]
	b.placed = append(b.placed, other.placed...)
	b.leftEnd = other.leftEnd
	b.rightEnd = other.rightEnd
}

func (b *Board) String() string {
	if b.IsEmpty() {
		return "(empty board)"
	}
	var sb strings.Builder
	for i, t := range b.placed {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	return fmt.Sprintf("%s  (ends %d/%d)", sb.String(), b.leftEnd, b.rightEnd)
}
