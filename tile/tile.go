package tile

import (
	"fmt"
	"strings"
)

// A Pip is the number of spots on one end of a domino, 0 through 6 in a
// double-six set.
type Pip uint8

const (
	// MinPip and MaxPip bound a legal pip value.
	MinPip Pip = 0
	MaxPip Pip = 6
	// SetSize is the number of tiles in a double-six set: the 28 unordered
	// pairs (i,j) with 0 <= i <= j <= 6.
	SetSize = 28
	// MaxPipSum is the pip sum of the heaviest tile, the [6|6].
	MaxPipSum = 12
	// HandSize is the number of tiles dealt to each player.
	HandSize = 7
)

// A Tile is a single domino bone. L and H are its two ends; identity is
// unordered, so [2|5] and [5|2] are the same tile. Orientation on the board
// is handled by the board, not here.
type Tile struct {
	L, H Pip
}

// New creates a tile, rejecting out-of-range pips. Malformed pips are a
// programming error and are never clamped.
func New(l, h int) (Tile, error) {
	if l < int(MinPip) || l > int(MaxPip) {
		return Tile{}, fmt.Errorf("pip out of range: %d", l)
	}
	if h < int(MinPip) || h > int(MaxPip) {
		return Tile{}, fmt.Errorf("pip out of range: %d", h)
	}
	return Tile{L: Pip(l), H: Pip(h)}, nil
}

// MustNew is New for statically known-good pips; it panics on bad input.
func MustNew(l, h int) Tile {
	t, err := New(l, h)
	if err != nil {
		panic(err)
	}
	return t
}

// FullSet returns all 28 tiles of the double-six set, low end first.
func FullSet() []Tile {
	set := make([]Tile, 0, SetSize)
	for i := MinPip; i <= MaxPip; i++ {
		for j := i; j <= MaxPip; j++ {
			set = append(set, Tile{L: i, H: j})
		}
	}
	return set
}

// PipSum is the total number of spots on the tile.
func (t Tile) PipSum() int {
	return int(t.L) + int(t.H)
}

// IsDouble returns true if both ends show the same pip.
func (t Tile) IsDouble() bool {
	return t.L == t.H
}

// Matches returns true if either end of the tile equals v.
func (t Tile) Matches(v Pip) bool {
	return t.L == v || t.H == v
}

// Reversed returns the tile with its ends swapped. Same bone, flipped.
func (t Tile) Reversed() Tile {
	return Tile{L: t.H, H: t.L}
}

// OtherEnd returns the pip opposite v. For a double both ends are v.
// It assumes t.Matches(v).
func (t Tile) OtherEnd(v Pip) Pip {
	if t.L == v {
		return t.H
	}
	return t.L
}

// Equal compares tiles up to reversal.
func (t Tile) Equal(other Tile) bool {
	return t == other || t == other.Reversed()
}

func (t Tile) String() string {
	return fmt.Sprintf("[%d|%d]", t.L, t.H)
}

// Parse reads a tile from a string of the form "3-5", "3|5" or "[3|5]".
func Parse(s string) (Tile, error) {
	s = strings.Trim(s, "[]")
	sep := "-"
	if strings.ContainsRune(s, '|') {
		sep = "|"
	}
	parts := strings.SplitN(s, sep, 2)
	if len(parts) != 2 {
		return Tile{}, fmt.Errorf("cannot parse tile from %q", s)
	}
	var l, h int
	if _, err := fmt.Sscanf(parts[0]+" "+parts[1], "%d %d", &l, &h); err != nil {
		return Tile{}, fmt.Errorf("cannot parse tile from %q: %w", s, err)
	}
	return New(l, h)
}
