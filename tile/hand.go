package tile

import (
	"sort"
	"strings"
)

// A Hand is the unordered set of tiles a player is holding. The zero value
// is an empty hand.
type Hand []Tile

// NewHand copies the given tiles into a hand.
func NewHand(tiles []Tile) Hand {
	h := make(Hand, len(tiles))
	copy(h, tiles)
	return h
}

// Contains reports whether the hand holds t (up to reversal).
func (h Hand) Contains(t Tile) bool {
	for _, held := range h {
		if held.Equal(t) {
			return true
		}
	}
	return false
}

// Add returns a new hand with t appended. The receiver is not modified.
func (h Hand) Add(t Tile) Hand {
	nh := make(Hand, len(h), len(h)+1)
	copy(nh, h)
	return append(nh, t)
}

// Without returns a new hand with the first occurrence of t removed, and
// whether t was found. The receiver is not modified; simulation code relies
// on that.
func (h Hand) Without(t Tile) (Hand, bool) {
	for i, held := range h {
		if held.Equal(t) {
			nh := make(Hand, 0, len(h)-1)
			nh = append(nh, h[:i]...)
			nh = append(nh, h[i+1:]...)
			return nh, true
		}
	}
	return h, false
}

// PipTotal is the sum of all pips in the hand, the count scored against a
// player at the end of a blocked game.
func (h Hand) PipTotal() int {
	total := 0
	for _, t := range h {
		total += t.PipSum()
	}
	return total
}

// MatchCount returns how many tiles in the hand match pip v.
func (h Hand) MatchCount(v Pip) int {
	n := 0
	for _, t := range h {
		if t.Matches(v) {
			n++
		}
	}
	return n
}

// Copy returns a deep copy of the hand.
func (h Hand) Copy() Hand {
	nh := make(Hand, len(h))
	copy(nh, h)
	return nh
}

func (h Hand) String() string {
	strs := make([]string, len(h))
	for i, t := range h {
		strs[i] = t.String()
	}
	sort.Strings(strs)
	return strings.Join(strs, " ")
}
