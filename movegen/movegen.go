// Package movegen enumerates legal placements for a hand against a board.
// Move generation is pure; nothing here mutates the board or the hand.
package movegen

import (
	"github.com/matadorhq/matador/board"
	"github.com/matadorhq/matador/move"
	"github.com/matadorhq/matador/tile"
)

// GenAll returns every legal (tile, side) candidate for the given hand, in
// hand order, left side before right. On an empty board every tile is legal
// exactly once, on the canonical left side. A tile matching both open ends
// yields two independent candidates.
func GenAll(b *board.Board, hand tile.Hand) []*move.Move {
	plays := make([]*move.Move, 0, len(hand)*2)
	if b.IsEmpty() {
		for _, t := range hand {
			plays = append(plays, move.NewPlace(t, board.LeftSide))
		}
		return plays
	}
	left, right := b.Ends()
	for _, t := range hand {
		if t.Matches(left) {
			plays = append(plays, move.NewPlace(t, board.LeftSide))
		}
		if t.Matches(right) {
			plays = append(plays, move.NewPlace(t, board.RightSide))
		}
	}
	return plays
}

// Sides returns the set of legal sides for each playable tile in the hand.
// Tiles with no legal side are absent from the map.
func Sides(b *board.Board, hand tile.Hand) map[tile.Tile][]board.Side {
	out := make(map[tile.Tile][]board.Side)
	for _, m := range GenAll(b, hand) {
		out[m.Tile()] = append(out[m.Tile()], m.Side())
	}
	return out
}

// Blocked reports whether the hand has no legal placement at all.
func Blocked(b *board.Board, hand tile.Hand) bool {
	if b.IsEmpty() {
		return len(hand) == 0
	}
	left, right := b.Ends()
	for _, t := range hand {
		if t.Matches(left) || t.Matches(right) {
			return false
		}
	}
	return true
}

// Locked reports whether the game can make no further progress: both hands
// blocked and nothing left to draw. This is a pure function of its inputs
// and is recomputed after every state change rather than cached.
func Locked(b *board.Board, hand1, hand2 tile.Hand, boneyardRemaining int) bool {
	if boneyardRemaining > 0 {
		return false
	}
	return Blocked(b, hand1) && Blocked(b, hand2)
}
