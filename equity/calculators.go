package equity

import (
	"github.com/matadorhq/matador/board"
	"github.com/matadorhq/matador/move"
	"github.com/matadorhq/matador/tile"
)

// ShedCalculator rewards getting rid of expensive tiles: a flat bonus for
// doubles plus a bonus proportional to the tile's pip sum, normalized
// against the [6|6].
type ShedCalculator struct {
	w Weights
}

func NewShedCalculator(w Weights) *ShedCalculator {
	return &ShedCalculator{w: w}
}

func (sc *ShedCalculator) Equity(play *move.Move, b *board.Board, hand tile.Hand) float64 {
	if play.Action() != move.MoveTypePlace {
		return 0
	}
	t := play.Tile()
	eq := sc.w.ShedWeight * float64(t.PipSum()) / float64(tile.MaxPipSum)
	if t.IsDouble() {
		eq += sc.w.DoubleBonus
	}
	return eq
}

func (sc *ShedCalculator) Type() string {
	return "ShedCalculator"
}

// ExposureCalculator looks at the pip the move newly exposes: a linear
// bonus for every remaining hand tile that matches it, and a flat penalty
// when at most one does, since that pip is then a dead end the player may
// not be able to answer later.
type ExposureCalculator struct {
	w Weights
}

func NewExposureCalculator(w Weights) *ExposureCalculator {
	return &ExposureCalculator{w: w}
}

func (ec *ExposureCalculator) Equity(play *move.Move, b *board.Board, hand tile.Hand) float64 {
	if play.Action() != move.MoveTypePlace {
		return 0
	}
	remaining, ok := hand.Without(play.Tile())
	if !ok {
		return 0
	}
	flex := flexibleCount(play, b, remaining)
	eq := ec.w.FlexibilityWeight * float64(flex)
	if flex <= 1 {
		eq -= ec.w.ScarcityPenalty
	}
	return eq
}

func (ec *ExposureCalculator) Type() string {
	return "ExposureCalculator"
}

// flexibleCount counts the remaining tiles matching the pip this move
// exposes. On an empty board the tile exposes both of its ends.
func flexibleCount(play *move.Move, b *board.Board, remaining tile.Hand) int {
	t := play.Tile()
	if b.IsEmpty() {
		n := 0
		for _, held := range remaining {
			if held.Matches(t.L) || held.Matches(t.H) {
				n++
			}
		}
		return n
	}
	exposed := t.OtherEnd(b.End(play.Side()))
	return remaining.MatchCount(exposed)
}

// LookaheadCalculator simulates the placement and counts how many of the
// remaining tiles would still have a legal play against the resulting
// board. Moves that keep options open score higher.
type LookaheadCalculator struct {
	w Weights
}

func NewLookaheadCalculator(w Weights) *LookaheadCalculator {
	return &LookaheadCalculator{w: w}
}

func (lc *LookaheadCalculator) Equity(play *move.Move, b *board.Board, hand tile.Hand) float64 {
	if play.Action() != move.MoveTypePlace {
		return 0
	}
	remaining, ok := hand.Without(play.Tile())
	if !ok {
		return 0
	}
	sim := b.Copy()
	if err := sim.Place(play.Tile(), play.Side()); err != nil {
		return 0
	}
	left, right := sim.Ends()
	playable := 0
	for _, held := range remaining {
		if held.Matches(left) || held.Matches(right) {
			playable++
		}
	}
	return lc.w.LookaheadWeight * float64(playable)
}

func (lc *LookaheadCalculator) Type() string {
	return "LookaheadCalculator"
}
