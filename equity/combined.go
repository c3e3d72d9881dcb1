package equity

import (
	"github.com/samber/lo"

	"github.com/matadorhq/matador/board"
	"github.com/matadorhq/matador/move"
	"github.com/matadorhq/matador/tile"
)

// CombinedStaticCalculator rolls the individual heuristic terms into a
// single calculator. It is what the selectors and the lookahead solver
// score candidates with.
type CombinedStaticCalculator struct {
	weights Weights
	calcs   []Calculator
}

// NewCombinedStaticCalculator builds the standard term stack for the given
// weights.
func NewCombinedStaticCalculator(w Weights) *CombinedStaticCalculator {
	return &CombinedStaticCalculator{
		weights: w,
		calcs: []Calculator{
			NewShedCalculator(w),
			NewExposureCalculator(w),
			NewLookaheadCalculator(w),
		},
	}
}

func (csc *CombinedStaticCalculator) Equity(play *move.Move, b *board.Board, hand tile.Hand) float64 {
	return lo.SumBy(csc.calcs, func(c Calculator) float64 {
		return c.Equity(play, b, hand)
	})
}

func (csc *CombinedStaticCalculator) Type() string {
	return "CombinedStaticCalculator"
}

// Weights returns the weights this calculator was built with.
func (csc *CombinedStaticCalculator) Weights() Weights {
	return csc.weights
}

// AssignEquities scores every play in place.
func (csc *CombinedStaticCalculator) AssignEquities(plays []*move.Move, b *board.Board, hand tile.Hand) {
	for _, m := range plays {
		m.SetEquity(csc.Equity(m, b, hand))
	}
}
