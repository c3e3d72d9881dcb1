package equity

// Weights holds the tuning constants for the heuristic terms. The defaults
// are hand-tuned; the relative ordering they produce matters more than the
// absolute numbers. Presets can be loaded from YAML strategy files.
type Weights struct {
	// DoubleBonus is a flat bonus for playing a double. Doubles only ever
	// match one pip, so they get harder to place the longer they are held.
	DoubleBonus float64 `yaml:"double_bonus"`
	// ShedWeight scales the pip-sum term. Discarding heavy tiles early
	// keeps the pip count low if the game locks.
	ShedWeight float64 `yaml:"shed_weight"`
	// FlexibilityWeight is the per-tile bonus for each remaining hand tile
	// matching the pip the move newly exposes.
	FlexibilityWeight float64 `yaml:"flexibility_weight"`
	// ScarcityPenalty is the flat penalty for a move that leaves the hand
	// with at most one escape from the pip it exposes.
	ScarcityPenalty float64 `yaml:"scarcity_penalty"`
	// LookaheadWeight is the per-tile bonus for each remaining hand tile
	// still playable against the post-move board.
	LookaheadWeight float64 `yaml:"lookahead_weight"`
	// WinBonus dominates every other term; it is added by the search when
	// a candidate empties the hand.
	WinBonus float64 `yaml:"win_bonus"`
}

// DefaultWeights returns the stock tuning.
func DefaultWeights() Weights {
	return Weights{
		DoubleBonus:       6.0,
		ShedWeight:        4.0,
		FlexibilityWeight: 2.0,
		ScarcityPenalty:   5.0,
		LookaheadWeight:   1.5,
		WinBonus:          1000.0,
	}
}
