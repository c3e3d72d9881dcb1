// Package search implements the hard-difficulty move selector: a
// depth-bounded lookahead over the acting player's own future options. The
// opponent's hidden hand is not modeled; each level deepens the acting
// player's remaining plays only.
package search

import (
	"context"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/matadorhq/matador/board"
	"github.com/matadorhq/matador/config"
	"github.com/matadorhq/matador/equity"
	"github.com/matadorhq/matador/move"
	"github.com/matadorhq/matador/movegen"
	"github.com/matadorhq/matador/tile"
)

const (
	// FutureDiscount is the fraction of the best deeper score folded into
	// a node's value. Full weight would let speculative continuations
	// drown out the immediate position.
	FutureDiscount = 0.5

	// ShallowDepth applies while the boneyard still holds enough tiles
	// that future draws can reshape the hand; DeepDepth applies once it
	// runs low.
	ShallowDepth = 2
	DeepDepth    = 3
)

// Solver picks the best placement within a wall-clock budget. The budget is
// checked before every candidate expansion and every recursive call, so an
// expired search still returns the best candidate found so far, never
// nothing.
type Solver struct {
	calc *equity.CombinedStaticCalculator

	budget            time.Duration
	branchingCap      int
	boneyardThreshold int

	nodes atomic.Uint64
}

// NewSolver creates a solver around the given calculator and settings.
func NewSolver(calc *equity.CombinedStaticCalculator, cfg *config.Config) *Solver {
	return &Solver{
		calc:              calc,
		budget:            cfg.SearchBudget,
		branchingCap:      cfg.BranchingCap,
		boneyardThreshold: cfg.BoneyardDepthThreshold,
	}
}

// depthFor picks the search depth from the boneyard size. With few draws
// left the hand is stable, so a deeper look pays off.
func (s *Solver) depthFor(boneyardRemaining int) int {
	if boneyardRemaining > s.boneyardThreshold {
		return ShallowDepth
	}
	return DeepDepth
}

// Solve returns the best placement for hand against b, or nil when the
// hand has no legal move. The returned move is always a member of the
// legal set, even when the search runs out of time.
func (s *Solver) Solve(ctx context.Context, b *board.Board, hand tile.Hand, boneyardRemaining int) *move.Move {
	plays := movegen.GenAll(b, hand)
	if len(plays) == 0 {
		return nil
	}

	depth := s.depthFor(boneyardRemaining)
	deadline := time.Now().Add(s.budget)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	s.nodes.Store(0)
	started := time.Now()

	s.calc.AssignEquities(plays, b, hand)

	// Seed with the first candidate so a timed-out search still answers
	// with a legal play.
	best := plays[0]
	bestScore := best.Equity()
	for i, play := range plays {
		if s.expired(ctx, deadline) {
			break
		}
		score := s.scorePlay(ctx, play, b, hand, depth, deadline)
		if i == 0 || score > bestScore {
			best = play
			bestScore = score
		}
	}

	log.Debug().
		Uint64("nodes", s.nodes.Load()).
		Int("depth", depth).
		Dur("elapsed", time.Since(started)).
		Float64("score", bestScore).
		Str("play", best.ShortDescription()).
		Msg("search-done")
	return best
}

func (s *Solver) expired(ctx context.Context, deadline time.Time) bool {
	if ctx.Err() != nil {
		return true
	}
	return !time.Now().Before(deadline)
}

// scorePlay values one root candidate: its static equity, the win bonus if
// it goes out, and a discounted share of the best continuation.
func (s *Solver) scorePlay(ctx context.Context, play *move.Move, b *board.Board,
	hand tile.Hand, depth int, deadline time.Time) float64 {

	s.nodes.Add(1)
	score := play.Equity()
	if len(hand) == 1 {
		// This play empties the hand. Nothing downstream can beat it.
		return score + s.calc.Weights().WinBonus
	}
	sim := b.Copy()
	if err := sim.Place(play.Tile(), play.Side()); err != nil {
		// Generated moves are legal by construction.
		log.Error().Err(err).Str("play", play.ShortDescription()).
			Msg("unplayable-candidate")
		return math.Inf(-1)
	}
	remaining, _ := hand.Without(play.Tile())
	score += FutureDiscount * s.deepen(ctx, sim, remaining, depth-1, deadline)
	return score
}

// deepen returns the best achievable score over the player's own next
// plays, down to the given depth. Only the top few candidates by static
// equity expand, to bound the branching factor.
func (s *Solver) deepen(ctx context.Context, b *board.Board, hand tile.Hand,
	depth int, deadline time.Time) float64 {

	if depth <= 0 || len(hand) == 0 || s.expired(ctx, deadline) {
		return 0
	}
	plays := movegen.GenAll(b, hand)
	if len(plays) == 0 {
		return 0
	}
	s.calc.AssignEquities(plays, b, hand)
	sort.SliceStable(plays, func(i, j int) bool {
		return plays[i].Equity() > plays[j].Equity()
	})
	if len(plays) > s.branchingCap {
		plays = plays[:s.branchingCap]
	}

	best := 0.0
	for i, play := range plays {
		if i > 0 && s.expired(ctx, deadline) {
			break
		}
		score := s.scorePlay(ctx, play, b, hand, depth, deadline)
		if i == 0 || score > best {
			best = score
		}
	}
	return best
}
