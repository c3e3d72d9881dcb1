// Package player implements the AI opponent: three difficulty tiers over
// the shared move generator and equity calculators.
package player

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/matadorhq/matador/board"
	"github.com/matadorhq/matador/config"
	"github.com/matadorhq/matador/equity"
	"github.com/matadorhq/matador/move"
	"github.com/matadorhq/matador/movegen"
	"github.com/matadorhq/matador/search"
	"github.com/matadorhq/matador/tile"
)

// Difficulty selects a move-selection strategy. It changes only on an
// explicit SetDifficulty call, never from game state.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// ParseDifficulty reads a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// AIPlayer chooses placements for the computer side. It is a pure function
// of (board, hand, settings); it holds no game state of its own.
type AIPlayer struct {
	cfg        *config.Config
	calc       *equity.CombinedStaticCalculator
	solver     *search.Solver
	difficulty Difficulty

	thinkDelay time.Duration
}

// New creates an AI player at the given difficulty, loading the configured
// weight preset.
func New(cfg *config.Config, d Difficulty) *AIPlayer {
	calc := equity.NewCombinedStaticCalculator(equity.LoadWeights(cfg))
	return &AIPlayer{
		cfg:        cfg,
		calc:       calc,
		solver:     search.NewSolver(calc, cfg),
		difficulty: d,
		thinkDelay: cfg.ThinkDelayBase,
	}
}

// SetDifficulty switches the selection strategy.
func (p *AIPlayer) SetDifficulty(d Difficulty) {
	p.difficulty = d
}

// Difficulty returns the current selection strategy.
func (p *AIPlayer) Difficulty() Difficulty {
	return p.difficulty
}

// Calculator exposes the player's equity calculator, mostly for hints.
func (p *AIPlayer) Calculator() *equity.CombinedStaticCalculator {
	return p.calc
}

// SelectMove picks a placement for hand against b, or nil when the hand
// has no legal move; the caller then handles draw-or-pass. The call blocks
// for a short jittered deliberation delay first, which is cancellable
// through the context.
func (p *AIPlayer) SelectMove(ctx context.Context, b *board.Board, hand tile.Hand,
	boneyardRemaining int) (*move.Move, error) {

	if err := p.think(ctx); err != nil {
		return nil, err
	}

	var chosen *move.Move
	switch p.difficulty {
	case Easy:
		chosen = p.selectRandom(b, hand)
	case Medium:
		chosen = p.selectGreedy(b, hand)
	case Hard:
		chosen = p.solver.Solve(ctx, b, hand, boneyardRemaining)
	default:
		chosen = p.selectGreedy(b, hand)
	}
	if chosen != nil {
		log.Debug().
			Str("difficulty", p.difficulty.String()).
			Str("play", chosen.ShortDescription()).
			Float64("equity", chosen.Equity()).
			Msg("selected")
	}
	return chosen, nil
}

// think waits out the deliberation delay, jittered to between half and one
// and a half times the base. It returns early if the context is cancelled.
func (p *AIPlayer) think(ctx context.Context) error {
	if p.thinkDelay <= 0 {
		return nil
	}
	delay := p.thinkDelay/2 + time.Duration(frand.Uint64n(uint64(p.thinkDelay)))
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// selectRandom is the easy tier: a uniform pick over the legal candidates.
// No evaluator involved.
func (p *AIPlayer) selectRandom(b *board.Board, hand tile.Hand) *move.Move {
	plays := movegen.GenAll(b, hand)
	if len(plays) == 0 {
		return nil
	}
	return plays[frand.Intn(len(plays))]
}

// selectGreedy is the medium tier: best immediate equity, first found on a
// tie. With nothing to evaluate it degrades to the easy tier's behavior.
func (p *AIPlayer) selectGreedy(b *board.Board, hand tile.Hand) *move.Move {
	plays := movegen.GenAll(b, hand)
	if len(plays) == 0 {
		return p.selectRandom(b, hand)
	}
	p.calc.AssignEquities(plays, b, hand)
	var best *move.Move
	for _, m := range plays {
		if best == nil || m.Equity() > best.Equity() {
			best = m
		}
	}
	return best
}
