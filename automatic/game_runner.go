// Package automatic plays bot-vs-bot games, for comparing difficulty tiers
// and sanity-checking the engine over many games.
package automatic

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/matadorhq/matador/ai/player"
	"github.com/matadorhq/matador/config"
	"github.com/matadorhq/matador/game"
)

// GameRunner is the master struct for the automatic game logic.
type GameRunner struct {
	cfg       *config.Config
	aiplayers [game.NumPlayers]*player.AIPlayer
}

// Result is the outcome of one automatic game.
type Result struct {
	// Winner is 0 or 1, or -1 for a drawn locked game.
	Winner int
	// PipDiff is player 0's final pip total minus player 1's; negative
	// means player 0 finished lighter.
	PipDiff float64
	Turns   int
}

// NewGameRunner instantiates a runner for the two given difficulties. The
// deliberation delay is dropped; self-play has no UI to pace.
func NewGameRunner(cfg *config.Config, d0, d1 player.Difficulty) *GameRunner {
	selfplayCfg := *cfg
	selfplayCfg.ThinkDelayBase = 0
	return &GameRunner{
		cfg: &selfplayCfg,
		aiplayers: [game.NumPlayers]*player.AIPlayer{
			player.New(&selfplayCfg, d0),
			player.New(&selfplayCfg, d1),
		},
	}
}

// PlayGame runs a single game to completion and reports the outcome.
func (r *GameRunner) PlayGame(ctx context.Context) (*Result, error) {
	g, err := game.NewGame([game.NumPlayers]string{
		"bot-" + r.aiplayers[0].Difficulty().String(),
		"bot-" + r.aiplayers[1].Difficulty().String(),
	})
	if err != nil {
		return nil, err
	}

	for g.Playing() == game.StatePlaying {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		onturn := g.PlayerOnTurn()
		bot := r.aiplayers[onturn]

		// Tag the selection with the game it was issued for; a result for
		// a different game is discarded, not applied.
		gid := g.ID()
		m, err := bot.SelectMove(ctx, g.Board(), g.HandOf(onturn), g.BoneyardRemaining())
		if err != nil {
			return nil, err
		}
		if gid != g.ID() {
			log.Warn().Str("gid", gid).Msg("stale-selection-discarded")
			continue
		}
		if m != nil {
			if err := g.PlayMove(onturn, m); err != nil {
				return nil, fmt.Errorf("bot played an illegal move %s: %w",
					m.ShortDescription(), err)
			}
			continue
		}
		// No legal move: draw until one shows up, then pass if the pile
		// runs dry.
		if g.BoneyardRemaining() > 0 {
			if _, err := g.Draw(onturn); err != nil {
				return nil, err
			}
			continue
		}
		if err := g.Pass(onturn); err != nil {
			return nil, err
		}
	}

	return &Result{
		Winner:  g.Winner(),
		PipDiff: float64(g.HandOf(0).PipTotal() - g.HandOf(1).PipTotal()),
		Turns:   g.TurnNum(),
	}, nil
}

// ErrNoGames is returned when a series is requested with no games.
var ErrNoGames = errors.New("no games requested")
