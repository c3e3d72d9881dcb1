package automatic

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/matadorhq/matador/ai/player"
	"github.com/matadorhq/matador/config"
	"github.com/matadorhq/matador/game"
)

// Summary aggregates a series of automatic games.
type Summary struct {
	Games       int
	Wins        [game.NumPlayers]int
	Draws       int
	MeanPipDiff float64
	StdPipDiff  float64
	MeanTurns   float64
}

func (s *Summary) String() string {
	return fmt.Sprintf(
		"games: %d, p0 wins: %d, p1 wins: %d, draws: %d, pip diff: %.2f±%.2f, turns: %.1f",
		s.Games, s.Wins[0], s.Wins[1], s.Draws, s.MeanPipDiff, s.StdPipDiff,
		s.MeanTurns)
}

// CompVsComp plays n games between the two difficulties, spread over the
// given number of workers, and aggregates the outcomes.
func CompVsComp(ctx context.Context, cfg *config.Config, d0, d1 player.Difficulty,
	n, workers int) (*Summary, error) {

	if n <= 0 {
		return nil, ErrNoGames
	}
	if workers <= 0 {
		workers = 1
	}

	var mu sync.Mutex
	results := make([]*Result, 0, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			runner := NewGameRunner(cfg, d0, d1)
			res, err := runner.PlayGame(gctx)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{Games: len(results)}
	pipDiffs := make([]float64, 0, len(results))
	turns := make([]float64, 0, len(results))
	for _, res := range results {
		if res.Winner >= 0 {
			summary.Wins[res.Winner]++
		} else {
			summary.Draws++
		}
		pipDiffs = append(pipDiffs, res.PipDiff)
		turns = append(turns, float64(res.Turns))
	}
	summary.MeanPipDiff, summary.StdPipDiff = stat.MeanStdDev(pipDiffs, nil)
	summary.MeanTurns = stat.Mean(turns, nil)

	log.Info().
		Str("d0", d0.String()).
		Str("d1", d1.String()).
		Str("summary", summary.String()).
		Msg("series-done")
	return summary, nil
}
