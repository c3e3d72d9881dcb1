package search

import (
	"context"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/matadorhq/matador/board"
	"github.com/matadorhq/matador/config"
	"github.com/matadorhq/matador/equity"
	"github.com/matadorhq/matador/move"
	"github.com/matadorhq/matador/movegen"
	"github.com/matadorhq/matador/tile"
)

func testSolver() *Solver {
	cfg := config.DefaultConfig()
	return NewSolver(equity.NewCombinedStaticCalculator(equity.DefaultWeights()), cfg)
}

func containsMove(plays []*move.Move, m *move.Move) bool {
	for _, p := range plays {
		if p.Equal(m) {
			return true
		}
	}
	return false
}

func TestSolveReturnsLegalMove(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	is.NoErr(b.Place(tile.MustNew(2, 5), board.LeftSide))

	hand := tile.NewHand([]tile.Tile{
		tile.MustNew(2, 2), tile.MustNew(5, 3), tile.MustNew(0, 1), tile.MustNew(6, 2),
	})
	m := testSolver().Solve(context.Background(), b, hand, 10)
	is.True(m != nil)
	is.True(containsMove(movegen.GenAll(b, hand), m))
}

func TestSolveNilWhenBlocked(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	is.NoErr(b.Place(tile.MustNew(2, 5), board.LeftSide))

	hand := tile.NewHand([]tile.Tile{tile.MustNew(0, 1), tile.MustNew(6, 3)})
	m := testSolver().Solve(context.Background(), b, hand, 10)
	is.True(m == nil)
}

func TestSolveZeroBudgetStillAnswers(t *testing.T) {
	// A fully expired budget must still yield a legal move, never nothing.
	cfg := config.DefaultConfig()
	cfg.SearchBudget = 0
	s := NewSolver(equity.NewCombinedStaticCalculator(equity.DefaultWeights()), cfg)

	b := board.NewBoard()
	assert.NoError(t, b.Place(tile.MustNew(2, 5), board.LeftSide))
	hand := tile.NewHand([]tile.Tile{tile.MustNew(2, 2), tile.MustNew(5, 3)})

	m := s.Solve(context.Background(), b, hand, 10)
	assert.NotNil(t, m)
	assert.True(t, containsMove(movegen.GenAll(b, hand), m))
}

func TestSolveCancelledContextStillAnswers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := board.NewBoard()
	assert.NoError(t, b.Place(tile.MustNew(2, 5), board.LeftSide))
	hand := tile.NewHand([]tile.Tile{tile.MustNew(2, 2), tile.MustNew(5, 3)})

	m := testSolver().Solve(ctx, b, hand, 10)
	assert.NotNil(t, m)
	assert.True(t, containsMove(movegen.GenAll(b, hand), m))
}

func TestWinBonusAtRoot(t *testing.T) {
	// A one-tile hand goes out with any legal play; its score must carry
	// the win bonus so nothing downstream could ever outrank it.
	s := testSolver()
	b := board.NewBoard()
	assert.NoError(t, b.Place(tile.MustNew(2, 5), board.LeftSide))

	hand := tile.NewHand([]tile.Tile{tile.MustNew(5, 3)})
	play := move.NewPlace(tile.MustNew(5, 3), board.RightSide)
	s.calc.AssignEquities([]*move.Move{play}, b, hand)

	score := s.scorePlay(context.Background(), play, b, hand, 2,
		time.Now().Add(time.Second))
	assert.Greater(t, score, s.calc.Weights().WinBonus/2)
}

func TestSolvePrefersWinningLine(t *testing.T) {
	// Board ends 2/5. [2|2] keeps the 2 end open so the remaining [2|4]
	// goes out next turn; leading with [2|4] strands the [2|2]. The
	// lookahead must find the winning order.
	is := is.New(t)
	b := board.NewBoard()
	is.NoErr(b.Place(tile.MustNew(2, 5), board.LeftSide))

	hand := tile.NewHand([]tile.Tile{tile.MustNew(2, 2), tile.MustNew(2, 4)})
	m := testSolver().Solve(context.Background(), b, hand, 2)
	is.True(m != nil)
	is.Equal(m.Tile(), tile.MustNew(2, 2))
}

func TestDepthFollowsBoneyard(t *testing.T) {
	is := is.New(t)
	s := testSolver()
	// Stock threshold is 4: deeper search once the pile runs low.
	is.Equal(s.depthFor(10), ShallowDepth)
	is.Equal(s.depthFor(5), ShallowDepth)
	is.Equal(s.depthFor(4), DeepDepth)
	is.Equal(s.depthFor(0), DeepDepth)
}

func TestSolveDoesNotMutateInputs(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	is.NoErr(b.Place(tile.MustNew(2, 5), board.LeftSide))
	before := b.String()

	hand := tile.NewHand([]tile.Tile{
		tile.MustNew(2, 2), tile.MustNew(5, 3), tile.MustNew(2, 6),
	})
	_ = testSolver().Solve(context.Background(), b, hand, 3)
	is.Equal(b.String(), before)
	is.Equal(len(hand), 3)
}
