package equity

import (
	"github.com/matadorhq/matador/board"
	"github.com/matadorhq/matador/move"
	"github.com/matadorhq/matador/tile"
)

// Calculator is a calculator of equity for a single candidate placement.
// The board is the board before the move; hand is the acting player's full
// hand, still including the candidate tile. Higher is preferred. Each term
// contributes additively and never short-circuits the others.
type Calculator interface {
	Equity(play *move.Move, b *board.Board, hand tile.Hand) float64
	Type() string
}
