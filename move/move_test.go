package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/matadorhq/matador/board"
	"github.com/matadorhq/matador/tile"
)

func TestMoveEqual(t *testing.T) {
	is := is.New(t)
	a := NewPlace(tile.MustNew(2, 5), board.LeftSide)
	b := NewPlace(tile.MustNew(5, 2), board.LeftSide)
	c := NewPlace(tile.MustNew(2, 5), board.RightSide)

	is.True(a.Equal(b)) // reversal does not change identity
	is.True(!a.Equal(c))
	is.True(NewPass().Equal(NewPass()))
	is.True(!a.Equal(NewPass()))
}

func TestMoveEquityIgnoredByEqual(t *testing.T) {
	is := is.New(t)
	a := NewPlace(tile.MustNew(2, 5), board.LeftSide)
	b := NewPlace(tile.MustNew(2, 5), board.LeftSide)
	a.SetEquity(12.5)
	is.Equal(a.Equity(), 12.5)
	is.True(a.Equal(b))
}

func TestShortDescription(t *testing.T) {
	is := is.New(t)
	m := NewPlace(tile.MustNew(2, 5), board.RightSide)
	is.Equal(m.ShortDescription(), "[2|5] right")
	is.Equal(NewPass().ShortDescription(), "(Pass)")
}
