package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandWithout(t *testing.T) {
	h := NewHand([]Tile{MustNew(1, 1), MustNew(2, 5), MustNew(0, 3)})
	nh, ok := h.Without(MustNew(5, 2)) // reversed form still removes
	assert.True(t, ok)
	assert.Len(t, nh, 2)
	// The receiver is untouched.
	assert.Len(t, h, 3)
	assert.True(t, h.Contains(MustNew(2, 5)))
	assert.False(t, nh.Contains(MustNew(2, 5)))

	_, ok = h.Without(MustNew(6, 6))
	assert.False(t, ok)
}

func TestHandAdd(t *testing.T) {
	h := NewHand([]Tile{MustNew(1, 1)})
	nh := h.Add(MustNew(4, 6))
	assert.Len(t, h, 1)
	assert.Len(t, nh, 2)
	assert.True(t, nh.Contains(MustNew(4, 6)))
}

func TestHandPipTotal(t *testing.T) {
	h := NewHand([]Tile{MustNew(1, 1), MustNew(2, 5), MustNew(0, 3)})
	assert.Equal(t, 12, h.PipTotal())
	assert.Equal(t, 0, Hand{}.PipTotal())
}

func TestHandMatchCount(t *testing.T) {
	h := NewHand([]Tile{MustNew(1, 1), MustNew(1, 5), MustNew(0, 3)})
	assert.Equal(t, 2, h.MatchCount(1))
	assert.Equal(t, 1, h.MatchCount(3))
	assert.Equal(t, 0, h.MatchCount(6))
}

func TestBoneyardDrawsWholeSet(t *testing.T) {
	b := NewBoneyard()
	assert.Equal(t, SetSize, b.TilesRemaining())

	seen := map[Tile]bool{}
	for i := 0; i < SetSize; i++ {
		tl, err := b.Draw()
		assert.NoError(t, err)
		assert.False(t, seen[tl], "tile %v drawn twice", tl)
		seen[tl] = true
	}
	assert.Equal(t, 0, b.TilesRemaining())
	_, err := b.Draw()
	assert.ErrorIs(t, err, ErrEmptyBoneyard)
}

func TestBoneyardCopyIsIndependent(t *testing.T) {
	b := NewBoneyard()
	cp := b.Copy()
	for i := 0; i < 5; i++ {
		_, err := cp.Draw()
		assert.NoError(t, err)
	}
	assert.Equal(t, SetSize, b.TilesRemaining())
	assert.Equal(t, SetSize-5, cp.TilesRemaining())
}
