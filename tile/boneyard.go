package tile

import (
	"errors"

	"lukechampine.com/frand"
)

// ErrEmptyBoneyard is returned when drawing from an empty boneyard.
var ErrEmptyBoneyard = errors.New("boneyard is empty")

// A Boneyard is the face-down draw pile. Together with the two hands and
// the board it partitions the 28-tile set.
type Boneyard struct {
	tiles []Tile
	rng   *frand.RNG
}

// NewBoneyard builds a shuffled boneyard holding the full double-six set.
func NewBoneyard() *Boneyard {
	b := &Boneyard{
		tiles: FullSet(),
		rng:   frand.New(),
	}
	b.shuffle()
	return b
}

func (b *Boneyard) shuffle() {
	b.rng.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw removes and returns one tile from the pile.
func (b *Boneyard) Draw() (Tile, error) {
	if len(b.tiles) == 0 {
		return Tile{}, ErrEmptyBoneyard
	}
	t := b.tiles[len(b.tiles)-1]
	b.tiles = b.tiles[:len(b.tiles)-1]
	return t, nil
}

// DrawHand draws a full starting hand.
func (b *Boneyard) DrawHand() (Hand, error) {
	h := make(Hand, 0, HandSize)
	for i := 0; i < HandSize; i++ {
		t, err := b.Draw()
		if err != nil {
			return nil, err
		}
		h = append(h, t)
	}
	return h, nil
}

// TilesRemaining is the number of undrawn tiles.
func (b *Boneyard) TilesRemaining() int {
	return len(b.tiles)
}

// Copy returns a deep copy of the boneyard. The copy gets its own RNG so
// simulated draws do not disturb the live pile's sequence.
func (b *Boneyard) Copy() *Boneyard {
	nb := &Boneyard{
		tiles: make([]Tile, len(b.tiles)),
		rng:   frand.New(),
	}
	copy(nb.tiles, b.tiles)
	return nb
}
