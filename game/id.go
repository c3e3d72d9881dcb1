package game

import (
	"encoding/hex"

	"lukechampine.com/frand"
)

// newGameID returns a short random identifier for a game. It tags move
// selections so that a search started for an old game is never committed
// to a new one.
func newGameID() string {
	var b [6]byte
	frand.Read(b[:])
	return hex.EncodeToString(b[:])
}
