// Package game encapsulates the mechanics of a two-player double-six
// dominoes game: dealing, placements, draws, passes, and end detection.
// It does not care how moves are chosen; human and AI players drive it
// from outside.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/matadorhq/matador/board"
	"github.com/matadorhq/matador/move"
	"github.com/matadorhq/matador/movegen"
	"github.com/matadorhq/matador/tile"
)

// PlayState describes whether the game is still going.
type PlayState uint8

const (
	StatePlaying PlayState = iota
	// StateWon: a player emptied their hand.
	StateWon
	// StateLocked: neither player can move and the boneyard is empty.
	// Lowest pip total wins.
	StateLocked
)

const NumPlayers = 2

var (
	ErrNotOnTurn     = errors.New("not that player's turn")
	ErrTileNotInHand = errors.New("tile is not in the player's hand")
	ErrGameOver      = errors.New("the game is over")
	ErrCannotDraw    = errors.New("cannot draw: a legal placement exists")
	ErrCannotPass    = errors.New("cannot pass: drawing is still possible")
)

type playerState struct {
	name string
	hand tile.Hand
}

// Game holds the live state of one game. Mutations go through PlayMove,
// Draw and Pass only, which keep the four tile zones (two hands, board,
// boneyard) a partition of the full set.
type Game struct {
	id       string
	board    *board.Board
	boneyard *tile.Boneyard
	players  [NumPlayers]playerState

	playing PlayState
	onturn  int
	turnnum int
	winner  int
}

// NewGame deals a fresh game. The first named player moves first.
func NewGame(names [NumPlayers]string) (*Game, error) {
	g := &Game{
		id:       newGameID(),
		board:    board.NewBoard(),
		boneyard: tile.NewBoneyard(),
		playing:  StatePlaying,
		winner:   -1,
	}
	for i := range g.players {
		hand, err := g.boneyard.DrawHand()
		if err != nil {
			return nil, err
		}
		g.players[i] = playerState{name: names[i], hand: hand}
	}
	log.Debug().Str("gid", g.id).
		Str("p0", g.players[0].hand.String()).
		Str("p1", g.players[1].hand.String()).
		Msg("dealt")
	return g, nil
}

// ID identifies this game. Move selections started for one game must not
// be committed to another; callers compare the ID they tagged the search
// with against the current game's.
func (g *Game) ID() string {
	return g.id
}

// Board returns the live board. Callers must not mutate it directly.
func (g *Game) Board() *board.Board {
	return g.board
}

// HandOf returns the hand of the given player.
func (g *Game) HandOf(player int) tile.Hand {
	return g.players[player].hand
}

// NameOf returns the name of the given player.
func (g *Game) NameOf(player int) string {
	return g.players[player].name
}

// BoneyardRemaining is the number of undrawn tiles.
func (g *Game) BoneyardRemaining() int {
	return g.boneyard.TilesRemaining()
}

// PlayerOnTurn returns whose turn it is.
func (g *Game) PlayerOnTurn() int {
	return g.onturn
}

// TurnNum returns the number of completed turns.
func (g *Game) TurnNum() int {
	return g.turnnum
}

// Playing returns the game's play state.
func (g *Game) Playing() PlayState {
	return g.playing
}

// Winner returns the winning player index, or -1 while the game is live or
// drawn.
func (g *Game) Winner() int {
	return g.winner
}

// PlayMove applies a placement for the player on turn. Illegal placements
// are rejected without touching any state.
func (g *Game) PlayMove(player int, m *move.Move) error {
	if g.playing != StatePlaying {
		return ErrGameOver
	}
	if player != g.onturn {
		return ErrNotOnTurn
	}
	if m.Action() == move.MoveTypePass {
		return g.Pass(player)
	}
	ps := &g.players[player]
	if !ps.hand.Contains(m.Tile()) {
		return ErrTileNotInHand
	}
	if err := g.board.Place(m.Tile(), m.Side()); err != nil {
		return err
	}
	ps.hand, _ = ps.hand.Without(m.Tile())
	g.endTurn(player)
	return nil
}

// Draw moves one boneyard tile into the player's hand. Only allowed when
// the player has no legal placement; the turn does not advance, the player
// keeps drawing or plays.
func (g *Game) Draw(player int) (tile.Tile, error) {
	if g.playing != StatePlaying {
		return tile.Tile{}, ErrGameOver
	}
	if player != g.onturn {
		return tile.Tile{}, ErrNotOnTurn
	}
	if !movegen.Blocked(g.board, g.players[player].hand) {
		return tile.Tile{}, ErrCannotDraw
	}
	t, err := g.boneyard.Draw()
	if err != nil {
		return tile.Tile{}, err
	}
	g.players[player].hand = g.players[player].hand.Add(t)
	return t, nil
}

// Pass gives up the turn. Only legal when the player is blocked and the
// boneyard is empty.
func (g *Game) Pass(player int) error {
	if g.playing != StatePlaying {
		return ErrGameOver
	}
	if player != g.onturn {
		return ErrNotOnTurn
	}
	if g.boneyard.TilesRemaining() > 0 {
		return ErrCannotPass
	}
	if !movegen.Blocked(g.board, g.players[player].hand) {
		return fmt.Errorf("cannot pass: a legal placement exists")
	}
	g.endTurn(player)
	return nil
}

// endTurn recomputes the terminal conditions and hands the turn over.
func (g *Game) endTurn(player int) {
	g.turnnum++
	if len(g.players[player].hand) == 0 {
		g.playing = StateWon
		g.winner = player
		log.Debug().Str("gid", g.id).Int("winner", player).Msg("game-won")
		return
	}
	if movegen.Locked(g.board, g.players[0].hand, g.players[1].hand,
		g.boneyard.TilesRemaining()) {
		g.playing = StateLocked
		g.winner = g.lockedWinner()
		log.Debug().Str("gid", g.id).Int("winner", g.winner).Msg("game-locked")
		return
	}
	g.onturn = (g.onturn + 1) % NumPlayers
}

// lockedWinner scores a blocked game: lowest pip total wins, equal totals
// draw.
func (g *Game) lockedWinner() int {
	p0, p1 := g.players[0].hand.PipTotal(), g.players[1].hand.PipTotal()
	switch {
	case p0 < p1:
		return 0
	case p1 < p0:
		return 1
	}
	return -1
}

// Copy creates a deep copy of the game, safe for simulation.
func (g *Game) Copy() *Game {
	ng := &Game{
		id:       g.id,
		board:    g.board.Copy(),
		boneyard: g.boneyard.Copy(),
		playing:  g.playing,
		onturn:   g.onturn,
		turnnum:  g.turnnum,
		winner:   g.winner,
	}
	for i := range g.players {
		ng.players[i] = playerState{
			name: g.players[i].name,
			hand: g.players[i].hand.Copy(),
		}
	}
	return ng
}
