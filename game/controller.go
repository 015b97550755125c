package game

import (
	"github.com/rs/zerolog/log"
)

// Game drives a live game, mutating one GameState in place ply by ply.
// Search never touches a Game: it branches off immutable State copies.
type Game struct {
	State *GameState
}

// New returns a game at the initial position.
func New() *Game {
	return &Game{State: NewGameState()}
}

// Play attempts one ply for the player to move. It returns false, with no
// state change, if the cell is occupied or the pool has no piece of the
// given rank. Callers must check the result.
func (g *Game) Play(row, col int, rank Rank) bool {
	move := Move{Row: row, Col: col, Rank: rank}
	if !g.State.apply(move) {
		log.Debug().
			Int("row", row).Int("col", col).
			Stringer("rank", rank).
			Stringer("player", g.State.Player()).
			Msg("rejected invalid move")
		return false
	}
	return true
}

// PlayMove is Play for an already-constructed move.
func (g *Game) PlayMove(m Move) bool {
	return g.Play(m.Row, m.Col, m.Rank)
}

// LegalMoves lists the current player's moves.
func (g *Game) LegalMoves() []Move {
	return g.State.LegalMoves()
}

// GameOver reports whether another ply can start.
func (g *Game) GameOver() bool {
	return g.State.GameOver()
}

// Winner returns the winner, or NoColor.
func (g *Game) Winner() Color {
	return g.State.Winner()
}
