package engine

import (
	"github.com/rs/zerolog/log"

	"boop/game"
	"boop/searcher/agent"
)

// MaxMoves caps a game to guard against two agents shuffling pieces
// forever.
const MaxMoves = 200

// Engine runs a local game between two agents, orange first.
type Engine struct {
	Game   *game.Game
	Agents [2]agent.Agent
}

// LocalEngine returns an engine at the initial position.
func LocalEngine(agents [2]agent.Agent) *Engine {
	return &Engine{
		Game:   game.New(),
		Agents: agents,
	}
}

// Run plays the game to its end and returns the winner (NoColor on a draw
// or move cap) and the number of plies played.
func (e *Engine) Run() (game.Color, int) {
	moves := 0
	for !e.Game.GameOver() && moves < MaxMoves {
		state := e.Game.State
		player := state.Player()
		a := e.Agents[state.Current]

		move := a.FindMove(state)
		if !e.Game.PlayMove(move) {
			// Agents only propose legal moves; an invalid one here is a
			// recoverable anomaly, not a reason to abort the game.
			log.Warn().
				Int("row", move.Row).Int("col", move.Col).
				Stringer("rank", move.Rank).
				Stringer("player", player).
				Msg("agent proposed invalid move, playing first legal move")
			legal := e.Game.LegalMoves()
			if len(legal) == 0 {
				break
			}
			e.Game.PlayMove(legal[0])
		}
		moves++

		log.Debug().
			Int("move", moves).
			Stringer("player", player).
			Msg("played move")
	}

	winner := e.Game.Winner()
	log.Info().
		Stringer("winner", winner).
		Int("moves", moves).
		Msg("game over")
	return winner, moves
}
