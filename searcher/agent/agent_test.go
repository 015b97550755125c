package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boop/game"
	"boop/searcher"
)

func TestRandomAgent(t *testing.T) {
	t.Run("always returns a legal move", func(t *testing.T) {
		a := NewRandomAgent(1)
		state := game.NewGameState()

		for i := 0; i < 10; i++ {
			move := a.FindMove(state)
			require.Contains(t, state.LegalMoves(), move)
		}
	})

	t.Run("same seed replays the same moves", func(t *testing.T) {
		state := game.NewGameState()

		first := NewRandomAgent(7).FindMove(state)
		second := NewRandomAgent(7).FindMove(state)

		require.Equal(t, first, second)
	})
}

func TestGreedyAgent(t *testing.T) {
	t.Run("takes an immediate win", func(t *testing.T) {
		g := game.New()
		g.State.Board.Place(game.Position{Row: 0, Col: 0}, game.Piece{Rank: game.Cat, Color: game.Orange})
		g.State.Board.Place(game.Position{Row: 0, Col: 1}, game.Piece{Rank: game.Cat, Color: game.Orange})
		g.State.Players[0].Reserve[game.Cat] -= 3
		g.State.Players[0].Pool[game.Cat] += 3

		a := NewGreedyAgent(1)
		move := a.FindMove(g.State)

		require.Equal(t, game.Move{Row: 0, Col: 2, Rank: game.Cat}, move)
	})

	t.Run("returns a legal move from the initial position", func(t *testing.T) {
		a := NewGreedyAgent(1)
		state := game.NewGameState()

		move := a.FindMove(state)

		require.Contains(t, state.LegalMoves(), move)
	})
}

func TestSearchAgent(t *testing.T) {
	t.Run("plays the search policy", func(t *testing.T) {
		mcts := searcher.NewMCTS(game.EvaluateUniform,
			searcher.WithSimulations(10),
			searcher.WithTemperature(0),
			searcher.WithSeed(1))
		a := NewSearchAgent(mcts)
		state := game.NewGameState()

		move := a.FindMove(state)

		require.Contains(t, state.LegalMoves(), move)
	})
}
