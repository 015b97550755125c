package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	t.Run("initial allocation", func(t *testing.T) {
		gs := NewGameState()

		require.Equal(t, Orange, gs.Player(), "Orange moves first")
		require.Equal(t, NoColor, gs.Winner())
		require.False(t, gs.GameOver())
		for i := range gs.Players {
			p := &gs.Players[i]
			require.Equal(t, InitialKittens, p.Pool[Kitten])
			require.Equal(t, 0, p.Pool[Cat])
			require.Equal(t, InitialCats, p.Reserve[Cat])
		}
	})

	t.Run("initial legal moves are all kitten placements", func(t *testing.T) {
		gs := NewGameState()

		moves := gs.LegalMoves()

		require.Len(t, moves, BoardSize*BoardSize)
		for _, move := range moves {
			require.Equal(t, Kitten, move.Rank)
		}
	})
}

func TestGameStatePlay(t *testing.T) {
	t.Run("playing returns a new state and keeps the old one", func(t *testing.T) {
		gs := NewGameState()

		next := gs.Play(Move{Row: 2, Col: 2, Rank: Kitten}).(*GameState)

		require.True(t, gs.Board.Empty(Position{2, 2}), "Original state should be untouched")
		require.Equal(t, InitialKittens, gs.Players[0].Pool[Kitten])
		require.Equal(t, Piece{Rank: Kitten, Color: Orange}, next.Board.PieceAt(Position{2, 2}))
		require.Equal(t, InitialKittens-1, next.Players[0].Pool[Kitten])
		require.Equal(t, Gray, next.Player(), "Turn should switch")
	})

	t.Run("playing an illegal move panics", func(t *testing.T) {
		gs := NewGameState()
		next := gs.Play(Move{Row: 2, Col: 2, Rank: Kitten})

		require.Panics(t, func() {
			next.Play(Move{Row: 2, Col: 2, Rank: Kitten})
		})
	})

	t.Run("hash changes with every ply", func(t *testing.T) {
		gs := NewGameState()

		next := gs.Play(Move{Row: 2, Col: 2, Rank: Kitten})

		require.NotEqual(t, gs.Hash(), next.Hash())
	})

	t.Run("identical move sequences reach identical states", func(t *testing.T) {
		sequence := []Move{
			{Row: 2, Col: 2, Rank: Kitten},
			{Row: 4, Col: 4, Rank: Kitten},
			{Row: 2, Col: 4, Rank: Kitten},
			{Row: 0, Col: 0, Rank: Kitten},
			{Row: 3, Col: 3, Rank: Kitten},
		}

		replay := func() State {
			var state State = NewGameState()
			for _, move := range sequence {
				state = state.Play(move)
			}
			return state
		}

		first, second := replay(), replay()
		require.Equal(t, first.Hash(), second.Hash())
		require.Equal(t, first.(*GameState), second.(*GameState))
	})
}

func TestConservation(t *testing.T) {
	t.Run("pieces are conserved through random-ish play", func(t *testing.T) {
		var state State = NewGameState()
		for i := 0; i < 40 && !state.GameOver(); i++ {
			moves := state.LegalMoves()
			require.NotEmpty(t, moves)
			state = state.Play(moves[i%len(moves)])

			gs := state.(*GameState)
			for p := range gs.Players {
				color := gs.Players[p].Color
				for _, rank := range []Rank{Kitten, Cat} {
					total := gs.Players[p].Pool[rank] +
						gs.Players[p].Reserve[rank] +
						gs.Board.CountRank(color, rank)
					if rank == Kitten {
						require.LessOrEqual(t, total, InitialKittens,
							"Kittens only ever leave the game")
					} else {
						require.Equal(t, InitialCats, total,
							"Cats are never created or destroyed")
					}
				}
			}
		}
	})
}

func TestScenarioOpeningPlacements(t *testing.T) {
	// Orange places at (2,2), gray at (2,3): orthogonally adjacent, and the
	// second placement pushes the first one cell away without knocking
	// anything off. Both pieces stay on the board.
	var state State = NewGameState()

	state = state.Play(Move{Row: 2, Col: 2, Rank: Kitten})
	state = state.Play(Move{Row: 2, Col: 3, Rank: Kitten})

	gs := state.(*GameState)
	onBoard := gs.Board.CountColor(Orange) + gs.Board.CountColor(Gray)
	require.Equal(t, 2, onBoard, "Board should hold exactly 2 pieces")
	require.Equal(t, InitialKittens-1, gs.Players[0].Pool[Kitten],
		"Orange pool should be down exactly one kitten")
	require.Equal(t, InitialKittens-1, gs.Players[1].Pool[Kitten],
		"Gray pool should be down exactly one kitten")
}
