package agent

import (
	"golang.org/x/exp/rand"

	"boop/game"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline that plays a uniformly random legal
// move.
func NewRandomAgent(seed uint64) Agent {
	return randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a randomAgent) FindMove(state game.State) game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}
	}
	return moves[a.rng.Intn(len(moves))]
}
