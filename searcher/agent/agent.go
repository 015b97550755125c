package agent

import (
	"boop/game"
	"boop/searcher"
)

// Agent picks a move for the player to move at state. Implementations are
// stateless across moves; nothing carries over between calls.
type Agent interface {
	FindMove(state game.State) game.Move
}

type searchAgent struct {
	mcts *searcher.MCTS
}

// NewSearchAgent returns an agent that plays the MCTS policy.
func NewSearchAgent(mcts *searcher.MCTS) Agent {
	return searchAgent{mcts: mcts}
}

func (a searchAgent) FindMove(state game.State) game.Move {
	return a.mcts.FindMove(state)
}
