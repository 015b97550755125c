package searcher

import (
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"boop/game"
)

// Option configures an MCTS.
type Option func(*MCTS)

// MCTS is a single-threaded Monte Carlo tree search guided by an evaluator
// supplying move priors and a position value. Each Simulate/Search call
// builds a fresh tree and discards it with the result.
type MCTS struct {
	evaluate    game.Evaluate
	simulations int
	exploration float64
	temperature float64
	rng         *rand.Rand
	metrics     Collector
}

func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations > 0 {
			m.simulations = simulations
		}
	}
}

// WithExploration sets the PUCT exploration constant.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithTemperature sets the selection temperature: 0 picks the most visited
// action deterministically, 1 samples proportionally to visit counts.
func WithTemperature(temperature float64) Option {
	return func(m *MCTS) {
		if temperature >= 0 {
			m.temperature = temperature
		}
	}
}

// WithSeed makes sampling reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithCollector(collector Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

// NewMCTS returns a searcher using the given evaluator, defaulting to 100
// simulations, exploration 1.5 and temperature 1.
func NewMCTS(evaluate game.Evaluate, options ...Option) *MCTS {
	if evaluate == nil {
		evaluate = game.EvaluateUniform
	}
	m := &MCTS{
		evaluate:    evaluate,
		simulations: 100,
		exploration: 1.5,
		temperature: 1,
		rng:         rand.New(rand.NewSource(rand.Uint64())),
		metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Search spends the simulation budget from state and returns the
// visit-derived probability distribution over the encoded action space
// plus the root's mean value.
func (m *MCTS) Search(state game.State) ([]float64, float64) {
	probs, _, value := m.search(state)
	return probs, value
}

// Metrics returns the metrics of the last Search call.
func (m *MCTS) Metrics() SearchMetric {
	return m.metrics.Complete()
}

// FindMove searches from state and picks a move at the configured
// temperature.
func (m *MCTS) FindMove(state game.State) game.Move {
	return m.FindMoveAt(state, m.temperature)
}

// FindMoveAt searches from state and picks a move at the given
// temperature: argmax at 0, sampled otherwise. A decoded index that fails
// to map to a legal move degrades to the first legal action; this path
// never aborts.
func (m *MCTS) FindMoveAt(state game.State, temperature float64) game.Move {
	probs, t, _ := m.search(state)

	dist := visitPolicy(t, temperature)
	if dist == nil {
		dist = probs
	}

	var index int
	if temperature == 0 {
		index = argmax(dist)
	} else {
		index = sample(dist, m.rng)
	}

	move, ok := game.DecodeAction(index)
	if !ok || !isLegal(state, move) {
		log.Warn().
			Int("action", index).
			Msg("selected action does not decode to a legal move, playing first legal move")
		legal := state.LegalMoves()
		if len(legal) == 0 {
			return game.Move{}
		}
		return legal[0]
	}
	return move
}

// search builds the tree and returns the configured-temperature policy,
// the tree itself (so FindMoveAt can re-derive the policy at another
// temperature without a second search) and the root value.
func (m *MCTS) search(state game.State) ([]float64, *tree, float64) {
	m.metrics.Start()
	t := newTree(state)

	// Expand the root before spending the budget so every budgeted
	// simulation descends at least one ply; the root children's visit
	// counts then sum to exactly the number of simulations.
	if !state.GameOver() {
		m.expand(t, 0, state)
	} else {
		t.root().terminal = true
	}

	for i := 0; i < m.simulations && !t.root().terminal; i++ {
		m.simulate(t)
		m.metrics.AddSimulation()
	}

	probs := visitPolicy(t, m.temperature)
	if probs == nil {
		// Nothing expanded: fall back to a uniform distribution over
		// the legal actions of the root state itself.
		probs = uniformLegal(state)
	}
	return probs, t, t.root().q()
}

// simulate runs one selection-expansion-backup pass.
func (m *MCTS) simulate(t *tree) {
	h := int32(0)
	for t.at(h).expanded && !t.at(h).terminal {
		h = t.selectChild(h, m.exploration)
	}

	state := t.materialize(h)
	n := t.at(h)

	var value float64
	if state.GameOver() {
		n.terminal = true
		value = terminalValue(state)
		m.metrics.AddTerminalLeaf()
	} else {
		value = m.expand(t, h, state)
	}

	t.backup(h, value)
}

// expand evaluates the leaf once, creates one child per legal action with
// its prior from the evaluator's distribution, and returns the leaf value.
func (m *MCTS) expand(t *tree, h int32, state game.State) float64 {
	priors, value := m.evaluate(state)
	moves := state.LegalMoves()

	legal := legalPriors(priors, moves)
	if legal == nil {
		log.Warn().
			Int("priors", len(priors)).
			Msg("malformed evaluator distribution, falling back to uniform priors")
		m.metrics.AddPriorFallback()
		legal = uniformPriors(len(moves))
	}

	for i, move := range moves {
		t.add(h, move, legal[i])
	}
	t.at(h).expanded = true
	m.metrics.AddExpansion()
	return value
}

// terminalValue scores a finished game from the perspective of whichever
// player would move there: +1 win, -1 loss, 0 no winner.
func terminalValue(state game.State) float64 {
	winner := state.Winner()
	if winner == game.NoColor {
		return 0
	}
	if winner == state.Player() {
		return 1
	}
	return -1
}

// legalPriors masks the evaluator's distribution to the legal moves and
// renormalizes. It returns nil if the distribution is unusable: wrong
// length, non-finite entries, or zero mass on the legal moves.
func legalPriors(priors []float64, moves []game.Move) []float64 {
	if len(priors) != game.ActionSpace {
		return nil
	}

	legal := make([]float64, len(moves))
	sum := 0.0
	for i, move := range moves {
		p := priors[game.EncodeAction(move)]
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return nil
		}
		legal[i] = p
		sum += p
	}
	if sum <= 0 {
		return nil
	}

	for i := range legal {
		legal[i] /= sum
	}
	return legal
}

func uniformPriors(n int) []float64 {
	priors := make([]float64, n)
	for i := range priors {
		priors[i] = 1.0 / float64(n)
	}
	return priors
}

func isLegal(state game.State, move game.Move) bool {
	for _, legal := range state.LegalMoves() {
		if legal == move {
			return true
		}
	}
	return false
}
