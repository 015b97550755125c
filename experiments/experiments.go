package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"boop/engine"
	"boop/experiments/metrics"
	"boop/game"
	"boop/searcher"
	"boop/searcher/agent"
)

// RunMatchups plays every pair of configured agents against each other,
// alternating colors game by game, and writes the results as CSV.
func RunMatchups(cfg Config) error {
	writer, err := metrics.NewWriter(cfg.Name)
	if err != nil {
		return err
	}

	var records []metrics.GameRecord
	count := 0
	for i := 0; i < len(cfg.Agents); i++ {
		for j := i + 1; j < len(cfg.Agents); j++ {
			first, second := cfg.Agents[i], cfg.Agents[j]
			log.Info().
				Int("agent1", first.ID).
				Int("agent2", second.ID).
				Int("games", cfg.Games).
				Msg("starting matchup")

			for g := 0; g < cfg.Games; g++ {
				orange, gray := first, second
				if g%2 == 1 {
					orange, gray = gray, orange
				}

				start := time.Now()
				winner, moves := runGame(orange, gray)
				count++
				records = append(records, metrics.GameRecord{
					ID:       count,
					Agent1:   orange.ID,
					Agent2:   gray.ID,
					Winner:   winner.String(),
					Moves:    moves,
					Duration: time.Since(start),
				})
			}
		}
	}

	return writer.WriteGameRecords(records)
}

func runGame(orange, gray AgentConfig) (game.Color, int) {
	e := engine.LocalEngine([2]agent.Agent{
		buildAgent(orange),
		buildAgent(gray),
	})
	return e.Run()
}

func buildAgent(cfg AgentConfig) agent.Agent {
	switch cfg.Kind {
	case "mcts":
		return agent.NewSearchAgent(searcher.NewMCTS(
			buildEvaluator(cfg.Evaluator),
			searcher.WithSimulations(cfg.Simulations),
			searcher.WithExploration(cfg.Exploration),
			searcher.WithTemperature(cfg.Temperature),
			searcher.WithSeed(cfg.Seed),
		))
	case "greedy":
		return agent.NewGreedyAgent(cfg.Seed)
	case "random":
		return agent.NewRandomAgent(cfg.Seed)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", cfg.Kind))
	}
}

func buildEvaluator(name string) game.Evaluate {
	switch name {
	case "material":
		return game.EvaluateMaterial
	default:
		return game.EvaluateUniform
	}
}
