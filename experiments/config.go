package experiments

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AgentConfig describes one agent entry in a matchup config.
type AgentConfig struct {
	ID          int     `yaml:"id"`
	Kind        string  `yaml:"kind"`      // mcts, greedy or random
	Evaluator   string  `yaml:"evaluator"` // uniform or material (mcts only)
	Simulations int     `yaml:"simulations"`
	Exploration float64 `yaml:"exploration"`
	Temperature float64 `yaml:"temperature"`
	Seed        uint64  `yaml:"seed"`
}

// Config is a full experiment: every pair of agents plays Games games,
// alternating who starts.
type Config struct {
	Name   string        `yaml:"name"`
	Games  int           `yaml:"games"`
	Agents []AgentConfig `yaml:"agents"`
}

// LoadConfig reads an experiment config from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if len(c.Agents) < 2 {
		return fmt.Errorf("need at least two agents, got %d", len(c.Agents))
	}
	for _, a := range c.Agents {
		switch a.Kind {
		case "mcts", "greedy", "random":
		default:
			return fmt.Errorf("agent %d has unknown kind %q", a.ID, a.Kind)
		}
	}
	return nil
}

// DefaultConfig pits a small MCTS agent against the two baselines.
func DefaultConfig() Config {
	return Config{
		Name:  "baseline",
		Games: 10,
		Agents: []AgentConfig{
			{ID: 1, Kind: "mcts", Evaluator: "material", Simulations: 50, Exploration: 1.5, Temperature: 0, Seed: 1},
			{ID: 2, Kind: "greedy", Seed: 2},
			{ID: 3, Kind: "random", Seed: 3},
		},
	}
}
