package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"boop/experiments"
)

func main() {
	configPath := flag.String("config", "", "experiment config file (YAML); built-in defaults when empty")
	debug := flag.Bool("debug", false, "log every move")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		loaded, err := experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}

	if err := experiments.RunMatchups(cfg); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
