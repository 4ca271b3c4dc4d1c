package experiments

import (
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

const (
	weighted = "weighted"
	discs    = "discs"
)

type Config struct {
	Size      int
	NumGames  int    // Per matchup
	OutputDir string // Root directory of the CSV records
	Seed      uint64 // Seeds random agents and openings
}

func (c Config) withDefaults() Config {
	if c.Size <= 0 {
		c.Size = 8
	}
	if c.NumGames <= 0 {
		c.NumGames = meta.NUM_GAMES
	}
	if c.OutputDir == "" {
		c.OutputDir = "experiments"
	}
	return c
}

// RunDepthExperiment pairs every search depth against a random baseline.
func RunDepthExperiment(cfg Config) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Random: true}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for depth := 1; depth <= meta.MAX_EXPERIMENT_DEPTH; depth++ {
		config := metrics.AgentConfig{ID: depth, Depth: depth, Evaluation: weighted}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}

	return runExperiment("depth", cfg.withDefaults(), configs, matchUps, false)
}

// RunEvaluationExperiment pairs the weighted evaluation against the disc count
// at equal depth. Colours alternate and openings are randomized since both
// agents are deterministic.
func RunEvaluationExperiment(cfg Config) (string, error) {
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for depth := 1; depth <= meta.MAX_EXPERIMENT_DEPTH-1; depth++ {
		w := metrics.AgentConfig{ID: 2 * depth, Depth: depth, Evaluation: weighted}
		d := metrics.AgentConfig{ID: 2*depth + 1, Depth: depth, Evaluation: discs}
		configs = append(configs, w, d)
		matchUps = append(matchUps, []metrics.AgentConfig{w, d})
	}

	return runExperiment("evaluation", cfg.withDefaults(), configs, matchUps, true)
}

// runExperiment plays cfg.NumGames per matchup, then writes the records and
// returns the directory holding them.
func runExperiment(name string, cfg Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, alternate bool) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		for i := 0; i < cfg.NumGames; i++ {
			black, white := matchup[0], matchup[1]
			if alternate && i%2 == 1 {
				black, white = white, black
			}
			count++
			seed := cfg.Seed + uint64(count)

			log.Debug().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, cfg.NumGames)

			var options []engine.LocalOption
			if alternate {
				options = append(options, engine.WithOpening(meta.OPENING_PLIES, seed))
			}
			e := engine.NewLocalEngine(cfg.Size, createAgent(black, seed), createAgent(white, seed+1), options...)
			winner, gameMetric, moveMetrics := e.Run()

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return writer.Dir(), nil
}

func createAgent(config metrics.AgentConfig, seed uint64) engine.Agent {
	if config.Random {
		return engine.NewRandomAgent(seed)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Evaluation == discs {
		options = append(options, searcher.WithEvaluationFn(game.EvaluateDiscs))
	}
	return searcher.NewMinimax(config.Depth, options...)
}
