package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/searcher"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	plain := flag.Bool("plain", false, "Print the board without colours")
	experiment := flag.String("experiment", "", "Run an experiment instead of the command loop: depth or evaluation")
	games := flag.Int("games", meta.NUM_GAMES, "Games per experiment matchup")
	size := flag.Int("size", 8, "Board size used by experiments")
	out := flag.String("out", "experiments", "Directory for experiment records")
	flag.Usage = func() {
		usage(os.Stdout, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if *experiment != "" {
		cfg := experiments.Config{Size: *size, NumGames: *games, OutputDir: *out}
		if err := runExperiment(*experiment, cfg); err != nil {
			log.Fatal().Err(err).Str("experiment", *experiment).Msg("experiment failed")
		}
		return
	}

	os.Exit(run(flag.Args(), os.Stdin, os.Stdout, *plain))
}

// run starts the command loop for the positional arguments <N> <C> <D> and
// returns the process exit code.
func run(args []string, in io.Reader, out io.Writer, plain bool) int {
	if len(args) != 3 {
		usage(out, os.Args[0])
		return 1
	}

	size, err := strconv.Atoi(args[0])
	if err != nil || size < meta.MIN_BOARD_SIZE {
		usage(out, os.Args[0])
		return 1
	}
	maxPlayer, err := game.ParsePlayer(args[1])
	if err != nil {
		usage(out, os.Args[0])
		return 1
	}
	limit, err := strconv.Atoi(args[2])
	if err != nil || limit <= 0 {
		usage(out, os.Args[0])
		return 1
	}

	log.Debug().Int("size", size).Str("color", maxPlayer.String()).Int("depth", limit).Msg("starting session")
	session := engine.NewSession(
		game.NewBoard(size, maxPlayer),
		searcher.NewMinimax(limit),
		in, out,
		engine.WithRenderer(engine.NewRenderer(out, plain)),
	)
	if err := session.Run(); err != nil {
		log.Error().Err(err).Msg("session failed")
		return 1
	}
	return 0
}

func runExperiment(name string, cfg experiments.Config) error {
	var dir string
	var err error
	switch name {
	case "depth":
		dir, err = experiments.RunDepthExperiment(cfg)
	case "evaluation":
		dir, err = experiments.RunEvaluationExperiment(cfg)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Experiment records written to %s\n", dir)
	return nil
}

func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s <N> <C> <D>\n", prog)
	fmt.Fprintln(w, "- N is the size of the (square) board")
	fmt.Fprintln(w, "- C is the color to be controlled by the program")
	fmt.Fprintln(w, "- D is the search depth limit, which should be a positive number")
}
