// Command aoc runs one of the puzzle solvers against an input file.
//
// Usage:
//
//	aoc -day 4 [-data data] [-input input.dat] [-word XMAS] [-reorder] [-v] [-profile]
//
// AOC_DATA_DIR and AOC_INPUT, from the environment or a .env file in the
// working directory, provide defaults for -data and -input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpuzzle/puzzleio"
)

var log = logrus.New()

// config is the parsed command line.
type config struct {
	day     int
	dataDir string
	input   string
	word    string
	reorder bool
	verbose bool
	profile bool
}

func main() {
	if err := loadEnv(".env"); err != nil {
		log.WithError(err).Fatal("loading .env")
	}
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.WithError(err).Fatal("bad arguments")
	}
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if cfg.profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.WithError(err).WithField("day", cfg.day).Error("solve failed")
		os.Exit(1)
	}
}

// loadEnv loads path into the environment; a missing file is not an error.
func loadEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// parseFlags builds a config from args, taking defaults from the environment.
func parseFlags(args []string) (config, error) {
	var cfg config
	fsFlags := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fsFlags.IntVar(&cfg.day, "day", 0, "puzzle day to solve (1-5)")
	fsFlags.StringVar(&cfg.dataDir, "data", envOr("AOC_DATA_DIR", puzzleio.DefaultDir), "directory holding puzzle inputs")
	fsFlags.StringVar(&cfg.input, "input", envOr("AOC_INPUT", "input.dat"), "input file name inside the data directory")
	fsFlags.StringVar(&cfg.word, "word", "XMAS", "word to search for (day 4)")
	fsFlags.BoolVar(&cfg.reorder, "reorder", false, "also sum middles of reordered invalid updates (day 5)")
	fsFlags.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	fsFlags.BoolVar(&cfg.profile, "profile", false, "write a CPU profile to the working directory")
	if err := fsFlags.Parse(args); err != nil {
		return config{}, err
	}
	if _, ok := days[cfg.day]; !ok {
		return config{}, fmt.Errorf("unknown day %d", cfg.day)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// run reads the configured input, solves it and prints the answer lines.
func run(cfg config, out io.Writer) error {
	solve, ok := days[cfg.day]
	if !ok {
		return fmt.Errorf("unknown day %d", cfg.day)
	}
	reader := puzzleio.NewReader(puzzleio.WithDir(cfg.dataDir))
	input, err := reader.Read(cfg.input)
	if err != nil {
		return err
	}

	start := time.Now()
	lines, err := solve(input, cfg)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"day":     cfg.day,
		"file":    reader.Path(cfg.input),
		"elapsed": time.Since(start),
	}).Debug("solved")

	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}
