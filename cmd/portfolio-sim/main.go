package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"portfolio-sim/internal/config"
	"portfolio-sim/internal/rng"
	"portfolio-sim/internal/util"
	"portfolio-sim/pkg/playable/portfolio"
	"portfolio-sim/pkg/simulation"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

var (
	matches    = flag.Int("n", 0, "number of matches to run (default from config)")
	seed       = flag.Int64("seed", 0, "master seed (default from config, 0 picks one)")
	verbose    = flag.Bool("v", false, "print the log of every match")
	jsonOutput = flag.Bool("json", false, "print the stats as JSON")
	showBoard  = flag.Bool("board", false, "print the board at the end of every match")
	version    = flag.Bool("version", false, "print the version and exit")
)

func main() {
	flag.Parse()
	if *version {
		fmt.Println(Version)
		return
	}

	setupLogger()
	cfg := config.Instance()

	opts := simulation.Options{
		Matches:       cfg.Matches,
		Seed:          cfg.Seed,
		PlayerNames:   cfg.PlayerNames,
		HandSize:      cfg.HandSize,
		RefillSize:    cfg.RefillSize,
		WatchdogLimit: cfg.WatchdogLimit,
	}

	if *matches > 0 {
		opts.Matches = *matches
	}

	if *seed != 0 {
		opts.Seed = *seed
	}

	if len(opts.PlayerNames) == 0 {
		opts.PlayerNames = util.GetRandomNames(rng.Crypto{}, 2)
	}

	runner, err := simulation.NewRunner(logrus.StandardLogger(), opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not create runner")
	}

	color := cfg.UseColor(term.IsTerminal(int(os.Stdout.Fd())))
	if *verbose || *showBoard {
		runner.OnRun = func(run *simulation.Run) {
			printRun(os.Stdout, run, color)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := runner.Run(ctx)
	if err != nil {
		logrus.WithError(err).Warn("batch stopped early")
	}

	if *jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(stats); err != nil {
			logrus.WithError(err).Fatal("could not encode stats")
		}
	} else {
		fmt.Print(stats.String())
	}

	if stats.FailureCount() > 0 {
		os.Exit(1)
	}
}

func printRun(w io.Writer, run *simulation.Run, color bool) {
	_, _ = fmt.Fprintf(w, "match %d (seed %d)\n", run.Number, run.Seed)

	if *verbose && run.Game != nil {
		for _, msg := range run.Game.Logs() {
			_, _ = fmt.Fprintf(w, "  %s\n", msg)
		}
	}

	if *showBoard {
		if match, ok := run.Game.(*portfolio.Match); ok {
			for _, line := range strings.Split(strings.TrimRight(match.Board().Render(color), "\n"), "\n") {
				_, _ = fmt.Fprintf(w, "  %s\n", line)
			}
		}
	}

	switch {
	case run.Err != nil:
		_, _ = fmt.Fprintf(w, "  failed (%s): %v\n", run.Failure(), run.Err)
	case run.Details.Winner == "":
		_, _ = fmt.Fprintf(w, "  tie\n")
	default:
		_, _ = fmt.Fprintf(w, "  winner: %s\n", run.Details.Winner)
	}
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetOutput(os.Stderr)
}
