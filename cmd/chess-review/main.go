// Command chess-review extracts a PGN game from a text file, drives a
// local UCI engine over it and rates every played move.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	appcfg "github.com/park285/chess-review/internal/config"
	"github.com/park285/chess-review/internal/engine"
	"github.com/park285/chess-review/internal/obslog"
	"github.com/park285/chess-review/internal/pgn"
	"github.com/park285/chess-review/internal/review"
	"github.com/park285/chess-review/internal/uci"
)

// Exit codes; each failure class terminates distinctly.
const (
	exitInputNotFound = 1
	exitNoRecord      = 2
	exitUnparsable    = 3
	exitEngineLaunch  = 4
)

const minTimeSeconds = 0.05

var (
	flagEngine   string
	flagTime     float64
	flagDepth    int
	flagThreads  string
	flagHashMB   string
	flagMultiPV  int
	flagPreset   string
	flagNNUE     bool
	flagLastOnly bool
)

func main() {
	cfg := appcfg.Load()

	rootCmd := &cobra.Command{
		Use:   "chess-review <file>",
		Short: "Rate every move of a chess game with a local UCI engine",
		Long: `chess-review reads a PGN file (or a log file containing a PGN
section), analyzes each move with a locally installed UCI engine such as
Stockfish, and prints one classified row per ply.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(run(cmd, args[0]))
		},
	}

	rootCmd.Flags().StringVar(&flagEngine, "engine", cfg.EnginePath, "path to the UCI engine executable")
	rootCmd.Flags().Float64Var(&flagTime, "time", cfg.TimeSeconds, "analysis time per evaluation in seconds")
	rootCmd.Flags().IntVar(&flagDepth, "depth", cfg.Depth, "fixed depth per evaluation (overrides --time)")
	rootCmd.Flags().StringVar(&flagThreads, "threads", "auto", "engine threads: auto or N")
	rootCmd.Flags().StringVar(&flagHashMB, "hash-mb", "auto", "hash table size in MB: auto or MB")
	rootCmd.Flags().IntVar(&flagMultiPV, "multipv", cfg.MultiPV, "number of principal variations to compute")
	rootCmd.Flags().StringVar(&flagPreset, "preset", cfg.Preset, "analysis profile (quick, default, deep)")
	rootCmd.Flags().BoolVar(&flagNNUE, "nnue", true, "prefer the engine's neural evaluation when supported")
	rootCmd.Flags().BoolVar(&flagLastOnly, "last-move-only", false, "analyze only the last move of the main line")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, inputPath string) int {
	if err := obslog.InitFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		return 1
	}
	logger := obslog.L().With(zap.String("run_id", uuid.NewString()))
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Input not found: %s\n", inputPath)
		return exitInputNotFound
	}

	block, err := pgn.Extract(string(raw))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not locate PGN text in the file.")
		return exitNoRecord
	}
	rec, err := pgn.Parse(block)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to parse PGN.")
		logger.Debug("parse failure", zap.Error(err))
		return exitUnparsable
	}

	threads, err := parseAutoInt(flagThreads, 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "--threads must be an integer or 'auto'\n")
		return 1
	}
	hashMB, err := parseAutoInt(flagHashMB, 16)
	if err != nil {
		fmt.Fprintf(os.Stderr, "--hash-mb must be an integer (MB) or 'auto'\n")
		return 1
	}

	limits, multiPV, err := resolveBudget(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if cmd.Flags().Changed("multipv") {
		multiPV = flagMultiPV
	}

	eng, err := engine.Open(ctx, engine.Config{
		BinaryPath: flagEngine,
		Threads:    threads,
		HashMB:     hashMB,
		MultiPV:    multiPV,
		UseNNUE:    flagNNUE,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not launch engine at: %s\n", flagEngine)
		fmt.Fprintln(os.Stderr, "Ensure Stockfish is installed and in PATH, or specify with --engine.")
		logger.Error("engine launch failed", zap.Error(err))
		return exitEngineLaunch
	}
	defer eng.Close()

	if err := eng.Session().NewGame(ctx); err != nil {
		logger.Warn("ucinewgame failed", zap.Error(err))
	}

	evaluator := review.NewEvaluator(eng.Session(), limits, logger)
	driver := review.NewDriver(rec, evaluator, eng.Applied(), os.Stdout, flagLastOnly, logger)
	if err := driver.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "analysis aborted: %v\n", err)
		return 1
	}
	return 0
}

// resolveBudget combines the selected preset with explicit --time/--depth
// flags; depth always wins over time.
func resolveBudget(cmd *cobra.Command) (uci.Limits, int, error) {
	preset, err := engine.GetPreset(flagPreset)
	if err != nil {
		return uci.Limits{}, 0, err
	}
	limits := preset.Limits()
	multiPV := preset.MultiPV

	if cmd.Flags().Changed("time") {
		t := flagTime
		if t < minTimeSeconds {
			t = minTimeSeconds
		}
		limits = uci.Limits{MoveTimeMillis: int(t * 1000)}
	}
	if cmd.Flags().Changed("depth") || flagDepth > 0 {
		limits = uci.Limits{Depth: flagDepth}
	}
	if limits.Depth <= 0 && limits.MoveTimeMillis <= 0 {
		limits = uci.Limits{MoveTimeMillis: 500}
	}
	return limits, multiPV, nil
}

// parseAutoInt handles the auto|N flag form; 0 means auto. Explicit values
// are floored at min, mirroring the engine's practical lower bounds.
func parseAutoInt(value string, min int) (int, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" || v == "auto" || v == "max" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("not an integer")
	}
	if n < min {
		n = min
	}
	return n, nil
}
