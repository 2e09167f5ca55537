package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/duskfold/goldfish/internal/cards"
	"github.com/duskfold/goldfish/internal/config"
	"github.com/duskfold/goldfish/internal/game"
	"github.com/duskfold/goldfish/internal/repository"
	"github.com/duskfold/goldfish/internal/sim"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	deckPath   = flag.String("deck", "", "deck list path (overrides config)")
	runs       = flag.Int("runs", 0, "number of games to simulate (overrides config)")
	seed       = flag.Uint("seed", 0, "batch seed (overrides config)")
	verbose    = flag.Bool("verbose", false, "log every game action")
	checkHand  = flag.String("check-hand", "", "comma-separated card names; print the keep decision and exit")
	optimize   = flag.Bool("optimize", false, "run the land grid search instead of a single batch")
	swapOut    = flag.String("swap-out", "", "land to swap out during optimization")
	swapIn     = flag.String("swap-in", "", "land to swap in during optimization")
	maxSwaps   = flag.Int("max-swaps", 4, "maximum copies to swap during optimization")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *deckPath != "" {
		cfg.Deck.List = *deckPath
	}
	if *runs > 0 {
		cfg.Simulation.Runs = *runs
	}
	if *seed > 0 {
		cfg.Simulation.Seed = uint32(*seed)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting goldfish simulator",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	reg, err := cards.LoadRegistry(cfg.Deck.Registry)
	if err != nil {
		logger.Fatal("failed to load card registry", zap.Error(err))
	}
	deck, err := cards.LoadDeck(cfg.Deck.List, reg)
	if err != nil {
		logger.Fatal("failed to load deck", zap.Error(err))
	}
	logger.Info("deck loaded",
		zap.String("deck", deck.Name),
		zap.Int("cards", len(deck.Cards)),
	)

	if *checkHand != "" {
		if err := runKeepCheck(reg, *checkHand); err != nil {
			logger.Fatal("keep check failed", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received signal, stopping batch", zap.String("signal", sig.String()))
		cancel()
	}()

	opts := sim.Options{
		Runs:    cfg.Simulation.Runs,
		Seed:    cfg.Simulation.Seed,
		Workers: cfg.Simulation.Workers,
		Verbose: *verbose,
	}

	if *optimize {
		if err := runOptimizer(ctx, deck, reg, opts, logger); err != nil {
			logger.Fatal("optimization failed", zap.Error(err))
		}
		return
	}

	stats := sim.NewRunner(deck, opts, logger).Run(ctx)
	printReport(deck.Name, stats)

	if cfg.Database.Enabled {
		store, err := repository.New(ctx, cfg.Database.URL, logger)
		if err != nil {
			logger.Fatal("failed to connect to result store", zap.Error(err))
		}
		defer store.Close()
		if err := store.SaveBatch(ctx, deck.Name, opts.Seed, stats); err != nil {
			logger.Fatal("failed to persist batch", zap.Error(err))
		}
	}
}

func runKeepCheck(reg *cards.Registry, names string) error {
	var hand []cards.Card
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		c, ok := reg.Get(name)
		if !ok {
			return fmt.Errorf("unknown card %q", name)
		}
		hand = append(hand, c)
	}
	if game.ShouldKeep(hand) {
		fmt.Println("keep")
	} else {
		fmt.Println("mulligan")
	}
	return nil
}

func runOptimizer(ctx context.Context, deck cards.Deck, reg *cards.Registry,
	opts sim.Options, logger *zap.Logger) error {

	if *swapOut == "" || *swapIn == "" {
		return fmt.Errorf("-optimize requires -swap-out and -swap-in")
	}
	outcome, err := sim.OptimizeLands(ctx, deck, reg, *swapOut, *swapIn, *maxSwaps, opts, logger)
	if err != nil {
		return err
	}

	fmt.Printf("\nLand optimization: %s -> %s\n", *swapOut, *swapIn)
	for _, p := range outcome.Points {
		fmt.Printf("  %d swapped: %.2f%% win rate, avg win turn %.2f\n",
			p.Swapped, p.Stats.WinRate()*100, p.Stats.AvgWinTurn())
	}
	best := outcome.Best()
	fmt.Printf("Best: %d copies swapped (%.2f%% win rate)\n",
		best.Swapped, best.Stats.WinRate()*100)
	return nil
}

func printReport(deckName string, stats *sim.Stats) {
	fmt.Printf("\nDeck: %s\n", deckName)
	fmt.Printf("Games: %d  Wins: %d (%.2f%%)  Avg win turn: %.2f\n",
		stats.Runs, stats.Wins, stats.WinRate()*100, stats.AvgWinTurn())

	turns := stats.Turns()
	if len(turns) == 0 {
		return
	}
	fmt.Println("\nTurn  Wins   Cumulative")
	maxWins := 0
	for _, n := range stats.WinTurns {
		if n > maxWins {
			maxWins = n
		}
	}
	for _, t := range turns {
		n := stats.WinTurns[t]
		bar := strings.Repeat("#", barWidth(n, maxWins))
		fmt.Printf("%4d  %5d  %7.2f%%  %s\n", t, n, stats.WinRateByTurn(t)*100, bar)
	}
}

// barWidth scales a histogram bar to at most 40 characters.
func barWidth(n, max int) int {
	if max == 0 {
		return 0
	}
	w := n * 40 / max
	if w == 0 && n > 0 {
		w = 1
	}
	return w
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
