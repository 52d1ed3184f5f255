package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/fitlog/internal/catalog"
	"github.com/claude/fitlog/internal/cli"
	"github.com/claude/fitlog/internal/config"
	"github.com/claude/fitlog/internal/models"
	"github.com/claude/fitlog/internal/tracker"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("fitlog", Version)
		return
	}

	// Optional .env for FITLOG_ overrides
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()}))
	log.Info("FitLog starting", "version", Version)

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Error("failed to load exercise catalog", "error", err)
		os.Exit(1)
	}
	log.Info("exercise catalog loaded", "groups", len(cat.Groups()))

	store := tracker.NewStore(log)
	store.Notify = func(userName string, g tracker.Goal) {
		fmt.Printf("\nGoal achieved! %s reached the %s target of %g.\n", userName, g.Metric, g.Target)
	}

	// Pre-register the configured default user so prompts can be skipped.
	if cfg.User.Name != "" {
		level := models.LevelIntermediate
		if cfg.User.FitnessLevel != "" {
			level, _ = models.ParseFitnessLevel(cfg.User.FitnessLevel)
		}
		if _, err := store.GetOrCreate(cfg.User.Name, cfg.User.WeightKg, level); err != nil {
			log.Error("invalid default user profile", "error", err)
			os.Exit(1)
		}
	}

	c := cli.New(store, cat, os.Stdin, os.Stdout, log)
	if err := c.Run(); err != nil {
		log.Error("session failed", "error", err)
		os.Exit(1)
	}
}
