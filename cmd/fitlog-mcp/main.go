package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/fitlog/internal/catalog"
	"github.com/claude/fitlog/internal/config"
	fitlogmcp "github.com/claude/fitlog/internal/mcp"
	"github.com/claude/fitlog/internal/tracker"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("fitlog-mcp", Version)
		return
	}

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()}))
	log.Info("FitLog MCP server starting", "version", Version)

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Error("failed to load exercise catalog", "error", err)
		os.Exit(1)
	}

	store := tracker.NewStore(log)

	s := fitlogmcp.New(store, cat, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server failed", "error", err)
		os.Exit(1)
	}
}
