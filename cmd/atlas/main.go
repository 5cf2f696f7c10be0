// Command atlas is an interactive prompt over the region graph.
//
// It loads the two datasets once at startup, then answers "info" and "route"
// queries until the session ends. Lookup failures are reported per attempt
// and never terminate the session; dataset corruption aborts startup.
//
// Usage:
//
//	atlas [-config atlas.toml] [-verbose]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/adlayan/atlas/core"
	"github.com/adlayan/atlas/internal/config"
)

func main() {
	cfgPath := flag.String("config", "", "path of the TOML config file (defaults apply when omitted)")
	verbose := flag.Bool("verbose", false, "log every traversal step of route queries")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			slog.Error("configuration rejected", "err", err)
			os.Exit(1)
		}
	}
	if *verbose {
		cfg.Verbose = true
	}

	g, err := buildGraph(cfg)
	if err != nil {
		slog.Error("graph construction failed", "err", err)
		os.Exit(1)
	}
	slog.Info("atlas loaded", "regions", g.Count())

	if err := runREPL(g, cfg); err != nil {
		slog.Error("session ended with error", "err", err)
		os.Exit(1)
	}
}

// buildGraph opens both datasets and runs the one-time construction.
func buildGraph(cfg config.Config) (*core.Graph, error) {
	regions, err := os.Open(cfg.Regions)
	if err != nil {
		return nil, fmt.Errorf("open region dataset: %w", err)
	}
	defer regions.Close()

	adjacency, err := os.Open(cfg.Adjacency)
	if err != nil {
		return nil, fmt.Errorf("open adjacency dataset: %w", err)
	}
	defer adjacency.Close()

	return core.NewGraph(regions, adjacency)
}
