package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/adlayan/atlas/core"
	"github.com/adlayan/atlas/internal/config"
	"github.com/adlayan/atlas/route"
)

// errSameRegion rejects a route query whose endpoints coincide before the
// algorithm is invoked; no path or fuel computation is meaningful for it.
var errSameRegion = errors.New("source and destination are the same region")

const helpText = `Commands:
  info <region>           show a region's group, cost and connections
  route <from>,<to>       find the minimum-hop route and its fuel statistics
  regions                 list all known region names
  help                    show this help
  quit                    leave the prompt`

// runREPL drives the interactive session: line editing and history via
// liner, one command dispatched per line. Query errors are printed and the
// loop continues; only I/O failures of the prompt itself end the session.
func runREPL(g *core.Graph, cfg config.Config) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			if _, err = line.ReadHistory(f); err != nil {
				slog.Warn("history not restored", "err", err)
			}
			f.Close()
		}
	}

	for {
		input, err := line.Prompt("atlas> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.EqualFold(input, "quit") || strings.EqualFold(input, "exit") {
			break
		}

		out, err := execute(g, input, cfg.Verbose)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
			continue
		}
		fmt.Println(out)
	}

	if cfg.History != "" {
		if f, err := os.Create(cfg.History); err == nil {
			if _, err = line.WriteHistory(f); err != nil {
				slog.Warn("history not saved", "err", err)
			}
			f.Close()
		}
	}

	return nil
}

// execute dispatches one command line and returns the rendered reply.
// Region names may contain spaces, so route arguments are comma-separated.
func execute(g *core.Graph, input string, verbose bool) (string, error) {
	command, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(command) {
	case "help":
		return helpText, nil

	case "regions":
		return renderRegionList(g.RegionNames()), nil

	case "info":
		if rest == "" {
			return "", errors.New(`usage: info <region>`)
		}
		r, err := g.Region(rest)
		if err != nil {
			return "", err
		}

		return renderRegion(r), nil

	case "route":
		from, to, ok := strings.Cut(rest, ",")
		if !ok {
			return "", errors.New(`usage: route <from>,<to>`)
		}
		src, err := g.Region(from)
		if err != nil {
			return "", err
		}
		dst, err := g.Region(to)
		if err != nil {
			return "", err
		}
		if src.Name == dst.Name {
			return "", errSameRegion
		}

		var opts []route.Option
		if verbose {
			opts = append(opts,
				route.WithOnEnqueue(func(name string, depth int) {
					slog.Debug("discovered", "region", name, "depth", depth)
				}),
				route.WithOnDequeue(func(name string, depth int) {
					slog.Debug("expanding", "region", name, "depth", depth)
				}),
			)
		}
		res, err := route.ShortestRoute(g, src, dst, opts...)
		if err != nil {
			return "", err
		}

		return renderRoute(res), nil

	default:
		return "", fmt.Errorf("unknown command %q (try \"help\")", command)
	}
}
