// Command campusroute loads a campus walking-time file and prints the
// shortest route between two locations, optionally through a third.
//
// Usage:
//
//	campusroute [-config file.yaml] [-env .env] [-data campus.dot] -list
//	campusroute [...] -from "Memorial Union" -to "Computer Sciences" [-via "Union South"] [-times]
//	campusroute [...] -from "Memorial Union" -reach
//
// Settings come from the YAML file, then the .env file, then CAMPUSROUTE_*
// variables; -data overrides all of them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusroute/config"
	"github.com/katalvlaran/campusroute/logging"
	"github.com/katalvlaran/campusroute/route"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("campusroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML settings file")
		envFile    = fs.String("env", "", ".env file exported before reading CAMPUSROUTE_* variables")
		dataFile   = fs.String("data", "", "edge-list data file (overrides config)")
		from       = fs.String("from", "", "start location")
		to         = fs.String("to", "", "destination location")
		via        = fs.String("via", "", "optional intermediate location")
		showTimes  = fs.Bool("times", false, "print the walking time of every leg")
		list       = fs.Bool("list", false, "print all known locations and exit")
		reach      = fs.Bool("reach", false, "print every location walkable from -from and exit")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}

	logger, err := logging.New(cfg.Log, stderr, zap.String("app", "campusroute"))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	svc := route.NewService(route.WithLogger(logger), route.WithNodeCapacity(cfg.NodeCapacity))
	if _, err := svc.Load(ctx, cfg.DataFile); err != nil {
		logger.Error("failed to load graph data", zap.String("path", cfg.DataFile), zap.Error(err))
		return 1
	}

	if *list {
		for _, loc := range svc.Locations() {
			fmt.Fprintln(stdout, loc)
		}
		return 0
	}

	if *reach && *from != "" {
		locs, err := svc.Reachable(*from)
		if err != nil {
			logger.Error("reachability query failed", zap.String("from", *from), zap.Error(err))
			return 1
		}
		for _, loc := range locs {
			fmt.Fprintln(stdout, loc)
		}
		return 0
	}

	if *from == "" || *to == "" {
		fmt.Fprintln(stderr, "campusroute: -from and -to are required unless -list is set")
		fs.Usage()
		return 2
	}

	if err := printRoute(stdout, svc, *from, *via, *to, *showTimes); err != nil {
		logger.Error("route query failed",
			zap.String("from", *from), zap.String("via", *via), zap.String("to", *to), zap.Error(err))
		return 1
	}

	return 0
}

// printRoute writes the path, optional per-leg times and the total.
func printRoute(w io.Writer, svc *route.Service, from, via, to string, showTimes bool) error {
	var (
		path  []string
		times []float64
		err   error
	)
	if via != "" {
		if path, err = svc.ShortestPathVia(from, via, to); err != nil {
			return err
		}
		times, err = svc.TravelTimesVia(from, via, to)
	} else {
		if path, err = svc.ShortestPath(from, to); err != nil {
			return err
		}
		times, err = svc.TravelTimes(from, to)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Path: %s\n", strings.Join(path, " -> "))
	total := 0.0
	for i, t := range times {
		if showTimes {
			fmt.Fprintf(w, "  %s -> %s: %gs\n", path[i], path[i+1], t)
		}
		total += t
	}
	fmt.Fprintf(w, "Total: %gs\n", total)

	return nil
}
