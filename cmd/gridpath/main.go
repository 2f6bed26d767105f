// Command gridpath runs the grid search strategies corner to corner and
// prints a summary, the path drawn on the map, or the per-step trace.
//
//	gridpath -strategy astar -map
//	gridpath -strategy all -config grid.yaml
//	gridpath -strategy dijkstra -trace > trace.csv
//	gridpath -dump-config > grid.yaml
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

func main() {
	log.SetFormatter(engine.Formatter{})
	log.SetOutput(os.Stderr)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.WithError(err).Error("gridpath failed.")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	var (
		strategy   = fs.String("strategy", "all", "search strategy: bfs, dfs, dijkstra, astar or all")
		configPath = fs.String("config", "", "path to a YAML grid config (default: built-in 20x20 grid)")
		showMap    = fs.Bool("map", false, "draw each path on the grid")
		showTrace  = fs.Bool("trace", false, "write the per-step trace as CSV")
		descent    = fs.Int("descent", -1, "rebuild A* paths by g-score descent with this cap (0: default cap)")
		dumpConfig = fs.Bool("dump-config", false, "print the effective grid config as YAML and exit")
		verbose    = fs.Bool("v", false, "log at debug level")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *dumpConfig {
		return gridgraph.WriteConfig(stdout, cfg)
	}

	opts := []engine.Option{engine.WithLogger(log.StandardLogger())}
	if *descent >= 0 {
		opts = append(opts, engine.WithDescentReconstruction(*descent))
	}
	e, err := engine.New(cfg, opts...)
	if err != nil {
		return err
	}

	strategies := engine.Strategies()
	if *strategy != "all" {
		s, err := engine.ParseStrategy(*strategy)
		if err != nil {
			return err
		}
		strategies = []engine.Strategy{s}
	}

	for _, s := range strategies {
		res, err := e.RunCorners(s.String())
		if err != nil {
			return err
		}
		if err := report(stdout, e.Grid(), s, res, *showMap, *showTrace); err != nil {
			return err
		}
	}

	return nil
}

func loadConfig(path string) (gridgraph.Config, error) {
	if path == "" {
		return gridgraph.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return gridgraph.Config{}, err
	}
	defer f.Close()

	return gridgraph.LoadConfig(f)
}

func report(w io.Writer, g *gridgraph.Grid, s engine.Strategy, res *search.Result, showMap, showTrace bool) error {
	status := "found"
	if !res.Found {
		status = "no path"
	} else if res.Truncated {
		status = "found (partial path)"
	}
	fmt.Fprintf(w, "%-8s %s cost=%d steps=%d visited=%d\n",
		s, status, res.Cost, res.Steps(), res.Visited())

	if showMap {
		start, end := g.Corners()
		fmt.Fprint(w, g.Render(start, end, res.Path))
	}
	if showTrace {
		return writeTrace(w, s, res.Trace)
	}
	return nil
}

// writeTrace emits one CSV record per step: strategy, iteration, progress.
func writeTrace(w io.Writer, s engine.Strategy, tr search.Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"strategy", "iteration", "progress"}); err != nil {
		return err
	}
	for i := range tr.Iterations {
		rec := []string{s.String(), strconv.Itoa(tr.Iterations[i]), strconv.Itoa(tr.Progress[i])}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
