package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusroute/core"
)

// edgeLine captures source, target and seconds of one edge description.
// Names are letters, digits and the range ' '..'.' (space through period),
// which admits punctuation such as ' & , ( ) ! and -.
var edgeLine = regexp.MustCompile(`"([a-zA-Z0-9 -.]+)" -> "([a-zA-Z0-9 -.]+)" \[seconds=([0-9.]+)\]`)

// Report summarises one load.
type Report struct {
	// Lines is the number of lines read.
	Lines int

	// Edges is the number of edge lines applied to the graph.
	Edges int

	// Skipped is the number of lines that did not describe an edge.
	Skipped int

	// Locations lists nodes created by this load in first-seen order.
	Locations []string
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for skipped lines and load summaries.
func WithLogger(l *zap.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// Loader parses edge-list data into a graph. The zero value is not usable; call New.
type Loader struct {
	logger *zap.Logger
}

// New returns a Loader; without WithLogger it logs nowhere.
func New(opts ...Option) *Loader {
	ld := &Loader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(ld)
	}

	return ld
}

// LoadFile opens path and calls Load on its contents.
func (ld *Loader) LoadFile(ctx context.Context, path string, g *core.Graph[string]) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	rep, err := ld.Load(ctx, f, g)
	if err != nil {
		return rep, fmt.Errorf("loader: %s: %w", path, err)
	}

	return rep, nil
}

// Load reads r line by line and applies every edge line to g.
// It stops early if ctx is cancelled and returns ctx.Err(); the graph keeps
// whatever was applied up to that point.
func (ld *Loader) Load(ctx context.Context, r io.Reader, g *core.Graph[string]) (Report, error) {
	var rep Report
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		rep.Lines++
		line := sc.Text()

		m := edgeLine.FindStringSubmatch(line)
		if m == nil {
			rep.Skipped++
			ld.logger.Debug("skipping line", zap.Int("line", rep.Lines), zap.String("text", line))
			continue
		}
		seconds, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			rep.Skipped++
			ld.logger.Debug("skipping line with bad weight",
				zap.Int("line", rep.Lines), zap.String("seconds", m[3]), zap.Error(err))
			continue
		}

		if err := ld.apply(g, m[1], m[2], seconds, &rep); err != nil {
			return rep, fmt.Errorf("line %d: %w", rep.Lines, err)
		}
		rep.Edges++
	}
	if err := sc.Err(); err != nil {
		return rep, fmt.Errorf("loader: read: %w", err)
	}

	ld.logger.Info("graph data loaded",
		zap.Int("lines", rep.Lines),
		zap.Int("edges", rep.Edges),
		zap.Int("skipped", rep.Skipped),
		zap.Int("new_locations", len(rep.Locations)),
	)

	return rep, nil
}

// apply upserts both endpoints, then the edge, recording new locations.
func (ld *Loader) apply(g *core.Graph[string], from, to string, seconds float64, rep *Report) error {
	for _, v := range [2]string{from, to} {
		existed, err := g.InsertNode(v)
		if err != nil {
			return err
		}
		if !existed {
			rep.Locations = append(rep.Locations, v)
		}
	}

	return g.InsertEdge(from, to, seconds)
}
