package route

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusroute/bfs"
	"github.com/katalvlaran/campusroute/core"
	"github.com/katalvlaran/campusroute/dijkstra"
	"github.com/katalvlaran/campusroute/loader"
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for the Service and its loader.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGraph makes the Service answer queries over g instead of a fresh graph.
// The Service takes ownership: callers must not mutate g afterwards.
func WithGraph(g *core.Graph[string]) Option {
	return func(s *Service) {
		if g != nil {
			s.graph = g
		}
	}
}

// WithNodeCapacity sizes the node index of the Service's own graph.
// Ignored when WithGraph is also given.
func WithNodeCapacity(n int) Option {
	return func(s *Service) {
		s.capacity = n
	}
}

// Service answers route queries over one graph of named locations.
type Service struct {
	mu       sync.RWMutex
	graph    *core.Graph[string]
	loader   *loader.Loader
	logger   *zap.Logger
	capacity int
}

// NewService builds a Service over an empty graph unless WithGraph is given.
func NewService(opts ...Option) *Service {
	s := &Service{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.graph == nil {
		var gopts []core.GraphOption
		if s.capacity > 0 {
			gopts = append(gopts, core.WithNodeCapacity(s.capacity))
		}
		s.graph = core.NewGraph[string](gopts...)
	}
	s.loader = loader.New(loader.WithLogger(s.logger.Named("loader")))

	return s
}

// Load reads an edge-list file into the graph. Data accumulates across loads.
func (s *Service) Load(ctx context.Context, path string) (loader.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loader.LoadFile(ctx, path, s.graph)
}

// LoadReader is Load for an already opened source.
func (s *Service) LoadReader(ctx context.Context, r io.Reader) (loader.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loader.Load(ctx, r, s.graph)
}

// Connect upserts both locations and sets the walking time from→to.
func (s *Service) Connect(from, to string, seconds float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range [2]string{from, to} {
		if _, err := s.graph.InsertNode(v); err != nil {
			return fmt.Errorf("route: connect %q: %w", v, err)
		}
	}
	if err := s.graph.InsertEdge(from, to, seconds); err != nil {
		return fmt.Errorf("route: connect: %w", err)
	}

	return nil
}

// Locations returns every known location in insertion order.
func (s *Service) Locations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph.Nodes()
}

// ShortestPath returns the locations on a shortest walk from start to end.
func (s *Service) ShortestPath(start, end string) ([]string, error) {
	leg, err := s.plan(start, end)
	if err != nil {
		return nil, err
	}

	return leg.path.Nodes, nil
}

// TravelTimes returns the walking time of each consecutive pair on the
// shortest path from start to end; empty when start == end.
func (s *Service) TravelTimes(start, end string) ([]float64, error) {
	leg, err := s.plan(start, end)
	if err != nil {
		return nil, err
	}

	return leg.times, nil
}

// TotalTime returns the cost of the shortest path from start to end.
func (s *Service) TotalTime(start, end string) (float64, error) {
	leg, err := s.plan(start, end)
	if err != nil {
		return 0, err
	}

	return leg.path.Cost, nil
}

// ShortestPathVia returns shortest(start, via) followed by shortest(via, end)
// with via listed once.
func (s *Service) ShortestPathVia(start, via, end string) ([]string, error) {
	r, err := s.planVia(start, via, end)
	if err != nil {
		return nil, err
	}

	return r.path.Nodes, nil
}

// TravelTimesVia returns the per-leg walking times along ShortestPathVia.
func (s *Service) TravelTimesVia(start, via, end string) ([]float64, error) {
	r, err := s.planVia(start, via, end)
	if err != nil {
		return nil, err
	}

	return r.times, nil
}

// TotalTimeVia returns the summed cost of both halves of a via route.
func (s *Service) TotalTimeVia(start, via, end string) (float64, error) {
	r, err := s.planVia(start, via, end)
	if err != nil {
		return 0, err
	}

	return r.path.Cost, nil
}

// Reachable returns every location walkable from start, nearest hops first.
// start itself is the first element.
func (s *Service) Reachable(start string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, err := bfs.BFS(s.graph, start)
	if err != nil {
		return nil, fmt.Errorf("route: reachable from %s: %w", start, err)
	}

	return res.Order, nil
}

// FewestStops returns a path from start to end with the fewest hops,
// regardless of walking time.
func (s *Service) FewestStops(start, end string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.graph.ContainsNode(end) {
		return nil, fmt.Errorf("route: %s→%s: %w: end %v", start, end, core.ErrUnknownNode, end)
	}
	res, err := bfs.BFS(s.graph, start)
	if err != nil {
		return nil, fmt.Errorf("route: %s→%s: %w", start, end, err)
	}
	path, err := res.PathTo(end)
	if err != nil {
		return nil, fmt.Errorf("route: %s→%s: %w: %w", start, end, dijkstra.ErrNoPath, err)
	}

	return path, nil
}

// leg is one answered query: the path plus the weight of each hop.
type leg struct {
	path  dijkstra.Path[string]
	times []float64
}

// plan runs one search under the read lock and collects hop weights.
func (s *Service) plan(start, end string) (leg, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.planLocked(start, end)
}

func (s *Service) planLocked(start, end string) (leg, error) {
	p, err := dijkstra.ShortestPath(s.graph, start, end)
	if err != nil {
		s.logger.Debug("route query failed",
			zap.String("start", start), zap.String("end", end), zap.Error(err))
		return leg{}, fmt.Errorf("route: %s→%s: %w", start, end, err)
	}

	times := make([]float64, 0, len(p.Nodes)-1)
	for i := 0; i+1 < len(p.Nodes); i++ {
		w, err := s.graph.EdgeWeight(p.Nodes[i], p.Nodes[i+1])
		if err != nil {
			return leg{}, fmt.Errorf("route: %s→%s: %w", start, end, err)
		}
		times = append(times, w)
	}
	s.logger.Debug("route query",
		zap.String("start", start), zap.String("end", end),
		zap.Int("hops", len(times)), zap.Float64("cost", p.Cost))

	return leg{path: p, times: times}, nil
}

// planVia answers both halves under a single read lock and joins them.
func (s *Service) planVia(start, via, end string) (leg, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	first, err := s.planLocked(start, via)
	if err != nil {
		return leg{}, err
	}
	second, err := s.planLocked(via, end)
	if err != nil {
		return leg{}, err
	}

	nodes := make([]string, 0, len(first.path.Nodes)+len(second.path.Nodes)-1)
	nodes = append(nodes, first.path.Nodes[:len(first.path.Nodes)-1]...)
	nodes = append(nodes, second.path.Nodes...)

	times := make([]float64, 0, len(first.times)+len(second.times))
	times = append(times, first.times...)
	times = append(times, second.times...)

	return leg{
		path:  dijkstra.Path[string]{Nodes: nodes, Cost: first.path.Cost + second.path.Cost},
		times: times,
	}, nil
}
