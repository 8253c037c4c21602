package incdbscan

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/solrune/incdbscan/core"
	"github.com/solrune/incdbscan/update"
)

// Option configures an Engine at construction time. Options are applied in
// the order given; a later option overrides an earlier one touching the
// same field.
type Option func(*config)

type config struct {
	eps    float64
	p      float64
	minPts int
	logger *zap.Logger
}

func newConfig() *config {
	return &config{p: 2, logger: zap.NewNop()}
}

// WithEps sets the neighborhood radius. Required: New fails if eps is never
// set to a positive value.
func WithEps(eps float64) Option {
	return func(c *config) { c.eps = eps }
}

// WithMinPts sets the core-point threshold (including the point itself).
// Required: New fails if min_pts is never set to a positive value.
func WithMinPts(minPts int) Option {
	return func(c *config) { c.minPts = minPts }
}

// WithP sets the Minkowski distance parameter p (p=2 is Euclidean, the
// default; p=+Inf is Chebyshev). Rarely needed outside tests comparing
// against a specific metric.
func WithP(p float64) Option {
	return func(c *config) { c.p = p }
}

// WithLogger attaches a zap logger for Debug/Warn diagnostics. The engine
// never logs on its hot path (Insert/Delete's per-point work); logging is
// confined to construction, Reset, and anomalies. Defaults to a no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Engine holds one incrementally maintained clustering. It is not safe for
// concurrent use: Insert/Delete/Reset mutate shared state directly, matching
// the single-writer contract of every store it owns.
type Engine struct {
	id     uuid.UUID
	minPts int
	stores *update.Stores
	log    *zap.Logger
}

// New constructs an Engine. WithEps and WithMinPts are required; New returns
// ErrInvalidParameter (wrapped with the offending field) if either is
// missing or out of domain, or if p is invalid for the chosen metric.
func New(opts ...Option) (*Engine, error) {
	cfg := newConfig()
	for _, o := range opts {
		o(cfg)
	}

	if cfg.minPts < 1 {
		return nil, fmt.Errorf("%w: min_pts must be >= 1, got %d", core.ErrInvalidParameter, cfg.minPts)
	}
	metric, err := core.NewMetric(cfg.p, cfg.eps)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		id:     uuid.New(),
		minPts: cfg.minPts,
		stores: newStores(metric, cfg.minPts),
		log:    cfg.logger,
	}
	e.log.Debug("engine created",
		zap.String("instance_id", e.id.String()),
		zap.Float64("eps", cfg.eps),
		zap.Float64("p", cfg.p),
		zap.Int("min_pts", cfg.minPts),
	)

	return e, nil
}

func newStores(metric *core.Metric, minPts int) *update.Stores {
	return &update.Stores{
		Metric:  metric,
		Index:   core.NewSpatialIndex(),
		Objects: core.NewObjectStore(minPts),
		Graph:   core.NewNeighborGraph(),
		Labels:  core.NewLabelRegistry(),
	}
}

// InstanceID returns an opaque identifier for this engine, useful for
// correlating log lines across multiple concurrently-held engines; it has
// no bearing on object or cluster identity.
func (e *Engine) InstanceID() uuid.UUID { return e.id }

// Insert adds coords to the clustering and returns the id it was assigned
// (an existing id, if coords bit-exactly duplicates a live point).
func (e *Engine) Insert(coords []float64) (core.ObjectID, error) {
	id, err := update.Insert(e.stores, coords)
	if err != nil {
		e.log.Warn("insert failed", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// InsertBatch inserts every point in coords in order, stopping at the first
// error. It returns the ids assigned to every point inserted before the
// failure, followed by the error.
func (e *Engine) InsertBatch(coords [][]float64) ([]core.ObjectID, error) {
	ids := make([]core.ObjectID, 0, len(coords))
	for _, c := range coords {
		id, err := e.Insert(c)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Delete removes one occurrence of coords, returning false if none was
// live.
func (e *Engine) Delete(coords []float64) (bool, error) {
	ok, err := update.Delete(e.stores, coords)
	if err != nil {
		e.log.Warn("delete failed", zap.Error(err))
		return false, err
	}
	return ok, nil
}

// DeleteBatch deletes every point in coords in order, stopping at the first
// error. It returns how many deletions before the failure (or the whole
// batch) actually removed a live point.
func (e *Engine) DeleteBatch(coords [][]float64) (int, error) {
	removed := 0
	for _, c := range coords {
		ok, err := e.Delete(c)
		if err != nil {
			return removed, err
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}

// LabelOf returns id's current cluster label. The second return is false if
// id is not (or no longer) live.
func (e *Engine) LabelOf(id core.ObjectID) (core.ClusterLabel, bool) {
	if _, ok := e.stores.Objects.Get(id); !ok {
		return core.Unclassified, false
	}
	return e.stores.Labels.Get(id), true
}

// LabelAt returns the cluster label of the live point at coords, as a
// float64 so that core.NotFound (NaN) can represent "no live point at these
// coordinates" uniformly alongside valid integral labels.
func (e *Engine) LabelAt(coords []float64) (float64, error) {
	if err := core.ValidateCoordinates(coords); err != nil {
		return 0, err
	}
	id, ok := e.stores.Index.Lookup(coords)
	if !ok {
		return core.NotFound, nil
	}
	return float64(e.stores.Labels.Get(id)), nil
}

// Stats summarizes the engine's current live state.
type Stats struct {
	Points   int
	Core     int
	Border   int
	Noise    int
	Clusters int
}

// Stats computes a fresh snapshot in O(n) over the live point set. It is a
// diagnostic, not a cached counter: nothing in Insert/Delete maintains it
// incrementally.
func (e *Engine) Stats() Stats {
	var s Stats
	clusters := make(map[core.ClusterLabel]struct{})

	for _, id := range e.stores.Objects.IDs() {
		s.Points++
		rec, _ := e.stores.Objects.Get(id)
		label := e.stores.Labels.Get(id)
		switch {
		case rec.IsCore:
			s.Core++
		case label == core.Noise || label == core.Unclassified:
			s.Noise++
		default:
			s.Border++
		}
		if label >= 0 {
			clusters[label] = struct{}{}
		}
	}
	s.Clusters = len(clusters)

	return s
}

// Reset discards every live point and cluster, returning the engine to its
// just-constructed state while keeping the configured metric and min_pts.
func (e *Engine) Reset() {
	metric := e.stores.Metric
	e.stores = newStores(metric, e.minPts)
	e.log.Debug("engine reset", zap.String("instance_id", e.id.String()))
}
