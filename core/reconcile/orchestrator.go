package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Result is the outcome of one kind's pass within a batch.
type Result struct {
	// Kind is the entity kind this result belongs to.
	Kind Kind `json:"kind"`

	// Outcome holds the applied diff counts on success, nil on failure.
	Outcome *Outcome `json:"outcome,omitempty"`

	// Err is the classified failure for this kind, nil on success.
	Err error `json:"-"`

	// Error is the string form of Err for API consumers.
	Error string `json:"error,omitempty"`
}

// Summary aggregates a batch synchronization across all kinds.
type Summary struct {
	// Started is when the batch began.
	Started time.Time `json:"started"`

	// Duration is the wall time of the whole batch.
	Duration time.Duration `json:"duration"`

	// Results holds one entry per kind, success or failure.
	Results map[Kind]Result `json:"results"`
}

// Failed returns the kinds whose pass failed.
func (s *Summary) Failed() []Kind {
	var kinds []Kind
	for k, r := range s.Results {
		if r.Err != nil {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Orchestrator coordinates reconciliation passes across entity kinds.
//
// It guarantees at most one pass in flight per kind: a second call for the
// same kind blocks until the first completes. Batch synchronization runs all
// registered kinds concurrently and joins on completion; duplicate concurrent
// batch requests coalesce into one run.
type Orchestrator struct {
	engine *Engine
	logger *zap.Logger

	mu       sync.Mutex
	adapters map[Kind]Adapter
	order    []Kind
	locks    map[Kind]*sync.Mutex

	active sync.Map // Kind -> bool, observational only
	sf     singleflight.Group
}

// NewOrchestrator creates an orchestrator over the given engine.
func NewOrchestrator(engine *Engine, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		engine:   engine,
		logger:   logger,
		adapters: make(map[Kind]Adapter),
		locks:    make(map[Kind]*sync.Mutex),
	}
}

// Register adds an adapter for one entity kind. Registration order is the
// launch order of SyncAll; dependency kinds should be registered before their
// dependents, though a violated ordering self-heals on the next cycle.
func (o *Orchestrator) Register(adapter Adapter) {
	o.mu.Lock()
	defer o.mu.Unlock()

	kind := adapter.Kind()
	if _, dup := o.adapters[kind]; !dup {
		o.order = append(o.order, kind)
	}
	o.adapters[kind] = adapter
	o.locks[kind] = &sync.Mutex{}
}

// Kinds returns the registered kinds in registration order.
func (o *Orchestrator) Kinds() []Kind {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Kind(nil), o.order...)
}

// Active reports whether a pass for the given kind is currently in flight.
// The flag is for UI consumption only and plays no part in synchronization.
func (o *Orchestrator) Active(kind Kind) bool {
	v, ok := o.active.Load(kind)
	return ok && v.(bool)
}

// Sync runs one reconciliation pass for the given kind.
//
// With records == nil the adapter fetches the full remote collection and
// stale local records are pruned. An explicit record list (e.g. the response
// of a single-record write) is reconciled as-is with pruning disabled.
func (o *Orchestrator) Sync(ctx context.Context, kind Kind, records []Record) (*Outcome, error) {
	o.mu.Lock()
	adapter, ok := o.adapters[kind]
	lock := o.locks[kind]
	o.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	lock.Lock()
	defer lock.Unlock()

	o.active.Store(kind, true)
	defer o.active.Store(kind, false)

	prune := records == nil
	if prune {
		fetched, err := adapter.Fetch(ctx)
		if err != nil {
			return nil, &FetchError{Kind: kind, Err: err}
		}
		records = fetched
	}

	return o.engine.Reconcile(ctx, adapter, records, prune)
}

// SyncAll runs a full fetch-and-reconcile pass for every registered kind
// concurrently and waits for all of them. One kind's failure is recorded in
// the summary and does not cancel or block the others. Concurrent SyncAll
// calls share a single run.
func (o *Orchestrator) SyncAll(ctx context.Context) *Summary {
	v, _, _ := o.sf.Do("sync-all", func() (interface{}, error) {
		return o.syncAll(ctx), nil
	})
	return v.(*Summary)
}

func (o *Orchestrator) syncAll(ctx context.Context) *Summary {
	kinds := o.Kinds()
	summary := &Summary{
		Started: time.Now(),
		Results: make(map[Kind]Result, len(kinds)),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, kind := range kinds {
		wg.Add(1)
		go func(kind Kind) {
			defer wg.Done()

			outcome, err := o.Sync(ctx, kind, nil)
			res := Result{Kind: kind, Outcome: outcome, Err: err}
			if err != nil {
				res.Error = err.Error()
				o.logger.Error("Kind synchronization failed",
					zap.String("kind", string(kind)), zap.Error(err))
			}

			mu.Lock()
			summary.Results[kind] = res
			mu.Unlock()
		}(kind)
	}

	wg.Wait()
	summary.Duration = time.Since(summary.Started)

	o.logger.Info("Batch synchronization finished",
		zap.Int("kinds", len(kinds)),
		zap.Int("failed", len(summary.Failed())),
		zap.Duration("duration", summary.Duration))

	return summary
}
