package workers

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

const (
	defaultBatchSize = 1000
	// defaultLookback is how many ids below the cursor every refresh rescans.
	// Auto-increment ids can commit out of order.
	defaultLookback = 1000
)

type idSource func(ctx context.Context, cursor, limit int64) ([]int64, error)

// bloomRefreshWorker pushes ids created since the last pass into the bloom filter.
// Each namespace keeps the highest id seen; a refresh starts lookback ids below it.
// Anything still missed is added by the existence check that finds it.
type bloomRefreshWorker struct {
	bloom     domain.BloomRepository
	sources   map[string]idSource
	interval  time.Duration
	batchSize int64
	lookback  int64

	mu      sync.Mutex
	cursors map[string]int64
}

var _ domain.BloomRefresher = (*bloomRefreshWorker)(nil)

func NewBloomRefreshWorker(users domain.UserRepository, content domain.ContentRepository, bloom domain.BloomRepository, interval time.Duration) *bloomRefreshWorker {
	sources := map[string]idSource{
		domain.BloomUsers: users.FetchIDs,
	}
	for _, kind := range domain.TargetKinds {
		sources[string(kind)] = func(ctx context.Context, cursor, limit int64) ([]int64, error) {
			return content.FetchIDs(ctx, kind, cursor, limit)
		}
	}
	return &bloomRefreshWorker{
		bloom:     bloom,
		sources:   sources,
		interval:  interval,
		batchSize: defaultBatchSize,
		lookback:  defaultLookback,
		cursors:   make(map[string]int64),
	}
}

func (w *bloomRefreshWorker) Seed(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for ns, src := range w.sources {
		added, err := w.drain(ctx, ns, src, w.cursors[ns])
		if err != nil {
			return err
		}
		logrus.WithField("namespace", ns).Infof("bloom filter seeded with %d ids", added)
	}
	return nil
}

func (w *bloomRefreshWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.refresh(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down BloomRefreshWorker")
			return
		}
	}
}

func (w *bloomRefreshWorker) refresh(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for ns, src := range w.sources {
		added, err := w.drain(ctx, ns, src, max(w.cursors[ns]-w.lookback, 0))
		if err != nil {
			logrus.WithField("namespace", ns).Errorf("failed to refresh bloom filter: %v", err)
			continue
		}
		if added > 0 {
			logrus.WithField("namespace", ns).Debugf("bloom filter refreshed with %d ids", added)
		}
	}
}

// drain reads ids above from, batch by batch, into the filter. The namespace
// cursor only moves forward, after a batch reached redis. Must be called with mu held.
func (w *bloomRefreshWorker) drain(ctx context.Context, ns string, src idSource, from int64) (int, error) {
	added := 0
	for {
		ids, err := src(ctx, from, w.batchSize)
		if err != nil {
			return added, err
		}
		if len(ids) == 0 {
			return added, nil
		}
		if err := w.bloom.BulkAdd(ctx, ns, ids); err != nil {
			return added, err
		}
		from = ids[len(ids)-1]
		w.cursors[ns] = max(w.cursors[ns], from)
		added += len(ids)
		if int64(len(ids)) < w.batchSize {
			return added, nil
		}
	}
}
