package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexrkaufman/strawcoin/internal/domain"
)

//go:generate mockgen -source=scheduler.go -destination=mock_scheduler.go -package=scheduler

var ErrStopTimeout = errors.New("scheduler did not stop in time")

type Ledger interface {
	Redistribute(ctx context.Context, amountPerAudience int64) (*domain.RedistributionResult, error)
	SnapshotAll(ctx context.Context) (int64, error)
	PruneSnapshots(ctx context.Context, retention time.Duration) (int64, error)
}

type Market interface {
	IsOpen(ctx context.Context) (bool, error)
	RedistributionAmount(ctx context.Context) (int64, error)
}

type Sessions interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type Options struct {
	Enabled                bool
	RedistributionInterval time.Duration
	SnapshotInterval       time.Duration
	SnapshotRetention      time.Duration
	Workers                int
}

type Scheduler struct {
	ledger   Ledger
	market   Market
	sessions Sessions
	opts     Options

	workerPool WorkerPoolI

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(ledger Ledger, market Market, sessions Sessions, opts Options) *Scheduler {
	if opts.Workers < 1 {
		opts.Workers = 2
	}
	return &Scheduler{
		ledger:   ledger,
		market:   market,
		sessions: sessions,
		opts:     opts,
	}
}

// Start launches the background loops. It returns immediately; use Stop to
// shut them down.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.opts.Enabled {
		zap.L().Info("Scheduler disabled")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.workerPool = NewWorkerPool(s.opts.Workers)

	zap.L().Info("Scheduler started",
		zap.Duration("redistribution_interval", s.opts.RedistributionInterval),
		zap.Duration("snapshot_interval", s.opts.SnapshotInterval),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.loop(gctx, "redistribution", s.opts.RedistributionInterval, false, s.RunRedistribution)
		return nil
	})
	g.Go(func() error {
		s.loop(gctx, "snapshot", s.opts.SnapshotInterval, true, s.RunSnapshot)
		return nil
	})

	go func(pool WorkerPoolI, done chan struct{}) {
		_ = g.Wait()
		pool.Close()
		zap.L().Info("Scheduler stopped")
		close(done)
	}(s.workerPool, s.done)
}

func (s *Scheduler) loop(ctx context.Context, name string, interval time.Duration, immediate bool, cycle func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if immediate {
		s.dispatch(ctx, name, cycle)
	}
	for {
		select {
		case <-ctx.Done():
			zap.L().Debug("Loop canceled", zap.String("loop", name))
			return
		case <-ticker.C:
			s.dispatch(ctx, name, cycle)
		}
	}
}

// dispatch hands one cycle to the worker pool and waits for it, so a loop
// never overlaps with itself.
func (s *Scheduler) dispatch(ctx context.Context, name string, cycle func(context.Context) error) {
	finished := make(chan struct{})
	err := s.workerPool.AddTask(ctx, func() error {
		defer close(finished)
		if err := cycle(ctx); err != nil {
			return fmt.Errorf("%s cycle: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return
	}
	select {
	case <-finished:
	case <-ctx.Done():
	}
}

// RunRedistribution performs one redistribution cycle if the market is open.
func (s *Scheduler) RunRedistribution(ctx context.Context) error {
	open, err := s.market.IsOpen(ctx)
	if err != nil {
		return err
	}
	if !open {
		zap.L().Info("Market closed, redistribution skipped")
		return nil
	}

	amount, err := s.market.RedistributionAmount(ctx)
	if err != nil {
		return err
	}

	result, err := s.ledger.Redistribute(ctx, amount)
	if errors.Is(err, domain.ErrNoParticipants) {
		zap.L().Info("Redistribution skipped, no participants")
		return nil
	}
	if err != nil {
		return err
	}

	zap.L().Info("Redistribution completed",
		zap.Int("performers", result.PerformerCount),
		zap.Int("audience", result.AudienceCount),
		zap.Int("eligible", result.Eligible),
		zap.Strings("skipped", result.Skipped),
		zap.Int64("total", result.TotalRedistributed),
	)
	return nil
}

// RunSnapshot records balances, prunes old snapshots and purges idle
// sessions. A failing step does not prevent the others from running.
func (s *Scheduler) RunSnapshot(ctx context.Context) error {
	var errs []error

	taken, err := s.ledger.SnapshotAll(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("snapshot: %w", err))
	}
	pruned, err := s.ledger.PruneSnapshots(ctx, s.opts.SnapshotRetention)
	if err != nil {
		errs = append(errs, fmt.Errorf("prune: %w", err))
	}
	purged, err := s.sessions.PurgeExpired(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("purge sessions: %w", err))
	}

	zap.L().Debug("Snapshot cycle",
		zap.Int64("snapshots", taken),
		zap.Int64("pruned", pruned),
		zap.Int64("sessions_purged", purged),
	)
	return errors.Join(errs...)
}

// Stop cancels the loops and waits up to timeout for them to exit.
func (s *Scheduler) Stop(timeout time.Duration) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return ErrStopTimeout
	}
}
