package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/alexrkaufman/strawcoin/internal/config"
	"github.com/alexrkaufman/strawcoin/internal/handlers"
	"github.com/alexrkaufman/strawcoin/internal/pg"
	"github.com/alexrkaufman/strawcoin/internal/repo"
	"github.com/alexrkaufman/strawcoin/internal/scheduler"
	"github.com/alexrkaufman/strawcoin/internal/service"
	"github.com/alexrkaufman/strawcoin/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	sched *scheduler.Scheduler
	pool  *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	if err := a.connect(ctx); err != nil {
		return err
	}
	a.api = handlers.New(a.srv)

	if err := a.prepareLedger(ctx); err != nil {
		return err
	}

	if err := a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startScheduler(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// connect loads configuration, opens the migrated pool and builds the
// repositories and services on top of it.
func (a *Application) connect(ctx context.Context) error {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if cfg.UsesDefaultSecret() {
		zap.L().Warn("SECRET_KEY is not set, session tokens are signed with the development key")
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.pool = pool
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(cfg, a.repo, txManager)
	return nil
}

// ClearSessions ends every stored session and exits without serving. It is
// the way back in when the privileged session is lost and no passphrase is
// configured.
func (a *Application) ClearSessions(ctx context.Context) (int64, error) {
	if err := a.connect(ctx); err != nil {
		return 0, err
	}
	defer a.pool.Close()
	return a.clearSessions(ctx)
}

func (a *Application) clearSessions(ctx context.Context) (int64, error) {
	n, err := a.srv.Sessions.ClearSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("can't clear sessions: %w", err)
	}
	return n, nil
}

// prepareLedger makes sure the privileged account exists and drops
// sessions that expired while the process was down.
func (a *Application) prepareLedger(ctx context.Context) error {
	if _, err := a.srv.Ledger.EnsurePrivilegedAccount(ctx); err != nil {
		zap.L().Error("privileged account setup failed", zap.Error(err))
		return fmt.Errorf("can't ensure privileged account: %w", err)
	}

	if _, err := a.srv.Sessions.PurgeExpired(ctx); err != nil {
		zap.L().Warn("startup session cleanup failed", zap.Error(err))
	}
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startScheduler(ctx context.Context) {
	a.sched = scheduler.New(a.srv.Ledger, a.srv.Market, a.srv.Sessions, scheduler.Options{
		Enabled:                a.cfg.EnableRedistribution,
		RedistributionInterval: a.cfg.RedistributionInterval,
		SnapshotInterval:       a.cfg.SnapshotInterval,
		SnapshotRetention:      a.cfg.SnapshotRetention,
	})
	a.sched.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		if err := a.sched.Stop(a.cfg.SchedulerStopTimeout); err != nil {
			zap.L().Warn("scheduler stop", zap.Error(err))
		}
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.pool != nil {
		a.pool.Close()
	}
	a.ready = false

	return appErr
}
