// Package sweep runs the periodic bet reconciliation sweep.
package sweep

import (
	"context"
	"log/slog"

	"evalert/config"
	"evalert/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Sweeper periodically reconciles every user's starred bets so statuses stay
// fresh even for users who never open the app.
type Sweeper struct {
	cron      *cron.Cron
	betUC     usecase.BetUsecase
	userLimit int
	logger    *slog.Logger
}

// NewSweeper builds a sweeper from the configured schedule. The schedule uses
// the standard five-field cron format plus descriptors like "@every 15m".
func NewSweeper(cfg *config.SweepConfig, betUC usecase.BetUsecase, logger *slog.Logger) (*Sweeper, error) {
	s := &Sweeper{
		cron:      cron.New(),
		betUC:     betUC,
		userLimit: cfg.UserLimit,
		logger:    logger,
	}

	if _, err := s.cron.AddFunc(cfg.Schedule, s.runOnce); err != nil {
		return nil, errors.Wrapf(err, "invalid sweep schedule %q", cfg.Schedule)
	}

	return s, nil
}

// Start begins the schedule. Jobs run on the cron goroutine.
func (s *Sweeper) Start() {
	s.cron.Start()
	s.logger.Info("Reconcile sweeper started")
}

// Stop halts scheduling and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("Reconcile sweeper stopped")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "sweeper shutdown timed out")
	}
}

func (s *Sweeper) runOnce() {
	ctx := context.Background()

	updated, err := s.betUC.ReconcileAll(ctx, s.userLimit)
	if err != nil {
		s.logger.Error("Reconcile sweep failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Reconcile sweep completed", slog.Int("updated", updated))
}

// SweeperParams holds dependencies for the sweeper, injected by Fx
type SweeperParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	BetUC  usecase.BetUsecase
	Logger *slog.Logger
}

// RegisterSweeper wires the sweeper into the Fx lifecycle when enabled.
func RegisterSweeper(params SweeperParams) error {
	cfg := params.Config.Sweep
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Reconcile sweeper not configured, skipping")

		return nil
	}

	sweeper, err := NewSweeper(cfg, params.BetUC, params.Logger)
	if err != nil {
		return err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()

			return nil
		},
		OnStop: sweeper.Stop,
	})

	return nil
}

// Module provides the sweep FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Invoke(RegisterSweeper),
	fx.Invoke(RegisterResultsWatcher),
)
