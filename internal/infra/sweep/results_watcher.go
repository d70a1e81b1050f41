package sweep

import (
	"context"
	"log/slog"

	"evalert/config"
	"evalert/internal/domain/constants"
	"evalert/internal/usecase"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
)

// ResultsWatcher listens on the results feed and triggers a reconcile sweep
// whenever new results land, so finished bets settle without waiting for the
// next scheduled sweep.
type ResultsWatcher struct {
	client    *fs.Client
	betUC     usecase.BetUsecase
	userLimit int
	logger    *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewResultsWatcher builds a watcher over the results collection.
func NewResultsWatcher(client *fs.Client, betUC usecase.BetUsecase, userLimit int, logger *slog.Logger) *ResultsWatcher {
	return &ResultsWatcher{
		client:    client,
		betUC:     betUC,
		userLimit: userLimit,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Start begins watching in a background goroutine.
func (w *ResultsWatcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	go w.watch(ctx)

	w.logger.Info("Results watcher started")
}

// Stop cancels the snapshot listener and waits for the watch loop to exit.
func (w *ResultsWatcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.cancel()
	}

	select {
	case <-w.done:
		w.logger.Info("Results watcher stopped")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "results watcher shutdown timed out")
	}
}

func (w *ResultsWatcher) watch(ctx context.Context) {
	defer close(w.done)

	snapshots := w.client.Collection(constants.CollectionResults).Snapshots(ctx)
	defer snapshots.Stop()

	first := true
	for {
		snap, err := snapshots.Next()
		if errors.Is(err, iterator.Done) || ctx.Err() != nil {
			return
		}
		if err != nil {
			w.logger.Error("Results watch failed", slog.Any("error", err))

			return
		}

		// The first snapshot replays the whole collection; only later ones
		// signal new results.
		if first {
			first = false

			continue
		}
		if len(snap.Changes) == 0 {
			continue
		}

		w.logger.Info("Results feed changed, reconciling",
			slog.Int("changes", len(snap.Changes)),
		)

		updated, err := w.betUC.ReconcileAll(ctx, w.userLimit)
		if err != nil {
			w.logger.Error("Reconcile after results change failed", slog.Any("error", err))

			continue
		}

		w.logger.Info("Reconcile after results change completed", slog.Int("updated", updated))
	}
}

// WatcherParams holds dependencies for the results watcher, injected by Fx
type WatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Client *fs.Client
	BetUC  usecase.BetUsecase
	Logger *slog.Logger
}

// RegisterResultsWatcher wires the watcher into the Fx lifecycle when the
// sweep is enabled.
func RegisterResultsWatcher(params WatcherParams) {
	cfg := params.Config.Sweep
	if cfg == nil || !cfg.Enabled {
		return
	}

	watcher := NewResultsWatcher(params.Client, params.BetUC, cfg.UserLimit, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			watcher.Start()

			return nil
		},
		OnStop: watcher.Stop,
	})
}
