package main

import (
	"context"
	"log/slog"
	"os"

	"evalert/config"
	"evalert/internal/delivery"
	"evalert/internal/delivery/worker"
	"evalert/internal/delivery/worker/handler"
	"evalert/internal/infra/archive"
	"evalert/internal/infra/fcm"
	logs "evalert/internal/infra/log"
	"evalert/internal/infra/persistence/firestore"
	"evalert/internal/infra/persistence/postgres"
	"evalert/internal/infra/pubsub"
	"evalert/internal/infra/sweep"
	"evalert/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		sweep.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			fcm.NewApp,
			firestore.NewClient,
		),
		pubsub.Module,
		archive.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewDestinationRepository,
			firestore.NewBetRepository,
			firestore.NewOpportunityRepository,
			postgres.NewBroadcastRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fcm.NewMessenger,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBroadcastService,
			impl.NewBetService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
