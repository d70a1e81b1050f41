package main

import (
	"context"
	"log/slog"
	"os"

	"evalert/config"
	"evalert/internal/delivery"
	"evalert/internal/delivery/http"
	"evalert/internal/delivery/http/middleware"
	"evalert/internal/delivery/http/router/handler"
	"evalert/internal/domain/service"
	"evalert/internal/infra/archive"
	"evalert/internal/infra/auth"
	"evalert/internal/infra/fcm"
	logs "evalert/internal/infra/log"
	"evalert/internal/infra/persistence/firestore"
	"evalert/internal/infra/persistence/postgres"
	"evalert/internal/infra/pubsub"
	"evalert/internal/usecase/impl"

	fs "cloud.google.com/go/firestore"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
			auth.NewTokenVerifier,
			newAdminPolicy,
		),
	)
}

// newAdminPolicy selects the configured admin policy: a static UID allowlist,
// optionally extended by the dynamic admins collection.
func newAdminPolicy(cfg *config.Config, client *fs.Client) service.AdminPolicy {
	static := auth.NewStaticAdminPolicy(cfg.Admin)
	if cfg.Admin != nil && cfg.Admin.Dynamic {
		return auth.NewFirestoreAdminPolicy(static, client)
	}

	return static
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBroadcastService,
			impl.NewDeviceService,
			impl.NewBetService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBroadcastHandler,
			handler.NewDeviceHandler,
			handler.NewBetHandler,
			handler.NewOpportunityHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
