package main

import (
	"context"
	"log/slog"
	"os"

	"georemind/config"
	"georemind/internal/delivery"
	"georemind/internal/delivery/api"
	"georemind/internal/delivery/api/middleware"
	"georemind/internal/delivery/api/router/handler"
	"georemind/internal/domain/repository"
	"georemind/internal/domain/service"
	"georemind/internal/errors"
	"georemind/internal/infra/auth"
	"georemind/internal/infra/location"
	logs "georemind/internal/infra/log"
	"georemind/internal/infra/notification"
	"georemind/internal/infra/persistence/memory"
	"georemind/internal/infra/persistence/postgres"
	"georemind/internal/infra/pubsub"
	"georemind/internal/usecase"
	"georemind/internal/usecase/impl"

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
			registerEngineHooks,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		fx.Annotate(
			location.NewPushProvider,
			fx.As(fx.Self()),
			fx.As(new(service.LocationProvider)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStatusRepository,
		),
	)
}

// newStatusRepository persists statuses in PostgreSQL when configured, in memory otherwise
func newStatusRepository(params postgres.Params) (repository.StatusRepository, error) {
	if params.Config.Postgres == nil {
		params.Logger.Info("PostgreSQL not configured, keeping reminder statuses in memory")

		return memory.NewStatusRepository(), nil
	}

	db, err := postgres.New(params)
	if err != nil {
		return nil, err
	}

	return postgres.NewStatusRepository(db), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newTokenService,
			newNotifier,
		),
		pubsub.Module,
	)
}

// newTokenService returns nil when no device secret is set, which disables authentication
func newTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.DeviceSecret == "" {
		return nil, nil
	}

	return auth.NewJWTService(cfg)
}

type notifierResult struct {
	fx.Out

	Notifier service.Notifier
	Center   *notification.LocalCenter
}

// newNotifier pushes through Firebase when a device token is configured and
// falls back to the in-process notification center
func newNotifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (notifierResult, error) {
	if cfg.Firebase == nil || cfg.Firebase.DeviceToken == "" {
		logger.Info("Firebase not configured, using local notification center")
		center := notification.NewLocalCenter(logger)

		return notifierResult{Notifier: center, Center: center}, nil
	}

	notifier, err := notification.NewFirebaseNotifier(ctx, cfg.Firebase.CredentialsPath, cfg.Firebase.DeviceToken, logger)
	if err != nil {
		return notifierResult{}, errors.Wrap(err, "failed to create Firebase notifier")
	}

	return notifierResult{Notifier: notifier}, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReminderEngine,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEngineHandler,
			handler.NewReminderHandler,
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerEngineHooks logs lifecycle events and shuts the engine down with the app
func registerEngineHooks(lc fx.Lifecycle, engine usecase.ReminderEngine, logger *slog.Logger) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				for {
					select {
					case <-done:
						return
					case event := <-engine.Events():
						attrs := []any{slog.String("kind", string(event.Kind))}
						if event.Reminder != nil {
							attrs = append(attrs,
								slog.String("reminder_id", event.Reminder.ID),
								slog.String("notification_id", event.NotificationID),
							)
						}
						logger.Info("[Engine] Lifecycle event", attrs...)
					}
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)

			return engine.Shutdown(ctx)
		},
	})
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
