package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alfredtoussaint-cpu/dealshaq/config"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/middleware"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/router/handler"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/service"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/hub"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/infra/auth"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/infra/geocoding"
	logs "github.com/alfredtoussaint-cpu/dealshaq/internal/infra/log"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/infra/persistence/postgres"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase/impl"

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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewConsumerRepository,
			postgres.NewRetailerRepository,
			postgres.NewRosterRepository,
			postgres.NewFavoriteRepository,
			postgres.NewDealRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			geocoding.NewClient,
			newDeliveryHub,
		),
	)
}

// newDeliveryHub builds the in-process connection hub and ties its
// sweeper to the application lifecycle. The concrete hub is also exposed
// for the WebSocket handler.
func newDeliveryHub(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*hub.Hub, service.DeliveryHub) {
	h := hub.NewHub(cfg.Hub, logger)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			h.StartSweeper()

			return nil
		},
		OnStop: h.StopSweeper,
	})

	return h, h
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewConsumerService,
			impl.NewRosterService,
			impl.NewFavoriteService,
			impl.NewDealService,
			impl.NewNotificationService,
			impl.NewRetailerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewInternalAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewConsumerHandler,
			handler.NewRosterHandler,
			handler.NewFavoriteHandler,
			handler.NewDealHandler,
			handler.NewNotificationHandler,
			handler.NewRetailerHandler,
			handler.NewCategoryHandler,
			handler.NewWSHandler,
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
