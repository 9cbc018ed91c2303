package main

import (
	"context"
	"log/slog"
	"os"

	"pricing/config"
	"pricing/internal/delivery"
	"pricing/internal/delivery/api"
	"pricing/internal/delivery/api/middleware"
	"pricing/internal/delivery/api/router/handler"
	"pricing/internal/infra/auth"
	"pricing/internal/infra/cache"
	"pricing/internal/infra/conflict"
	logs "pricing/internal/infra/log"
	"pricing/internal/infra/persistence/postgres"
	"pricing/internal/infra/pubsub"
	"pricing/internal/infra/taxconfig"
	"pricing/internal/usecase/impl"

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
			postgres.NewProductRepository,
			postgres.NewPricingRuleRepository,
			postgres.NewPriceChangeLogRepository,
			taxconfig.NewStore,
			conflict.NewDetector,
		),
		fx.Decorate(
			cache.DecorateRuleRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuditService,
			impl.NewPricingService,
			impl.NewRuleService,
			impl.NewProductService,
			impl.NewTaxService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRuleHandler,
			handler.NewProductHandler,
			handler.NewPricingHandler,
			handler.NewTaxHandler,
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
